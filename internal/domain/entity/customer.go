package entity

import "time"

// CustomerType distinguishes private households from business customers.
type CustomerType string

const (
	CustomerTypePrivate  CustomerType = "PRIVATE"
	CustomerTypeBusiness CustomerType = "BUSINESS"
)

// CustomerStatus lifecycle state of a customer.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
	CustomerStatusArchived CustomerStatus = "ARCHIVED"
)

// Country ISO code of the customer's address. The business operates in the
// DACH+LI region only.
type Country string

const (
	CountryCH Country = "CH"
	CountryDE Country = "DE"
	CountryAT Country = "AT"
	CountryLI Country = "LI"
)

// Customer represents a client of the trade business. Optional fields are
// pointers so absent values survive the round trip to the database and
// serialize as null.
type Customer struct {
	ID          string
	Type        CustomerType
	Name        string
	ContactName *string
	Email       *string
	Phone       *string
	Mobile      *string
	Street      *string
	PostalCode  *string
	City        *string
	Country     Country
	Notes       *string
	Status      CustomerStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
