package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/pkg/validation"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:    "Müller Sanitär GmbH",
		Type:    "BUSINESS",
		Email:   strPtr("info@mueller-sanitaer.ch"),
		Country: "CH",
		Status:  "ACTIVE",
	}
}

func TestStruct_ValidRequestPasses(t *testing.T) {
	in := validCreateRequest()
	assert.NoError(t, validation.Struct(&in))
}

func TestStruct_MissingRequiredFields(t *testing.T) {
	in := dto.CreateCustomerRequest{}
	err := validation.Struct(&in)
	require.Error(t, err)

	verr, ok := err.(*validation.Error)
	require.True(t, ok, "expected *validation.Error, got %T", err)
	assert.Equal(t, "Validation failed", verr.Message)
	// Field names come from the json tags, not the Go field names.
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Contains(t, verr.Fields, "type")
	assert.Contains(t, verr.Fields, "country")
	assert.Contains(t, verr.Fields, "status")
}

func TestStruct_InvalidEmail(t *testing.T) {
	in := validCreateRequest()
	in.Email = strPtr("not-an-address")
	err := validation.Struct(&in)
	require.Error(t, err)

	verr := err.(*validation.Error)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Len(t, verr.Fields, 1)
}

func TestStruct_EmptyStringEmailRejected(t *testing.T) {
	in := validCreateRequest()
	in.Email = strPtr("")
	err := validation.Struct(&in)
	require.Error(t, err, "an explicit empty string is not an absent email")

	verr := err.(*validation.Error)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])

	in.Email = nil
	assert.NoError(t, validation.Struct(&in))
}

func TestStruct_UpdateEmptyStringFieldsRejected(t *testing.T) {
	in := dto.UpdateCustomerRequest{
		Name:   strPtr(""),
		Status: strPtr(""),
	}
	err := validation.Struct(&in)
	require.Error(t, err)

	verr := err.(*validation.Error)
	assert.Equal(t, "must be at least 1 characters", verr.Fields["name"])
	assert.Contains(t, verr.Fields, "status")

	// Absent fields are still fine.
	assert.NoError(t, validation.Struct(&dto.UpdateCustomerRequest{Name: strPtr("X")}))
}

func TestStruct_InvalidEnumValue(t *testing.T) {
	in := validCreateRequest()
	in.Type = "WHOLESALE"
	err := validation.Struct(&in)
	require.Error(t, err)

	verr := err.(*validation.Error)
	assert.Equal(t, "must be one of: PRIVATE, BUSINESS", verr.Fields["type"])
}

func TestStruct_ListQueryBounds(t *testing.T) {
	q := dto.ListCustomersQuery{Page: 0, PageSize: 0}
	// Zero values mean "not given" and are filled by Defaults, not rejected.
	assert.NoError(t, validation.Struct(&q))

	q = dto.ListCustomersQuery{Page: 2, PageSize: 500}
	err := validation.Struct(&q)
	require.Error(t, err)
	verr := err.(*validation.Error)
	assert.Equal(t, "must be at most 100", verr.Fields["pageSize"])

	q = dto.ListCustomersQuery{Page: -1, PageSize: 20}
	err = validation.Struct(&q)
	require.Error(t, err)
	verr = err.(*validation.Error)
	assert.Contains(t, verr.Fields, "page")
}

func TestError_MessageIncludesFields(t *testing.T) {
	err := validation.NewError("Validation failed", map[string]string{"name": "is required"})
	assert.Equal(t, "Validation failed (name: is required)", err.Error())

	err = validation.NewError("Mindestens ein Feld muss aktualisiert werden", nil)
	assert.Equal(t, "Mindestens ein Feld muss aktualisiert werden", err.Error())
}
