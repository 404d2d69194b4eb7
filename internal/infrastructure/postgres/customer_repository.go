package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/handwerkpro/handwerkpro-api/internal/domain"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/entity"
	"github.com/handwerkpro/handwerkpro-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, type, name, contact_name, email, phone, mobile,
	street, postal_code, city, country, notes, status, created_at, updated_at`

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// likeEscaper neutralizes LIKE metacharacters so a search term is always a
// literal substring match (a search for "100%" must not match "1000").
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterClause renders the filter predicate once, so Count and List can never
// diverge on what they match.
func filterClause(filter repository.CustomerFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns one page, ordered by status then name so the listing is
// deterministic across requests.
func (r *CustomerRepo) List(ctx context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(
		`SELECT %s FROM customers%s ORDER BY status ASC, name ASC LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count counts the customers matching the same predicate as List.
func (r *CustomerRepo) Count(ctx context.Context, filter repository.CustomerFilter) (int, error) {
	where, args := filterClause(filter)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// GetByID returns the customer or (nil, nil) when absent.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Create persists a new customer.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, type, name, contact_name, email, phone, mobile,
			street, postal_code, city, country, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Type, c.Name, c.ContactName, c.Email, c.Phone, c.Mobile,
		c.Street, c.PostalCode, c.City, c.Country, c.Notes, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update writes the full row back and reports whether a row matched.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) (bool, error) {
	query := `
		UPDATE customers SET type = $2, name = $3, contact_name = $4, email = $5,
			phone = $6, mobile = $7, street = $8, postal_code = $9, city = $10,
			country = $11, notes = $12, status = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Type, c.Name, c.ContactName, c.Email, c.Phone, c.Mobile,
		c.Street, c.PostalCode, c.City, c.Country, c.Notes, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a customer by id and reports whether a row matched.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus counts the customers in one status bucket.
func (r *CustomerRepo) CountByStatus(ctx context.Context, status entity.CustomerStatus) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers by status: %w", err)
	}
	return n, nil
}

// CountAll counts every customer regardless of status.
func (r *CustomerRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Type, &c.Name, &c.ContactName, &c.Email, &c.Phone, &c.Mobile,
		&c.Street, &c.PostalCode, &c.City, &c.Country, &c.Notes, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
