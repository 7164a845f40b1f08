package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository
func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

const customerColumns = `id, full_name, email, phone, version, created_at, updated_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := row.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&customer.Version,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Create inserts a new customer
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, full_name, email, phone, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $6)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		customer.ID,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceCustomer, customer.ID)
	}
	customer.Version = 1
	return nil
}

// GetByID retrieves a customer by ID
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if !validID(id) {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)
	customer, err := scanCustomer(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// Update overwrites a customer's mutable fields
func (r *PostgresCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers
		SET full_name = $3, email = $4, phone = $5, updated_at = $6, version = version + 1
		WHERE id = $1 AND version = $2
	`
	result, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		customer.ID,
		customer.Version,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceCustomer, customer.ID)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleVersion
	}
	customer.Version++
	return nil
}

// Delete removes a customer by ID
func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, domain.ResourceCustomer, id)
	}
	return nil
}

// List lists customers with filters and pagination
func (r *PostgresCustomerRepository) List(ctx context.Context, filter *CustomerFilter, limit, offset int) ([]*domain.Customer, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions = append(conditions, "TRUE")

	if filter != nil && filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := strings.Join(conditions, " AND ")
	conn := database.Conn(ctx, r.pool)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM customers WHERE %s", whereClause)
	if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM customers
		WHERE %s
		ORDER BY full_name, id
		LIMIT $%d OFFSET $%d
	`, customerColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// EmailExists checks whether a customer other than excludeID uses the email
func (r *PostgresCustomerRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM customers
			WHERE lower(email) = lower($1) AND ($2::uuid IS NULL OR id <> $2::uuid)
		)
	`
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, email, nullableID(excludeID)).Scan(&exists)
	return exists, err
}
