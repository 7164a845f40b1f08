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

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

const bookingColumns = `id, event_id, venue_id, customer_id, booking_date,
	created_by_user_id, updated_by_user_id, version, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	booking := &domain.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.VenueID,
		&booking.CustomerID,
		&booking.BookingDate,
		&booking.CreatedByUserID,
		&booking.UpdatedByUserID,
		&booking.Version,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Create inserts a new booking
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			id, event_id, venue_id, customer_id, booking_date,
			created_by_user_id, updated_by_user_id, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		booking.ID,
		booking.EventID,
		booking.VenueID,
		booking.CustomerID,
		booking.BookingDate,
		booking.CreatedByUserID,
		booking.UpdatedByUserID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceBooking, booking.ID)
	}
	booking.Version = 1
	return nil
}

// GetByID retrieves a booking by ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if !validID(id) {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	booking, err := scanBooking(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

// Update overwrites a booking's mutable fields. The creator is never rewritten.
func (r *PostgresBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET event_id = $3, venue_id = $4, customer_id = $5, booking_date = $6,
			updated_by_user_id = $7, updated_at = $8, version = version + 1
		WHERE id = $1 AND version = $2
	`
	result, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		booking.ID,
		booking.Version,
		booking.EventID,
		booking.VenueID,
		booking.CustomerID,
		booking.BookingDate,
		booking.UpdatedByUserID,
		booking.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceBooking, booking.ID)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleVersion
	}
	booking.Version++
	return nil
}

// Delete removes a booking by ID
func (r *PostgresBookingRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, domain.ResourceBooking, id)
	}
	return nil
}

// List lists bookings with filters and pagination, newest booking date first
func (r *PostgresBookingRepository) List(ctx context.Context, filter *BookingFilter, limit, offset int) ([]*domain.Booking, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions = append(conditions, "TRUE")

	if filter != nil {
		for column, value := range map[string]string{
			"event_id":    filter.EventID,
			"customer_id": filter.CustomerID,
			"venue_id":    filter.VenueID,
		} {
			if value == "" {
				continue
			}
			if !validID(value) {
				return []*domain.Booking{}, 0, nil
			}
			conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argIndex))
			args = append(args, value)
			argIndex++
		}
	}

	whereClause := strings.Join(conditions, " AND ")
	conn := database.Conn(ctx, r.pool)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings WHERE %s", whereClause)
	if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE %s
		ORDER BY booking_date DESC, id
		LIMIT $%d OFFSET $%d
	`, bookingColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// ExistsForEventCustomer checks for a booking of the event by the customer other than excludeID
func (r *PostgresBookingRepository) ExistsForEventCustomer(ctx context.Context, eventID, customerID, excludeID string) (bool, error) {
	if !validID(eventID) || !validID(customerID) {
		return false, nil
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND customer_id = $2
				AND ($3::uuid IS NULL OR id <> $3::uuid)
		)
	`
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, eventID, customerID, nullableID(excludeID)).Scan(&exists)
	return exists, err
}
