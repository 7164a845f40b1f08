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

// PostgresVenueRepository implements VenueRepository using PostgreSQL
type PostgresVenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueRepository creates a new PostgresVenueRepository
func NewPostgresVenueRepository(pool *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{pool: pool}
}

const venueColumns = `id, venue_name, location, capacity, image_url, is_active, version, created_at, updated_at`

func scanVenue(row pgx.Row) (*domain.Venue, error) {
	venue := &domain.Venue{}
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Location,
		&venue.Capacity,
		&venue.ImageURL,
		&venue.IsActive,
		&venue.Version,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// Create inserts a new venue
func (r *PostgresVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (id, venue_name, location, capacity, image_url, is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Location,
		venue.Capacity,
		venue.ImageURL,
		venue.IsActive,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceVenue, venue.ID)
	}
	venue.Version = 1
	return nil
}

// GetByID retrieves a venue by ID
func (r *PostgresVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	if !validID(id) {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM venues WHERE id = $1`, venueColumns)
	venue, err := scanVenue(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return venue, nil
}

// LockForEventWrite takes a row lock that conflicts with itself but not with
// the key-share locks foreign key checks from bookings take
func (r *PostgresVenueRepository) LockForEventWrite(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var locked string
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `SELECT id::text FROM venues WHERE id = $1 FOR NO KEY UPDATE`, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update overwrites a venue's mutable fields
func (r *PostgresVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	query := `
		UPDATE venues
		SET venue_name = $3, location = $4, capacity = $5, image_url = $6, is_active = $7,
			updated_at = $8, version = version + 1
		WHERE id = $1 AND version = $2
	`
	result, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		venue.ID,
		venue.Version,
		venue.Name,
		venue.Location,
		venue.Capacity,
		venue.ImageURL,
		venue.IsActive,
		venue.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceVenue, venue.ID)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleVersion
	}
	venue.Version++
	return nil
}

// Delete removes a venue by ID
func (r *PostgresVenueRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, domain.ResourceVenue, id)
	}
	return nil
}

// List lists venues with filters and pagination
func (r *PostgresVenueRepository) List(ctx context.Context, filter *VenueFilter, limit, offset int) ([]*domain.Venue, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions = append(conditions, "TRUE")

	if filter != nil {
		if filter.Search != "" {
			conditions = append(conditions, fmt.Sprintf("(venue_name ILIKE $%d OR location ILIKE $%d)", argIndex, argIndex))
			args = append(args, "%"+filter.Search+"%")
			argIndex++
		}
		if filter.IsActive != nil {
			conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIndex))
			args = append(args, *filter.IsActive)
			argIndex++
		}
	}

	whereClause := strings.Join(conditions, " AND ")
	conn := database.Conn(ctx, r.pool)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM venues WHERE %s", whereClause)
	if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM venues
		WHERE %s
		ORDER BY venue_name, id
		LIMIT $%d OFFSET $%d
	`, venueColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, 0, err
		}
		venues = append(venues, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}
