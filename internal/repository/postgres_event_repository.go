package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `id, event_name, description, start_date_time, end_date_time, venue_id,
	image_url, is_active, version, created_at, updated_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartDateTime,
		&event.EndDateTime,
		&event.VenueID,
		&event.ImageURL,
		&event.IsActive,
		&event.Version,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, event_name, description, start_date_time, end_date_time, venue_id,
			image_url, is_active, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.StartDateTime,
		event.EndDateTime,
		event.VenueID,
		event.ImageURL,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceEvent, event.ID)
	}
	event.Version = 1
	return nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	event, err := scanEvent(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// Update overwrites an event's mutable fields
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET event_name = $3, description = $4, start_date_time = $5, end_date_time = $6,
			venue_id = $7, image_url = $8, is_active = $9, updated_at = $10, version = version + 1
		WHERE id = $1 AND version = $2
	`
	result, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		event.ID,
		event.Version,
		event.Name,
		event.Description,
		event.StartDateTime,
		event.EndDateTime,
		event.VenueID,
		event.ImageURL,
		event.IsActive,
		event.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, domain.ResourceEvent, event.ID)
	}
	if result.RowsAffected() == 0 {
		return ErrStaleVersion
	}
	event.Version++
	return nil
}

// Delete removes an event by ID
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, domain.ResourceEvent, id)
	}
	return nil
}

// List lists events with filters and pagination
func (r *PostgresEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions = append(conditions, "TRUE")

	if filter != nil {
		if filter.VenueID != "" {
			if !validID(filter.VenueID) {
				return []*domain.Event{}, 0, nil
			}
			conditions = append(conditions, fmt.Sprintf("venue_id = $%d", argIndex))
			args = append(args, filter.VenueID)
			argIndex++
		}
		if filter.IsActive != nil {
			conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIndex))
			args = append(args, *filter.IsActive)
			argIndex++
		}
		if filter.Search != "" {
			conditions = append(conditions, fmt.Sprintf("(event_name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
			args = append(args, "%"+filter.Search+"%")
			argIndex++
		}
	}

	whereClause := strings.Join(conditions, " AND ")
	conn := database.Conn(ctx, r.pool)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", whereClause)
	if err := conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY start_date_time NULLS LAST, event_name, id
		LIMIT $%d OFFSET $%d
	`, eventColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// HasVenueOverlap reports whether another event at the venue has a known
// window overlapping [start, end). Windows that only touch do not count.
func (r *PostgresEventRepository) HasVenueOverlap(ctx context.Context, venueID string, start, end time.Time, excludeID string) (bool, error) {
	if !validID(venueID) {
		return false, nil
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE venue_id = $1
				AND start_date_time IS NOT NULL
				AND end_date_time IS NOT NULL
				AND start_date_time < $3
				AND $2 < end_date_time
				AND ($4::uuid IS NULL OR id <> $4::uuid)
		)
	`
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, venueID, start, end, nullableID(excludeID)).Scan(&exists)
	if err != nil && isInvalidText(err) {
		return false, nil
	}
	return exists, err
}
