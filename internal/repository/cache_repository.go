package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
	"github.com/sabrinafayremeyer/EventEase/pkg/redis"
	"golang.org/x/sync/singleflight"
)

const (
	// Cache key prefixes
	venueDetailKeyPrefix = "eventease:venue:"
	eventDetailKeyPrefix = "eventease:event:"

	// DefaultCacheTTL is used when no TTL is configured
	DefaultCacheTTL = 5 * time.Minute

	// generationSuffix names the per-row counter bumped on every eviction
	generationSuffix = ":gen"
)

// fillScript stores a loaded row only if no eviction happened since the
// generation was read, so a fill racing a committed write cannot resurrect
// the old row.
// KEYS[1] row key, KEYS[2] generation key; ARGV gen, payload, ttl in ms.
const fillScript = `
if (redis.call('GET', KEYS[2]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`

// Reads inside a transaction go straight to the database so they see the
// transaction's own writes and take part in its isolation. Writes evict the
// cached row once the surrounding transaction commits.

// detailCache is a read-through cache of single rows keyed by id
type detailCache[T any] struct {
	cache  *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
}

func newDetailCache[T any](cache *redis.Client, prefix string, ttl time.Duration) *detailCache[T] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &detailCache[T]{cache: cache, prefix: prefix, ttl: ttl}
}

// get returns the cached row or loads it, coalescing concurrent misses for the same id
func (c *detailCache[T]) get(ctx context.Context, id string, load func(ctx context.Context, id string) (*T, error)) (*T, error) {
	if database.InTx(ctx) {
		return load(ctx, id)
	}

	key := c.prefix + id
	if cached, err := c.cache.Get(ctx, key).Result(); err == nil && cached != "" {
		var v T
		if err := json.Unmarshal([]byte(cached), &v); err == nil {
			return &v, nil
		}
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// The fill outlives the caller that happened to start it
		fillCtx := context.WithoutCancel(ctx)
		gen, genOK := c.generation(fillCtx, key)

		v, err := load(ctx, id)
		if err != nil || v == nil {
			return v, err
		}
		if !genOK {
			return v, nil
		}
		if data, err := json.Marshal(v); err == nil {
			c.cache.Eval(fillCtx, fillScript, []string{key, key + generationSuffix}, gen, string(data), c.ttl.Milliseconds())
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	v, _ := result.(*T)
	if v == nil {
		return nil, nil
	}
	// Callers may mutate the row, so never hand out the shared pointer
	clone := *v
	return &clone, nil
}

// generation reads the eviction counter for key. A missing counter is "0";
// false means redis could not answer and the row should not be stored.
func (c *detailCache[T]) generation(ctx context.Context, key string) (string, bool) {
	gen, err := c.cache.Get(ctx, key+generationSuffix).Result()
	if errors.Is(err, goredis.Nil) {
		return "0", true
	}
	if err != nil {
		return "", false
	}
	return gen, true
}

// evict drops the cached row after the transaction in ctx commits. Bumping
// the generation first voids any fill that loaded the row before the commit.
func (c *detailCache[T]) evict(ctx context.Context, id string) {
	database.AfterCommit(ctx, func(ctx context.Context) {
		key := c.prefix + id
		genKey := key + generationSuffix
		c.cache.Incr(ctx, genKey)
		c.cache.Expire(ctx, genKey, c.ttl)
		c.cache.Del(ctx, key)
	})
}

// CachedVenueRepository wraps VenueRepository with Redis caching
type CachedVenueRepository struct {
	VenueRepository
	details *detailCache[domain.Venue]
}

// NewCachedVenueRepository creates a new CachedVenueRepository
func NewCachedVenueRepository(repo VenueRepository, cache *redis.Client, ttl time.Duration) *CachedVenueRepository {
	return &CachedVenueRepository{
		VenueRepository: repo,
		details:         newDetailCache[domain.Venue](cache, venueDetailKeyPrefix, ttl),
	}
}

// GetByID retrieves a venue by ID with caching
func (r *CachedVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return r.details.get(ctx, id, r.VenueRepository.GetByID)
}

// Update updates a venue and invalidates its cache entry
func (r *CachedVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	if err := r.VenueRepository.Update(ctx, venue); err != nil {
		return err
	}
	r.details.evict(ctx, venue.ID)
	return nil
}

// Delete deletes a venue and invalidates its cache entry
func (r *CachedVenueRepository) Delete(ctx context.Context, id string) error {
	if err := r.VenueRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.details.evict(ctx, id)
	return nil
}

// CachedEventRepository wraps EventRepository with Redis caching
type CachedEventRepository struct {
	EventRepository
	details *detailCache[domain.Event]
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(repo EventRepository, cache *redis.Client, ttl time.Duration) *CachedEventRepository {
	return &CachedEventRepository{
		EventRepository: repo,
		details:         newDetailCache[domain.Event](cache, eventDetailKeyPrefix, ttl),
	}
}

// GetByID retrieves an event by ID with caching
func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.details.get(ctx, id, r.EventRepository.GetByID)
}

// Update updates an event and invalidates its cache entry
func (r *CachedEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := r.EventRepository.Update(ctx, event); err != nil {
		return err
	}
	r.details.evict(ctx, event.ID)
	return nil
}

// Delete deletes an event and invalidates its cache entry
func (r *CachedEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.EventRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.details.evict(ctx, id)
	return nil
}
