package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard/internal/cache"
	appErrors "github.com/jobboardhq/jobboard/pkg/errors"
	"github.com/jobboardhq/jobboard/pkg/logger"
	"github.com/jobboardhq/jobboard/pkg/metrics"
)

const (
	defaultPageLimit = 10000
	defaultRecordTTL = 300 * time.Second
)

// FilterField declares one optional substring filter of an entity. The slice
// order inside a Descriptor is the declared key order from keys.go and must
// stay fixed for cache hits to work across requests.
type FilterField struct {
	Param string // query parameter name
	Expr  string // SQL contains predicate with a single placeholder
}

// Descriptor parameterises a Catalog for one entity kind.
type Descriptor struct {
	Entity   string // plural, used in cache keys and log lines
	Singular string // used in not-found messages
	Filters  []FilterField
}

// Config carries the pagination bounds and cache expiry policy.
//
// RecordTTL and ListTTL are deliberately separate: single-record lookups
// expire after a short window while list and filter pages live until process
// restart (ListTTL zero). Unifying them is a product decision, not a code one.
type Config struct {
	DefaultLimit int           // applied when a list request omits limit
	MaxLimit     int           // enforced ceiling for any requested limit
	RecordTTL    time.Duration // get-by-id cache window
	ListTTL      time.Duration // list/filter cache window, 0 = until restart
}

// Catalog answers list, filter, and point lookups for one entity kind with a
// cache-aside policy: consult the query cache, fall back to the record store
// on miss, store the serialized page, return it. All payloads are the exact
// wire form; cache hits bypass the store and serialization entirely.
//
// Two concurrent misses for the same key may both query the store and both
// write the cache. Values are idempotent reads, so last write wins is safe.
type Catalog[T any] struct {
	db    *gorm.DB
	store cache.Store
	desc  Descriptor
	cfg   Config
	log   *zap.Logger
}

// NewCatalog constructs a Catalog once its dependencies are supplied.
func NewCatalog[T any](db *gorm.DB, store cache.Store, desc Descriptor, cfg Config) (*Catalog[T], error) {
	if db == nil {
		return nil, fmt.Errorf("catalog %s: db is required", desc.Entity)
	}
	if store == nil {
		return nil, fmt.Errorf("catalog %s: cache store is required", desc.Entity)
	}
	if desc.Entity == "" {
		return nil, errors.New("catalog: descriptor entity is required")
	}

	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaultPageLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	if cfg.RecordTTL <= 0 {
		cfg.RecordTTL = defaultRecordTTL
	}

	return &Catalog[T]{
		db:    db,
		store: store,
		desc:  desc,
		cfg:   cfg,
		log:   logger.WithModule("catalog").With(zap.String("entity", desc.Entity)),
	}, nil
}

// FilterParams exposes the declared filter parameter names in key order.
func (c *Catalog[T]) FilterParams() []string {
	params := make([]string, len(c.desc.Filters))
	for i, f := range c.desc.Filters {
		params[i] = f.Param
	}
	return params
}

// List returns the serialized page [skip, skip+limit) ordered by id
// ascending. A negative limit selects the configured default; a skip beyond
// the table end yields an empty page, not an error.
func (c *Catalog[T]) List(ctx context.Context, skip, limit int) ([]byte, error) {
	skip, limit = c.normalisePage(skip, limit)

	key := cache.ListKey(c.desc.Entity, nil, skip, limit)
	if payload, ok := c.fromCache(ctx, key, "list"); ok {
		return payload, nil
	}

	var records []T
	metrics.StoreQueries.WithLabelValues(c.desc.Entity, "list").Inc()
	err := c.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		c.log.Error("list query failed", zap.Int("skip", skip), zap.Int("limit", limit), zap.Error(err))
		return nil, appErrors.Wrap(err, "Could not fetch "+c.desc.Entity)
	}

	payload, err := marshalPage(records)
	if err != nil {
		return nil, appErrors.Wrap(err, "Could not fetch "+c.desc.Entity)
	}

	c.toCache(ctx, key, payload, c.cfg.ListTTL)
	c.log.Info("list served from store",
		zap.Int("skip", skip), zap.Int("limit", limit), zap.Int("returned", len(records)))
	return payload, nil
}

// Filter returns the serialized page of records matching every supplied
// substring filter. values must align with the descriptor's filter order; an
// empty string marks an absent filter, and no filters at all behaves like
// List. The pre-pagination match count is computed and logged but not
// returned.
func (c *Catalog[T]) Filter(ctx context.Context, values []string, skip, limit int) ([]byte, error) {
	if len(values) != len(c.desc.Filters) {
		return nil, fmt.Errorf("catalog %s: got %d filter values, want %d",
			c.desc.Entity, len(values), len(c.desc.Filters))
	}
	skip, limit = c.normalisePage(skip, limit)

	key := cache.ListKey(c.desc.Entity, values, skip, limit)
	if payload, ok := c.fromCache(ctx, key, "filter"); ok {
		return payload, nil
	}

	var total int64
	metrics.StoreQueries.WithLabelValues(c.desc.Entity, "filter").Inc()
	if err := c.filtered(ctx, values).Count(&total).Error; err != nil {
		c.log.Error("filter count failed", zap.String("key", key), zap.Error(err))
		return nil, appErrors.Wrap(err, "Could not fetch filtered "+c.desc.Entity)
	}

	var records []T
	err := c.filtered(ctx, values).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		c.log.Error("filter query failed", zap.String("key", key), zap.Error(err))
		return nil, appErrors.Wrap(err, "Could not fetch filtered "+c.desc.Entity)
	}

	payload, err := marshalPage(records)
	if err != nil {
		return nil, appErrors.Wrap(err, "Could not fetch filtered "+c.desc.Entity)
	}

	c.toCache(ctx, key, payload, c.cfg.ListTTL)
	// total is intentionally log-only; the response contract has no count field
	c.log.Info("filter served from store",
		zap.String("key", key), zap.Int("returned", len(records)), zap.Int64("total_matching", total))
	return payload, nil
}

// Get returns the serialized record with the given id, caching it for the
// configured record window. A missing id yields a not-found AppError.
func (c *Catalog[T]) Get(ctx context.Context, id int64) ([]byte, error) {
	key := cache.RecordKey(c.desc.Entity, id)
	if payload, ok := c.fromCache(ctx, key, "get"); ok {
		return payload, nil
	}

	var record T
	metrics.StoreQueries.WithLabelValues(c.desc.Entity, "get").Inc()
	err := c.db.WithContext(ctx).Take(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.log.Warn("record not found", zap.Int64("id", id))
		return nil, appErrors.NewNotFound(c.desc.Singular + " not found")
	}
	if err != nil {
		c.log.Error("get query failed", zap.Int64("id", id), zap.Error(err))
		return nil, appErrors.ErrInternalServer.WithInternal(err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithInternal(err)
	}

	c.toCache(ctx, key, payload, c.cfg.RecordTTL)
	c.log.Info("record served from store", zap.Int64("id", id))
	return payload, nil
}

func (c *Catalog[T]) filtered(ctx context.Context, values []string) *gorm.DB {
	q := c.db.WithContext(ctx).Model(new(T))
	for i, f := range c.desc.Filters {
		if values[i] != "" {
			q = q.Where(f.Expr, "%"+values[i]+"%")
		}
	}
	return q
}

// normalisePage applies the default limit and the enforced ceiling before any
// cache key is derived, so equivalent requests share a key.
func (c *Catalog[T]) normalisePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = c.cfg.DefaultLimit
	}
	if limit > c.cfg.MaxLimit {
		c.log.Debug("limit clamped", zap.Int("requested", limit), zap.Int("max", c.cfg.MaxLimit))
		limit = c.cfg.MaxLimit
	}
	return skip, limit
}

func (c *Catalog[T]) fromCache(ctx context.Context, key, op string) ([]byte, bool) {
	payload, ok, err := c.store.Get(ctx, key)
	if err != nil {
		// a broken cache degrades to a store query, it never fails the request
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		metrics.CacheMisses.WithLabelValues(c.desc.Entity, op).Inc()
		return nil, false
	}
	if !ok {
		c.log.Info("cache miss", zap.String("key", key))
		metrics.CacheMisses.WithLabelValues(c.desc.Entity, op).Inc()
		return nil, false
	}

	c.log.Info("cache hit", zap.String("key", key))
	metrics.CacheHits.WithLabelValues(c.desc.Entity, op).Inc()
	return payload, true
}

func (c *Catalog[T]) toCache(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.store.Set(ctx, key, payload, ttl); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// marshalPage serializes a result page, pinning the empty page to [] instead
// of null.
func marshalPage[T any](records []T) ([]byte, error) {
	if records == nil {
		records = make([]T, 0)
	}
	return json.Marshal(records)
}
