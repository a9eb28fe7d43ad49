package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// CachedConfig contains configuration for the cached catalog reader.
type CachedConfig struct {
	Reader Reader
	// TTL for cached tables (optional, defaults to 10 minutes)
	TTL time.Duration
}

// Validate validates the CachedConfig and sets defaults if not provided.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Reader == nil {
		return errors.InvalidArgument("reader cannot be nil")
	}
	if cfg.TTL == 0 {
		cfg.TTL = 10 * time.Minute
	}
	return nil
}

type cachedReader struct {
	next  Reader
	cache *cache.Cache
}

// NewCached wraps a reader with an in-process table cache. Name lookups are
// answered from the cached table; catalog tables are read-only during a
// transfer, so entries only expire by TTL.
func NewCached(cfg *CachedConfig) (Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedReader{
		next:  cfg.Reader,
		cache: cache.New(cfg.TTL, 2*cfg.TTL),
	}, nil
}

func (r *cachedReader) GetTable(ctx context.Context, input GetTableInput) (*GetTableOutput, error) {
	if x, found := r.cache.Get(input.Name); found {
		return &GetTableOutput{Table: x.(*entities.Table)}, nil
	}

	out, err := r.next.GetTable(ctx, input)
	if err != nil {
		return nil, err
	}

	r.cache.Set(input.Name, out.Table, cache.DefaultExpiration)
	slog.DebugContext(ctx, "Cached catalog table",
		"table", input.Name,
		"rows", out.Table.Len())
	return out, nil
}

func (r *cachedReader) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if x, found := r.cache.Get(input.Table); found {
		for _, row := range x.(*entities.Table).All() {
			if !row.Hidden && row.Name == input.Name {
				return &FindByNameOutput{Record: row}, nil
			}
		}
	}
	return r.next.FindByName(ctx, input)
}
