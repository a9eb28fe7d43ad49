// Package reference resolves lookup references from another world against
// the local catalog tables.
package reference

//go:generate mockgen -destination=mock/mock_resolver.go -package=referencemock github.com/KirkDiggler/rpg-porter/internal/services/reference Resolver

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/textmatch"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/catalog"
)

// Resolver turns foreign identifiers into identifiers valid in this world
type Resolver interface {
	// Resolve returns a local ID for a reference, trying in order:
	//   1. candidateID, when it is a row of tableName
	//   2. the row indexed under exactly name
	//   3. the first visible row of tableName whose sanitized name equals the
	//      sanitized name, in table order
	//   4. candidateID as-is, even without a table
	// It reports false when every step fails.
	Resolve(ctx context.Context, tableName, name, candidateID string) (string, bool)

	// Lookup returns the row with id
	Lookup(ctx context.Context, tableName, id string) (*entities.CatalogRecord, bool)

	// Table returns a whole table; read failures yield an empty table
	Table(ctx context.Context, tableName string) *entities.Table
}

// Config holds the dependencies for the resolver
type Config struct {
	Catalog catalog.Reader
	Logger  *slog.Logger
	// Verbose traces every resolution step
	Verbose bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

type resolver struct {
	catalog catalog.Reader
	logger  *slog.Logger
	verbose bool
}

// New creates a resolver over a catalog
func New(cfg *Config) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &resolver{
		catalog: cfg.Catalog,
		logger:  logger,
		verbose: cfg.Verbose,
	}, nil
}

func (r *resolver) Resolve(ctx context.Context, tableName, name, candidateID string) (string, bool) {
	if tableName != "" && (candidateID != "" || name != "") {
		table := r.Table(ctx, tableName)

		if candidateID != "" {
			if _, ok := table.Get(candidateID); ok {
				r.trace(ctx, "Resolved reference by id", tableName, name, candidateID)
				return candidateID, true
			}
		}

		if name != "" {
			if id, ok := r.byName(ctx, table, name); ok {
				r.trace(ctx, "Resolved reference by name", tableName, name, id)
				return id, true
			}
		}
	}

	if candidateID != "" {
		r.trace(ctx, "Passing reference id through", tableName, name, candidateID)
		return candidateID, true
	}

	return "", false
}

func (r *resolver) byName(ctx context.Context, table *entities.Table, name string) (string, bool) {
	out, err := r.catalog.FindByName(ctx, catalog.FindByNameInput{Table: table.Name, Name: name})
	switch {
	case err == nil && out != nil && out.Record != nil:
		return out.Record.ID, true
	case err != nil && !errors.IsNotFound(err):
		r.logger.WarnContext(ctx, "Catalog name index failed",
			"table", table.Name,
			"name", name,
			"error", err.Error())
	}

	target := textmatch.Sanitize(name)
	if target == "" {
		return "", false
	}
	for _, row := range table.All() {
		if row.Hidden {
			continue
		}
		if textmatch.Sanitize(row.Name) == target {
			return row.ID, true
		}
	}
	return "", false
}

func (r *resolver) Lookup(ctx context.Context, tableName, id string) (*entities.CatalogRecord, bool) {
	if tableName == "" || id == "" {
		return nil, false
	}
	return r.Table(ctx, tableName).Get(id)
}

func (r *resolver) Table(ctx context.Context, tableName string) *entities.Table {
	out, err := r.catalog.GetTable(ctx, catalog.GetTableInput{Name: tableName})
	if err != nil {
		r.logger.WarnContext(ctx, "Catalog table unavailable",
			"table", tableName,
			"error", err.Error())
		return entities.NewTable(tableName)
	}
	if out.Table == nil {
		return entities.NewTable(tableName)
	}
	return out.Table
}

func (r *resolver) trace(ctx context.Context, msg, tableName, name, id string) {
	if !r.verbose {
		return
	}
	r.logger.DebugContext(ctx, msg,
		"table", tableName,
		"name", name,
		"id", id)
}
