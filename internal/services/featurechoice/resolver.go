// Package featurechoice maps exported feature choices onto this world's
// feature definitions and resolves the picks to local identifiers.
package featurechoice

//go:generate mockgen -destination=mock/mock_resolver.go -package=featurechoicemock github.com/KirkDiggler/rpg-porter/internal/services/featurechoice Resolver

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/textmatch"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
)

// Resolver turns a subsystem's selected features into level choices
type Resolver interface {
	// Resolve matches every selected feature against forest and returns the
	// level choices keyed by local feature ID. Features whose picks all fail
	// to resolve are left out. Dependent "-domains" choices skip matching and
	// are keyed by their own choice ID.
	Resolve(ctx context.Context, selected *dto.SelectedFeatures, forest []*entities.FeatureDef) map[string][]string
}

// Config holds the dependencies for the feature choice resolver
type Config struct {
	References reference.Resolver
	Logger     *slog.Logger
	// Verbose traces every match and pick
	Verbose bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.References == nil {
		vb.RequiredField("References")
	}
	return vb.Build()
}

type resolver struct {
	refs    reference.Resolver
	logger  *slog.Logger
	verbose bool
}

// New creates a feature choice resolver
func New(cfg *Config) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &resolver{
		refs:    cfg.References,
		logger:  logger,
		verbose: cfg.Verbose,
	}, nil
}

func (r *resolver) Resolve(ctx context.Context, selected *dto.SelectedFeatures, forest []*entities.FeatureDef) map[string][]string {
	choices := make(map[string][]string)

	for _, feature := range selected.All() {
		selections := feature.Selections()
		if len(selections) == 0 {
			r.debug(ctx, "Skipping feature without selections", "choice_id", feature.ChoiceID())
			continue
		}

		if feature.IsDomains() {
			ids := r.resolveDomains(ctx, selections)
			if len(ids) == 0 {
				r.logger.WarnContext(ctx, "No domain resolved",
					"choice_id", feature.ChoiceID())
				continue
			}
			choices[feature.ChoiceID()] = ids
			continue
		}

		def := FindFeature(forest, feature)
		if def == nil {
			r.logger.WarnContext(ctx, "No matching feature definition",
				"choice_id", feature.ChoiceID(),
				"choice_type", feature.ChoiceType(),
				"source", feature.Source())
			continue
		}
		r.debug(ctx, "Matched feature definition",
			"choice_id", feature.ChoiceID(),
			"feature_id", def.ID)

		ids := r.resolveSelections(ctx, def, selections)
		if len(ids) == 0 {
			r.logger.WarnContext(ctx, "No selection resolved for feature",
				"feature_id", def.ID,
				"selections", len(selections))
			continue
		}
		choices[def.ID] = ids
	}

	return choices
}

func (r *resolver) resolveDomains(ctx context.Context, selections []*dto.LookupReference) []string {
	var ids []string
	for _, sel := range selections {
		table := sel.TableName()
		if table == "" {
			table = entities.TableDomain
		}
		id, ok := r.refs.Resolve(ctx, table, sel.Name(), sel.ID())
		if !ok {
			r.miss(ctx, table, sel)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (r *resolver) resolveSelections(ctx context.Context, def *entities.FeatureDef, selections []*dto.LookupReference) []string {
	var ids []string
	for _, sel := range selections {
		var (
			id string
			ok bool
		)
		if def.HasInlineOptions() || sel.TableName() == entities.TableInlineOptions {
			id, ok = MatchOption(def.Options, sel)
		} else {
			id, ok = r.resolveVerified(ctx, def, sel)
		}
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// resolveVerified resolves a table pick and rejects it when the local row's
// name disagrees with the exported name.
func (r *resolver) resolveVerified(ctx context.Context, def *entities.FeatureDef, sel *dto.LookupReference) (string, bool) {
	table := sel.TableName()
	if table == "" {
		table = def.ChoiceTable
	}

	id, ok := r.refs.Resolve(ctx, table, sel.Name(), sel.ID())
	if !ok {
		r.miss(ctx, table, sel)
		return "", false
	}
	if sel.Name() == "" {
		return id, true
	}

	row, found := r.refs.Lookup(ctx, table, id)
	if !found || !textmatch.Match(row.Name, sel.Name()) {
		local := ""
		if found {
			local = row.Name
		}
		r.logger.WarnContext(ctx, "Resolved pick failed name verification",
			"table", table,
			"id", id,
			"expected", sel.Name(),
			"found", local)
		return "", false
	}
	return id, true
}

func (r *resolver) miss(ctx context.Context, table string, sel *dto.LookupReference) {
	err := errors.ResolutionMiss(table, sel.Name(), sel.ID())
	r.logger.WarnContext(ctx, "Selection did not resolve",
		"table", table,
		"name", sel.Name(),
		"id", sel.ID(),
		"error", err.Error())
}

func (r *resolver) debug(ctx context.Context, msg string, args ...any) {
	if r.verbose {
		r.logger.DebugContext(ctx, msg, args...)
	}
}
