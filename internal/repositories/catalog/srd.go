package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

const defaultSRDBaseURL = "https://www.dnd5eapi.co/api/2014/"

// SRDConfig contains configuration for the SRD catalog reader.
type SRDConfig struct {
	// Client overrides the API client, mainly for tests
	Client dnd5e.Interface
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached API client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the SRDConfig and sets defaults if not provided.
func (cfg *SRDConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSRDBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type srdReader struct {
	client dnd5e.Interface
}

// NewSRD creates a read-only catalog backed by the public 5e SRD API. It
// serves the Race, Class, Background and Skill tables; other tables are empty.
func NewSRD(cfg *SRDConfig) (Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		client = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return &srdReader{client: client}, nil
}

// SRDID converts an API key to a catalog ID
// e.g., ("Race", "half-elf") -> "RACE_HALF_ELF"
func SRDID(table, key string) string {
	return strings.ToUpper(table) + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func (r *srdReader) GetTable(ctx context.Context, input GetTableInput) (*GetTableOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errTableNameEmpty)
	}

	var (
		refs []*apientities.ReferenceItem
		err  error
	)
	switch input.Name {
	case entities.TableRace:
		refs, err = r.client.ListRaces()
	case entities.TableClass:
		refs, err = r.client.ListClasses()
	case entities.TableBackground:
		refs, err = r.client.ListBackgrounds()
	case entities.TableSkill:
		refs, err = r.client.ListSkills()
	default:
		return &GetTableOutput{Table: entities.NewTable(input.Name)}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s from D&D 5e API", input.Name)
	}
	slog.DebugContext(ctx, "Got SRD references",
		"table", input.Name,
		"count", len(refs))

	rows := make([]*entities.CatalogRecord, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		rows = append(rows, &entities.CatalogRecord{
			Table: input.Name,
			ID:    SRDID(input.Name, ref.Key),
			Name:  ref.Name,
		})
	}

	if input.Name == entities.TableClass {
		if err := r.loadClassFeatures(ctx, refs, rows); err != nil {
			return nil, err
		}
	}

	return &GetTableOutput{Table: entities.NewTable(input.Name, rows...)}, nil
}

// loadClassFeatures attaches level 1 features to each class row concurrently.
// rows must line up with the non-empty refs.
func (r *srdReader) loadClassFeatures(ctx context.Context, refs []*apientities.ReferenceItem, rows []*entities.CatalogRecord) error {
	keys := make([]string, 0, len(rows))
	for _, ref := range refs {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}

	errChan := make(chan error, len(keys))
	var wg sync.WaitGroup

	for i, key := range keys {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			level1, err := r.client.GetClassLevel(key, 1)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to get class level", "class", key, "error", err)
				errChan <- fmt.Errorf("failed to get class level 1 for %s: %w", key, err)
				return
			}
			if level1 == nil {
				return
			}

			features := make([]*entities.FeatureDef, 0, len(level1.Features))
			for _, ref := range level1.Features {
				if ref == nil {
					continue
				}
				features = append(features, &entities.FeatureDef{
					ID:   ref.Key,
					Name: ref.Name,
					Type: entities.FeatureTypeFeature,
				})
			}
			rows[idx].LevelFeatures = map[int][]*entities.FeatureDef{1: features}
		}(i, key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return errors.Wrap(err, "failed to load class features")
		}
	}
	return nil
}

func (r *srdReader) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	out, err := r.GetTable(ctx, GetTableInput{Name: input.Table})
	if err != nil {
		return nil, err
	}
	for _, row := range out.Table.All() {
		if row.Name == input.Name {
			return &FindByNameOutput{Record: row}, nil
		}
	}
	return nil, errors.NotFoundf("%s named %q not found", input.Table, input.Name)
}
