package transfer

//go:generate mockgen -destination=mock/mock_exporter.go -package=transfermock github.com/KirkDiggler/rpg-porter/internal/orchestrators/transfer Exporter,Importer,Notifier,Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
)

// Subsystem tags written on exported feature choices
const (
	SourceAncestry = "ancestry"
	SourceCareer   = "career"
	SourceClass    = "class"
	SourceCulture  = "culture"
)

// Exporter turns a live token into a portable envelope
type Exporter interface {
	// Export reads token against the local catalog.
	// Returns errors.FailedPrecondition unless the token carries a hero
	Export(ctx context.Context, token *entities.Token) (*dto.Envelope, error)
}

// ExporterConfig holds the dependencies for the exporter
type ExporterConfig struct {
	// References reads display names and feature trees from the source catalog
	References reference.Resolver
	Clock      clock.Clock
	Logger     *slog.Logger
	Verbose    bool
}

// Validate ensures all required dependencies are provided
func (c *ExporterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.References == nil {
		vb.RequiredField("References")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type exporter struct {
	refs    reference.Resolver
	clock   clock.Clock
	logger  *slog.Logger
	verbose bool
}

// NewExporter creates an exporter
func NewExporter(cfg *ExporterConfig) (Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &exporter{
		refs:    cfg.References,
		clock:   cfg.Clock,
		logger:  logger,
		verbose: cfg.Verbose,
	}, nil
}

func (e *exporter) Export(ctx context.Context, token *entities.Token) (*dto.Envelope, error) {
	if token == nil {
		return nil, errors.Validation("no token to export")
	}
	if !token.Character.IsHero() {
		return nil, errors.Validation("token does not carry a hero character").
			WithMeta("token_id", token.ID)
	}
	source := token.Character

	character := dto.NewCharacter()
	character.SetCharacterTypeRef(e.reference(ctx, entities.TableCharacterType, source.CharacterTypeID))
	character.SetComplication(e.reference(ctx, entities.TableComplication, source.ComplicationID))
	e.exportAncestry(ctx, source, character)
	e.exportCareer(ctx, source, character)
	e.exportClass(ctx, source, character)
	e.exportCulture(ctx, source, character)
	if err := e.exportVerbatim(source, character); err != nil {
		return nil, err
	}

	env := dto.NewEnvelope()
	env.SetMetadata(dto.NewExportMetadata(e.clock.Now()))
	env.SetToken(exportToken(token))
	env.SetCharacter(character)

	e.logger.InfoContext(ctx, "Exported character",
		"token_id", token.ID,
		"name", token.Name,
		"level_choices", len(source.LevelChoices))
	return env, nil
}

// exportToken copies the display and ownership fields. The offset is
// written in percent.
func exportToken(token *entities.Token) *dto.Token {
	out := dto.NewToken()
	out.SetName(token.Name)
	out.SetPortrait(token.Portrait)
	out.SetPortraitFrame(token.PortraitFrame)
	out.SetPortraitZoom(token.PortraitZoom)
	out.SetOwnerID(token.OwnerID)
	out.SetPartyID(token.PartyID)
	out.SetPortraitOffset(dto.NewPortraitOffset(
		token.PortraitOffset.X*offsetScale,
		token.PortraitOffset.Y*offsetScale,
	))
	return out
}

func (e *exporter) exportAncestry(ctx context.Context, source *entities.Character, out *dto.Character) {
	if source.AncestryID == "" {
		return
	}
	ancestry := dto.NewAncestry()
	ancestry.SetReference(e.reference(ctx, entities.TableRace, source.AncestryID))
	ancestry.SetSelectedFeatures(e.selectedFeatures(ctx, e.features(ctx, entities.TableRace, source.AncestryID), source.LevelChoices, SourceAncestry))
	out.SetAncestry(ancestry)
}

func (e *exporter) exportCareer(ctx context.Context, source *entities.Character, out *dto.Character) {
	if source.CareerID == "" {
		return
	}
	career := dto.NewCareer()
	career.SetReference(e.reference(ctx, entities.TableBackground, source.CareerID))
	career.SetSelectedFeatures(e.selectedFeatures(ctx, e.features(ctx, entities.TableBackground, source.CareerID), source.LevelChoices, SourceCareer))
	out.SetCareer(career)
}

// exportClass writes the first class entry only; further entries are not
// carried across.
func (e *exporter) exportClass(ctx context.Context, source *entities.Character, out *dto.Character) {
	entry := source.PrimaryClass()
	if entry == nil || entry.ClassID == "" {
		return
	}
	if len(source.Classes) > 1 {
		e.logger.WarnContext(ctx, "Exporting first class only",
			"class_id", entry.ClassID,
			"classes", len(source.Classes))
	}

	class := dto.NewClass()
	class.SetReference(e.reference(ctx, entities.TableClass, entry.ClassID))
	class.SetLevel(entry.Level)
	level := class.Level()

	var forest []*entities.FeatureDef
	if row, ok := e.refs.Lookup(ctx, entities.TableClass, entry.ClassID); ok {
		forest = append(forest, row.FeaturesThrough(level)...)
	}
	if entry.SubclassID != "" {
		class.SetSubclass(e.reference(ctx, entities.TableSubclass, entry.SubclassID))
		if row, ok := e.refs.Lookup(ctx, entities.TableSubclass, entry.SubclassID); ok {
			forest = append(forest, row.FeaturesThrough(level)...)
		}
	}

	class.SetSelectedFeatures(e.selectedFeatures(ctx, forest, source.LevelChoices, SourceClass))
	out.SetClass(class)
}

func (e *exporter) exportCulture(ctx context.Context, source *entities.Character, out *dto.Character) {
	c := source.Culture
	if c.LanguageID == "" && len(c.Aspects) == 0 {
		return
	}

	culture := dto.NewCulture()
	culture.SetLanguage(e.reference(ctx, entities.TableLanguage, c.LanguageID))
	for _, slot := range dto.AspectSlots {
		id := c.Aspects[slot]
		if id == "" {
			continue
		}
		aspect := dto.NewCultureAspect()
		aspect.SetReference(e.reference(ctx, entities.TableCultureAspect, id))
		aspect.SetSelectedFeatures(e.selectedFeatures(ctx, e.features(ctx, entities.TableCultureAspect, id), source.LevelChoices, SourceCulture))
		culture.SetAspect(slot, aspect)
	}
	out.SetCulture(culture)
}

func (e *exporter) exportVerbatim(source *entities.Character, out *dto.Character) error {
	if len(source.Attributes) > 0 {
		attributes := dto.NewAttributes()
		for name, value := range source.Attributes {
			attributes.SetValue(name, value)
		}
		out.SetAttributes(attributes)
	}
	if err := out.SetResistances(source.Resistances); err != nil {
		return errors.Wrap(err, "failed to copy resistances")
	}
	if err := out.SetInnateAbilities(source.InnateAbilities); err != nil {
		return errors.Wrap(err, "failed to copy innate abilities")
	}
	if err := out.SetFeatures(source.Features); err != nil {
		return errors.Wrap(err, "failed to copy features")
	}
	return nil
}

// reference builds a lookup reference for a local row, naming it from the
// catalog. A row missing from the catalog is still exported by id.
func (e *exporter) reference(ctx context.Context, table, id string) *dto.LookupReference {
	if id == "" {
		return nil
	}
	name := ""
	if row, ok := e.refs.Lookup(ctx, table, id); ok {
		name = row.Name
	} else {
		e.logger.WarnContext(ctx, "Exporting reference without a catalog row",
			"table", table,
			"id", id)
	}
	return dto.NewLookupReference(table, id, name)
}

func (e *exporter) features(ctx context.Context, table, id string) []*entities.FeatureDef {
	row, ok := e.refs.Lookup(ctx, table, id)
	if !ok {
		return nil
	}
	return row.Features
}

// selectedFeatures flattens every node of forest that has picks recorded in
// choices. Nodes sharing an ID overwrite one another, the later node winning.
func (e *exporter) selectedFeatures(ctx context.Context, forest []*entities.FeatureDef, choices map[string][]string, source string) *dto.SelectedFeatures {
	var (
		order []string
		flat  = make(map[string]*dto.SelectedFeature)
	)
	var walk func(nodes []*entities.FeatureDef)
	walk = func(nodes []*entities.FeatureDef) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			if ids := choices[node.ID]; len(ids) > 0 {
				if _, seen := flat[node.ID]; !seen {
					order = append(order, node.ID)
				}
				flat[node.ID] = e.selectedFeature(ctx, node, ids, source)
			}
			walk(node.Features)
		}
	}
	walk(forest)

	out := dto.NewSelectedFeatures()
	for _, id := range order {
		out.Put(flat[id])
		if domains := choices[id+dto.DomainsSuffix]; len(domains) > 0 {
			out.Put(e.domainFeature(ctx, id+dto.DomainsSuffix, domains, source))
		}
	}
	if e.verbose {
		e.logger.DebugContext(ctx, "Collected feature choices",
			"source", source,
			"features", out.Len())
	}
	return out
}

func (e *exporter) selectedFeature(ctx context.Context, node *entities.FeatureDef, ids []string, source string) *dto.SelectedFeature {
	feature := dto.NewSelectedFeature()
	feature.SetChoiceID(node.ID)
	feature.SetChoiceType(node.Type)
	feature.SetSource(source)
	feature.SetCategories(node.Categories)

	for _, id := range ids {
		if node.HasInlineOptions() {
			feature.AddSelection(dto.NewLookupReference(entities.TableInlineOptions, id, optionName(node.Options, id)))
			continue
		}
		feature.AddSelection(e.reference(ctx, node.ChoiceTable, id))
	}
	return feature
}

func (e *exporter) domainFeature(ctx context.Context, choiceID string, ids []string, source string) *dto.SelectedFeature {
	feature := dto.NewSelectedFeature()
	feature.SetChoiceID(choiceID)
	feature.SetChoiceType(entities.FeatureTypeDomainChoice)
	feature.SetSource(source)
	for _, id := range ids {
		feature.AddSelection(e.reference(ctx, entities.TableDomain, id))
	}
	return feature
}

func optionName(options []entities.FeatureOption, id string) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Name
		}
	}
	return ""
}
