package transfer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
)

// offsetScale converts host portrait offsets to document percent
const offsetScale = 100.0

// Importer builds a new token in this world from an envelope
type Importer interface {
	// Import creates a shell, fills it from env and registers it.
	// References that do not resolve are skipped and logged.
	// Returns errors.InvalidArgument for an envelope without a character
	// Returns errors.Internal when the shell cannot be created or registered
	Import(ctx context.Context, env *dto.Envelope) (*entities.Token, error)
}

// ImporterConfig holds the dependencies for the importer
type ImporterConfig struct {
	TokenRepo     token.Repository
	DirectoryRepo directory.Repository
	References    reference.Resolver
	Features      featurechoice.Resolver
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *ImporterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}
	if c.DirectoryRepo == nil {
		vb.RequiredField("DirectoryRepo")
	}
	if c.References == nil {
		vb.RequiredField("References")
	}
	if c.Features == nil {
		vb.RequiredField("Features")
	}
	return vb.Build()
}

type importer struct {
	tokenRepo     token.Repository
	directoryRepo directory.Repository
	refs          reference.Resolver
	features      featurechoice.Resolver
	logger        *slog.Logger
}

// NewImporter creates an importer
func NewImporter(cfg *ImporterConfig) (Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &importer{
		tokenRepo:     cfg.TokenRepo,
		directoryRepo: cfg.DirectoryRepo,
		refs:          cfg.References,
		features:      cfg.Features,
		logger:        logger,
	}, nil
}

func (i *importer) Import(ctx context.Context, env *dto.Envelope) (*entities.Token, error) {
	if env == nil || env.Character() == nil {
		return nil, errors.Parse("document has no character")
	}

	shell, err := i.tokenRepo.CreateShell(ctx, token.CreateShellInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character shell")
	}
	dest := shell.Token
	if dest.Character == nil {
		dest.Character = &entities.Character{Type: entities.CharacterTypeHero}
	}

	if src := env.Token(); src != nil {
		importToken(src, dest)
		i.assignOwnership(ctx, src, dest)
	} else {
		i.assignOwnership(ctx, dto.NewToken(), dest)
	}

	source := env.Character()
	character := dest.Character
	character.CharacterTypeID, _ = i.resolve(ctx, source.CharacterTypeRef(), entities.TableCharacterType)
	character.ComplicationID, _ = i.resolve(ctx, source.Complication(), entities.TableComplication)
	i.importAncestry(ctx, source, character)
	i.importCareer(ctx, source, character)
	i.importClass(ctx, source, character)
	i.importCulture(ctx, source, character)
	importVerbatim(source, character)

	registered, err := i.tokenRepo.Register(ctx, token.RegisterInput{Token: dest})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register imported character")
	}

	i.logger.InfoContext(ctx, "Imported character",
		"token_id", registered.Token.ID,
		"name", registered.Token.Name,
		"level_choices", len(character.LevelChoices))
	return registered.Token, nil
}

func importToken(src *dto.Token, dest *entities.Token) {
	dest.Name = src.Name()
	dest.Portrait = src.Portrait()
	dest.PortraitFrame = src.PortraitFrame()
	dest.PortraitZoom = src.PortraitZoom()
	if offset := src.PortraitOffset(); offset != nil {
		dest.PortraitOffset = entities.Vector2{
			X: offset.X() / offsetScale,
			Y: offset.Y() / offsetScale,
		}
	}
}

// assignOwnership gives the token to its claimed owner when that user exists
// here, else to its claimed party, else to the world's default party.
func (i *importer) assignOwnership(ctx context.Context, src *dto.Token, dest *entities.Token) {
	if ownerID := src.OwnerID(); ownerID != "" {
		out, err := i.directoryRepo.UserExists(ctx, directory.UserExistsInput{ID: ownerID})
		switch {
		case err != nil:
			i.logger.WarnContext(ctx, "Owner lookup failed", "owner_id", ownerID, "error", err.Error())
		case out.Exists:
			dest.OwnerID = ownerID
			return
		default:
			i.logger.WarnContext(ctx, "Owner does not exist in this world", "owner_id", ownerID)
		}
	}

	if partyID := src.PartyID(); partyID != "" {
		out, err := i.directoryRepo.PartyExists(ctx, directory.PartyExistsInput{ID: partyID})
		switch {
		case err != nil:
			i.logger.WarnContext(ctx, "Party lookup failed", "party_id", partyID, "error", err.Error())
		case out.Exists:
			dest.PartyID = partyID
			return
		default:
			i.logger.WarnContext(ctx, "Party does not exist in this world", "party_id", partyID)
		}
	}

	out, err := i.directoryRepo.GetDefaultParty(ctx, directory.GetDefaultPartyInput{})
	if err != nil {
		i.logger.WarnContext(ctx, "No default party for imported character", "error", err.Error())
		return
	}
	dest.PartyID = out.PartyID
}

// resolve maps a reference to a local ID, logging misses
func (i *importer) resolve(ctx context.Context, ref *dto.LookupReference, table string) (string, bool) {
	if ref.IsEmpty() {
		return "", false
	}
	if t := ref.TableName(); t != "" {
		table = t
	}
	id, ok := i.refs.Resolve(ctx, table, ref.Name(), ref.ID())
	if !ok {
		err := errors.ResolutionMiss(table, ref.Name(), ref.ID())
		i.logger.WarnContext(ctx, "Reference did not resolve",
			"table", table,
			"name", ref.Name(),
			"id", ref.ID(),
			"error", err.Error())
		return "", false
	}
	return id, true
}

func (i *importer) rowFeatures(ctx context.Context, table, id string) []*entities.FeatureDef {
	row, ok := i.refs.Lookup(ctx, table, id)
	if !ok {
		i.logger.WarnContext(ctx, "Resolved reference has no local row; skipping its choices",
			"table", table,
			"id", id)
		return nil
	}
	return row.Features
}

func (i *importer) mergeChoices(ctx context.Context, selected *dto.SelectedFeatures, forest []*entities.FeatureDef, character *entities.Character) {
	if selected.Len() == 0 {
		return
	}
	choices := i.features.Resolve(ctx, selected, forest)
	character.LevelChoices = featurechoice.MergeLevelChoices(character.LevelChoices, choices)
}

func (i *importer) importAncestry(ctx context.Context, source *dto.Character, character *entities.Character) {
	ancestry := source.Ancestry()
	if ancestry == nil {
		return
	}
	id, ok := i.resolve(ctx, ancestry.Reference(), entities.TableRace)
	if !ok {
		return
	}
	character.AncestryID = id
	i.mergeChoices(ctx, ancestry.SelectedFeatures(), i.rowFeatures(ctx, entities.TableRace, id), character)
}

func (i *importer) importCareer(ctx context.Context, source *dto.Character, character *entities.Character) {
	career := source.Career()
	if career == nil {
		return
	}
	id, ok := i.resolve(ctx, career.Reference(), entities.TableBackground)
	if !ok {
		return
	}
	character.CareerID = id
	i.mergeChoices(ctx, career.SelectedFeatures(), i.rowFeatures(ctx, entities.TableBackground, id), character)
}

// importClass creates the single class entry. A subclass that does not
// resolve leaves the class in place without it.
func (i *importer) importClass(ctx context.Context, source *dto.Character, character *entities.Character) {
	class := source.Class()
	if class == nil {
		return
	}
	classID, ok := i.resolve(ctx, class.Reference(), entities.TableClass)
	if !ok {
		return
	}

	entry := entities.ClassEntry{ClassID: classID, Level: class.Level()}
	var forest []*entities.FeatureDef
	if row, found := i.refs.Lookup(ctx, entities.TableClass, classID); found {
		forest = append(forest, row.FeaturesThrough(entry.Level)...)
	}
	if subclassID, found := i.resolve(ctx, class.Subclass(), entities.TableSubclass); found {
		entry.SubclassID = subclassID
		if row, ok := i.refs.Lookup(ctx, entities.TableSubclass, subclassID); ok {
			forest = append(forest, row.FeaturesThrough(entry.Level)...)
		}
	}

	character.Classes = []entities.ClassEntry{entry}
	i.mergeChoices(ctx, class.SelectedFeatures(), forest, character)
}

func (i *importer) importCulture(ctx context.Context, source *dto.Character, character *entities.Character) {
	culture := source.Culture()
	if culture == nil {
		return
	}
	if id, ok := i.resolve(ctx, culture.Language(), entities.TableLanguage); ok {
		character.Culture.LanguageID = id
	}

	for _, slot := range dto.AspectSlots {
		aspect := culture.Aspect(slot)
		if aspect == nil {
			continue
		}
		id, ok := i.resolve(ctx, aspect.Reference(), entities.TableCultureAspect)
		if !ok {
			continue
		}
		if character.Culture.Aspects == nil {
			character.Culture.Aspects = make(map[string]string, len(dto.AspectSlots))
		}
		character.Culture.Aspects[slot] = id
		i.mergeChoices(ctx, aspect.SelectedFeatures(), i.rowFeatures(ctx, entities.TableCultureAspect, id), character)
	}
}

func importVerbatim(source *dto.Character, character *entities.Character) {
	if attributes := source.Attributes(); attributes != nil {
		character.Attributes = attributes.Values()
	}
	character.Resistances = source.Resistances()
	character.InnateAbilities = source.InnateAbilities()
	character.Features = source.Features()
}
