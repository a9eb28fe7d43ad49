package builders

import (
	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// TokenBuilder provides a fluent interface for building tokens
type TokenBuilder struct {
	token *entities.Token
}

// NewTokenBuilder creates a builder for a hero token
func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{
		token: &entities.Token{
			ID:   "token-1",
			Name: "Aria",
			Character: &entities.Character{
				Type:         entities.CharacterTypeHero,
				LevelChoices: make(map[string][]string),
			},
		},
	}
}

func (b *TokenBuilder) WithID(id string) *TokenBuilder {
	b.token.ID = id
	return b
}

func (b *TokenBuilder) WithName(name string) *TokenBuilder {
	b.token.Name = name
	return b
}

// WithPortrait sets the portrait image, frame and zoom
func (b *TokenBuilder) WithPortrait(image, frame string, zoom float64) *TokenBuilder {
	b.token.Portrait = image
	b.token.PortraitFrame = frame
	b.token.PortraitZoom = zoom
	return b
}

// WithOffset sets the portrait offset in host units
func (b *TokenBuilder) WithOffset(x, y float64) *TokenBuilder {
	b.token.PortraitOffset = entities.Vector2{X: x, Y: y}
	return b
}

func (b *TokenBuilder) WithOwner(ownerID string) *TokenBuilder {
	b.token.OwnerID = ownerID
	return b
}

func (b *TokenBuilder) WithParty(partyID string) *TokenBuilder {
	b.token.PartyID = partyID
	return b
}

// WithCharacterType overrides the hero type
func (b *TokenBuilder) WithCharacterType(t string) *TokenBuilder {
	b.token.Character.Type = t
	return b
}

// WithoutCharacter removes the character
func (b *TokenBuilder) WithoutCharacter() *TokenBuilder {
	b.token.Character = nil
	return b
}

func (b *TokenBuilder) WithAncestry(id string) *TokenBuilder {
	b.token.Character.AncestryID = id
	return b
}

func (b *TokenBuilder) WithCareer(id string) *TokenBuilder {
	b.token.Character.CareerID = id
	return b
}

// WithClass appends a class entry
func (b *TokenBuilder) WithClass(classID, subclassID string, level int) *TokenBuilder {
	b.token.Character.Classes = append(b.token.Character.Classes, entities.ClassEntry{
		ClassID:    classID,
		SubclassID: subclassID,
		Level:      level,
	})
	return b
}

// WithCulture sets the language and aspect slots
func (b *TokenBuilder) WithCulture(languageID string, aspects map[string]string) *TokenBuilder {
	b.token.Character.Culture = entities.Culture{LanguageID: languageID, Aspects: aspects}
	return b
}

func (b *TokenBuilder) WithCharacterTypeID(id string) *TokenBuilder {
	b.token.Character.CharacterTypeID = id
	return b
}

func (b *TokenBuilder) WithComplication(id string) *TokenBuilder {
	b.token.Character.ComplicationID = id
	return b
}

func (b *TokenBuilder) WithAttribute(name string, value int) *TokenBuilder {
	if b.token.Character.Attributes == nil {
		b.token.Character.Attributes = make(map[string]int)
	}
	b.token.Character.Attributes[name] = value
	return b
}

func (b *TokenBuilder) WithResistances(r map[string]any) *TokenBuilder {
	b.token.Character.Resistances = r
	return b
}

func (b *TokenBuilder) WithInnateAbilities(a ...any) *TokenBuilder {
	b.token.Character.InnateAbilities = a
	return b
}

func (b *TokenBuilder) WithFeatures(f ...any) *TokenBuilder {
	b.token.Character.Features = f
	return b
}

// WithLevelChoice records the picks for a feature
func (b *TokenBuilder) WithLevelChoice(featureID string, ids ...string) *TokenBuilder {
	b.token.Character.SetLevelChoice(featureID, ids)
	return b
}

// Build returns the token
func (b *TokenBuilder) Build() *entities.Token {
	return b.token
}
