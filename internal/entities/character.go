package entities

// CharacterTypeHero is the only character kind that can be exported
const CharacterTypeHero = "hero"

// Culture aspect slots
const (
	AspectEnvironment  = "environment"
	AspectOrganization = "organization"
	AspectUpbringing   = "upbringing"
)

// Character is the live character attached to a token
type Character struct {
	Type            string                 `json:"type"`
	AncestryID      string                 `json:"ancestry_id,omitempty"`
	CareerID        string                 `json:"career_id,omitempty"`
	Classes         []ClassEntry           `json:"classes,omitempty"`
	Culture         Culture                `json:"culture"`
	CharacterTypeID string                 `json:"character_type_id,omitempty"`
	ComplicationID  string                 `json:"complication_id,omitempty"`
	Attributes      map[string]int         `json:"attributes,omitempty"`
	Resistances     map[string]interface{} `json:"resistances,omitempty"`
	InnateAbilities []interface{}          `json:"innate_abilities,omitempty"`
	Features        []interface{}          `json:"features,omitempty"`

	// LevelChoices maps a feature definition ID to the IDs picked for it
	LevelChoices map[string][]string `json:"level_choices,omitempty"`
}

// ClassEntry is one class taken by a character
type ClassEntry struct {
	ClassID    string `json:"class_id"`
	SubclassID string `json:"subclass_id,omitempty"`
	Level      int    `json:"level"`
}

// Culture holds the language and the aspect picked for each slot
type Culture struct {
	LanguageID string            `json:"language_id,omitempty"`
	Aspects    map[string]string `json:"aspects,omitempty"`
}

// IsHero reports whether the character can be exported
func (c *Character) IsHero() bool {
	return c != nil && c.Type == CharacterTypeHero
}

// PrimaryClass returns the first class entry, or nil when the character has none
func (c *Character) PrimaryClass() *ClassEntry {
	if c == nil || len(c.Classes) == 0 {
		return nil
	}
	return &c.Classes[0]
}

// SetLevelChoice records the picks for one feature, replacing earlier picks
func (c *Character) SetLevelChoice(featureID string, ids []string) {
	if c.LevelChoices == nil {
		c.LevelChoices = make(map[string][]string)
	}
	c.LevelChoices[featureID] = ids
}
