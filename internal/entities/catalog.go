package entities

// Catalog table names
const (
	TableRace          = "Race"
	TableBackground    = "Background"
	TableClass         = "Class"
	TableSubclass      = "Subclass"
	TableCultureAspect = "CultureAspect"
	TableLanguage      = "Language"
	TableCharacterType = "CharacterType"
	TableComplication  = "Complication"
	TableDeity         = "Deity"
	TableDomain        = "Domain"
	TableSkill         = "Skill"
	TablePerk          = "Perk"

	// TableInlineOptions marks a choice whose options live on the feature itself
	TableInlineOptions = "$options"
)

// Feature definition types
const (
	FeatureTypeFeature        = "feature"
	FeatureTypeOptionChoice   = "option-choice"
	FeatureTypeSkillChoice    = "skill-choice"
	FeatureTypeLanguageChoice = "language-choice"
	FeatureTypeDeityChoice    = "deity-choice"
	FeatureTypeDomainChoice   = "domain-choice"
	FeatureTypeAbilityChoice  = "ability-choice"
	FeatureTypePerkChoice     = "perk-choice"
)

// Table is one catalog table: rows in iteration order plus an ID index
type Table struct {
	Name string
	rows []*CatalogRecord
	byID map[string]*CatalogRecord
}

// NewTable builds a table from rows, keeping their order. A later row with a
// duplicate ID replaces the earlier one in place.
func NewTable(name string, rows ...*CatalogRecord) *Table {
	t := &Table{Name: name, byID: make(map[string]*CatalogRecord, len(rows))}
	for _, row := range rows {
		t.Add(row)
	}
	return t
}

// Add appends row, or replaces the row with the same ID
func (t *Table) Add(row *CatalogRecord) {
	if row == nil || row.ID == "" {
		return
	}
	if row.Table == "" {
		row.Table = t.Name
	}
	if _, ok := t.byID[row.ID]; ok {
		for i, existing := range t.rows {
			if existing.ID == row.ID {
				t.rows[i] = row
			}
		}
	} else {
		t.rows = append(t.rows, row)
	}
	t.byID[row.ID] = row
}

// Get returns the row with id
func (t *Table) Get(id string) (*CatalogRecord, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.byID[id]
	return row, ok
}

// All returns the rows in iteration order
func (t *Table) All() []*CatalogRecord {
	if t == nil {
		return nil
	}
	return t.rows
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// CatalogRecord is one row of a catalog table
type CatalogRecord struct {
	Table    string        `json:"table"`
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Hidden   bool          `json:"hidden,omitempty"`
	Features []*FeatureDef `json:"features,omitempty"`

	// LevelFeatures holds features gained per level (classes and subclasses)
	LevelFeatures map[int][]*FeatureDef `json:"level_features,omitempty"`
}

// GetID returns the record's ID
func (r *CatalogRecord) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *CatalogRecord) GetType() string {
	return EntityTypeCatalogRecord
}

// FeaturesThrough returns the level features for levels 1..level in level order
func (r *CatalogRecord) FeaturesThrough(level int) []*FeatureDef {
	if r == nil {
		return nil
	}
	var out []*FeatureDef
	for l := 1; l <= level; l++ {
		out = append(out, r.LevelFeatures[l]...)
	}
	return out
}

// FeatureDef is a node of a feature definition tree
type FeatureDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Type        string            `json:"type"`
	ChoiceTable string            `json:"choice_table,omitempty"`
	Options     []FeatureOption   `json:"options,omitempty"`
	Categories  map[string]string `json:"categories,omitempty"`
	Features    []*FeatureDef     `json:"features,omitempty"`
}

// HasInlineOptions reports whether picks come from Options instead of a table
func (f *FeatureDef) HasInlineOptions() bool {
	return f.Type == FeatureTypeOptionChoice || f.ChoiceTable == TableInlineOptions
}

// FeatureOption is one inline option of an option-choice feature
type FeatureOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
