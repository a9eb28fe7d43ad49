package builders

import (
	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// Feature IDs used by the standard world
const (
	FeatureElfTraits   = "F-ELF-TRAITS"
	FeatureElfSkill    = "F-ELF-SKILL"
	FeatureElfLanguage = "F-ELF-LANG"
	FeatureSageFocus   = "F-SAGE-FOCUS"
	FeatureDeity       = "F-DEITY"
	FeatureDeityDomain = "F-DEITY-domains"
	FeatureClericSkill = "F-CL-SKILL"
	FeatureClericPerk  = "F-CL-PERK"
	FeatureLifePerk    = "F-LIFE-PERK"
	FeatureUrbanSkill  = "F-URBAN-SKILL"
)

// StandardTables returns a fresh copy of a small, complete catalog
func StandardTables() []*entities.Table {
	return []*entities.Table{
		entities.NewTable(entities.TableRace,
			NewRecordBuilder("R1", "Elf").
				WithFeatures(Group(FeatureElfTraits, "Elven Traits",
					Categorized(Choice(FeatureElfSkill, entities.FeatureTypeSkillChoice, entities.TableSkill),
						map[string]string{"slot": "a"}),
					Choice(FeatureElfLanguage, entities.FeatureTypeLanguageChoice, entities.TableLanguage),
				)).
				Build(),
			Row("R2", "Dwarf"),
		),
		entities.NewTable(entities.TableBackground,
			NewRecordBuilder("B1", "Sage").
				WithFeatures(Options(FeatureSageFocus,
					entities.FeatureOption{ID: "O1", Name: "Lore"},
					entities.FeatureOption{ID: "O2", Name: "Arcana"},
				)).
				Build(),
		),
		entities.NewTable(entities.TableClass,
			NewRecordBuilder("C1", "Cleric").
				WithLevelFeatures(1, Choice(FeatureDeity, entities.FeatureTypeDeityChoice, entities.TableDeity)).
				WithLevelFeatures(2, Choice(FeatureClericSkill, entities.FeatureTypeSkillChoice, entities.TableSkill)).
				WithLevelFeatures(4, Choice(FeatureClericPerk, entities.FeatureTypePerkChoice, entities.TablePerk)).
				Build(),
			Row("C2", "Fighter"),
		),
		entities.NewTable(entities.TableSubclass,
			NewRecordBuilder("SC1", "Life").
				WithLevelFeatures(1, Choice(FeatureLifePerk, entities.FeatureTypePerkChoice, entities.TablePerk)).
				Build(),
		),
		entities.NewTable(entities.TableCultureAspect,
			NewRecordBuilder("CA1", "Urban").
				WithFeatures(Choice(FeatureUrbanSkill, entities.FeatureTypeSkillChoice, entities.TableSkill)).
				Build(),
			Row("CA2", "Guild"),
			Row("CA3", "Noble"),
		),
		entities.NewTable(entities.TableLanguage, Row("L1", "Common"), Row("L2", "Elvish")),
		entities.NewTable(entities.TableSkill, Row("S1", "Stealth"), Row("S2", "Lore"), Row("S3", "Athletics")),
		entities.NewTable(entities.TableDeity, Row("D1", "Sol")),
		entities.NewTable(entities.TableDomain, Row("DM1", "Light"), Row("DM2", "Life")),
		entities.NewTable(entities.TablePerk, Row("P1", "Healer"), Row("P2", "Tough")),
		entities.NewTable(entities.TableCharacterType, Row("CT1", "Hero")),
		entities.NewTable(entities.TableComplication, Row("CX1", "Cursed")),
	}
}

// StandardHero returns a builder for a hero built from StandardTables
// with a pick recorded for every feature available at level 3
func StandardHero() *TokenBuilder {
	return NewTokenBuilder().
		WithPortrait("portraits/aria.png", "frames/gold.png", 1.5).
		WithOffset(0.125, -0.375).
		WithOwner("user-1").
		WithAncestry("R1").
		WithCareer("B1").
		WithClass("C1", "SC1", 3).
		WithCulture("L1", map[string]string{
			entities.AspectEnvironment:  "CA1",
			entities.AspectOrganization: "CA2",
			entities.AspectUpbringing:   "CA3",
		}).
		WithCharacterTypeID("CT1").
		WithComplication("CX1").
		WithAttribute("might", 2).
		WithAttribute("agility", -1).
		WithResistances(map[string]any{"fire": 5.0}).
		WithInnateAbilities("darkvision").
		WithFeatures(map[string]any{"id": "X1", "uses": 2.0}).
		WithLevelChoice(FeatureElfSkill, "S1").
		WithLevelChoice(FeatureElfLanguage, "L2").
		WithLevelChoice(FeatureSageFocus, "O2").
		WithLevelChoice(FeatureDeity, "D1").
		WithLevelChoice(FeatureDeityDomain, "DM1").
		WithLevelChoice(FeatureClericSkill, "S2").
		WithLevelChoice(FeatureLifePerk, "P1").
		WithLevelChoice(FeatureUrbanSkill, "S3")
}
