package featurechoice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/builders"
)

type MatchTestSuite struct {
	suite.Suite
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchTestSuite))
}

func (s *MatchTestSuite) TestChoiceIDWinsOverTypeAndCategories() {
	target := builders.Categorized(
		builders.Choice("N", entities.FeatureTypePerkChoice, entities.TablePerk),
		map[string]string{"slot": "b"},
	)
	forest := []*entities.FeatureDef{
		builders.Choice("A", entities.FeatureTypeSkillChoice, entities.TableSkill),
		target,
	}

	sel := selected("N", entities.FeatureTypeSkillChoice)
	sel.SetCategories(map[string]string{"slot": "a"})

	s.Same(target, featurechoice.FindFeature(forest, sel))
}

func (s *MatchTestSuite) TestChoiceIDIsExact() {
	forest := []*entities.FeatureDef{
		builders.Choice("N", entities.FeatureTypeSkillChoice, entities.TableSkill),
	}

	s.Nil(featurechoice.FindFeature(forest, selected("n", entities.FeatureTypeSkillChoice)))
}

func (s *MatchTestSuite) TestDepthFirstOrder() {
	nested := builders.Choice("NESTED", entities.FeatureTypeSkillChoice, entities.TableSkill)
	sibling := builders.Choice("SIBLING", entities.FeatureTypeSkillChoice, entities.TableSkill)
	forest := []*entities.FeatureDef{
		builders.Group("G", "Group", nested),
		sibling,
	}

	s.Same(nested, featurechoice.FindFeature(forest, selected("", entities.FeatureTypeSkillChoice)))
}

func (s *MatchTestSuite) TestParentBeforeChildren() {
	child := builders.Choice("CHILD", entities.FeatureTypeSkillChoice, entities.TableSkill)
	parent := builders.Choice("PARENT", entities.FeatureTypeSkillChoice, entities.TableSkill, child)

	s.Same(parent, featurechoice.FindFeature([]*entities.FeatureDef{parent}, selected("", entities.FeatureTypeSkillChoice)))
	s.Same(child, featurechoice.FindFeature([]*entities.FeatureDef{parent}, selected("CHILD", "")))
}

func (s *MatchTestSuite) TestCategoriesMatch() {
	testCases := []struct {
		name       string
		selected   map[string]string
		definition map[string]string
		want       bool
	}{
		{name: "no selected categories", selected: nil, definition: map[string]string{"slot": "a"}, want: true},
		{name: "equal", selected: map[string]string{"slot": "a"}, definition: map[string]string{"slot": "a"}, want: true},
		{name: "different value", selected: map[string]string{"slot": "a"}, definition: map[string]string{"slot": "b"}, want: false},
		{name: "extra key on definition", selected: map[string]string{"slot": "a"}, definition: map[string]string{"slot": "a", "extra": "x"}, want: false},
		{name: "extra key on selection", selected: map[string]string{"slot": "a", "extra": "x"}, definition: map[string]string{"slot": "a"}, want: false},
		{name: "definition without categories", selected: map[string]string{"slot": "a"}, definition: nil, want: false},
		{name: "only type tag matches anything", selected: map[string]string{dto.TypeKey: "CategoriesDto"}, definition: map[string]string{"slot": "a"}, want: true},
		{name: "type tag ignored", selected: map[string]string{"slot": "a", dto.TypeKey: "CategoriesDto"}, definition: map[string]string{"slot": "a"}, want: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, featurechoice.CategoriesMatch(tc.selected, tc.definition))
		})
	}
}

func (s *MatchTestSuite) TestAsymmetricCategoriesDoNotMatch() {
	forest := []*entities.FeatureDef{
		builders.Categorized(
			builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
			map[string]string{"slot": "a", "extra": "x"},
		),
	}
	sel := selected("", entities.FeatureTypeSkillChoice)
	sel.SetCategories(map[string]string{"slot": "a"})

	s.Nil(featurechoice.FindFeature(forest, sel))
}

func (s *MatchTestSuite) TestMatchOption() {
	options := []entities.FeatureOption{{ID: "O1", Name: "Lore"}, {ID: "O2", Name: "Arcána"}}

	id, ok := featurechoice.MatchOption(options, dto.NewLookupReference("", "O1", "Wrong"))
	s.True(ok)
	s.Equal("O1", id)

	id, ok = featurechoice.MatchOption(options, dto.NewLookupReference("", "", "arcana"))
	s.True(ok)
	s.Equal("O2", id)

	_, ok = featurechoice.MatchOption(options, dto.NewLookupReference("", "", ""))
	s.False(ok)
}

func (s *MatchTestSuite) TestMergeLevelChoices() {
	dst := map[string][]string{"A": {"1"}, "B": {"2"}}
	src := map[string][]string{"B": {"3"}, "C": {"4"}}

	merged := featurechoice.MergeLevelChoices(dst, src)
	s.Equal(map[string][]string{"A": {"1"}, "B": {"3"}, "C": {"4"}}, merged)

	src["C"][0] = "changed"
	s.Equal("4", merged["C"][0])

	s.Equal(map[string][]string{"X": {"1"}}, featurechoice.MergeLevelChoices(nil, map[string][]string{"X": {"1"}}))
}
