package featurechoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	catalogmock "github.com/KirkDiggler/rpg-porter/internal/repositories/catalog/mock"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/mocks"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockReader
	resolver    featurechoice.Resolver
	ctx         context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockReader(s.ctrl)
	s.ctx = context.Background()

	refs, err := reference.New(&reference.Config{Catalog: s.mockCatalog})
	s.Require().NoError(err)

	s.resolver, err = featurechoice.New(&featurechoice.Config{References: refs, Verbose: true})
	s.Require().NoError(err)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func selected(choiceID, choiceType string, refs ...*dto.LookupReference) *dto.SelectedFeature {
	f := dto.NewSelectedFeature()
	if choiceID != "" {
		f.SetChoiceID(choiceID)
	}
	if choiceType != "" {
		f.SetChoiceType(choiceType)
	}
	for _, ref := range refs {
		f.AddSelection(ref)
	}
	return f
}

func collection(features ...*dto.SelectedFeature) *dto.SelectedFeatures {
	all := dto.NewSelectedFeatures()
	for _, f := range features {
		all.Put(f)
	}
	return all
}

func (s *ResolverTestSuite) TestDomainChoiceResolvesAlongsideDeity() {
	mocks.ExpectCatalog(s.mockCatalog,
		entities.NewTable(entities.TableDeity, builders.Row("D1", "Sol")),
		entities.NewTable(entities.TableDomain, builders.Row("DM1", "Light")),
	)
	forest := []*entities.FeatureDef{
		builders.Choice("deity-guid", entities.FeatureTypeDeityChoice, entities.TableDeity),
	}

	deity := selected("", entities.FeatureTypeDeityChoice, dto.NewLookupReference("Deity", "", "Sol"))
	domains := selected("deity-guid-domains", "", dto.NewLookupReference("Domain", "", "Light"))
	got := s.resolver.Resolve(s.ctx, collection(deity, domains), forest)

	s.Equal(map[string][]string{
		"deity-guid":         {"D1"},
		"deity-guid-domains": {"DM1"},
	}, got)
}

func (s *ResolverTestSuite) TestUnresolvedFeatureIsOmitted() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableSkill, builders.Row("S1", "Stealth")))
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
		builders.Choice("F2", entities.FeatureTypeLanguageChoice, entities.TableLanguage),
	}

	got := s.resolver.Resolve(s.ctx, collection(
		selected("F1", "", dto.NewLookupReference("Skill", "", "Juggling")),
		selected("F2", ""),
	), forest)

	s.Empty(got)
	_, ok := got["F1"]
	s.False(ok)
}

func (s *ResolverTestSuite) TestPartialResolutionKeepsResolvedPicks() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableSkill,
		builders.Row("S1", "Stealth"),
		builders.Row("S2", "Lore"),
	))
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
	}

	got := s.resolver.Resolve(s.ctx, collection(selected("F1", "",
		dto.NewLookupReference("Skill", "X9", "Stealth"),
		dto.NewLookupReference("Skill", "", "Juggling"),
		dto.NewLookupReference("Skill", "S2", ""),
	)), forest)

	s.Equal(map[string][]string{"F1": {"S1", "S2"}}, got)
}

func (s *ResolverTestSuite) TestNameVerificationRejectsCollidingID() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableSkill,
		builders.Row("S1", "Athletics"),
	))
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
	}

	// S1 exists locally but names a different skill
	got := s.resolver.Resolve(s.ctx, collection(selected("F1", "",
		dto.NewLookupReference("Skill", "S1", "Stealth"),
	)), forest)

	s.Empty(got)
}

func (s *ResolverTestSuite) TestPassthroughIDFailsVerification() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableSkill))
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
	}

	got := s.resolver.Resolve(s.ctx, collection(
		selected("F1", "", dto.NewLookupReference("Skill", "S7", "Stealth")),
	), forest)
	s.Empty(got)

	got = s.resolver.Resolve(s.ctx, collection(
		selected("F1", "", dto.NewLookupReference("Skill", "S7", "")),
	), forest)
	s.Equal(map[string][]string{"F1": {"S7"}}, got)
}

func (s *ResolverTestSuite) TestInlineOptions() {
	mocks.ExpectCatalog(s.mockCatalog)
	forest := []*entities.FeatureDef{
		builders.Options("F-FOCUS",
			entities.FeatureOption{ID: "O1", Name: "Lore"},
			entities.FeatureOption{ID: "O2", Name: "Arcana"},
		),
	}

	got := s.resolver.Resolve(s.ctx, collection(selected("F-FOCUS", "",
		dto.NewLookupReference(entities.TableInlineOptions, "O1", "Lore"),
		dto.NewLookupReference(entities.TableInlineOptions, "", " ARCANA "),
		dto.NewLookupReference(entities.TableInlineOptions, "O9", "Cooking"),
	)), forest)

	s.Equal(map[string][]string{"F-FOCUS": {"O1", "O2"}}, got)
}

func (s *ResolverTestSuite) TestNestedFeatureMatchedByType() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableLanguage, builders.Row("L2", "Elvish")))
	forest := []*entities.FeatureDef{
		builders.Group("F-TRAITS", "Traits",
			builders.Choice("F-LANG", entities.FeatureTypeLanguageChoice, entities.TableLanguage),
		),
	}

	got := s.resolver.Resolve(s.ctx, collection(
		selected("", "Language-Choice", dto.NewLookupReference("Language", "", "Elvish")),
	), forest)

	s.Equal(map[string][]string{"F-LANG": {"L2"}}, got)
}

func (s *ResolverTestSuite) TestUnmatchedFeatureIsSkipped() {
	mocks.ExpectCatalog(s.mockCatalog, entities.NewTable(entities.TableSkill, builders.Row("S1", "Stealth")))
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypeSkillChoice, entities.TableSkill),
	}

	got := s.resolver.Resolve(s.ctx, collection(
		selected("OTHER", "", dto.NewLookupReference("Skill", "S1", "Stealth")),
		selected("F1", "", dto.NewLookupReference("Skill", "S1", "Stealth")),
	), forest)

	s.Equal(map[string][]string{"F1": {"S1"}}, got)
}

func (s *ResolverTestSuite) TestNilSelections() {
	s.Empty(s.resolver.Resolve(s.ctx, nil, nil))
}

func (s *ResolverTestSuite) TestDomainChoiceFromKeyedDocument() {
	mocks.ExpectCatalog(s.mockCatalog,
		entities.NewTable(entities.TableDeity, builders.Row("D1", "Sol")),
		entities.NewTable(entities.TableDomain, builders.Row("DM1", "Light")),
	)
	forest := []*entities.FeatureDef{
		builders.Choice("deity-guid", entities.FeatureTypeDeityChoice, entities.TableDeity),
	}

	env, err := dto.Decode([]byte(`{
		"metadata": {"version": 2},
		"character": {
			"class": {
				"selectedFeatures": {
					"deity-guid": {"choiceType": "deity-choice", "selections": [{"tableName": "Deity", "name": "Sol", "id": ""}]},
					"deity-guid-domains": {"selections": [{"tableName": "Domain", "name": "Light", "id": ""}]}
				}
			}
		}
	}`))
	s.Require().NoError(err)

	got := s.resolver.Resolve(s.ctx, env.Character().Class().SelectedFeatures(), forest)

	s.Equal(map[string][]string{
		"deity-guid":         {"D1"},
		"deity-guid-domains": {"DM1"},
	}, got)
}
