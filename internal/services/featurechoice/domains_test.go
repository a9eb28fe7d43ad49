package featurechoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	referencemock "github.com/KirkDiggler/rpg-porter/internal/services/reference/mock"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/builders"
)

// DomainsTestSuite checks resolver calls with strict expectations
type DomainsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRefs *referencemock.MockResolver
	resolver featurechoice.Resolver
	ctx      context.Context
}

func TestDomainsSuite(t *testing.T) {
	suite.Run(t, new(DomainsTestSuite))
}

func (s *DomainsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRefs = referencemock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.resolver, err = featurechoice.New(&featurechoice.Config{References: s.mockRefs})
	s.Require().NoError(err)
}

func (s *DomainsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DomainsTestSuite) TestDomainPicksSkipMatchingAndVerification() {
	domains := selected("deity-guid-domains", "", dto.NewLookupReference("", "", "Light"))

	s.mockRefs.EXPECT().
		Resolve(s.ctx, entities.TableDomain, "Light", "").
		Return("DM1", true)

	got := s.resolver.Resolve(s.ctx, collection(domains), nil)
	s.Equal(map[string][]string{"deity-guid-domains": {"DM1"}}, got)
}

func (s *DomainsTestSuite) TestTablePicksAreVerified() {
	forest := []*entities.FeatureDef{
		builders.Choice("F1", entities.FeatureTypePerkChoice, entities.TablePerk),
	}

	gomock.InOrder(
		s.mockRefs.EXPECT().
			Resolve(s.ctx, entities.TablePerk, "Healer", "P1").
			Return("P1", true),
		s.mockRefs.EXPECT().
			Lookup(s.ctx, entities.TablePerk, "P1").
			Return(builders.Row("P1", "Healer"), true),
	)

	got := s.resolver.Resolve(s.ctx, collection(selected("F1", "",
		dto.NewLookupReference("", "P1", "Healer"),
	)), forest)
	s.Equal(map[string][]string{"F1": {"P1"}}, got)
}

func (s *DomainsTestSuite) TestEmptySelectionsNeverReachResolver() {
	got := s.resolver.Resolve(s.ctx, collection(
		selected("F1", entities.FeatureTypePerkChoice),
		selected("F1-domains", ""),
	), []*entities.FeatureDef{builders.Choice("F1", entities.FeatureTypePerkChoice, entities.TablePerk)})

	s.Empty(got)
}
