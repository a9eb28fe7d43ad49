package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/clock"
	catalogmock "github.com/KirkDiggler/rpg-porter/internal/repositories/catalog/mock"
	directorymock "github.com/KirkDiggler/rpg-porter/internal/repositories/directory/mock"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
	tokenmock "github.com/KirkDiggler/rpg-porter/internal/repositories/token/mock"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	featurechoicemock "github.com/KirkDiggler/rpg-porter/internal/services/featurechoice/mock"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/mocks"
)

type ImporterTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCatalog   *catalogmock.MockReader
	mockTokenRepo *tokenmock.MockRepository
	mockDirectory *directorymock.MockRepository
	exporter      transfer.Exporter
	importer      transfer.Importer
	ctx           context.Context
}

func TestImporterSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockReader(s.ctrl)
	s.mockTokenRepo = tokenmock.NewMockRepository(s.ctrl)
	s.mockDirectory = directorymock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	mocks.ExpectCatalog(s.mockCatalog, builders.StandardTables()...)

	refs, err := reference.New(&reference.Config{Catalog: s.mockCatalog})
	s.Require().NoError(err)
	features, err := featurechoice.New(&featurechoice.Config{References: refs})
	s.Require().NoError(err)

	s.exporter, err = transfer.NewExporter(&transfer.ExporterConfig{
		References: refs,
		Clock:      &clock.Fixed{At: time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC)},
	})
	s.Require().NoError(err)

	s.importer, err = transfer.NewImporter(&transfer.ImporterConfig{
		TokenRepo:     s.mockTokenRepo,
		DirectoryRepo: s.mockDirectory,
		References:    refs,
		Features:      features,
	})
	s.Require().NoError(err)
}

func (s *ImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectShell hands out an empty shell and captures what gets registered
func (s *ImporterTestSuite) expectShell() *entities.Token {
	registered := &entities.Token{}
	s.mockTokenRepo.EXPECT().
		CreateShell(s.ctx, token.CreateShellInput{}).
		Return(&token.CreateShellOutput{Token: &entities.Token{
			ID:        "shell-1",
			Character: &entities.Character{Type: entities.CharacterTypeHero},
		}}, nil)
	s.mockTokenRepo.EXPECT().
		Register(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input token.RegisterInput) (*token.RegisterOutput, error) {
			*registered = *input.Token
			return &token.RegisterOutput{Token: input.Token}, nil
		})
	return registered
}

func (s *ImporterTestSuite) export(b *builders.TokenBuilder) *dto.Envelope {
	env, err := s.exporter.Export(s.ctx, b.Build())
	s.Require().NoError(err)
	return env
}

func (s *ImporterTestSuite) TestImportRestoresCharacter() {
	mocks.ExpectDirectory(s.mockDirectory, []string{"user-1"}, nil, "")
	registered := s.expectShell()
	source := builders.StandardHero().Build()

	got, err := s.importer.Import(s.ctx, s.export(builders.StandardHero()))
	s.Require().NoError(err)

	s.Equal("shell-1", got.ID)
	s.Equal("shell-1", registered.ID)
	s.Equal(source.Name, got.Name)
	s.Equal(source.PortraitOffset, got.PortraitOffset)
	s.Equal(source.PortraitZoom, got.PortraitZoom)
	s.Equal("user-1", got.OwnerID)
	s.Empty(got.PartyID)

	character := got.Character
	s.Equal(source.Character.AncestryID, character.AncestryID)
	s.Equal(source.Character.CareerID, character.CareerID)
	s.Equal(source.Character.Classes, character.Classes)
	s.Equal(source.Character.Culture, character.Culture)
	s.Equal(source.Character.CharacterTypeID, character.CharacterTypeID)
	s.Equal(source.Character.ComplicationID, character.ComplicationID)
	s.Equal(source.Character.Attributes, character.Attributes)
	s.Equal(source.Character.LevelChoices, character.LevelChoices)
	s.Equal(map[string]any{"fire": 5.0}, character.Resistances)
}

func (s *ImporterTestSuite) TestOwnershipFallback() {
	testCases := []struct {
		name         string
		owner        string
		party        string
		users        []string
		parties      []string
		defaultParty string
		wantOwner    string
		wantParty    string
	}{
		{name: "owner exists", owner: "u1", party: "p1", users: []string{"u1"}, parties: []string{"p1"}, defaultParty: "pd", wantOwner: "u1"},
		{name: "unknown owner falls back to party", owner: "u9", party: "p1", users: []string{"u1"}, parties: []string{"p1"}, defaultParty: "pd", wantParty: "p1"},
		{name: "unknown party falls back to default", owner: "u9", party: "p9", parties: []string{"p1"}, defaultParty: "pd", wantParty: "pd"},
		{name: "no claims", defaultParty: "pd", wantParty: "pd"},
		{name: "no default party", owner: "u9"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			mocks.ExpectDirectory(s.mockDirectory, tc.users, tc.parties, tc.defaultParty)
			s.expectShell()

			env := s.export(builders.NewTokenBuilder().WithOwner(tc.owner).WithParty(tc.party))
			got, err := s.importer.Import(s.ctx, env)
			s.Require().NoError(err)
			s.Equal(tc.wantOwner, got.OwnerID)
			s.Equal(tc.wantParty, got.PartyID)
		})
	}
}

func (s *ImporterTestSuite) TestUnresolvedSubsystemsAreSkipped() {
	mocks.ExpectDirectory(s.mockDirectory, nil, nil, "pd")
	s.expectShell()

	ancestry := dto.NewAncestry()
	ancestry.SetReference(dto.NewLookupReference(entities.TableRace, "", "Gnome"))
	class := dto.NewClass()
	class.SetReference(dto.NewLookupReference(entities.TableClass, "", "Cleric"))
	class.SetSubclass(dto.NewLookupReference(entities.TableSubclass, "", "Tempest"))
	class.SetLevel(2)

	character := dto.NewCharacter()
	character.SetAncestry(ancestry)
	character.SetClass(class)
	env := dto.NewEnvelope()
	env.SetMetadata(dto.NewExportMetadata(time.Now()))
	env.SetToken(dto.NewToken())
	env.SetCharacter(character)

	got, err := s.importer.Import(s.ctx, env)
	s.Require().NoError(err)
	s.Empty(got.Character.AncestryID)
	s.Equal([]entities.ClassEntry{{ClassID: "C1", Level: 2}}, got.Character.Classes)
}

func (s *ImporterTestSuite) TestForeignIDsResolveByName() {
	mocks.ExpectDirectory(s.mockDirectory, nil, nil, "")
	s.expectShell()

	skill := dto.NewSelectedFeature()
	skill.SetChoiceID(builders.FeatureElfSkill)
	skill.AddSelection(dto.NewLookupReference(entities.TableSkill, "foreign-skill", "Stealth"))
	selected := dto.NewSelectedFeatures()
	selected.Put(skill)

	ancestry := dto.NewAncestry()
	ancestry.SetReference(dto.NewLookupReference(entities.TableRace, "foreign-race", "elf"))
	ancestry.SetSelectedFeatures(selected)

	character := dto.NewCharacter()
	character.SetAncestry(ancestry)
	env := dto.NewEnvelope()
	env.SetMetadata(dto.NewExportMetadata(time.Now()))
	env.SetCharacter(character)

	got, err := s.importer.Import(s.ctx, env)
	s.Require().NoError(err)
	s.Equal("R1", got.Character.AncestryID)
	s.Equal(map[string][]string{builders.FeatureElfSkill: {"S1"}}, got.Character.LevelChoices)
}

func (s *ImporterTestSuite) TestRejectsEnvelopeWithoutCharacter() {
	env := dto.NewEnvelope()
	env.SetToken(dto.NewToken())

	got, err := s.importer.Import(s.ctx, env)
	s.Require().Error(err)
	s.True(errors.IsParse(err))
	s.Nil(got)
}

func (s *ImporterTestSuite) TestShellFailureAborts() {
	s.mockTokenRepo.EXPECT().
		CreateShell(s.ctx, token.CreateShellInput{}).
		Return(nil, errors.Internal("redis down"))

	got, err := s.importer.Import(s.ctx, s.export(builders.StandardHero()))
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Nil(got)
}

func (s *ImporterTestSuite) TestClassNarrowingRoundTrip() {
	mocks.ExpectDirectory(s.mockDirectory, []string{"user-1"}, nil, "")
	s.expectShell()

	env := s.export(builders.StandardHero().WithClass("C2", "", 5))
	got, err := s.importer.Import(s.ctx, env)
	s.Require().NoError(err)
	s.Len(got.Character.Classes, 1)
	s.Equal("C1", got.Character.Classes[0].ClassID)
}

func (s *ImporterTestSuite) TestLaterSubsystemsOverwriteChoices() {
	mockFeatures := featurechoicemock.NewMockResolver(s.ctrl)
	refs, err := reference.New(&reference.Config{Catalog: s.mockCatalog})
	s.Require().NoError(err)
	importer, err := transfer.NewImporter(&transfer.ImporterConfig{
		TokenRepo:     s.mockTokenRepo,
		DirectoryRepo: s.mockDirectory,
		References:    refs,
		Features:      mockFeatures,
	})
	s.Require().NoError(err)

	mocks.ExpectDirectory(s.mockDirectory, []string{"user-1"}, nil, "")
	s.expectShell()

	env := s.export(builders.NewTokenBuilder().
		WithAncestry("R1").
		WithClass("C1", "", 1).
		WithLevelChoice(builders.FeatureElfSkill, "S1").
		WithLevelChoice(builders.FeatureDeity, "D1"))

	gomock.InOrder(
		mockFeatures.EXPECT().
			Resolve(s.ctx, gomock.Any(), gomock.Any()).
			Return(map[string][]string{"shared": {"from-ancestry"}, "A": {"1"}}),
		mockFeatures.EXPECT().
			Resolve(s.ctx, gomock.Any(), gomock.Any()).
			Return(map[string][]string{"shared": {"from-class"}}),
	)

	got, err := importer.Import(s.ctx, env)
	s.Require().NoError(err)
	s.Equal(map[string][]string{
		"shared": {"from-class"},
		"A":      {"1"},
	}, got.Character.LevelChoices)
}
