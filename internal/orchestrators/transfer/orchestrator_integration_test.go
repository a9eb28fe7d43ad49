package transfer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/files"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
	"github.com/KirkDiggler/rpg-porter/internal/testutils"
	"github.com/KirkDiggler/rpg-porter/internal/testutils/builders"
)

// OrchestratorIntegrationTestSuite runs export and import against redis
// backed repositories and a real export directory
type OrchestratorIntegrationTestSuite struct {
	suite.Suite
	ctx          context.Context
	cleanup      func()
	exportDir    string
	tokenRepo    token.Repository
	orchestrator transfer.Service
}

func TestOrchestratorIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorIntegrationTestSuite))
}

func (s *OrchestratorIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.exportDir = s.T().TempDir()

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	for _, table := range builders.StandardTables() {
		_, err := catalogRepo.PutTable(s.ctx, catalog.PutTableInput{Table: table})
		s.Require().NoError(err)
	}

	directoryRepo, err := directory.NewRedis(&directory.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = directoryRepo.AddUser(s.ctx, directory.AddUserInput{ID: "user-1"})
	s.Require().NoError(err)

	s.tokenRepo, err = token.NewRedis(&token.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential("tok"),
	})
	s.Require().NoError(err)

	store, err := files.NewLocal(&files.LocalConfig{Root: s.exportDir})
	s.Require().NoError(err)

	refs, err := reference.New(&reference.Config{Catalog: catalogRepo})
	s.Require().NoError(err)
	features, err := featurechoice.New(&featurechoice.Config{References: refs})
	s.Require().NoError(err)

	fixed := &clock.Fixed{At: time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC)}
	exporter, err := transfer.NewExporter(&transfer.ExporterConfig{References: refs, Clock: fixed})
	s.Require().NoError(err)
	importer, err := transfer.NewImporter(&transfer.ImporterConfig{
		TokenRepo:     s.tokenRepo,
		DirectoryRepo: directoryRepo,
		References:    refs,
		Features:      features,
	})
	s.Require().NoError(err)

	s.orchestrator, err = transfer.NewOrchestrator(&transfer.Config{
		Exporter:  exporter,
		Importer:  importer,
		TokenRepo: s.tokenRepo,
		Files:     store,
		Clock:     fixed,
		GameID:    "game-1",
	})
	s.Require().NoError(err)
}

func (s *OrchestratorIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorIntegrationTestSuite) TestExportImportExportIsStable() {
	_, err := s.tokenRepo.Register(s.ctx, token.RegisterInput{Token: builders.StandardHero().Build()})
	s.Require().NoError(err)
	_, err = s.tokenRepo.Select(s.ctx, token.SelectInput{ID: "token-1"})
	s.Require().NoError(err)

	first, err := s.orchestrator.Export(s.ctx, &transfer.ExportInput{})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.exportDir, "game-1", "Aria_20240309140530.json"), first.Path)
	firstBytes, err := os.ReadFile(first.Path)
	s.Require().NoError(err)

	imported, err := s.orchestrator.Import(s.ctx, &transfer.ImportInput{Path: first.Path})
	s.Require().NoError(err)
	s.Equal("tok_1", imported.Token.ID)

	second, err := s.orchestrator.Export(s.ctx, &transfer.ExportInput{TokenID: imported.Token.ID})
	s.Require().NoError(err)
	secondBytes, err := os.ReadFile(second.Path)
	s.Require().NoError(err)

	s.Equal(string(firstBytes), string(secondBytes))
}

func (s *OrchestratorIntegrationTestSuite) TestLegacyDocumentImports() {
	out, err := s.orchestrator.Import(s.ctx, &transfer.ImportInput{
		Document: []byte(`{"name":"Bob","character":{"ancestry":{"reference":{"tableName":"Race","name":"Elf"}}}}`),
	})
	s.Require().NoError(err)
	s.Equal(dto.LegacySource, out.Envelope.Metadata().ExportSource())

	stored, err := s.tokenRepo.Get(s.ctx, token.GetInput{ID: out.Token.ID})
	s.Require().NoError(err)
	s.Equal("Bob", stored.Token.Name)
	s.Equal("R1", stored.Token.Character.AncestryID)
}
