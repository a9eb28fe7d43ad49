package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-porter/internal/config"
	"github.com/KirkDiggler/rpg-porter/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/files"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-porter/internal/redis"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
	"github.com/KirkDiggler/rpg-porter/internal/services/featurechoice"
	"github.com/KirkDiggler/rpg-porter/internal/services/reference"
)

// app holds the wired dependencies for one command run
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	client    redisclient.Client
	catalog   catalog.Repository
	tokens    token.Repository
	directory directory.Repository
	transfer  transfer.Service
}

// loadConfig reads the environment and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if flags.Changed("game") {
		cfg.GameID = gameFlag
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir = exportDirFlag
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug || cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	client, err := redisclient.Connect(cfg.RedisAddrs, &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, err
	}

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	tokenRepo, err := token.NewRedis(&token.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewUUID(),
		ShellTTL:    cfg.ShellTTL,
	})
	if err != nil {
		return nil, err
	}
	directoryRepo, err := directory.NewRedis(&directory.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	reader, err := newCatalogReader(cfg, catalogRepo)
	if err != nil {
		return nil, err
	}

	refs, err := reference.New(&reference.Config{
		Catalog: reader,
		Logger:  logger,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}
	features, err := featurechoice.New(&featurechoice.Config{
		References: refs,
		Logger:     logger,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	exporter, err := transfer.NewExporter(&transfer.ExporterConfig{
		References: refs,
		Clock:      clk,
		Logger:     logger,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}
	importer, err := transfer.NewImporter(&transfer.ImporterConfig{
		TokenRepo:     tokenRepo,
		DirectoryRepo: directoryRepo,
		References:    refs,
		Features:      features,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	store, err := files.NewLocal(&files.LocalConfig{Root: cfg.ExportDir})
	if err != nil {
		return nil, err
	}

	svc, err := transfer.NewOrchestrator(&transfer.Config{
		Exporter:  exporter,
		Importer:  importer,
		TokenRepo: tokenRepo,
		Files:     store,
		Clock:     clk,
		Logger:    logger,
		Notifier:  transfer.NewWriterNotifier(cmd.OutOrStdout()),
		GameID:    cfg.GameID,
		Debug:     cfg.Debug,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		client:    client,
		catalog:   catalogRepo,
		tokens:    tokenRepo,
		directory: directoryRepo,
		transfer:  svc,
	}, nil
}

// newCatalogReader layers the redis catalog over the SRD when enabled and
// caches whole tables in memory
func newCatalogReader(cfg *config.Config, repo catalog.Repository) (catalog.Reader, error) {
	layers := []catalog.Reader{repo}
	if cfg.SRDEnabled {
		srd, err := catalog.NewSRD(&catalog.SRDConfig{
			BaseURL:  cfg.SRDBaseURL,
			CacheTTL: cfg.SRDCacheTTL,
		})
		if err != nil {
			return nil, err
		}
		layers = append(layers, srd)
	}

	layered, err := catalog.NewLayered(layers...)
	if err != nil {
		return nil, err
	}
	return catalog.NewCached(&catalog.CachedConfig{
		Reader: layered,
		TTL:    cfg.CatalogCacheTTL,
	})
}

func (a *app) Close() {
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to close redis client", "error", err.Error())
	}
}
