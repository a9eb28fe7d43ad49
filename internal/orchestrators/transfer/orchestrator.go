// Package transfer moves characters between worlds as self-contained
// documents.
package transfer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/files"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
)

const (
	// filenameTimestamp is the YYYYMMDDHHMMSS suffix of export filenames
	filenameTimestamp = "20060102150405"

	fallbackFilename = "character"
)

// Service exports and imports characters as documents
type Service interface {
	// Export writes the token's character to <game>/<name>_<timestamp>.json,
	// or <game>/<name>.json in debug mode.
	// Returns errors.NotFound when the token or the selection does not exist
	// Returns errors.FailedPrecondition when the token is not a hero
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import reads a document and registers the character it holds.
	// Returns errors.InvalidArgument when the document is missing or
	// malformed; no character is created in that case
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Config holds the dependencies for the transfer orchestrator
type Config struct {
	Exporter  Exporter
	Importer  Importer
	TokenRepo token.Repository
	Files     files.Store
	Clock     clock.Clock
	Logger    *slog.Logger
	// Notifier announces finished transfers; defaults to the logger
	Notifier  Notifier

	// GameID names the export subdirectory
	GameID string
	// Debug drops the timestamp from export filenames
	Debug bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Exporter == nil {
		vb.RequiredField("Exporter")
	}
	if c.Importer == nil {
		vb.RequiredField("Importer")
	}
	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}
	if c.Files == nil {
		vb.RequiredField("Files")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateRequired("GameID", c.GameID, vb)
	return vb.Build()
}

type orchestrator struct {
	exporter  Exporter
	importer  Importer
	tokenRepo token.Repository
	files     files.Store
	clock     clock.Clock
	logger    *slog.Logger
	notifier  Notifier
	gameID    string
	debug     bool
}

// NewOrchestrator creates a transfer orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}

	return &orchestrator{
		exporter:  cfg.Exporter,
		importer:  cfg.Importer,
		tokenRepo: cfg.TokenRepo,
		files:     cfg.Files,
		clock:     cfg.Clock,
		logger:    logger,
		notifier:  notifier,
		gameID:    cfg.GameID,
		debug:     cfg.Debug,
	}, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tok, err := o.loadToken(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	env, err := o.exporter.Export(ctx, tok)
	if err != nil {
		o.logger.WarnContext(ctx, "Export aborted", "token_id", tok.ID, "error", err.Error())
		return nil, err
	}

	data, err := dto.Encode(env)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export")
	}

	filename := ExportFilename(tok.Name, o.clock.Now(), o.debug)
	path, err := o.files.WriteText(ctx, o.gameID, filename, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write export %s", filename)
	}

	o.logger.InfoContext(ctx, "Wrote export", entities.EntityAttr(tok), "path", path)
	o.notifier.Notify(ctx, &Notice{Action: NoticeExported, Subject: tok, Name: tok.Name, Path: path})
	return &ExportOutput{Path: path, Envelope: env}, nil
}

func (o *orchestrator) loadToken(ctx context.Context, tokenID string) (*entities.Token, error) {
	if tokenID == "" {
		out, err := o.tokenRepo.GetSelected(ctx, token.GetSelectedInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get selected token")
		}
		return out.Token, nil
	}

	out, err := o.tokenRepo.Get(ctx, token.GetInput{ID: tokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get token %s", tokenID)
	}
	return out.Token, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.Parse("no document to import")
	}

	data := input.Document
	if len(data) == 0 && input.Path != "" {
		read, err := o.files.ReadText(ctx, input.Path)
		if err != nil {
			o.logger.WarnContext(ctx, "Import aborted", "path", input.Path, "error", err.Error())
			return nil, errors.ParseWrap(err, "failed to read document")
		}
		data = read
	}

	env, err := dto.Decode(data, dto.WithLogger(o.logger))
	if err != nil {
		o.logger.WarnContext(ctx, "Import aborted", "path", input.Path, "error", err.Error())
		return nil, err
	}
	switch meta := env.Metadata(); {
	case meta == nil:
		o.logger.WarnContext(ctx, "Document metadata was dropped; importing without it", "path", input.Path)
	case meta.ExportSource() == dto.LegacySource:
		o.logger.InfoContext(ctx, "Upgraded legacy document", "name", env.Token().Name())
	}

	tok, err := o.importer.Import(ctx, env)
	if err != nil {
		return nil, err
	}
	o.notifier.Notify(ctx, &Notice{Action: NoticeImported, Subject: tok, Name: tok.Name, Path: input.Path})
	return &ImportOutput{Token: tok, Envelope: env}, nil
}

// ExportFilename names an export file after its character. Path separators
// in the name are replaced so the file stays inside the game directory.
func ExportFilename(name string, at time.Time, debug bool) string {
	base := strings.TrimSpace(strings.NewReplacer("/", "_", `\`, "_").Replace(name))
	if base == "" || base == "." || base == ".." {
		base = fallbackFilename
	}
	if debug {
		return base + ".json"
	}
	return base + "_" + at.Format(filenameTimestamp) + ".json"
}
