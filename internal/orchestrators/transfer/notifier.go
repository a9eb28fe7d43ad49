package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// Notice actions
const (
	NoticeExported = "exported"
	NoticeImported = "imported"
)

// Notice reports a finished transfer to the host's notification layer
type Notice struct {
	Action string
	// Subject is the exported or newly registered token
	Subject core.Entity
	Name    string
	// Path is the file written or read; empty for inline documents
	Path string
}

// Notifier tells players about finished transfers. Delivery is best effort
// and never fails a transfer.
type Notifier interface {
	Notify(ctx context.Context, notice *Notice)
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that writes notices to logger
func NewLogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, notice *Notice) {
	n.logger.InfoContext(ctx, "Transfer finished",
		"action", notice.Action,
		entities.EntityAttr(notice.Subject),
		"name", notice.Name,
		"path", notice.Path)
}

type writerNotifier struct {
	w io.Writer
}

// NewWriterNotifier returns a Notifier that prints one line per notice,
// for a chat window or terminal.
func NewWriterNotifier(w io.Writer) Notifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(_ context.Context, notice *Notice) {
	line := fmt.Sprintf("%s %s (%s)", notice.Action, notice.Name, entities.EntityKey(notice.Subject))
	if notice.Path != "" {
		line += " " + notice.Path
	}
	fmt.Fprintln(n.w, line)
}
