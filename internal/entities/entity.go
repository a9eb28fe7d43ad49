package entities

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityKey returns the storage key for an entity, <type>:<id>
func EntityKey(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

// EntityAttr groups an entity's type and ID for structured logs. A nil
// entity logs as an empty group.
func EntityAttr(e core.Entity) slog.Attr {
	if e == nil {
		return slog.Group("entity")
	}
	return slog.Group("entity",
		slog.String("type", e.GetType()),
		slog.String("id", e.GetID()))
}
