package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

type layeredReader struct {
	layers []Reader
}

// NewLayered combines readers in priority order. A table comes from the
// first layer that has rows for it; a name lookup from the first layer that
// finds it.
func NewLayered(layers ...Reader) (Reader, error) {
	kept := make([]Reader, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return nil, errors.InvalidArgument("at least one reader is required")
	}
	if len(kept) == 1 {
		return kept[0], nil
	}
	return &layeredReader{layers: kept}, nil
}

func (r *layeredReader) GetTable(ctx context.Context, input GetTableInput) (*GetTableOutput, error) {
	var last *GetTableOutput
	for i, layer := range r.layers {
		out, err := layer.GetTable(ctx, input)
		if err != nil {
			slog.WarnContext(ctx, "Catalog layer failed",
				"layer", i,
				"table", input.Name,
				"error", err.Error())
			continue
		}
		if out.Table.Len() > 0 {
			return out, nil
		}
		last = out
	}
	if last == nil {
		return nil, errors.Internalf("no catalog layer could read table %s", input.Name)
	}
	return last, nil
}

func (r *layeredReader) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	var firstErr error
	for _, layer := range r.layers {
		out, err := layer.FindByName(ctx, input)
		if err == nil {
			return out, nil
		}
		if !errors.IsNotFound(err) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, errors.NotFoundf("%s named %q not found", input.Table, input.Name)
}
