package catalog

import (
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// DecodeTables parses a catalog seed file: a JSON object mapping each table
// name to its rows. Tables come back in name order, rows in file order.
func DecodeTables(data []byte) ([]*entities.Table, error) {
	var raw map[string][]*entities.CatalogRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog file")
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make([]*entities.Table, 0, len(names))
	for _, name := range names {
		for i, row := range raw[name] {
			if row == nil || row.ID == "" {
				return nil, errors.InvalidArgumentf("table %s row %d has no id", name, i)
			}
			row.Table = name
		}
		tables = append(tables, entities.NewTable(name, raw[name]...))
	}
	return tables, nil
}
