package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-porter/internal/redis"
)

const (
	tableKeyPrefix = "catalog:"
	namesKeySuffix = ":names"

	errTableNameEmpty = "table name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// TableKey returns the Redis hash holding a table's rows keyed by ID
func TableKey(table string) string {
	return tableKeyPrefix + table
}

// NamesKey returns the Redis hash mapping a table's display names to IDs
func NamesKey(table string) string {
	return tableKeyPrefix + table + namesKeySuffix
}

func (r *redisRepository) GetTable(ctx context.Context, input GetTableInput) (*GetTableOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errTableNameEmpty)
	}

	raw, err := r.client.HGetAll(ctx, TableKey(input.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog table %s", input.Name)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := entities.NewTable(input.Name)
	for _, id := range ids {
		var row entities.CatalogRecord
		if err := json.Unmarshal([]byte(raw[id]), &row); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable catalog row",
				"table", input.Name,
				"id", id,
				"error", err.Error())
			continue
		}
		table.Add(&row)
	}

	return &GetTableOutput{Table: table}, nil
}

func (r *redisRepository) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if input.Table == "" {
		return nil, errors.InvalidArgument(errTableNameEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	id, err := r.client.HGet(ctx, NamesKey(input.Table), input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s named %q not found", input.Table, input.Name)
		}
		return nil, errors.Wrapf(err, "failed to look up %s by name", input.Table)
	}

	data, err := r.client.HGet(ctx, TableKey(input.Table), id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %s not found", input.Table, id)
		}
		return nil, errors.Wrapf(err, "failed to get %s %s", input.Table, id)
	}

	var row entities.CatalogRecord
	if err := json.Unmarshal([]byte(data), &row); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", input.Table, id)
	}

	return &FindByNameOutput{Record: &row}, nil
}

func (r *redisRepository) PutTable(ctx context.Context, input PutTableInput) (*PutTableOutput, error) {
	if input.Table == nil {
		return nil, errors.InvalidArgument("table cannot be nil")
	}
	if input.Table.Name == "" {
		return nil, errors.InvalidArgument(errTableNameEmpty)
	}

	name := input.Table.Name
	rows := make(map[string]interface{}, input.Table.Len())
	names := make(map[string]interface{}, input.Table.Len())
	for _, row := range input.Table.All() {
		data, err := json.Marshal(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal %s %s", name, row.ID)
		}
		rows[row.ID] = data

		// First visible row wins the exact-name slot
		if row.Hidden || row.Name == "" {
			continue
		}
		if _, taken := names[row.Name]; !taken {
			names[row.Name] = row.ID
		}
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, TableKey(name), NamesKey(name))
		if len(rows) > 0 {
			pipe.HSet(ctx, TableKey(name), rows)
		}
		if len(names) > 0 {
			pipe.HSet(ctx, NamesKey(name), names)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog table %s", name)
	}

	slog.DebugContext(ctx, "Stored catalog table",
		"table", name,
		"rows", len(rows))

	return &PutTableOutput{Rows: len(rows)}, nil
}
