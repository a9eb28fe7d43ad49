package token

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-porter/internal/redis"
)

const (
	shellKeyPrefix = "token:shell:"
	tokenIDsKey    = "token:ids"
	selectedKey    = "token:selected"

	defaultShellTTL = time.Hour

	errTokenIDEmpty = "token ID cannot be empty"
)

type redisRepository struct {
	client      redisclient.Client
	idGenerator idgen.Generator
	shellTTL    time.Duration
}

// RedisConfig contains configuration for the Redis token repository.
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
	// ShellTTL bounds how long an unregistered shell is kept (optional, defaults to 1 hour)
	ShellTTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.IDGenerator == nil {
		return errors.InvalidArgument("ID generator cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed token repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.ShellTTL
	if ttl == 0 {
		ttl = defaultShellTTL
	}

	return &redisRepository{
		client:      cfg.Client,
		idGenerator: cfg.IDGenerator,
		shellTTL:    ttl,
	}, nil
}

// Key returns the Redis key for a registered token
func Key(id string) string {
	return entities.EntityKey(&entities.Token{ID: id})
}

func (r *redisRepository) CreateShell(ctx context.Context, _ CreateShellInput) (*CreateShellOutput, error) {
	id := r.idGenerator.Generate()

	if err := r.client.Set(ctx, shellKeyPrefix+id, "1", r.shellTTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to reserve token %s", id)
	}

	slog.DebugContext(ctx, "Created token shell", "token_id", id)

	return &CreateShellOutput{
		Token: &entities.Token{
			ID:        id,
			Character: &entities.Character{Type: entities.CharacterTypeHero},
		},
	}, nil
}

func (r *redisRepository) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Token == nil {
		return nil, errors.InvalidArgument("token cannot be nil")
	}
	if input.Token.ID == "" {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	data, err := json.Marshal(input.Token)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal token")
	}

	id := input.Token.GetID()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entities.EntityKey(input.Token), data, 0)
		pipe.SAdd(ctx, tokenIDsKey, id)
		pipe.Del(ctx, shellKeyPrefix+id)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register token %s", id)
	}

	slog.InfoContext(ctx, "Registered token",
		entities.EntityAttr(input.Token),
		"name", input.Token.Name)

	return &RegisterOutput{Token: input.Token}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	t, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Token: t}, nil
}

func (r *redisRepository) GetSelected(ctx context.Context, _ GetSelectedInput) (*GetSelectedOutput, error) {
	id, err := r.client.Get(ctx, selectedKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no token is selected")
		}
		return nil, errors.Wrapf(err, "failed to get selected token")
	}

	t, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetSelectedOutput{Token: t}, nil
}

func (r *redisRepository) Select(ctx context.Context, input SelectInput) (*SelectOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	isMember, err := r.client.SIsMember(ctx, tokenIDsKey, input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check token existence")
	}
	if !isMember {
		return nil, errors.NotFoundf("token %s not found", input.ID)
	}

	if err := r.client.Set(ctx, selectedKey, input.ID, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to select token %s", input.ID)
	}
	return &SelectOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.Token, error) {
	result, err := r.client.Get(ctx, Key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("token %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get token %s", id)
	}

	var t entities.Token
	if err := json.Unmarshal([]byte(result), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal token %s", id)
	}
	return &t, nil
}
