package directory

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-porter/internal/redis"
)

const (
	usersKey        = "directory:users"
	partiesKey      = "directory:parties"
	defaultPartyKey = "directory:party:default"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis directory repository.
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

// NewRedis creates a new Redis-backed directory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) UserExists(ctx context.Context, input UserExistsInput) (*UserExistsOutput, error) {
	if input.ID == "" {
		return &UserExistsOutput{}, nil
	}

	exists, err := r.client.SIsMember(ctx, usersKey, input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check user %s", input.ID)
	}
	return &UserExistsOutput{Exists: exists}, nil
}

func (r *redisRepository) PartyExists(ctx context.Context, input PartyExistsInput) (*PartyExistsOutput, error) {
	if input.ID == "" {
		return &PartyExistsOutput{}, nil
	}

	exists, err := r.client.SIsMember(ctx, partiesKey, input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check party %s", input.ID)
	}
	return &PartyExistsOutput{Exists: exists}, nil
}

func (r *redisRepository) GetDefaultParty(ctx context.Context, _ GetDefaultPartyInput) (*GetDefaultPartyOutput, error) {
	id, err := r.client.Get(ctx, defaultPartyKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no default party configured")
		}
		return nil, errors.Wrapf(err, "failed to get default party")
	}
	return &GetDefaultPartyOutput{PartyID: id}, nil
}

func (r *redisRepository) AddUser(ctx context.Context, input AddUserInput) (*AddUserOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	if err := r.client.SAdd(ctx, usersKey, input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add user %s", input.ID)
	}
	return &AddUserOutput{}, nil
}

func (r *redisRepository) AddParty(ctx context.Context, input AddPartyInput) (*AddPartyOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("party ID cannot be empty")
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, partiesKey, input.ID)
		if input.Default {
			pipe.Set(ctx, defaultPartyKey, input.ID, 0)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add party %s", input.ID)
	}
	return &AddPartyOutput{}, nil
}
