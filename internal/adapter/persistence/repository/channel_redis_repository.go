package repository

import (
	"context"
	"errors"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const channelAliasKeyPrefix = "faepa:channel_alias:"

// ChannelRedisRepository keeps one hash per user: field = channel, value = alias.
type ChannelRedisRepository struct {
	rdb *redis.Client
}

var _ interfaces.IChannelPreferenceRepository = (*ChannelRedisRepository)(nil)

func NewChannelRedisRepository(rdb *redis.Client) *ChannelRedisRepository {
	return &ChannelRedisRepository{rdb: rdb}
}

func (r *ChannelRedisRepository) Get(ctx context.Context, userID string, channel entities.Channel) (string, error) {
	alias, err := r.rdb.HGet(ctx, channelAliasKey(userID), string(channel)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return alias, err
}

func (r *ChannelRedisRepository) Set(ctx context.Context, userID string, channel entities.Channel, alias string) error {
	return r.rdb.HSet(ctx, channelAliasKey(userID), string(channel), alias).Err()
}

func (r *ChannelRedisRepository) Delete(ctx context.Context, userID string, channel entities.Channel) error {
	return r.rdb.HDel(ctx, channelAliasKey(userID), string(channel)).Err()
}

func channelAliasKey(userID string) string {
	return channelAliasKeyPrefix + userID
}
