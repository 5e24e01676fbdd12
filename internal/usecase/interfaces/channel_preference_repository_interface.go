package interfaces

import (
	"context"
	"faepa_workflow/internal/domain/entities"
)

// IChannelPreferenceRepository stores the per-user alias of each notification channel.
// Get returns an empty string when no alias is set.
type IChannelPreferenceRepository interface {
	Get(ctx context.Context, userID string, channel entities.Channel) (string, error)
	Set(ctx context.Context, userID string, channel entities.Channel, alias string) error
	Delete(ctx context.Context, userID string, channel entities.Channel) error
}
