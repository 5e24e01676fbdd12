package usecase

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"
	"net/mail"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidChannel = errors.New("invalid notification channel")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrInvalidAlias   = errors.New("invalid channel alias")
)

// IChannelUseCase resolves which address a user wants to use on each
// notification channel.
type IChannelUseCase interface {
	Resolve(ctx context.Context, userID string, channel entities.Channel, fallback string) string
	Sender(ctx context.Context, userID string, channel entities.Channel, fallback entities.Sender) *entities.Sender
	GetAlias(ctx context.Context, userID string, channel entities.Channel) (string, error)
	SetAlias(ctx context.Context, userID string, channel entities.Channel, alias string) error
}

type ChannelUseCase struct {
	repo interfaces.IChannelPreferenceRepository
}

var _ IChannelUseCase = (*ChannelUseCase)(nil)

func NewChannelUseCase(repo interfaces.IChannelPreferenceRepository) *ChannelUseCase {
	return &ChannelUseCase{repo: repo}
}

// Resolve never fails: store errors and blank aliases fall back.
func (u *ChannelUseCase) Resolve(ctx context.Context, userID string, channel entities.Channel, fallback string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" || u.repo == nil {
		return fallback
	}
	alias, err := u.repo.Get(ctx, userID, channel)
	if err != nil {
		log.Printf("[channel][usecase] alias lookup failed user_id=%s channel=%s err=%v", userID, channel, err)
		return fallback
	}
	if alias = strings.TrimSpace(alias); alias == "" {
		return fallback
	}
	return alias
}

// Sender returns the from-override for one message, or nil when neither the
// user alias nor the fallback carries an address.
func (u *ChannelUseCase) Sender(ctx context.Context, userID string, channel entities.Channel, fallback entities.Sender) *entities.Sender {
	address := u.Resolve(ctx, userID, channel, fallback.Address)
	if address == "" {
		return nil
	}
	return &entities.Sender{Address: address, Name: fallback.Name}
}

func (u *ChannelUseCase) GetAlias(ctx context.Context, userID string, channel entities.Channel) (string, error) {
	userID, channel, err := validateChannelKey(userID, channel)
	if err != nil {
		return "", err
	}
	return u.repo.Get(ctx, userID, channel)
}

// SetAlias stores the alias; a blank alias removes it.
func (u *ChannelUseCase) SetAlias(ctx context.Context, userID string, channel entities.Channel, alias string) error {
	userID, channel, err := validateChannelKey(userID, channel)
	if err != nil {
		return err
	}

	alias = strings.TrimSpace(alias)
	if alias == "" {
		log.Printf("[channel][usecase] alias cleared user_id=%s channel=%s", userID, channel)
		return u.repo.Delete(ctx, userID, channel)
	}
	if _, err := mail.ParseAddress(alias); err != nil {
		return ErrInvalidAlias
	}

	if err := u.repo.Set(ctx, userID, channel, alias); err != nil {
		log.WithError(err).Printf("[channel][usecase] alias store failed user_id=%s channel=%s", userID, channel)
		return err
	}
	log.Printf("[channel][usecase] alias set user_id=%s channel=%s", userID, channel)
	return nil
}

func validateChannelKey(userID string, channel entities.Channel) (string, entities.Channel, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", "", ErrInvalidUserID
	}
	parsed, ok := entities.ParseChannel(string(channel))
	if !ok {
		return "", "", ErrInvalidChannel
	}
	return userID, parsed, nil
}
