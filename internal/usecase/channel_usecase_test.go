package usecase

import (
	"context"
	"errors"
	"testing"

	"faepa_workflow/internal/domain/entities"
	mock_interfaces "faepa_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChannelUseCase_Resolve(t *testing.T) {
	cases := []struct {
		name  string
		alias string
		err   error
		want  string
	}{
		{name: "stored alias", alias: "coord@faepa.br", want: "coord@faepa.br"},
		{name: "blank alias falls back", alias: "   ", want: "fallback@faepa.br"},
		{name: "store error falls back", err: errors.New("redis down"), want: "fallback@faepa.br"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIChannelPreferenceRepository(ctrl)
			uc := NewChannelUseCase(repo)

			repo.EXPECT().Get(gomock.Any(), "u1", entities.ChannelCoordinator).Return(tc.alias, tc.err)

			got := uc.Resolve(context.Background(), "u1", entities.ChannelCoordinator, "fallback@faepa.br")
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("anonymous user skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewChannelUseCase(mock_interfaces.NewMockIChannelPreferenceRepository(ctrl))
		if got := uc.Resolve(context.Background(), "", entities.ChannelCollaborator, "x@y.z"); got != "x@y.z" {
			t.Fatalf("expected fallback, got %q", got)
		}
	})
}

func TestChannelUseCase_Sender(t *testing.T) {
	t.Run("alias keeps fallback name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChannelPreferenceRepository(ctrl)
		uc := NewChannelUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "u1", entities.ChannelCollaborator).Return("me@lab.br", nil)

		got := uc.Sender(context.Background(), "u1", entities.ChannelCollaborator, entities.Sender{Address: "noreply@faepa.br", Name: "FAEPA"})
		if got == nil || got.Address != "me@lab.br" || got.Name != "FAEPA" {
			t.Fatalf("unexpected sender: %+v", got)
		}
	})

	t.Run("no address at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChannelPreferenceRepository(ctrl)
		uc := NewChannelUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "u1", entities.ChannelCollaborator).Return("", nil)

		if got := uc.Sender(context.Background(), "u1", entities.ChannelCollaborator, entities.Sender{}); got != nil {
			t.Fatalf("expected nil sender, got %+v", got)
		}
	})
}

func TestChannelUseCase_SetAlias(t *testing.T) {
	t.Run("invalid channel", func(t *testing.T) {
		uc := NewChannelUseCase(nil)
		err := uc.SetAlias(context.Background(), "u1", entities.Channel("sms"), "a@b.c")
		if !errors.Is(err, ErrInvalidChannel) {
			t.Fatalf("expected ErrInvalidChannel, got %v", err)
		}
	})

	t.Run("invalid user", func(t *testing.T) {
		uc := NewChannelUseCase(nil)
		err := uc.SetAlias(context.Background(), " ", entities.ChannelCoordinator, "a@b.c")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewChannelUseCase(mock_interfaces.NewMockIChannelPreferenceRepository(ctrl))
		err := uc.SetAlias(context.Background(), "u1", entities.ChannelCoordinator, "not an address")
		if !errors.Is(err, ErrInvalidAlias) {
			t.Fatalf("expected ErrInvalidAlias, got %v", err)
		}
	})

	t.Run("blank alias deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChannelPreferenceRepository(ctrl)
		uc := NewChannelUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "u1", entities.ChannelCoordinator).Return(nil)

		if err := uc.SetAlias(context.Background(), "u1", " Coordinator ", "  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stores trimmed alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChannelPreferenceRepository(ctrl)
		uc := NewChannelUseCase(repo)

		repo.EXPECT().Set(gomock.Any(), "u1", entities.ChannelCollaborator, "me@lab.br").Return(nil)

		if err := uc.SetAlias(context.Background(), "u1", entities.ChannelCollaborator, " me@lab.br "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
