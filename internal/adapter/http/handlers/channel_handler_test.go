package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"faepa_workflow/internal/adapter/http/handlers/mocks"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestChannelHandler_SetAlias(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChannelUseCase(ctrl)
		h := NewChannelHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.PUT("/v1/channels/:channel", h.SetAlias)

		uc.EXPECT().SetAlias(gomock.Any(), "c1", entities.Channel("coordinator"), "lab@faepa.br").Return(nil)
		uc.EXPECT().GetAlias(gomock.Any(), "c1", entities.Channel("coordinator")).Return("lab@faepa.br", nil)

		w := doJSON(r, http.MethodPut, "/v1/channels/coordinator", `{"alias":"lab@faepa.br"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["alias"] != "lab@faepa.br" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChannelUseCase(ctrl)
		h := NewChannelHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.PUT("/v1/channels/:channel", h.SetAlias)

		uc.EXPECT().SetAlias(gomock.Any(), "c1", entities.Channel("sms"), "").Return(usecase.ErrInvalidChannel)
		if w := doJSON(r, http.MethodPut, "/v1/channels/sms", `{"alias":""}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChannelHandler_GetAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIChannelUseCase(ctrl)
	h := NewChannelHandler(uc)

	r := newTestRouter(requesterActor)
	r.GET("/v1/channels/:channel", h.GetAlias)

	uc.EXPECT().GetAlias(gomock.Any(), "u1", entities.Channel("collaborator")).Return("", nil)
	if w := doJSON(r, http.MethodGet, "/v1/channels/collaborator", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
