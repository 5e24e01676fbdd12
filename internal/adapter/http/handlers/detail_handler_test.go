package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"faepa_workflow/internal/adapter/http/handlers/mocks"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase"

	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestDetailHandler_GetDetail(t *testing.T) {
	t.Run("query flags reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDetailUseCase(ctrl)
		h := NewDetailHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.GET("/v1/batches/:batch_id", h.GetDetail)

		uc.EXPECT().GetDetail(gomock.Any(), "B1", usecase.DetailOptions{Viewer: coordinatorActor, LockActions: true}).
			Return(usecase.BatchDetail{
				BatchID: "B1",
				Entries: []usecase.RequestDetail{{Record: entities.RequestRecord{ID: "r1"}, Actions: usecase.RequestActions{CanRevert: true}}},
			}, nil)

		w := doJSON(r, http.MethodGet, "/v1/batches/B1?lock_actions=true&readonly=nope", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Entries []struct {
				Actions map[string]bool `json:"actions"`
			} `json:"entries"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Entries) != 1 || !body.Entries[0].Actions["can_revert"] {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDetailUseCase(ctrl)
		h := NewDetailHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.GET("/v1/batches/:batch_id", h.GetDetail)

		uc.EXPECT().GetDetail(gomock.Any(), "B9", gomock.Any()).Return(usecase.BatchDetail{}, usecase.ErrBatchNotFound)
		if w := doJSON(r, http.MethodGet, "/v1/batches/B9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDetailHandler_ExportBatch(t *testing.T) {
	t.Run("not forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDetailUseCase(ctrl)
		h := NewDetailHandler(uc)

		r := newTestRouter(payerActor)
		r.GET("/v1/batches/:batch_id/export", h.ExportBatch)

		uc.EXPECT().GetForwarded(gomock.Any(), "B1", payerActor).Return(usecase.BatchDetail{}, usecase.ErrBatchNotForwarded)
		if w := doJSON(r, http.MethodGet, "/v1/batches/B1/export", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("writes workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDetailUseCase(ctrl)
		h := NewDetailHandler(uc)

		r := newTestRouter(payerActor)
		r.GET("/v1/batches/:batch_id/export", h.ExportBatch)

		uc.EXPECT().GetForwarded(gomock.Any(), "B1", payerActor).Return(usecase.BatchDetail{
			BatchID: "B1",
			Entries: []usecase.RequestDetail{{Record: entities.RequestRecord{ID: "r1", ProviderName: "Maria", FaepaForwarded: true}}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/batches/B1/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=lote_B1.xlsx" {
			t.Fatalf("unexpected disposition: %s", got)
		}
		f, err := excelize.OpenReader(w.Body)
		if err != nil {
			t.Fatalf("invalid workbook: %v", err)
		}
		defer f.Close()
		if v, _ := f.GetCellValue("Pagamentos", "B2"); v != "Maria" {
			t.Fatalf("expected provider name in B2, got %q", v)
		}
	})
}
