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

var (
	requesterActor   = entities.Actor{ID: "u1", Role: entities.RoleRequester}
	coordinatorActor = entities.Actor{ID: "c1", Role: entities.RoleCoordinator}
	financeActor     = entities.Actor{ID: "f1", Role: entities.RoleFinance}
	payerActor       = entities.Actor{ID: "p1", Role: entities.RolePayingAuthority}
)

func TestWorkflowHandler_SubmitBatch(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkflowHandler(mocks.NewMockIWorkflowUseCase(ctrl))

		r := newTestRouter(entities.Actor{})
		r.POST("/v1/batches", h.SubmitBatch)

		if w := doJSON(r, http.MethodPost, "/v1/batches", `{}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkflowHandler(mocks.NewMockIWorkflowUseCase(ctrl))

		r := newTestRouter(requesterActor)
		r.POST("/v1/batches", h.SubmitBatch)

		w := doJSON(r, http.MethodPost, "/v1/batches", `{"coordinator_id":"c1","coordinator_email":"not-an-email","submission_ids":["s1"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(requesterActor)
		r.POST("/v1/batches", h.SubmitBatch)

		uc.EXPECT().SubmitBatch(gomock.Any(), requesterActor, usecase.SubmitBatchInput{
			Title: "Março", CoordinatorID: "c1", CoordinatorEmail: "c1@faepa.br", SubmissionIDs: []string{"s1"},
		}).Return(entities.Batch{ID: "B1", Records: []entities.RequestRecord{{ID: "r1", BatchID: "B1", Status: entities.RequestStatusPending}}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/batches", `{"title":"Março","coordinator_id":"c1","coordinator_email":"c1@faepa.br","submission_ids":["s1"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["batch_id"] != "B1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkflowHandler_Decide(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWorkflowHandler(mocks.NewMockIWorkflowUseCase(ctrl))

		r := newTestRouter(coordinatorActor)
		r.PATCH("/v1/requests/:id/decision", h.Decide)

		if w := doJSON(r, http.MethodPatch, "/v1/requests/r1/decision", `{"action":"maybe"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked after submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.PATCH("/v1/requests/:id/decision", h.Decide)

		uc.EXPECT().Decide(gomock.Any(), coordinatorActor, "r1", usecase.DecisionApprove, "").Return(entities.RequestRecord{}, usecase.ErrBatchAlreadySubmitted)

		if w := doJSON(r, http.MethodPatch, "/v1/requests/r1/decision", `{"action":"approve"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject without note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.PATCH("/v1/requests/:id/decision", h.Decide)

		uc.EXPECT().Decide(gomock.Any(), coordinatorActor, "r1", usecase.DecisionReject, "").Return(entities.RequestRecord{}, usecase.ErrRejectNoteRequired)

		if w := doJSON(r, http.MethodPatch, "/v1/requests/r1/decision", `{"action":"reject"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(coordinatorActor)
		r.PATCH("/v1/requests/:id/decision", h.Decide)

		uc.EXPECT().Decide(gomock.Any(), coordinatorActor, "r1", usecase.DecisionReject, "faltou nota").
			Return(entities.RequestRecord{ID: "r1", Status: entities.RequestStatusRejected, DecisionNote: "faltou nota"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/requests/r1/decision", `{"action":"reject","note":"faltou nota"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "rejected" || body["decision_note"] != "faltou nota" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkflowHandler_SubmitToFinance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	h := NewWorkflowHandler(uc)

	r := newTestRouter(coordinatorActor)
	r.POST("/v1/batches/:batch_id/submit", h.SubmitToFinance)

	uc.EXPECT().SubmitBatchToFinance(gomock.Any(), coordinatorActor, "B1").Return(entities.Batch{}, usecase.ErrNothingToSubmit)
	if w := doJSON(r, http.MethodPost, "/v1/batches/B1/submit", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().SubmitBatchToFinance(gomock.Any(), coordinatorActor, "B1").Return(entities.Batch{ID: "B1"}, nil)
	if w := doJSON(r, http.MethodPost, "/v1/batches/B1/submit", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWorkflowHandler_Forward(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(financeActor)
		r.POST("/v1/batches/:batch_id/forward", h.Forward)

		uc.EXPECT().ForwardBatch(gomock.Any(), financeActor, "B1", "").Return(entities.Batch{ID: "B1"}, nil)
		if w := doJSON(r, http.MethodPost, "/v1/batches/B1/forward", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("with note and nothing approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(financeActor)
		r.POST("/v1/batches/:batch_id/forward", h.Forward)

		uc.EXPECT().ForwardBatch(gomock.Any(), financeActor, "B1", "lote 1").Return(entities.Batch{}, usecase.ErrNothingToForward)
		if w := doJSON(r, http.MethodPost, "/v1/batches/B1/forward", `{"note":"lote 1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_MarkPaid(t *testing.T) {
	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(payerActor)
		r.POST("/v1/requests/:id/paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), payerActor, "r1", gomock.Any()).Return(entities.RequestRecord{}, usecase.ErrRequestNotApproved)
		if w := doJSON(r, http.MethodPost, "/v1/requests/r1/paid", `{"note":"x"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := newTestRouter(payerActor)
		r.POST("/v1/requests/:id/paid", h.MarkPaid)

		uc.EXPECT().MarkPaid(gomock.Any(), payerActor, "r1", usecase.MarkPaidInput{Note: "pago", AttachmentRef: "receipts/a.pdf", ProviderPaymentID: "99"}).
			Return(entities.RequestRecord{ID: "r1", Status: entities.RequestStatusApproved, FaepaPaid: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/requests/r1/paid", `{"note":"pago","attachment_ref":"receipts/a.pdf","provider_payment_id":"99"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["faepa_paid"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
