package usecase

import (
	"context"
	"errors"
	"testing"

	"faepa_workflow/internal/adapter/persistence/repository"
	"faepa_workflow/internal/domain/entities"
	mock_interfaces "faepa_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seedDetailBatch(t *testing.T) *LedgerUseCase {
	t.Helper()
	ctx := context.Background()
	uc := newScenarioLedger(t,
		entities.RequestRecord{
			ID: "r1", BatchID: "B1", SubmissionID: "s1", BatchTitle: "Março", BatchMessage: "Segue lote",
			CoordinatorID: "c1", RequesterID: "u1",
			SnapshotPayment: entities.SnapshotSection{
				{Label: "Nome do Prestador", Value: "Maria"},
				{Label: "Banco", Value: "001"},
			},
		},
		entities.RequestRecord{ID: "r2", BatchID: "B1", SubmissionID: "s2", CoordinatorID: "c1", RequesterID: "u2"},
		entities.RequestRecord{ID: "r3", BatchID: "B1", CoordinatorID: "c1", RequesterID: "u1"},
	)
	if _, err := uc.SetRequestStatus(ctx, "r2", entities.RequestStatusApproved, DecisionExtra{Actor: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func entryByID(d BatchDetail, id string) RequestDetail {
	for _, e := range d.Entries {
		if e.Record.ID == id {
			return e
		}
	}
	return RequestDetail{}
}

func TestDetailUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("coordinator sees decision actions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subs := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewDetailUseCase(seedDetailBatch(t), subs)

		subs.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Submission{ID: "s1", Fields: map[string]string{"provider_name": "Maria Live", "cpf": "111"}}, nil)
		subs.EXPECT().GetByID(gomock.Any(), "s2").Return(entities.Submission{}, errors.New("db"))

		d, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{ID: "c1", Role: entities.RoleCoordinator}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Title != "Março" || d.Message != "Segue lote" || d.CoordinatorID != "c1" || d.SubmittedAt.IsZero() {
			t.Fatalf("unexpected header: %+v", d)
		}
		if d.Summary.Total != 3 || d.Summary.Pending != 2 || d.Summary.Approved != 1 {
			t.Fatalf("unexpected summary: %+v", d.Summary)
		}

		r1 := entryByID(d, "r1")
		if !r1.Actions.CanApprove || !r1.Actions.CanReject || r1.Actions.CanRevert {
			t.Fatalf("unexpected pending actions: %+v", r1.Actions)
		}
		if v, _ := r1.Snapshots.Payment.Get("Nome do Prestador"); v != "Maria" {
			t.Fatalf("expected stored snapshot to win, got %q", v)
		}
		if v, _ := r1.Snapshots.Payout.Get("Banco"); v != "001" {
			t.Fatalf("expected payout label moved to payout section, got %q", v)
		}
		if v, _ := r1.Snapshots.Payment.Get("CPF"); v != "111" {
			t.Fatalf("expected live fallback for missing label, got %q", v)
		}

		r2 := entryByID(d, "r2")
		if r2.Actions.CanApprove || !r2.Actions.CanRevert {
			t.Fatalf("unexpected approved actions: %+v", r2.Actions)
		}
		if !d.Actions.CanSubmitToFinance || d.Actions.CanForward {
			t.Fatalf("unexpected batch actions: %+v", d.Actions)
		}
	})

	t.Run("lock actions keeps revert", func(t *testing.T) {
		uc := NewDetailUseCase(seedDetailBatch(t), nil)

		d, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{ID: "c1", Role: entities.RoleCoordinator}, LockActions: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a := entryByID(d, "r1").Actions; a.CanApprove || a.CanReject {
			t.Fatalf("expected decisions locked, got %+v", a)
		}
		if !entryByID(d, "r2").Actions.CanRevert {
			t.Fatalf("expected revert to remain available")
		}
	})

	t.Run("requester is forced readonly and sees own records", func(t *testing.T) {
		uc := NewDetailUseCase(seedDetailBatch(t), nil)

		d, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{ID: "u1", Role: entities.RoleRequester}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Readonly || d.Actions.CanSubmitToFinance {
			t.Fatalf("expected readonly view, got %+v", d)
		}
		if len(d.Entries) != 2 || entryByID(d, "r2").Record.ID != "" || d.Summary.Total != 2 {
			t.Fatalf("expected only u1 records, got %+v", d.Entries)
		}
		for _, e := range d.Entries {
			if e.Actions != (RequestActions{}) {
				t.Fatalf("expected no actions, got %+v", e.Actions)
			}
		}
	})

	t.Run("finance after submission", func(t *testing.T) {
		ledger := seedDetailBatch(t)
		if _, err := ledger.MarkBatchSubmitted(ctx, "B1", "f1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewDetailUseCase(ledger, nil)

		d, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{Role: entities.RoleFinance}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Actions.CanForward || d.Actions.CanSubmitToFinance {
			t.Fatalf("unexpected batch actions: %+v", d.Actions)
		}
		if !d.Summary.Submitted {
			t.Fatalf("expected submitted summary")
		}
	})

	t.Run("paying authority after forwarding", func(t *testing.T) {
		ledger := seedDetailBatch(t)
		if _, err := ledger.MarkBatchSubmitted(ctx, "B1", "f1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := ledger.MarkBatchForwarded(ctx, "B1", ForwardArgs{Actor: "f1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewDetailUseCase(ledger, nil)

		d, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{Role: entities.RolePayingAuthority}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entryByID(d, "r2").Actions.CanMarkPaid || entryByID(d, "r1").Actions.CanMarkPaid {
			t.Fatalf("only forwarded approved entries can be paid")
		}
		if entryByID(d, "r2").Actions.CanRevert {
			t.Fatalf("paying authority cannot revert decisions")
		}
	})

	t.Run("unrelated viewers are denied", func(t *testing.T) {
		uc := NewDetailUseCase(seedDetailBatch(t), nil)
		for _, viewer := range []entities.Actor{
			{ID: "bob", Role: entities.RoleRequester},
			{ID: "c2", Role: entities.RoleCoordinator},
			{Role: entities.RoleRequester},
		} {
			if _, err := uc.GetDetail(ctx, "B1", DetailOptions{Viewer: viewer}); !errors.Is(err, ErrDetailForbidden) {
				t.Fatalf("expected ErrDetailForbidden for %+v, got %v", viewer, err)
			}
		}
	})

	t.Run("presigns attachment on read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attachments := mock_interfaces.NewMockIAttachmentResolver(ctrl)
		ledger := NewLedgerUseCase(repository.NewRequestMemoryRepository(), attachments)
		if _, err := ledger.AddRequests(ctx, []entities.RequestRecord{{ID: "r1", BatchID: "B1", CoordinatorID: "c1", Status: entities.RequestStatusApproved}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		attachments.EXPECT().ResolveURL(gomock.Any(), "receipts/r1.pdf").Return("https://files/r1.pdf?sig=1", nil).Times(2)
		if _, err := ledger.MarkRequestPaid(ctx, "r1", PaymentArgs{Actor: "p1", AttachmentRef: "receipts/r1.pdf"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		d, err := NewDetailUseCase(ledger, nil).GetDetail(ctx, "B1", DetailOptions{Viewer: entities.Actor{ID: "f1", Role: entities.RoleFinance}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := entryByID(d, "r1")
		if e.Record.FaepaPaymentAttachment != "receipts/r1.pdf" || e.AttachmentURL != "https://files/r1.pdf?sig=1" {
			t.Fatalf("expected stored ref and fresh link, got ref=%q url=%q", e.Record.FaepaPaymentAttachment, e.AttachmentURL)
		}
	})

	t.Run("unknown batch", func(t *testing.T) {
		uc := NewDetailUseCase(newScenarioLedger(t), nil)
		if _, err := uc.GetDetail(ctx, "nope", DetailOptions{}); !errors.Is(err, ErrBatchNotFound) {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})
}

func TestRequestActions_CoordinatorMustOwnBatch(t *testing.T) {
	pending := entities.RequestRecord{ID: "r1", CoordinatorID: "c1", Status: entities.RequestStatusPending}
	approved := entities.RequestRecord{ID: "r2", CoordinatorID: "c1", Status: entities.RequestStatusApproved}

	owner := entities.Actor{ID: "c1", Role: entities.RoleCoordinator}
	if a := requestActions(pending, owner, false, false); !a.CanApprove || !a.CanReject {
		t.Fatalf("expected decision actions for batch coordinator, got %+v", a)
	}

	other := entities.Actor{ID: "c2", Role: entities.RoleCoordinator}
	if a := requestActions(pending, other, false, false); a != (RequestActions{}) {
		t.Fatalf("expected no actions for another coordinator, got %+v", a)
	}
	if a := requestActions(approved, other, false, false); a.CanRevert {
		t.Fatalf("expected no revert for another coordinator, got %+v", a)
	}
}

func TestDetailUseCase_GetForwarded(t *testing.T) {
	ctx := context.Background()

	t.Run("not forwarded", func(t *testing.T) {
		uc := NewDetailUseCase(seedDetailBatch(t), nil)
		if _, err := uc.GetForwarded(ctx, "B1", entities.Actor{Role: entities.RolePayingAuthority}); !errors.Is(err, ErrBatchNotForwarded) {
			t.Fatalf("expected ErrBatchNotForwarded, got %v", err)
		}
	})

	t.Run("forbidden role", func(t *testing.T) {
		uc := NewDetailUseCase(seedDetailBatch(t), nil)
		if _, err := uc.GetForwarded(ctx, "B1", entities.Actor{Role: entities.RoleCoordinator}); !errors.Is(err, ErrExportForbidden) {
			t.Fatalf("expected ErrExportForbidden, got %v", err)
		}
	})

	t.Run("only forwarded entries", func(t *testing.T) {
		ledger := seedDetailBatch(t)
		if _, err := ledger.MarkBatchSubmitted(ctx, "B1", "f1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := ledger.MarkBatchForwarded(ctx, "B1", ForwardArgs{Actor: "f1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewDetailUseCase(ledger, nil)

		d, err := uc.GetForwarded(ctx, "B1", entities.Actor{Role: entities.RolePayingAuthority})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Entries) != 1 || d.Entries[0].Record.ID != "r2" {
			t.Fatalf("expected only r2, got %+v", d.Entries)
		}
		if !d.Readonly || d.Entries[0].Actions != (RequestActions{}) {
			t.Fatalf("expected readonly export view")
		}
	})
}
