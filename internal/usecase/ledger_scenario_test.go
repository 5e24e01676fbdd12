package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"faepa_workflow/internal/adapter/persistence/repository"
	"faepa_workflow/internal/domain/entities"
)

// steppingClock advances one minute on every call so re-stamps are observable.
func steppingClock() func() time.Time {
	current := fixedNow
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func newScenarioLedger(t *testing.T, records ...entities.RequestRecord) *LedgerUseCase {
	t.Helper()
	uc := NewLedgerUseCase(repository.NewRequestMemoryRepository(), nil)
	uc.now = steppingClock()
	if len(records) > 0 {
		if _, err := uc.AddRequests(context.Background(), records); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return uc
}

func mustGet(t *testing.T, uc *LedgerUseCase, id string) entities.RequestRecord {
	t.Helper()
	r, err := uc.GetRequest(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error loading %s: %v", id, err)
	}
	return r
}

func TestLedgerScenario_DecisionFrozenAfterSubmission(t *testing.T) {
	ctx := context.Background()
	for _, status := range []entities.RequestStatus{entities.RequestStatusApproved, entities.RequestStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			uc := newScenarioLedger(t, entities.RequestRecord{ID: "r1", BatchID: "B1"})
			if _, err := uc.SetRequestStatus(ctx, "r1", status, DecisionExtra{Actor: "c1", Note: "first"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := uc.MarkBatchSubmitted(ctx, "B1", "f1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			before := mustGet(t, uc, "r1")

			for _, next := range []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusApproved, entities.RequestStatusRejected, "bogus"} {
				_, err := uc.SetRequestStatus(ctx, "r1", next, DecisionExtra{Actor: "c2", Note: "second"})
				if !errors.Is(err, ErrBatchAlreadySubmitted) {
					t.Fatalf("expected ErrBatchAlreadySubmitted for %q, got %v", next, err)
				}
			}

			after := mustGet(t, uc, "r1")
			if after.Status != before.Status || !after.DecisionAt.Equal(before.DecisionAt) || after.DecisionNote != before.DecisionNote {
				t.Fatalf("decision changed after submission: before=%+v after=%+v", before, after)
			}
		})
	}
}

func TestLedgerScenario_PaidOnlyWhenApproved(t *testing.T) {
	ctx := context.Background()
	for _, status := range []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			uc := newScenarioLedger(t, entities.RequestRecord{ID: "r1", BatchID: "B1"})
			if status != entities.RequestStatusPending {
				if _, err := uc.SetRequestStatus(ctx, "r1", status, DecisionExtra{Actor: "c1"}); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			before := mustGet(t, uc, "r1")

			if _, err := uc.MarkRequestPaid(ctx, "r1", PaymentArgs{Actor: "p1", Note: "x"}); !errors.Is(err, ErrRequestNotApproved) {
				t.Fatalf("expected ErrRequestNotApproved, got %v", err)
			}
			after := mustGet(t, uc, "r1")
			if after.FaepaPaid || after.Version != before.Version || !after.UpdatedAt.Equal(before.UpdatedAt) {
				t.Fatalf("record changed: before=%+v after=%+v", before, after)
			}
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		uc := newScenarioLedger(t)
		if _, err := uc.MarkRequestPaid(ctx, "nope", PaymentArgs{Actor: "p1"}); !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestLedgerScenario_ForwardNeedsApproved(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioLedger(t,
		entities.RequestRecord{ID: "r1", BatchID: "B1"},
		entities.RequestRecord{ID: "r2", BatchID: "B1"},
		entities.RequestRecord{ID: "r3", BatchID: "B1"},
	)
	if _, err := uc.SetRequestStatus(ctx, "r2", entities.RequestStatusRejected, DecisionExtra{Actor: "c1", Note: "no"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.MarkBatchForwarded(ctx, "B1", ForwardArgs{Actor: "f1"}); !errors.Is(err, ErrNothingToForward) {
		t.Fatalf("expected ErrNothingToForward with zero approved, got %v", err)
	}

	if _, err := uc.SetRequestStatus(ctx, "r3", entities.RequestStatusApproved, DecisionExtra{Actor: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := uc.MarkBatchForwarded(ctx, "B1", ForwardArgs{Actor: "f1", Note: "lote 1"})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 forwarded, got %d err=%v", n, err)
	}
	if mustGet(t, uc, "r1").FaepaForwarded || mustGet(t, uc, "r2").FaepaForwarded {
		t.Fatalf("only approved records may be forwarded")
	}
	if r3 := mustGet(t, uc, "r3"); !r3.FaepaForwarded || r3.FaepaForwardedNote != "lote 1" {
		t.Fatalf("unexpected forwarded record: %+v", r3)
	}
}

func TestLedgerScenario_SubmitNeverTouchesPending(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioLedger(t,
		entities.RequestRecord{ID: "r1", BatchID: "B1"},
		entities.RequestRecord{ID: "r2", BatchID: "B1"},
	)
	if _, err := uc.MarkBatchSubmitted(ctx, "B1", "f1"); !errors.Is(err, ErrNothingToSubmit) {
		t.Fatalf("expected ErrNothingToSubmit, got %v", err)
	}

	if _, err := uc.SetRequestStatus(ctx, "r1", entities.RequestStatusApproved, DecisionExtra{Actor: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pending := mustGet(t, uc, "r2")
	if _, err := uc.MarkBatchSubmitted(ctx, "B1", "f1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustGet(t, uc, "r2"); got.BatchSubmitted || got.Version != pending.Version {
		t.Fatalf("pending record was changed: %+v", got)
	}

	if _, err := uc.MarkBatchSubmitted(ctx, "B1", "f1"); !errors.Is(err, ErrNothingToSubmit) {
		t.Fatalf("expected ErrNothingToSubmit on second submit, got %v", err)
	}
}

func TestLedgerScenario_BatchLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newScenarioLedger(t,
		entities.RequestRecord{ID: "r1", BatchID: "B1"},
		entities.RequestRecord{ID: "r2", BatchID: "B1"},
	)

	if _, err := uc.SetRequestStatus(ctx, "r1", entities.RequestStatusApproved, DecisionExtra{Actor: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.SetRequestStatus(ctx, "r2", entities.RequestStatusRejected, DecisionExtra{Actor: "c1", Note: "incomplete"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := uc.MarkBatchSubmitted(ctx, "B1", "f1")
	if err != nil || n != 2 {
		t.Fatalf("expected both decided records submitted, got %d err=%v", n, err)
	}
	if !mustGet(t, uc, "r1").BatchSubmitted || !mustGet(t, uc, "r2").BatchSubmitted {
		t.Fatalf("rejected records are closed out with the batch too")
	}

	if _, err := uc.SetRequestStatus(ctx, "r1", entities.RequestStatusPending, DecisionExtra{Actor: "c1"}); !errors.Is(err, ErrBatchAlreadySubmitted) {
		t.Fatalf("expected ErrBatchAlreadySubmitted, got %v", err)
	}
	if got := mustGet(t, uc, "r1"); got.Status != entities.RequestStatusApproved {
		t.Fatalf("expected r1 to stay approved, got %s", got.Status)
	}

	rejected := mustGet(t, uc, "r2")
	n, err = uc.MarkBatchForwarded(ctx, "B1", ForwardArgs{Actor: "f1"})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 forwarded, got %d err=%v", n, err)
	}
	if !mustGet(t, uc, "r1").FaepaForwarded {
		t.Fatalf("expected r1 forwarded")
	}
	if got := mustGet(t, uc, "r2"); got.FaepaForwarded || got.Version != rejected.Version {
		t.Fatalf("rejected record must be untouched by forwarding: %+v", got)
	}

	first, err := uc.MarkRequestPaid(ctx, "r1", PaymentArgs{Actor: "p1", Note: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.MarkRequestPaid(ctx, "r1", PaymentArgs{Actor: "p2", Note: "correction"})
	if err != nil {
		t.Fatalf("unexpected error on re-pay: %v", err)
	}
	if second.Status != entities.RequestStatusApproved || !second.FaepaPaid {
		t.Fatalf("expected record to stay approved and paid: %+v", second)
	}
	if !second.FaepaPaidAt.After(first.FaepaPaidAt) || second.FaepaPaidBy != "p2" || second.FaepaPaymentNote != "correction" {
		t.Fatalf("expected re-pay to re-stamp metadata: first=%+v second=%+v", first, second)
	}
}
