package response

import (
	"encoding/json"
	"testing"
	"time"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase"
)

func TestFromRequestRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	resp := FromRequestRecord(entities.RequestRecord{
		ID: "r1", BatchID: "B1", Status: entities.RequestStatusApproved,
		ProviderValue: "1500.5", DecisionAt: now, CreatedAt: now,
	})

	if resp.ProviderValueLabel != "1.500,50" {
		t.Fatalf("expected formatted value, got %q", resp.ProviderValueLabel)
	}
	if resp.DecisionAt == nil || !resp.DecisionAt.Equal(now) {
		t.Fatalf("expected decision_at, got %v", resp.DecisionAt)
	}
	if resp.FaepaPaidAt != nil {
		t.Fatalf("expected zero time to be omitted")
	}

	b, _ := json.Marshal(resp)
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["faepa_paid_at"]; ok {
		t.Fatalf("expected faepa_paid_at to be omitted: %s", b)
	}
}

func TestFromBatchDetail(t *testing.T) {
	d := usecase.BatchDetail{
		BatchID: "B1",
		Title:   "Março",
		Entries: []usecase.RequestDetail{{
			Record:        entities.RequestRecord{ID: "r1", FaepaPaymentAttachment: "receipts/r1.pdf"},
			Snapshots:     entities.Snapshots{Payout: entities.SnapshotSection{{Label: "Banco", Value: "001"}}},
			Actions:       usecase.RequestActions{CanApprove: true},
			AttachmentURL: "https://files/r1.pdf?sig=1",
		}},
		Summary: usecase.BatchSummary{Total: 1, Pending: 1},
		Actions: usecase.BatchActions{CanForward: true},
	}

	resp := FromBatchDetail(d)
	if len(resp.Entries) != 1 || !resp.Entries[0].Actions.CanApprove {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
	if resp.Entries[0].Snapshots.Payout[0].Value != "001" || len(resp.Entries[0].Snapshots.Payment) != 0 {
		t.Fatalf("unexpected snapshots: %+v", resp.Entries[0].Snapshots)
	}
	if resp.Entries[0].Request.PaymentAttachment != "receipts/r1.pdf" || resp.Entries[0].AttachmentURL != "https://files/r1.pdf?sig=1" {
		t.Fatalf("expected ref and link, got %+v", resp.Entries[0])
	}
	if resp.Summary.Total != 1 || !resp.Actions.CanForward || resp.SubmittedAt != nil {
		t.Fatalf("unexpected header: %+v", resp)
	}
}

func TestFromSubmission(t *testing.T) {
	resp := FromSubmission(entities.Submission{
		ID: "s1", AuthorID: "u1",
		Fields: map[string]string{"provider_name": "Maria", "bank": "001"},
	})
	if resp.ID != "s1" || len(resp.Preview.Payment) == 0 {
		t.Fatalf("expected preview snapshot, got %+v", resp)
	}
}
