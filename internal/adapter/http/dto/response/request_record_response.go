package response

import (
	"time"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/domain/snapshot"
)

type SnapshotFieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SnapshotsResponse struct {
	Payment []SnapshotFieldResponse `json:"payment"`
	Service []SnapshotFieldResponse `json:"service"`
	Payout  []SnapshotFieldResponse `json:"payout"`
}

type RequestRecordResponse struct {
	ID                 string     `json:"id"`
	BatchID            string     `json:"batch_id"`
	SubmissionID       string     `json:"submission_id"`
	Status             string     `json:"status"`
	ProviderName       string     `json:"provider_name"`
	ProviderValue      string     `json:"provider_value"`
	ProviderValueLabel string     `json:"provider_value_label"`
	DecisionAt         *time.Time `json:"decision_at,omitempty"`
	DecisionBy         string     `json:"decision_by,omitempty"`
	DecisionNote       string     `json:"decision_note,omitempty"`
	BatchSubmitted     bool       `json:"batch_submitted"`
	BatchSubmittedAt   *time.Time `json:"batch_submitted_at,omitempty"`
	FaepaForwarded     bool       `json:"faepa_forwarded"`
	FaepaForwardedAt   *time.Time `json:"faepa_forwarded_at,omitempty"`
	FaepaForwardedNote string     `json:"faepa_forwarded_note,omitempty"`
	FaepaPaid          bool       `json:"faepa_paid"`
	FaepaPaidAt        *time.Time `json:"faepa_paid_at,omitempty"`
	FaepaPaidBy        string     `json:"faepa_paid_by,omitempty"`
	PaymentNote        string     `json:"payment_note,omitempty"`
	PaymentAttachment  string     `json:"payment_attachment,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromRequestRecord(r entities.RequestRecord) RequestRecordResponse {
	return RequestRecordResponse{
		ID:                 r.ID,
		BatchID:            r.BatchID,
		SubmissionID:       r.SubmissionID,
		Status:             string(r.Status),
		ProviderName:       r.ProviderName,
		ProviderValue:      r.ProviderValue,
		ProviderValueLabel: snapshot.FormatCurrency(r.ProviderValue),
		DecisionAt:         optionalTime(r.DecisionAt),
		DecisionBy:         r.DecisionBy,
		DecisionNote:       r.DecisionNote,
		BatchSubmitted:     r.BatchSubmitted,
		BatchSubmittedAt:   optionalTime(r.BatchSubmittedAt),
		FaepaForwarded:     r.FaepaForwarded,
		FaepaForwardedAt:   optionalTime(r.FaepaForwardedAt),
		FaepaForwardedNote: r.FaepaForwardedNote,
		FaepaPaid:          r.FaepaPaid,
		FaepaPaidAt:        optionalTime(r.FaepaPaidAt),
		FaepaPaidBy:        r.FaepaPaidBy,
		PaymentNote:        r.FaepaPaymentNote,
		PaymentAttachment:  r.FaepaPaymentAttachment,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type BatchResponse struct {
	BatchID  string                  `json:"batch_id"`
	Requests []RequestRecordResponse `json:"requests"`
}

func FromBatch(b entities.Batch) BatchResponse {
	out := BatchResponse{BatchID: b.ID, Requests: make([]RequestRecordResponse, 0, len(b.Records))}
	for _, r := range b.Records {
		out.Requests = append(out.Requests, FromRequestRecord(r))
	}
	return out
}

func FromSnapshots(s entities.Snapshots) SnapshotsResponse {
	return SnapshotsResponse{
		Payment: fromSection(s.Payment),
		Service: fromSection(s.Service),
		Payout:  fromSection(s.Payout),
	}
}

func fromSection(s entities.SnapshotSection) []SnapshotFieldResponse {
	out := make([]SnapshotFieldResponse, 0, len(s))
	for _, f := range s {
		out = append(out, SnapshotFieldResponse{Label: f.Label, Value: f.Value})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
