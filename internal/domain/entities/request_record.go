package entities

import (
	"errors"
	"strings"
	"time"
)

// RequestStatus is the coordinator decision state of a payment request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

var (
	ErrDecisionLocked       = errors.New("request decision locked after batch submission")
	ErrNotApproved          = errors.New("request not approved")
	ErrPendingNotSubmitable = errors.New("pending request cannot be submitted to finance")
	ErrAlreadySubmitted     = errors.New("request already submitted to finance")
)

// NormalizeRequestStatus coerces any unknown value to pending.
func NormalizeRequestStatus(s string) RequestStatus {
	switch RequestStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RequestStatusApproved:
		return RequestStatusApproved
	case RequestStatusRejected:
		return RequestStatusRejected
	}
	return RequestStatusPending
}

// RequestRecord is one ledger entry: a single collaborator's payment request
// inside a batch sent to a coordinator.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (batch_id-index): batch_id
//
// Snapshot sections are frozen when the record is created and are never
// rewritten from later submission edits. Once BatchSubmitted is true the
// status and decision fields are immutable.
type RequestRecord struct {
	ID            string        `json:"id"`
	BatchID       string        `json:"batch_id"`
	SubmissionID  string        `json:"submission_id"`
	Status        RequestStatus `json:"status"`
	ProviderName  string        `json:"provider_name"`
	ProviderValue string        `json:"provider_value"`

	SnapshotPayment SnapshotSection `json:"snapshot_payment"`
	SnapshotService SnapshotSection `json:"snapshot_service"`
	SnapshotPayout  SnapshotSection `json:"snapshot_payout"`

	BatchTitle       string `json:"batch_title,omitempty"`
	BatchMessage     string `json:"batch_message,omitempty"`
	CoordinatorID    string `json:"coordinator_id,omitempty"`
	CoordinatorEmail string `json:"coordinator_email,omitempty"`
	RequesterID      string `json:"requester_id,omitempty"`
	RequesterEmail   string `json:"requester_email,omitempty"`
	CreatedBy        string `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DecisionAt   time.Time `json:"decision_at"`
	DecisionBy   string    `json:"decision_by,omitempty"`
	DecisionNote string    `json:"decision_note,omitempty"`

	BatchSubmitted   bool      `json:"batch_submitted"`
	BatchSubmittedAt time.Time `json:"batch_submitted_at"`
	BatchSubmittedBy string    `json:"batch_submitted_by,omitempty"`

	FaepaForwarded     bool      `json:"faepa_forwarded"`
	FaepaForwardedAt   time.Time `json:"faepa_forwarded_at"`
	FaepaForwardedBy   string    `json:"faepa_forwarded_by,omitempty"`
	FaepaForwardedNote string    `json:"faepa_forwarded_note,omitempty"`

	FaepaPaid              bool      `json:"faepa_paid"`
	FaepaPaidAt            time.Time `json:"faepa_paid_at"`
	FaepaPaidBy            string    `json:"faepa_paid_by,omitempty"`
	FaepaPaymentNote       string    `json:"faepa_payment_note,omitempty"`
	FaepaPaymentAttachment string    `json:"faepa_payment_attachment,omitempty"`
	FaepaPaymentReceipt    string    `json:"faepa_payment_receipt,omitempty"`

	// Version is the optimistic concurrency token; repositories bump it on every write.
	Version int64 `json:"version"`
}

// Snapshots returns the three frozen sections of the record.
func (r RequestRecord) Snapshots() Snapshots {
	return Snapshots{Payment: r.SnapshotPayment, Service: r.SnapshotService, Payout: r.SnapshotPayout}
}

// SetStatus applies a coordinator decision. Moving back to pending reopens the
// request and clears the decision fields. A note belongs to the decision it
// was written for, so switching between approved and rejected drops it.
func (r *RequestRecord) SetStatus(status RequestStatus, actor, note string, now time.Time) error {
	if r.BatchSubmitted {
		return ErrDecisionLocked
	}
	status = NormalizeRequestStatus(string(status))

	if status == RequestStatusPending {
		r.Status = RequestStatusPending
		r.DecisionAt = time.Time{}
		r.DecisionBy = ""
		r.DecisionNote = ""
	} else {
		if status != r.Status {
			r.DecisionNote = ""
		}
		r.Status = status
		r.DecisionAt = now
		r.DecisionBy = actor
		if note != "" {
			r.DecisionNote = note
		}
	}
	r.UpdatedAt = now
	return nil
}

// MarkBatchSubmitted flags the record as handed to finance. Pending records
// never advance through a batch operation.
func (r *RequestRecord) MarkBatchSubmitted(actor string, now time.Time) error {
	if r.Status == RequestStatusPending {
		return ErrPendingNotSubmitable
	}
	if r.BatchSubmitted {
		return ErrAlreadySubmitted
	}
	r.BatchSubmitted = true
	r.BatchSubmittedAt = now
	r.BatchSubmittedBy = actor
	r.UpdatedAt = now
	return nil
}

// MarkForwarded flags an approved record as forwarded to the paying authority.
func (r *RequestRecord) MarkForwarded(actor, note string, now time.Time) error {
	if r.Status != RequestStatusApproved {
		return ErrNotApproved
	}
	r.FaepaForwarded = true
	r.FaepaForwardedAt = now
	r.FaepaForwardedBy = actor
	r.FaepaForwardedNote = note
	r.UpdatedAt = now
	return nil
}

// MarkPaid records the payment confirmation. Calling it again on a paid record
// overwrites the previous payment metadata.
func (r *RequestRecord) MarkPaid(actor, note, attachment string, now time.Time) error {
	if r.Status != RequestStatusApproved {
		return ErrNotApproved
	}
	r.FaepaPaid = true
	r.FaepaPaidAt = now
	r.FaepaPaidBy = actor
	r.FaepaPaymentNote = note
	r.FaepaPaymentAttachment = attachment
	r.UpdatedAt = now
	return nil
}
