package request

import (
	"strings"

	"faepa_workflow/internal/usecase"
)

// SubmitBatchRequest groups the requester's submissions into one batch for a coordinator.
type SubmitBatchRequest struct {
	Title            string   `json:"title"`
	Message          string   `json:"message"`
	CoordinatorID    string   `json:"coordinator_id" binding:"required"`
	CoordinatorEmail string   `json:"coordinator_email" binding:"required,email"`
	SubmissionIDs    []string `json:"submission_ids" binding:"required,min=1"`
}

func (r SubmitBatchRequest) ToInput() usecase.SubmitBatchInput {
	return usecase.SubmitBatchInput{
		Title:            strings.TrimSpace(r.Title),
		Message:          strings.TrimSpace(r.Message),
		CoordinatorID:    strings.TrimSpace(r.CoordinatorID),
		CoordinatorEmail: strings.TrimSpace(r.CoordinatorEmail),
		SubmissionIDs:    r.SubmissionIDs,
	}
}

// DecisionRequest is approve, reject or reopen. Reject requires a note.
type DecisionRequest struct {
	Action string `json:"action" binding:"required"`
	Note   string `json:"note"`
}

type ForwardRequest struct {
	Note string `json:"note"`
}

type MarkPaidRequest struct {
	Note              string `json:"note"`
	AttachmentRef     string `json:"attachment_ref"`
	ProviderPaymentID string `json:"provider_payment_id"`
}

func (r MarkPaidRequest) ToInput() usecase.MarkPaidInput {
	return usecase.MarkPaidInput{
		Note:              strings.TrimSpace(r.Note),
		AttachmentRef:     strings.TrimSpace(r.AttachmentRef),
		ProviderPaymentID: strings.TrimSpace(r.ProviderPaymentID),
	}
}
