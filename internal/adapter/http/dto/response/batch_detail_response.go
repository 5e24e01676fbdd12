package response

import (
	"time"

	"faepa_workflow/internal/usecase"
)

type RequestActionsResponse struct {
	CanApprove  bool `json:"can_approve"`
	CanReject   bool `json:"can_reject"`
	CanRevert   bool `json:"can_revert"`
	CanMarkPaid bool `json:"can_mark_paid"`
}

type BatchActionsResponse struct {
	CanSubmitToFinance bool `json:"can_submit_to_finance"`
	CanForward         bool `json:"can_forward"`
}

type BatchSummaryResponse struct {
	Total     int  `json:"total"`
	Pending   int  `json:"pending"`
	Approved  int  `json:"approved"`
	Rejected  int  `json:"rejected"`
	Submitted bool `json:"submitted"`
	Forwarded bool `json:"forwarded"`
}

type RequestDetailResponse struct {
	Request       RequestRecordResponse  `json:"request"`
	Snapshots     SnapshotsResponse      `json:"snapshots"`
	Actions       RequestActionsResponse `json:"actions"`
	AttachmentURL string                 `json:"attachment_url,omitempty"`
}

type BatchDetailResponse struct {
	BatchID          string                  `json:"batch_id"`
	Title            string                  `json:"title"`
	Message          string                  `json:"message,omitempty"`
	SubmittedAt      *time.Time              `json:"submitted_at,omitempty"`
	CoordinatorID    string                  `json:"coordinator_id,omitempty"`
	CoordinatorEmail string                  `json:"coordinator_email,omitempty"`
	Readonly         bool                    `json:"readonly"`
	Entries          []RequestDetailResponse `json:"entries"`
	Summary          BatchSummaryResponse    `json:"summary"`
	Actions          BatchActionsResponse    `json:"actions"`
}

func FromBatchDetail(d usecase.BatchDetail) BatchDetailResponse {
	out := BatchDetailResponse{
		BatchID:          d.BatchID,
		Title:            d.Title,
		Message:          d.Message,
		SubmittedAt:      optionalTime(d.SubmittedAt),
		CoordinatorID:    d.CoordinatorID,
		CoordinatorEmail: d.CoordinatorEmail,
		Readonly:         d.Readonly,
		Entries:          make([]RequestDetailResponse, 0, len(d.Entries)),
		Summary:          BatchSummaryResponse(d.Summary),
		Actions:          BatchActionsResponse(d.Actions),
	}
	for _, e := range d.Entries {
		out.Entries = append(out.Entries, RequestDetailResponse{
			Request:       FromRequestRecord(e.Record),
			Snapshots:     FromSnapshots(e.Snapshots),
			Actions:       RequestActionsResponse(e.Actions),
			AttachmentURL: e.AttachmentURL,
		})
	}
	return out
}
