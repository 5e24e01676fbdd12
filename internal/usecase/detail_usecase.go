package usecase

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/domain/snapshot"
	"faepa_workflow/internal/usecase/interfaces"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrBatchNotForwarded = errors.New("batch not forwarded to the paying authority")
	ErrExportForbidden   = errors.New("viewer cannot export batch")
	ErrDetailForbidden   = errors.New("viewer cannot see this batch")
)

// DetailOptions controls how a batch is presented. Readonly hides every
// action; LockActions hides only approve/reject.
type DetailOptions struct {
	Viewer      entities.Actor
	Readonly    bool
	LockActions bool
}

type RequestActions struct {
	CanApprove  bool
	CanReject   bool
	CanRevert   bool
	CanMarkPaid bool
}

type BatchActions struct {
	CanSubmitToFinance bool
	CanForward         bool
}

type BatchSummary struct {
	Total     int
	Pending   int
	Approved  int
	Rejected  int
	Submitted bool
	Forwarded bool
}

// RequestDetail is one collaborator entry of a batch as shown to a viewer.
// AttachmentURL is presigned at read time from the stored ref.
type RequestDetail struct {
	Record        entities.RequestRecord
	Snapshots     entities.Snapshots
	Actions       RequestActions
	AttachmentURL string
}

type BatchDetail struct {
	BatchID          string
	Title            string
	Message          string
	SubmittedAt      time.Time
	CoordinatorID    string
	CoordinatorEmail string
	Readonly         bool
	Entries          []RequestDetail
	Summary          BatchSummary
	Actions          BatchActions
}

// IDetailUseCase builds read-only views of a batch. It never mutates state.
type IDetailUseCase interface {
	GetDetail(ctx context.Context, batchID string, opts DetailOptions) (BatchDetail, error)
	GetBatch(ctx context.Context, batchID string) (entities.Batch, error)
	GetForwarded(ctx context.Context, batchID string, viewer entities.Actor) (BatchDetail, error)
}

type DetailUseCase struct {
	ledger      ILedgerUseCase
	submissions interfaces.ISubmissionRepository
}

var _ IDetailUseCase = (*DetailUseCase)(nil)

func NewDetailUseCase(ledger ILedgerUseCase, submissions interfaces.ISubmissionRepository) *DetailUseCase {
	return &DetailUseCase{ledger: ledger, submissions: submissions}
}

func (u *DetailUseCase) GetBatch(ctx context.Context, batchID string) (entities.Batch, error) {
	return u.ledger.ListBatch(ctx, batchID)
}

func (u *DetailUseCase) GetDetail(ctx context.Context, batchID string, opts DetailOptions) (BatchDetail, error) {
	full, err := u.ledger.ListBatch(ctx, batchID)
	if err != nil {
		return BatchDetail{}, err
	}
	batch, err := visibleBatch(full, opts.Viewer)
	if err != nil {
		log.Printf("[detail][usecase] detail denied batch_id=%s viewer=%s role=%s", batchID, opts.Viewer.ID, opts.Viewer.Role)
		return BatchDetail{}, err
	}

	role := opts.Viewer.Role
	readonly := opts.Readonly || !canAct(role)
	header := batch.Header()

	detail := BatchDetail{
		BatchID:          batch.ID,
		Title:            header.BatchTitle,
		Message:          header.BatchMessage,
		SubmittedAt:      header.CreatedAt,
		CoordinatorID:    header.CoordinatorID,
		CoordinatorEmail: header.CoordinatorEmail,
		Readonly:         readonly,
		Entries:          make([]RequestDetail, 0, len(batch.Records)),
		Summary: BatchSummary{
			Total:     len(batch.Records),
			Pending:   batch.Count(entities.RequestStatusPending),
			Approved:  batch.Count(entities.RequestStatusApproved),
			Rejected:  batch.Count(entities.RequestStatusRejected),
			Submitted: batch.Submitted(),
			Forwarded: batch.Forwarded(),
		},
	}

	var submittable, forwardable bool
	for _, r := range batch.Records {
		detail.Entries = append(detail.Entries, RequestDetail{
			Record:        r,
			Snapshots:     snapshot.Resolve(r.Snapshots(), u.liveSubmission(ctx, r.SubmissionID)),
			Actions:       requestActions(r, opts.Viewer, readonly, opts.LockActions),
			AttachmentURL: u.attachmentURL(ctx, r),
		})
		if r.Status != entities.RequestStatusPending && !r.BatchSubmitted {
			submittable = true
		}
		if r.Status == entities.RequestStatusApproved && r.BatchSubmitted && !r.FaepaForwarded {
			forwardable = true
		}
	}

	if !readonly {
		detail.Actions = BatchActions{
			CanSubmitToFinance: submittable && (role == entities.RoleCoordinator || role == entities.RoleFinance),
			CanForward:         forwardable && role == entities.RoleFinance,
		}
	}
	return detail, nil
}

// GetForwarded returns a readonly detail holding only the forwarded entries,
// which is what the paying authority works from.
func (u *DetailUseCase) GetForwarded(ctx context.Context, batchID string, viewer entities.Actor) (BatchDetail, error) {
	if viewer.Role != entities.RoleFinance && viewer.Role != entities.RolePayingAuthority {
		return BatchDetail{}, ErrExportForbidden
	}
	detail, err := u.GetDetail(ctx, batchID, DetailOptions{Viewer: viewer, Readonly: true})
	if err != nil {
		return BatchDetail{}, err
	}
	if !detail.Summary.Forwarded {
		return BatchDetail{}, ErrBatchNotForwarded
	}

	forwarded := detail.Entries[:0]
	for _, e := range detail.Entries {
		if e.Record.FaepaForwarded {
			forwarded = append(forwarded, e)
		}
	}
	detail.Entries = forwarded
	return detail, nil
}

// liveSubmission feeds the fallback tier of snapshot resolution. A missing or
// unreadable form degrades to the stored snapshot alone.
func (u *DetailUseCase) liveSubmission(ctx context.Context, id string) entities.Submission {
	if id == "" || u.submissions == nil {
		return entities.Submission{}
	}
	s, err := u.submissions.GetByID(ctx, id)
	if err != nil {
		log.Printf("[detail][usecase] live submission unavailable submission_id=%s err=%v", id, err)
		return entities.Submission{}
	}
	return s
}

// visibleBatch narrows a batch to what the viewer may read: finance and the
// paying authority see everything, the coordinator sees the batch assigned to
// them and requesters see only their own records.
func visibleBatch(batch entities.Batch, viewer entities.Actor) (entities.Batch, error) {
	switch viewer.Role {
	case entities.RoleFinance, entities.RolePayingAuthority:
		return batch, nil
	case entities.RoleCoordinator:
		for _, r := range batch.Records {
			if viewer.ID != "" && r.CoordinatorID == viewer.ID {
				return batch, nil
			}
		}
		return entities.Batch{}, ErrDetailForbidden
	}

	own := make([]entities.RequestRecord, 0, len(batch.Records))
	for _, r := range batch.Records {
		if viewer.ID != "" && r.RequesterID == viewer.ID {
			own = append(own, r)
		}
	}
	if len(own) == 0 {
		return entities.Batch{}, ErrDetailForbidden
	}
	return entities.Batch{ID: batch.ID, Records: own}, nil
}

func (u *DetailUseCase) attachmentURL(ctx context.Context, r entities.RequestRecord) string {
	if r.FaepaPaymentAttachment == "" {
		return ""
	}
	url, err := u.ledger.AttachmentURL(ctx, r.FaepaPaymentAttachment)
	if err != nil {
		log.Printf("[detail][usecase] attachment link unavailable request_id=%s err=%v", r.ID, err)
		return ""
	}
	return url
}

func canAct(role entities.Role) bool {
	switch role {
	case entities.RoleCoordinator, entities.RoleFinance, entities.RolePayingAuthority:
		return true
	}
	return false
}

func requestActions(r entities.RequestRecord, viewer entities.Actor, readonly, lock bool) RequestActions {
	if readonly {
		return RequestActions{}
	}
	role := viewer.Role
	coordinator := role == entities.RoleCoordinator && viewer.ID != "" && viewer.ID == r.CoordinatorID
	decidable := coordinator && !lock && !r.BatchSubmitted && r.Status == entities.RequestStatusPending
	return RequestActions{
		CanApprove:  decidable,
		CanReject:   decidable,
		CanRevert:   coordinator && r.Status != entities.RequestStatusPending && !r.BatchSubmitted,
		CanMarkPaid: role == entities.RolePayingAuthority && r.Status == entities.RequestStatusApproved && r.FaepaForwarded,
	}
}
