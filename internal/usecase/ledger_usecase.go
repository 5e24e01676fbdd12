package usecase

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const maxUpdateAttempts = 3

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrBatchNotFound         = errors.New("batch not found")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidBatchID        = errors.New("invalid batch id")
	ErrBatchAlreadySubmitted = entities.ErrDecisionLocked
	ErrRequestNotApproved    = entities.ErrNotApproved
	ErrNothingToSubmit       = errors.New("batch has no decided request left to submit")
	ErrNothingToForward      = errors.New("batch has no approved request to forward")
)

// DecisionExtra carries the metadata of a coordinator decision. DecidedBy
// overrides Actor as the recorded decision author when set.
type DecisionExtra struct {
	Actor     string
	DecidedBy string
	Note      string
}

// PaymentArgs describes a payment confirmation. AttachmentRef is resolved to
// a URL before being stored; Receipt is the raw provider payload, if any.
type PaymentArgs struct {
	Actor         string
	Note          string
	AttachmentRef string
	Receipt       string
}

type ForwardArgs struct {
	Actor string
	Note  string
}

// ILedgerUseCase owns every state transition of request records.
//
// Requested behavior:
//   - decisions are frozen once the batch reached finance
//   - forwarding and payment only apply to approved requests
//   - batch operations never advance pending requests

type ILedgerUseCase interface {
	AddRequests(ctx context.Context, records []entities.RequestRecord) (int, error)
	SetRequestStatus(ctx context.Context, id string, status entities.RequestStatus, extra DecisionExtra) (entities.RequestRecord, error)
	MarkBatchSubmitted(ctx context.Context, batchID string, actor string) (int, error)
	MarkRequestPaid(ctx context.Context, id string, args PaymentArgs) (entities.RequestRecord, error)
	MarkBatchForwarded(ctx context.Context, batchID string, args ForwardArgs) (int, error)
	GetRequest(ctx context.Context, id string) (entities.RequestRecord, error)
	ListBatch(ctx context.Context, batchID string) (entities.Batch, error)
	ListRequests(ctx context.Context) ([]entities.RequestRecord, error)
	// AttachmentURL turns a stored attachment ref into a link valid right now.
	AttachmentURL(ctx context.Context, ref string) (string, error)
}

type LedgerUseCase struct {
	repo        interfaces.IRequestRepository
	attachments interfaces.IAttachmentResolver
	now         func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.IRequestRepository, attachments interfaces.IAttachmentResolver) *LedgerUseCase {
	return &LedgerUseCase{
		repo:        repo,
		attachments: attachments,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *LedgerUseCase) AddRequests(ctx context.Context, records []entities.RequestRecord) (int, error) {
	now := u.now()
	valid := make([]entities.RequestRecord, 0, len(records))
	for _, r := range records {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			log.Printf("[ledger][usecase] skipping record without id batch_id=%s", r.BatchID)
			continue
		}
		r.Status = entities.NormalizeRequestStatus(string(r.Status))
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = now
		}
		r.Version = 0
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return 0, nil
	}

	if err := u.repo.CreateBatch(ctx, valid); err != nil {
		log.WithError(err).Printf("[ledger][usecase] create batch failed records=%d", len(valid))
		return 0, err
	}
	log.Printf("[ledger][usecase] records added count=%d", len(valid))
	return len(valid), nil
}

func (u *LedgerUseCase) SetRequestStatus(ctx context.Context, id string, status entities.RequestStatus, extra DecisionExtra) (entities.RequestRecord, error) {
	decidedBy := strings.TrimSpace(extra.DecidedBy)
	if decidedBy == "" {
		decidedBy = strings.TrimSpace(extra.Actor)
	}
	note := strings.TrimSpace(extra.Note)

	updated, err := u.mutate(ctx, id, func(r *entities.RequestRecord) error {
		return r.SetStatus(status, decidedBy, note, u.now())
	})
	if err != nil {
		log.Printf("[ledger][usecase] set status failed request_id=%s status=%s err=%v", id, status, err)
		return entities.RequestRecord{}, err
	}
	log.Printf("[ledger][usecase] status set request_id=%s status=%s by=%s", updated.ID, updated.Status, decidedBy)
	return updated, nil
}

func (u *LedgerUseCase) MarkBatchSubmitted(ctx context.Context, batchID string, actor string) (int, error) {
	batch, err := u.ListBatch(ctx, batchID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, member := range batch.Records {
		if member.Status == entities.RequestStatusPending || member.BatchSubmitted {
			continue
		}
		_, err := u.mutate(ctx, member.ID, func(r *entities.RequestRecord) error {
			return r.MarkBatchSubmitted(actor, u.now())
		})
		switch {
		case err == nil:
			changed++
		case errors.Is(err, entities.ErrPendingNotSubmitable), errors.Is(err, entities.ErrAlreadySubmitted):
			// Reopened or submitted by someone else since the batch was listed.
			log.Printf("[ledger][usecase] submit skipped request_id=%s reason=%v", member.ID, err)
		default:
			log.WithError(err).Printf("[ledger][usecase] submit failed batch_id=%s request_id=%s changed=%d", batch.ID, member.ID, changed)
			return changed, err
		}
	}

	if changed == 0 {
		log.Printf("[ledger][usecase] nothing to submit batch_id=%s", batch.ID)
		return 0, ErrNothingToSubmit
	}
	log.Printf("[ledger][usecase] batch submitted batch_id=%s changed=%d", batch.ID, changed)
	return changed, nil
}

func (u *LedgerUseCase) MarkRequestPaid(ctx context.Context, id string, args PaymentArgs) (entities.RequestRecord, error) {
	note := strings.TrimSpace(args.Note)
	updated, err := u.mutate(ctx, id, func(r *entities.RequestRecord) error {
		if r.Status != entities.RequestStatusApproved {
			return ErrRequestNotApproved
		}
		attachment := strings.TrimSpace(args.AttachmentRef)
		if _, err := u.AttachmentURL(ctx, attachment); err != nil {
			return err
		}
		if err := r.MarkPaid(args.Actor, note, attachment, u.now()); err != nil {
			return err
		}
		if args.Receipt != "" {
			r.FaepaPaymentReceipt = args.Receipt
		}
		return nil
	})
	if err != nil {
		log.Printf("[ledger][usecase] mark paid failed request_id=%s err=%v", id, err)
		return entities.RequestRecord{}, err
	}
	log.Printf("[ledger][usecase] request paid request_id=%s by=%s", updated.ID, updated.FaepaPaidBy)
	return updated, nil
}

func (u *LedgerUseCase) MarkBatchForwarded(ctx context.Context, batchID string, args ForwardArgs) (int, error) {
	batch, err := u.ListBatch(ctx, batchID)
	if err != nil {
		return 0, err
	}
	note := strings.TrimSpace(args.Note)

	changed := 0
	for _, member := range batch.Records {
		if member.Status != entities.RequestStatusApproved {
			continue
		}
		_, err := u.mutate(ctx, member.ID, func(r *entities.RequestRecord) error {
			return r.MarkForwarded(args.Actor, note, u.now())
		})
		switch {
		case err == nil:
			changed++
		case errors.Is(err, entities.ErrNotApproved):
			log.Printf("[ledger][usecase] forward skipped request_id=%s reason=%v", member.ID, err)
		default:
			log.WithError(err).Printf("[ledger][usecase] forward failed batch_id=%s request_id=%s changed=%d", batch.ID, member.ID, changed)
			return changed, err
		}
	}

	if changed == 0 {
		log.Printf("[ledger][usecase] nothing to forward batch_id=%s", batch.ID)
		return 0, ErrNothingToForward
	}
	log.Printf("[ledger][usecase] batch forwarded batch_id=%s changed=%d", batch.ID, changed)
	return changed, nil
}

func (u *LedgerUseCase) GetRequest(ctx context.Context, id string) (entities.RequestRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestRecord{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if r.ID == "" {
		return entities.RequestRecord{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *LedgerUseCase) ListBatch(ctx context.Context, batchID string) (entities.Batch, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return entities.Batch{}, ErrInvalidBatchID
	}
	records, err := u.repo.ListByBatchID(ctx, batchID)
	if err != nil {
		log.WithError(err).Printf("[ledger][usecase] list batch failed batch_id=%s", batchID)
		return entities.Batch{}, err
	}
	batch := entities.NewBatch(batchID, records)
	if batch.Empty() {
		return entities.Batch{}, ErrBatchNotFound
	}
	return batch, nil
}

func (u *LedgerUseCase) ListRequests(ctx context.Context) ([]entities.RequestRecord, error) {
	return u.repo.List(ctx)
}

// mutate runs a read-modify-write cycle on one record. The repository rejects
// the write when the record changed in between, in which case the transition
// is re-applied on fresh state.
func (u *LedgerUseCase) mutate(ctx context.Context, id string, apply func(r *entities.RequestRecord) error) (entities.RequestRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestRecord{}, ErrInvalidRequestID
	}

	for attempt := 1; ; attempt++ {
		r, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.RequestRecord{}, err
		}
		if r.ID == "" {
			return entities.RequestRecord{}, ErrRequestNotFound
		}
		if err := apply(&r); err != nil {
			return entities.RequestRecord{}, err
		}

		updated, err := u.repo.Update(ctx, r)
		if errors.Is(err, interfaces.ErrVersionConflict) && attempt < maxUpdateAttempts {
			log.Printf("[ledger][usecase] version conflict request_id=%s attempt=%d", id, attempt)
			continue
		}
		if err != nil {
			return entities.RequestRecord{}, err
		}
		return updated, nil
	}
}

// AttachmentURL presigns stored object refs on every call; records keep the
// ref because presigned links expire. Absolute URLs pass through.
func (u *LedgerUseCase) AttachmentURL(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || u.attachments == nil {
		return ref, nil
	}
	url, err := u.attachments.ResolveURL(ctx, ref)
	if err != nil {
		log.WithError(err).Printf("[ledger][usecase] attachment resolution failed ref=%s", ref)
		return "", err
	}
	return url, nil
}
