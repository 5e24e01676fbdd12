package usecase

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/domain/snapshot"
	"faepa_workflow/internal/usecase/interfaces"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyBatch          = errors.New("batch has no submissions")
	ErrInvalidCoordinator  = errors.New("invalid coordinator")
	ErrInvalidDecision     = errors.New("invalid decision action")
	ErrRejectNoteRequired  = errors.New("a note is required to reject a request")
	ErrNotBatchCoordinator = errors.New("request is assigned to another coordinator")
	ErrPaymentNotConfirmed = errors.New("payment not confirmed by provider")
	ErrReceiptsDisabled    = errors.New("payment receipt gateway not configured")
)

// DecisionAction is what a coordinator does with a single request.
type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
	DecisionReopen  DecisionAction = "reopen"
)

func ParseDecisionAction(s string) (DecisionAction, bool) {
	switch DecisionAction(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionApprove:
		return DecisionApprove, true
	case DecisionReject:
		return DecisionReject, true
	case DecisionReopen:
		return DecisionReopen, true
	}
	return "", false
}

func (a DecisionAction) status() entities.RequestStatus {
	switch a {
	case DecisionApprove:
		return entities.RequestStatusApproved
	case DecisionReject:
		return entities.RequestStatusRejected
	}
	return entities.RequestStatusPending
}

type SubmitBatchInput struct {
	Title            string
	Message          string
	CoordinatorID    string
	CoordinatorEmail string
	SubmissionIDs    []string
}

type MarkPaidInput struct {
	Note              string
	AttachmentRef     string
	ProviderPaymentID string
}

// NotificationSettings holds the fixed recipients of the finance stages and
// the default from address.
type NotificationSettings struct {
	FinanceAddress         string
	PayingAuthorityAddress string
	DefaultSender          entities.Sender
}

// IWorkflowUseCase exposes the operations behind the review screens.
//
// Requested behavior:
//   - a batch is created from submitted forms and sent to one coordinator
//   - the coordinator decides each request; rejecting needs a note
//   - decided batches go to finance, approved requests on to the paying authority
//   - the paying authority confirms each payment
//
// Every step notifies the next party. Notification failures are logged and
// never undo the ledger change.

type IWorkflowUseCase interface {
	SubmitBatch(ctx context.Context, actor entities.Actor, in SubmitBatchInput) (entities.Batch, error)
	Decide(ctx context.Context, actor entities.Actor, requestID string, action DecisionAction, note string) (entities.RequestRecord, error)
	SubmitBatchToFinance(ctx context.Context, actor entities.Actor, batchID string) (entities.Batch, error)
	ForwardBatch(ctx context.Context, actor entities.Actor, batchID string, note string) (entities.Batch, error)
	MarkPaid(ctx context.Context, actor entities.Actor, requestID string, in MarkPaidInput) (entities.RequestRecord, error)
}

type WorkflowUseCase struct {
	ledger      ILedgerUseCase
	submissions interfaces.ISubmissionRepository
	channels    IChannelUseCase
	notifier    interfaces.INotifier
	receipts    interfaces.IPaymentReceiptGateway
	settings    NotificationSettings
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(
	ledger ILedgerUseCase,
	submissions interfaces.ISubmissionRepository,
	channels IChannelUseCase,
	notifier interfaces.INotifier,
	receipts interfaces.IPaymentReceiptGateway,
	settings NotificationSettings,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		ledger:      ledger,
		submissions: submissions,
		channels:    channels,
		notifier:    notifier,
		receipts:    receipts,
		settings:    settings,
	}
}

func (u *WorkflowUseCase) SubmitBatch(ctx context.Context, actor entities.Actor, in SubmitBatchInput) (entities.Batch, error) {
	log.Printf("[workflow][usecase] submit batch start actor=%s submissions=%d", actor.ID, len(in.SubmissionIDs))
	coordinatorID := strings.TrimSpace(in.CoordinatorID)
	if coordinatorID == "" {
		return entities.Batch{}, ErrInvalidCoordinator
	}

	ids := uniqueTrimmed(in.SubmissionIDs)
	if len(ids) == 0 {
		return entities.Batch{}, ErrEmptyBatch
	}

	batchID := uuid.NewString()
	records := make([]entities.RequestRecord, 0, len(ids))
	for _, sid := range ids {
		sub, err := u.submissions.GetByID(ctx, sid)
		if err != nil {
			log.WithError(err).Printf("[workflow][usecase] loading submission failed submission_id=%s", sid)
			return entities.Batch{}, err
		}
		if sub.ID == "" {
			log.Printf("[workflow][usecase] submission not found submission_id=%s", sid)
			return entities.Batch{}, ErrSubmissionNotFound
		}
		if sub.AuthorID != actor.ID {
			log.Printf("[workflow][usecase] foreign submission submission_id=%s actor=%s", sid, actor.ID)
			return entities.Batch{}, ErrSubmissionForbidden
		}

		snaps := snapshot.Build(sub)
		records = append(records, entities.RequestRecord{
			ID:               uuid.NewString(),
			BatchID:          batchID,
			SubmissionID:     sub.ID,
			Status:           entities.RequestStatusPending,
			ProviderName:     snapshot.ProviderName(sub),
			ProviderValue:    snapshot.ProviderValue(sub),
			SnapshotPayment:  snaps.Payment,
			SnapshotService:  snaps.Service,
			SnapshotPayout:   snaps.Payout,
			BatchTitle:       strings.TrimSpace(in.Title),
			BatchMessage:     strings.TrimSpace(in.Message),
			CoordinatorID:    coordinatorID,
			CoordinatorEmail: strings.TrimSpace(in.CoordinatorEmail),
			RequesterID:      sub.AuthorID,
			RequesterEmail:   sub.Field(snapshot.FieldEmail),
			CreatedBy:        actor.ID,
		})
	}

	if _, err := u.ledger.AddRequests(ctx, records); err != nil {
		return entities.Batch{}, err
	}
	batch, err := u.ledger.ListBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}

	header := batch.Header()
	u.notify(ctx, interfaces.Message{
		To:      u.channels.Resolve(ctx, coordinatorID, entities.ChannelCoordinator, header.CoordinatorEmail),
		Subject: fmt.Sprintf("Novo lote de solicitações de pagamento: %s", batchTitle(header)),
		Body:    fmt.Sprintf("%d solicitação(ões) aguardando sua análise no lote %s.\n\n%s", batch.Count(entities.RequestStatusPending), batch.ID, header.BatchMessage),
		From:    u.channels.Sender(ctx, actor.ID, entities.ChannelCollaborator, u.settings.DefaultSender),
	})
	log.Printf("[workflow][usecase] submit batch success batch_id=%s records=%d", batch.ID, len(batch.Records))
	return batch, nil
}

func (u *WorkflowUseCase) Decide(ctx context.Context, actor entities.Actor, requestID string, action DecisionAction, note string) (entities.RequestRecord, error) {
	log.Printf("[workflow][usecase] decide start request_id=%s action=%s actor=%s", requestID, action, actor.ID)
	action, ok := ParseDecisionAction(string(action))
	if !ok {
		return entities.RequestRecord{}, ErrInvalidDecision
	}
	note = strings.TrimSpace(note)
	if action == DecisionReject && note == "" {
		return entities.RequestRecord{}, ErrRejectNoteRequired
	}

	current, err := u.ledger.GetRequest(ctx, requestID)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if current.CoordinatorID != "" && current.CoordinatorID != actor.ID {
		log.Printf("[workflow][usecase] decide denied request_id=%s coordinator_id=%s actor=%s", current.ID, current.CoordinatorID, actor.ID)
		return entities.RequestRecord{}, ErrNotBatchCoordinator
	}

	updated, err := u.ledger.SetRequestStatus(ctx, current.ID, action.status(), DecisionExtra{Actor: actor.ID, Note: note})
	if err != nil {
		return entities.RequestRecord{}, err
	}

	if action != DecisionReopen {
		u.notify(ctx, interfaces.Message{
			To:      u.channels.Resolve(ctx, updated.RequesterID, entities.ChannelCollaborator, updated.RequesterEmail),
			Subject: fmt.Sprintf("Solicitação de pagamento %s: %s", decisionWord(updated.Status), updated.ProviderName),
			Body:    decisionBody(updated),
			From:    u.channels.Sender(ctx, actor.ID, entities.ChannelCoordinator, u.settings.DefaultSender),
		})
	}
	log.Printf("[workflow][usecase] decide success request_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *WorkflowUseCase) SubmitBatchToFinance(ctx context.Context, actor entities.Actor, batchID string) (entities.Batch, error) {
	log.Printf("[workflow][usecase] submit to finance start batch_id=%s actor=%s", batchID, actor.ID)
	changed, err := u.ledger.MarkBatchSubmitted(ctx, batchID, actor.ID)
	if err != nil {
		return entities.Batch{}, err
	}
	batch, err := u.ledger.ListBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}

	u.notify(ctx, interfaces.Message{
		To:      u.settings.FinanceAddress,
		Subject: fmt.Sprintf("Lote enviado ao financeiro: %s", batchTitle(batch.Header())),
		Body: fmt.Sprintf("Lote %s: %d aprovada(s), %d rejeitada(s), %d pendente(s).",
			batch.ID, batch.Count(entities.RequestStatusApproved), batch.Count(entities.RequestStatusRejected), batch.Count(entities.RequestStatusPending)),
		From: u.channels.Sender(ctx, actor.ID, entities.ChannelCoordinator, u.settings.DefaultSender),
	})
	log.Printf("[workflow][usecase] submit to finance success batch_id=%s changed=%d", batch.ID, changed)
	return batch, nil
}

func (u *WorkflowUseCase) ForwardBatch(ctx context.Context, actor entities.Actor, batchID string, note string) (entities.Batch, error) {
	log.Printf("[workflow][usecase] forward start batch_id=%s actor=%s", batchID, actor.ID)
	changed, err := u.ledger.MarkBatchForwarded(ctx, batchID, ForwardArgs{Actor: actor.ID, Note: note})
	if err != nil {
		return entities.Batch{}, err
	}
	batch, err := u.ledger.ListBatch(ctx, batchID)
	if err != nil {
		return entities.Batch{}, err
	}

	var lines []string
	for _, r := range batch.Records {
		if r.FaepaForwarded {
			lines = append(lines, fmt.Sprintf("- %s: R$ %s", r.ProviderName, r.ProviderValue))
		}
	}
	body := fmt.Sprintf("Lote %s encaminhado para pagamento.\n%s", batch.ID, strings.Join(lines, "\n"))
	if note = strings.TrimSpace(note); note != "" {
		body += "\n\n" + note
	}
	u.notify(ctx, interfaces.Message{
		To:      u.settings.PayingAuthorityAddress,
		Subject: fmt.Sprintf("Pagamentos encaminhados: %s", batchTitle(batch.Header())),
		Body:    body,
	})
	log.Printf("[workflow][usecase] forward success batch_id=%s changed=%d", batch.ID, changed)
	return batch, nil
}

func (u *WorkflowUseCase) MarkPaid(ctx context.Context, actor entities.Actor, requestID string, in MarkPaidInput) (entities.RequestRecord, error) {
	log.Printf("[workflow][usecase] mark paid start request_id=%s actor=%s", requestID, actor.ID)
	receipt := ""
	if providerID := strings.TrimSpace(in.ProviderPaymentID); providerID != "" {
		if u.receipts == nil {
			log.Printf("[workflow][usecase] receipt gateway not configured request_id=%s", requestID)
			return entities.RequestRecord{}, ErrReceiptsDisabled
		}
		status, raw, err := u.receipts.GetPayment(ctx, providerID)
		if err != nil {
			log.WithError(err).Printf("[workflow][usecase] receipt lookup failed request_id=%s provider_payment_id=%s", requestID, providerID)
			return entities.RequestRecord{}, err
		}
		if status != "approved" {
			log.Printf("[workflow][usecase] payment not confirmed request_id=%s provider_status=%s", requestID, status)
			return entities.RequestRecord{}, ErrPaymentNotConfirmed
		}
		receipt = string(raw)
	}

	updated, err := u.ledger.MarkRequestPaid(ctx, requestID, PaymentArgs{
		Actor:         actor.ID,
		Note:          in.Note,
		AttachmentRef: in.AttachmentRef,
		Receipt:       receipt,
	})
	if err != nil {
		return entities.RequestRecord{}, err
	}

	link, err := u.ledger.AttachmentURL(ctx, updated.FaepaPaymentAttachment)
	if err != nil {
		log.WithError(err).Printf("[workflow][usecase] receipt link unavailable request_id=%s", updated.ID)
		link = ""
	}
	u.notify(ctx, interfaces.Message{
		To:      u.channels.Resolve(ctx, updated.RequesterID, entities.ChannelCollaborator, updated.RequesterEmail),
		Subject: fmt.Sprintf("Pagamento realizado: %s", updated.ProviderName),
		Body:    paidBody(updated, link),
	})
	log.Printf("[workflow][usecase] mark paid success request_id=%s", updated.ID)
	return updated, nil
}

func (u *WorkflowUseCase) notify(ctx context.Context, msg interfaces.Message) {
	if u.notifier == nil || strings.TrimSpace(msg.To) == "" {
		log.Printf("[workflow][usecase] notification skipped subject=%q", msg.Subject)
		return
	}
	if err := u.notifier.Send(ctx, msg); err != nil {
		log.WithError(err).Printf("[workflow][usecase] notification failed to=%s subject=%q", msg.To, msg.Subject)
	}
}

func uniqueTrimmed(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func batchTitle(header entities.RequestRecord) string {
	if header.BatchTitle != "" {
		return header.BatchTitle
	}
	return header.BatchID
}

func decisionWord(status entities.RequestStatus) string {
	if status == entities.RequestStatusApproved {
		return "aprovada"
	}
	return "rejeitada"
}

func decisionBody(r entities.RequestRecord) string {
	body := fmt.Sprintf("Sua solicitação de R$ %s foi %s.", r.ProviderValue, decisionWord(r.Status))
	if r.DecisionNote != "" {
		body += "\n\nObservação: " + r.DecisionNote
	}
	return body
}

func paidBody(r entities.RequestRecord, link string) string {
	body := fmt.Sprintf("O pagamento de R$ %s foi confirmado.", r.ProviderValue)
	if link != "" {
		body += "\n\nComprovante: " + link
	}
	return body
}
