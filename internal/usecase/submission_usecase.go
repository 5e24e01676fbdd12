package usecase

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/domain/snapshot"
	"faepa_workflow/internal/usecase/interfaces"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrInvalidSubmission   = errors.New("invalid submission")
	ErrSubmissionForbidden = errors.New("submission belongs to another user")
)

// ISubmissionUseCase manages the requester's payment forms. Request records
// copy what they need at batch time, so editing a form never changes a
// request already sent.
type ISubmissionUseCase interface {
	Create(ctx context.Context, actor entities.Actor, fields map[string]string) (entities.Submission, error)
	Update(ctx context.Context, actor entities.Actor, id string, fields map[string]string) (entities.Submission, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Submission, error)
}

type SubmissionUseCase struct {
	repo interfaces.ISubmissionRepository
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.ISubmissionRepository) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo}
}

func (u *SubmissionUseCase) Create(ctx context.Context, actor entities.Actor, fields map[string]string) (entities.Submission, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return entities.Submission{}, ErrInvalidUserID
	}
	clean, err := cleanSubmissionFields(fields)
	if err != nil {
		log.Printf("[submission][usecase] create rejected author_id=%s err=%v", actor.ID, err)
		return entities.Submission{}, err
	}

	now := time.Now().UTC()
	s := entities.Submission{
		ID:        uuid.NewString(),
		AuthorID:  actor.ID,
		Fields:    clean,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.WithError(err).Printf("[submission][usecase] create failed author_id=%s", actor.ID)
		return entities.Submission{}, err
	}
	log.Printf("[submission][usecase] created submission_id=%s author_id=%s", created.ID, actor.ID)
	return created, nil
}

func (u *SubmissionUseCase) Update(ctx context.Context, actor entities.Actor, id string, fields map[string]string) (entities.Submission, error) {
	current, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return entities.Submission{}, err
	}
	clean, err := cleanSubmissionFields(fields)
	if err != nil {
		log.Printf("[submission][usecase] update rejected submission_id=%s err=%v", current.ID, err)
		return entities.Submission{}, err
	}

	current.Fields = clean
	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	log.Printf("[submission][usecase] updated submission_id=%s", updated.ID)
	return updated, nil
}

// GetByID only exposes a form to its author.
func (u *SubmissionUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	if s.AuthorID != actor.ID {
		return entities.Submission{}, ErrSubmissionForbidden
	}
	return s, nil
}

// cleanSubmissionFields trims values, drops empty ones, canonicalizes the
// amount and checks the fields every request needs.
func cleanSubmissionFields(fields map[string]string) (map[string]string, error) {
	clean := make(map[string]string, len(fields))
	for k, v := range fields {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		clean[k] = v
	}

	required := []string{snapshot.FieldDirectorName, snapshot.FieldControlNumber, snapshot.FieldProviderName, snapshot.FieldEmail, snapshot.FieldAmount}
	if strings.EqualFold(clean[snapshot.FieldPayerType], string(entities.PayerTypeOrganization)) {
		clean[snapshot.FieldPayerType] = string(entities.PayerTypeOrganization)
		required = append(required, snapshot.FieldOrganizationName, snapshot.FieldCNPJ)
	} else {
		clean[snapshot.FieldPayerType] = string(entities.PayerTypeIndividual)
		required = append(required, snapshot.FieldCPF)
	}
	for _, name := range required {
		if clean[name] == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidSubmission, name)
		}
	}

	amount := snapshot.NormalizeCurrency(clean[snapshot.FieldAmount])
	if amount == "0" {
		return nil, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidSubmission, snapshot.FieldAmount)
	}
	clean[snapshot.FieldAmount] = amount
	return clean, nil
}
