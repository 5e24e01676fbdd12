package interfaces

import (
	"context"
	"faepa_workflow/internal/domain/entities"
)

// ISubmissionRepository abstracts Postgres persistence for payment forms.
// Lookups of unknown ids return a zero-value Submission.

type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	Update(ctx context.Context, s entities.Submission) (entities.Submission, error)
}
