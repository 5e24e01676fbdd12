package interfaces

import (
	"context"
	"errors"
	"faepa_workflow/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored record changed
// since it was read.
var ErrVersionConflict = errors.New("request record version conflict")

// IRequestRepository abstracts persistence of the request ledger.
//
// The workflow service must be able to:
//   - append a whole batch of records at once
//   - read a single record and every record of a batch
//   - update one record with an optimistic version check
//
// GetByID returns a zero-value record when the id is unknown.

type IRequestRepository interface {
	CreateBatch(ctx context.Context, records []entities.RequestRecord) error
	GetByID(ctx context.Context, id string) (entities.RequestRecord, error)
	ListByBatchID(ctx context.Context, batchID string) ([]entities.RequestRecord, error)
	List(ctx context.Context) ([]entities.RequestRecord, error)
	Update(ctx context.Context, r entities.RequestRecord) (entities.RequestRecord, error)
}
