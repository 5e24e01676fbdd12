package repository

import (
	"context"
	"fmt"
	"sync"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"
)

// RequestMemoryRepository keeps the ledger in process memory. It backs local
// runs (LEDGER_BACKEND=memory) and tests, with the same version semantics as
// the DynamoDB repository.
type RequestMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]entities.RequestRecord
	order   []string
	byBatch map[string][]string
}

var _ interfaces.IRequestRepository = (*RequestMemoryRepository)(nil)

func NewRequestMemoryRepository() *RequestMemoryRepository {
	return &RequestMemoryRepository{
		records: make(map[string]entities.RequestRecord),
		byBatch: make(map[string][]string),
	}
}

func (r *RequestMemoryRepository) CreateBatch(_ context.Context, records []entities.RequestRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := r.records[rec.ID]; ok {
			return fmt.Errorf("create request batch: record %s already exists", rec.ID)
		}
		if _, ok := seen[rec.ID]; ok {
			return fmt.Errorf("create request batch: duplicated record %s", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}

	for _, rec := range records {
		r.records[rec.ID] = cloneRecord(rec)
		r.order = append(r.order, rec.ID)
		r.byBatch[rec.BatchID] = append(r.byBatch[rec.BatchID], rec.ID)
	}
	return nil
}

func (r *RequestMemoryRepository) GetByID(_ context.Context, id string) (entities.RequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return entities.RequestRecord{}, nil
	}
	return cloneRecord(rec), nil
}

func (r *RequestMemoryRepository) ListByBatchID(_ context.Context, batchID string) ([]entities.RequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byBatch[batchID]
	out := make([]entities.RequestRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecord(r.records[id]))
	}
	return out, nil
}

func (r *RequestMemoryRepository) List(_ context.Context) ([]entities.RequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.RequestRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRecord(r.records[id]))
	}
	return out, nil
}

func (r *RequestMemoryRepository) Update(_ context.Context, rec entities.RequestRecord) (entities.RequestRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[rec.ID]
	if !ok || current.Version != rec.Version {
		return entities.RequestRecord{}, interfaces.ErrVersionConflict
	}
	if current.BatchID != rec.BatchID {
		r.byBatch[current.BatchID] = removeID(r.byBatch[current.BatchID], rec.ID)
		r.byBatch[rec.BatchID] = append(r.byBatch[rec.BatchID], rec.ID)
	}

	rec.Version++
	r.records[rec.ID] = cloneRecord(rec)
	return cloneRecord(rec), nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
