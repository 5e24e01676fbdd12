package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionModel is the submissions table. Form fields live in one jsonb
// column since the form layout changes independently of the ledger.
type SubmissionModel struct {
	ID        string            `gorm:"column:id;primaryKey"`
	AuthorID  string            `gorm:"column:author_id;index;not null"`
	Fields    datatypes.JSONMap `gorm:"column:fields;type:jsonb;not null"`
	CreatedAt time.Time         `gorm:"column:created_at;not null"`
	UpdatedAt time.Time         `gorm:"column:updated_at;not null"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

type SubmissionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISubmissionRepository = (*SubmissionGormRepository)(nil)

func NewSubmissionGormRepository(db *gorm.DB) *SubmissionGormRepository {
	return &SubmissionGormRepository{db: db}
}

// MigrateSubmissions creates or updates the submissions table.
func MigrateSubmissions(db *gorm.DB) error {
	return db.AutoMigrate(&SubmissionModel{})
}

func (r *SubmissionGormRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	m := toSubmissionModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionModel(m), nil
}

func (r *SubmissionGormRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	var m SubmissionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	return fromSubmissionModel(m), nil
}

// Update replaces the form fields; an unknown id yields a zero-value Submission.
func (r *SubmissionGormRepository) Update(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	m := toSubmissionModel(s)
	res := r.db.WithContext(ctx).
		Model(&SubmissionModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"fields":     m.Fields,
			"updated_at": m.UpdatedAt,
		})
	if res.Error != nil {
		return entities.Submission{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Submission{}, nil
	}
	return r.GetByID(ctx, m.ID)
}

func toSubmissionModel(s entities.Submission) SubmissionModel {
	fields := make(datatypes.JSONMap, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	return SubmissionModel{
		ID:        s.ID,
		AuthorID:  s.AuthorID,
		Fields:    fields,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func fromSubmissionModel(m SubmissionModel) entities.Submission {
	fields := make(map[string]string, len(m.Fields))
	for k, v := range m.Fields {
		switch val := v.(type) {
		case nil:
		case string:
			fields[k] = val
		default:
			fields[k] = fmt.Sprint(val)
		}
	}
	return entities.Submission{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Fields:    fields,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
