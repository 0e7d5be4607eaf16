package implementation

import (
	"context"
	"errors"

	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/mapper"
	"feedback-forms-be/internal/model"
	"feedback-forms-be/internal/repository/contract"
	"feedback-forms-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AISummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AISummaryMapper
}

func NewAISummaryRepository(db *gorm.DB) contract.AISummaryRepository {
	return &AISummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewAISummaryMapper(),
	}
}

func (r *AISummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AISummaryRepositoryImpl) Create(ctx context.Context, summary *entity.AISummary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *AISummaryRepositoryImpl) DeleteAllByFormId(ctx context.Context, formId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("form_id = ?", formId).Delete(&model.AISummary{}).Error
}

func (r *AISummaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AISummary, error) {
	var m model.AISummary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AISummaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AISummary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
