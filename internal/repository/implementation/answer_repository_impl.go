package implementation

import (
	"context"

	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/mapper"
	"feedback-forms-be/internal/model"
	"feedback-forms-be/internal/repository/contract"
	"feedback-forms-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

func (r *AnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnswerRepositoryImpl) Create(ctx context.Context, answer *entity.Answer) error {
	m := r.mapper.ToModel(answer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnswerRepositoryImpl) DeleteAllByFormId(ctx context.Context, formId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("form_id = ?", formId).Delete(&model.Answer{}).Error
}

func (r *AnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var models []*model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnswerRepositoryImpl) FindRowsByFormId(ctx context.Context, formId uuid.UUID, specs ...specification.Specification) ([]*entity.AnswerRow, error) {
	var rows []*entity.AnswerRow
	query := r.db.WithContext(ctx).
		Model(&model.Answer{}).
		Select("questions.position, questions.question_text, answers.answer_text, answers.created_at").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.form_id = ?", formId)
	query = r.applySpecifications(query, specs...)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnswerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Answer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
