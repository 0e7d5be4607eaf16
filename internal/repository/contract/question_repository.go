package contract

import (
	"context"

	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	DeleteAllByFormId(ctx context.Context, formId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
