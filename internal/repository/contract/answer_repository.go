package contract

import (
	"context"

	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	DeleteAllByFormId(ctx context.Context, formId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)
	// FindRowsByFormId returns answers joined with their question text.
	// Callers choose the ordering; columns must be table-qualified.
	FindRowsByFormId(ctx context.Context, formId uuid.UUID, specs ...specification.Specification) ([]*entity.AnswerRow, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
