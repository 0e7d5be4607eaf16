package contract

import (
	"context"

	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AISummaryRepository interface {
	Create(ctx context.Context, summary *entity.AISummary) error
	DeleteAllByFormId(ctx context.Context, formId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AISummary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
