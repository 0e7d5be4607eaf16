package unitofwork

import (
	"context"

	"feedback-forms-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FormRepository() contract.FormRepository
	QuestionRepository() contract.QuestionRepository
	AnswerRepository() contract.AnswerRepository
	AISummaryRepository() contract.AISummaryRepository
}
