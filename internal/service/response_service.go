package service

import (
	"context"
	"strings"
	"time"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/repository/specification"
	"feedback-forms-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IResponseService interface {
	GetPublicForm(ctx context.Context, token string) (*dto.PublicFormDTO, error)
	// SubmitAnswers persists one row per non-blank answer. Blank or missing
	// answers are skipped silently; zero non-blank answers is still success.
	SubmitAnswers(ctx context.Context, token string, answersByQuestionId map[uuid.UUID]string) (*entity.Form, error)
}

type responseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewResponseService(uowFactory unitofwork.RepositoryFactory) IResponseService {
	return &responseService{
		uowFactory: uowFactory,
	}
}

func (s *responseService) GetPublicForm(ctx context.Context, token string) (*dto.PublicFormDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := uow.FormRepository().FindOne(ctx, specification.ByPublicToken{Token: token})
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByFormID{FormID: form.Id},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	return &dto.PublicFormDTO{
		Form:      form,
		Questions: questions,
	}, nil
}

func (s *responseService) SubmitAnswers(ctx context.Context, token string, answersByQuestionId map[uuid.UUID]string) (*entity.Form, error) {
	public, err := s.GetPublicForm(ctx, token)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, question := range public.Questions {
		answer := strings.TrimSpace(answersByQuestionId[question.Id])
		if answer == "" {
			continue
		}

		row := &entity.Answer{
			Id:         uuid.New(),
			FormId:     public.Form.Id,
			QuestionId: question.Id,
			AnswerText: answer,
			CreatedAt:  time.Now(),
		}
		if err := uow.AnswerRepository().Create(ctx, row); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return public.Form, nil
}
