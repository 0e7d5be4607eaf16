package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/repository/specification"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxTokenAttempts bounds the retry loop on public-token collisions.
const MaxTokenAttempts = 10

type IFormService interface {
	CreateForm(ctx context.Context, ownerId uuid.UUID, req *dto.CreateFormRequest) (*entity.Form, error)
	ListForms(ctx context.Context, ownerId uuid.UUID) ([]*entity.Form, error)
	GetByPublicToken(ctx context.Context, token string) (*entity.Form, error)
	GetOwned(ctx context.Context, formId, ownerId uuid.UUID) (*entity.Form, error)
	DeleteForm(ctx context.Context, formId, ownerId uuid.UUID) error
}

type formService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFormService(uowFactory unitofwork.RepositoryFactory) IFormService {
	return &formService{
		uowFactory: uowFactory,
	}
}

func (s *formService) CreateForm(ctx context.Context, ownerId uuid.UUID, req *dto.CreateFormRequest) (*entity.Form, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, &ValidationError{Message: "Title is required."}
	}

	questions := make([]string, 0, len(req.Questions))
	for _, q := range req.Questions {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			questions = append(questions, trimmed)
		}
	}
	if len(questions) < 1 {
		return nil, &ValidationError{Message: "You must add at least 1 question."}
	}

	// Each attempt is its own transaction: a duplicate-token insert aborts
	// the postgres transaction, so regeneration cannot reuse it.
	for attempt := 0; attempt < MaxTokenAttempts; attempt++ {
		token, err := utils.GeneratePublicToken()
		if err != nil {
			return nil, err
		}

		form, err := s.insertFormWithQuestions(ctx, ownerId, token, req.Title, strings.TrimSpace(req.Description), questions)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return nil, err
		}
		return form, nil
	}

	return nil, fmt.Errorf("failed to create a unique public token after %d attempts", MaxTokenAttempts)
}

func (s *formService) insertFormWithQuestions(ctx context.Context, ownerId uuid.UUID, token, title, description string, questions []string) (*entity.Form, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	form := &entity.Form{
		Id:          uuid.New(),
		PublicToken: token,
		OwnerId:     ownerId,
		Title:       title,
		Description: description,
		Status:      "open",
		CreatedAt:   time.Now(),
	}
	if err := uow.FormRepository().Create(ctx, form); err != nil {
		return nil, err
	}

	for idx, text := range questions {
		question := &entity.Question{
			Id:           uuid.New(),
			FormId:       form.Id,
			QuestionText: text,
			Position:     idx + 1,
			CreatedAt:    time.Now(),
		}
		if err := uow.QuestionRepository().Create(ctx, question); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *formService) ListForms(ctx context.Context, ownerId uuid.UUID) ([]*entity.Form, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FormRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *formService) GetByPublicToken(ctx context.Context, token string) (*entity.Form, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	form, err := uow.FormRepository().FindOne(ctx, specification.ByPublicToken{Token: token})
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}
	return form, nil
}

// GetOwned is the sole authorization check protecting results, summarization
// and deletion; it is re-run on every owner-scoped operation.
func (s *formService) GetOwned(ctx context.Context, formId, ownerId uuid.UUID) (*entity.Form, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	form, err := uow.FormRepository().FindOne(ctx,
		specification.ByID{ID: formId},
		specification.OwnedBy{OwnerID: ownerId},
	)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *formService) DeleteForm(ctx context.Context, formId, ownerId uuid.UUID) error {
	if _, err := s.GetOwned(ctx, formId, ownerId); err != nil {
		return err
	}

	// Explicit cascade inside one transaction; the sqlite backend carries no
	// FK cascade, so children go first.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.AnswerRepository().DeleteAllByFormId(ctx, formId); err != nil {
		return err
	}
	if err := uow.AISummaryRepository().DeleteAllByFormId(ctx, formId); err != nil {
		return err
	}
	if err := uow.QuestionRepository().DeleteAllByFormId(ctx, formId); err != nil {
		return err
	}
	if err := uow.FormRepository().Delete(ctx, formId); err != nil {
		return err
	}

	return uow.Commit()
}
