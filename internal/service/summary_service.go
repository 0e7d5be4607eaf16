package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/pkg/logger"
	"feedback-forms-be/internal/pkg/mailer"
	"feedback-forms-be/internal/repository/specification"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/pkg/llm"

	"github.com/google/uuid"
)

const noAnswersPlaceholder = "No answers yet."

const promptTemplate = `You are an operations style feedback analyst for a team.

Given the following anonymous feedback answers, produce:
1) Top 5 recurring themes (ranked, with brief evidence)
2) Top 5 most common concrete suggestions (ranked)
3) Actionable next steps (7-day plan + 30-day plan)
4) Risks / red flags (if any)
5) A short executive summary (5 bullet points)

Rules:
- Be specific and practical.
- Don't invent facts.
- If data is thin, say so.
- Within your reply, NEVER use boldings ** or * as it does not format properly. Keep it to plain normal text only.

FORM TITLE: %s
FORM DESCRIPTION: %s

FEEDBACK (Q&A):
%s`

type ISummaryService interface {
	// GenerateSummary is ownership-checked, calls the provider synchronously,
	// appends the summary row, and best-effort emails it to the owner. The
	// returned flash describes the outcome for the next page render.
	GenerateSummary(ctx context.Context, formId, ownerId uuid.UUID, ownerEmail string) (flash string, err error)
	GetLatestSummary(ctx context.Context, formId uuid.UUID) (*entity.AISummary, error)
	GetResults(ctx context.Context, formId, ownerId uuid.UUID) (*dto.ResultsDTO, error)
}

type summaryService struct {
	uowFactory   unitofwork.RepositoryFactory
	provider     llm.LLMProvider // nil when misconfigured
	providerErr  error           // surfaced to the owner as a server error
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	providerErr error,
	emailService mailer.IEmailService,
	log logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:   uowFactory,
		provider:     provider,
		providerErr:  providerErr,
		emailService: emailService,
		log:          log,
	}
}

// BuildSummaryPrompt assembles the fixed-structure prompt from the form and
// its answer rows (ordered by question position, then recency).
func BuildSummaryPrompt(form *entity.Form, rows []*entity.AnswerRow) string {
	qaLines := make([]string, 0, len(rows))
	for _, r := range rows {
		qaLines = append(qaLines, fmt.Sprintf("Q%d: %s\n- %s", r.Position, r.QuestionText, r.AnswerText))
	}
	qaText := noAnswersPlaceholder
	if len(qaLines) > 0 {
		qaText = strings.Join(qaLines, "\n\n")
	}

	return fmt.Sprintf(promptTemplate, form.Title, form.Description, qaText)
}

func (s *summaryService) getOwned(ctx context.Context, formId, ownerId uuid.UUID) (*entity.Form, error) {
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

func (s *summaryService) GenerateSummary(ctx context.Context, formId, ownerId uuid.UUID, ownerEmail string) (string, error) {
	form, err := s.getOwned(ctx, formId, ownerId)
	if err != nil {
		return "", err
	}

	if s.provider == nil {
		return "", s.providerErr
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.AnswerRepository().FindRowsByFormId(ctx, formId,
		specification.OrderBy{Field: "questions.position"},
		specification.OrderBy{Field: "answers.created_at", Desc: true},
	)
	if err != nil {
		return "", err
	}

	prompt := BuildSummaryPrompt(form, rows)

	summaryText, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}

	summary := &entity.AISummary{
		Id:          uuid.New(),
		FormId:      formId,
		SummaryText: summaryText,
		CreatedAt:   time.Now(),
	}
	if err := uow.AISummaryRepository().Create(ctx, summary); err != nil {
		return "", err
	}

	// Email is best-effort and never rolls back the stored summary.
	if ownerEmail == "" {
		return "AI summary generated.", nil
	}
	if mailErr := s.emailService.SendSummary(ownerEmail, form.Title, form.Description, summaryText); mailErr != nil {
		s.log.Warn("summary", "summary email failed", map[string]interface{}{
			"form_id": formId.String(),
			"error":   mailErr.Error(),
		})
		return "AI summary generated, but email failed to send.", nil
	}

	return "AI summary generated and emailed to you.", nil
}

func (s *summaryService) GetLatestSummary(ctx context.Context, formId uuid.UUID) (*entity.AISummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AISummaryRepository().FindOne(ctx,
		specification.ByFormID{FormID: formId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 1},
	)
}

func (s *summaryService) GetResults(ctx context.Context, formId, ownerId uuid.UUID) (*dto.ResultsDTO, error) {
	form, err := s.getOwned(ctx, formId, ownerId)
	if err != nil {
		return nil, err
	}

	// The results page shows newest feedback first.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.AnswerRepository().FindRowsByFormId(ctx, formId,
		specification.OrderBy{Field: "answers.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	results := &dto.ResultsDTO{
		Form: form,
		Rows: rows,
	}

	latest, err := s.GetLatestSummary(ctx, formId)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		results.Summary = latest.SummaryText
	}

	return results, nil
}
