package service_test

import (
	"context"
	"testing"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswersSkipsBlanks(t *testing.T) {
	factory := newTestFactory(t)
	forms := service.NewFormService(factory)
	responses := service.NewResponseService(factory)
	ctx := context.Background()

	form, err := forms.CreateForm(ctx, uuid.New(), &dto.CreateFormRequest{
		Title:     "Sprint Retro",
		Questions: []string{"What went well?", "What should change?", "Anything else?"},
	})
	require.NoError(t, err)

	public, err := responses.GetPublicForm(ctx, form.PublicToken)
	require.NoError(t, err)
	require.Len(t, public.Questions, 3)

	_, err = responses.SubmitAnswers(ctx, form.PublicToken, map[uuid.UUID]string{
		public.Questions[0].Id: "Shipping cadence",
		public.Questions[1].Id: "   ",
		public.Questions[2].Id: "",
	})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.AnswerRepository().Count(ctx, byFormId(form.Id))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "only non-blank answers are stored")

	rows, err := uow.AnswerRepository().FindRowsByFormId(ctx, form.Id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, "What went well?", rows[0].QuestionText)
	assert.Equal(t, "Shipping cadence", rows[0].AnswerText)
}

func TestSubmitAnswersAllBlankIsSuccess(t *testing.T) {
	factory := newTestFactory(t)
	forms := service.NewFormService(factory)
	responses := service.NewResponseService(factory)
	ctx := context.Background()

	form, err := forms.CreateForm(ctx, uuid.New(), &dto.CreateFormRequest{
		Title:     "Optional feedback",
		Questions: []string{"Q?"},
	})
	require.NoError(t, err)

	submitted, err := responses.SubmitAnswers(ctx, form.PublicToken, map[uuid.UUID]string{})
	require.NoError(t, err, "an empty submission is still a thank-you")
	assert.Equal(t, form.Id, submitted.Id)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.AnswerRepository().Count(ctx, byFormId(form.Id))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmitAnswersUnknownToken(t *testing.T) {
	responses := service.NewResponseService(newTestFactory(t))

	_, err := responses.SubmitAnswers(context.Background(), "missing1", map[uuid.UUID]string{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmitAnswersIgnoresForeignQuestionIds(t *testing.T) {
	factory := newTestFactory(t)
	forms := service.NewFormService(factory)
	responses := service.NewResponseService(factory)
	ctx := context.Background()

	form, err := forms.CreateForm(ctx, uuid.New(), &dto.CreateFormRequest{
		Title:     "Strict",
		Questions: []string{"Only question?"},
	})
	require.NoError(t, err)

	// An id that does not belong to the form is simply not persisted.
	_, err = responses.SubmitAnswers(ctx, form.PublicToken, map[uuid.UUID]string{
		uuid.New(): "smuggled answer",
	})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.AnswerRepository().Count(ctx, byFormId(form.Id))
	require.NoError(t, err)
	assert.Zero(t, count)
}
