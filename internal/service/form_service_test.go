package service_test

import (
	"context"
	"testing"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormPositions(t *testing.T) {
	factory := newTestFactory(t)
	svc := service.NewFormService(factory)
	responses := service.NewResponseService(factory)
	ctx := context.Background()
	owner := uuid.New()

	form, err := svc.CreateForm(ctx, owner, &dto.CreateFormRequest{
		Title:     "Onboarding feedback",
		Questions: []string{"First?", "  ", "Second?", "", "Third?"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, form.PublicToken)
	assert.Len(t, form.PublicToken, 8)

	public, err := responses.GetPublicForm(ctx, form.PublicToken)
	require.NoError(t, err)
	require.Len(t, public.Questions, 3, "blank questions are dropped")
	for i, q := range public.Questions {
		assert.Equal(t, i+1, q.Position, "positions are 1..N in submission order")
	}
	assert.Equal(t, "First?", public.Questions[0].QuestionText)
	assert.Equal(t, "Second?", public.Questions[1].QuestionText)
	assert.Equal(t, "Third?", public.Questions[2].QuestionText)
}

func TestCreateFormValidation(t *testing.T) {
	svc := service.NewFormService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.CreateForm(ctx, owner, &dto.CreateFormRequest{Title: "  ", Questions: []string{"Q?"}})
	_, ok := service.AsValidationError(err)
	assert.True(t, ok, "blank title rejected")

	_, err = svc.CreateForm(ctx, owner, &dto.CreateFormRequest{Title: "T", Questions: []string{"", "   "}})
	_, ok = service.AsValidationError(err)
	assert.True(t, ok, "all-blank questions rejected")
}

func TestGetByPublicToken(t *testing.T) {
	svc := service.NewFormService(newTestFactory(t))
	ctx := context.Background()

	form, err := svc.CreateForm(ctx, uuid.New(), &dto.CreateFormRequest{
		Title:     "Check-in",
		Questions: []string{"How are you?"},
	})
	require.NoError(t, err)

	found, err := svc.GetByPublicToken(ctx, form.PublicToken)
	require.NoError(t, err)
	assert.Equal(t, form.Id, found.Id)

	_, err = svc.GetByPublicToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetOwnedRejectsOtherOwner(t *testing.T) {
	svc := service.NewFormService(newTestFactory(t))
	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()

	form, err := svc.CreateForm(ctx, ownerA, &dto.CreateFormRequest{
		Title:     "Private",
		Questions: []string{"Q?"},
	})
	require.NoError(t, err)

	_, err = svc.GetOwned(ctx, form.Id, ownerB)
	assert.ErrorIs(t, err, service.ErrNotFound, "wrong owner sees NotFound")

	// The public path still works for the same form.
	_, err = svc.GetByPublicToken(ctx, form.PublicToken)
	assert.NoError(t, err)

	owned, err := svc.GetOwned(ctx, form.Id, ownerA)
	require.NoError(t, err)
	assert.Equal(t, form.Id, owned.Id)
}

func TestListFormsNewestFirst(t *testing.T) {
	svc := service.NewFormService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreateForm(ctx, owner, &dto.CreateFormRequest{Title: title, Questions: []string{"Q?"}})
		require.NoError(t, err)
	}

	forms, err := svc.ListForms(ctx, owner)
	require.NoError(t, err)
	require.Len(t, forms, 3)
	assert.Equal(t, "third", forms[0].Title)
	assert.Equal(t, "first", forms[2].Title)
}

func TestDeleteFormCascades(t *testing.T) {
	factory := newTestFactory(t)
	svc := service.NewFormService(factory)
	responses := service.NewResponseService(factory)
	ctx := context.Background()
	owner := uuid.New()

	form, err := svc.CreateForm(ctx, owner, &dto.CreateFormRequest{
		Title:     "Doomed",
		Questions: []string{"Q1?", "Q2?"},
	})
	require.NoError(t, err)

	public, err := responses.GetPublicForm(ctx, form.PublicToken)
	require.NoError(t, err)
	_, err = responses.SubmitAnswers(ctx, form.PublicToken, map[uuid.UUID]string{
		public.Questions[0].Id: "an answer",
	})
	require.NoError(t, err)

	// Wrong owner cannot delete.
	err = svc.DeleteForm(ctx, form.Id, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, svc.DeleteForm(ctx, form.Id, owner))

	assertNoOrphans(t, factory, form.Id)
	_, err = svc.GetByPublicToken(ctx, form.PublicToken)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func assertNoOrphans(t *testing.T, factory unitofwork.RepositoryFactory, formId uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().Count(ctx, byFormId(formId))
	require.NoError(t, err)
	answers, err := uow.AnswerRepository().Count(ctx, byFormId(formId))
	require.NoError(t, err)
	summaries, err := uow.AISummaryRepository().Count(ctx, byFormId(formId))
	require.NoError(t, err)

	assert.Zero(t, questions)
	assert.Zero(t, answers)
	assert.Zero(t, summaries)
}
