package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"feedback-forms-be/internal/controller"
	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/model"
	"feedback-forms-be/internal/pkg/serverutils"
	"feedback-forms-be/internal/repository/memory"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/internal/service"
	"feedback-forms-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) Send(toEmail, subject, body string) error { return nil }
func (nopMailer) SendSummary(toEmail, formTitle, description, summaryText string) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type ownerFixture struct {
	app       *fiber.App
	factory   unitofwork.RepositoryFactory
	forms     service.IFormService
	responses service.IResponseService
	ownerId   uuid.UUID
}

func newOwnerFixture(t *testing.T) *ownerFixture {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	factory := unitofwork.NewRepositoryFactory(db)

	formService := service.NewFormService(factory)
	responseService := service.NewResponseService(factory)
	summaryService := service.NewSummaryService(factory, nil, errors.New("no provider"), nopMailer{}, nopLogger{})

	sessions := serverutils.NewSessionManager(memory.NewSessionRepository(), "test-secret")
	ownerId := uuid.New()

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
	app.Post("/test-login", func(ctx *fiber.Ctx) error {
		sessions.Issue(ctx, ownerId, "owner@example.com")
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	controller.NewFormController(formService, summaryService, sessions).RegisterRoutes(app)
	controller.NewPublicController(responseService).RegisterRoutes(app)

	return &ownerFixture{
		app:       app,
		factory:   factory,
		forms:     formService,
		responses: responseService,
		ownerId:   ownerId,
	}
}

func (f *ownerFixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(http.MethodPost, "/test-login", nil))
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func postForm(target string, body url.Values, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestCreateFormOverHTTP(t *testing.T) {
	f := newOwnerFixture(t)
	cookie := f.login(t)

	// The create page posts repeated questions[] inputs.
	body := url.Values{}
	body.Set("title", "Sprint Retro")
	body.Set("description", "Q3 retro")
	body.Add("questions[]", "What went well?")
	body.Add("questions[]", "   ")
	body.Add("questions[]", "What should change?")

	resp, err := f.app.Test(postForm("/forms/new", body, cookie))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	ctx := context.Background()
	forms, err := f.forms.ListForms(ctx, f.ownerId)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Sprint Retro", forms[0].Title)

	public, err := f.responses.GetPublicForm(ctx, forms[0].PublicToken)
	require.NoError(t, err)
	require.Len(t, public.Questions, 2, "repeated questions[] fields bind, blanks dropped")
	assert.Equal(t, "What went well?", public.Questions[0].QuestionText)
	assert.Equal(t, "What should change?", public.Questions[1].QuestionText)
}

func TestCreateFormOverHTTPValidation(t *testing.T) {
	f := newOwnerFixture(t)
	cookie := f.login(t)

	body := url.Values{}
	body.Set("title", "No questions")

	resp, err := f.app.Test(postForm("/forms/new", body, cookie))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "validation errors render inline")

	forms, err := f.forms.ListForms(context.Background(), f.ownerId)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestCreateFormRequiresSession(t *testing.T) {
	f := newOwnerFixture(t)

	body := url.Values{}
	body.Set("title", "Anonymous attempt")
	body.Add("questions[]", "Q?")

	resp, err := f.app.Test(postForm("/forms/new", body, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestPublicSubmitOverHTTP(t *testing.T) {
	f := newOwnerFixture(t)
	ctx := context.Background()

	form, err := f.forms.CreateForm(ctx, f.ownerId, &dto.CreateFormRequest{
		Title:     "Check-in",
		Questions: []string{"How are you?"},
	})
	require.NoError(t, err)

	public, err := f.responses.GetPublicForm(ctx, form.PublicToken)
	require.NoError(t, err)

	body := url.Values{}
	body.Set("q_"+public.Questions[0].Id.String(), "Doing fine")

	resp, err := f.app.Test(postForm("/forms/"+form.PublicToken, body, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "thank-you page, no session needed")

	uow := f.factory.NewUnitOfWork(ctx)
	rows, err := uow.AnswerRepository().FindRowsByFormId(ctx, form.Id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Doing fine", rows[0].AnswerText)
}
