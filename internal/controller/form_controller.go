package controller

import (
	"errors"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/pkg/serverutils"
	"feedback-forms-be/internal/service"
	"feedback-forms-be/pkg/llm/factory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFormController interface {
	RegisterRoutes(r fiber.Router)
	ShowCreateForm(ctx *fiber.Ctx) error
	CreateForm(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
	GenerateSummary(ctx *fiber.Ctx) error
	DeleteForm(ctx *fiber.Ctx) error
}

type formController struct {
	forms     service.IFormService
	summaries service.ISummaryService
	sessions  *serverutils.SessionManager
}

func NewFormController(
	forms service.IFormService,
	summaries service.ISummaryService,
	sessions *serverutils.SessionManager,
) IFormController {
	return &formController{
		forms:     forms,
		summaries: summaries,
		sessions:  sessions,
	}
}

func (c *formController) RegisterRoutes(r fiber.Router) {
	// /forms/new must be registered before the public /forms/:token route.
	r.Get("/forms/new", c.sessions.RequireSession, c.ShowCreateForm)
	r.Post("/forms/new", c.sessions.RequireSession, c.CreateForm)

	dash := r.Group("/dashboard/forms", c.sessions.RequireSession)
	dash.Get("/:id/results", c.Results)
	dash.Post("/:id/summary", c.GenerateSummary)
	dash.Post("/:id/delete", c.DeleteForm)
}

func (c *formController) ShowCreateForm(ctx *fiber.Ctx) error {
	return ctx.Render("create_form", fiber.Map{})
}

func (c *formController) CreateForm(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromLocals(ctx)

	var req dto.CreateFormRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if _, err := c.forms.CreateForm(ctx.Context(), session.UserID, &req); err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return ctx.Render("create_form", fiber.Map{"Error": ve.Message})
		}
		return err
	}

	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

func parseFormId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, service.ErrNotFound
	}
	return id, nil
}

func (c *formController) Results(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromLocals(ctx)

	formId, err := parseFormId(ctx)
	if err != nil {
		return notFound(ctx)
	}

	results, err := c.summaries.GetResults(ctx.Context(), formId, session.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(ctx)
		}
		return err
	}

	return ctx.Render("form_results", fiber.Map{
		"Form":    results.Form,
		"Rows":    results.Rows,
		"Summary": results.Summary,
		"Flash":   c.sessions.PopFlash(session),
	})
}

func (c *formController) GenerateSummary(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromLocals(ctx)

	formId, err := parseFormId(ctx)
	if err != nil {
		return notFound(ctx)
	}

	flash, err := c.summaries.GenerateSummary(ctx.Context(), formId, session.UserID, session.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(ctx)
		}
		var missing *factory.ErrMissingCredential
		if errors.As(err, &missing) {
			return fiber.NewError(fiber.StatusInternalServerError, missing.Error())
		}
		return err
	}

	c.sessions.SetFlash(session, flash)
	return ctx.Redirect("/dashboard/forms/"+formId.String()+"/results", fiber.StatusSeeOther)
}

func (c *formController) DeleteForm(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromLocals(ctx)

	formId, err := parseFormId(ctx)
	if err != nil {
		return notFound(ctx)
	}

	if err := c.forms.DeleteForm(ctx.Context(), formId, session.UserID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(ctx)
		}
		return err
	}

	c.sessions.SetFlash(session, "Form deleted.")
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

func notFound(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).SendString("Not found")
}
