package controller

import (
	"errors"
	"strings"

	"feedback-forms-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PublicController serves the anonymous respondent surface; nothing here is
// session-gated.
type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	ShowForm(ctx *fiber.Ctx) error
	SubmitAnswers(ctx *fiber.Ctx) error
}

type publicController struct {
	responses service.IResponseService
}

func NewPublicController(responses service.IResponseService) IPublicController {
	return &publicController{
		responses: responses,
	}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	r.Get("/forms/:token", c.ShowForm)
	r.Post("/forms/:token", c.SubmitAnswers)
}

func (c *publicController) ShowForm(ctx *fiber.Ctx) error {
	public, err := c.responses.GetPublicForm(ctx.Context(), ctx.Params("token"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(ctx)
		}
		return err
	}

	return ctx.Render("form", fiber.Map{
		"Form":      public.Form,
		"Questions": public.Questions,
	})
}

func (c *publicController) SubmitAnswers(ctx *fiber.Ctx) error {
	// Answer inputs are dynamic, one q_<question-id> field per question.
	answers := make(map[uuid.UUID]string)
	ctx.Request().PostArgs().VisitAll(func(key, value []byte) {
		name := string(key)
		if !strings.HasPrefix(name, "q_") {
			return
		}
		questionId, err := uuid.Parse(strings.TrimPrefix(name, "q_"))
		if err != nil {
			return
		}
		answers[questionId] = string(value)
	})

	form, err := c.responses.SubmitAnswers(ctx.Context(), ctx.Params("token"), answers)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(ctx)
		}
		return err
	}

	return ctx.Render("thank_you", fiber.Map{"Form": form})
}
