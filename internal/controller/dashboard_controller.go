package controller

import (
	"feedback-forms-be/internal/pkg/serverutils"
	"feedback-forms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	forms    service.IFormService
	sessions *serverutils.SessionManager
}

func NewDashboardController(forms service.IFormService, sessions *serverutils.SessionManager) IDashboardController {
	return &dashboardController{
		forms:    forms,
		sessions: sessions,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/dashboard", c.sessions.RequireSession, c.Dashboard)
}

func (c *dashboardController) Home(ctx *fiber.Ctx) error {
	return ctx.Render("home", fiber.Map{})
}

func (c *dashboardController) Dashboard(ctx *fiber.Ctx) error {
	session := serverutils.SessionFromLocals(ctx)

	forms, err := c.forms.ListForms(ctx.Context(), session.UserID)
	if err != nil {
		return err
	}

	return ctx.Render("dashboard", fiber.Map{
		"Email": session.Email,
		"Forms": forms,
		"Flash": c.sessions.PopFlash(session),
	})
}
