package controller

import (
	"errors"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/pkg/serverutils"
	"feedback-forms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	ShowRegister(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	ShowLogin(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	sessions *serverutils.SessionManager
}

func NewAuthController(service service.IAuthService, sessions *serverutils.SessionManager) IAuthController {
	return &authController{
		service:  service,
		sessions: sessions,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/register", c.ShowRegister)
	r.Post("/register", c.Register)
	r.Get("/login", c.ShowLogin)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) ShowRegister(ctx *fiber.Ctx) error {
	return ctx.Render("register", fiber.Map{})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if _, err := c.service.Register(ctx.Context(), &req); err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return ctx.Render("register", fiber.Map{"Error": ve.Message})
		}
		if errors.Is(err, service.ErrEmailTaken) {
			return ctx.Render("register", fiber.Map{"Error": "Email already registered."})
		}
		return err
	}

	return ctx.Redirect("/login", fiber.StatusSeeOther)
}

func (c *authController) ShowLogin(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	user, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Render("login", fiber.Map{"Error": "Invalid email or password."})
		}
		return err
	}

	c.sessions.Issue(ctx, user.Id, user.Email)
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.sessions.Destroy(ctx)
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
