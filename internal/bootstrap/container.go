package bootstrap

import (
	"feedback-forms-be/internal/config"
	"feedback-forms-be/internal/controller"
	"feedback-forms-be/internal/pkg/logger"
	"feedback-forms-be/internal/pkg/mailer"
	"feedback-forms-be/internal/pkg/serverutils"
	"feedback-forms-be/internal/repository/memory"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/internal/service"
	"feedback-forms-be/pkg/llm"
	"feedback-forms-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController
	FormController      controller.IFormController
	PublicController    controller.IPublicController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. LLM Provider. A missing credential is not fatal at start-up; the
	// summary route surfaces it as a server error instead.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg),
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		sysLogger.Warn("bootstrap", "LLM provider unavailable", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
	} else {
		llmProvider = provider
		sysLogger.Info("bootstrap", "LLM provider ready", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	// 3. Sessions
	sessionRepo := memory.NewSessionRepository()
	sessionManager := serverutils.NewSessionManager(sessionRepo, cfg.Session.Secret)

	// 4. Services
	authService := service.NewAuthService(uowFactory)
	formService := service.NewFormService(uowFactory)
	responseService := service.NewResponseService(uowFactory)
	summaryService := service.NewSummaryService(uowFactory, llmProvider, err, emailService, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService, sessionManager),
		DashboardController: controller.NewDashboardController(formService, sessionManager),
		FormController:      controller.NewFormController(formService, summaryService, sessionManager),
		PublicController:    controller.NewPublicController(responseService),

		Logger: sysLogger,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
