package bootstrap

import (
	"notebook-be/internal/config"
	"notebook-be/internal/controller"
	"notebook-be/internal/pkg/logger"
	"notebook-be/internal/pkg/mailer"
	"notebook-be/internal/repository/implementation"
	"notebook-be/internal/repository/memory"
	"notebook-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	NotebookController controller.INotebookController
	ErrorController    controller.IErrorController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.ErrorRecipient,
	)

	notebookRepository := implementation.NewNotebookRepository(db)
	sectionCache := memory.NewSectionCache()

	notebookService := service.NewNotebookService(notebookRepository, sectionCache)

	return &Container{
		NotebookController: controller.NewNotebookController(notebookService),
		ErrorController:    controller.NewErrorController(emailService, sysLogger),
		Logger:             sysLogger,
	}
}
