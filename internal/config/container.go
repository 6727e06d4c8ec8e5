package config

import (
	"learning-resources/internal/domain"
	"learning-resources/internal/repository"
	"learning-resources/internal/service"
	"learning-resources/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config domain.Config
	Logger domain.Logger

	StorageClient   domain.StorageClient
	FileInfoClient  domain.FileInfoClient
	AnalyticsClient domain.AnalyticsClient

	Validator *service.FileValidator
	Downloads *service.DownloadResolver
	Viewer    *service.ViewerDispatcher
	Analytics *service.AnalyticsNotifier
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	storageClient := repository.NewStorageClient(cfg, appLogger)
	fileInfoClient := repository.NewFileInfoClient(cfg, appLogger)
	analyticsClient := repository.NewAnalyticsClient(cfg, appLogger)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		StorageClient:   storageClient,
		FileInfoClient:  fileInfoClient,
		AnalyticsClient: analyticsClient,
		Validator:       service.NewFileValidator(cfg),
		Downloads:       service.NewDownloadResolver(fileInfoClient, appLogger),
		Viewer:          service.NewViewerDispatcher(appLogger),
		Analytics:       service.NewAnalyticsNotifier(analyticsClient, appLogger),
	}
}

// NewUploadCoordinator builds a fresh coordinator; sessions are single-use
// and not shared between callers.
func (c *Container) NewUploadCoordinator() *service.UploadCoordinator {
	return service.NewUploadCoordinator(c.StorageClient, c.Validator, c.Logger)
}
