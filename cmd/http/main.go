package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/delivery/http/controllers"
	"provider-leads-service/internal/app/delivery/http/middlewares"
	"provider-leads-service/internal/app/delivery/http/routers"
	"provider-leads-service/internal/app/delivery/http/views"
	"provider-leads-service/internal/app/drivers/database"
	"provider-leads-service/internal/app/drivers/logger"
	"provider-leads-service/internal/app/drivers/messaging"
	"provider-leads-service/internal/app/drivers/storage"
	"provider-leads-service/internal/app/services/core/exports"
	"provider-leads-service/internal/app/services/core/lists"
	"provider-leads-service/internal/app/services/core/providers"
	"provider-leads-service/internal/app/services/core/selection"
	"provider-leads-service/internal/app/services/core/workspace"
	"provider-leads-service/internal/app/services/leadsapi"
	"provider-leads-service/internal/app/services/shared/events"
	"provider-leads-service/internal/app/services/shared/locker"
	"provider-leads-service/internal/app/services/shared/redis"
	sharedStorage "provider-leads-service/internal/app/services/shared/storage"
	"provider-leads-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Workspace.Store == constvars.WorkspaceStoreRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.Export.ArchiveEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Export.BucketName)
	}
	if internalConfig.Events.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Workspace
	workspaceTTL := time.Duration(internalConfig.Workspace.TTLInHours) * time.Hour
	var workspaceRepository contracts.WorkspaceRepository
	var lockService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		workspaceRepository = workspace.NewWorkspaceRedisRepository(redisRepository, workspaceTTL)
		lockService = locker.NewLockService(redisRepository, log)
	} else {
		workspaceRepository = workspace.NewWorkspaceMemoryRepository(workspaceTTL)
		lockService = locker.NewLocalLockService()
	}
	workspaceService := workspace.NewWorkspaceService(
		workspaceRepository,
		lockService,
		log,
		time.Duration(internalConfig.Workspace.LockTimeoutInSeconds)*time.Second,
		time.Duration(internalConfig.Workspace.LockExpiryInSeconds)*time.Second,
	)

	// Events
	publisher := events.NewLogPublisher(log)
	if bootstrap.RabbitMQ != nil {
		rabbitMQPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Events.Queue, log)
		if err != nil {
			return err
		}
		publisher = rabbitMQPublisher
	}
	recorder := events.NewRecorder(publisher, log)

	// Export archive
	var archiveStorage contracts.Storage
	if bootstrap.Minio != nil {
		archiveStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Leads API
	leadsAPI := leadsapi.NewLeadsAPIClient(
		internalConfig.LeadsAPI.BaseUrl,
		time.Duration(internalConfig.LeadsAPI.TimeoutInSeconds)*time.Second,
		log,
	)

	// Usecases
	providerUsecase := providers.NewProviderUsecase(leadsAPI, workspaceService, recorder, internalConfig, log)
	selectionUsecase := selection.NewSelectionUsecase(workspaceService, log)
	listUsecase := lists.NewListUsecase(leadsAPI, workspaceService, recorder, log)
	exportUsecase := exports.NewExportUsecase(leadsAPI, workspaceService, archiveStorage, recorder, internalConfig, log)

	// Pages
	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	middleware := middlewares.NewMiddlewares(log, internalConfig)
	routers.SetupRoutes(bootstrap.Router, log, internalConfig, middleware, &routers.Controllers{
		Page:      controllers.NewPageController(log, renderer, workspaceService, providerUsecase, selectionUsecase, listUsecase, exportUsecase, internalConfig),
		Provider:  controllers.NewProviderController(log, providerUsecase, workspaceService, internalConfig),
		Selection: controllers.NewSelectionController(log, selectionUsecase, internalConfig),
		List:      controllers.NewListController(log, listUsecase, internalConfig),
		Export:    controllers.NewExportController(log, exportUsecase, internalConfig),
	})
	return nil
}
