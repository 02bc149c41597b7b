package main

import (
	"context"
	"log"
	"medbook-service/internal/app/config"
	"medbook-service/internal/app/delivery/http/controllers"
	"medbook-service/internal/app/delivery/http/middlewares"
	"medbook-service/internal/app/delivery/http/routers"
	"medbook-service/internal/app/drivers/database"
	"medbook-service/internal/app/drivers/logger"
	"medbook-service/internal/app/drivers/messaging"
	"medbook-service/internal/app/drivers/storage"
	"medbook-service/internal/app/services/core/appointments"
	"medbook-service/internal/app/services/core/auth"
	"medbook-service/internal/app/services/core/catalog"
	"medbook-service/internal/app/services/core/patient_profiles"
	"medbook-service/internal/app/services/core/session"
	"medbook-service/internal/app/services/core/users"
	"medbook-service/internal/app/services/shared/locker"
	"medbook-service/internal/app/services/shared/metrics"
	"medbook-service/internal/app/services/shared/notification"
	"medbook-service/internal/app/services/shared/ratelimiter"
	"medbook-service/internal/app/services/shared/redis"
	minioStorage "medbook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	metricsCollector := metrics.NewCollector(bootstrap.InternalConfig.Metrics.Namespace)

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	notificationPublisher, err := notification.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	patientProfileRepository := patient_profiles.NewPatientProfilePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	catalogRepository := catalog.NewCatalogPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// User
	userUsecase := users.NewUserUsecase(userRepository, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	// Patient profile
	patientProfileUsecase := patient_profiles.NewPatientProfileUsecase(patientProfileRepository, appointmentRepository, bootstrap.Logger)
	patientProfileController := controllers.NewPatientProfileController(bootstrap.Logger, patientProfileUsecase, bootstrap.InternalConfig)

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(catalogRepository, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		catalogRepository,
		patientProfileRepository,
		lockService,
		resourceLimiter,
		notificationPublisher,
		metricsCollector,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, metricsCollector, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		metricsCollector,
		authController,
		userController,
		patientProfileController,
		appointmentController,
		catalogController,
	)
	return nil
}
