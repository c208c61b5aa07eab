package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/delivery/http/controllers"
	"pilates-vision-service/internal/app/delivery/http/middlewares"
	"pilates-vision-service/internal/app/delivery/http/routers"
	"pilates-vision-service/internal/app/drivers/database"
	"pilates-vision-service/internal/app/drivers/logger"
	"pilates-vision-service/internal/app/drivers/messaging"
	"pilates-vision-service/internal/app/drivers/storage"
	"pilates-vision-service/internal/app/services/core/analysis"
	"pilates-vision-service/internal/app/services/core/appointments"
	"pilates-vision-service/internal/app/services/core/assessments"
	"pilates-vision-service/internal/app/services/core/instructors"
	"pilates-vision-service/internal/app/services/core/students"
	"pilates-vision-service/internal/app/services/core/workout_plans"
	"pilates-vision-service/internal/app/services/shared/events"
	"pilates-vision-service/internal/app/services/shared/locker"
	"pilates-vision-service/internal/app/services/shared/planner"
	"pilates-vision-service/internal/app/services/shared/posture"
	"pilates-vision-service/internal/app/services/shared/redis"
	minioStorage "pilates-vision-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLog, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLog.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoClient, err := database.NewMongoDB(driverConfig.MongoDB, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	redisClient, err := database.NewRedisClient(driverConfig.Redis, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to connect to redis", zap.Error(err))
	}
	minioClient, err := storage.NewMinio(driverConfig.Minio, internalConfig.Minio.BucketName, zapLog)
	if err != nil {
		zapLog.Fatal("Failed to initialize minio", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoClient,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig.RabbitMQ, zapLog)
		if err != nil {
			zapLog.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
		}
	} else {
		zapLog.Info("RabbitMQ disabled, appointment events are only logged")
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLog.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLog.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Studio API stopped")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	timeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Shared services
	cacheRepository := redis.NewCacheRepository(bootstrap.Redis)
	bookingLocker := locker.NewBookingLocker(cacheRepository, bootstrap.InternalConfig.Appointment.LockTTL, log)
	imageStore := minioStorage.NewPostureImageStore(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName, log)
	postureAnalyzer := posture.NewPostureAnalyzer(
		bootstrap.InternalConfig.Analyzer.BaseUrl,
		bootstrap.InternalConfig.Analyzer.Timeout,
		log,
	)
	workoutPlanner := planner.NewWorkoutPlanner(
		bootstrap.InternalConfig.Planner.BaseUrl,
		bootstrap.InternalConfig.Planner.Timeout,
		log,
	)

	var eventPublisher contracts.AppointmentEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewAppointmentEventPublisher(
			bootstrap.RabbitMQ,
			bootstrap.InternalConfig.RabbitMQ.AppointmentEventQueue,
			log,
		)
		if err != nil {
			log.Fatal("Failed to declare appointment event queue", zap.Error(err))
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopAppointmentEventPublisher(log)
	}

	// Repositories
	studentRepository := students.NewStudentMongoRepository(bootstrap.MongoDB, dbName)
	instructorRepository := instructors.NewInstructorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	assessmentRepository := assessments.NewAssessmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	studentUsecase := students.NewStudentUsecase(studentRepository, appointmentRepository, assessmentRepository, log)
	instructorUsecase := instructors.NewInstructorUsecase(
		instructorRepository,
		appointmentRepository,
		cacheRepository,
		bootstrap.InternalConfig.Cache.InstructorListTTL,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		studentRepository,
		instructorRepository,
		bookingLocker,
		eventPublisher,
		log,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentRepository, studentRepository, log)
	analysisUsecase := analysis.NewAnalysisUsecase(
		studentRepository,
		assessmentRepository,
		imageStore,
		postureAnalyzer,
		log,
	)
	workoutPlanUsecase := workout_plans.NewWorkoutPlanUsecase(studentRepository, workoutPlanner, log)

	// Controllers
	handlers := &routers.Controllers{
		Student:     controllers.NewStudentController(log, studentUsecase, timeout),
		Instructor:  controllers.NewInstructorController(log, instructorUsecase, timeout),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase, timeout),
		Assessment:  controllers.NewAssessmentController(log, assessmentUsecase, timeout),
		Analysis:    controllers.NewAnalysisController(log, analysisUsecase, workoutPlanUsecase, timeout),
		Health:      controllers.NewHealthController(),
	}

	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, handlers)
}
