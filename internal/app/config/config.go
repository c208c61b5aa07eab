package config

import (
	"pilates-vision-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	var cfg DriverConfig

	cfg.MongoDB.Host = utils.GetEnvString("MONGODB_HOST", "localhost")
	cfg.MongoDB.Port = utils.GetEnvString("MONGODB_PORT", "27017")
	cfg.MongoDB.Username = utils.GetEnvString("MONGODB_USERNAME", "")
	cfg.MongoDB.Password = utils.GetEnvString("MONGODB_PASSWORD", "")
	cfg.MongoDB.DbName = utils.GetEnvString("MONGODB_DB_NAME", "pilates_vision")
	cfg.MongoDB.ConnectTimeout = utils.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second)

	cfg.Redis.Host = utils.GetEnvString("REDIS_HOST", "localhost")
	cfg.Redis.Port = utils.GetEnvString("REDIS_PORT", "6379")
	cfg.Redis.Password = utils.GetEnvString("REDIS_PASSWORD", "")
	cfg.Redis.DB = utils.GetEnvInt("REDIS_DB", 0)

	cfg.Logger.Level = utils.GetEnvString("LOGGER_LEVEL", "debug")
	cfg.Logger.OutputFileName = utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "pilates-vision.log")
	cfg.Logger.OutputErrorFileName = utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "pilates-vision-error.log")

	cfg.RabbitMQ.Enabled = utils.GetEnvBool("RABBITMQ_ENABLED", true)
	cfg.RabbitMQ.Host = utils.GetEnvString("RABBITMQ_HOST", "localhost")
	cfg.RabbitMQ.Port = utils.GetEnvString("RABBITMQ_PORT", "5672")
	cfg.RabbitMQ.Username = utils.GetEnvString("RABBITMQ_USERNAME", "guest")
	cfg.RabbitMQ.Password = utils.GetEnvString("RABBITMQ_PASSWORD", "guest")
	cfg.RabbitMQ.VHost = utils.GetEnvString("RABBITMQ_VHOST", "")

	cfg.Minio.Host = utils.GetEnvString("MINIO_HOST", "localhost")
	cfg.Minio.Port = utils.GetEnvString("MINIO_PORT", "9000")
	cfg.Minio.AccessKey = utils.GetEnvString("MINIO_ACCESS_KEY", "minioadmin")
	cfg.Minio.SecretKey = utils.GetEnvString("MINIO_SECRET_KEY", "minioadmin")
	cfg.Minio.UseSSL = utils.GetEnvBool("MINIO_USE_SSL", false)

	return &cfg
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			AnalysisRequestsPerMinute:  utils.GetEnvInt("APP_ANALYSIS_REQUESTS_PER_MINUTE", 6),
			AnalysisBurst:              utils.GetEnvInt("APP_ANALYSIS_BURST", 2),
		},
		Analyzer: AppRemoteService{
			BaseUrl: utils.GetEnvString("ANALYZER_BASE_URL", ""),
			Timeout: utils.GetEnvDuration("ANALYZER_TIMEOUT", 120*time.Second),
		},
		Planner: AppRemoteService{
			BaseUrl: utils.GetEnvString("PLANNER_BASE_URL", ""),
			Timeout: utils.GetEnvDuration("PLANNER_TIMEOUT", 120*time.Second),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "posture-images"),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentEventQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_EVENT_QUEUE", "appointment_events"),
		},
		Appointment: AppAppointment{
			LockTTL: utils.GetEnvDuration("APP_APPOINTMENT_LOCK_TTL", 10*time.Second),
		},
		Cache: AppCache{
			InstructorListTTL: utils.GetEnvDuration("APP_INSTRUCTOR_CACHE_TTL", 5*time.Minute),
		},
	}
}

func NewConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		Env:             utils.GetEnvString("APP_ENV", "development"),
		StudioAPIUrl:    utils.GetEnvString("CONSOLE_STUDIO_API_URL", "http://localhost:8000/api/v1/"),
		RequestTimeout:  utils.GetEnvDuration("CONSOLE_REQUEST_TIMEOUT", 30*time.Second),
		PreferencesFile: utils.GetEnvString("CONSOLE_PREFERENCES_FILE", ".pilates-console.json"),
		LogLevel:        utils.GetEnvString("CONSOLE_LOG_LEVEL", "info"),
	}
}
