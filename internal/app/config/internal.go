package config

import "time"

type InternalConfig struct {
	App         App              `mapstructure:"app"`
	Analyzer    AppRemoteService `mapstructure:"analyzer"`
	Planner     AppRemoteService `mapstructure:"planner"`
	Minio       AppMinio         `mapstructure:"minio"`
	RabbitMQ    AppRabbitMQ      `mapstructure:"rabbitmq"`
	Appointment AppAppointment   `mapstructure:"appointment"`
	Cache       AppCache         `mapstructure:"cache"`
}

type App struct {
	Env            string `mapstructure:"env"`
	Port           string `mapstructure:"port"`
	Version        string `mapstructure:"version"`
	Timezone       string `mapstructure:"timezone"`
	EndpointPrefix string `mapstructure:"endpoint_prefix"`
	// AllowedOrigins is a CSV list of CORS origins, "*" allows any.
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// AnalysisRequestsPerMinute and AnalysisBurst size the per-client token
	// bucket in front of the analyzer and planner routes.
	AnalysisRequestsPerMinute int `mapstructure:"analysis_requests_per_minute"`
	AnalysisBurst             int `mapstructure:"analysis_burst"`
}

// AppRemoteService points at one of the opaque analysis backends. An empty
// BaseUrl leaves the feature unconfigured.
type AppRemoteService struct {
	BaseUrl string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}

type AppRabbitMQ struct {
	AppointmentEventQueue string `mapstructure:"appointment_event_queue"`
}

type AppAppointment struct {
	LockTTL time.Duration `mapstructure:"lock_ttl"`
}

type AppCache struct {
	InstructorListTTL time.Duration `mapstructure:"instructor_list_ttl"`
}
