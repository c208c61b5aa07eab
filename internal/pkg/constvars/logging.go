package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingQueryParamsKey    = "query_params"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingURLKey            = "url"
	LoggingErrorLocationKey  = "location"
	LoggingRedisKey          = "redis_key"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"

	LoggingStudentIDKey     = "student_id"
	LoggingInstructorIDKey  = "instructor_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingAssessmentIDKey  = "assessment_id"
	LoggingLanguageKey      = "language"
	LoggingDateKey          = "date"
	LoggingSearchKey        = "search"

	LoggingStudentCountKey     = "student_count"
	LoggingInstructorCountKey  = "instructor_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingDeviationCountKey   = "deviation_count"
	LoggingExerciseCountKey    = "exercise_count"

	LoggingToastKey   = "toast"
	LoggingCommandKey = "command"
	LoggingModeKey    = "mode"
	LoggingFileKey    = "file"
)
