package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be exactly %s characters long",
	"oneof":    "must be one of %s",
	"digits":   "must contain only digits",
	"status":   "must be one of booked, completed, canceled",
	"date":     "must be a date in YYYY-MM-DD format",
	"clock":    "must be a time in HH:MM format",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, please slow down"

	ErrClientStudentNotFound           = "Student not found"
	ErrClientStudentCPFAlreadyExists   = "A student with this CPF already exists"
	ErrClientStudentHasAppointments    = "Cannot delete student with linked appointments"
	ErrClientStudentHasAssessments     = "Cannot delete student with linked assessments"
	ErrClientInstructorNotFound        = "Instructor not found"
	ErrClientInstructorEmailExists     = "An instructor with this email already exists"
	ErrClientInstructorHasAppointment  = "Cannot delete instructor with linked appointments"
	ErrClientAppointmentNotFound       = "Appointment not found"
	ErrClientAppointmentEndBeforeStart = "End time must be after start time"
	ErrClientAppointmentOverlap        = "Instructor already has an appointment in this time range"
	ErrClientAppointmentBusy           = "Instructor schedule is being updated, please try again"
	ErrClientInvalidDateFormat         = "Invalid date format. Use YYYY-MM-DD"
	ErrClientInvalidTimestamp          = "Invalid date/time format. Use YYYY-MM-DDTHH:MM:SS"
	ErrClientInvalidImageType          = "Invalid file type. Please upload an image."
	ErrClientEmptyImage                = "Uploaded image is empty."
	ErrClientInvalidLanguage           = "Language must be pt or en"
	ErrClientAnalysisFailed            = "Failed to analyze posture"
	ErrClientWorkoutPlanFailed         = "Failed to generate workout plan"
	ErrClientPlannerIncomplete         = "Model did not return 5 distinct exercises."
	ErrClientInvalidPlanFormat         = "Invalid workout_plan format returned by model."
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotReadUploadedFile     = "cannot read uploaded file"
	ErrDevURLParamIDValidationFailed = "failed to validate url param %s"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevDecodeHTTPResponse         = "failed to decode HTTP response from %s"
	ErrDevRemoteServiceRejected      = "remote service %s rejected the request"
	ErrDevRemoteServiceFailed        = "remote service %s failed"
	ErrDevRemoteServiceNotConfigured = "remote service %s is not configured"
	ErrDevMissingRequestID           = "request id not found in context"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	ErrDevRedisGetNoData  = "no data found in redis for key %s"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to set data into redis if not exists"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message into queue %s"

	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"

	ErrDevStudentNotFound            = "student not found"
	ErrDevStudentCPFAlreadyExists    = "student tax id already exists"
	ErrDevStudentHasAppointments     = "student still referenced by appointments"
	ErrDevStudentHasAssessments      = "student still referenced by assessments"
	ErrDevInstructorNotFound         = "instructor not found"
	ErrDevInstructorEmailExists      = "instructor email already exists"
	ErrDevInstructorHasAppointments  = "instructor still referenced by appointments"
	ErrDevAppointmentNotFound        = "appointment not found"
	ErrDevAppointmentEndBeforeStart  = "appointment end time is not after start time"
	ErrDevAppointmentOverlap         = "appointment overlaps another appointment of the instructor"
	ErrDevAppointmentLockNotAcquired = "appointment lock for instructor not acquired"
	ErrDevInvalidDateFormat          = "invalid date format"
	ErrDevInvalidTimestamp           = "invalid timestamp format"
	ErrDevImageValidationFailed      = "uploaded file is not an image"
	ErrDevEmptyImage                 = "uploaded image is empty"
	ErrDevInvalidLanguage            = "unsupported language"
	ErrDevAnalyzerRejectedInput      = "posture analyzer rejected the input"
	ErrDevAnalyzerFailed             = "posture analyzer failed"
	ErrDevPlannerFailed              = "workout planner failed"
	ErrDevPlannerIncomplete          = "workout planner returned fewer than 5 distinct exercises"
)
