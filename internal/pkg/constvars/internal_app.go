package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceStudents     = "students"
	ResourceInstructors  = "instructors"
	ResourceAppointments = "appointments"
	ResourceAssessments  = "assessments"
	ResourceAnalysis     = "analysis"
	ResourceWorkoutPlan  = "workout plan"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	LanguagePortuguese = "pt"
	LanguageEnglish    = "en"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCanceled  = "canceled"
)

var AppointmentStatuses = []string{
	AppointmentStatusBooked,
	AppointmentStatusCompleted,
	AppointmentStatusCanceled,
}

const (
	AppointmentEventBooked  = "appointment.booked"
	AppointmentEventUpdated = "appointment.updated"
	AppointmentEventDeleted = "appointment.deleted"
)

const (
	AppointmentNotesFromCalendar = "Scheduled from calendar view"

	WorkoutPlanExerciseCount = 5
	WorkoutPlanDefaultSets   = "3"
	WorkoutPlanDefaultReps   = "10-12"

	ClinicalAnalysisDeviationsPrefix = "Detected deviations: "
	ClinicalAnalysisNoRecentAnalysis = "No recent postural analysis"
)
