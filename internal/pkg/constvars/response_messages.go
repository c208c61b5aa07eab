package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Student messages
	CreateStudentSuccessMessage = "student created successfully"
	UpdateStudentSuccessMessage = "student updated successfully"
	DeleteStudentSuccessMessage = "student deleted successfully"
	GetStudentSuccessMessage    = "get student successfully"
	GetStudentsSuccessMessage   = "get students successfully"

	// Instructor messages
	CreateInstructorSuccessMessage = "instructor created successfully"
	UpdateInstructorSuccessMessage = "instructor updated successfully"
	DeleteInstructorSuccessMessage = "instructor deleted successfully"
	GetInstructorSuccessMessage    = "get instructor successfully"
	GetInstructorsSuccessMessage   = "get instructors successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"
	GetAppointmentSuccessMessage    = "get appointment successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"

	// Assessment and analysis messages
	CreateAssessmentSuccessMessage    = "assessment created successfully"
	AnalyzePostureSuccessMessage      = "posture analyzed successfully"
	GenerateWorkoutPlanSuccessMessage = "workout plan generated successfully"

	HealthStatusOK = "ok"
)

// Console toasts
const (
	ToastBookingInvalid   = "Select student, instructor, and a valid slot."
	ToastBookingSucceeded = "Appointment booked successfully."
	ToastBookingFailed    = "Could not create appointment."
	ToastEditInvalid      = "Select a valid date, time, and status."
	ToastEditSucceeded    = "Appointment updated successfully."
	ToastEditFailed       = "Could not update appointment."
	ToastDeleteConfirm    = "Delete this appointment? This action cannot be undone."
	ToastDeleteSucceeded  = "Appointment deleted successfully."
	ToastDeleteFailed     = "Could not delete appointment."

	ToastStudentsFailed     = "Could not load students."
	ToastInstructorsFailed  = "Could not load instructors."
	ToastAnalysisSucceeded  = "Posture analysis completed."
	ToastAnalysisFailed     = "Could not analyze the image."
	ToastImageUnreadable    = "Could not read the image file."
	ToastPlanSucceeded      = "Workout plan generated."
	ToastPlanFailed         = "Could not generate the workout plan."
	ToastPreferencesSaved   = "Preferences saved."
	ToastPreferencesFailed  = "Could not save preferences."
	ToastPreferencesInvalid = "Language must be pt or en and theme light or dark."
	ToastStudioUnavailable  = "Studio API is unavailable."
	ToastStudioAvailable    = "Studio API is up."
)
