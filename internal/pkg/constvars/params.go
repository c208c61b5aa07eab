package constvars

const (
	URLParamStudentID     = "student_id"
	URLParamInstructorID  = "instructor_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamSearch = "q"
	URLQueryParamDate   = "date"
)

const (
	FormFieldImage     = "image"
	FormFieldStudentID = "student_id"
	FormFieldLanguage  = "language"
)
