package contracts

import (
	"context"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

// ScheduleClient is the part of the studio API the scheduling board needs.
type ScheduleClient interface {
	ListStudents(ctx context.Context, search string) ([]responses.Student, error)
	ListInstructors(ctx context.Context) ([]responses.Instructor, error)
	ListAppointments(ctx context.Context, date string) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type StudioClient interface {
	ScheduleClient

	CreateStudent(ctx context.Context, request *requests.CreateStudent) (*responses.Student, error)
	UpdateStudent(ctx context.Context, studentID string, request *requests.UpdateStudent) (*responses.Student, error)
	DeleteStudent(ctx context.Context, studentID string) error

	CreateInstructor(ctx context.Context, request *requests.CreateInstructor) (*responses.Instructor, error)
	UpdateInstructor(ctx context.Context, instructorID string, request *requests.UpdateInstructor) (*responses.Instructor, error)
	DeleteInstructor(ctx context.Context, instructorID string) error

	AnalyzePosture(ctx context.Context, studentID, language, fileName string, image []byte) (*responses.PostureAnalysis, error)
	GenerateWorkoutPlan(ctx context.Context, studentID, language string) (*responses.WorkoutPlan, error)
	Health(ctx context.Context) (*responses.Health, error)
}
