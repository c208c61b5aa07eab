package contracts

import (
	"context"
	"pilates-vision-service/internal/app/models"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, date string) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	Update(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	// FindAll returns appointments starting in [from, to) ordered by start
	// time. A zero from returns every appointment.
	FindAll(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindOverlapping(ctx context.Context, instructorID string, start, end time.Time, excludeID string) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, appointmentID string) error
	CountByStudentID(ctx context.Context, studentID string) (int64, error)
	CountByInstructorID(ctx context.Context, instructorID string) (int64, error)
}
