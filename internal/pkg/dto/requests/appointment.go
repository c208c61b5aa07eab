package requests

import "pilates-vision-service/internal/pkg/dto/responses"

// CreateAppointment timestamps are naive local wall-clock strings.
type CreateAppointment struct {
	StudentID    string `json:"student_id" validate:"required"`
	InstructorID string `json:"instructor_id" validate:"required"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	Status       string `json:"status,omitempty" validate:"omitempty,status"`
	Notes        string `json:"notes"`
}

type UpdateAppointment struct {
	StudentID    *string `json:"student_id,omitempty"`
	InstructorID *string `json:"instructor_id,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,status"`
	Notes        *string `json:"notes,omitempty"`
}

// AppointmentEvent is published on every appointment mutation.
type AppointmentEvent struct {
	EventType   string                `json:"event_type"`
	OccurredAt  string                `json:"occurred_at"`
	Appointment responses.Appointment `json:"appointment"`
}
