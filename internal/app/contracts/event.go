package contracts

import (
	"context"
	"pilates-vision-service/internal/pkg/dto/responses"
)

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, eventType string, appointment responses.Appointment) error
}
