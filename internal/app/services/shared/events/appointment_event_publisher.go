// Package events publishes appointment lifecycle events to RabbitMQ.
package events

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
	"pilates-vision-service/internal/pkg/exceptions"
	"pilates-vision-service/internal/pkg/slots"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type appointmentEventPublisher struct {
	ch        publishChannel
	queueName string
	now       func() time.Time
	log       *zap.Logger
}

// NewAppointmentEventPublisher opens a channel on conn and declares a durable
// queue named queueName.
func NewAppointmentEventPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.AppointmentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return newPublisher(ch, queueName, time.Now, logger), nil
}

func newPublisher(ch publishChannel, queueName string, now func() time.Time, logger *zap.Logger) *appointmentEventPublisher {
	return &appointmentEventPublisher{
		ch:        ch,
		queueName: queueName,
		now:       now,
		log:       logger,
	}
}

func (p *appointmentEventPublisher) Publish(ctx context.Context, eventType string, appointment responses.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("appointmentEventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	body, err := json.Marshal(requests.AppointmentEvent{
		EventType:   eventType,
		OccurredAt:  slots.FormatTimestamp(p.now()),
		Appointment: appointment,
	})
	if err != nil {
		p.log.Error("appointmentEventPublisher.Publish error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    requestID,
		Type:         eventType,
		Headers: amqp.Table{
			constvars.LoggingEventTypeKey: eventType,
		},
	}
	err = p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg)
	if err != nil {
		p.log.Error("appointmentEventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("appointmentEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.queueName),
	)
	return nil
}

type noopPublisher struct {
	log *zap.Logger
}

// NewNoopAppointmentEventPublisher is used when RabbitMQ is disabled.
func NewNoopAppointmentEventPublisher(logger *zap.Logger) contracts.AppointmentEventPublisher {
	return &noopPublisher{log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, eventType string, appointment responses.Appointment) error {
	p.log.Debug("noopPublisher.Publish skipped",
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}
