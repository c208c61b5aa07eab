package messaging

import (
	"fmt"
	"pilates-vision-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker that receives appointment lifecycle events.
func NewRabbitMQ(cfg config.RabbitMQ, logger *zap.Logger) (*amqp091.Connection, error) {
	conn, err := amqp091.DialConfig(cfg.URL(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
		Properties: amqp091.Table{"connection_name": "pilates-vision-service"},
	})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("Connected to rabbitMQ", zap.String("vhost", "/"+cfg.VHost))
	return conn, nil
}
