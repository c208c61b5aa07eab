package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the connected drivers and configuration into the
// wiring of the studio API.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes the drivers in reverse dependency order. It keeps going
// after a failure and returns every error joined.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error
	closeDriver := func(name string, close func() error) {
		if err := close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
			return
		}
		if b.Logger != nil {
			b.Logger.Info("Closed driver", zap.String("driver", name))
		}
	}

	if b.RabbitMQ != nil {
		closeDriver("rabbitmq", b.RabbitMQ.Close)
	}
	if b.Redis != nil {
		closeDriver("redis", b.Redis.Close)
	}
	if b.MongoDB != nil {
		closeDriver("mongodb", func() error { return b.MongoDB.Disconnect(ctx) })
	}
	if b.Logger != nil {
		// Sync on stdout/stderr reports EINVAL on most terminals.
		_ = b.Logger.Sync()
	}

	return errors.Join(errs...)
}
