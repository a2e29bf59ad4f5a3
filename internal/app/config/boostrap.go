package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the opened drivers. Every driver except Logger is
// optional and nil when its host is not configured.
type Bootstrap struct {
	Router          *chi.Mux
	Redis           *redis.Client
	MongoDB         *mongo.Database
	Minio           *minio.Client
	RabbitMQ        *amqp091.Connection
	RabbitMQChannel *amqp091.Channel
	Logger          *zap.Logger
	InternalConfig  *InternalConfig
	DriverConfig    *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Client().Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.RabbitMQChannel != nil {
		err := b.RabbitMQChannel.Close()
		if err != nil {
			return err
		}
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// stdout and stderr cannot be synced on every platform
		_ = b.Logger.Sync()
	}

	return nil
}
