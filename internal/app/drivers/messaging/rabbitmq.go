package messaging

import (
	"fmt"
	"log"
	"psychology-assessment-client/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker that receives report status events.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	url := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     parsePort(driverConfig.RabbitMQ.Port),
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    "/",
	}
	conn, err := amqp091.Dial(url.String())
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// NewRabbitMQChannel opens a channel on conn and declares queueName as a
// durable queue so publishes never hit a missing queue.
func NewRabbitMQChannel(conn *amqp091.Connection, queueName string) *amqp091.Channel {
	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare rabbitMQ queue %s: %s", queueName, err.Error())
	}
	return channel
}

func parsePort(port string) int {
	var value int
	if _, err := fmt.Sscanf(port, "%d", &value); err != nil || value <= 0 {
		return 5672
	}
	return value
}
