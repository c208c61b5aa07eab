package config

import (
	"net"
	"net/url"
	"time"
)

// DriverConfig holds the connection settings of every backing service the
// studio API talks to.
type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

type MongoDB struct {
	Host           string
	Port           string
	Username       string
	Password       string
	DbName         string
	ConnectTimeout time.Duration
}

// URI escapes the credentials so passwords may contain '@' or ':'.
func (m MongoDB) URI() string {
	uri := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(m.Host, m.Port),
	}
	if m.Username != "" {
		uri.User = url.UserPassword(m.Username, m.Password)
	}
	return uri.String()
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

// RabbitMQ is optional. With Enabled off appointment events are only logged.
type RabbitMQ struct {
	Enabled  bool
	Host     string
	Port     string
	Username string
	Password string
	VHost    string
}

func (r RabbitMQ) URL() string {
	amqpURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(r.Username, r.Password),
		Host:   net.JoinHostPort(r.Host, r.Port),
		Path:   "/" + r.VHost,
	}
	return amqpURL.String()
}

type Minio struct {
	Host      string
	Port      string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func (m Minio) Endpoint() string {
	return net.JoinHostPort(m.Host, m.Port)
}
