package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Service    Service
	Postgres   ReadEnvPostgres
	Logger     Logger
	Platform   Platform
	Auth       Auth
	Centrifuge Centrifuge
	Cloudinary Cloudinary
	Messaging  Messaging
	Kafka      Kafka
	Metrics    Metrics
}

type Service struct {
	Port string `env:"MESSAGE_SERVICE_PORT" env-default:"8080"`
	Name string `env:"MESSAGE_SERVICE_NAME" env-default:"message-service"`
}

type ReadEnvPostgres struct {
	User     string `env:"MESSAGE_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSAGE_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSAGE_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSAGE_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSAGE_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Auth struct {
	JWTSecret string `env:"MESSAGE_SERVICE_JWT_SECRET"`
}

type Centrifuge struct {
	BaseURL       string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey        string        `env:"CENTRIFUGO_API_KEY"`
	Timeout       time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
	ChannelPrefix string        `env:"CENTRIFUGO_CHANNEL_PREFIX" env-default:"messages:"`
}

type Cloudinary struct {
	URL    string `env:"CLOUDINARY_URL"`
	Folder string `env:"CLOUDINARY_FOLDER" env-default:"message_images"`
}

type Messaging struct {
	DefaultAvatarURL string `env:"MESSAGE_SERVICE_DEFAULT_AVATAR_URL" env-default:"https://res.cloudinary.com/dh5lpihx1/image/upload/v1/media/images/default_profile_dqcubz.jpg"`
	MaxImageSize     int64  `env:"MESSAGE_SERVICE_MAX_IMAGE_SIZE" env-default:"5242880"`
	MaxContentLength int    `env:"MESSAGE_SERVICE_MAX_CONTENT_LENGTH" env-default:"2000"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_TOPIC" env-default:"user-events"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
