package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — настройки HTTP-сервера.
type HTTP struct {
	Addr    string `default:":8080" envconfig:"ADDR"`
	GinMode string `default:"debug" envconfig:"GIN_MODE"`

	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Metrics — отдельный адрес для Prometheus (если нужен вне основного роутера).
type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

// Tracing — настройки OTEL-экспортёра.
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"tickets-app" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Payment — внешний сервис оплаты.
type Payment struct {
	BaseURL string        `default:"http://payment:8081" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Reservation — внешний сервис бронирования мест.
type Reservation struct {
	BaseURL string        `default:"http://reservation:8082" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Kafka — источник заявок на покупку.
type Kafka struct {
	Brokers     []string `default:"kafka:9092" envconfig:"BROKERS"`
	Topic       string   `default:"purchases" envconfig:"TOPIC"`
	GroupID     string   `default:"purchases" envconfig:"GROUP_ID"`
	StartOffset string   `default:"last" envconfig:"START_OFFSET"`

	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

// Cache — кэш чеков по ключу идемпотентности.
type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP        HTTP
	Metrics     Metrics
	Tracing     Tracing
	Payment     Payment
	Reservation Reservation
	Kafka       Kafka
	Cache       Cache
	Logger      Logger
}

// Load — конфигурация из окружения с префиксом по умолчанию TICKETS.
func Load() (Config, error) { return LoadWithPrefix("TICKETS") }

// LoadWithPrefix — то же с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
