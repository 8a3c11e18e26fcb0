package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// retries on serialization failure or deadlock; 0 surfaces them to the caller
	MaxTxRetries int `envconfig:"DB_MAX_TX_RETRIES" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig holds business policy switches.
type BookingConfig struct {
	// RoomAssignmentChecksIn moves a pending or booked booking to checkedIn when a room is assigned.
	RoomAssignmentChecksIn bool `envconfig:"ROOM_ASSIGNMENT_CHECKS_IN" default:"true"`
}

type NotifyConfig struct {
	Schedule     string `envconfig:"NOTIFY_SCHEDULE" default:"@every 30s"`
	BatchSize    int32  `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	MaxAttempts  int32  `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	RetryBackoff string `envconfig:"NOTIFY_RETRY_BACKOFF" default:"1m"`
	// a running job untouched for this long is claimed again
	Lease string `envconfig:"NOTIFY_LEASE" default:"5m"`
	// empty key selects the log notifier
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	FromEmail      string `envconfig:"NOTIFY_FROM_EMAIL" default:"no-reply@travel-booking.local"`
	FromName       string `envconfig:"NOTIFY_FROM_NAME" default:"Travel Booking"`
	OpsEmail       string `envconfig:"NOTIFY_OPS_EMAIL" default:"ops@travel-booking.local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *NotifyConfig) Backoff() time.Duration {
	d, err := time.ParseDuration(c.RetryBackoff)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

func (c *NotifyConfig) LeaseDuration() time.Duration {
	d, err := time.ParseDuration(c.Lease)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,

			MaxTxRetries: 3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			RoomAssignmentChecksIn: true,
		},
		Notify: NotifyConfig{
			Schedule:     "@every 1s",
			BatchSize:    10,
			MaxAttempts:  3,
			RetryBackoff: "1s",
			Lease:        "1m",
			FromEmail:    "no-reply@example.com",
			FromName:     "Travel Booking",
			OpsEmail:     "ops@example.com",
		},
	}
}
