package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL)
// - default: Values common across all environments (timeouts, slot grid)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Slots   SlotsConfig
	Stream  StreamConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the authoritative reservations API this
// gateway reads from.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// JWTConfig holds the shared secret used to read role claims from the
// frontend's bearer tokens. When empty, claims are read without
// signature verification: the gateway only uses them to pick listing
// defaults, authorization stays with the backend.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" default:""`
}

// SlotsConfig is the booking form grid.
type SlotsConfig struct {
	StartHour   int `envconfig:"SLOTS_START_HOUR" default:"7"`
	EndHour     int `envconfig:"SLOTS_END_HOUR" default:"23"`
	StepMinutes int `envconfig:"SLOTS_STEP_MINUTES" default:"10"`
}

// StreamConfig drives the live status stream: statuses are re-derived
// every RederiveEvery and backend data is refetched every RefetchEvery.
type StreamConfig struct {
	RederiveEvery time.Duration `envconfig:"STREAM_REDERIVE_EVERY" default:"1s"`
	RefetchEvery  time.Duration `envconfig:"STREAM_REFETCH_EVERY" default:"60s"`
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
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Slots: SlotsConfig{
			StartHour:   7,
			EndHour:     23,
			StepMinutes: 10,
		},
		Stream: StreamConfig{
			RederiveEvery: time.Second,
			RefetchEvery:  60 * time.Second,
		},
	}
}
