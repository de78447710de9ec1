package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (store address, etc.)
// - default: Values common across all environments (TTLs, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type StoreConfig struct {
	Driver   string        `envconfig:"STORE_DRIVER" default:"redis"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	Timeout  time.Duration `envconfig:"STORE_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

// SessionConfig holds the TTLs that bound every piece of shared state.
// Expiry is the only cleanup mechanism; nothing is deleted on a schedule.
type SessionConfig struct {
	LocationTTL time.Duration `envconfig:"LOCATION_TTL" default:"1h"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	ConfirmTTL  time.Duration `envconfig:"CONFIRM_TTL" default:"10m"`
	CooldownTTL time.Duration `envconfig:"COOLDOWN_TTL" default:"60s"`
}

type NotifyConfig struct {
	// ExternalURL overrides the request origin when building the
	// owner-confirm link embedded in notifications.
	ExternalURL      string        `envconfig:"EXTERNAL_URL" default:""`
	PushPlusToken    string        `envconfig:"PUSHPLUS_TOKEN" default:""`
	PushPlusEndpoint string        `envconfig:"PUSHPLUS_ENDPOINT" default:"http://www.pushplus.plus/send"`
	BarkURL          string        `envconfig:"BARK_URL" default:""`
	CarTitle         string        `envconfig:"CAR_TITLE" default:"车主"`
	PhoneNumber      string        `envconfig:"PHONE_NUMBER" default:""`
	HTTPTimeout      time.Duration `envconfig:"NOTIFY_HTTP_TIMEOUT" default:"10s"`
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
		Store: StoreConfig{
			Driver:  "memory",
			Timeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		Session: SessionConfig{
			LocationTTL: time.Hour,
			SessionTTL:  30 * time.Minute,
			ConfirmTTL:  10 * time.Minute,
			CooldownTTL: 60 * time.Second,
		},
		Notify: NotifyConfig{
			CarTitle:    "车主",
			HTTPTimeout: 2 * time.Second,
		},
	}
}
