package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefix of environment overrides, e.g. APP_AUTH_JWT_SECRET
const EnvPrefix = "APP"

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Storage  StorageConfig  `toml:"storage" envconfig:"STORAGE"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Mongo    MongoConfig    `toml:"mongo" envconfig:"MONGO"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	Tracing  TracingConfig  `toml:"tracing" envconfig:"TRACING"`
	Auth     AuthConfig     `toml:"auth" envconfig:"AUTH"`
	Booking  BookingConfig  `toml:"booking" envconfig:"BOOKING"`
	SMTP     SMTPConfig     `toml:"smtp" envconfig:"SMTP"`
	SMS      SMSConfig      `toml:"sms" envconfig:"SMS"`
	Routes   RoutesConfig   `toml:"routes" envconfig:"ROUTES"`
	Requests RequestsConfig `toml:"requests" envconfig:"REQUESTS"`
	Admins   []AdminContact `toml:"admins" ignored:"true"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`     // seconds
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`    // seconds
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"` // seconds
}

type StorageConfig struct {
	Driver string `toml:"driver" split_words:"true"` // postgres | mongo
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // seconds
}

// DSN connection string for lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type MongoConfig struct {
	URI            string `toml:"uri" split_words:"true"`
	Database       string `toml:"database" split_words:"true"`
	ConnectTimeout int    `toml:"connect_timeout" split_words:"true"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type TracingConfig struct {
	Enabled     bool    `toml:"enabled" split_words:"true"`
	Endpoint    string  `toml:"endpoint" split_words:"true"`
	URLPath     string  `toml:"url_path" split_words:"true"`
	Insecure    bool    `toml:"insecure" split_words:"true"`
	SampleRatio float64 `toml:"sample_ratio" split_words:"true"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret" split_words:"true"`
	SessionTTLHours int    `toml:"session_ttl_hours" split_words:"true"`
	CookieName      string `toml:"cookie_name" split_words:"true"`
	SecureCookie    bool   `toml:"secure_cookie" split_words:"true"`
}

// SessionTTL session lifetime
func (a AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLHours) * time.Hour
}

type BookingConfig struct {
	Timezone string `toml:"timezone" split_words:"true"` // IANA name, "Local" by default
}

// Location resolves the timezone service dates are interpreted in
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" || strings.EqualFold(b.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: unknown booking timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

type SMTPConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	Host     string `toml:"host" split_words:"true"`
	Port     int    `toml:"port" split_words:"true"`
	Username string `toml:"username" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	From     string `toml:"from" split_words:"true"`
	Timeout  int    `toml:"timeout" split_words:"true"` // seconds
}

type SMSConfig struct {
	Enabled    bool   `toml:"enabled" split_words:"true"`
	BaseURL    string `toml:"base_url" split_words:"true"`
	AccountSID string `toml:"account_sid" split_words:"true"`
	AuthToken  string `toml:"auth_token" split_words:"true"`
	From       string `toml:"from" split_words:"true"`
	Timeout    int    `toml:"timeout" split_words:"true"` // seconds
}

// RoutesConfig pins hidden dashboard paths. Empty values are generated at startup.
type RoutesConfig struct {
	ClientDashboard   string `toml:"client_dashboard" split_words:"true"`
	MechanicDashboard string `toml:"mechanic_dashboard" split_words:"true"`
	AdminDashboard    string `toml:"admin_dashboard" split_words:"true"`
	NewMechanic       string `toml:"new_mechanic" split_words:"true"`
	AssignMechanic    string `toml:"assign_mechanic" split_words:"true"`
}

type RequestsConfig struct {
	InboxFile     string `toml:"inbox_file" split_words:"true"`
	ConfirmedFile string `toml:"confirmed_file" split_words:"true"`
}

// AdminContact administrator notified about new service requests
type AdminContact struct {
	Email string `toml:"email"`
	Phone string `toml:"phone"`
}

// Default configuration with every optional value filled in
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "service_requests",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 1800,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "service_requests",
			ConnectTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "service-request-app",
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4318",
			URLPath:     "/v1/traces",
			SampleRatio: 1,
		},
		Auth: AuthConfig{
			SessionTTLHours: 24,
			CookieName:      "session",
		},
		Booking: BookingConfig{Timezone: "Local"},
		SMTP: SMTPConfig{
			Host:    "smtp.gmail.com",
			Port:    587,
			Timeout: 10,
		},
		SMS: SMSConfig{
			BaseURL: "https://api.twilio.com",
			Timeout: 10,
		},
		Requests: RequestsConfig{
			InboxFile:     "client_requests.txt",
			ConfirmedFile: "confirmed_requests.txt",
		},
	}
}

// Load reads the TOML file, then .env files (missing files are ignored),
// then applies APP_* environment overrides and validates the result.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that have no sensible default
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMongo:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	if c.Auth.SessionTTLHours <= 0 {
		return errors.New("config: auth.session_ttl_hours must be positive")
	}

	if c.Server.HTTPPort <= 0 || c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 ||
		c.Server.IdleTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.New("config: server port and timeouts must be positive")
	}

	if _, err := c.Booking.Location(); err != nil {
		return err
	}

	return nil
}
