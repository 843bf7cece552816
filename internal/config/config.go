package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// Debug lowers the log level to debug
	Debug bool `env:"DEBUG" env-default:"false" yaml:"debug"`

	// Source configures where domain listings are read from
	Source struct {
		// GitHubURL is the remote DotGov listing used by the github command
		GitHubURL string `env:"SOURCE_GITHUB_URL" env-default:"https://raw.githubusercontent.com/cisagov/dotgov-data/main/current-federal.csv" yaml:"githubURL"` //nolint: lll
		// MissingSecurityContact is the listing value marking a domain without a security contact
		MissingSecurityContact string `env:"SOURCE_MISSING_SECURITY_CONTACT" env-default:"(blank)" yaml:"missingSecurityContact"` //nolint: lll
		// InputDirectory is where relative local listing paths are resolved
		InputDirectory string `env:"SOURCE_INPUT_DIRECTORY" env-default:"host_mount" yaml:"inputDirectory"`
	} `yaml:"source"`

	// Fetch configures the HTTP client used for VDP checks
	Fetch struct {
		// Timeout bounds a single fetch attempt
		Timeout time.Duration `env:"FETCH_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// UserAgent is sent with every request
		UserAgent string `env:"FETCH_USER_AGENT" env-default:"vdp-scanner/1.0" yaml:"userAgent"`
		// MaxBodyBytes caps how much of a response body is hashed
		MaxBodyBytes int64 `env:"FETCH_MAX_BODY_BYTES" env-default:"5242880" yaml:"maxBodyBytes"`
		// MaxRedirects caps the redirects followed by a single attempt
		MaxRedirects int `env:"FETCH_MAX_REDIRECTS" env-default:"30" yaml:"maxRedirects"`
	} `yaml:"fetch"`

	// Runner configures how domains are dispatched
	Runner struct {
		// Concurrency is the number of domains checked at once, 1 checks sequentially
		Concurrency int `env:"RUNNER_CONCURRENCY" env-default:"1" yaml:"concurrency"`
		// RateLimit caps domain checks started per second, 0 disables it
		RateLimit float64 `env:"RUNNER_RATE_LIMIT" env-default:"0" yaml:"rateLimit"`
	} `yaml:"runner"`

	// Output configures the reports
	Output struct {
		// Directory is where reports are written
		Directory string `env:"OUTPUT_DIRECTORY" env-default:"host_mount" yaml:"directory"`
		// AgencyCSV overrides the dated agency report name
		AgencyCSV string `env:"OUTPUT_AGENCY_CSV" yaml:"agencyCSV"`
		// DomainCSV overrides the dated domain report name
		DomainCSV string `env:"OUTPUT_DOMAIN_CSV" yaml:"domainCSV"`
		// Workbook is an optional xlsx report name
		Workbook string `env:"OUTPUT_WORKBOOK" yaml:"workbook"`
	} `yaml:"output"`

	// Metrics configures metric export
	Metrics struct {
		// TextfilePath, when set, receives the metrics of the run in Prometheus text format
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" yaml:"textfilePath"`
	} `yaml:"metrics"`

	// HTTP configures the optional debug listener
	HTTP struct {
		// Addr is the address the debug listener binds to, empty disables it
		Addr string `env:"HTTP_ADDR" yaml:"addr"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"vdpscanner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout bounds the shutdown of the debug listener
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
