package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Backend names accepted by DATA_BACKEND and DATA_BACKEND_OVERRIDES.
const (
	BackendFixture = "fixture"
	BackendRemote  = "remote"
	BackendSQLite  = "sqlite"
	BackendSheets  = "sheets"
)

var validBackends = []string{BackendFixture, BackendRemote, BackendSQLite, BackendSheets}

type Config struct {
	// HTTP Server
	Port               string
	LogLevel           string
	CORSAllowedOrigins []string

	// Data source selection
	DataBackend          string
	DataBackendOverrides map[string]string

	// Fixture backend
	FixtureDir string

	// Remote backend
	RemoteBaseURL       string
	RemoteToken         string
	RemoteTimeout       time.Duration
	RemoteRatePerSecond int

	// Database
	SQLiteDBPath string

	// Google Sheets
	GoogleSpreadsheetID   string
	GoogleSheetName       string
	GoogleHabitsSheetName string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string

	// Raw record cache
	CacheTTL  time.Duration
	CacheSize int

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Recap worker
	RecapInterval time.Duration

	// Analytics
	TrendUnit string
	TopN      int

	overridesErr error
}

func Load() *Config {
	overrides, err := ParseOverrides(getEnv("DATA_BACKEND_OVERRIDES", ""))

	cfg := &Config{
		Port:               getEnv("PORT", "8081"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		DataBackend:          getEnv("DATA_BACKEND", BackendFixture),
		DataBackendOverrides: overrides,

		FixtureDir: getEnv("FIXTURE_DIR", "./data"),

		RemoteBaseURL:       getEnv("REMOTE_BASE_URL", ""),
		RemoteToken:         getEnv("REMOTE_TOKEN", ""),
		RemoteTimeout:       getEnvDuration("REMOTE_TIMEOUT", 10*time.Second),
		RemoteRatePerSecond: getEnvInt("REMOTE_RATE_PER_SECOND", 5),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/noumi.db"),

		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:       getEnv("GOOGLE_SHEET_NAME", "Spending"),
		GoogleHabitsSheetName: getEnv("GOOGLE_HABITS_SHEET_NAME", "Habits"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),

		CacheTTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		CacheSize: getEnvInt("CACHE_SIZE", 128),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "noumi"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "weekly_recaps"),

		RecapInterval: getEnvDuration("RECAP_INTERVAL", 7*24*time.Hour),

		TrendUnit: getEnv("TREND_UNIT", "monthly"),
		TopN:      getEnvInt("TOP_N", 3),

		overridesErr: err,
	}

	return cfg
}

// ParseOverrides parses "resource=backend,resource=backend". Blank input
// yields an empty map.
func ParseOverrides(s string) (map[string]string, error) {
	out := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		resource, backend, ok := strings.Cut(part, "=")
		resource = strings.TrimSpace(resource)
		backend = strings.TrimSpace(backend)
		if !ok || resource == "" || backend == "" {
			return out, fmt.Errorf("invalid override %q: expected resource=backend", part)
		}
		out[resource] = backend
	}
	return out, nil
}

// UsesBackend reports whether the default backend or any override selects name.
func (c *Config) UsesBackend(name string) bool {
	if c.DataBackend == name {
		return true
	}
	for _, b := range c.DataBackendOverrides {
		if b == name {
			return true
		}
	}
	return false
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	// Validate data backend and overrides
	if !isValidBackend(c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}
	if c.overridesErr != nil {
		errors = append(errors, c.overridesErr.Error())
	}
	resources := make([]string, 0, len(c.DataBackendOverrides))
	for r := range c.DataBackendOverrides {
		resources = append(resources, r)
	}
	sort.Strings(resources)
	for _, r := range resources {
		if b := c.DataBackendOverrides[r]; !isValidBackend(b) {
			errors = append(errors, fmt.Sprintf("invalid backend '%s' for resource '%s': must be one of %v", b, r, validBackends))
		}
	}

	if c.UsesBackend(BackendFixture) && c.FixtureDir == "" {
		errors = append(errors, "fixture directory cannot be empty when using fixture backend")
	}

	// Validate remote configuration
	if c.UsesBackend(BackendRemote) {
		if c.RemoteBaseURL == "" {
			errors = append(errors, "REMOTE_BASE_URL is required when using remote backend")
		} else if u, err := url.Parse(c.RemoteBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid remote base URL '%s': must be an absolute http(s) URL", c.RemoteBaseURL))
		}
		if c.RemoteTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("invalid remote timeout %v: must be positive", c.RemoteTimeout))
		}
		if c.RemoteRatePerSecond < 1 {
			errors = append(errors, fmt.Sprintf("invalid remote rate %d: must be at least 1 per second", c.RemoteRatePerSecond))
		}
	}

	// Validate SQLite configuration if backend is sqlite
	if c.UsesBackend(BackendSQLite) {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate Google Sheets configuration if backend is sheets
	if c.UsesBackend(BackendSheets) {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using sheets backend")
		}
		hasFile := c.GoogleCredentialsFile != ""
		if !hasFile && c.GoogleCredentialsJSON == "" {
			errors = append(errors, "either GOOGLE_CREDENTIALS_FILE or GOOGLE_CREDENTIALS_JSON must be provided for sheets backend")
		}
		if hasFile {
			if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google credentials file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
	}

	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	}
	if c.CacheTTL > 0 && c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.RecapInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid recap interval %v: must be at least 1 minute", c.RecapInterval))
	}

	if c.TrendUnit != "monthly" && c.TrendUnit != "weekly" {
		errors = append(errors, fmt.Sprintf("invalid trend unit '%s': must be 'monthly' or 'weekly'", c.TrendUnit))
	}
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			continue
		}
		if u, err := url.Parse(strings.Replace(origin, "*.", "", 1)); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid CORS origin '%s': must be '*' or scheme://host", origin))
		}
	}

	if c.TopN < 1 {
		errors = append(errors, fmt.Sprintf("invalid top N %d: must be at least 1", c.TopN))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func isValidBackend(name string) bool {
	for _, b := range validBackends {
		if name == b {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
