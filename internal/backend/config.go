package backend

import (
	"fmt"
	"sort"

	"noumi/internal/config"
	"noumi/internal/datasource"
	"noumi/internal/datasource/remote"
	"noumi/internal/datasource/sheets"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	overrides := make(map[string]BackendType, len(appConfig.DataBackendOverrides))
	for resource, name := range appConfig.DataBackendOverrides {
		overrides[resource] = BackendType(name)
	}

	cfg := Config{
		Type:      backendType,
		Overrides: overrides,

		FixtureDir: appConfig.FixtureDir,

		Remote: remote.Config{
			BaseURL:       appConfig.RemoteBaseURL,
			Token:         appConfig.RemoteToken,
			Timeout:       appConfig.RemoteTimeout,
			RatePerSecond: appConfig.RemoteRatePerSecond,
		},

		SQLiteDBPath: appConfig.SQLiteDBPath,

		Sheets: sheets.Config{
			SpreadsheetID:   appConfig.GoogleSpreadsheetID,
			SpendingSheet:   appConfig.GoogleSheetName,
			HabitsSheet:     appConfig.GoogleHabitsSheetName,
			CredentialsFile: appConfig.GoogleCredentialsFile,
			CredentialsJSON: appConfig.GoogleCredentialsJSON,
		},

		CacheTTL:  appConfig.CacheTTL,
		CacheSize: appConfig.CacheSize,
	}
	return cfg, cfg.Validate()
}

// Types returns the distinct backends the config selects, default first.
func (c Config) Types() []BackendType {
	seen := map[BackendType]bool{c.Type: true}
	types := []BackendType{c.Type}
	resources := make([]string, 0, len(c.Overrides))
	for r := range c.Overrides {
		resources = append(resources, r)
	}
	sort.Strings(resources)
	for _, r := range resources {
		t := c.Overrides[r]
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	for resource, t := range c.Overrides {
		if !datasource.IsResource(resource) {
			return fmt.Errorf("unknown resource in overrides: %s", resource)
		}
		if !t.IsValid() {
			return fmt.Errorf("invalid backend type %s for resource %s", t, resource)
		}
	}

	for _, t := range c.Types() {
		switch t {
		case RemoteBackend:
			if c.Remote.BaseURL == "" {
				return fmt.Errorf("remote base URL is required for remote backend")
			}
		case SQLiteBackend:
			if c.SQLiteDBPath == "" {
				return fmt.Errorf("SQLite database path is required for sqlite backend")
			}
		case SheetsBackend:
			if c.Sheets.SpreadsheetID == "" {
				return fmt.Errorf("Google Spreadsheet ID is required for sheets backend")
			}
			if c.Sheets.CredentialsFile == "" && c.Sheets.CredentialsJSON == "" {
				return fmt.Errorf("either CredentialsFile or CredentialsJSON must be provided for sheets backend")
			}
		case FixtureBackend:
			// An empty directory falls back to the built-in dataset.
		}
	}

	if c.CacheTTL > 0 && c.CacheSize < 1 {
		return fmt.Errorf("cache size must be at least 1 when caching is enabled")
	}
	return nil
}

// GetBackendTypes returns all valid backend types
func GetBackendTypes() []BackendType {
	return []BackendType{FixtureBackend, RemoteBackend, SQLiteBackend, SheetsBackend}
}
