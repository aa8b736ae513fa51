package backend

import (
	"context"
	"time"

	"noumi/internal/datasource"
	"noumi/internal/datasource/remote"
	"noumi/internal/datasource/sheets"
)

// BackendType names one data source implementation.
type BackendType string

const (
	FixtureBackend BackendType = "fixture"
	RemoteBackend  BackendType = "remote"
	SQLiteBackend  BackendType = "sqlite"
	SheetsBackend  BackendType = "sheets"
)

func (t BackendType) String() string {
	return string(t)
}

// IsValid reports whether t is a known backend.
func (t BackendType) IsValid() bool {
	switch t {
	case FixtureBackend, RemoteBackend, SQLiteBackend, SheetsBackend:
		return true
	}
	return false
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the source and the hooks the binaries need around it.
type BackendResult struct {
	Source datasource.Source
	// Cached is set when the raw record cache is enabled.
	Cached  *datasource.Cached
	Cleanup CleanupFunc
	// Ready checks the backends that hold a connection.
	Ready func(ctx context.Context) error
}

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type      BackendType
	Overrides map[string]BackendType

	FixtureDir   string
	Remote       remote.Config
	SQLiteDBPath string
	Sheets       sheets.Config

	CacheTTL  time.Duration
	CacheSize int
}
