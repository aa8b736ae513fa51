package backend

import (
	"context"
	"errors"
	"fmt"

	"noumi/internal/cache"
	"noumi/internal/datasource"
	"noumi/internal/datasource/fixture"
	"noumi/internal/datasource/remote"
	"noumi/internal/datasource/sheets"
	"noumi/internal/log"
	"noumi/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// build tracks what has been created so far so failures can be unwound.
type build struct {
	sources  map[BackendType]datasource.Source
	cleanups []CleanupFunc
	pingers  []func(context.Context) error
}

func (b *build) cleanup() error {
	var errs []error
	for i := len(b.cleanups) - 1; i >= 0; i-- {
		if err := b.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CreateBackend builds every backend the config selects once, routes
// resources to them and optionally wraps the result in the record cache.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &build{sources: make(map[BackendType]datasource.Source)}
	for _, t := range config.Types() {
		src, err := f.create(ctx, t, config, b)
		if err != nil {
			_ = b.cleanup()
			return nil, err
		}
		b.sources[t] = src
	}

	var source datasource.Source = b.sources[config.Type]
	if len(config.Overrides) > 0 {
		routed := make(map[string]datasource.Source, len(config.Overrides))
		for resource, t := range config.Overrides {
			routed[resource] = b.sources[t]
			f.logger.Info("Routing resource to backend",
				log.FieldResource, resource, log.FieldBackend, t.String())
		}
		composite, err := datasource.NewComposite(source, routed)
		if err != nil {
			_ = b.cleanup()
			return nil, err
		}
		source = composite
	}

	result := &BackendResult{Source: source}
	if config.CacheTTL > 0 {
		lru := cache.NewLRUCache[any](config.CacheSize, config.CacheTTL)
		manager := cache.NewManager(f.logger)
		manager.Register(lru)
		manager.StartCleanup(config.CacheTTL)
		b.cleanups = append(b.cleanups, func() error {
			manager.Stop()
			return nil
		})

		result.Cached = datasource.NewCached(source, lru, f.logger)
		result.Source = result.Cached
		f.logger.Info("Record cache enabled", "ttl", config.CacheTTL, "size", config.CacheSize)
	}

	result.Cleanup = b.cleanup
	pingers := b.pingers
	result.Ready = func(ctx context.Context) error {
		for _, ping := range pingers {
			if err := ping(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	f.logger.Info("Data source ready", log.FieldBackend, config.Type.String(), "overrides", len(config.Overrides))
	return result, nil
}

func (f *DefaultFactory) create(ctx context.Context, t BackendType, config Config, b *build) (datasource.Source, error) {
	switch t {
	case FixtureBackend:
		return f.createFixtureBackend(config)
	case RemoteBackend:
		return f.createRemoteBackend(config)
	case SQLiteBackend:
		return f.createSQLiteBackend(config, b)
	case SheetsBackend:
		return f.createSheetsBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}

func (f *DefaultFactory) createFixtureBackend(config Config) (datasource.Source, error) {
	if config.FixtureDir == "" {
		f.logger.Info("Initialized fixture backend with built-in dataset")
		return fixture.New(fixture.Default()), nil
	}
	store, err := fixture.NewFromDir(config.FixtureDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}
	f.logger.Info("Initialized fixture backend", "data_directory", config.FixtureDir)
	return store, nil
}

func (f *DefaultFactory) createRemoteBackend(config Config) (datasource.Source, error) {
	client, err := remote.New(config.Remote, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize remote client: %w", err)
	}
	f.logger.Info("Initialized remote backend",
		"base_url", config.Remote.BaseURL,
		"rate_per_second", config.Remote.RatePerSecond)
	return client, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config, b *build) (datasource.Source, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	b.cleanups = append(b.cleanups, repo.Close)
	b.pingers = append(b.pingers, repo.Ping)

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return repo, nil
}

// createSheetsBackend serves the resources the spreadsheet lacks from the
// fixture dataset.
func (f *DefaultFactory) createSheetsBackend(ctx context.Context, config Config) (datasource.Source, error) {
	fallback, err := f.createFixtureBackend(config)
	if err != nil {
		return nil, err
	}
	cli, err := sheets.New(ctx, config.Sheets, fallback, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend", "spreadsheet_id", config.Sheets.SpreadsheetID)
	return cli, nil
}
