package di

import (
	"fmt"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/internal/logging"
	"github.com/maee-crypto/keephy-translations/internal/logging/console"
	"github.com/maee-crypto/keephy-translations/internal/logging/gologger"
	"github.com/maee-crypto/keephy-translations/internal/runtimeconfig"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. Repositories default to in-memory
// implementations and switch to bun-backed ones when a database is supplied.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	entryRepo catalog.EntryRepository
	termRepo  glossary.TermRepository

	catalogSvc  catalog.Service
	glossarySvc glossary.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the container to a database; repositories become bun-backed.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithEntryRepository overrides the default catalog repository binding.
func WithEntryRepository(repo catalog.EntryRepository) Option {
	return func(c *Container) {
		c.entryRepo = repo
	}
}

// WithTermRepository overrides the default glossary repository binding.
func WithTermRepository(repo glossary.TermRepository) Option {
	return func(c *Container) {
		c.termRepo = repo
	}
}

// WithCatalogService overrides the default catalog service binding.
func WithCatalogService(svc catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithGlossaryService overrides the default glossary service binding.
func WithGlossaryService(svc glossary.Service) Option {
	return func(c *Container) {
		c.glossarySvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureCacheDefaults(); err != nil {
		return nil, err
	}
	c.configureRepositories()

	if c.catalogSvc == nil {
		c.catalogSvc = catalog.NewService(c.entryRepo,
			catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)))
	}

	if c.glossarySvc == nil {
		glossaryOpts := []glossary.ServiceOption{
			glossary.WithLogger(logging.GlossaryLogger(c.loggerProvider)),
		}
		if limit := cfg.Glossary.DefaultListLimit; limit > 0 {
			glossaryOpts = append(glossaryOpts, glossary.WithDefaultListLimit(limit))
		}
		c.glossarySvc = glossary.NewService(c.termRepo, glossaryOpts...)
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		p, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = p
	case "console":
		minLevel := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &minLevel})
	}
	return nil
}

func (c *Container) configureCacheDefaults() error {
	if !c.Config.Cache.Enabled {
		return nil
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			return fmt.Errorf("i18n container: cache service: %w", err)
		}
		c.cacheService = service
	}

	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
	return nil
}

func (c *Container) configureRepositories() {
	if c.entryRepo == nil {
		if c.bunDB != nil {
			c.entryRepo = catalog.NewBunEntryRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.entryRepo = catalog.NewMemoryEntryRepository()
		}
	}
	if c.termRepo == nil {
		if c.bunDB != nil {
			c.termRepo = glossary.NewBunTermRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.termRepo = glossary.NewMemoryTermRepository()
		}
	}
}

// LoggerProvider exposes the configured logging provider, if any.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// EntryRepository exposes the configured catalog repository.
func (c *Container) EntryRepository() catalog.EntryRepository {
	return c.entryRepo
}

// TermRepository exposes the configured glossary repository.
func (c *Container) TermRepository() glossary.TermRepository {
	return c.termRepo
}

// CatalogService returns the configured catalog service.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// GlossaryService returns the configured glossary service. When the glossary
// feature is disabled the service still exists; hosts gate access themselves.
func (c *Container) GlossaryService() glossary.Service {
	return c.glossarySvc
}
