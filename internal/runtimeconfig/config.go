package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDefaultLocaleRequired indicates the module cannot resolve fallbacks without a default locale.
var ErrDefaultLocaleRequired = errors.New("i18n config: default locale is required")

// ErrGlossaryCacheRequiresEnabledCache ensures glossary caching builds only when cache is enabled.
var ErrGlossaryCacheRequiresEnabledCache = errors.New("i18n config: glossary cache feature requires cache to be enabled")
var ErrStorageProviderUnknown = errors.New("i18n config: storage provider is invalid")
var ErrCacheTTLInvalid = errors.New("i18n config: cache TTL must be zero or positive")
var ErrLoggingProviderRequired = errors.New("i18n config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("i18n config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("i18n config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("i18n config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the translations module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Catalog       CatalogConfig
	Glossary      GlossaryConfig
	Storage       StorageConfig
	Cache         CacheConfig
	Features      Features
	Commands      CommandsConfig
	Logging       LoggingConfig
}

// CatalogConfig captures behaviour toggles for the translation catalog.
type CatalogConfig struct {
	RequiredLocales []string
}

// GlossaryConfig captures behaviour toggles for the tenant glossary.
type GlossaryConfig struct {
	Enabled          bool
	DefaultListLimit int
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles module functionality.
type Features struct {
	Glossary      bool
	GlossaryCache bool
	Commands      bool
	Logger        bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled        bool
	HandlerTimeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en"},
		Catalog: CatalogConfig{
			RequiredLocales: []string{"en"},
		},
		Glossary: GlossaryConfig{
			Enabled:          true,
			DefaultListLimit: 50,
		},
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Features: Features{
			Glossary: true,
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if cfg.Features.GlossaryCache && !cfg.Cache.Enabled {
		return ErrGlossaryCacheRequiresEnabledCache
	}
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "bun", "memory":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
