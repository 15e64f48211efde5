package translations

import "github.com/maee-crypto/keephy-translations/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired             = runtimeconfig.ErrDefaultLocaleRequired
	ErrGlossaryCacheRequiresEnabledCache = runtimeconfig.ErrGlossaryCacheRequiresEnabledCache
	ErrStorageProviderUnknown            = runtimeconfig.ErrStorageProviderUnknown
	ErrCacheTTLInvalid                   = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	CatalogConfig  = runtimeconfig.CatalogConfig
	GlossaryConfig = runtimeconfig.GlossaryConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	Features       = runtimeconfig.Features
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
