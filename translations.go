package translations

import (
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/di"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

// CatalogService exports the translation catalog contract for consumers of the module.
type CatalogService = catalog.Service

// GlossaryService exports the tenant glossary contract.
type GlossaryService = glossary.Service

// Logger exports the structured logging contract used across the module.
type Logger = interfaces.Logger

// LoggerProvider exports the logging provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Module represents the top level translations runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a translations module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured translation catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

// Glossary returns the configured glossary service.
func (m *Module) Glossary() GlossaryService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.GlossaryService()
}

// GlossaryEnabled reports whether the glossary feature is switched on.
func (m *Module) GlossaryEnabled() bool {
	if m == nil || m.container == nil {
		return false
	}
	return m.container.Config.Features.Glossary
}
