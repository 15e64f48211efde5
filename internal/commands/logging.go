package commands

import (
	"strings"

	"github.com/maee-crypto/keephy-translations/internal/logging"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const commandModuleRoot = "i18n.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching it with
// consistent structured fields so command executions share a uniform shape.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
