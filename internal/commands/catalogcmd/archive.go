package catalogcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/commands"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const archiveEntryMessageType = "i18n.catalog.archive"

// ArchiveEntryCommand retires a single entry so it stops appearing in bundles.
type ArchiveEntryCommand struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Locale    string `json:"locale"`
}

// Type implements command.Message.
func (ArchiveEntryCommand) Type() string { return archiveEntryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ArchiveEntryCommand) Validate() error {
	errs := validation.Errors{}
	if m.Namespace == "" {
		errs["namespace"] = validation.NewError("i18n.catalog.archive.namespace_required", "namespace is required")
	}
	if m.Key == "" {
		errs["key"] = validation.NewError("i18n.catalog.archive.key_required", "key is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError("i18n.catalog.archive.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ArchiveEntryHandler archives entries via the catalog service.
type ArchiveEntryHandler struct {
	inner *commands.Handler[ArchiveEntryCommand]
}

// NewArchiveEntryHandler constructs a handler wired to the provided catalog service.
func NewArchiveEntryHandler(service catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ArchiveEntryCommand]) *ArchiveEntryHandler {
	exec := func(ctx context.Context, msg ArchiveEntryCommand) error {
		_, err := service.Archive(ctx, msg.Namespace, msg.Key, msg.Locale)
		return err
	}

	handlerOpts := []commands.HandlerOption[ArchiveEntryCommand]{
		commands.WithLogger[ArchiveEntryCommand](logger),
		commands.WithOperation[ArchiveEntryCommand]("catalog.archive"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ArchiveEntryHandler{
		inner: commands.NewHandler[ArchiveEntryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ArchiveEntryCommand].Execute.
func (h *ArchiveEntryHandler) Execute(ctx context.Context, msg ArchiveEntryCommand) error {
	return h.inner.Execute(ctx, msg)
}
