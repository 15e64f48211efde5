package catalogcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/commands"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const publishKeysMessageType = "i18n.catalog.publish"

// PublishKeysCommand requests bulk publication of translation keys within a namespace.
type PublishKeysCommand struct {
	Namespace   string   `json:"namespace"`
	Keys        []string `json:"keys"`
	PublishedBy string   `json:"published_by"`
}

// Type implements command.Message.
func (PublishKeysCommand) Type() string { return publishKeysMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishKeysCommand) Validate() error {
	errs := validation.Errors{}
	if m.Namespace == "" {
		errs["namespace"] = validation.NewError("i18n.catalog.publish.namespace_required", "namespace is required")
	}
	if len(m.Keys) == 0 {
		errs["keys"] = validation.NewError("i18n.catalog.publish.keys_required", "at least one key is required")
	}
	if m.PublishedBy == "" {
		errs["published_by"] = validation.NewError("i18n.catalog.publish.published_by_required", "published_by is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishKeysHandler publishes pending entries via the catalog service using the shared
// command handler foundation.
type PublishKeysHandler struct {
	inner *commands.Handler[PublishKeysCommand]
}

// NewPublishKeysHandler constructs a handler wired to the provided catalog service.
func NewPublishKeysHandler(service catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishKeysCommand]) *PublishKeysHandler {
	exec := func(ctx context.Context, msg PublishKeysCommand) error {
		_, err := service.Publish(ctx, catalog.PublishRequest{
			Namespace:   msg.Namespace,
			Keys:        msg.Keys,
			PublishedBy: msg.PublishedBy,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishKeysCommand]{
		commands.WithLogger[PublishKeysCommand](logger),
		commands.WithOperation[PublishKeysCommand]("catalog.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishKeysHandler{
		inner: commands.NewHandler[PublishKeysCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishKeysCommand].Execute.
func (h *PublishKeysHandler) Execute(ctx context.Context, msg PublishKeysCommand) error {
	return h.inner.Execute(ctx, msg)
}
