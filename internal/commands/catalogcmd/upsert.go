package catalogcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/maee-crypto/keephy-translations/internal/catalog"
	"github.com/maee-crypto/keephy-translations/internal/commands"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const upsertKeyMessageType = "i18n.catalog.upsert_key"

// UpsertKeyCommand writes one key across multiple locales in a single request.
// Each locale is applied independently; a failing locale never blocks the rest.
type UpsertKeyCommand struct {
	Namespace string             `json:"namespace"`
	Key       string             `json:"key"`
	Values    map[string]string  `json:"values"`
	Context   *string            `json:"context,omitempty"`
	Variables []catalog.Variable `json:"variables,omitempty"`
	CreatedBy string             `json:"created_by"`
}

// Type implements command.Message.
func (UpsertKeyCommand) Type() string { return upsertKeyMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpsertKeyCommand) Validate() error {
	errs := validation.Errors{}
	if m.Namespace == "" {
		errs["namespace"] = validation.NewError("i18n.catalog.upsert_key.namespace_required", "namespace is required")
	}
	if m.Key == "" {
		errs["key"] = validation.NewError("i18n.catalog.upsert_key.key_required", "key is required")
	}
	if len(m.Values) == 0 {
		errs["values"] = validation.NewError("i18n.catalog.upsert_key.values_required", "at least one locale value is required")
	}
	if m.CreatedBy == "" {
		errs["created_by"] = validation.NewError("i18n.catalog.upsert_key.created_by_required", "created_by is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertKeyHandler writes multi-locale keys via the catalog service using the shared
// command handler foundation.
type UpsertKeyHandler struct {
	inner *commands.Handler[UpsertKeyCommand]
}

// NewUpsertKeyHandler constructs a handler wired to the provided catalog service.
func NewUpsertKeyHandler(service catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpsertKeyCommand]) *UpsertKeyHandler {
	exec := func(ctx context.Context, msg UpsertKeyCommand) error {
		results, err := service.UpsertKey(ctx, catalog.UpsertKeyRequest{
			Namespace: msg.Namespace,
			Key:       msg.Key,
			Values:    msg.Values,
			Context:   msg.Context,
			Variables: msg.Variables,
			CreatedBy: msg.CreatedBy,
		})
		if err != nil {
			return err
		}
		for _, result := range results {
			if result.Err != nil {
				return result.Err
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[UpsertKeyCommand]{
		commands.WithLogger[UpsertKeyCommand](logger),
		commands.WithOperation[UpsertKeyCommand]("catalog.upsert_key"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpsertKeyHandler{
		inner: commands.NewHandler[UpsertKeyCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpsertKeyCommand].Execute.
func (h *UpsertKeyHandler) Execute(ctx context.Context, msg UpsertKeyCommand) error {
	return h.inner.Execute(ctx, msg)
}
