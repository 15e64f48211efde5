package glossarycmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/maee-crypto/keephy-translations/internal/commands"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const recordUsageMessageType = "i18n.glossary.record_usage"

// RecordUsageCommand bumps the usage counter for a tenant's term.
type RecordUsageCommand struct {
	TenantID string `json:"tenant_id"`
	Term     string `json:"term"`
}

// Type implements command.Message.
func (RecordUsageCommand) Type() string { return recordUsageMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m RecordUsageCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantID == "" {
		errs["tenant_id"] = validation.NewError("i18n.glossary.record_usage.tenant_required", "tenant_id is required")
	}
	if m.Term == "" {
		errs["term"] = validation.NewError("i18n.glossary.record_usage.term_required", "term is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordUsageHandler records term usage via the glossary service.
type RecordUsageHandler struct {
	inner *commands.Handler[RecordUsageCommand]
}

// NewRecordUsageHandler constructs a handler wired to the provided glossary service.
func NewRecordUsageHandler(service glossary.Service, logger interfaces.Logger, opts ...commands.HandlerOption[RecordUsageCommand]) *RecordUsageHandler {
	exec := func(ctx context.Context, msg RecordUsageCommand) error {
		_, err := service.RecordUsage(ctx, msg.TenantID, msg.Term)
		return err
	}

	handlerOpts := []commands.HandlerOption[RecordUsageCommand]{
		commands.WithLogger[RecordUsageCommand](logger),
		commands.WithOperation[RecordUsageCommand]("glossary.record_usage"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RecordUsageHandler{
		inner: commands.NewHandler[RecordUsageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RecordUsageCommand].Execute.
func (h *RecordUsageHandler) Execute(ctx context.Context, msg RecordUsageCommand) error {
	return h.inner.Execute(ctx, msg)
}
