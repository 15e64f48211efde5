package glossarycmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/maee-crypto/keephy-translations/internal/commands"
	"github.com/maee-crypto/keephy-translations/internal/glossary"
	"github.com/maee-crypto/keephy-translations/pkg/interfaces"
)

const createTermMessageType = "i18n.glossary.create_term"

// CreateTermCommand registers a new glossary term for a tenant.
type CreateTermCommand struct {
	TenantID     string                     `json:"tenant_id"`
	Term         string                     `json:"term"`
	Translations []glossary.TermTranslation `json:"translations,omitempty"`
	Category     string                     `json:"category,omitempty"`
	BusinessID   *string                    `json:"business_id,omitempty"`
	CreatedBy    string                     `json:"created_by"`
	Tags         []string                   `json:"tags,omitempty"`
	Notes        *string                    `json:"notes,omitempty"`
}

// Type implements command.Message.
func (CreateTermCommand) Type() string { return createTermMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateTermCommand) Validate() error {
	errs := validation.Errors{}
	if m.TenantID == "" {
		errs["tenant_id"] = validation.NewError("i18n.glossary.create_term.tenant_required", "tenant_id is required")
	}
	if m.Term == "" {
		errs["term"] = validation.NewError("i18n.glossary.create_term.term_required", "term is required")
	}
	if m.CreatedBy == "" {
		errs["created_by"] = validation.NewError("i18n.glossary.create_term.created_by_required", "created_by is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateTermHandler creates glossary terms via the glossary service using the shared
// command handler foundation.
type CreateTermHandler struct {
	inner *commands.Handler[CreateTermCommand]
}

// NewCreateTermHandler constructs a handler wired to the provided glossary service.
func NewCreateTermHandler(service glossary.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateTermCommand]) *CreateTermHandler {
	exec := func(ctx context.Context, msg CreateTermCommand) error {
		_, err := service.CreateTerm(ctx, glossary.CreateTermRequest{
			TenantID:     msg.TenantID,
			Term:         msg.Term,
			Translations: msg.Translations,
			Category:     msg.Category,
			BusinessID:   msg.BusinessID,
			CreatedBy:    msg.CreatedBy,
			Tags:         msg.Tags,
			Notes:        msg.Notes,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateTermCommand]{
		commands.WithLogger[CreateTermCommand](logger),
		commands.WithOperation[CreateTermCommand]("glossary.create_term"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateTermHandler{
		inner: commands.NewHandler[CreateTermCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateTermCommand].Execute.
func (h *CreateTermHandler) Execute(ctx context.Context, msg CreateTermCommand) error {
	return h.inner.Execute(ctx, msg)
}
