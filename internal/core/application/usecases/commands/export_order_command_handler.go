package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/services"
)

// ExportResult carries the generated export document and the filename the
// caller should save it under. Only the filename embeds the generation
// timestamp; the document body is deterministic.
type ExportResult struct {
	Document string
	Filename string
}

// ExportOrderCommandHandler handles the Validated to Exported transition:
// re-validate, build the XML document, record the export actor and
// timestamp, and commit everything in one transaction. The document itself
// is returned to the caller; delivery is not this handler's concern.
type ExportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.ExportValidator
	builder    services.XMLExportBuilder
}

// NewExportOrderCommandHandler creates a handler for export operations.
func NewExportOrderCommandHandler(uowFactory OrderUoWFactory) ExportOrderCommandHandler {
	return ExportOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewExportValidator(),
		builder:    services.NewXMLExportBuilder(),
	}
}

// Handle processes the export command and returns the document and
// filename. A validation failure or malformed line fails the attempt with
// no state change and no partial document.
func (h *ExportOrderCommandHandler) Handle(ctx context.Context, cmd ExportOrderCommand) (ExportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ExportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ExportResult{}, err
	}

	result, err := h.validator.Validate(aggregate)
	if err != nil {
		return ExportResult{}, err
	}
	if !result.Passed() {
		return ExportResult{}, result.AsError()
	}

	document, err := h.builder.Build(aggregate)
	if err != nil {
		return ExportResult{}, err
	}

	now := time.Now().UTC()
	oldCode := aggregate.Status().Code()
	if err = aggregate.MarkExported(cmd.Actor(), now); err != nil {
		return ExportResult{}, err
	}

	if err = recordStatusChange(ctx, uow, aggregate, cmd.Actor(), "exported to ERP", oldCode, "", now); err != nil {
		return ExportResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return ExportResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		Document: document,
		Filename: h.builder.Filename(aggregate, now),
	}, nil
}
