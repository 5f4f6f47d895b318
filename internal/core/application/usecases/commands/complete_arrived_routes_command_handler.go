package commands

import (
	"context"

	"shipping/internal/pkg/metrics"
)

// CompleteArrivedRoutesCommandHandler marks arrived routes as completed in a
// single statement and reports how many changed.
type CompleteArrivedRoutesCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCompleteArrivedRoutesCommandHandler(uowFactory RouteUoWFactory) CompleteArrivedRoutesCommandHandler {
	return CompleteArrivedRoutesCommandHandler{uowFactory: uowFactory}
}

func (h *CompleteArrivedRoutesCommandHandler) Handle(ctx context.Context, cmd CompleteArrivedRoutesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	completed, err := uow.RouteRepository().CompleteArrivedBefore(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.RecordCompletedRoutes(completed)
	return completed, nil
}
