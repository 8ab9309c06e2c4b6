package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/events"
)

// Invalidator drops cached catalog listings.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// StartCatalogWorker registers the handlers that keep the item cache fresh
// and write an audit trail of account changes.
func StartCatalogWorker(dispatcher events.Dispatcher, cache Invalidator, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	invalidate := func(ctx context.Context, e events.Event) error {
		if cache == nil {
			return nil
		}
		if err := cache.Invalidate(ctx); err != nil {
			logger.Warn("item cache invalidation failed", zap.String("event", string(e.Type)), zap.Error(err))
			return err
		}
		return nil
	}
	dispatcher.Subscribe(events.EventItemCreated, invalidate)
	dispatcher.Subscribe(events.EventItemDeleted, invalidate)

	audit := func(_ context.Context, e events.Event) error {
		logger.Info("account change",
			zap.String("event_id", e.ID),
			zap.String("event", string(e.Type)),
			zap.Int32("actor_id", e.ActorID),
			zap.Int32("subject_id", e.SubjectID),
		)
		return nil
	}
	dispatcher.Subscribe(events.EventUserCreated, audit)
	dispatcher.Subscribe(events.EventUserDeleted, audit)
}
