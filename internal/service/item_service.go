package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/shopping-service/internal/cache"
	"github.com/spec-kit/shopping-service/internal/domain"
	"github.com/spec-kit/shopping-service/internal/events"
	"github.com/spec-kit/shopping-service/internal/repository"
	apperrors "github.com/spec-kit/shopping-service/pkg/util"
)

// ItemCache caches item listings by search query. The key returned by Lookup
// pins the cache version observed before the database read.
type ItemCache interface {
	Lookup(ctx context.Context, query string) (string, []domain.Item, error)
	Store(ctx context.Context, key string, items []domain.Item) error
}

// ItemService manages the shopping catalog.
type ItemService struct {
	items      repository.ItemRepository
	cache      ItemCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewItemService builds the service. cache and dispatcher may be nil.
func NewItemService(items repository.ItemRepository, cache ItemCache, dispatcher events.Dispatcher, logger *zap.Logger) *ItemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{items: items, cache: cache, dispatcher: dispatcher, logger: logger}
}

// List returns all items, or those whose name contains query, newest first.
// Cache failures fall through to the database.
func (s *ItemService) List(ctx context.Context, query string) ([]domain.Item, error) {
	var key string
	if s.cache != nil {
		k, items, err := s.cache.Lookup(ctx, query)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("item cache read failed", zap.Error(err))
		}
		key = k
	}

	var (
		items []domain.Item
		err   error
	)
	if query == "" {
		items, err = s.items.List(ctx)
	} else {
		items, err = s.items.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil && key != "" {
		if err := s.cache.Store(ctx, key, items); err != nil {
			s.logger.Warn("item cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// Create inserts an item and announces it.
func (s *ItemService) Create(ctx context.Context, actorID int32, in domain.NewItem) (*domain.Item, error) {
	item, err := s.items.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventItemCreated, actorID, item.ID, item))
	return item, nil
}

// Delete removes the item with id and returns it.
func (s *ItemService) Delete(ctx context.Context, actorID, id int32) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound(MsgItemNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(MsgItemNotFound)
		}
		return nil, err
	}
	s.publish(ctx, events.New(events.EventItemDeleted, actorID, id, item))
	return item, nil
}

func (s *ItemService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
