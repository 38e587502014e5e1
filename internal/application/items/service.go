package items

import (
	"context"
	"fmt"

	"github.com/aescanero/kvitems/pkg/domain"
	"github.com/aescanero/kvitems/pkg/ports"
	"go.uber.org/zap"
)

// Service coordinates item reads and writes against the store
type Service struct {
	store   ports.ItemStore
	metrics ports.MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new item service
func NewService(store ports.ItemStore, metrics ports.MetricsCollector, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// PutItem stores value under id, replacing any previous value
func (s *Service) PutItem(ctx context.Context, id int64, value string) (*domain.Item, error) {
	if err := s.store.Upsert(ctx, id, value); err != nil {
		s.metrics.IncDBErrors()
		s.logger.Error("failed to store item",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store item %d: %w", id, err)
	}

	return &domain.Item{ID: id, Value: value}, nil
}

// GetItem returns the item stored under id. found is false when there is none.
func (s *Service) GetItem(ctx context.Context, id int64) (*domain.Item, bool, error) {
	value, found, err := s.store.Get(ctx, id)
	if err != nil {
		s.metrics.IncDBErrors()
		s.logger.Error("failed to get item",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, false, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	if !found {
		return nil, false, nil
	}

	return &domain.Item{ID: id, Value: value}, true, nil
}
