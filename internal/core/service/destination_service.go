package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skytrails/travel-platform/internal/api/metrics"
	"github.com/skytrails/travel-platform/internal/core/domain"
	"github.com/skytrails/travel-platform/internal/core/ports"
)

// DestinationService exposes the catalog. It performs no authorization of
// its own: callers reach it only through the auth and role middleware.
type DestinationService struct {
	repo   ports.DestinationRepository
	logger zerolog.Logger
}

func NewDestinationService(repo ports.DestinationRepository, logger zerolog.Logger) *DestinationService {
	return &DestinationService{repo: repo, logger: logger}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.repo.List(ctx)
}

func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) error {
	if err := s.repo.Insert(ctx, dest); err != nil {
		return err
	}
	metrics.DestinationWritesTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("destination_id", dest.ID).Str("name", dest.Name).Msg("destination created")
	return nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.DestinationWritesTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("destination_id", id).Msg("destination deleted")
	return nil
}
