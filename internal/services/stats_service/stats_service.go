package services

import (
	"context"
	"log/slog"

	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/transport/http/dto"
)

type StatsService struct {
	log          *slog.Logger
	blog         repository.BlogRepository
	destinations repository.DestinationRepository
	gallery      repository.GalleryRepository
	pins         repository.PinRepository
}

func NewStatsService(
	log *slog.Logger,
	blog repository.BlogRepository,
	destinations repository.DestinationRepository,
	gallery repository.GalleryRepository,
	pins repository.PinRepository,
) *StatsService {
	return &StatsService{
		log:          log,
		blog:         blog,
		destinations: destinations,
		gallery:      gallery,
		pins:         pins,
	}
}

// AdminStats never fails: any count error degrades to a zeroed payload
// so the admin dashboard keeps rendering.
func (s *StatsService) AdminStats(ctx context.Context) dto.AdminStatsResponse {
	const op = "stats_service.AdminStats"
	log := s.log.With(slog.String("op", op))

	posts, err := s.blog.CountBlogPosts(ctx)
	if err != nil {
		log.Warn("failed to count posts", sl.Err(err))
		return dto.AdminStatsResponse{}
	}

	dests, err := s.destinations.CountDestinations(ctx)
	if err != nil {
		log.Warn("failed to count destinations", sl.Err(err))
		return dto.AdminStatsResponse{}
	}

	galleries, err := s.gallery.CountCollections(ctx)
	if err != nil {
		log.Warn("failed to count galleries", sl.Err(err))
		return dto.AdminStatsResponse{}
	}

	pins, err := s.pins.CountPins(ctx)
	if err != nil {
		log.Warn("failed to count pins", sl.Err(err))
		return dto.AdminStatsResponse{}
	}

	return dto.AdminStatsResponse{
		TotalPosts:        posts,
		TotalDestinations: dests,
		TotalGalleries:    galleries,
		TotalPins:         pins,
	}
}
