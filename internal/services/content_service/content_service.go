package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/storage"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
)

// ContentService owns the two singleton rows: journey tracking and the
// home page copy.
type ContentService struct {
	log  *slog.Logger
	repo repository.ContentRepository
}

func NewContentService(log *slog.Logger, repo repository.ContentRepository) *ContentService {
	return &ContentService{log: log, repo: repo}
}

// GetJourney returns nil without error when the singleton has never been
// written; transport renders that as an empty object.
func (s *ContentService) GetJourney(ctx context.Context) (*models.JourneyTracking, error) {
	const op = "content_service.GetJourney"
	log := s.log.With(slog.String("op", op))

	journey, err := s.repo.GetJourney(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		log.Error("failed to get journey", sl.Err(err))
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}

	return journey, nil
}

// UpdateJourney merges the request over the stored row, so omitted
// fields keep their values; the first write starts from a zero row.
func (s *ContentService) UpdateJourney(ctx context.Context, req dto.UpsertJourneyRequest) (*models.JourneyTracking, error) {
	const op = "content_service.UpdateJourney"
	log := s.log.With(slog.String("op", op))

	log.Info("updating journey tracking")

	journey, err := s.repo.GetJourney(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get journey", sl.Err(err))
			return nil, fmt.Errorf("failed to update journey: %w", err)
		}
		journey = &models.JourneyTracking{ID: uuid.New()}
	}

	applyJourneyUpdates(journey, req)
	journey.LastUpdated = time.Now().UTC()

	saved, err := s.repo.UpsertJourney(ctx, *journey)
	if err != nil {
		log.Error("failed to upsert journey", sl.Err(err))
		return nil, fmt.Errorf("failed to update journey: %w", err)
	}

	log.Info("journey updated")
	return saved, nil
}

func applyJourneyUpdates(journey *models.JourneyTracking, req dto.UpsertJourneyRequest) {
	if req.CurrentLocation != nil {
		journey.CurrentLocation = *req.CurrentLocation
	}
	if req.CurrentCoordinates != nil {
		journey.CurrentCoordinates = *req.CurrentCoordinates
	}
	if req.JourneyProgress != nil {
		journey.JourneyProgress = *req.JourneyProgress
	}
	if req.DaysTraveled != nil {
		journey.DaysTraveled = *req.DaysTraveled
	}
	if req.StatesCovered != nil {
		journey.StatesCovered = *req.StatesCovered
	}
	if req.DistanceCovered != nil {
		journey.DistanceCovered = *req.DistanceCovered
	}
	if req.InstagramStoryURL != nil {
		journey.InstagramStoryURL = req.InstagramStoryURL
	}
	if req.InstagramReelURL != nil {
		journey.InstagramReelURL = req.InstagramReelURL
	}
	if req.TwitterUpdateURL != nil {
		journey.TwitterUpdateURL = req.TwitterUpdateURL
	}
	if req.YoutubeShortURL != nil {
		journey.YoutubeShortURL = req.YoutubeShortURL
	}
}

func (s *ContentService) GetHomeContent(ctx context.Context) (*models.HomePageContent, error) {
	const op = "content_service.GetHomeContent"
	log := s.log.With(slog.String("op", op))

	content, err := s.repo.GetHomeContent(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		log.Error("failed to get home content", sl.Err(err))
		return nil, fmt.Errorf("failed to get home content: %w", err)
	}

	return content, nil
}

// UpdateHomeContent merges the request over the stored row, or over the
// stock defaults when nothing is stored yet, then upserts the result.
func (s *ContentService) UpdateHomeContent(ctx context.Context, req dto.UpsertHomeContentRequest) (*models.HomePageContent, error) {
	const op = "content_service.UpdateHomeContent"
	log := s.log.With(slog.String("op", op))

	log.Info("updating home page content")

	content, err := s.repo.GetHomeContent(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get home content", sl.Err(err))
			return nil, fmt.Errorf("failed to update home content: %w", err)
		}
		base := models.DefaultHomePageContent()
		content = &base
	}

	applyHomeContentUpdates(content, req)
	content.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.UpsertHomeContent(ctx, *content)
	if err != nil {
		log.Error("failed to upsert home content", sl.Err(err))
		return nil, fmt.Errorf("failed to update home content: %w", err)
	}

	log.Info("home content updated")
	return saved, nil
}

func applyHomeContentUpdates(content *models.HomePageContent, req dto.UpsertHomeContentRequest) {
	if req.HeroTitle != nil {
		content.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		content.HeroSubtitle = *req.HeroSubtitle
	}
	if req.HeroBackgroundImage != nil {
		content.HeroBackgroundImage = *req.HeroBackgroundImage
	}
	if req.ExploreButtonText != nil {
		content.ExploreButtonText = *req.ExploreButtonText
	}
	if req.DiariesButtonText != nil {
		content.DiariesButtonText = *req.DiariesButtonText
	}
	if req.DailyBudget != nil {
		content.DailyBudget = *req.DailyBudget
	}
	if req.MapSectionTitle != nil {
		content.MapSectionTitle = *req.MapSectionTitle
	}
	if req.MapSectionDescription != nil {
		content.MapSectionDescription = *req.MapSectionDescription
	}
	if req.StoriesSectionTitle != nil {
		content.StoriesSectionTitle = *req.StoriesSectionTitle
	}
	if req.StoriesSectionDescription != nil {
		content.StoriesSectionDescription = *req.StoriesSectionDescription
	}
	if req.GuidesSectionTitle != nil {
		content.GuidesSectionTitle = *req.GuidesSectionTitle
	}
	if req.GuidesSectionDescription != nil {
		content.GuidesSectionDescription = *req.GuidesSectionDescription
	}
	if req.GallerySectionTitle != nil {
		content.GallerySectionTitle = *req.GallerySectionTitle
	}
	if req.GallerySectionDescription != nil {
		content.GallerySectionDescription = *req.GallerySectionDescription
	}
	if req.NewsletterTitle != nil {
		content.NewsletterTitle = *req.NewsletterTitle
	}
	if req.NewsletterDescription != nil {
		content.NewsletterDescription = *req.NewsletterDescription
	}
	if req.NewsletterSubscribersCount != nil {
		content.NewsletterSubscribersCount = *req.NewsletterSubscribersCount
	}
	if req.WeeklyStoriesCount != nil {
		content.WeeklyStoriesCount = *req.WeeklyStoriesCount
	}
	if req.ReadRate != nil {
		content.ReadRate = *req.ReadRate
	}
	if req.JourneyStartDate != nil {
		content.JourneyStartDate = *req.JourneyStartDate
	}
	if req.JourneyStartLocation != nil {
		content.JourneyStartLocation = *req.JourneyStartLocation
	}
	if req.JourneyStartDescription != nil {
		content.JourneyStartDescription = *req.JourneyStartDescription
	}
	if req.FinalDestination != nil {
		content.FinalDestination = *req.FinalDestination
	}
	if req.FinalDestinationDescription != nil {
		content.FinalDestinationDescription = *req.FinalDestinationDescription
	}
}
