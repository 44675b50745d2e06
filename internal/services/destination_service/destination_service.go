package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/lib/slug"
	"milesalone/internal/repository"
	"milesalone/internal/storage"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
)

// defaultRating is 4.5 stars stored in tenths.
const defaultRating = 45

type DestinationService struct {
	log  *slog.Logger
	repo repository.DestinationRepository
}

func NewDestinationService(log *slog.Logger, repo repository.DestinationRepository) *DestinationService {
	return &DestinationService{log: log, repo: repo}
}

func (s *DestinationService) CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error) {
	const op = "destination_service.CreateDestination"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating destination")

	now := time.Now().UTC()
	dest := models.Destination{
		ID:                  uuid.New(),
		Name:                req.Name,
		Slug:                req.Slug,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		Region:              req.Region,
		State:               req.State,
		Coordinates:         *req.Coordinates,
		FeaturedImage:       req.FeaturedImage,
		BestTimeToVisit:     req.BestTimeToVisit,
		RecommendedStay:     req.RecommendedStay,
		BudgetRange:         req.BudgetRange,
		Highlights:          req.Highlights,
		Activities:          req.Activities,
		Rating:              defaultRating,
		Difficulty:          models.DifficultyModerate,
		RelatedGalleryID:    req.RelatedGalleryID,
		RelatedBlogPosts:    req.RelatedBlogPosts,
		IsCurrentLocation:   false,
		IsFeatured:          false,
		IsVisible:           true,
		InstagramPostURL:    req.InstagramPostURL,
		TwitterPostURL:      req.TwitterPostURL,
		FacebookPostURL:     req.FacebookPostURL,
		YoutubeVideoURL:     req.YoutubeVideoURL,
		SocialMediaHashtags: req.SocialMediaHashtags,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if req.Rating != nil {
		dest.Rating = *req.Rating
	}
	if req.Difficulty != nil {
		dest.Difficulty = *req.Difficulty
	}
	if req.IsCurrentLocation != nil {
		dest.IsCurrentLocation = *req.IsCurrentLocation
	}
	if req.IsFeatured != nil {
		dest.IsFeatured = *req.IsFeatured
	}
	if req.IsVisible != nil {
		dest.IsVisible = *req.IsVisible
	}
	if dest.Slug == "" {
		dest.Slug = slug.Make(dest.Name)
		log.Debug("generated slug", slog.String("slug", dest.Slug))
	}
	if dest.Highlights == nil {
		dest.Highlights = models.StringList{}
	}
	if dest.Activities == nil {
		dest.Activities = models.StringList{}
	}
	if dest.RelatedBlogPosts == nil {
		dest.RelatedBlogPosts = models.StringList{}
	}
	if dest.SocialMediaHashtags == nil {
		dest.SocialMediaHashtags = models.StringList{}
	}

	id, err := s.repo.SaveDestination(ctx, dest)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlug) {
			log.Warn("slug conflict, generating unique slug", slog.String("slug", dest.Slug))
			dest.Slug = slug.MakeUnique(dest.Slug)
			id, err = s.repo.SaveDestination(ctx, dest)
			if err != nil {
				log.Error("failed to create destination after slug conflict", sl.Err(err))
				return nil, fmt.Errorf("failed to create destination: %w", err)
			}
		} else {
			log.Error("failed to create destination", sl.Err(err))
			return nil, fmt.Errorf("failed to create destination: %w", err)
		}
	}

	log.Info("destination created", slog.String("destination_id", id.String()))
	return s.repo.GetDestinationByID(ctx, id)
}

func (s *DestinationService) UpdateDestination(ctx context.Context, destID uuid.UUID, req dto.UpdateDestinationRequest) (*models.Destination, error) {
	const op = "destination_service.UpdateDestination"
	log := s.log.With(slog.String("op", op), slog.String("destination_id", destID.String()))

	log.Info("updating destination")

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DetailedDescription != nil {
		updates["detailed_description"] = *req.DetailedDescription
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Coordinates != nil {
		updates["coordinates"] = *req.Coordinates
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}
	if req.BestTimeToVisit != nil {
		updates["best_time_to_visit"] = *req.BestTimeToVisit
	}
	if req.RecommendedStay != nil {
		updates["recommended_stay"] = *req.RecommendedStay
	}
	if req.BudgetRange != nil {
		updates["budget_range"] = *req.BudgetRange
	}
	if req.Highlights != nil {
		updates["highlights"] = *req.Highlights
	}
	if req.Activities != nil {
		updates["activities"] = *req.Activities
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.RelatedGalleryID != nil {
		updates["related_gallery_id"] = *req.RelatedGalleryID
	}
	if req.RelatedBlogPosts != nil {
		updates["related_blog_posts"] = *req.RelatedBlogPosts
	}
	if req.IsCurrentLocation != nil {
		updates["is_current_location"] = *req.IsCurrentLocation
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if req.InstagramPostURL != nil {
		updates["instagram_post_url"] = *req.InstagramPostURL
	}
	if req.TwitterPostURL != nil {
		updates["twitter_post_url"] = *req.TwitterPostURL
	}
	if req.FacebookPostURL != nil {
		updates["facebook_post_url"] = *req.FacebookPostURL
	}
	if req.YoutubeVideoURL != nil {
		updates["youtube_video_url"] = *req.YoutubeVideoURL
	}
	if req.SocialMediaHashtags != nil {
		updates["social_media_hashtags"] = *req.SocialMediaHashtags
	}

	if slugValue, ok := updates["slug"].(string); ok && slugValue == "" {
		if name, ok := updates["name"].(string); ok {
			updates["slug"] = slug.Make(name)
		} else {
			delete(updates, "slug")
		}
	}

	if err := s.repo.UpdateDestinationFields(ctx, destID, updates); err != nil {
		log.Error("failed to update destination", sl.Err(err))
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}

	log.Info("destination updated")
	return s.repo.GetDestinationByID(ctx, destID)
}

func (s *DestinationService) SetVisibility(ctx context.Context, destID uuid.UUID, visible bool) (*models.Destination, error) {
	const op = "destination_service.SetVisibility"
	log := s.log.With(slog.String("op", op), slog.String("destination_id", destID.String()))

	log.Info("setting destination visibility", slog.Bool("visible", visible))

	err := s.repo.UpdateDestinationFields(ctx, destID, map[string]interface{}{
		"is_visible": visible,
	})
	if err != nil {
		log.Error("failed to set visibility", sl.Err(err))
		return nil, fmt.Errorf("failed to set visibility: %w", err)
	}

	return s.repo.GetDestinationByID(ctx, destID)
}

func (s *DestinationService) DeleteDestination(ctx context.Context, destID uuid.UUID) error {
	const op = "destination_service.DeleteDestination"
	log := s.log.With(slog.String("op", op), slog.String("destination_id", destID.String()))

	log.Info("deleting destination")

	if err := s.repo.DeleteDestination(ctx, destID); err != nil {
		log.Error("failed to delete destination", sl.Err(err))
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	log.Info("destination deleted")
	return nil
}

func (s *DestinationService) GetDestinationBySlug(ctx context.Context, slugValue string, includeHidden bool) (*models.Destination, error) {
	const op = "destination_service.GetDestinationBySlug"
	log := s.log.With(slog.String("op", op), slog.String("slug", slugValue))

	dest, err := s.repo.GetDestinationBySlug(ctx, slugValue, !includeHidden)
	if err != nil {
		log.Error("failed to get destination", sl.Err(err))
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	return dest, nil
}

func (s *DestinationService) ListDestinations(ctx context.Context, category, region string, includeHidden bool) ([]models.Destination, error) {
	const op = "destination_service.ListDestinations"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category", category),
		slog.String("region", region),
	)

	dests, err := s.repo.GetDestinations(ctx, repository.DestinationFilter{
		Category:    category,
		Region:      region,
		OnlyVisible: !includeHidden,
	})
	if err != nil {
		log.Error("failed to list destinations", sl.Err(err))
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	log.Info("destinations listed", slog.Int("count", len(dests)))
	return dests, nil
}
