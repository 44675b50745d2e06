package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
)

type PinService struct {
	log  *slog.Logger
	repo repository.PinRepository
}

func NewPinService(log *slog.Logger, repo repository.PinRepository) *PinService {
	return &PinService{log: log, repo: repo}
}

func (s *PinService) CreatePin(ctx context.Context, req dto.CreateTravelPinRequest) (*models.TravelPin, error) {
	const op = "pin_service.CreatePin"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	log.Info("creating travel pin")

	now := time.Now().UTC()
	pin := models.TravelPin{
		ID:                  uuid.New(),
		Name:                req.Name,
		Description:         req.Description,
		Coordinates:         *req.Coordinates,
		Country:             req.Country,
		City:                req.City,
		VisitedDate:         req.VisitedDate,
		PinType:             models.PinTypeVisited,
		PinColor:            models.DefaultPinColor,
		Images:              req.Images,
		Tags:                req.Tags,
		Rating:              0,
		Notes:               req.Notes,
		IsVisible:           true,
		InstagramPostURL:    req.InstagramPostURL,
		TwitterPostURL:      req.TwitterPostURL,
		FacebookPostURL:     req.FacebookPostURL,
		YoutubeVideoURL:     req.YoutubeVideoURL,
		SocialMediaHashtags: req.SocialMediaHashtags,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if req.PinType != nil {
		pin.PinType = models.PinType(*req.PinType)
	}
	if req.PinColor != nil {
		pin.PinColor = *req.PinColor
	}
	if req.Rating != nil {
		pin.Rating = *req.Rating
	}
	if req.IsVisible != nil {
		pin.IsVisible = *req.IsVisible
	}
	if pin.Images == nil {
		pin.Images = models.StringList{}
	}
	if pin.Tags == nil {
		pin.Tags = models.StringList{}
	}
	if pin.SocialMediaHashtags == nil {
		pin.SocialMediaHashtags = models.StringList{}
	}

	id, err := s.repo.SavePin(ctx, pin)
	if err != nil {
		log.Error("failed to create pin", sl.Err(err))
		return nil, fmt.Errorf("failed to create pin: %w", err)
	}

	log.Info("pin created", slog.String("pin_id", id.String()))
	return s.repo.GetPinByID(ctx, id)
}

func (s *PinService) UpdatePin(ctx context.Context, pinID uuid.UUID, req dto.UpdateTravelPinRequest) (*models.TravelPin, error) {
	const op = "pin_service.UpdatePin"
	log := s.log.With(slog.String("op", op), slog.String("pin_id", pinID.String()))

	log.Info("updating travel pin")

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Coordinates != nil {
		updates["coordinates"] = *req.Coordinates
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.VisitedDate != nil {
		updates["visited_date"] = *req.VisitedDate
	}
	if req.PinType != nil {
		updates["pin_type"] = *req.PinType
	}
	if req.PinColor != nil {
		updates["pin_color"] = *req.PinColor
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
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

	if err := s.repo.UpdatePinFields(ctx, pinID, updates); err != nil {
		log.Error("failed to update pin", sl.Err(err))
		return nil, fmt.Errorf("failed to update pin: %w", err)
	}

	log.Info("pin updated")
	return s.repo.GetPinByID(ctx, pinID)
}

func (s *PinService) SetVisibility(ctx context.Context, pinID uuid.UUID, visible bool) (*models.TravelPin, error) {
	const op = "pin_service.SetVisibility"
	log := s.log.With(slog.String("op", op), slog.String("pin_id", pinID.String()))

	log.Info("setting pin visibility", slog.Bool("visible", visible))

	err := s.repo.UpdatePinFields(ctx, pinID, map[string]interface{}{
		"is_visible": visible,
	})
	if err != nil {
		log.Error("failed to set visibility", sl.Err(err))
		return nil, fmt.Errorf("failed to set visibility: %w", err)
	}

	return s.repo.GetPinByID(ctx, pinID)
}

func (s *PinService) DeletePin(ctx context.Context, pinID uuid.UUID) error {
	const op = "pin_service.DeletePin"
	log := s.log.With(slog.String("op", op), slog.String("pin_id", pinID.String()))

	log.Info("deleting travel pin")

	if err := s.repo.DeletePin(ctx, pinID); err != nil {
		log.Error("failed to delete pin", sl.Err(err))
		return fmt.Errorf("failed to delete pin: %w", err)
	}

	log.Info("pin deleted")
	return nil
}

func (s *PinService) ListPins(ctx context.Context, includeHidden bool) ([]models.TravelPin, error) {
	const op = "pin_service.ListPins"
	log := s.log.With(slog.String("op", op))

	pins, err := s.repo.GetPins(ctx, !includeHidden)
	if err != nil {
		log.Error("failed to list pins", sl.Err(err))
		return nil, fmt.Errorf("failed to list pins: %w", err)
	}

	log.Info("pins listed", slog.Int("count", len(pins)))
	return pins, nil
}
