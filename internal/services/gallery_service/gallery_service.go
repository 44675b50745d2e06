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

type GalleryService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{log: log, repo: repo}
}

func (s *GalleryService) CreateCollection(ctx context.Context, req dto.CreateGalleryCollectionRequest) (*models.GalleryCollection, error) {
	const op = "gallery_service.CreateCollection"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	log.Info("creating gallery collection")

	now := time.Now().UTC()
	collection := models.GalleryCollection{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		MediaCount:  0,
		Location:    req.Location,
		YoutubeURL:  req.YoutubeURL,
		IsVisible:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.IsVisible != nil {
		collection.IsVisible = *req.IsVisible
	}

	id, err := s.repo.SaveCollection(ctx, collection)
	if err != nil {
		log.Error("failed to create collection", sl.Err(err))
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	log.Info("collection created", slog.String("collection_id", id.String()))
	return s.repo.GetCollectionByID(ctx, id, false)
}

func (s *GalleryService) UpdateCollection(ctx context.Context, collectionID uuid.UUID, req dto.UpdateGalleryCollectionRequest) (*models.GalleryCollection, error) {
	const op = "gallery_service.UpdateCollection"
	log := s.log.With(slog.String("op", op), slog.String("collection_id", collectionID.String()))

	log.Info("updating gallery collection")

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.YoutubeURL != nil {
		updates["youtube_url"] = *req.YoutubeURL
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}

	if err := s.repo.UpdateCollectionFields(ctx, collectionID, updates); err != nil {
		log.Error("failed to update collection", sl.Err(err))
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	log.Info("collection updated")
	return s.repo.GetCollectionByID(ctx, collectionID, false)
}

func (s *GalleryService) SetVisibility(ctx context.Context, collectionID uuid.UUID, visible bool) (*models.GalleryCollection, error) {
	const op = "gallery_service.SetVisibility"
	log := s.log.With(slog.String("op", op), slog.String("collection_id", collectionID.String()))

	log.Info("setting collection visibility", slog.Bool("visible", visible))

	err := s.repo.UpdateCollectionFields(ctx, collectionID, map[string]interface{}{
		"is_visible": visible,
	})
	if err != nil {
		log.Error("failed to set visibility", sl.Err(err))
		return nil, fmt.Errorf("failed to set visibility: %w", err)
	}

	return s.repo.GetCollectionByID(ctx, collectionID, false)
}

func (s *GalleryService) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	const op = "gallery_service.DeleteCollection"
	log := s.log.With(slog.String("op", op), slog.String("collection_id", collectionID.String()))

	log.Info("deleting gallery collection")

	if err := s.repo.DeleteCollection(ctx, collectionID); err != nil {
		log.Error("failed to delete collection", sl.Err(err))
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	log.Info("collection deleted")
	return nil
}

// GetCollection returns the collection with its media embedded, ordered
// by sort_order.
func (s *GalleryService) GetCollection(ctx context.Context, collectionID uuid.UUID, includeHidden bool) (*models.GalleryCollectionWithMedia, error) {
	const op = "gallery_service.GetCollection"
	log := s.log.With(slog.String("op", op), slog.String("collection_id", collectionID.String()))

	collection, err := s.repo.GetCollectionByID(ctx, collectionID, !includeHidden)
	if err != nil {
		log.Error("failed to get collection", sl.Err(err))
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	media, err := s.repo.GetCollectionMedia(ctx, collectionID)
	if err != nil {
		log.Error("failed to get collection media", sl.Err(err))
		return nil, fmt.Errorf("failed to get collection media: %w", err)
	}

	return &models.GalleryCollectionWithMedia{
		GalleryCollection: *collection,
		Media:             media,
	}, nil
}

func (s *GalleryService) ListCollections(ctx context.Context, includeHidden bool) ([]models.GalleryCollection, error) {
	const op = "gallery_service.ListCollections"
	log := s.log.With(slog.String("op", op))

	collections, err := s.repo.GetCollections(ctx, !includeHidden)
	if err != nil {
		log.Error("failed to list collections", sl.Err(err))
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	log.Info("collections listed", slog.Int("count", len(collections)))
	return collections, nil
}

func (s *GalleryService) AddMedia(ctx context.Context, collectionID uuid.UUID, req dto.AddGalleryMediaRequest) (*models.GalleryMedia, error) {
	const op = "gallery_service.AddMedia"
	log := s.log.With(
		slog.String("op", op),
		slog.String("collection_id", collectionID.String()),
		slog.String("type", req.Type),
	)

	log.Info("adding media to collection")

	media := models.GalleryMedia{
		ID:           uuid.New(),
		CollectionID: collectionID,
		Type:         models.MediaType(req.Type),
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Title:        req.Title,
		Caption:      req.Caption,
		EmbedCode:    req.EmbedCode,
		LinkURL:      req.LinkURL,
		SortOrder:    req.SortOrder,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.AddMedia(ctx, media)
	if err != nil {
		log.Error("failed to add media", sl.Err(err))
		return nil, fmt.Errorf("failed to add media: %w", err)
	}

	log.Info("media added", slog.String("media_id", id.String()))
	return s.repo.GetMediaByID(ctx, id)
}

func (s *GalleryService) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	const op = "gallery_service.DeleteMedia"
	log := s.log.With(slog.String("op", op), slog.String("media_id", mediaID.String()))

	log.Info("deleting media")

	if err := s.repo.DeleteMedia(ctx, mediaID); err != nil {
		log.Error("failed to delete media", sl.Err(err))
		return fmt.Errorf("failed to delete media: %w", err)
	}

	log.Info("media deleted")
	return nil
}
