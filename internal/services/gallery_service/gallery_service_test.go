package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) SaveCollection(ctx context.Context, collection models.GalleryCollection) (uuid.UUID, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) UpdateCollectionFields(ctx context.Context, collectionID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, collectionID, updates)
	return args.Error(0)
}

func (m *MockGalleryRepository) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockGalleryRepository) GetCollectionByID(ctx context.Context, collectionID uuid.UUID, onlyVisible bool) (*models.GalleryCollection, error) {
	args := m.Called(ctx, collectionID, onlyVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryCollection), args.Error(1)
}

func (m *MockGalleryRepository) GetCollections(ctx context.Context, onlyVisible bool) ([]models.GalleryCollection, error) {
	args := m.Called(ctx, onlyVisible)
	return args.Get(0).([]models.GalleryCollection), args.Error(1)
}

func (m *MockGalleryRepository) CountCollections(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGalleryRepository) AddMedia(ctx context.Context, media models.GalleryMedia) (uuid.UUID, error) {
	args := m.Called(ctx, media)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	args := m.Called(ctx, mediaID)
	return args.Error(0)
}

func (m *MockGalleryRepository) GetMediaByID(ctx context.Context, mediaID uuid.UUID) (*models.GalleryMedia, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryMedia), args.Error(1)
}

func (m *MockGalleryRepository) GetCollectionMedia(ctx context.Context, collectionID uuid.UUID) ([]models.GalleryMedia, error) {
	args := m.Called(ctx, collectionID)
	return args.Get(0).([]models.GalleryMedia), args.Error(1)
}

func TestGalleryService_CreateCollection(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	collectionID := uuid.New()
	saved := &models.GalleryCollection{
		ID:         collectionID,
		Title:      "Kashmir Valley",
		CoverImage: "https://example.com/cover.jpg",
		IsVisible:  true,
		CreatedAt:  time.Now(),
	}

	t.Run("visible by default with zero media", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("SaveCollection", ctx, mock.MatchedBy(func(c models.GalleryCollection) bool {
			return c.IsVisible && c.MediaCount == 0
		})).Return(collectionID, nil).Once()
		mockRepo.On("GetCollectionByID", ctx, collectionID, false).
			Return(saved, nil).Once()

		resp, err := service.CreateCollection(ctx, dto.CreateGalleryCollectionRequest{
			Title:       "Kashmir Valley",
			Description: "Photos from the valley",
			CoverImage:  "https://example.com/cover.jpg",
		})
		assert.NoError(t, err)
		assert.Equal(t, collectionID, resp.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit hidden collection", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		hidden := false
		mockRepo.On("SaveCollection", ctx, mock.MatchedBy(func(c models.GalleryCollection) bool {
			return !c.IsVisible
		})).Return(collectionID, nil).Once()
		mockRepo.On("GetCollectionByID", ctx, collectionID, false).
			Return(saved, nil).Once()

		_, err := service.CreateCollection(ctx, dto.CreateGalleryCollectionRequest{
			Title:       "Kashmir Valley",
			Description: "Photos from the valley",
			CoverImage:  "https://example.com/cover.jpg",
			IsVisible:   &hidden,
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("SaveCollection", ctx, mock.AnythingOfType("models.GalleryCollection")).
			Return(uuid.Nil, errors.New("db error")).Once()

		_, err := service.CreateCollection(ctx, dto.CreateGalleryCollectionRequest{
			Title:       "Kashmir Valley",
			Description: "Photos from the valley",
			CoverImage:  "https://example.com/cover.jpg",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create collection")
		mockRepo.AssertExpectations(t)
	})
}

func TestGalleryService_GetCollection(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	collectionID := uuid.New()
	collection := &models.GalleryCollection{
		ID:         collectionID,
		Title:      "Kashmir Valley",
		MediaCount: 2,
		IsVisible:  true,
	}
	media := []models.GalleryMedia{
		{ID: uuid.New(), CollectionID: collectionID, Type: models.MediaTypePhoto, SortOrder: 0},
		{ID: uuid.New(), CollectionID: collectionID, Type: models.MediaTypeVideo, SortOrder: 1},
	}

	t.Run("collection with media", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("GetCollectionByID", ctx, collectionID, true).
			Return(collection, nil).Once()
		mockRepo.On("GetCollectionMedia", ctx, collectionID).
			Return(media, nil).Once()

		resp, err := service.GetCollection(ctx, collectionID, false)
		assert.NoError(t, err)
		assert.Equal(t, collectionID, resp.ID)
		assert.Len(t, resp.Media, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin read includes hidden collection", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("GetCollectionByID", ctx, collectionID, false).
			Return(collection, nil).Once()
		mockRepo.On("GetCollectionMedia", ctx, collectionID).
			Return(media, nil).Once()

		_, err := service.GetCollection(ctx, collectionID, true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("collection not found", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("GetCollectionByID", ctx, collectionID, true).
			Return(nil, errors.New("not found")).Once()

		_, err := service.GetCollection(ctx, collectionID, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get collection")
		mockRepo.AssertExpectations(t)
	})
}

func TestGalleryService_AddMedia(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	collectionID := uuid.New()
	mediaID := uuid.New()
	saved := &models.GalleryMedia{
		ID:           mediaID,
		CollectionID: collectionID,
		Type:         models.MediaTypePhoto,
		URL:          "https://example.com/photo.jpg",
	}

	t.Run("successful add", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("AddMedia", ctx, mock.MatchedBy(func(m models.GalleryMedia) bool {
			return m.CollectionID == collectionID && m.Type == models.MediaTypePhoto
		})).Return(mediaID, nil).Once()
		mockRepo.On("GetMediaByID", ctx, mediaID).
			Return(saved, nil).Once()

		resp, err := service.AddMedia(ctx, collectionID, dto.AddGalleryMediaRequest{
			Type: "photo",
			URL:  "https://example.com/photo.jpg",
		})
		assert.NoError(t, err)
		assert.Equal(t, mediaID, resp.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("collection missing", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("AddMedia", ctx, mock.AnythingOfType("models.GalleryMedia")).
			Return(uuid.Nil, errors.New("not found")).Once()

		_, err := service.AddMedia(ctx, collectionID, dto.AddGalleryMediaRequest{
			Type: "photo",
			URL:  "https://example.com/photo.jpg",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add media")
		mockRepo.AssertExpectations(t)
	})
}

func TestGalleryService_DeleteMedia(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()
	mediaID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("DeleteMedia", ctx, mediaID).Return(nil).Once()

		err := service.DeleteMedia(ctx, mediaID)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("DeleteMedia", ctx, mediaID).
			Return(errors.New("delete error")).Once()

		err := service.DeleteMedia(ctx, mediaID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete media")
		mockRepo.AssertExpectations(t)
	})
}

func TestGalleryService_ListCollections(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	collections := []models.GalleryCollection{
		{ID: uuid.New(), Title: "Valley", IsVisible: true},
	}

	t.Run("public list", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("GetCollections", ctx, true).
			Return(collections, nil).Once()

		resp, err := service.ListCollections(ctx, false)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockGalleryRepository)
		service := NewGalleryService(log, mockRepo)

		mockRepo.On("GetCollections", ctx, true).
			Return([]models.GalleryCollection{}, errors.New("db error")).Once()

		_, err := service.ListCollections(ctx, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list collections")
		mockRepo.AssertExpectations(t)
	})
}
