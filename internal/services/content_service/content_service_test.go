package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"milesalone/internal/domain/models"
	"milesalone/internal/storage"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetJourney(ctx context.Context) (*models.JourneyTracking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyTracking), args.Error(1)
}

func (m *MockContentRepository) UpsertJourney(ctx context.Context, journey models.JourneyTracking) (*models.JourneyTracking, error) {
	args := m.Called(ctx, journey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JourneyTracking), args.Error(1)
}

func (m *MockContentRepository) GetHomeContent(ctx context.Context) (*models.HomePageContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomePageContent), args.Error(1)
}

func (m *MockContentRepository) UpsertHomeContent(ctx context.Context, content models.HomePageContent) (*models.HomePageContent, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomePageContent), args.Error(1)
}

func TestContentService_GetJourney(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("existing journey", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		journey := &models.JourneyTracking{
			ID:              uuid.New(),
			CurrentLocation: "Srinagar, Kashmir",
			JourneyProgress: 2,
		}
		mockRepo.On("GetJourney", ctx).Return(journey, nil).Once()

		resp, err := service.GetJourney(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Srinagar, Kashmir", resp.CurrentLocation)
		mockRepo.AssertExpectations(t)
	})

	t.Run("never written returns nil without error", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetJourney", ctx).Return(nil, storage.ErrNotFound).Once()

		resp, err := service.GetJourney(ctx)
		assert.NoError(t, err)
		assert.Nil(t, resp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetJourney", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.GetJourney(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get journey")
		mockRepo.AssertExpectations(t)
	})
}

func TestContentService_UpdateJourney(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	location := "Jaipur, Rajasthan"
	progress := 35
	days := 42
	states := 6
	distance := 2300

	fullReq := dto.UpsertJourneyRequest{
		CurrentLocation:    &location,
		CurrentCoordinates: &models.Coordinates{Lat: 26.9124, Lng: 75.7873},
		JourneyProgress:    &progress,
		DaysTraveled:       &days,
		StatesCovered:      &states,
		DistanceCovered:    &distance,
	}

	t.Run("full upsert over stored row", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		stored := &models.JourneyTracking{
			ID:              uuid.New(),
			CurrentLocation: "Srinagar, Kashmir",
			JourneyProgress: 2,
		}
		saved := &models.JourneyTracking{
			ID:              stored.ID,
			CurrentLocation: "Jaipur, Rajasthan",
			JourneyProgress: 35,
		}
		mockRepo.On("GetJourney", ctx).Return(stored, nil).Once()
		mockRepo.On("UpsertJourney", ctx, mock.MatchedBy(func(j models.JourneyTracking) bool {
			return j.CurrentLocation == "Jaipur, Rajasthan" && j.JourneyProgress == 35
		})).Return(saved, nil).Once()

		resp, err := service.UpdateJourney(ctx, fullReq)
		assert.NoError(t, err)
		assert.Equal(t, 35, resp.JourneyProgress)
		mockRepo.AssertExpectations(t)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		storyURL := "https://instagram.com/stories/milesalone/1"
		stored := &models.JourneyTracking{
			ID:                 uuid.New(),
			CurrentLocation:    "Srinagar, Kashmir",
			CurrentCoordinates: models.Coordinates{Lat: 34.0837, Lng: 74.7973},
			JourneyProgress:    2,
			DaysTraveled:       3,
			StatesCovered:      1,
			DistanceCovered:    120,
			InstagramStoryURL:  &storyURL,
		}

		newProgress := 50
		mockRepo.On("GetJourney", ctx).Return(stored, nil).Once()
		mockRepo.On("UpsertJourney", ctx, mock.MatchedBy(func(j models.JourneyTracking) bool {
			return j.JourneyProgress == 50 &&
				j.CurrentLocation == "Srinagar, Kashmir" &&
				j.DaysTraveled == 3 &&
				j.StatesCovered == 1 &&
				j.DistanceCovered == 120 &&
				j.InstagramStoryURL != nil && *j.InstagramStoryURL == storyURL
		})).Return(stored, nil).Once()

		_, err := service.UpdateJourney(ctx, dto.UpsertJourneyRequest{
			JourneyProgress: &newProgress,
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("first write starts from zero row", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetJourney", ctx).Return(nil, storage.ErrNotFound).Once()
		mockRepo.On("UpsertJourney", ctx, mock.MatchedBy(func(j models.JourneyTracking) bool {
			return j.CurrentLocation == "Jaipur, Rajasthan" && j.DaysTraveled == 42
		})).Return(&models.JourneyTracking{CurrentLocation: "Jaipur, Rajasthan"}, nil).Once()

		_, err := service.UpdateJourney(ctx, fullReq)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("read failure aborts update", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetJourney", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.UpdateJourney(ctx, fullReq)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update journey")
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetJourney", ctx).Return(nil, storage.ErrNotFound).Once()
		mockRepo.On("UpsertJourney", ctx, mock.AnythingOfType("models.JourneyTracking")).
			Return(nil, errors.New("db error")).Once()

		_, err := service.UpdateJourney(ctx, fullReq)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update journey")
		mockRepo.AssertExpectations(t)
	})
}

func TestContentService_UpdateHomeContent(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("merges over stored row", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		stored := models.DefaultHomePageContent()
		stored.ID = uuid.New()
		stored.DailyBudget = "₹450"

		newTitle := "New Hero Title"
		mockRepo.On("GetHomeContent", ctx).Return(&stored, nil).Once()
		mockRepo.On("UpsertHomeContent", ctx, mock.MatchedBy(func(c models.HomePageContent) bool {
			return c.HeroTitle == newTitle && c.DailyBudget == "₹450"
		})).Return(&stored, nil).Once()

		_, err := service.UpdateHomeContent(ctx, dto.UpsertHomeContentRequest{
			HeroTitle: &newTitle,
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("first write merges over defaults", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		defaults := models.DefaultHomePageContent()
		budget := "₹600"

		mockRepo.On("GetHomeContent", ctx).Return(nil, storage.ErrNotFound).Once()
		mockRepo.On("UpsertHomeContent", ctx, mock.MatchedBy(func(c models.HomePageContent) bool {
			return c.DailyBudget == budget && c.HeroTitle == defaults.HeroTitle
		})).Return(&defaults, nil).Once()

		_, err := service.UpdateHomeContent(ctx, dto.UpsertHomeContentRequest{
			DailyBudget: &budget,
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("read failure aborts update", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetHomeContent", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.UpdateHomeContent(ctx, dto.UpsertHomeContentRequest{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update home content")
		mockRepo.AssertExpectations(t)
	})
}

func TestContentService_GetHomeContent(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	t.Run("never written returns nil without error", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewContentService(log, mockRepo)

		mockRepo.On("GetHomeContent", ctx).Return(nil, storage.ErrNotFound).Once()

		resp, err := service.GetHomeContent(ctx)
		assert.NoError(t, err)
		assert.Nil(t, resp)
		mockRepo.AssertExpectations(t)
	})
}
