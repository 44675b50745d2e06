package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/repository"
	"milesalone/internal/storage"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlogRepository) UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, postID, updates)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteBlogPost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogRepository) GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPostBySlug(ctx context.Context, slug string, onlyVisible bool) (*models.BlogPost, error) {
	args := m.Called(ctx, slug, onlyVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPosts(ctx context.Context, filter repository.BlogFilter) ([]models.BlogPost, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) CountBlogPosts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestBlogService_CreatePost(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	testUUID := uuid.MustParse("b3c87987-ba25-4c7b-8070-f74ef402fe7c")
	mockPost := &models.BlogPost{
		ID:            testUUID,
		Title:         "Dal Lake at Dawn",
		Slug:          "dal-lake-at-dawn",
		Excerpt:       "First morning on the water",
		Content:       "The shikara glides out before sunrise...",
		FeaturedImage: "https://example.com/dal-lake.jpg",
		Category:      models.BlogCategoryPlaces,
		IsVisible:     true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	tests := []struct {
		name        string
		req         dto.CreateBlogPostRequest
		mockSetup   func(m *MockBlogRepository)
		wantError   bool
		expectedErr string
	}{
		{
			name: "successful creation with auto slug",
			req: dto.CreateBlogPostRequest{
				Title:         "Dal Lake at Dawn",
				Excerpt:       "First morning on the water",
				Content:       "The shikara glides out before sunrise...",
				FeaturedImage: "https://example.com/dal-lake.jpg",
				Category:      models.BlogCategoryPlaces,
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("SaveBlogPost", ctx, mock.MatchedBy(func(post models.BlogPost) bool {
					return post.Slug == "dal-lake-at-dawn" && post.IsVisible
				})).Return(testUUID, nil).Once()

				m.On("GetBlogPostByID", ctx, testUUID).
					Return(mockPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "slug conflict retried with unique suffix",
			req: dto.CreateBlogPostRequest{
				Title:         "Dal Lake at Dawn",
				Excerpt:       "First morning on the water",
				Content:       "The shikara glides out before sunrise...",
				FeaturedImage: "https://example.com/dal-lake.jpg",
				Category:      models.BlogCategoryPlaces,
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("SaveBlogPost", ctx, mock.MatchedBy(func(post models.BlogPost) bool {
					return post.Slug == "dal-lake-at-dawn"
				})).Return(uuid.Nil, storage.ErrDuplicateSlug).Once()

				m.On("SaveBlogPost", ctx, mock.MatchedBy(func(post models.BlogPost) bool {
					return strings.HasPrefix(post.Slug, "dal-lake-at-dawn-")
				})).Return(testUUID, nil).Once()

				m.On("GetBlogPostByID", ctx, testUUID).
					Return(mockPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "repository error",
			req: dto.CreateBlogPostRequest{
				Title:         "Dal Lake at Dawn",
				Excerpt:       "First morning on the water",
				Content:       "The shikara glides out before sunrise...",
				FeaturedImage: "https://example.com/dal-lake.jpg",
				Category:      models.BlogCategoryPlaces,
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("SaveBlogPost", ctx, mock.AnythingOfType("models.BlogPost")).
					Return(uuid.Nil, errors.New("db error")).Once()
			},
			wantError:   true,
			expectedErr: "failed to create post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlogRepository)
			service := NewBlogService(log, mockRepo)
			tt.mockSetup(mockRepo)

			resp, err := service.CreatePost(ctx, tt.req)

			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, resp)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBlogService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	postID := uuid.New()
	existingPost := &models.BlogPost{
		ID:        postID,
		Title:     "Existing Post",
		Slug:      "existing-post",
		IsVisible: true,
		CreatedAt: time.Now().Add(-24 * time.Hour),
		UpdatedAt: time.Now().Add(-24 * time.Hour),
	}

	tests := []struct {
		name        string
		req         dto.UpdateBlogPostRequest
		mockSetup   func(m *MockBlogRepository)
		wantError   bool
		expectedErr string
	}{
		{
			name: "successful title update",
			req: dto.UpdateBlogPostRequest{
				Title: stringPtr("Updated Title"),
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("UpdateBlogPostFields", ctx, postID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					return updates["title"] == "Updated Title"
				})).Return(nil).Once()
				m.On("GetBlogPostByID", ctx, postID).
					Return(existingPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "empty slug regenerated from title",
			req: dto.UpdateBlogPostRequest{
				Title: stringPtr("New Title"),
				Slug:  stringPtr(""),
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("UpdateBlogPostFields", ctx, postID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					return updates["slug"] == "new-title"
				})).Return(nil).Once()
				m.On("GetBlogPostByID", ctx, postID).
					Return(existingPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "empty slug without title is dropped",
			req: dto.UpdateBlogPostRequest{
				Slug: stringPtr(""),
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("UpdateBlogPostFields", ctx, postID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					_, hasSlug := updates["slug"]
					return !hasSlug
				})).Return(nil).Once()
				m.On("GetBlogPostByID", ctx, postID).
					Return(existingPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "empty request still refreshes the row",
			req:  dto.UpdateBlogPostRequest{},
			mockSetup: func(m *MockBlogRepository) {
				m.On("UpdateBlogPostFields", ctx, postID, map[string]interface{}{}).
					Return(nil).Once()
				m.On("GetBlogPostByID", ctx, postID).
					Return(existingPost, nil).Once()
			},
			wantError: false,
		},
		{
			name: "repository update error",
			req: dto.UpdateBlogPostRequest{
				Title: stringPtr("Updated Title"),
			},
			mockSetup: func(m *MockBlogRepository) {
				m.On("UpdateBlogPostFields", ctx, postID, mock.Anything).
					Return(errors.New("update error")).Once()
			},
			wantError:   true,
			expectedErr: "failed to update post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlogRepository)
			service := NewBlogService(log, mockRepo)
			tt.mockSetup(mockRepo)

			resp, err := service.UpdatePost(ctx, postID, tt.req)

			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, resp)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBlogService_SetVisibility(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	postID := uuid.New()
	hiddenPost := &models.BlogPost{ID: postID, Title: "Post", IsVisible: false}

	t.Run("hide post", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("UpdateBlogPostFields", ctx, postID, map[string]interface{}{"is_visible": false}).
			Return(nil).Once()
		mockRepo.On("GetBlogPostByID", ctx, postID).
			Return(hiddenPost, nil).Once()

		resp, err := service.SetVisibility(ctx, postID, false)
		assert.NoError(t, err)
		assert.False(t, resp.IsVisible)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("UpdateBlogPostFields", ctx, postID, mock.Anything).
			Return(errors.New("update error")).Once()

		_, err := service.SetVisibility(ctx, postID, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set visibility")
		mockRepo.AssertExpectations(t)
	})
}

func TestBlogService_GetPostBySlug(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	post := &models.BlogPost{ID: uuid.New(), Title: "Post", Slug: "post", IsVisible: true}

	t.Run("public read filters hidden posts", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPostBySlug", ctx, "post", true).
			Return(post, nil).Once()

		resp, err := service.GetPostBySlug(ctx, "post", false)
		assert.NoError(t, err)
		assert.Equal(t, post.ID, resp.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin read includes hidden posts", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPostBySlug", ctx, "post", false).
			Return(post, nil).Once()

		_, err := service.GetPostBySlug(ctx, "post", true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPostBySlug", ctx, "missing", true).
			Return(nil, errors.New("not found")).Once()

		_, err := service.GetPostBySlug(ctx, "missing", false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get post")
		mockRepo.AssertExpectations(t)
	})
}

func TestBlogService_ListPosts(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	posts := []models.BlogPost{
		{ID: uuid.New(), Title: "Post 1", Category: models.BlogCategoryFood, IsVisible: true},
		{ID: uuid.New(), Title: "Post 2", Category: models.BlogCategoryFood, IsVisible: true},
	}

	t.Run("public list by category", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPosts", ctx, repository.BlogFilter{Category: "food", OnlyVisible: true}).
			Return(posts, nil).Once()

		resp, err := service.ListPosts(ctx, "food", false)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin list includes hidden", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPosts", ctx, repository.BlogFilter{Category: "", OnlyVisible: false}).
			Return(posts, nil).Once()

		_, err := service.ListPosts(ctx, "", true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPosts", ctx, mock.Anything).
			Return([]models.BlogPost{}, errors.New("db error")).Once()

		_, err := service.ListPosts(ctx, "", false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list posts")
		mockRepo.AssertExpectations(t)
	})
}

func TestBlogService_FeaturedPosts(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	posts := []models.BlogPost{
		{ID: uuid.New(), Title: "Featured", IsFeatured: true, IsVisible: true},
	}

	t.Run("featured capped at limit", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("GetBlogPosts", ctx, repository.BlogFilter{
			OnlyVisible:  true,
			OnlyFeatured: true,
			Limit:        featuredPostsLimit,
		}).Return(posts, nil).Once()

		resp, err := service.FeaturedPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestBlogService_DeletePost(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()
	postID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("DeleteBlogPost", ctx, postID).Return(nil).Once()

		err := service.DeletePost(ctx, postID)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := NewBlogService(log, mockRepo)

		mockRepo.On("DeleteBlogPost", ctx, postID).
			Return(errors.New("delete error")).Once()

		err := service.DeletePost(ctx, postID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete post")
		mockRepo.AssertExpectations(t)
	})
}

func stringPtr(s string) *string {
	return &s
}
