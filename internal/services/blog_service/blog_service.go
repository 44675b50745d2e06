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

type BlogService struct {
	log  *slog.Logger
	repo repository.BlogRepository
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository) *BlogService {
	return &BlogService{log: log, repo: repo}
}

const featuredPostsLimit = 3

func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	log.Info("creating blog post")

	now := time.Now().UTC()
	post := models.BlogPost{
		ID:                  uuid.New(),
		Title:               req.Title,
		Slug:                req.Slug,
		Excerpt:             req.Excerpt,
		Content:             req.Content,
		FeaturedImage:       req.FeaturedImage,
		Category:            req.Category,
		Tags:                req.Tags,
		ReadingTime:         req.ReadingTime,
		IsFeatured:          false,
		IsVisible:           true,
		InstagramPostURL:    req.InstagramPostURL,
		TwitterPostURL:      req.TwitterPostURL,
		FacebookPostURL:     req.FacebookPostURL,
		YoutubeVideoURL:     req.YoutubeVideoURL,
		SocialMediaHashtags: req.SocialMediaHashtags,
		PublishedAt:         now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if req.IsFeatured != nil {
		post.IsFeatured = *req.IsFeatured
	}
	if req.IsVisible != nil {
		post.IsVisible = *req.IsVisible
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt.UTC()
	}
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
		log.Debug("generated slug", slog.String("slug", post.Slug))
	}
	if post.Tags == nil {
		post.Tags = models.StringList{}
	}
	if post.SocialMediaHashtags == nil {
		post.SocialMediaHashtags = models.StringList{}
	}

	id, err := s.repo.SaveBlogPost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlug) {
			log.Warn("slug conflict, generating unique slug", slog.String("slug", post.Slug))
			post.Slug = slug.MakeUnique(post.Slug)
			id, err = s.repo.SaveBlogPost(ctx, post)
			if err != nil {
				log.Error("failed to create post after slug conflict", sl.Err(err))
				return nil, fmt.Errorf("failed to create post: %w", err)
			}
		} else {
			log.Error("failed to create post", sl.Err(err))
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
	}

	log.Info("post created", slog.String("post_id", id.String()))
	return s.repo.GetBlogPostByID(ctx, id)
}

func (s *BlogService) UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.UpdatePost"
	log := s.log.With(slog.String("op", op), slog.String("post_id", postID.String()))

	log.Info("updating blog post")

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.ReadingTime != nil {
		updates["reading_time"] = *req.ReadingTime
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
	if req.PublishedAt != nil {
		updates["published_at"] = req.PublishedAt.UTC()
	}

	if slugValue, ok := updates["slug"].(string); ok && slugValue == "" {
		if title, ok := updates["title"].(string); ok {
			updates["slug"] = slug.Make(title)
		} else {
			delete(updates, "slug")
		}
	}

	if err := s.repo.UpdateBlogPostFields(ctx, postID, updates); err != nil {
		log.Error("failed to update post", sl.Err(err))
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	log.Info("post updated")
	return s.repo.GetBlogPostByID(ctx, postID)
}

func (s *BlogService) SetVisibility(ctx context.Context, postID uuid.UUID, visible bool) (*models.BlogPost, error) {
	const op = "blog_service.SetVisibility"
	log := s.log.With(slog.String("op", op), slog.String("post_id", postID.String()))

	log.Info("setting post visibility", slog.Bool("visible", visible))

	err := s.repo.UpdateBlogPostFields(ctx, postID, map[string]interface{}{
		"is_visible": visible,
	})
	if err != nil {
		log.Error("failed to set visibility", sl.Err(err))
		return nil, fmt.Errorf("failed to set visibility: %w", err)
	}

	return s.repo.GetBlogPostByID(ctx, postID)
}

func (s *BlogService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "blog_service.DeletePost"
	log := s.log.With(slog.String("op", op), slog.String("post_id", postID.String()))

	log.Info("deleting blog post")

	if err := s.repo.DeleteBlogPost(ctx, postID); err != nil {
		log.Error("failed to delete post", sl.Err(err))
		return fmt.Errorf("failed to delete post: %w", err)
	}

	log.Info("post deleted")
	return nil
}

func (s *BlogService) GetPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	const op = "blog_service.GetPostByID"
	log := s.log.With(slog.String("op", op), slog.String("post_id", postID.String()))

	post, err := s.repo.GetBlogPostByID(ctx, postID)
	if err != nil {
		log.Error("failed to get post", sl.Err(err))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (s *BlogService) GetPostBySlug(ctx context.Context, slugValue string, includeHidden bool) (*models.BlogPost, error) {
	const op = "blog_service.GetPostBySlug"
	log := s.log.With(slog.String("op", op), slog.String("slug", slugValue))

	post, err := s.repo.GetBlogPostBySlug(ctx, slugValue, !includeHidden)
	if err != nil {
		log.Error("failed to get post by slug", sl.Err(err))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (s *BlogService) ListPosts(ctx context.Context, category string, includeHidden bool) ([]models.BlogPost, error) {
	const op = "blog_service.ListPosts"
	log := s.log.With(slog.String("op", op), slog.String("category", category))

	posts, err := s.repo.GetBlogPosts(ctx, repository.BlogFilter{
		Category:    category,
		OnlyVisible: !includeHidden,
	})
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	log.Info("posts listed", slog.Int("count", len(posts)))
	return posts, nil
}

func (s *BlogService) FeaturedPosts(ctx context.Context) ([]models.BlogPost, error) {
	const op = "blog_service.FeaturedPosts"
	log := s.log.With(slog.String("op", op))

	posts, err := s.repo.GetBlogPosts(ctx, repository.BlogFilter{
		OnlyVisible:  true,
		OnlyFeatured: true,
		Limit:        featuredPostsLimit,
	})
	if err != nil {
		log.Error("failed to list featured posts", sl.Err(err))
		return nil, fmt.Errorf("failed to list featured posts: %w", err)
	}

	return posts, nil
}
