package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var blogPostColumns = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"category", "tags", "reading_time", "is_featured", "is_visible",
	"instagram_post_url", "twitter_post_url", "facebook_post_url",
	"youtube_video_url", "social_media_hashtags",
	"published_at", "created_at", "updated_at",
}

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (b *BlogRepo) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.SaveBlogPost"

	query, args, err := b.sb.Insert("blog_posts").
		Columns(blogPostColumns...).
		Values(
			post.ID,
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.FeaturedImage,
			post.Category,
			post.Tags,
			post.ReadingTime,
			post.IsFeatured,
			post.IsVisible,
			post.InstagramPostURL,
			post.TwitterPostURL,
			post.FacebookPostURL,
			post.YoutubeVideoURL,
			post.SocialMediaHashtags,
			post.PublishedAt,
			post.CreatedAt,
			post.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = b.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrDuplicateSlug)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (b *BlogRepo) UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.blog_repository.UpdateBlogPostFields"

	allowedFields := map[string]bool{
		"title":                 true,
		"slug":                  true,
		"excerpt":               true,
		"content":               true,
		"featured_image":        true,
		"category":              true,
		"tags":                  true,
		"reading_time":          true,
		"is_featured":           true,
		"is_visible":            true,
		"instagram_post_url":    true,
		"twitter_post_url":      true,
		"facebook_post_url":     true,
		"youtube_video_url":     true,
		"social_media_hashtags": true,
		"published_at":          true,
	}

	// An empty map still refreshes updated_at, keeping the 404 check.
	updateBuilder := b.sb.Update("blog_posts").
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.Where(sq.Eq{"id": postID})

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (b *BlogRepo) DeleteBlogPost(ctx context.Context, postID uuid.UUID) error {
	const op = "repository.blog_repository.DeleteBlogPost"

	query, args, err := b.sb.Delete("blog_posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (b *BlogRepo) GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPostByID"

	return b.getOne(ctx, op, sq.Eq{"id": postID})
}

func (b *BlogRepo) GetBlogPostBySlug(ctx context.Context, slug string, onlyVisible bool) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPostBySlug"

	where := sq.And{sq.Eq{"slug": slug}}
	if onlyVisible {
		where = append(where, sq.Eq{"is_visible": true})
	}

	return b.getOne(ctx, op, where)
}

func (b *BlogRepo) getOne(ctx context.Context, op string, pred interface{}) (*models.BlogPost, error) {
	query, args, err := b.sb.Select(blogPostColumns...).
		From("blog_posts").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanBlogPost(b.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (b *BlogRepo) GetBlogPosts(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPosts"

	queryBuilder := b.sb.Select(blogPostColumns...).
		From("blog_posts").
		OrderBy("published_at DESC")

	if filter.OnlyVisible {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_visible": true})
	}
	if filter.OnlyFeatured {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_featured": true})
	}
	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, *post)
	}

	return posts, nil
}

func (b *BlogRepo) CountBlogPosts(ctx context.Context) (int, error) {
	const op = "repository.blog_repository.CountBlogPosts"

	query, args, err := b.sb.Select("COUNT(*)").From("blog_posts").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := b.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		&post.Category,
		&post.Tags,
		&post.ReadingTime,
		&post.IsFeatured,
		&post.IsVisible,
		&post.InstagramPostURL,
		&post.TwitterPostURL,
		&post.FacebookPostURL,
		&post.YoutubeVideoURL,
		&post.SocialMediaHashtags,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
