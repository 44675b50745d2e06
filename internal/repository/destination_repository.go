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

var destinationColumns = []string{
	"id", "name", "slug", "description", "detailed_description",
	"category", "region", "state", "coordinates", "featured_image",
	"best_time_to_visit", "recommended_stay", "budget_range",
	"highlights", "activities", "rating", "difficulty",
	"related_gallery_id", "related_blog_posts",
	"is_current_location", "is_featured", "is_visible",
	"instagram_post_url", "twitter_post_url", "facebook_post_url",
	"youtube_video_url", "social_media_hashtags",
	"created_at", "updated_at",
}

type DestinationRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewDestinationRepository(db *pgxpool.Pool) *DestinationRepo {
	return &DestinationRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DestinationRepo) SaveDestination(ctx context.Context, dest models.Destination) (uuid.UUID, error) {
	const op = "repository.destination_repository.SaveDestination"

	query, args, err := r.sb.Insert("destinations").
		Columns(destinationColumns...).
		Values(
			dest.ID,
			dest.Name,
			dest.Slug,
			dest.Description,
			dest.DetailedDescription,
			dest.Category,
			dest.Region,
			dest.State,
			dest.Coordinates,
			dest.FeaturedImage,
			dest.BestTimeToVisit,
			dest.RecommendedStay,
			dest.BudgetRange,
			dest.Highlights,
			dest.Activities,
			dest.Rating,
			dest.Difficulty,
			dest.RelatedGalleryID,
			dest.RelatedBlogPosts,
			dest.IsCurrentLocation,
			dest.IsFeatured,
			dest.IsVisible,
			dest.InstagramPostURL,
			dest.TwitterPostURL,
			dest.FacebookPostURL,
			dest.YoutubeVideoURL,
			dest.SocialMediaHashtags,
			dest.CreatedAt,
			dest.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrDuplicateSlug)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *DestinationRepo) UpdateDestinationFields(ctx context.Context, destID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.destination_repository.UpdateDestinationFields"

	allowedFields := map[string]bool{
		"name":                  true,
		"slug":                  true,
		"description":           true,
		"detailed_description":  true,
		"category":              true,
		"region":                true,
		"state":                 true,
		"coordinates":           true,
		"featured_image":        true,
		"best_time_to_visit":    true,
		"recommended_stay":      true,
		"budget_range":          true,
		"highlights":            true,
		"activities":            true,
		"rating":                true,
		"difficulty":            true,
		"related_gallery_id":    true,
		"related_blog_posts":    true,
		"is_current_location":   true,
		"is_featured":           true,
		"is_visible":            true,
		"instagram_post_url":    true,
		"twitter_post_url":      true,
		"facebook_post_url":     true,
		"youtube_video_url":     true,
		"social_media_hashtags": true,
	}

	// An empty map still refreshes updated_at, keeping the 404 check.
	updateBuilder := r.sb.Update("destinations").
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.Where(sq.Eq{"id": destID})

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *DestinationRepo) DeleteDestination(ctx context.Context, destID uuid.UUID) error {
	const op = "repository.destination_repository.DeleteDestination"

	query, args, err := r.sb.Delete("destinations").
		Where(sq.Eq{"id": destID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *DestinationRepo) GetDestinationByID(ctx context.Context, destID uuid.UUID) (*models.Destination, error) {
	const op = "repository.destination_repository.GetDestinationByID"

	return r.getOne(ctx, op, sq.Eq{"id": destID})
}

func (r *DestinationRepo) GetDestinationBySlug(ctx context.Context, slug string, onlyVisible bool) (*models.Destination, error) {
	const op = "repository.destination_repository.GetDestinationBySlug"

	where := sq.And{sq.Eq{"slug": slug}}
	if onlyVisible {
		where = append(where, sq.Eq{"is_visible": true})
	}

	return r.getOne(ctx, op, where)
}

func (r *DestinationRepo) getOne(ctx context.Context, op string, pred interface{}) (*models.Destination, error) {
	query, args, err := r.sb.Select(destinationColumns...).
		From("destinations").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dest, err := scanDestination(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dest, nil
}

// GetDestinations orders alphabetically by name, unlike the other
// listings which are newest-first.
func (r *DestinationRepo) GetDestinations(ctx context.Context, filter DestinationFilter) ([]models.Destination, error) {
	const op = "repository.destination_repository.GetDestinations"

	queryBuilder := r.sb.Select(destinationColumns...).
		From("destinations").
		OrderBy("name ASC")

	if filter.OnlyVisible {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_visible": true})
	}
	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Region != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"region": filter.Region})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	dests := make([]models.Destination, 0)
	for rows.Next() {
		dest, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		dests = append(dests, *dest)
	}

	return dests, nil
}

func (r *DestinationRepo) CountDestinations(ctx context.Context) (int, error) {
	const op = "repository.destination_repository.CountDestinations"

	query, args, err := r.sb.Select("COUNT(*)").From("destinations").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func scanDestination(row pgx.Row) (*models.Destination, error) {
	var dest models.Destination
	err := row.Scan(
		&dest.ID,
		&dest.Name,
		&dest.Slug,
		&dest.Description,
		&dest.DetailedDescription,
		&dest.Category,
		&dest.Region,
		&dest.State,
		&dest.Coordinates,
		&dest.FeaturedImage,
		&dest.BestTimeToVisit,
		&dest.RecommendedStay,
		&dest.BudgetRange,
		&dest.Highlights,
		&dest.Activities,
		&dest.Rating,
		&dest.Difficulty,
		&dest.RelatedGalleryID,
		&dest.RelatedBlogPosts,
		&dest.IsCurrentLocation,
		&dest.IsFeatured,
		&dest.IsVisible,
		&dest.InstagramPostURL,
		&dest.TwitterPostURL,
		&dest.FacebookPostURL,
		&dest.YoutubeVideoURL,
		&dest.SocialMediaHashtags,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}
