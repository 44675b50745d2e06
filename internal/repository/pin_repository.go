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

var pinColumns = []string{
	"id", "name", "description", "coordinates", "country", "city",
	"visited_date", "pin_type", "pin_color", "images", "tags",
	"rating", "notes", "is_visible",
	"instagram_post_url", "twitter_post_url", "facebook_post_url",
	"youtube_video_url", "social_media_hashtags",
	"created_at", "updated_at",
}

type PinRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPinRepository(db *pgxpool.Pool) *PinRepo {
	return &PinRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PinRepo) SavePin(ctx context.Context, pin models.TravelPin) (uuid.UUID, error) {
	const op = "repository.pin_repository.SavePin"

	query, args, err := r.sb.Insert("travel_pins").
		Columns(pinColumns...).
		Values(
			pin.ID,
			pin.Name,
			pin.Description,
			pin.Coordinates,
			pin.Country,
			pin.City,
			pin.VisitedDate,
			pin.PinType,
			pin.PinColor,
			pin.Images,
			pin.Tags,
			pin.Rating,
			pin.Notes,
			pin.IsVisible,
			pin.InstagramPostURL,
			pin.TwitterPostURL,
			pin.FacebookPostURL,
			pin.YoutubeVideoURL,
			pin.SocialMediaHashtags,
			pin.CreatedAt,
			pin.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *PinRepo) UpdatePinFields(ctx context.Context, pinID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.pin_repository.UpdatePinFields"

	allowedFields := map[string]bool{
		"name":                  true,
		"description":           true,
		"coordinates":           true,
		"country":               true,
		"city":                  true,
		"visited_date":          true,
		"pin_type":              true,
		"pin_color":             true,
		"images":                true,
		"tags":                  true,
		"rating":                true,
		"notes":                 true,
		"is_visible":            true,
		"instagram_post_url":    true,
		"twitter_post_url":      true,
		"facebook_post_url":     true,
		"youtube_video_url":     true,
		"social_media_hashtags": true,
	}

	// An empty map still refreshes updated_at, keeping the 404 check.
	updateBuilder := r.sb.Update("travel_pins").
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.Where(sq.Eq{"id": pinID})

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

func (r *PinRepo) DeletePin(ctx context.Context, pinID uuid.UUID) error {
	const op = "repository.pin_repository.DeletePin"

	query, args, err := r.sb.Delete("travel_pins").
		Where(sq.Eq{"id": pinID}).
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

func (r *PinRepo) GetPinByID(ctx context.Context, pinID uuid.UUID) (*models.TravelPin, error) {
	const op = "repository.pin_repository.GetPinByID"

	query, args, err := r.sb.Select(pinColumns...).
		From("travel_pins").
		Where(sq.Eq{"id": pinID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pin, err := scanPin(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pin, nil
}

func (r *PinRepo) GetPins(ctx context.Context, onlyVisible bool) ([]models.TravelPin, error) {
	const op = "repository.pin_repository.GetPins"

	queryBuilder := r.sb.Select(pinColumns...).
		From("travel_pins").
		OrderBy("created_at DESC")

	if onlyVisible {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_visible": true})
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

	pins := make([]models.TravelPin, 0)
	for rows.Next() {
		pin, err := scanPin(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pins = append(pins, *pin)
	}

	return pins, nil
}

func (r *PinRepo) CountPins(ctx context.Context) (int, error) {
	const op = "repository.pin_repository.CountPins"

	query, args, err := r.sb.Select("COUNT(*)").From("travel_pins").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func scanPin(row pgx.Row) (*models.TravelPin, error) {
	var pin models.TravelPin
	err := row.Scan(
		&pin.ID,
		&pin.Name,
		&pin.Description,
		&pin.Coordinates,
		&pin.Country,
		&pin.City,
		&pin.VisitedDate,
		&pin.PinType,
		&pin.PinColor,
		&pin.Images,
		&pin.Tags,
		&pin.Rating,
		&pin.Notes,
		&pin.IsVisible,
		&pin.InstagramPostURL,
		&pin.TwitterPostURL,
		&pin.FacebookPostURL,
		&pin.YoutubeVideoURL,
		&pin.SocialMediaHashtags,
		&pin.CreatedAt,
		&pin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pin, nil
}
