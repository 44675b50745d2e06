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

var (
	collectionColumns = []string{
		"id", "title", "description", "cover_image", "media_count",
		"location", "youtube_url", "is_visible", "created_at", "updated_at",
	}
	mediaColumns = []string{
		"id", "collection_id", "type", "url", "thumbnail_url",
		"title", "caption", "embed_code", "link_url", "sort_order", "created_at",
	}
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GalleryRepo) SaveCollection(ctx context.Context, collection models.GalleryCollection) (uuid.UUID, error) {
	const op = "repository.gallery_repository.SaveCollection"

	query, args, err := r.sb.Insert("gallery_collections").
		Columns(collectionColumns...).
		Values(
			collection.ID,
			collection.Title,
			collection.Description,
			collection.CoverImage,
			collection.MediaCount,
			collection.Location,
			collection.YoutubeURL,
			collection.IsVisible,
			collection.CreatedAt,
			collection.UpdatedAt,
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

func (r *GalleryRepo) UpdateCollectionFields(ctx context.Context, collectionID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.gallery_repository.UpdateCollectionFields"

	allowedFields := map[string]bool{
		"title":       true,
		"description": true,
		"cover_image": true,
		"location":    true,
		"youtube_url": true,
		"is_visible":  true,
	}

	// An empty map still refreshes updated_at, keeping the 404 check.
	updateBuilder := r.sb.Update("gallery_collections").
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.Where(sq.Eq{"id": collectionID})

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

// DeleteCollection removes the collection; gallery_media rows go with it
// via the ON DELETE CASCADE foreign key.
func (r *GalleryRepo) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	const op = "repository.gallery_repository.DeleteCollection"

	query, args, err := r.sb.Delete("gallery_collections").
		Where(sq.Eq{"id": collectionID}).
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

func (r *GalleryRepo) GetCollectionByID(ctx context.Context, collectionID uuid.UUID, onlyVisible bool) (*models.GalleryCollection, error) {
	const op = "repository.gallery_repository.GetCollectionByID"

	where := sq.And{sq.Eq{"id": collectionID}}
	if onlyVisible {
		where = append(where, sq.Eq{"is_visible": true})
	}

	query, args, err := r.sb.Select(collectionColumns...).
		From("gallery_collections").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	collection, err := scanCollection(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collection, nil
}

func (r *GalleryRepo) GetCollections(ctx context.Context, onlyVisible bool) ([]models.GalleryCollection, error) {
	const op = "repository.gallery_repository.GetCollections"

	queryBuilder := r.sb.Select(collectionColumns...).
		From("gallery_collections").
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

	collections := make([]models.GalleryCollection, 0)
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		collections = append(collections, *collection)
	}

	return collections, nil
}

func (r *GalleryRepo) CountCollections(ctx context.Context) (int, error) {
	const op = "repository.gallery_repository.CountCollections"

	query, args, err := r.sb.Select("COUNT(*)").From("gallery_collections").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// AddMedia inserts the media row and bumps the owning collection's
// media_count in the same transaction, so the counter never drifts.
func (r *GalleryRepo) AddMedia(ctx context.Context, media models.GalleryMedia) (uuid.UUID, error) {
	const op = "repository.gallery_repository.AddMedia"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert("gallery_media").
		Columns(mediaColumns...).
		Values(
			media.ID,
			media.CollectionID,
			media.Type,
			media.URL,
			media.ThumbnailURL,
			media.Title,
			media.Caption,
			media.EmbedCode,
			media.LinkURL,
			media.SortOrder,
			media.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Update("gallery_collections").
		Set("media_count", sq.Expr("media_count + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": media.CollectionID}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *GalleryRepo) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	const op = "repository.gallery_repository.DeleteMedia"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Delete("gallery_media").
		Where(sq.Eq{"id": mediaID}).
		Suffix("RETURNING collection_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var collectionID uuid.UUID
	if err := tx.QueryRow(ctx, query, args...).Scan(&collectionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Update("gallery_collections").
		Set("media_count", sq.Expr("GREATEST(media_count - 1, 0)")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": collectionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tx.Commit(ctx)
}

func (r *GalleryRepo) GetMediaByID(ctx context.Context, mediaID uuid.UUID) (*models.GalleryMedia, error) {
	const op = "repository.gallery_repository.GetMediaByID"

	query, args, err := r.sb.Select(mediaColumns...).
		From("gallery_media").
		Where(sq.Eq{"id": mediaID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	media, err := scanMedia(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return media, nil
}

func (r *GalleryRepo) GetCollectionMedia(ctx context.Context, collectionID uuid.UUID) ([]models.GalleryMedia, error) {
	const op = "repository.gallery_repository.GetCollectionMedia"

	query, args, err := r.sb.Select(mediaColumns...).
		From("gallery_media").
		Where(sq.Eq{"collection_id": collectionID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.GalleryMedia, 0)
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *media)
	}

	return items, nil
}

func scanCollection(row pgx.Row) (*models.GalleryCollection, error) {
	var collection models.GalleryCollection
	err := row.Scan(
		&collection.ID,
		&collection.Title,
		&collection.Description,
		&collection.CoverImage,
		&collection.MediaCount,
		&collection.Location,
		&collection.YoutubeURL,
		&collection.IsVisible,
		&collection.CreatedAt,
		&collection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func scanMedia(row pgx.Row) (*models.GalleryMedia, error) {
	var media models.GalleryMedia
	err := row.Scan(
		&media.ID,
		&media.CollectionID,
		&media.Type,
		&media.URL,
		&media.ThumbnailURL,
		&media.Title,
		&media.Caption,
		&media.EmbedCode,
		&media.LinkURL,
		&media.SortOrder,
		&media.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &media, nil
}
