package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypePhoto         MediaType = "photo"
	MediaTypeVideo         MediaType = "video"
	MediaTypeYoutube       MediaType = "youtube"
	MediaTypeEmbeddedVideo MediaType = "embedded_video"
	MediaTypeLink          MediaType = "link"
)

// GalleryCollection groups media items. MediaCount is a denormalized
// counter kept in sync with gallery_media inserts and deletes.
type GalleryCollection struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CoverImage  string    `db:"cover_image" json:"coverImage"`
	MediaCount  int       `db:"media_count" json:"mediaCount"`
	Location    *string   `db:"location" json:"location"`
	YoutubeURL  *string   `db:"youtube_url" json:"youtubeUrl"`
	IsVisible   bool      `db:"is_visible" json:"isVisible"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// GalleryMedia belongs to exactly one collection and is removed with it.
type GalleryMedia struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CollectionID uuid.UUID `db:"collection_id" json:"collectionId"`
	Type         MediaType `db:"type" json:"type"`
	URL          string    `db:"url" json:"url"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnailUrl"`
	Title        *string   `db:"title" json:"title"`
	Caption      *string   `db:"caption" json:"caption"`
	EmbedCode    *string   `db:"embed_code" json:"embedCode"`
	LinkURL      *string   `db:"link_url" json:"linkUrl"`
	SortOrder    int       `db:"sort_order" json:"sortOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type GalleryCollectionWithMedia struct {
	GalleryCollection
	Media []GalleryMedia `json:"media"`
}
