package dto

type CreateGalleryCollectionRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required"`
	CoverImage  string  `json:"coverImage" validate:"required,url"`
	Location    *string `json:"location,omitempty"`
	YoutubeURL  *string `json:"youtubeUrl,omitempty" validate:"omitempty,url"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}

type UpdateGalleryCollectionRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty" validate:"omitempty,url"`
	Location    *string `json:"location,omitempty"`
	YoutubeURL  *string `json:"youtubeUrl,omitempty" validate:"omitempty,url"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}

type AddGalleryMediaRequest struct {
	Type         string  `json:"type" validate:"required,oneof=photo video youtube embedded_video link"`
	URL          string  `json:"url" validate:"required"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	Title        *string `json:"title,omitempty"`
	Caption      *string `json:"caption,omitempty"`
	EmbedCode    *string `json:"embedCode,omitempty"`
	LinkURL      *string `json:"linkUrl,omitempty" validate:"omitempty,url"`
	SortOrder    int     `json:"sortOrder" validate:"gte=0"`
}
