package dto

import (
	"time"

	"milesalone/internal/domain/models"
)

type CreateBlogPostRequest struct {
	Title               string            `json:"title" validate:"required,min=3,max=200"`
	Slug                string            `json:"slug,omitempty"`
	Excerpt             string            `json:"excerpt" validate:"required"`
	Content             string            `json:"content" validate:"required"`
	FeaturedImage       string            `json:"featuredImage" validate:"required,url"`
	Category            string            `json:"category" validate:"required,oneof=adventure culture food people places"`
	Tags                models.StringList `json:"tags,omitempty"`
	ReadingTime         int               `json:"readingTime" validate:"gte=0"`
	IsFeatured          *bool             `json:"isFeatured,omitempty"`
	IsVisible           *bool             `json:"isVisible,omitempty"`
	InstagramPostURL    *string           `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string           `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string           `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string           `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags models.StringList `json:"socialMediaHashtags,omitempty"`
	PublishedAt         *time.Time        `json:"publishedAt,omitempty"`
}

type UpdateBlogPostRequest struct {
	Title               *string            `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Slug                *string            `json:"slug,omitempty"`
	Excerpt             *string            `json:"excerpt,omitempty"`
	Content             *string            `json:"content,omitempty"`
	FeaturedImage       *string            `json:"featuredImage,omitempty" validate:"omitempty,url"`
	Category            *string            `json:"category,omitempty" validate:"omitempty,oneof=adventure culture food people places"`
	Tags                *models.StringList `json:"tags,omitempty"`
	ReadingTime         *int               `json:"readingTime,omitempty" validate:"omitempty,gte=0"`
	IsFeatured          *bool              `json:"isFeatured,omitempty"`
	IsVisible           *bool              `json:"isVisible,omitempty"`
	InstagramPostURL    *string            `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string            `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string            `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string            `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags *models.StringList `json:"socialMediaHashtags,omitempty"`
	PublishedAt         *time.Time         `json:"publishedAt,omitempty"`
}

type SetVisibilityRequest struct {
	IsVisible bool `json:"isVisible"`
}
