package dto

import (
	"milesalone/internal/domain/models"

	"github.com/google/uuid"
)

type CreateDestinationRequest struct {
	Name                string              `json:"name" validate:"required,min=2,max=200"`
	Slug                string              `json:"slug,omitempty"`
	Description         string              `json:"description" validate:"required"`
	DetailedDescription string              `json:"detailedDescription" validate:"required"`
	Category            string              `json:"category" validate:"required"`
	Region              string              `json:"region" validate:"required"`
	State               string              `json:"state" validate:"required"`
	Coordinates         *models.Coordinates `json:"coordinates" validate:"required"`
	FeaturedImage       string              `json:"featuredImage" validate:"required,url"`
	BestTimeToVisit     string              `json:"bestTimeToVisit" validate:"required"`
	RecommendedStay     string              `json:"recommendedStay" validate:"required"`
	BudgetRange         string              `json:"budgetRange" validate:"required"`
	Highlights          models.StringList   `json:"highlights,omitempty"`
	Activities          models.StringList   `json:"activities,omitempty"`
	Rating              *int                `json:"rating,omitempty" validate:"omitempty,gte=0,lte=50"`
	Difficulty          *string             `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Moderate Challenging"`
	RelatedGalleryID    *uuid.UUID          `json:"relatedGalleryId,omitempty"`
	RelatedBlogPosts    models.StringList   `json:"relatedBlogPosts,omitempty"`
	IsCurrentLocation   *bool               `json:"isCurrentLocation,omitempty"`
	IsFeatured          *bool               `json:"isFeatured,omitempty"`
	IsVisible           *bool               `json:"isVisible,omitempty"`
	InstagramPostURL    *string             `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string             `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string             `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string             `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags models.StringList   `json:"socialMediaHashtags,omitempty"`
}

type UpdateDestinationRequest struct {
	Name                *string             `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Slug                *string             `json:"slug,omitempty"`
	Description         *string             `json:"description,omitempty"`
	DetailedDescription *string             `json:"detailedDescription,omitempty"`
	Category            *string             `json:"category,omitempty"`
	Region              *string             `json:"region,omitempty"`
	State               *string             `json:"state,omitempty"`
	Coordinates         *models.Coordinates `json:"coordinates,omitempty"`
	FeaturedImage       *string             `json:"featuredImage,omitempty" validate:"omitempty,url"`
	BestTimeToVisit     *string             `json:"bestTimeToVisit,omitempty"`
	RecommendedStay     *string             `json:"recommendedStay,omitempty"`
	BudgetRange         *string             `json:"budgetRange,omitempty"`
	Highlights          *models.StringList  `json:"highlights,omitempty"`
	Activities          *models.StringList  `json:"activities,omitempty"`
	Rating              *int                `json:"rating,omitempty" validate:"omitempty,gte=0,lte=50"`
	Difficulty          *string             `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Moderate Challenging"`
	RelatedGalleryID    *uuid.UUID          `json:"relatedGalleryId,omitempty"`
	RelatedBlogPosts    *models.StringList  `json:"relatedBlogPosts,omitempty"`
	IsCurrentLocation   *bool               `json:"isCurrentLocation,omitempty"`
	IsFeatured          *bool               `json:"isFeatured,omitempty"`
	IsVisible           *bool               `json:"isVisible,omitempty"`
	InstagramPostURL    *string             `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string             `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string             `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string             `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags *models.StringList  `json:"socialMediaHashtags,omitempty"`
}
