package dto

import (
	"time"

	"milesalone/internal/domain/models"
)

type CreateTravelPinRequest struct {
	Name                string              `json:"name" validate:"required,min=2,max=200"`
	Description         *string             `json:"description,omitempty"`
	Coordinates         *models.Coordinates `json:"coordinates" validate:"required"`
	Country             string              `json:"country" validate:"required"`
	City                *string             `json:"city,omitempty"`
	VisitedDate         *time.Time          `json:"visitedDate,omitempty"`
	PinType             *string             `json:"pinType,omitempty" validate:"omitempty,oneof=visited current planned favorite"`
	PinColor            *string             `json:"pinColor,omitempty" validate:"omitempty,hexcolor"`
	Images              models.StringList   `json:"images,omitempty"`
	Tags                models.StringList   `json:"tags,omitempty"`
	Rating              *int                `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Notes               *string             `json:"notes,omitempty"`
	IsVisible           *bool               `json:"isVisible,omitempty"`
	InstagramPostURL    *string             `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string             `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string             `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string             `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags models.StringList   `json:"socialMediaHashtags,omitempty"`
}

type UpdateTravelPinRequest struct {
	Name                *string             `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description         *string             `json:"description,omitempty"`
	Coordinates         *models.Coordinates `json:"coordinates,omitempty"`
	Country             *string             `json:"country,omitempty"`
	City                *string             `json:"city,omitempty"`
	VisitedDate         *time.Time          `json:"visitedDate,omitempty"`
	PinType             *string             `json:"pinType,omitempty" validate:"omitempty,oneof=visited current planned favorite"`
	PinColor            *string             `json:"pinColor,omitempty" validate:"omitempty,hexcolor"`
	Images              *models.StringList  `json:"images,omitempty"`
	Tags                *models.StringList  `json:"tags,omitempty"`
	Rating              *int                `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Notes               *string             `json:"notes,omitempty"`
	IsVisible           *bool               `json:"isVisible,omitempty"`
	InstagramPostURL    *string             `json:"instagramPostUrl,omitempty" validate:"omitempty,url"`
	TwitterPostURL      *string             `json:"twitterPostUrl,omitempty" validate:"omitempty,url"`
	FacebookPostURL     *string             `json:"facebookPostUrl,omitempty" validate:"omitempty,url"`
	YoutubeVideoURL     *string             `json:"youtubeVideoUrl,omitempty" validate:"omitempty,url"`
	SocialMediaHashtags *models.StringList  `json:"socialMediaHashtags,omitempty"`
}
