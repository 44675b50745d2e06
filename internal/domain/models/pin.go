package models

import (
	"time"

	"github.com/google/uuid"
)

type PinType string

const (
	PinTypeVisited  PinType = "visited"
	PinTypeCurrent  PinType = "current"
	PinTypePlanned  PinType = "planned"
	PinTypeFavorite PinType = "favorite"
)

// DefaultPinColor is the brand orange used when a pin carries no color.
const DefaultPinColor = "#E07A3E"

// TravelPin rating is whole stars, 0-5.
type TravelPin struct {
	ID                  uuid.UUID   `db:"id" json:"id"`
	Name                string      `db:"name" json:"name"`
	Description         *string     `db:"description" json:"description"`
	Coordinates         Coordinates `db:"coordinates" json:"coordinates"`
	Country             string      `db:"country" json:"country"`
	City                *string     `db:"city" json:"city"`
	VisitedDate         *time.Time  `db:"visited_date" json:"visitedDate"`
	PinType             PinType     `db:"pin_type" json:"pinType"`
	PinColor            string      `db:"pin_color" json:"pinColor"`
	Images              StringList  `db:"images" json:"images"`
	Tags                StringList  `db:"tags" json:"tags"`
	Rating              int         `db:"rating" json:"rating"`
	Notes               *string     `db:"notes" json:"notes"`
	IsVisible           bool        `db:"is_visible" json:"isVisible"`
	InstagramPostURL    *string     `db:"instagram_post_url" json:"instagramPostUrl"`
	TwitterPostURL      *string     `db:"twitter_post_url" json:"twitterPostUrl"`
	FacebookPostURL     *string     `db:"facebook_post_url" json:"facebookPostUrl"`
	YoutubeVideoURL     *string     `db:"youtube_video_url" json:"youtubeVideoUrl"`
	SocialMediaHashtags StringList  `db:"social_media_hashtags" json:"socialMediaHashtags"`
	CreatedAt           time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time   `db:"updated_at" json:"updatedAt"`
}
