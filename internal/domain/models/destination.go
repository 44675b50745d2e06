package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
)

// Destination rating is stored in tenths: 0-50 maps to 0.0-5.0 stars.
type Destination struct {
	ID                  uuid.UUID   `db:"id" json:"id"`
	Name                string      `db:"name" json:"name"`
	Slug                string      `db:"slug" json:"slug"`
	Description         string      `db:"description" json:"description"`
	DetailedDescription string      `db:"detailed_description" json:"detailedDescription"`
	Category            string      `db:"category" json:"category"`
	Region              string      `db:"region" json:"region"`
	State               string      `db:"state" json:"state"`
	Coordinates         Coordinates `db:"coordinates" json:"coordinates"`
	FeaturedImage       string      `db:"featured_image" json:"featuredImage"`
	BestTimeToVisit     string      `db:"best_time_to_visit" json:"bestTimeToVisit"`
	RecommendedStay     string      `db:"recommended_stay" json:"recommendedStay"`
	BudgetRange         string      `db:"budget_range" json:"budgetRange"`
	Highlights          StringList  `db:"highlights" json:"highlights"`
	Activities          StringList  `db:"activities" json:"activities"`
	Rating              int         `db:"rating" json:"rating"`
	Difficulty          string      `db:"difficulty" json:"difficulty"`
	RelatedGalleryID    *uuid.UUID  `db:"related_gallery_id" json:"relatedGalleryId"`
	RelatedBlogPosts    StringList  `db:"related_blog_posts" json:"relatedBlogPosts"`
	IsCurrentLocation   bool        `db:"is_current_location" json:"isCurrentLocation"`
	IsFeatured          bool        `db:"is_featured" json:"isFeatured"`
	IsVisible           bool        `db:"is_visible" json:"isVisible"`
	InstagramPostURL    *string     `db:"instagram_post_url" json:"instagramPostUrl"`
	TwitterPostURL      *string     `db:"twitter_post_url" json:"twitterPostUrl"`
	FacebookPostURL     *string     `db:"facebook_post_url" json:"facebookPostUrl"`
	YoutubeVideoURL     *string     `db:"youtube_video_url" json:"youtubeVideoUrl"`
	SocialMediaHashtags StringList  `db:"social_media_hashtags" json:"socialMediaHashtags"`
	CreatedAt           time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time   `db:"updated_at" json:"updatedAt"`
}
