package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BlogCategoryAdventure = "adventure"
	BlogCategoryCulture   = "culture"
	BlogCategoryFood      = "food"
	BlogCategoryPeople    = "people"
	BlogCategoryPlaces    = "places"
)

type BlogPost struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Title               string     `db:"title" json:"title"`
	Slug                string     `db:"slug" json:"slug"`
	Excerpt             string     `db:"excerpt" json:"excerpt"`
	Content             string     `db:"content" json:"content"`
	FeaturedImage       string     `db:"featured_image" json:"featuredImage"`
	Category            string     `db:"category" json:"category"`
	Tags                StringList `db:"tags" json:"tags"`
	ReadingTime         int        `db:"reading_time" json:"readingTime"`
	IsFeatured          bool       `db:"is_featured" json:"isFeatured"`
	IsVisible           bool       `db:"is_visible" json:"isVisible"`
	InstagramPostURL    *string    `db:"instagram_post_url" json:"instagramPostUrl"`
	TwitterPostURL      *string    `db:"twitter_post_url" json:"twitterPostUrl"`
	FacebookPostURL     *string    `db:"facebook_post_url" json:"facebookPostUrl"`
	YoutubeVideoURL     *string    `db:"youtube_video_url" json:"youtubeVideoUrl"`
	SocialMediaHashtags StringList `db:"social_media_hashtags" json:"socialMediaHashtags"`
	PublishedAt         time.Time  `db:"published_at" json:"publishedAt"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}
