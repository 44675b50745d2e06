package models

import (
	"time"

	"github.com/google/uuid"
)

// JourneyTracking is a singleton row: the API always reads and upserts
// the one record keyed by the fixed singleton column.
type JourneyTracking struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	CurrentLocation    string      `db:"current_location" json:"currentLocation"`
	CurrentCoordinates Coordinates `db:"current_coordinates" json:"currentCoordinates"`
	JourneyProgress    int         `db:"journey_progress" json:"journeyProgress"`
	DaysTraveled       int         `db:"days_traveled" json:"daysTraveled"`
	StatesCovered      int         `db:"states_covered" json:"statesCovered"`
	DistanceCovered    int         `db:"distance_covered" json:"distanceCovered"`
	InstagramStoryURL  *string     `db:"instagram_story_url" json:"instagramStoryUrl"`
	InstagramReelURL   *string     `db:"instagram_reel_url" json:"instagramReelUrl"`
	TwitterUpdateURL   *string     `db:"twitter_update_url" json:"twitterUpdateUrl"`
	YoutubeShortURL    *string     `db:"youtube_short_url" json:"youtubeShortUrl"`
	LastUpdated        time.Time   `db:"last_updated" json:"lastUpdated"`
}
