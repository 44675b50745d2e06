package dto

import "milesalone/internal/domain/models"

// UpsertJourneyRequest is a partial update: omitted fields keep their
// stored values.
type UpsertJourneyRequest struct {
	CurrentLocation    *string             `json:"currentLocation,omitempty"`
	CurrentCoordinates *models.Coordinates `json:"currentCoordinates,omitempty"`
	JourneyProgress    *int                `json:"journeyProgress,omitempty" validate:"omitempty,gte=0,lte=100"`
	DaysTraveled       *int                `json:"daysTraveled,omitempty" validate:"omitempty,gte=0"`
	StatesCovered      *int                `json:"statesCovered,omitempty" validate:"omitempty,gte=0"`
	DistanceCovered    *int                `json:"distanceCovered,omitempty" validate:"omitempty,gte=0"`
	InstagramStoryURL  *string             `json:"instagramStoryUrl,omitempty" validate:"omitempty,url"`
	InstagramReelURL   *string             `json:"instagramReelUrl,omitempty" validate:"omitempty,url"`
	TwitterUpdateURL   *string             `json:"twitterUpdateUrl,omitempty" validate:"omitempty,url"`
	YoutubeShortURL    *string             `json:"youtubeShortUrl,omitempty" validate:"omitempty,url"`
}

// UpsertHomeContentRequest carries the full editable copy of the home
// page. Omitted fields fall back to the stock defaults rather than
// clearing stored values.
type UpsertHomeContentRequest struct {
	HeroTitle                   *string `json:"heroTitle,omitempty"`
	HeroSubtitle                *string `json:"heroSubtitle,omitempty"`
	HeroBackgroundImage         *string `json:"heroBackgroundImage,omitempty" validate:"omitempty,url"`
	ExploreButtonText           *string `json:"exploreButtonText,omitempty"`
	DiariesButtonText           *string `json:"diariesButtonText,omitempty"`
	DailyBudget                 *string `json:"dailyBudget,omitempty"`
	MapSectionTitle             *string `json:"mapSectionTitle,omitempty"`
	MapSectionDescription       *string `json:"mapSectionDescription,omitempty"`
	StoriesSectionTitle         *string `json:"storiesSectionTitle,omitempty"`
	StoriesSectionDescription   *string `json:"storiesSectionDescription,omitempty"`
	GuidesSectionTitle          *string `json:"guidesSectionTitle,omitempty"`
	GuidesSectionDescription    *string `json:"guidesSectionDescription,omitempty"`
	GallerySectionTitle         *string `json:"gallerySectionTitle,omitempty"`
	GallerySectionDescription   *string `json:"gallerySectionDescription,omitempty"`
	NewsletterTitle             *string `json:"newsletterTitle,omitempty"`
	NewsletterDescription       *string `json:"newsletterDescription,omitempty"`
	NewsletterSubscribersCount  *int    `json:"newsletterSubscribersCount,omitempty" validate:"omitempty,gte=0"`
	WeeklyStoriesCount          *int    `json:"weeklyStoriesCount,omitempty" validate:"omitempty,gte=0"`
	ReadRate                    *int    `json:"readRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	JourneyStartDate            *string `json:"journeyStartDate,omitempty"`
	JourneyStartLocation        *string `json:"journeyStartLocation,omitempty"`
	JourneyStartDescription     *string `json:"journeyStartDescription,omitempty"`
	FinalDestination            *string `json:"finalDestination,omitempty"`
	FinalDestinationDescription *string `json:"finalDestinationDescription,omitempty"`
}

type AdminStatsResponse struct {
	TotalPosts        int `json:"totalPosts"`
	TotalDestinations int `json:"totalDestinations"`
	TotalGalleries    int `json:"totalGalleries"`
	TotalPins         int `json:"totalPins"`
}
