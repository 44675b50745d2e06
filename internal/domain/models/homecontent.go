package models

import (
	"time"

	"github.com/google/uuid"
)

// HomePageContent is the editable copy of the public home page, stored as
// a singleton row like JourneyTracking.
type HomePageContent struct {
	ID                          uuid.UUID `db:"id" json:"id"`
	HeroTitle                   string    `db:"hero_title" json:"heroTitle"`
	HeroSubtitle                string    `db:"hero_subtitle" json:"heroSubtitle"`
	HeroBackgroundImage         string    `db:"hero_background_image" json:"heroBackgroundImage"`
	ExploreButtonText           string    `db:"explore_button_text" json:"exploreButtonText"`
	DiariesButtonText           string    `db:"diaries_button_text" json:"diariesButtonText"`
	DailyBudget                 string    `db:"daily_budget" json:"dailyBudget"`
	MapSectionTitle             string    `db:"map_section_title" json:"mapSectionTitle"`
	MapSectionDescription       string    `db:"map_section_description" json:"mapSectionDescription"`
	StoriesSectionTitle         string    `db:"stories_section_title" json:"storiesSectionTitle"`
	StoriesSectionDescription   string    `db:"stories_section_description" json:"storiesSectionDescription"`
	GuidesSectionTitle          string    `db:"guides_section_title" json:"guidesSectionTitle"`
	GuidesSectionDescription    string    `db:"guides_section_description" json:"guidesSectionDescription"`
	GallerySectionTitle         string    `db:"gallery_section_title" json:"gallerySectionTitle"`
	GallerySectionDescription   string    `db:"gallery_section_description" json:"gallerySectionDescription"`
	NewsletterTitle             string    `db:"newsletter_title" json:"newsletterTitle"`
	NewsletterDescription       string    `db:"newsletter_description" json:"newsletterDescription"`
	NewsletterSubscribersCount  int       `db:"newsletter_subscribers_count" json:"newsletterSubscribersCount"`
	WeeklyStoriesCount          int       `db:"weekly_stories_count" json:"weeklyStoriesCount"`
	ReadRate                    int       `db:"read_rate" json:"readRate"`
	JourneyStartDate            string    `db:"journey_start_date" json:"journeyStartDate"`
	JourneyStartLocation        string    `db:"journey_start_location" json:"journeyStartLocation"`
	JourneyStartDescription     string    `db:"journey_start_description" json:"journeyStartDescription"`
	FinalDestination            string    `db:"final_destination" json:"finalDestination"`
	FinalDestinationDescription string    `db:"final_destination_description" json:"finalDestinationDescription"`
	UpdatedAt                   time.Time `db:"updated_at" json:"updatedAt"`
	CreatedAt                   time.Time `db:"created_at" json:"createdAt"`
}

// DefaultHomePageContent returns the stock copy shown before an admin
// ever edits the home page.
func DefaultHomePageContent() HomePageContent {
	now := time.Now().UTC()
	return HomePageContent{
		ID:                          uuid.New(),
		HeroTitle:                   "Raw Roads,\nReal Discovery",
		HeroSubtitle:                "Join Shashank's authentic 4-month journey across India, from Kashmir's valleys to Kanyakumari's shores, on just ₹500 per day",
		HeroBackgroundImage:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80",
		ExploreButtonText:           "Explore Journey",
		DiariesButtonText:           "Read Diaries",
		DailyBudget:                 "₹500",
		MapSectionTitle:             "Live Journey Tracker",
		MapSectionDescription:       "Follow the real-time progress from the serene valleys of Kashmir to the southern tip of Kanyakumari. Each pin tells a story of discovery, challenge, and authentic Indian experiences.",
		StoriesSectionTitle:         "Latest Travel Stories",
		StoriesSectionDescription:   "Authentic stories from the road - the struggles, discoveries, and unexpected connections that make solo travel transformative.",
		GuidesSectionTitle:          "Travel Guides",
		GuidesSectionDescription:    "Comprehensive guides to the most incredible destinations on this journey. From planning to experiencing, get insider tips for authentic travel.",
		GallerySectionTitle:         "Visual Journey",
		GallerySectionDescription:   "Every photograph tells a story of discovery, challenge, and the incredible diversity of landscapes, cultures, and moments that define authentic India travel.",
		NewsletterTitle:             "Join the Journey",
		NewsletterDescription:       "Get weekly updates about new destinations, travel stories, and behind-the-scenes insights from the road. No spam, just authentic travel content.",
		NewsletterSubscribersCount:  342,
		WeeklyStoriesCount:          24,
		ReadRate:                    95,
		JourneyStartDate:            "August 1, 2025",
		JourneyStartLocation:        "Srinagar, Kashmir",
		JourneyStartDescription:     "Dal Lake houseboats and mountain serenity",
		FinalDestination:            "Kanyakumari, Tamil Nadu",
		FinalDestinationDescription: "Land's end where three seas meet",
		UpdatedAt:                   now,
		CreatedAt:                   now,
	}
}
