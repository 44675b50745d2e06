package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"milesalone/internal/config"
	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/storage/postgresql"

	"github.com/google/uuid"
)

// Dev seeder: loads a small set of journey content so the public pages
// have something to render. Safe to re-run; slug conflicts are skipped.
func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		log.Error("failed to connect to database", sl.Err(err))
		os.Exit(1)
	}
	defer storage.Stop()

	blogRepo := repository.NewBlogRepository(storage.DB)
	destRepo := repository.NewDestinationRepository(storage.DB)
	pinRepo := repository.NewPinRepository(storage.DB)
	contentRepo := repository.NewContentRepository(storage.DB)

	now := time.Now().UTC()

	posts := []models.BlogPost{
		{
			ID:            uuid.New(),
			Title:         "Srinagar: Where the Journey Begins",
			Slug:          "srinagar-where-the-journey-begins",
			Excerpt:       "Dal Lake at dawn, houseboats, and the first day of a four-month walk across India.",
			Content:       "The shikara glides across Dal Lake before sunrise...",
			FeaturedImage: "https://images.unsplash.com/photo-1566837945700-30057527ade0",
			Category:      models.BlogCategoryPlaces,
			Tags:          models.StringList{"kashmir", "srinagar", "start"},
			ReadingTime:   6,
			IsFeatured:    true,
			IsVisible:     true,
			PublishedAt:   now,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	for _, post := range posts {
		if _, err := blogRepo.SaveBlogPost(ctx, post); err != nil {
			log.Warn("skipping blog post", slog.String("slug", post.Slug), sl.Err(err))
		}
	}

	dests := []models.Destination{
		{
			ID:                  uuid.New(),
			Name:                "Srinagar",
			Slug:                "srinagar",
			Description:         "Summer capital of Jammu and Kashmir, famous for Dal Lake.",
			DetailedDescription: "Houseboats, floating markets and Mughal gardens...",
			Category:            "Heritage",
			Region:              "North India",
			State:               "Jammu and Kashmir",
			Coordinates:         models.Coordinates{Lat: 34.0837, Lng: 74.7973},
			FeaturedImage:       "https://images.unsplash.com/photo-1566837945700-30057527ade0",
			BestTimeToVisit:     "April to October",
			RecommendedStay:     "3-4 days",
			BudgetRange:         "₹500-800/day",
			Highlights:          models.StringList{"Dal Lake", "Mughal Gardens"},
			Activities:          models.StringList{"Shikara ride", "Old city walk"},
			Rating:              47,
			Difficulty:          models.DifficultyEasy,
			RelatedBlogPosts:    models.StringList{},
			SocialMediaHashtags: models.StringList{},
			IsCurrentLocation:   true,
			IsFeatured:          true,
			IsVisible:           true,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}

	for _, dest := range dests {
		if _, err := destRepo.SaveDestination(ctx, dest); err != nil {
			log.Warn("skipping destination", slog.String("slug", dest.Slug), sl.Err(err))
		}
	}

	pin := models.TravelPin{
		ID:                  uuid.New(),
		Name:                "Srinagar",
		Coordinates:         models.Coordinates{Lat: 34.0837, Lng: 74.7973},
		Country:             "India",
		PinType:             models.PinTypeCurrent,
		PinColor:            models.DefaultPinColor,
		Images:              models.StringList{},
		Tags:                models.StringList{"start"},
		Rating:              5,
		IsVisible:           true,
		SocialMediaHashtags: models.StringList{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := pinRepo.SavePin(ctx, pin); err != nil {
		log.Warn("skipping travel pin", sl.Err(err))
	}

	journey := models.JourneyTracking{
		ID:                 uuid.New(),
		CurrentLocation:    "Srinagar, Kashmir",
		CurrentCoordinates: models.Coordinates{Lat: 34.0837, Lng: 74.7973},
		JourneyProgress:    2,
		DaysTraveled:       3,
		StatesCovered:      1,
		DistanceCovered:    120,
		LastUpdated:        now,
	}
	if _, err := contentRepo.UpsertJourney(ctx, journey); err != nil {
		log.Warn("failed to seed journey", sl.Err(err))
	}

	if _, err := contentRepo.UpsertHomeContent(ctx, models.DefaultHomePageContent()); err != nil {
		log.Warn("failed to seed home content", sl.Err(err))
	}

	log.Info("seed complete")
}
