package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"milesalone/internal/domain/models"
	"milesalone/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// singletonKey is the fixed value of the UNIQUE singleton column on
// journey_tracking and home_page_content, so upserts always hit the
// same row.
const singletonKey = "main"

var journeyColumns = []string{
	"id", "current_location", "current_coordinates", "journey_progress",
	"days_traveled", "states_covered", "distance_covered",
	"instagram_story_url", "instagram_reel_url", "twitter_update_url",
	"youtube_short_url", "last_updated",
}

var homeContentColumns = []string{
	"id", "hero_title", "hero_subtitle", "hero_background_image",
	"explore_button_text", "diaries_button_text", "daily_budget",
	"map_section_title", "map_section_description",
	"stories_section_title", "stories_section_description",
	"guides_section_title", "guides_section_description",
	"gallery_section_title", "gallery_section_description",
	"newsletter_title", "newsletter_description",
	"newsletter_subscribers_count", "weekly_stories_count", "read_rate",
	"journey_start_date", "journey_start_location", "journey_start_description",
	"final_destination", "final_destination_description",
	"updated_at", "created_at",
}

type ContentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContentRepository(db *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContentRepo) GetJourney(ctx context.Context) (*models.JourneyTracking, error) {
	const op = "repository.content_repository.GetJourney"

	query, args, err := r.sb.Select(journeyColumns...).
		From("journey_tracking").
		Where(sq.Eq{"singleton": singletonKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	journey, err := scanJourney(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return journey, nil
}

func (r *ContentRepo) UpsertJourney(ctx context.Context, journey models.JourneyTracking) (*models.JourneyTracking, error) {
	const op = "repository.content_repository.UpsertJourney"

	columns := append([]string{"singleton"}, journeyColumns...)

	query, args, err := r.sb.Insert("journey_tracking").
		Columns(columns...).
		Values(
			singletonKey,
			journey.ID,
			journey.CurrentLocation,
			journey.CurrentCoordinates,
			journey.JourneyProgress,
			journey.DaysTraveled,
			journey.StatesCovered,
			journey.DistanceCovered,
			journey.InstagramStoryURL,
			journey.InstagramReelURL,
			journey.TwitterUpdateURL,
			journey.YoutubeShortURL,
			journey.LastUpdated,
		).
		Suffix(upsertSuffix("singleton", journeyColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := scanJourney(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (r *ContentRepo) GetHomeContent(ctx context.Context) (*models.HomePageContent, error) {
	const op = "repository.content_repository.GetHomeContent"

	query, args, err := r.sb.Select(homeContentColumns...).
		From("home_page_content").
		Where(sq.Eq{"singleton": singletonKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	content, err := scanHomeContent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return content, nil
}

func (r *ContentRepo) UpsertHomeContent(ctx context.Context, content models.HomePageContent) (*models.HomePageContent, error) {
	const op = "repository.content_repository.UpsertHomeContent"

	columns := append([]string{"singleton"}, homeContentColumns...)

	query, args, err := r.sb.Insert("home_page_content").
		Columns(columns...).
		Values(
			singletonKey,
			content.ID,
			content.HeroTitle,
			content.HeroSubtitle,
			content.HeroBackgroundImage,
			content.ExploreButtonText,
			content.DiariesButtonText,
			content.DailyBudget,
			content.MapSectionTitle,
			content.MapSectionDescription,
			content.StoriesSectionTitle,
			content.StoriesSectionDescription,
			content.GuidesSectionTitle,
			content.GuidesSectionDescription,
			content.GallerySectionTitle,
			content.GallerySectionDescription,
			content.NewsletterTitle,
			content.NewsletterDescription,
			content.NewsletterSubscribersCount,
			content.WeeklyStoriesCount,
			content.ReadRate,
			content.JourneyStartDate,
			content.JourneyStartLocation,
			content.JourneyStartDescription,
			content.FinalDestination,
			content.FinalDestinationDescription,
			content.UpdatedAt,
			content.CreatedAt,
		).
		Suffix(upsertSuffix("singleton", homeContentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := scanHomeContent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// upsertSuffix builds an ON CONFLICT ... DO UPDATE clause that overwrites
// every column except id and created_at with the incoming values, and
// returns the stored row.
func upsertSuffix(conflictColumn string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == "id" || col == "created_at" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	return fmt.Sprintf(
		"ON CONFLICT (%s) DO UPDATE SET %s RETURNING %s",
		conflictColumn,
		strings.Join(sets, ", "),
		strings.Join(columns, ", "),
	)
}

func scanJourney(row pgx.Row) (*models.JourneyTracking, error) {
	var journey models.JourneyTracking
	err := row.Scan(
		&journey.ID,
		&journey.CurrentLocation,
		&journey.CurrentCoordinates,
		&journey.JourneyProgress,
		&journey.DaysTraveled,
		&journey.StatesCovered,
		&journey.DistanceCovered,
		&journey.InstagramStoryURL,
		&journey.InstagramReelURL,
		&journey.TwitterUpdateURL,
		&journey.YoutubeShortURL,
		&journey.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

func scanHomeContent(row pgx.Row) (*models.HomePageContent, error) {
	var content models.HomePageContent
	err := row.Scan(
		&content.ID,
		&content.HeroTitle,
		&content.HeroSubtitle,
		&content.HeroBackgroundImage,
		&content.ExploreButtonText,
		&content.DiariesButtonText,
		&content.DailyBudget,
		&content.MapSectionTitle,
		&content.MapSectionDescription,
		&content.StoriesSectionTitle,
		&content.StoriesSectionDescription,
		&content.GuidesSectionTitle,
		&content.GuidesSectionDescription,
		&content.GallerySectionTitle,
		&content.GallerySectionDescription,
		&content.NewsletterTitle,
		&content.NewsletterDescription,
		&content.NewsletterSubscribersCount,
		&content.WeeklyStoriesCount,
		&content.ReadRate,
		&content.JourneyStartDate,
		&content.JourneyStartLocation,
		&content.JourneyStartDescription,
		&content.FinalDestination,
		&content.FinalDestinationDescription,
		&content.UpdatedAt,
		&content.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &content, nil
}
