package repository

import (
	"context"
	"time"

	"milesalone/internal/domain/models"

	"github.com/google/uuid"
)

// BlogFilter narrows public blog post listings.
type BlogFilter struct {
	Category     string
	OnlyVisible  bool
	OnlyFeatured bool
	Limit        int
}

// DestinationFilter narrows public destination listings.
type DestinationFilter struct {
	Category    string
	Region      string
	OnlyVisible bool
}

type BlogRepository interface {
	SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error)
	UpdateBlogPostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error
	DeleteBlogPost(ctx context.Context, postID uuid.UUID) error
	GetBlogPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string, onlyVisible bool) (*models.BlogPost, error)
	GetBlogPosts(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error)
	CountBlogPosts(ctx context.Context) (int, error)
}

type DestinationRepository interface {
	SaveDestination(ctx context.Context, dest models.Destination) (uuid.UUID, error)
	UpdateDestinationFields(ctx context.Context, destID uuid.UUID, updates map[string]interface{}) error
	DeleteDestination(ctx context.Context, destID uuid.UUID) error
	GetDestinationByID(ctx context.Context, destID uuid.UUID) (*models.Destination, error)
	GetDestinationBySlug(ctx context.Context, slug string, onlyVisible bool) (*models.Destination, error)
	GetDestinations(ctx context.Context, filter DestinationFilter) ([]models.Destination, error)
	CountDestinations(ctx context.Context) (int, error)
}

type GalleryRepository interface {
	SaveCollection(ctx context.Context, collection models.GalleryCollection) (uuid.UUID, error)
	UpdateCollectionFields(ctx context.Context, collectionID uuid.UUID, updates map[string]interface{}) error
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
	GetCollectionByID(ctx context.Context, collectionID uuid.UUID, onlyVisible bool) (*models.GalleryCollection, error)
	GetCollections(ctx context.Context, onlyVisible bool) ([]models.GalleryCollection, error)
	CountCollections(ctx context.Context) (int, error)

	AddMedia(ctx context.Context, media models.GalleryMedia) (uuid.UUID, error)
	DeleteMedia(ctx context.Context, mediaID uuid.UUID) error
	GetMediaByID(ctx context.Context, mediaID uuid.UUID) (*models.GalleryMedia, error)
	GetCollectionMedia(ctx context.Context, collectionID uuid.UUID) ([]models.GalleryMedia, error)
}

type PinRepository interface {
	SavePin(ctx context.Context, pin models.TravelPin) (uuid.UUID, error)
	UpdatePinFields(ctx context.Context, pinID uuid.UUID, updates map[string]interface{}) error
	DeletePin(ctx context.Context, pinID uuid.UUID) error
	GetPinByID(ctx context.Context, pinID uuid.UUID) (*models.TravelPin, error)
	GetPins(ctx context.Context, onlyVisible bool) ([]models.TravelPin, error)
	CountPins(ctx context.Context) (int, error)
}

type ContentRepository interface {
	GetJourney(ctx context.Context) (*models.JourneyTracking, error)
	UpsertJourney(ctx context.Context, journey models.JourneyTracking) (*models.JourneyTracking, error)
	GetHomeContent(ctx context.Context) (*models.HomePageContent, error)
	UpsertHomeContent(ctx context.Context, content models.HomePageContent) (*models.HomePageContent, error)
}

type InboxRepository interface {
	SubscribeEmail(ctx context.Context, subscriber models.NewsletterSubscriber) error
	CountSubscribers(ctx context.Context) (int, error)
	SaveContactMessage(ctx context.Context, msg models.ContactMessage) (uuid.UUID, error)
	GetContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkMessageRead(ctx context.Context, msgID uuid.UUID) (*models.ContactMessage, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, token string, ttl time.Duration) error
	SessionExists(ctx context.Context, token string) (bool, error)
	DeleteSession(ctx context.Context, token string) error
}
