package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	redisapp "milesalone/internal/storage/redis"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports a postgres unique_violation, used to map
// slug and email conflicts onto the storage sentinels.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Repository aggregates the per-entity repositories over a shared pool.
type Repository struct {
	Blog         BlogRepository
	Destinations DestinationRepository
	Gallery      GalleryRepository
	Pins         PinRepository
	Content      ContentRepository
	Inbox        InboxRepository
	Sessions     SessionRepository
}

func NewRepository(db *pgxpool.Pool, rdb *redisapp.Client) *Repository {
	return &Repository{
		Blog:         NewBlogRepository(db),
		Destinations: NewDestinationRepository(db),
		Gallery:      NewGalleryRepository(db),
		Pins:         NewPinRepository(db),
		Content:      NewContentRepository(db),
		Inbox:        NewInboxRepository(db),
		Sessions:     NewSessionRepository(rdb),
	}
}
