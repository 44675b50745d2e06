package repository

import (
	"context"
	"errors"
	"fmt"

	"milesalone/internal/domain/models"
	"milesalone/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var contactMessageColumns = []string{
	"id", "name", "email", "subject", "message", "is_read", "created_at",
}

type InboxRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewInboxRepository(db *pgxpool.Pool) *InboxRepo {
	return &InboxRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SubscribeEmail is idempotent: re-subscribing an existing address is a
// no-op, not an error.
func (r *InboxRepo) SubscribeEmail(ctx context.Context, subscriber models.NewsletterSubscriber) error {
	const op = "repository.inbox_repository.SubscribeEmail"

	query, args, err := r.sb.Insert("newsletter_subscribers").
		Columns("id", "email", "is_active", "subscribed_at").
		Values(subscriber.ID, subscriber.Email, subscriber.IsActive, subscriber.SubscribedAt).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *InboxRepo) CountSubscribers(ctx context.Context) (int, error) {
	const op = "repository.inbox_repository.CountSubscribers"

	query, args, err := r.sb.Select("COUNT(*)").
		From("newsletter_subscribers").
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *InboxRepo) SaveContactMessage(ctx context.Context, msg models.ContactMessage) (uuid.UUID, error) {
	const op = "repository.inbox_repository.SaveContactMessage"

	query, args, err := r.sb.Insert("contact_messages").
		Columns(contactMessageColumns...).
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.IsRead, msg.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *InboxRepo) GetContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "repository.inbox_repository.GetContactMessages"

	query, args, err := r.sb.Select(contactMessageColumns...).
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, *msg)
	}

	return messages, nil
}

func (r *InboxRepo) MarkMessageRead(ctx context.Context, msgID uuid.UUID) (*models.ContactMessage, error) {
	const op = "repository.inbox_repository.MarkMessageRead"

	query, args, err := r.sb.Update("contact_messages").
		Set("is_read", true).
		Where(sq.Eq{"id": msgID}).
		Suffix("RETURNING id, name, email, subject, message, is_read, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := scanContactMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

func scanContactMessage(row pgx.Row) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Subject,
		&msg.Message,
		&msg.IsRead,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
