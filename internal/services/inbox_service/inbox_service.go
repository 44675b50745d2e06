package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/transport/http/dto"

	"github.com/google/uuid"
)

// InboxService handles everything the public can send in: newsletter
// subscriptions and contact messages.
type InboxService struct {
	log  *slog.Logger
	repo repository.InboxRepository
}

func NewInboxService(log *slog.Logger, repo repository.InboxRepository) *InboxService {
	return &InboxService{log: log, repo: repo}
}

func (s *InboxService) Subscribe(ctx context.Context, req dto.SubscribeRequest) error {
	const op = "inbox_service.Subscribe"
	log := s.log.With(slog.String("op", op))

	log.Info("subscribing email to newsletter")

	subscriber := models.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}

	if err := s.repo.SubscribeEmail(ctx, subscriber); err != nil {
		log.Error("failed to subscribe email", sl.Err(err))
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	log.Info("email subscribed")
	return nil
}

func (s *InboxService) SaveMessage(ctx context.Context, req dto.ContactRequest) error {
	const op = "inbox_service.SaveMessage"
	log := s.log.With(slog.String("op", op), slog.String("subject", req.Subject))

	log.Info("saving contact message")

	msg := models.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.repo.SaveContactMessage(ctx, msg); err != nil {
		log.Error("failed to save contact message", sl.Err(err))
		return fmt.Errorf("failed to save message: %w", err)
	}

	log.Info("contact message saved")
	return nil
}

func (s *InboxService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "inbox_service.ListMessages"
	log := s.log.With(slog.String("op", op))

	messages, err := s.repo.GetContactMessages(ctx)
	if err != nil {
		log.Error("failed to list messages", sl.Err(err))
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	log.Info("messages listed", slog.Int("count", len(messages)))
	return messages, nil
}

func (s *InboxService) MarkRead(ctx context.Context, msgID uuid.UUID) (*models.ContactMessage, error) {
	const op = "inbox_service.MarkRead"
	log := s.log.With(slog.String("op", op), slog.String("message_id", msgID.String()))

	log.Info("marking message as read")

	msg, err := s.repo.MarkMessageRead(ctx, msgID)
	if err != nil {
		log.Error("failed to mark message read", sl.Err(err))
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}

	return msg, nil
}
