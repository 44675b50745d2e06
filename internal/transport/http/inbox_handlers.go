package http

import (
	"errors"
	"log/slog"
	"net/http"

	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/storage"
	"milesalone/internal/transport/http/dto"
	"milesalone/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (r *Routers) Subscribe(c echo.Context) error {
	const op = "http.routers.Subscribe"
	log := r.log.With(slog.String("op", op))

	var req dto.SubscribeRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error("Valid email is required"))
	}

	if err := r.Inbox.Subscribe(c.Request().Context(), req); err != nil {
		log.Error("failed to subscribe", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to subscribe"))
	}

	return c.JSON(http.StatusOK, response.OK("Successfully subscribed to newsletter"))
}

func (r *Routers) Contact(c echo.Context) error {
	const op = "http.routers.Contact"
	log := r.log.With(slog.String("op", op))

	var req dto.ContactRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	if err := r.Inbox.SaveMessage(c.Request().Context(), req); err != nil {
		log.Error("failed to save message", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to send message"))
	}

	return c.JSON(http.StatusOK, response.OK("Message sent successfully"))
}

func (r *Routers) ListContactMessages(c echo.Context) error {
	const op = "http.routers.ListContactMessages"
	log := r.log.With(slog.String("op", op))

	messages, err := r.Inbox.ListMessages(c.Request().Context())
	if err != nil {
		log.Error("failed to list messages", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch messages"))
	}

	return c.JSON(http.StatusOK, messages)
}

func (r *Routers) MarkContactMessageRead(c echo.Context) error {
	const op = "http.routers.MarkContactMessageRead"
	log := r.log.With(slog.String("op", op))

	msgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid message ID"))
	}

	msg, err := r.Inbox.MarkRead(c.Request().Context(), msgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Message not found"))
		}
		log.Error("failed to mark message read", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update message"))
	}

	return c.JSON(http.StatusOK, msg)
}
