package http

import (
	"log/slog"
	"net/http"

	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/transport/http/dto"
	"milesalone/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetJourney renders the singleton or an empty object when it has never
// been written.
func (r *Routers) GetJourney(c echo.Context) error {
	const op = "http.routers.GetJourney"
	log := r.log.With(slog.String("op", op))

	journey, err := r.Content.GetJourney(c.Request().Context())
	if err != nil {
		log.Error("failed to get journey", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch journey"))
	}

	if journey == nil {
		return c.JSON(http.StatusOK, map[string]any{})
	}

	return c.JSON(http.StatusOK, journey)
}

func (r *Routers) UpdateJourney(c echo.Context) error {
	const op = "http.routers.UpdateJourney"
	log := r.log.With(slog.String("op", op))

	var req dto.UpsertJourneyRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	journey, err := r.Content.UpdateJourney(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to update journey", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update journey"))
	}

	return c.JSON(http.StatusOK, journey)
}

func (r *Routers) GetHomeContent(c echo.Context) error {
	const op = "http.routers.GetHomeContent"
	log := r.log.With(slog.String("op", op))

	content, err := r.Content.GetHomeContent(c.Request().Context())
	if err != nil {
		log.Error("failed to get home content", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch home content"))
	}

	if content == nil {
		return c.JSON(http.StatusOK, map[string]any{})
	}

	return c.JSON(http.StatusOK, content)
}

func (r *Routers) UpdateHomeContent(c echo.Context) error {
	const op = "http.routers.UpdateHomeContent"
	log := r.log.With(slog.String("op", op))

	var req dto.UpsertHomeContentRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	content, err := r.Content.UpdateHomeContent(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to update home content", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update home content"))
	}

	return c.JSON(http.StatusOK, content)
}

// CreateHomeContent is the POST variant; it shares the upsert path but
// answers 201.
func (r *Routers) CreateHomeContent(c echo.Context) error {
	const op = "http.routers.CreateHomeContent"
	log := r.log.With(slog.String("op", op))

	var req dto.UpsertHomeContentRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	content, err := r.Content.UpdateHomeContent(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create home content", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to create home content"))
	}

	return c.JSON(http.StatusCreated, content)
}
