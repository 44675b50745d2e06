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

func (r *Routers) ListDestinations(c echo.Context) error {
	const op = "http.routers.ListDestinations"
	log := r.log.With(slog.String("op", op))

	category := c.QueryParam("category")
	region := c.QueryParam("region")

	dests, err := r.Destination.ListDestinations(c.Request().Context(), category, region, r.isAdmin(c))
	if err != nil {
		log.Error("failed to list destinations", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch destinations"))
	}

	return c.JSON(http.StatusOK, dests)
}

func (r *Routers) GetDestinationBySlug(c echo.Context) error {
	const op = "http.routers.GetDestinationBySlug"
	log := r.log.With(slog.String("op", op), slog.String("slug", c.Param("slug")))

	dest, err := r.Destination.GetDestinationBySlug(c.Request().Context(), c.Param("slug"), r.isAdmin(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Destination not found"))
		}
		log.Error("failed to get destination", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch destination"))
	}

	return c.JSON(http.StatusOK, dest)
}

func (r *Routers) CreateDestination(c echo.Context) error {
	const op = "http.routers.CreateDestination"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateDestinationRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	dest, err := r.Destination.CreateDestination(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create destination", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to create destination"))
	}

	return c.JSON(http.StatusCreated, dest)
}

func (r *Routers) UpdateDestination(c echo.Context) error {
	const op = "http.routers.UpdateDestination"
	log := r.log.With(slog.String("op", op))

	destID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid destination ID"))
	}

	req := new(dto.UpdateDestinationRequest)
	if err := c.Bind(req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	dest, err := r.Destination.UpdateDestination(c.Request().Context(), destID, *req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Destination not found"))
		}
		log.Error("failed to update destination", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update destination"))
	}

	return c.JSON(http.StatusOK, dest)
}

func (r *Routers) SetDestinationVisibility(c echo.Context) error {
	const op = "http.routers.SetDestinationVisibility"
	log := r.log.With(slog.String("op", op))

	destID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid destination ID"))
	}

	var req dto.SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	dest, err := r.Destination.SetVisibility(c.Request().Context(), destID, req.IsVisible)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Destination not found"))
		}
		log.Error("failed to set visibility", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update destination"))
	}

	return c.JSON(http.StatusOK, dest)
}

func (r *Routers) DeleteDestination(c echo.Context) error {
	const op = "http.routers.DeleteDestination"
	log := r.log.With(slog.String("op", op))

	destID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid destination ID"))
	}

	if err := r.Destination.DeleteDestination(c.Request().Context(), destID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Destination not found"))
		}
		log.Error("failed to delete destination", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to delete destination"))
	}

	return c.JSON(http.StatusOK, response.OK("Destination deleted successfully"))
}
