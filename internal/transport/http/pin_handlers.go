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

func (r *Routers) ListTravelPins(c echo.Context) error {
	const op = "http.routers.ListTravelPins"
	log := r.log.With(slog.String("op", op))

	pins, err := r.Pins.ListPins(c.Request().Context(), r.isAdmin(c))
	if err != nil {
		log.Error("failed to list pins", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch travel pins"))
	}

	return c.JSON(http.StatusOK, pins)
}

func (r *Routers) CreateTravelPin(c echo.Context) error {
	const op = "http.routers.CreateTravelPin"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateTravelPinRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	pin, err := r.Pins.CreatePin(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create pin", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to create travel pin"))
	}

	return c.JSON(http.StatusCreated, pin)
}

func (r *Routers) UpdateTravelPin(c echo.Context) error {
	const op = "http.routers.UpdateTravelPin"
	log := r.log.With(slog.String("op", op))

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid pin ID"))
	}

	req := new(dto.UpdateTravelPinRequest)
	if err := c.Bind(req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	pin, err := r.Pins.UpdatePin(c.Request().Context(), pinID, *req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Travel pin not found"))
		}
		log.Error("failed to update pin", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update travel pin"))
	}

	return c.JSON(http.StatusOK, pin)
}

func (r *Routers) SetTravelPinVisibility(c echo.Context) error {
	const op = "http.routers.SetTravelPinVisibility"
	log := r.log.With(slog.String("op", op))

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid pin ID"))
	}

	var req dto.SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	pin, err := r.Pins.SetVisibility(c.Request().Context(), pinID, req.IsVisible)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Travel pin not found"))
		}
		log.Error("failed to set visibility", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update travel pin"))
	}

	return c.JSON(http.StatusOK, pin)
}

func (r *Routers) DeleteTravelPin(c echo.Context) error {
	const op = "http.routers.DeleteTravelPin"
	log := r.log.With(slog.String("op", op))

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid pin ID"))
	}

	if err := r.Pins.DeletePin(c.Request().Context(), pinID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Travel pin not found"))
		}
		log.Error("failed to delete pin", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to delete travel pin"))
	}

	return c.JSON(http.StatusOK, response.OK("Travel pin deleted successfully"))
}
