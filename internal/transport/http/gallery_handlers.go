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

func (r *Routers) ListGalleryCollections(c echo.Context) error {
	const op = "http.routers.ListGalleryCollections"
	log := r.log.With(slog.String("op", op))

	collections, err := r.Gallery.ListCollections(c.Request().Context(), r.isAdmin(c))
	if err != nil {
		log.Error("failed to list collections", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch gallery collections"))
	}

	return c.JSON(http.StatusOK, collections)
}

func (r *Routers) GetGalleryCollection(c echo.Context) error {
	const op = "http.routers.GetGalleryCollection"
	log := r.log.With(slog.String("op", op))

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid collection ID"))
	}

	collection, err := r.Gallery.GetCollection(c.Request().Context(), collectionID, r.isAdmin(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Gallery collection not found"))
		}
		log.Error("failed to get collection", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch gallery collection"))
	}

	return c.JSON(http.StatusOK, collection)
}

func (r *Routers) CreateGalleryCollection(c echo.Context) error {
	const op = "http.routers.CreateGalleryCollection"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateGalleryCollectionRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	collection, err := r.Gallery.CreateCollection(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create collection", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to create gallery collection"))
	}

	return c.JSON(http.StatusCreated, collection)
}

func (r *Routers) UpdateGalleryCollection(c echo.Context) error {
	const op = "http.routers.UpdateGalleryCollection"
	log := r.log.With(slog.String("op", op))

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid collection ID"))
	}

	req := new(dto.UpdateGalleryCollectionRequest)
	if err := c.Bind(req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	collection, err := r.Gallery.UpdateCollection(c.Request().Context(), collectionID, *req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Gallery collection not found"))
		}
		log.Error("failed to update collection", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update gallery collection"))
	}

	return c.JSON(http.StatusOK, collection)
}

func (r *Routers) SetGalleryCollectionVisibility(c echo.Context) error {
	const op = "http.routers.SetGalleryCollectionVisibility"
	log := r.log.With(slog.String("op", op))

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid collection ID"))
	}

	var req dto.SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	collection, err := r.Gallery.SetVisibility(c.Request().Context(), collectionID, req.IsVisible)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Gallery collection not found"))
		}
		log.Error("failed to set visibility", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update gallery collection"))
	}

	return c.JSON(http.StatusOK, collection)
}

func (r *Routers) DeleteGalleryCollection(c echo.Context) error {
	const op = "http.routers.DeleteGalleryCollection"
	log := r.log.With(slog.String("op", op))

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid collection ID"))
	}

	if err := r.Gallery.DeleteCollection(c.Request().Context(), collectionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Gallery collection not found"))
		}
		log.Error("failed to delete collection", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to delete gallery collection"))
	}

	return c.JSON(http.StatusOK, response.OK("Gallery collection deleted successfully"))
}

func (r *Routers) AddGalleryMedia(c echo.Context) error {
	const op = "http.routers.AddGalleryMedia"
	log := r.log.With(slog.String("op", op))

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid collection ID"))
	}

	var req dto.AddGalleryMediaRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	media, err := r.Gallery.AddMedia(c.Request().Context(), collectionID, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Gallery collection not found"))
		}
		log.Error("failed to add media", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to add media"))
	}

	return c.JSON(http.StatusCreated, media)
}

func (r *Routers) DeleteGalleryMedia(c echo.Context) error {
	const op = "http.routers.DeleteGalleryMedia"
	log := r.log.With(slog.String("op", op))

	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid media ID"))
	}

	if err := r.Gallery.DeleteMedia(c.Request().Context(), mediaID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Media not found"))
		}
		log.Error("failed to delete media", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to delete media"))
	}

	return c.JSON(http.StatusOK, response.OK("Media deleted successfully"))
}
