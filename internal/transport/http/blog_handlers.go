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

func (r *Routers) ListBlogPosts(c echo.Context) error {
	const op = "http.routers.ListBlogPosts"
	log := r.log.With(slog.String("op", op))

	category := c.QueryParam("category")

	posts, err := r.Blog.ListPosts(c.Request().Context(), category, r.isAdmin(c))
	if err != nil {
		log.Error("failed to list blog posts", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch blog posts"))
	}

	return c.JSON(http.StatusOK, posts)
}

func (r *Routers) FeaturedBlogPosts(c echo.Context) error {
	const op = "http.routers.FeaturedBlogPosts"
	log := r.log.With(slog.String("op", op))

	posts, err := r.Blog.FeaturedPosts(c.Request().Context())
	if err != nil {
		log.Error("failed to list featured posts", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch featured posts"))
	}

	return c.JSON(http.StatusOK, posts)
}

func (r *Routers) GetBlogPostBySlug(c echo.Context) error {
	const op = "http.routers.GetBlogPostBySlug"
	log := r.log.With(slog.String("op", op), slog.String("slug", c.Param("slug")))

	post, err := r.Blog.GetPostBySlug(c.Request().Context(), c.Param("slug"), r.isAdmin(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Blog post not found"))
		}
		log.Error("failed to get blog post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch blog post"))
	}

	return c.JSON(http.StatusOK, post)
}

func (r *Routers) GetBlogPostByID(c echo.Context) error {
	const op = "http.routers.GetBlogPostByID"
	log := r.log.With(slog.String("op", op))

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid blog post ID"))
	}

	post, err := r.Blog.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Blog post not found"))
		}
		log.Error("failed to get blog post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to fetch blog post"))
	}

	return c.JSON(http.StatusOK, post)
}

func (r *Routers) CreateBlogPost(c echo.Context) error {
	const op = "http.routers.CreateBlogPost"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateBlogPostRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	post, err := r.Blog.CreatePost(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create blog post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to create blog post"))
	}

	return c.JSON(http.StatusCreated, post)
}

func (r *Routers) UpdateBlogPost(c echo.Context) error {
	const op = "http.routers.UpdateBlogPost"
	log := r.log.With(slog.String("op", op))

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid blog post ID"))
	}

	req := new(dto.UpdateBlogPostRequest)
	if err := c.Bind(req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	post, err := r.Blog.UpdatePost(c.Request().Context(), postID, *req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Blog post not found"))
		}
		log.Error("failed to update blog post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update blog post"))
	}

	return c.JSON(http.StatusOK, post)
}

func (r *Routers) SetBlogPostVisibility(c echo.Context) error {
	const op = "http.routers.SetBlogPostVisibility"
	log := r.log.With(slog.String("op", op))

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid blog post ID"))
	}

	var req dto.SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.Blog.SetVisibility(c.Request().Context(), postID, req.IsVisible)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Blog post not found"))
		}
		log.Error("failed to set visibility", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to update blog post"))
	}

	return c.JSON(http.StatusOK, post)
}

func (r *Routers) DeleteBlogPost(c echo.Context) error {
	const op = "http.routers.DeleteBlogPost"
	log := r.log.With(slog.String("op", op))

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid blog post ID"))
	}

	if err := r.Blog.DeletePost(c.Request().Context(), postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, response.Error("Blog post not found"))
		}
		log.Error("failed to delete blog post", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to delete blog post"))
	}

	return c.JSON(http.StatusOK, response.OK("Blog post deleted successfully"))
}
