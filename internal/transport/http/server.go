package http

import (
	"context"
	"log/slog"
	"net/http"

	"milesalone/internal/config"
	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/transport/http/dto"
	"milesalone/internal/transport/http/dto/request"
	"milesalone/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "session"

type BlogService interface {
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	SetVisibility(ctx context.Context, postID uuid.UUID, visible bool) (*models.BlogPost, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPostByID(ctx context.Context, postID uuid.UUID) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string, includeHidden bool) (*models.BlogPost, error)
	ListPosts(ctx context.Context, category string, includeHidden bool) ([]models.BlogPost, error)
	FeaturedPosts(ctx context.Context) ([]models.BlogPost, error)
}

type DestinationService interface {
	CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error)
	UpdateDestination(ctx context.Context, destID uuid.UUID, req dto.UpdateDestinationRequest) (*models.Destination, error)
	SetVisibility(ctx context.Context, destID uuid.UUID, visible bool) (*models.Destination, error)
	DeleteDestination(ctx context.Context, destID uuid.UUID) error
	GetDestinationBySlug(ctx context.Context, slug string, includeHidden bool) (*models.Destination, error)
	ListDestinations(ctx context.Context, category, region string, includeHidden bool) ([]models.Destination, error)
}

type GalleryService interface {
	CreateCollection(ctx context.Context, req dto.CreateGalleryCollectionRequest) (*models.GalleryCollection, error)
	UpdateCollection(ctx context.Context, collectionID uuid.UUID, req dto.UpdateGalleryCollectionRequest) (*models.GalleryCollection, error)
	SetVisibility(ctx context.Context, collectionID uuid.UUID, visible bool) (*models.GalleryCollection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
	GetCollection(ctx context.Context, collectionID uuid.UUID, includeHidden bool) (*models.GalleryCollectionWithMedia, error)
	ListCollections(ctx context.Context, includeHidden bool) ([]models.GalleryCollection, error)
	AddMedia(ctx context.Context, collectionID uuid.UUID, req dto.AddGalleryMediaRequest) (*models.GalleryMedia, error)
	DeleteMedia(ctx context.Context, mediaID uuid.UUID) error
}

type PinService interface {
	CreatePin(ctx context.Context, req dto.CreateTravelPinRequest) (*models.TravelPin, error)
	UpdatePin(ctx context.Context, pinID uuid.UUID, req dto.UpdateTravelPinRequest) (*models.TravelPin, error)
	SetVisibility(ctx context.Context, pinID uuid.UUID, visible bool) (*models.TravelPin, error)
	DeletePin(ctx context.Context, pinID uuid.UUID) error
	ListPins(ctx context.Context, includeHidden bool) ([]models.TravelPin, error)
}

type ContentService interface {
	GetJourney(ctx context.Context) (*models.JourneyTracking, error)
	UpdateJourney(ctx context.Context, req dto.UpsertJourneyRequest) (*models.JourneyTracking, error)
	GetHomeContent(ctx context.Context) (*models.HomePageContent, error)
	UpdateHomeContent(ctx context.Context, req dto.UpsertHomeContentRequest) (*models.HomePageContent, error)
}

type StatsService interface {
	AdminStats(ctx context.Context) dto.AdminStatsResponse
}

type InboxService interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) error
	SaveMessage(ctx context.Context, req dto.ContactRequest) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, msgID uuid.UUID) (*models.ContactMessage, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateSession(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context, token string) error
	Profile() models.AdminProfile
}

type Routers struct {
	log         *slog.Logger
	sessionCfg  config.SessionConfig
	Blog        BlogService
	Destination DestinationService
	Gallery     GalleryService
	Pins        PinService
	Content     ContentService
	Stats       StatsService
	Inbox       InboxService
	Auth        AuthService
}

func NewRouter(
	log *slog.Logger,
	sessionCfg config.SessionConfig,
	blog BlogService,
	destination DestinationService,
	gallery GalleryService,
	pins PinService,
	content ContentService,
	stats StatsService,
	inbox InboxService,
	auth AuthService,
) *Routers {
	return &Routers{
		log:         log,
		sessionCfg:  sessionCfg,
		Blog:        blog,
		Destination: destination,
		Gallery:     gallery,
		Pins:        pins,
		Content:     content,
		Stats:       stats,
		Inbox:       inbox,
		Auth:        auth,
	}
}

// sessionToken extracts the opaque token from the cookie session, empty
// when no session was ever set.
func sessionToken(c echo.Context) string {
	sess, err := session.Get(sessionCookieName, c)
	if err != nil {
		return ""
	}

	token, _ := sess.Values["token"].(string)
	return token
}

func (r *Routers) setSessionToken(c echo.Context, token string) error {
	sess, err := session.Get(sessionCookieName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(r.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   r.sessionCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values["token"] = token

	return sess.Save(c.Request(), c.Response())
}

func (r *Routers) clearSession(c echo.Context) error {
	sess, err := session.Get(sessionCookieName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.sessionCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	delete(sess.Values, "token")

	return sess.Save(c.Request(), c.Response())
}

// isAdmin reports whether the request carries a live admin session.
// Check failures degrade to "not admin" so public reads keep working.
func (r *Routers) isAdmin(c echo.Context) bool {
	token := sessionToken(c)
	if token == "" {
		return false
	}

	ok, err := r.Auth.ValidateSession(c.Request().Context(), token)
	if err != nil {
		return false
	}

	return ok
}

// RequireAdmin rejects requests without a live admin session before the
// handler runs.
func (r *Routers) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthRequired)
		}

		ok, err := r.Auth.ValidateSession(c.Request().Context(), token)
		if err != nil || !ok {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthRequired)
		}

		return next(c)
	}
}

func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"
	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	token, err := r.Auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		log.Warn("login rejected", slog.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, response.ErrInvalidCredentials)
	}

	if err := r.setSessionToken(c, token); err != nil {
		log.Error("failed to save session cookie", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error("Failed to login"))
	}

	return c.JSON(http.StatusOK, response.OK("Login successful"))
}

func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"
	log := r.log.With(slog.String("op", op))

	if token := sessionToken(c); token != "" {
		if err := r.Auth.Logout(c.Request().Context(), token); err != nil {
			log.Error("failed to drop session", sl.Err(err))
		}
	}

	if err := r.clearSession(c); err != nil {
		log.Error("failed to clear session cookie", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.OK("Logged out successfully"))
}

func (r *Routers) AuthUser(c echo.Context) error {
	if !r.isAdmin(c) {
		return c.JSON(http.StatusUnauthorized, response.ErrNotAuthenticated)
	}

	return c.JSON(http.StatusOK, r.Auth.Profile())
}

func (r *Routers) AdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, r.Stats.AdminStats(c.Request().Context()))
}
