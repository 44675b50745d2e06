package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"milesalone/internal/config"
	appmw "milesalone/internal/middleware"
	httprouters "milesalone/internal/transport/http"
	"milesalone/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HealthChecker is implemented by both storage backends.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	db      HealthChecker
	cache   HealthChecker
	host    string
	port    string
}

func New(log *slog.Logger, cfg *config.Config, routers *httprouters.Routers, db, cache HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.Session.Secret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		db:      db,
		cache:   cache,
		host:    cfg.HTTP.Host,
		port:    cfg.HTTP.Port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) health(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.db.HealthCheck(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, response.Error("Database unavailable"))
	}
	if err := s.cache.HealthCheck(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, response.Error("Session store unavailable"))
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) BuildRouters() {
	r := s.routers

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.e.Group("/api")
	{
		api.GET("/health", s.health)

		api.POST("/auth/login", r.Login)
		api.POST("/auth/logout", r.Logout)
		api.GET("/auth/user", r.AuthUser)

		api.GET("/blog-posts", r.ListBlogPosts)
		api.GET("/blog-posts/featured", r.FeaturedBlogPosts)
		api.GET("/blog-posts/by-id/:id", r.GetBlogPostByID)
		api.GET("/blog-posts/:slug", r.GetBlogPostBySlug)
		api.POST("/blog-posts", r.CreateBlogPost, r.RequireAdmin)
		api.PUT("/blog-posts/:id", r.UpdateBlogPost, r.RequireAdmin)
		api.PATCH("/blog-posts/:id/visibility", r.SetBlogPostVisibility, r.RequireAdmin)
		api.DELETE("/blog-posts/:id", r.DeleteBlogPost, r.RequireAdmin)

		api.GET("/destinations", r.ListDestinations)
		api.GET("/destinations/:slug", r.GetDestinationBySlug)
		api.POST("/destinations", r.CreateDestination, r.RequireAdmin)
		api.PUT("/destinations/:id", r.UpdateDestination, r.RequireAdmin)
		api.PATCH("/destinations/:id/visibility", r.SetDestinationVisibility, r.RequireAdmin)
		api.DELETE("/destinations/:id", r.DeleteDestination, r.RequireAdmin)

		api.GET("/gallery", r.ListGalleryCollections)
		api.GET("/gallery/:id", r.GetGalleryCollection)
		api.POST("/gallery", r.CreateGalleryCollection, r.RequireAdmin)
		api.PUT("/gallery/:id", r.UpdateGalleryCollection, r.RequireAdmin)
		api.PATCH("/gallery/:id/visibility", r.SetGalleryCollectionVisibility, r.RequireAdmin)
		api.DELETE("/gallery/:id", r.DeleteGalleryCollection, r.RequireAdmin)
		api.POST("/gallery/:id/media", r.AddGalleryMedia, r.RequireAdmin)
		api.DELETE("/gallery/media/:id", r.DeleteGalleryMedia, r.RequireAdmin)

		api.GET("/travel-pins", r.ListTravelPins)
		api.POST("/travel-pins", r.CreateTravelPin, r.RequireAdmin)
		api.PUT("/travel-pins/:id", r.UpdateTravelPin, r.RequireAdmin)
		api.PATCH("/travel-pins/:id/visibility", r.SetTravelPinVisibility, r.RequireAdmin)
		api.DELETE("/travel-pins/:id", r.DeleteTravelPin, r.RequireAdmin)

		api.GET("/journey", r.GetJourney)
		api.PUT("/journey", r.UpdateJourney, r.RequireAdmin)

		api.GET("/home-content", r.GetHomeContent)
		api.PUT("/home-content", r.UpdateHomeContent, r.RequireAdmin)
		api.POST("/home-content", r.CreateHomeContent, r.RequireAdmin)

		api.POST("/newsletter/subscribe", r.Subscribe)
		api.POST("/contact", r.Contact)
		api.GET("/contact/messages", r.ListContactMessages, r.RequireAdmin)
		api.PATCH("/contact/messages/:id/read", r.MarkContactMessageRead, r.RequireAdmin)

		api.GET("/admin/stats", r.AdminStats, r.RequireAdmin)
	}
}
