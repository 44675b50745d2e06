package app

import (
	"context"
	"log/slog"

	httpapp "milesalone/internal/app/http"
	"milesalone/internal/config"
	"milesalone/internal/repository"
	authservice "milesalone/internal/services/auth_service"
	blogservice "milesalone/internal/services/blog_service"
	contentservice "milesalone/internal/services/content_service"
	destinationservice "milesalone/internal/services/destination_service"
	galleryservice "milesalone/internal/services/gallery_service"
	inboxservice "milesalone/internal/services/inbox_service"
	pinservice "milesalone/internal/services/pin_service"
	statsservice "milesalone/internal/services/stats_service"
	"milesalone/internal/storage/postgresql"
	redisstorage "milesalone/internal/storage/redis"
	httprouters "milesalone/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *postgresql.Storage
	Cache      *redisstorage.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	cache := redisstorage.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	repo := repository.NewRepository(storage.DB, cache)

	auth, err := authservice.NewAuthService(log, repo.Sessions, cfg.Admin, cfg.Session.TTL)
	if err != nil {
		panic(err)
	}

	routers := httprouters.NewRouter(
		log,
		cfg.Session,
		blogservice.NewBlogService(log, repo.Blog),
		destinationservice.NewDestinationService(log, repo.Destinations),
		galleryservice.NewGalleryService(log, repo.Gallery),
		pinservice.NewPinService(log, repo.Pins),
		contentservice.NewContentService(log, repo.Content),
		statsservice.NewStatsService(log, repo.Blog, repo.Destinations, repo.Gallery, repo.Pins),
		inboxservice.NewInboxService(log, repo.Inbox),
		auth,
	)

	server := httpapp.New(log, cfg, routers, storage, cache)

	return &App{
		HTTPServer: server,
		Storage:    storage,
		Cache:      cache,
	}
}

func (a *App) Stop() {
	_ = a.HTTPServer.Stop()
	a.Storage.Stop()
	_ = a.Cache.Close()
}
