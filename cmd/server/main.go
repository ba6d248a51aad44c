package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/crumbline/bakeshop/internal/config"
	"github.com/crumbline/bakeshop/internal/es"
	"github.com/crumbline/bakeshop/internal/events"
	"github.com/crumbline/bakeshop/internal/httpserver"
	"github.com/crumbline/bakeshop/internal/logging"
	"github.com/crumbline/bakeshop/internal/middleware/loggingmw"
	"github.com/crumbline/bakeshop/internal/repo"
	"github.com/crumbline/bakeshop/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var prod *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		prod = events.NewProducer([]string{cfg.KAFKA_ADDRESS})
	}

	searchHandler := &httpserver.SearchHandler{Index: cfg.ES_INDEX}
	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Printf("elasticsearch unavailable, search endpoint disabled: %v", err)
		} else {
			searchHandler.ES = esClient
		}
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	r := &repo.GormRepo{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHandler{Svc: &service.AuthService{Repo: r, JWTSecret: jwtSecret}, Producer: prod},
		ProductHandler:  &httpserver.ProductHandler{Svc: &service.CatalogService{Repo: r}, Producer: prod, UploadDir: cfg.UPLOAD_DIR},
		OrderHandler:    &httpserver.OrderHandler{Svc: &service.OrderService{Repo: r}, Producer: prod},
		WishlistHandler: &httpserver.WishlistHandler{Svc: &service.WishlistService{Repo: r}},
		SearchHandler:   searchHandler,
		JWTSecret:       jwtSecret,
		UploadDir:       cfg.UPLOAD_DIR,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
