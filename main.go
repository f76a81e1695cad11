package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrental/configs"
	"carrental/middlewares"
	"carrental/pkg/geo"
	"carrental/pkg/logger"
	"carrental/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("carrental")

	// DB
	if err := configs.ConnectionDB(); err != nil {
		log.Error("failed to connect database", logger.Error(err))
		os.Exit(1)
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		log.Error("migration failed", logger.Error(err))
		os.Exit(1)
	}
	if err := configs.SeedAdmin(log); err != nil {
		log.Error("seed admin failed", logger.Error(err))
		os.Exit(1)
	}

	// Geocoding cache is optional; without redis every lookup goes upstream.
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	geocoder := geo.New(cfg.GeocoderURL, cfg.GeocoderAgent, cache, log)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, geocoder, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server running", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", logger.Error(err))
		os.Exit(1)
	}
	log.Info("server exited")
}
