package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/autoservehq/autoserve-api/internal/config"
	dbpkg "github.com/autoservehq/autoserve-api/internal/db"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/notify"
	"github.com/autoservehq/autoserve-api/internal/routes"
	"github.com/autoservehq/autoserve-api/internal/storage"
)

func main() {

	godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	uploader := storage.NewUploader(storage.NewS3Client(cfg), cfg)

	// Provider push notifications ride on redis pub/sub instead of the
	// clients polling the booking table.
	notifier := notify.NewNotifier(rdb, db, notify.NewExpoSender(cfg.ExpoPushURL))
	go notifier.Start(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, uploader, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
