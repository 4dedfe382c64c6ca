package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"qrmenu/config"
	"qrmenu/database"
	"qrmenu/route"
)

func main() {
	cfg := config.Load()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	// Connect once at startup. A failure is a warning, not a boot
	// failure: the server starts and /healthz reports db down.
	provider := database.NewProvider()
	if err := provider.Init(cfg.DB); err != nil {
		log.Printf("Warning: database connection failed, starting anyway: %v", err)
	} else if err := provider.Migrate(); err != nil {
		log.Printf("Warning: migration failed: %v", err)
	}
	provider.StartHealthProbe()
	defer provider.Close()

	router := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.Server.AllowedOrigins != "" {
		origins = append(origins, strings.Split(cfg.Server.AllowedOrigins, ",")...)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(router, provider, cfg)

	// Customer-facing pages: /{slug} and /{slug}/menu are both served by
	// the static renderer, which reads slug and view from the URL.
	router.StaticFile("/app.js", "./web/app.js")
	router.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
