package main

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/game"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/configs"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/upload"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/vision"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/ws"
)

func createServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if len(allowedOrigins) == 0 {
		r.Use(cors.Default())
		return r
	}

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		// Non-browser clients send no Origin header.
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden origin"})
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := configs.Load()
	if cfg.Debug {
		logger.SetDebug()
	}

	words := game.DefaultWordList()
	if cfg.WordsFile != "" {
		loaded, err := game.LoadWordList(cfg.WordsFile)
		if err != nil {
			logger.Fatalf("could not load words from %s: %v", cfg.WordsFile, err)
		}
		words = loaded
	}
	logger.Infof("word list ready: %d words", words.Len())

	registry := game.NewRegistry()
	coordinator := game.NewCoordinator(registry, words, cfg.RoundDuration)
	hub := ws.NewHub(coordinator, cfg.EventRate, cfg.EventBurst)
	coordinator.SetSink(hub)

	visionClient := vision.NewClient(cfg.VisionAPIURL, cfg.VisionAPIKey, cfg.VisionModel, hub)
	if !visionClient.Enabled() {
		logger.Warning("VISION_API_KEY not set, canvas descriptions disabled")
	}

	uploadHandler, err := upload.NewHandler(cfg.UploadsDir, visionClient)
	if err != nil {
		logger.Fatalf("could not prepare uploads dir %s: %v", cfg.UploadsDir, err)
	}

	r := createServer(cfg.AllowedOrigins)
	ws.RegisterRoute(r, hub)
	upload.RegisterRoute(r, uploadHandler)

	logger.Infof("server listening on %s, round duration %s", cfg.ListenAddr, cfg.RoundDuration)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
