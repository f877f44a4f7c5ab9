package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/video-study-bible-api/internal/config"
	"github.com/video-study-bible-api/internal/db"
	"github.com/video-study-bible-api/internal/handlers"
	"github.com/video-study-bible-api/internal/middleware"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/internal/repository/memory"
	"github.com/video-study-bible-api/internal/repository/postgres"
	"github.com/video-study-bible-api/internal/repository/studyjson"
	"github.com/video-study-bible-api/internal/services"
	"github.com/video-study-bible-api/internal/store"
	"github.com/video-study-bible-api/pkg/bibletv"
	"github.com/video-study-bible-api/pkg/llm"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	// Load the static study database. A failed load degrades to an empty
	// corpus: every lookup returns empty results instead of crashing.
	studyStore, err := store.Open(cfg.StudyDataPath)
	if err != nil {
		log.Printf("Study database unavailable, serving empty corpus: %v", err)
		studyStore = store.Empty()
	} else {
		verses, videos, commentaries := studyStore.Stats()
		log.Printf("Study database loaded: %d verses, %d videos, %d commentaries", verses, videos, commentaries)
	}

	contentRepo := studyjson.NewContentRepository(studyStore)

	// Create annotation repository based on configuration
	ctx := context.Background()
	var annotationRepo repository.AnnotationRepository
	switch cfg.AnnotationBackend {
	case "postgres":
		log.Println("Using PostgreSQL annotation backend")
		if err := db.InitPostgres(ctx, cfg.PostgresURI); err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		annotationRepo, err = postgres.NewAnnotationRepository(db.GetPostgres())
		if err != nil {
			log.Fatalf("Failed to create annotation repository: %v", err)
		}
	default:
		log.Println("Using in-memory annotation backend (session-scoped)")
		annotationRepo = memory.NewAnnotationRepository()
	}

	// Create chat client based on configuration
	var chatClient llm.Client
	var vertexClient *llm.VertexClient // For cleanup
	switch cfg.ChatProvider {
	case "vertex":
		log.Println("Using Vertex AI chat provider")
		vertexClient, err = llm.NewVertexClient(ctx, llm.VertexConfig{
			ProjectID: cfg.GCPProjectID,
			Location:  cfg.GCPLocation,
			Model:     cfg.VertexChatModel,
			MaxTokens: cfg.ChatMaxTokens,
		})
		if err != nil {
			log.Fatalf("Failed to create Vertex AI chat client: %v", err)
		}
		chatClient = vertexClient
	default:
		log.Println("Using Anthropic chat provider")
		chatClient = llm.NewAnthropicClient(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.ChatMaxTokens)
	}

	// Create services
	verseSvc := services.NewVerseService(contentRepo)
	clipSvc := services.NewClipService(contentRepo)
	commentarySvc := services.NewCommentaryService(contentRepo)
	crossRefSvc := services.NewCrossRefService(contentRepo)
	topicSvc := services.NewTopicService(contentRepo)
	searchSvc := services.NewSearchService(contentRepo)
	chatSvc := services.NewChatService(contentRepo, chatClient)
	bibleSvc := services.NewBibleTextService(bibletv.New(cfg.BibleTVBaseURL, cfg.BibleTVAPIKey), cfg.BibleTranslation)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	handlers.NewHealthHandler(studyStore).RegisterRoutes(api)
	handlers.NewVerseHandler(verseSvc, clipSvc).RegisterRoutes(api)
	handlers.NewCommentaryHandler(commentarySvc, crossRefSvc).RegisterRoutes(api)
	handlers.NewTopicHandler(topicSvc).RegisterRoutes(api)
	handlers.NewSearchHandler(searchSvc).RegisterRoutes(api)
	handlers.NewChatHandler(chatSvc).RegisterRoutes(api)
	handlers.NewBibleHandler(bibleSvc).RegisterRoutes(api)
	handlers.NewAnnotationHandler(annotationRepo).RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if db.PostgresEnabled() {
		if err := db.ClosePostgres(); err != nil {
			log.Printf("Error closing PostgreSQL: %v", err)
		}
	}

	// Close Vertex AI client if used
	if vertexClient != nil {
		if err := vertexClient.Close(); err != nil {
			log.Printf("Error closing Vertex AI client: %v", err)
		}
	}

	log.Println("Server stopped")
}
