package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/parentadvocate/advocate-backend/internal/ai"
	"github.com/parentadvocate/advocate-backend/internal/config"
	"github.com/parentadvocate/advocate-backend/internal/database"
	"github.com/parentadvocate/advocate-backend/internal/handlers"
	"github.com/parentadvocate/advocate-backend/internal/middleware"
	"github.com/parentadvocate/advocate-backend/internal/routes"
	"github.com/parentadvocate/advocate-backend/internal/services"
	"github.com/parentadvocate/advocate-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Initialize the assistant. Missing credentials degrade chat to an
	// in-band error message instead of failing startup.
	var assistant *services.Assistant
	if cfg.GeminiAPIKey != "" {
		provider, err := ai.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.GenModel)
		if err != nil {
			log.Printf("⚠️  WARNING: failed to initialize Gemini client: %v", err)
			assistant = services.NewAssistant(nil, cfg.AITimeout)
		} else {
			defer provider.Close()
			assistant = services.NewAssistant(provider, cfg.AITimeout)
			log.Println("✅ Assistant initialized")
		}
	} else {
		log.Println("⚠️  WARNING: GEMINI_API_KEY not set. Assistant replies will be unavailable.")
		assistant = services.NewAssistant(nil, cfg.AITimeout)
	}

	handlers.InitHandlers(store.New(database.PostgresDB), assistant)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogMiddleware)

	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.RateLimitMiddleware)
		r.Use(middleware.LoginRateLimit)
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 Advocate backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
