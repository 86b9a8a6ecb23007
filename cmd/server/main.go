package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/transitdesk/bus-seat-layout/internal/config"     // Internal config loader
	"github.com/transitdesk/bus-seat-layout/internal/database"   // MySQL connector
	"github.com/transitdesk/bus-seat-layout/internal/handler"    // HTTP handlers
	"github.com/transitdesk/bus-seat-layout/internal/layout"     // Seat grid engine
	"github.com/transitdesk/bus-seat-layout/internal/middleware" // Cache and rate limit middleware
	"github.com/transitdesk/bus-seat-layout/internal/queue"      // layout.saved consumer
	"github.com/transitdesk/bus-seat-layout/internal/repository" // Data access layer
	"github.com/transitdesk/bus-seat-layout/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env always wins

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Connect to MySQL
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // May be nil; caching and rate limiting degrade gracefully
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	buses := repository.NewBusRepo(db)
	floors := repository.NewFloorRepo(db)
	seats := repository.NewSeatRepo(db)
	layouts := repository.NewLayoutRepo(db)

	engine := layout.NewEngine(config.LoadLayoutSettings()) // Grid semantics with env-tuned settings

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens)
	operatorH := handler.NewOperatorHandler(buses, floors, seats, layouts, engine)
	publicH := &handler.PublicHandler{BusRepo: buses, FloorRepo: floors, SeatRepo: seats, Engine: engine}

	e := echo.New()

	// Global middleware: token bucket rate limiting first, then response cache.
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}

	router.RegisterRoutes(e)                        // Health check
	router.RegisterAuth(e, authH, cfg.JWTSecret)    // Auth endpoints
	router.RegisterOperator(e, operatorH, cfg.JWTSecret) // Operator fleet and layout editing
	router.RegisterPublic(e, publicH)               // Public browsing

	// Background consumer appends layout.saved events to logs/layout.log.
	go func() {
		if err := queue.StartLayoutConsumer(); err != nil {
			log.Printf("layout consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
