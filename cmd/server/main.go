package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // loads .env files in local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/roamly/group-travel-booking/internal/config"     // environment config loader
	"github.com/roamly/group-travel-booking/internal/database"   // MySQL connector
	"github.com/roamly/group-travel-booking/internal/handler"    // HTTP handlers
	"github.com/roamly/group-travel-booking/internal/middleware" // Redis cache and rate limiting
	"github.com/roamly/group-travel-booking/internal/queue"      // booking event consumer
	"github.com/roamly/group-travel-booking/internal/repository" // data access layer
	"github.com/roamly/group-travel-booking/internal/router"     // route registration
)

func main() {
	// Load .env if present; in production the environment is injected
	// directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the injected *sql.DB handle.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	destinations := repository.NewDestinationRepo(db)
	tours := repository.NewTourRepo(db)
	groups := repository.NewGroupRepo(db)
	wallets := repository.NewWalletRepo(db)
	bookings := repository.NewBookingRepo(db)
	transactions := repository.NewTransactionRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	userH := handler.NewUserHandler(users)
	catalogH := handler.NewCatalogHandler(destinations, tours)
	adminCatalogH := handler.NewAdminCatalogHandler(destinations, tours)
	groupH := handler.NewGroupHandler(groups, wallets)
	bookingH := handler.NewBookingHandler(bookings, tours, destinations)
	txH := handler.NewTransactionHandler(transactions, groups, wallets)
	diagH := handler.NewDiagHandler(destinations, "")

	e := echo.New()

	// Redis backs the response cache and the token-bucket rate limiter on
	// the public catalog routes.  When Redis is unreachable the client is
	// nil and both middlewares pass requests through unchanged.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; catalog caching and rate limiting disabled")
	}
	publicMW := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, userH, cfg.JWTSecret)
	router.RegisterPublic(e, catalogH, publicMW...)
	router.RegisterTraveler(e, groupH, bookingH, txH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminCatalogH, userH, bookingH, diagH, cfg.JWTSecret)

	// The consumer keeps its own reconnect loop; run it for the lifetime
	// of the process.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
