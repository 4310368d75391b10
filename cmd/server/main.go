package main // Entry point package

import (
	"database/sql" // database handle passed into the store adapter
	"log"          // Logging library

	"github.com/joho/godotenv"    // optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/evakp/appointment-booking/internal/config"   // Internal config loader
	"github.com/evakp/appointment-booking/internal/database" // MySQL connection pool
	"github.com/evakp/appointment-booking/internal/handler"  // HTTP handlers
	"github.com/evakp/appointment-booking/internal/queue"    // booking event consumer
	"github.com/evakp/appointment-booking/internal/router"   // Internal router setup
	"github.com/evakp/appointment-booking/internal/store"    // slot store adapter
	"github.com/evakp/appointment-booking/internal/validation"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env always wins
	cfg := config.Load()

	// The store endpoint and credentials are allowed to be absent: the
	// shell still serves and every store operation degrades to failure.
	var db *sql.DB
	if cfg.Store.Complete() {
		opened, err := database.Open(cfg.Store)
		if err != nil {
			log.Printf("store connection failed: %v; serving in degraded mode", err)
		} else {
			db = opened
		}
	} else {
		log.Printf("store endpoint/credentials missing; serving in degraded mode")
	}
	adapter := store.New(db)

	rdb := config.NewRedisClient() // nil disables caching and rate limiting

	// Background consumer appending booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()             // Create Echo instance
	e.Validator = validation.New()
	router.RegisterRoutes(e,
		handler.NewBookingHandler(adapter),
		handler.NewSlotHandler(adapter),
		handler.NewAdminHandler(adapter, cfg.Slots),
		rdb,
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
