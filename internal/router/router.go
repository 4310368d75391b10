package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/evakp/appointment-booking/internal/config"     // middleware settings
	"github.com/evakp/appointment-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/evakp/appointment-booking/internal/middleware" // response cache and rate limiting
)

// RegisterRoutes registers every route of the application on the
// provided Echo instance.  There is no authentication layer, so the
// only middleware in play is the Redis-backed response cache on slot
// listings and the token-bucket rate limiter on booking creation.
// Both degrade to pass-through when rdb is nil.
func RegisterRoutes(e *echo.Echo, b *handler.BookingHandler, s *handler.SlotHandler, a *handler.AdminHandler, rdb *redis.Client) {
	// Health probe for load balancers and monitoring systems.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	// Slot listings are read-heavy and tolerate a short staleness
	// window, so responses are cached in Redis with a small TTL.
	v1.GET("/slots", s.List, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	// Booking creation is the only write a client can perform; it is
	// rate limited per client IP to blunt accidental double-submits.
	v1.POST("/bookings", b.Create, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	// Confirmation screen payload; 404 sends the client back to the
	// booking entry point.
	v1.GET("/bookings/:reference", b.GetByReference)

	admin := e.Group("/v1/admin")
	admin.GET("/bookings", a.ListBookings)
	admin.POST("/bookings/:id/cancel", a.CancelBooking)
	admin.POST("/bookings/:id/complete", a.CompleteBooking)
	admin.POST("/slots/generate", a.GenerateSlots)
}
