package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/evakp/appointment-booking/internal/config"
)

func limiterTestConfig() config.RateLimitConfig {
    return config.RateLimitConfig{
        Enabled:        true,
        Capacity:       2,
        RefillTokens:   1,
        RefillInterval: time.Minute,
        TTL:            10 * time.Minute,
        KeyStrategy:    "ip_route",
        Prefix:         "rl",
    }
}

func TestTokenBucketBlocksAfterCapacity(t *testing.T) {
    rdb := newTestRedis(t)

    e := echo.New()
    e.POST("/v1/bookings", func(c echo.Context) error {
        return c.String(http.StatusCreated, "created")
    }, NewTokenBucket(limiterTestConfig(), rdb))

    codes := make([]int, 0, 3)
    for i := 0; i < 3; i++ {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))
        codes = append(codes, rec.Code)
    }

    assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestTokenBucketSetsRetryAfterOnBlock(t *testing.T) {
    rdb := newTestRedis(t)

    cfg := limiterTestConfig()
    cfg.Capacity = 1

    e := echo.New()
    e.POST("/v1/bookings", func(c echo.Context) error {
        return c.String(http.StatusCreated, "created")
    }, NewTokenBucket(cfg, rdb))

    first := httptest.NewRecorder()
    e.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))
    require.Equal(t, http.StatusCreated, first.Code)

    second := httptest.NewRecorder()
    e.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))
    require.Equal(t, http.StatusTooManyRequests, second.Code)
    assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestTokenBucketDisabledIsPassThrough(t *testing.T) {
    cfg := limiterTestConfig()
    cfg.Enabled = false

    e := echo.New()
    e.POST("/v1/bookings", func(c echo.Context) error {
        return c.String(http.StatusCreated, "created")
    }, NewTokenBucket(cfg, nil))

    for i := 0; i < 5; i++ {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))
        require.Equal(t, http.StatusCreated, rec.Code)
    }
}
