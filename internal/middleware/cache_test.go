package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/evakp/appointment-booking/internal/config"
)

func newTestRedis(t *testing.T) *redis.Client {
    t.Helper()
    mr := miniredis.RunT(t)
    return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func cacheTestConfig() config.CacheConfig {
    return config.CacheConfig{
        Enabled:      true,
        Methods:      map[string]bool{"GET": true},
        TTL:          30 * time.Second,
        KeyStrategy:  "route_query",
        Prefix:       "cache",
        MaxBodyBytes: 1 << 20,
    }
}

func TestRedisCacheServesSecondRequestFromCache(t *testing.T) {
    rdb := newTestRedis(t)

    hits := 0
    e := echo.New()
    e.GET("/v1/slots", func(c echo.Context) error {
        hits++
        return c.JSON(http.StatusOK, echo.Map{"count": 2})
    }, NewRedisCache(cacheTestConfig(), rdb))

    first := httptest.NewRecorder()
    e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/slots?date=2025-03-10", nil))
    require.Equal(t, http.StatusOK, first.Code)
    assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

    second := httptest.NewRecorder()
    e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/slots?date=2025-03-10", nil))
    require.Equal(t, http.StatusOK, second.Code)
    assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
    assert.Equal(t, first.Body.String(), second.Body.String())
    assert.Equal(t, 1, hits, "handler must run only once")
}

func TestRedisCacheKeysIncludeQuery(t *testing.T) {
    rdb := newTestRedis(t)

    hits := 0
    e := echo.New()
    e.GET("/v1/slots", func(c echo.Context) error {
        hits++
        return c.JSON(http.StatusOK, echo.Map{"date": c.QueryParam("date")})
    }, NewRedisCache(cacheTestConfig(), rdb))

    for _, date := range []string{"2025-03-10", "2025-03-11"} {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots?date="+date, nil))
        require.Equal(t, http.StatusOK, rec.Code)
    }
    assert.Equal(t, 2, hits, "different dates must not share a cache entry")
}

func TestRedisCacheDisabledIsPassThrough(t *testing.T) {
    hits := 0
    e := echo.New()
    e.GET("/v1/slots", func(c echo.Context) error {
        hits++
        return c.String(http.StatusOK, "ok")
    }, NewRedisCache(cacheTestConfig(), nil)) // nil client disables caching

    for i := 0; i < 2; i++ {
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots", nil))
        require.Equal(t, http.StatusOK, rec.Code)
    }
    assert.Equal(t, 2, hits)
}
