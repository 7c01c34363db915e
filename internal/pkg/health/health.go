// Package health exposes liveness and readiness endpoints. Liveness always
// answers; readiness pings the dependencies the service cannot run without.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/okvist/patronpay/internal/pkg/database"
)

// Checker reports whether one dependency is reachable.
type Checker struct {
	Name  string
	Check func(ctx context.Context) error
}

// PostgresChecker pings the transaction store
func PostgresChecker(client *database.PostgresClient) Checker {
	return Checker{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			return client.GetDB().PingContext(ctx)
		},
	}
}

// RedisChecker pings the fingerprint store
func RedisChecker(client *database.RedisClient) Checker {
	return Checker{
		Name: "redis",
		Check: func(ctx context.Context) error {
			return client.GetClient().Ping(ctx).Err()
		},
	}
}

// RegisterEndpoints registers /health and /ready on the router
func RegisterEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		failures := map[string]string{}
		for _, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				failures[checker.Name] = err.Error()
			}
		}

		if len(failures) > 0 {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":   "unavailable",
				"failures": failures,
			})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})
}
