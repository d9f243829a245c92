package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"
)

// RequestLogger writes one structured access-log line per request.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                // Let echo write the error response so the status is final.
                c.Error(err)
            }
            req := c.Request()
            status := c.Response().Status
            ev := logger.Info()
            if status >= 500 {
                ev = logger.Error()
            }
            ev.Str("method", req.Method).
                Str("path", req.URL.Path).
                Int("status", status).
                Str("ip", c.RealIP()).
                Dur("latency", time.Since(start)).
                Msg("request")
            return nil
        }
    }
}
