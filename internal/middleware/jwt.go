package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for splitting the header

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/sports-club/internal/utils" // token identity type
)

// TokenVerifier is the part of utils.TokenService the middleware needs.
type TokenVerifier interface {
    Verify(raw string) (utils.Identity, error)
}

// Context keys under which JWTAuth stores the decoded token.
const (
    ctxIdentity = "identity"
    ctxEmail    = "email"
    ctxRole     = "role"
)

// JWTAuth returns an Echo middleware that validates a bearer token and
// injects the token's email and role into the request context.  A request
// without an Authorization header is rejected with 401; a header whose
// token fails verification (bad signature, expired, or missing after the
// scheme) is rejected with 403.
func JWTAuth(tokens TokenVerifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get(echo.HeaderAuthorization)
            if auth == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No token"})
            }
            // The token is the second whitespace-separated field, after
            // the scheme ("Bearer <token>").
            var raw string
            if fields := strings.Fields(auth); len(fields) > 1 {
                raw = fields[1]
            }
            id, err := tokens.Verify(raw)
            if err != nil {
                return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token"})
            }
            // Downstream handlers read these with c.Get() or IdentityFrom.
            c.Set(ctxIdentity, id)
            c.Set(ctxEmail, id.Email)
            c.Set(ctxRole, id.Role)
            return next(c)
        }
    }
}
