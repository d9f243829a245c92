package middleware

// identity.go exposes the identity JWTAuth attached to the request.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sports-club/internal/utils"
)

// IdentityFrom returns the identity stored by JWTAuth, if any.
func IdentityFrom(c echo.Context) (utils.Identity, bool) {
    id, ok := c.Get(ctxIdentity).(utils.Identity)
    return id, ok
}
