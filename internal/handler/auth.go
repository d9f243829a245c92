package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/repository"
	"github.com/iliyamo/sports-club/internal/utils"
)

// UserStore is the subset of repository.UserRepo used by AuthHandler.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// TokenIssuer is implemented by utils.TokenService.
type TokenIssuer interface {
	Issue(id utils.Identity) (utils.AccessToken, error)
}

// AuthHandler bundles dependencies for the login and account endpoints.
type AuthHandler struct {
	Users  UserStore
	Tokens TokenIssuer
}

func NewAuthHandler(users UserStore, tokens TokenIssuer) *AuthHandler {
	if users == nil || tokens == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Login handles POST /login: unknown email is 404, a wrong password is 401,
// otherwise a token carrying the account's email and role is issued.
func (h *AuthHandler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindStrict(c, &req); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		return serverError(c, "find user", err)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return message(c, http.StatusUnauthorized, "Wrong password")
	}

	tok, err := h.Tokens.Issue(utils.Identity{Email: u.Email, Role: u.Role})
	if err != nil {
		return serverError(c, "issue token", err)
	}
	return c.JSON(http.StatusOK, model.LoginResponse{Token: tok.Token, Role: u.Role})
}

// ListAccounts handles GET /admin/all-courts, which lists user accounts.
// Password hashes are never serialized.
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	users, err := h.Users.List(ctx)
	if err != nil {
		return serverError(c, "list users", err)
	}
	return c.JSON(http.StatusOK, users)
}
