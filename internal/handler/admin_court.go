package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/repository"
)

// AdminCourtStore is the subset of repository.AdminCourtRepo used here.
type AdminCourtStore interface {
	List(ctx context.Context) ([]model.AdminCourt, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.AdminCourt, error)
	Create(ctx context.Context, c *model.AdminCourt) error
	Update(ctx context.Context, id primitive.ObjectID, u model.AdminCourtUpdate) (model.UpdateAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error)
}

// AdminCourtHandler serves /admin/courts.
type AdminCourtHandler struct {
	Courts AdminCourtStore
}

func NewAdminCourtHandler(courts AdminCourtStore) *AdminCourtHandler {
	if courts == nil {
		panic("nil admin court store passed to NewAdminCourtHandler")
	}
	return &AdminCourtHandler{Courts: courts}
}

func (h *AdminCourtHandler) List(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	items, err := h.Courts.List(ctx)
	if err != nil {
		return serverError(c, "list admin courts", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminCourtHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	court, err := h.Courts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusNotFound, "Court not found")
	}
	if err != nil {
		return serverError(c, "get admin court", err)
	}
	return c.JSON(http.StatusOK, court)
}

func (h *AdminCourtHandler) Create(c echo.Context) error {
	var court model.AdminCourt
	if err := bindStrict(c, &court); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Courts.Create(ctx, &court); err != nil {
		return serverError(c, "create admin court", err)
	}
	return c.JSON(http.StatusCreated, court)
}

// Update applies type, price, image and slots; other fields are rejected
// by strict binding.
func (h *AdminCourtHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var body model.AdminCourtUpdate
	if err := bindStrict(c, &body); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Courts.Update(ctx, id, body)
	if err != nil {
		return serverError(c, "update admin court", err)
	}
	if ack.MatchedCount == 0 {
		return message(c, http.StatusNotFound, "Court not found")
	}
	return c.JSON(http.StatusOK, ack)
}

func (h *AdminCourtHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Courts.Delete(ctx, id)
	if err != nil {
		return serverError(c, "delete admin court", err)
	}
	return c.JSON(http.StatusOK, ack)
}
