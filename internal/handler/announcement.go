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

// AnnouncementStore is the subset of repository.AnnouncementRepo used here.
type AnnouncementStore interface {
	List(ctx context.Context) ([]model.Announcement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) error
	Update(ctx context.Context, id primitive.ObjectID, u model.AnnouncementUpdate) (model.UpdateAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error)
}

// AnnouncementHandler serves /admin/announcement.
type AnnouncementHandler struct {
	Announcements AnnouncementStore
}

func NewAnnouncementHandler(store AnnouncementStore) *AnnouncementHandler {
	if store == nil {
		panic("nil announcement store passed to NewAnnouncementHandler")
	}
	return &AnnouncementHandler{Announcements: store}
}

func (h *AnnouncementHandler) List(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	items, err := h.Announcements.List(ctx)
	if err != nil {
		return serverError(c, "list announcements", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AnnouncementHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	a, err := h.Announcements.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return message(c, http.StatusNotFound, "Announcement not found")
	}
	if err != nil {
		return serverError(c, "get announcement", err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnnouncementHandler) Create(c echo.Context) error {
	var a model.Announcement
	if err := bindStrict(c, &a); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Announcements.Create(ctx, &a); err != nil {
		return serverError(c, "create announcement", err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var body model.AnnouncementUpdate
	if err := bindStrict(c, &body); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Announcements.Update(ctx, id, body)
	if err != nil {
		return serverError(c, "update announcement", err)
	}
	if ack.MatchedCount == 0 {
		return message(c, http.StatusNotFound, "Announcement not found")
	}
	return c.JSON(http.StatusOK, ack)
}

func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Announcements.Delete(ctx, id)
	if err != nil {
		return serverError(c, "delete announcement", err)
	}
	return c.JSON(http.StatusOK, ack)
}
