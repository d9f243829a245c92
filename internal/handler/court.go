package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/queue"
	"github.com/iliyamo/sports-club/internal/repository"
)

// CourtStore is the subset of repository.CourtRepo used by CourtHandler.
type CourtStore interface {
	List(ctx context.Context) ([]model.Court, error)
	ListByEmail(ctx context.Context, email string) ([]model.Court, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Court, error)
	Create(ctx context.Context, c *model.Court) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (model.UpdateAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteAck, error)
}

// CourtHandler serves the member-facing /all-court and /my-courts routes.
type CourtHandler struct {
	Courts CourtStore
	Events EventPublisher
}

// NewCourtHandler panics on a nil store; events may be nil.
func NewCourtHandler(courts CourtStore, events EventPublisher) *CourtHandler {
	if courts == nil {
		panic("nil court store passed to NewCourtHandler")
	}
	return &CourtHandler{Courts: courts, Events: events}
}

// ListCourts handles GET /all-court.
func (h *CourtHandler) ListCourts(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	items, err := h.Courts.List(ctx)
	if err != nil {
		return serverError(c, "list courts", err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetCourt handles GET /all-court/:id.
func (h *CourtHandler) GetCourt(c echo.Context) error {
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
		return serverError(c, "get court", err)
	}
	return c.JSON(http.StatusOK, court)
}

// MyCourts handles GET /my-courts?email=.
func (h *CourtHandler) MyCourts(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		return message(c, http.StatusBadRequest, "Email query is required")
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	items, err := h.Courts.ListByEmail(ctx, email)
	if err != nil {
		return serverError(c, "list courts by email", err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateCourt handles POST /all-court. New submissions start out pending
// unless the body names another valid status.
func (h *CourtHandler) CreateCourt(c echo.Context) error {
	var court model.Court
	if err := bindStrict(c, &court); err != nil {
		return badRequest(c, err)
	}
	if court.Status == "" {
		court.Status = model.CourtPending
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Courts.Create(ctx, &court); err != nil {
		return serverError(c, "create court", err)
	}
	h.publish(c, queue.CourtEvent{
		Type:      queue.CourtSubmitted,
		CourtID:   court.ID.Hex(),
		UserEmail: court.UserEmail,
		CourtType: court.Type,
		Status:    court.Status,
	})
	return c.JSON(http.StatusCreated, court)
}

// UpdateCourtStatus handles PUT /all-court/:id. Only status is mutable.
func (h *CourtHandler) UpdateCourtStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var body model.CourtStatusUpdate
	if err := bindStrict(c, &body); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Courts.UpdateStatus(ctx, id, body.Status)
	if err != nil {
		return serverError(c, "update court status", err)
	}
	if ack.MatchedCount == 0 {
		return message(c, http.StatusNotFound, "Court not found")
	}
	if ack.ModifiedCount > 0 {
		h.publish(c, queue.CourtEvent{
			Type:    queue.CourtStatusChanged,
			CourtID: id.Hex(),
			Status:  body.Status,
		})
	}
	return c.JSON(http.StatusOK, ack)
}

// DeleteCourt handles DELETE /all-court/:id. Deleting a missing court
// succeeds with deletedCount 0.
func (h *CourtHandler) DeleteCourt(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	ack, err := h.Courts.Delete(ctx, id)
	if err != nil {
		return serverError(c, "delete court", err)
	}
	return c.JSON(http.StatusOK, ack)
}

// publish sends ev when events are enabled. Failures are logged only.
func (h *CourtHandler) publish(c echo.Context, ev queue.CourtEvent) {
	if h.Events == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.Events.PublishCourtEvent(ctx, ev); err != nil {
		log.Warn().Err(err).Str("type", ev.Type).Str("court_id", ev.CourtID).Msg("court event not published")
	}
}
