package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-club/internal/model"
)

// CouponStore inserts coupons. Coupons are create-only.
type CouponStore interface {
	Create(ctx context.Context, c *model.Coupon) error
}

type CouponHandler struct {
	Coupons CouponStore
}

func NewCouponHandler(store CouponStore) *CouponHandler {
	if store == nil {
		panic("nil coupon store passed to NewCouponHandler")
	}
	return &CouponHandler{Coupons: store}
}

// Create handles POST /admin/coupons.
func (h *CouponHandler) Create(c echo.Context) error {
	var coupon model.Coupon
	if err := bindStrict(c, &coupon); err != nil {
		return badRequest(c, err)
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Coupons.Create(ctx, &coupon); err != nil {
		return serverError(c, "create coupon", err)
	}
	return c.JSON(http.StatusCreated, coupon)
}
