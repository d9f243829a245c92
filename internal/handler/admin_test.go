package handler

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/repository/memory"
)

func adminServer(courts *memory.AdminCourts, notes *memory.Announcements, coupons *memory.Coupons) *echo.Echo {
	e := newEcho()
	ac := NewAdminCourtHandler(courts)
	e.GET("/admin/courts", ac.List)
	e.GET("/admin/courts/:id", ac.Get)
	e.POST("/admin/courts", ac.Create)
	e.PUT("/admin/courts/:id", ac.Update)
	e.DELETE("/admin/courts/:id", ac.Delete)
	an := NewAnnouncementHandler(notes)
	e.GET("/admin/announcement", an.List)
	e.GET("/admin/announcement/:id", an.Get)
	e.POST("/admin/announcement", an.Create)
	e.PUT("/admin/announcement/:id", an.Update)
	e.DELETE("/admin/announcement/:id", an.Delete)
	e.POST("/admin/coupons", NewCouponHandler(coupons).Create)
	return e
}

func TestAdminCourtLifecycle(t *testing.T) {
	store := &memory.AdminCourts{}
	e := adminServer(store, &memory.Announcements{}, &memory.Coupons{})

	rec := do(e, http.MethodPost, "/admin/courts", `{"type":"squash","price":12.5,"slots":["18:00"]}`)
	expect(t, rec, http.StatusCreated, "")
	created := decode[model.AdminCourt](t, rec)
	if created.ID.IsZero() || created.Type != "squash" {
		t.Fatalf("created = %+v", created)
	}
	path := "/admin/courts/" + created.ID.Hex()

	rec = do(e, http.MethodPut, path, `{"price":15}`)
	expect(t, rec, http.StatusOK, "")
	if ack := decode[model.UpdateAck](t, rec); ack.MatchedCount != 1 || ack.ModifiedCount != 1 {
		t.Errorf("ack = %+v", ack)
	}
	got := decode[model.AdminCourt](t, do(e, http.MethodGet, path, ""))
	want := model.AdminCourt{ID: created.ID, Type: "squash", Price: 15, Slots: []string{"18:00"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after update %+v, want %+v", got, want)
	}

	list := decode[[]model.AdminCourt](t, do(e, http.MethodGet, "/admin/courts", ""))
	if len(list) != 1 {
		t.Errorf("list len = %d", len(list))
	}

	if ack := decode[model.DeleteAck](t, do(e, http.MethodDelete, path, "")); ack.DeletedCount != 1 {
		t.Errorf("delete ack = %+v", ack)
	}
	expect(t, do(e, http.MethodGet, path, ""), http.StatusNotFound, "Court not found")
	expect(t, do(e, http.MethodPut, path, `{"price":1}`), http.StatusNotFound, "Court not found")
}

func TestAdminCourtRejectsBadInput(t *testing.T) {
	e := adminServer(&memory.AdminCourts{}, &memory.Announcements{}, &memory.Coupons{})
	expect(t, do(e, http.MethodPost, "/admin/courts", `{"price":3}`), http.StatusBadRequest, "type is required")
	expect(t, do(e, http.MethodPost, "/admin/courts", `{"type":"x","price":-1}`), http.StatusBadRequest, "price is invalid (gte)")
	expect(t, do(e, http.MethodPut, "/admin/courts/"+missingID, `{"_id":"x"}`), http.StatusBadRequest, `unknown field "_id"`)
	expect(t, do(e, http.MethodDelete, "/admin/courts/nope", ""), http.StatusBadRequest, "Invalid id")
}

func TestAnnouncementLifecycle(t *testing.T) {
	store := &memory.Announcements{}
	e := adminServer(&memory.AdminCourts{}, store, &memory.Coupons{})

	rec := do(e, http.MethodPost, "/admin/announcement", `{"title":"Closed","des":"Pool maintenance","date":"2024-05-01"}`)
	expect(t, rec, http.StatusCreated, "")
	created := decode[model.Announcement](t, rec)
	path := "/admin/announcement/" + created.ID.Hex()

	expect(t, do(e, http.MethodPut, path, `{"des":"Pool reopens Friday"}`), http.StatusOK, "")
	got, err := store.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := model.Announcement{ID: created.ID, Title: "Closed", Des: "Pool reopens Friday", Date: "2024-05-01"}
	if *got != want {
		t.Errorf("stored %+v, want %+v", *got, want)
	}

	expect(t, do(e, http.MethodGet, "/admin/announcement/"+missingID, ""), http.StatusNotFound, "Announcement not found")
	if ack := decode[model.DeleteAck](t, do(e, http.MethodDelete, "/admin/announcement/"+missingID, "")); ack.DeletedCount != 0 {
		t.Errorf("delete of missing = %+v", ack)
	}
	expect(t, do(e, http.MethodPost, "/admin/announcement", `{"des":"x","date":"d"}`), http.StatusBadRequest, "title is required")
}

func TestCreateCoupon(t *testing.T) {
	store := &memory.Coupons{}
	e := adminServer(&memory.AdminCourts{}, &memory.Announcements{}, store)

	rec := do(e, http.MethodPost, "/admin/coupons", `{"code":"SUMMER10","discount":10,"description":"Summer"}`)
	expect(t, rec, http.StatusCreated, "")
	created := decode[model.Coupon](t, rec)
	if created.ID.IsZero() {
		t.Fatal("coupon id not assigned")
	}
	if all := store.All(); len(all) != 1 || all[0] != created {
		t.Errorf("stored coupons = %+v", all)
	}

	expect(t, do(e, http.MethodPost, "/admin/coupons", `{"code":"BIG","discount":150}`), http.StatusBadRequest, "discount is invalid (lte)")
	expect(t, do(e, http.MethodPost, "/admin/coupons", `{"discount":5}`), http.StatusBadRequest, "code is required")
}
