// Package memory provides in-memory stand-ins for the document store
// repositories. They satisfy the handler store interfaces and are used by
// tests; they are safe for concurrent use.
package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/repository"
)

// collection is an insertion-ordered map of documents keyed by id.
type collection[T any] struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]T
	// Err, when set, is returned by every operation.
	Err error
}

func (c *collection[T]) list(keep func(T) bool) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := []T{}
	for _, id := range c.order {
		if d := c.docs[id]; keep == nil || keep(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (c *collection[T]) get(id primitive.ObjectID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if c.Err != nil {
		return zero, c.Err
	}
	d, ok := c.docs[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	return d, nil
}

func (c *collection[T]) put(id primitive.ObjectID, doc T) {
	if c.docs == nil {
		c.docs = map[primitive.ObjectID]T{}
	}
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
}

// update applies fn to the document with id; fn reports whether it changed.
func (c *collection[T]) update(id primitive.ObjectID, fn func(*T) bool) (model.UpdateAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return model.UpdateAck{}, c.Err
	}
	d, ok := c.docs[id]
	if !ok {
		return model.UpdateAck{Acknowledged: true}, nil
	}
	ack := model.UpdateAck{Acknowledged: true, MatchedCount: 1}
	if fn(&d) {
		ack.ModifiedCount = 1
		c.docs[id] = d
	}
	return ack, nil
}

func (c *collection[T]) delete(id primitive.ObjectID) (model.DeleteAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return model.DeleteAck{}, c.Err
	}
	if _, ok := c.docs[id]; !ok {
		return model.DeleteAck{Acknowledged: true}, nil
	}
	delete(c.docs, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

// add stores doc under a fresh id and returns the id.
func (c *collection[T]) add(doc func(primitive.ObjectID) T) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return primitive.NilObjectID, c.Err
	}
	id := primitive.NewObjectID()
	c.put(id, doc(id))
	return id, nil
}

// Courts is the in-memory court store.
type Courts struct{ collection[model.Court] }

func (s *Courts) List(_ context.Context) ([]model.Court, error) { return s.list(nil) }

func (s *Courts) ListByEmail(_ context.Context, email string) ([]model.Court, error) {
	return s.list(func(c model.Court) bool { return c.UserEmail == email })
}

func (s *Courts) GetByID(_ context.Context, id primitive.ObjectID) (*model.Court, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Courts) Create(_ context.Context, c *model.Court) error {
	id, err := s.add(func(id primitive.ObjectID) model.Court {
		cp := *c
		cp.ID = id
		cp.Slots = append([]string(nil), c.Slots...)
		return cp
	})
	if err == nil {
		c.ID = id
	}
	return err
}

func (s *Courts) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (model.UpdateAck, error) {
	return s.update(id, func(c *model.Court) bool {
		if c.Status == status {
			return false
		}
		c.Status = status
		return true
	})
}

func (s *Courts) Delete(_ context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return s.delete(id)
}

// AdminCourts is the in-memory admin court store.
type AdminCourts struct{ collection[model.AdminCourt] }

func (s *AdminCourts) List(_ context.Context) ([]model.AdminCourt, error) { return s.list(nil) }

func (s *AdminCourts) GetByID(_ context.Context, id primitive.ObjectID) (*model.AdminCourt, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AdminCourts) Create(_ context.Context, c *model.AdminCourt) error {
	id, err := s.add(func(id primitive.ObjectID) model.AdminCourt {
		cp := *c
		cp.ID = id
		return cp
	})
	if err == nil {
		c.ID = id
	}
	return err
}

func (s *AdminCourts) Update(_ context.Context, id primitive.ObjectID, u model.AdminCourtUpdate) (model.UpdateAck, error) {
	return s.update(id, func(c *model.AdminCourt) bool {
		before := *c
		if u.Type != nil {
			c.Type = *u.Type
		}
		if u.Price != nil {
			c.Price = *u.Price
		}
		if u.Image != nil {
			c.Image = *u.Image
		}
		if u.Slots != nil {
			c.Slots = append([]string(nil), (*u.Slots)...)
		}
		return before.Type != c.Type || before.Price != c.Price || before.Image != c.Image ||
			strings.Join(before.Slots, "\x00") != strings.Join(c.Slots, "\x00")
	})
}

func (s *AdminCourts) Delete(_ context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return s.delete(id)
}

// Announcements is the in-memory announcement store.
type Announcements struct{ collection[model.Announcement] }

func (s *Announcements) List(_ context.Context) ([]model.Announcement, error) { return s.list(nil) }

func (s *Announcements) GetByID(_ context.Context, id primitive.ObjectID) (*model.Announcement, error) {
	a, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Announcements) Create(_ context.Context, a *model.Announcement) error {
	id, err := s.add(func(id primitive.ObjectID) model.Announcement {
		cp := *a
		cp.ID = id
		return cp
	})
	if err == nil {
		a.ID = id
	}
	return err
}

func (s *Announcements) Update(_ context.Context, id primitive.ObjectID, u model.AnnouncementUpdate) (model.UpdateAck, error) {
	return s.update(id, func(a *model.Announcement) bool {
		before := *a
		if u.Title != nil {
			a.Title = *u.Title
		}
		if u.Des != nil {
			a.Des = *u.Des
		}
		if u.Date != nil {
			a.Date = *u.Date
		}
		return before != *a
	})
}

func (s *Announcements) Delete(_ context.Context, id primitive.ObjectID) (model.DeleteAck, error) {
	return s.delete(id)
}

// Coupons is the in-memory coupon store.
type Coupons struct{ collection[model.Coupon] }

func (s *Coupons) Create(_ context.Context, c *model.Coupon) error {
	id, err := s.add(func(id primitive.ObjectID) model.Coupon {
		cp := *c
		cp.ID = id
		return cp
	})
	if err == nil {
		c.ID = id
	}
	return err
}

// All returns every stored coupon.
func (s *Coupons) All() []model.Coupon {
	out, _ := s.list(nil)
	return out
}

// Users is the in-memory account store. Add stores pre-hashed accounts.
type Users struct{ collection[model.User] }

// Add stores u as-is (Password must already be a bcrypt hash).
func (s *Users) Add(u model.User) model.User {
	id, _ := s.add(func(id primitive.ObjectID) model.User {
		u.ID = id
		u.Email = strings.ToLower(u.Email)
		return u
	})
	u.ID = id
	return u
}

func (s *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	all, err := s.list(func(u model.User) bool { return u.Email == email })
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	return &all[0], nil
}

func (s *Users) List(_ context.Context) ([]model.User, error) { return s.list(nil) }
