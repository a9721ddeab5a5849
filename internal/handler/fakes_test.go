package handler

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

// store is an in-memory stand-in for the document database. Each
// collection keeps insertion order; List methods return newest first where
// the Mongo repositories do.
type store struct {
	mu            sync.Mutex
	users         []*domain.User
	agreements    []*domain.Agreement
	apartments    []*domain.Apartment
	coupons       []*domain.Coupon
	announcements []*domain.Announcement
	payments      []*domain.Payment
}

func inserted(id bson.ObjectID) *domain.InsertResult {
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}
}

func reversed[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out
}

// --- users ---

type userRepo struct{ *store }

func (r userRepo) Create(ctx context.Context, u *domain.User) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.users {
		if it.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	cp := *u
	cp.ID = bson.NewObjectID()
	r.users = append(r.users, &cp)
	return inserted(cp.ID), nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.users {
		if it.Email == email {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r userRepo) UpsertByEmail(ctx context.Context, email string, update domain.UserUpdate) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apply := func(u *domain.User) bool {
		before := *u
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Photo != nil {
			u.Photo = *update.Photo
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		return before != *u
	}

	for _, it := range r.users {
		if it.Email == email {
			res := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if apply(it) {
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}

	u := &domain.User{ID: bson.NewObjectID(), Email: email}
	apply(u)
	r.users = append(r.users, u)
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: u.ID}, nil
}

func (r userRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return reversed(r.users), nil
}

// --- agreements ---

type agreementRepo struct{ *store }

// pairTaken models the partial unique index on (clientEmail, apartmentId):
// only documents carrying both fields take part. Callers hold r.mu.
func (r agreementRepo) pairTaken(a *domain.Agreement) bool {
	if a.ClientEmail == "" || a.ApartmentID == "" {
		return false
	}
	for _, it := range r.agreements {
		if it.ClientEmail == a.ClientEmail && it.ApartmentID == a.ApartmentID {
			return true
		}
	}
	return false
}

func (r agreementRepo) Create(ctx context.Context, a *domain.Agreement) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pairTaken(a) {
		return nil, domain.ErrDuplicateBooking
	}
	cp := *a
	cp.ID = bson.NewObjectID()
	r.agreements = append(r.agreements, &cp)
	return inserted(cp.ID), nil
}

func (r agreementRepo) FindByPair(ctx context.Context, clientEmail, apartmentID string) (*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.agreements {
		if it.ClientEmail == clientEmail && it.ApartmentID == apartmentID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r agreementRepo) ListByClient(ctx context.Context, clientEmail string) ([]*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Agreement{}
	for _, it := range r.agreements {
		if it.ClientEmail == clientEmail {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r agreementRepo) List(ctx context.Context) ([]*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Agreement{}, r.agreements...), nil
}

func (r agreementRepo) UpsertByID(ctx context.Context, id bson.ObjectID, update domain.AgreementUpdate) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.agreements {
		if it.ID == id {
			if update.Status != nil {
				it.Status = *update.Status
			}
			if update.Rent != nil {
				it.Rent = *update.Rent
			}
			if update.Date != nil {
				it.Date = *update.Date
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	created := &domain.Agreement{ID: id}
	if update.Status != nil {
		created.Status = *update.Status
	}
	if update.Rent != nil {
		created.Rent = *update.Rent
	}
	if update.Date != nil {
		created.Date = *update.Date
	}
	if r.pairTaken(created) {
		return nil, &domain.StoreError{Op: "updateOne", Collection: "agreement", Err: errors.New("E11000 duplicate key")}
	}
	r.agreements = append(r.agreements, created)
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r agreementRepo) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.agreements {
		if it.ID == id {
			r.agreements = append(r.agreements[:i], r.agreements[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

// --- apartments ---

type apartmentRepo struct{ *store }

func (r apartmentRepo) List(ctx context.Context, page domain.Page) ([]*domain.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Apartment{}
	if page.Empty() || page.Skip >= int64(len(r.apartments)) {
		return out, nil
	}
	end := page.Skip + page.Limit
	if end > int64(len(r.apartments)) {
		end = int64(len(r.apartments))
	}
	return append(out, r.apartments[page.Skip:end]...), nil
}

func (r apartmentRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.apartments)), nil
}

// --- coupons ---

type couponRepo struct{ *store }

func (r couponRepo) Create(ctx context.Context, c *domain.Coupon) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.ID = bson.NewObjectID()
	r.coupons = append(r.coupons, &cp)
	return inserted(cp.ID), nil
}

func (r couponRepo) List(ctx context.Context) ([]*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return reversed(r.coupons), nil
}

func (r couponRepo) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.coupons {
		if it.ID == id {
			r.coupons = append(r.coupons[:i], r.coupons[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

// --- announcements ---

type announcementRepo struct{ *store }

func (r announcementRepo) Create(ctx context.Context, a *domain.Announcement) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	cp.ID = bson.NewObjectID()
	r.announcements = append(r.announcements, &cp)
	return inserted(cp.ID), nil
}

func (r announcementRepo) List(ctx context.Context) ([]*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return reversed(r.announcements), nil
}

// --- payments ---

type paymentRepo struct{ *store }

func (r paymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = bson.NewObjectID()
	r.payments = append(r.payments, &cp)
	return inserted(cp.ID), nil
}

func (r paymentRepo) ListByEmail(ctx context.Context, email, month string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Payment{}
	for _, p := range reversed(r.payments) {
		if p.Email != email {
			continue
		}
		if month != "" && !strings.Contains(strings.ToLower(p.Date), "-"+month+"-") {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// --- payment processor ---

type fakeProcessor struct {
	mu      sync.Mutex
	amounts []int64
	err     error
}

func (p *fakeProcessor) CreateIntent(ctx context.Context, amount int64) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	p.amounts = append(p.amounts, amount)
	return "pi_test_secret", nil
}
