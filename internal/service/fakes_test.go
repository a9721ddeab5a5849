package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

// --- in-memory agreement repository ---

type memAgreementRepo struct {
	mu          sync.Mutex
	items       []*domain.Agreement
	findByPairs int
	// uniqueIndex makes Create reject duplicate pairs like the store index.
	uniqueIndex bool
	findErr     error
}

func (r *memAgreementRepo) Create(ctx context.Context, a *domain.Agreement) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.uniqueIndex {
		for _, it := range r.items {
			if it.ClientEmail == a.ClientEmail && it.ApartmentID == a.ApartmentID {
				return nil, domain.ErrDuplicateBooking
			}
		}
	}

	cp := *a
	cp.ID = bson.NewObjectID()
	r.items = append(r.items, &cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID}, nil
}

func (r *memAgreementRepo) FindByPair(ctx context.Context, clientEmail, apartmentID string) (*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.findByPairs++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, it := range r.items {
		if it.ClientEmail == clientEmail && it.ApartmentID == apartmentID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memAgreementRepo) ListByClient(ctx context.Context, clientEmail string) ([]*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*domain.Agreement{}
	for _, it := range r.items {
		if it.ClientEmail == clientEmail {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memAgreementRepo) List(ctx context.Context) ([]*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Agreement{}, r.items...), nil
}

func (r *memAgreementRepo) UpsertByID(ctx context.Context, id bson.ObjectID, update domain.AgreementUpdate) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
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
	r.items = append(r.items, created)
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r *memAgreementRepo) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func (r *memAgreementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// --- in-memory user repository ---

type memUserRepo struct {
	mu     sync.Mutex
	users  []*domain.User
	getErr error
}

func (r *memUserRepo) Create(ctx context.Context, u *domain.User) (*domain.InsertResult, error) {
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
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID}, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, it := range r.users {
		if it.Email == email {
			cp := *it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) UpsertByEmail(ctx context.Context, email string, update domain.UserUpdate) (*domain.UpdateResult, error) {
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

func (r *memUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, r.users[i])
	}
	return out, nil
}

// --- metrics spy ---

type spyRecorder struct {
	mu      sync.Mutex
	booking map[string]int
}

func (s *spyRecorder) RecordRequest(string, string, int, time.Duration) {}
func (s *spyRecorder) RecordAuthRejection(string)                      {}
func (s *spyRecorder) RecordBookingRejection(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking == nil {
		s.booking = map[string]int{}
	}
	s.booking[reason]++
}
