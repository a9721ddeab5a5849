package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/metrics"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
	"github.com/Rasel9360/building-management-system-server-site/pkg/lock"
)

type AgreementService struct {
	agreementRepo repository.AgreementRepository
	locker        lock.Locker
	metrics       metrics.Recorder
}

func NewAgreementService(agreementRepo repository.AgreementRepository, locker lock.Locker, recorder metrics.Recorder) *AgreementService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &AgreementService{
		agreementRepo: agreementRepo,
		locker:        locker,
		metrics:       recorder,
	}
}

func bookingKey(clientEmail, apartmentID string) string {
	return fmt.Sprintf("booking:%s:%s", clientEmail, apartmentID)
}

// Create books an apartment for a client. A client may hold at most one
// agreement per apartment: if one already exists for the same
// (clientEmail, apartmentId) pair, nothing is written and
// domain.ErrDuplicateBooking is returned. Attempts for the same pair are
// serialized through the booking lock, and the store's unique index rejects
// anything that still slips through.
func (s *AgreementService) Create(ctx context.Context, agreement *domain.Agreement) (*domain.InsertResult, error) {
	if agreement.Status == "" {
		agreement.Status = domain.AgreementStatusPending
	}

	release, err := s.locker.Acquire(ctx, bookingKey(agreement.ClientEmail, agreement.ApartmentID))
	if errors.Is(err, lock.ErrNotAcquired) {
		s.metrics.RecordBookingRejection("in_progress")
		return nil, domain.ErrBookingInProgress
	}
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.agreementRepo.FindByPair(ctx, agreement.ClientEmail, agreement.ApartmentID)
	if err == nil && existing != nil {
		s.metrics.RecordBookingRejection("duplicate")
		return nil, domain.ErrDuplicateBooking
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	res, err := s.agreementRepo.Create(ctx, agreement)
	if errors.Is(err, domain.ErrDuplicateBooking) {
		s.metrics.RecordBookingRejection("duplicate")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	slog.Info("agreement created",
		"clientEmail", agreement.ClientEmail,
		"apartmentId", agreement.ApartmentID,
	)
	return res, nil
}

func (s *AgreementService) ListByClient(ctx context.Context, clientEmail string) ([]*domain.Agreement, error) {
	return s.agreementRepo.ListByClient(ctx, clientEmail)
}

func (s *AgreementService) List(ctx context.Context) ([]*domain.Agreement, error) {
	return s.agreementRepo.List(ctx)
}

// Update sets the supplied fields on the agreement with id, creating it when
// it does not exist.
func (s *AgreementService) Update(ctx context.Context, id bson.ObjectID, update domain.AgreementUpdate) (*domain.UpdateResult, error) {
	if update.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.agreementRepo.UpsertByID(ctx, id, update)
}

func (s *AgreementService) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	return s.agreementRepo.Delete(ctx, id)
}
