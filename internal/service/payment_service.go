package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
	"github.com/Rasel9360/building-management-system-server-site/pkg/payment"
)

// PaymentProcessor creates payment intents with the external processor.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

type PaymentService struct {
	paymentRepo repository.PaymentRepository
	processor   PaymentProcessor
}

func NewPaymentService(paymentRepo repository.PaymentRepository, processor PaymentProcessor) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		processor:   processor,
	}
}

// CreateIntent charges price dollars, truncated to whole cents.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := payment.ToCents(price)
	if amount <= 0 {
		return "", ErrInvalidPrice
	}
	return s.processor.CreateIntent(ctx, amount)
}

func (s *PaymentService) Create(ctx context.Context, p *domain.Payment) (*domain.InsertResult, error) {
	return s.paymentRepo.Create(ctx, p)
}

// ListByEmail returns the payments of email, newest first, optionally only
// those dated in month.
func (s *PaymentService) ListByEmail(ctx context.Context, email, month string) ([]*domain.Payment, error) {
	month, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByEmail(ctx, email, month)
}

// NormalizeMonth zero-pads a 1 or 2 digit month. Empty stays empty.
func NormalizeMonth(month string) (string, error) {
	if month == "" {
		return "", nil
	}
	if len(month) > 2 {
		return "", ErrInvalidMonth
	}

	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > 12 {
		return "", ErrInvalidMonth
	}
	return fmt.Sprintf("%02d", n), nil
}
