package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/db/models"
	pkgerrors "github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
)

// Service defines customer onboarding operations. Customers are immutable
// once created.
type Service interface {
	Onboard(ctx context.Context, input OnboardCustomerInput) (*models.Customer, error)
	Get(ctx context.Context, id uint) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type service struct {
	repo Repository
}

// OnboardCustomerInput captures the data a new customer requires. Email is
// optional but must be unique when present.
type OnboardCustomerInput struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// NewService wires a customer service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Onboard(ctx context.Context, input OnboardCustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer email must not be blank when provided")
	}

	customer := &models.Customer{
		Name:  name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, db.Classify(err)
	}
	return customer, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Customer, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err)
	}
	return customer, nil
}

func (s *service) List(ctx context.Context) ([]models.Customer, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.Classify(err)
	}
	return records, nil
}
