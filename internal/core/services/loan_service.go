package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/SscSPs/loan_service/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_service/internal/core/ports/repositories"
	"github.com/SscSPs/loan_service/internal/core/validation"
	"github.com/SscSPs/loan_service/internal/dto"
)

// LoanService validates, stores and lists loans.
type LoanService struct {
	BaseService
	loanRepo  portsrepo.LoanRepositoryFacade
	validator *validation.LoanValidator
	now       func() time.Time
}

// LoanServiceOption configures optional LoanService dependencies.
type LoanServiceOption func(*LoanService)

// WithClock overrides the time source used to stamp new loans.
func WithClock(now func() time.Time) LoanServiceOption {
	return func(s *LoanService) {
		s.now = now
	}
}

// NewLoanService creates the loan service over the given repository.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, opts ...LoanServiceOption) *LoanService {
	s := &LoanService{
		loanRepo:  loanRepo,
		validator: validation.NewLoanValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LoanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	details, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	loan := domain.NewLoan(details, s.now())

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save loan in repository", slog.String("loan_id", loan.LoanID))
		}
		return nil, fmt.Errorf("failed to create loan in service: %w", err)
	}

	s.LogInfo(ctx, "Loan created successfully in service", slog.String("loan_id", loan.LoanID))
	return &loan, nil
}

func (s *LoanService) ListLoans(ctx context.Context, sortParams map[string]string) ([]domain.Loan, error) {
	sort := ResolveLoanSort(sortParams)

	loans, err := s.loanRepo.ListLoans(ctx, sort)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans from repository",
			slog.String("sort_field", string(sort.Field)),
			slog.String("sort_direction", sort.Direction.String()),
		)
		return nil, fmt.Errorf("failed to list loans in service: %w", err)
	}
	// Return empty slice if no loans found, not nil
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}
