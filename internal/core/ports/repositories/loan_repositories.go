package repositories

import (
	"context"

	"github.com/SscSPs/loan_service/internal/core/domain"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// ListLoans retrieves every stored loan ordered by sort. The result is not paginated.
	ListLoans(ctx context.Context, sort domain.LoanSort) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a new loan. Storage-side schema violations are reported
	// as *apperrors.ValidationError.
	SaveLoan(ctx context.Context, loan domain.Loan) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
