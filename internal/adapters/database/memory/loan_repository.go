// Package memory keeps loans in process memory. It backs tests and local runs
// without a document store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/loan_service/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_service/internal/core/ports/repositories"
)

// LoanRepository is a concurrency-safe in-memory loan store.
type LoanRepository struct {
	mu    sync.RWMutex
	loans []domain.Loan
	ids   map[string]struct{}
}

// NewLoanRepository creates an empty in-memory loan store.
func NewLoanRepository() *LoanRepository {
	return &LoanRepository{ids: make(map[string]struct{})}
}

// Ensure implementation matches interface
var _ portsrepo.LoanRepositoryFacade = (*LoanRepository)(nil)

// SaveLoan appends loan, rejecting a reused identifier.
func (r *LoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ids[loan.LoanID]; exists {
		return fmt.Errorf("loan %s already exists", loan.LoanID)
	}
	r.ids[loan.LoanID] = struct{}{}
	r.loans = append(r.loans, loan)
	return nil
}

// ListLoans returns a sorted copy of every stored loan. Loans with equal sort
// keys keep insertion order.
func (r *LoanRepository) ListLoans(ctx context.Context, order domain.LoanSort) ([]domain.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]domain.Loan, len(r.loans))
	copy(result, r.loans)
	r.mu.RUnlock()

	less := lessFunc(order.Field)
	sort.SliceStable(result, func(i, j int) bool {
		if order.Direction == domain.SortAscending {
			return less(result[i], result[j])
		}
		return less(result[j], result[i])
	})
	return result, nil
}

func lessFunc(field domain.LoanSortField) func(a, b domain.Loan) bool {
	switch field {
	case domain.LoanSortByAmountGBP:
		return func(a, b domain.Loan) bool { return a.AmountGBP < b.AmountGBP }
	case domain.LoanSortByTerm:
		return func(a, b domain.Loan) bool { return a.Term < b.Term }
	default:
		return func(a, b domain.Loan) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}
