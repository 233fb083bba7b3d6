package services

import (
	"context"

	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/dto"
)

// LoanReaderSvc defines read operations for loan data
type LoanReaderSvc interface {
	// ListLoans retrieves all loans ordered according to the sort query parameters.
	ListLoans(ctx context.Context, sortParams map[string]string) ([]domain.Loan, error)
}

// LoanWriterSvc defines write operations for loan data
type LoanWriterSvc interface {
	// CreateLoan validates and persists a new loan.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
