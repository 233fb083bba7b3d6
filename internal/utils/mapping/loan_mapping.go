package mapping

import (
	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:         d.LoanID,
		Name:           d.Name,
		AmountGBP:      d.AmountGBP,
		AmountOriginal: d.AmountOriginal,
		Term:           d.Term,
		RateUsed:       d.RateUsed,
		Currency:       string(d.Currency),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID: m.LoanID,
		LoanDetails: domain.LoanDetails{
			Name:           m.Name,
			AmountGBP:      m.AmountGBP,
			AmountOriginal: m.AmountOriginal,
			Term:           m.Term,
			RateUsed:       m.RateUsed,
			Currency:       domain.Currency(m.Currency),
		},
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt.UTC(),
			UpdatedAt: m.UpdatedAt.UTC(),
		},
	}
}

// ToDomainLoanSlice converts a slice of model Loans to a slice of domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	ds := make([]domain.Loan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
