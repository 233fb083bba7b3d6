package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLoanMapping(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)
	loan := domain.Loan{
		LoanID: "3f1c2a8e-5d8b-4a47-9a64-1f6d7f2b9c10",
		LoanDetails: domain.LoanDetails{
			Name:           "Grace Hopper",
			AmountGBP:      250,
			AmountOriginal: 290.5,
			Term:           24,
			RateUsed:       1.162,
			Currency:       domain.CurrencyEUR,
		},
		Timestamps: domain.Timestamps{CreatedAt: created, UpdatedAt: created},
	}

	model := ToModelLoan(loan)
	assert.Equal(t, "EUR", model.Currency)
	assert.Equal(t, int64(24), model.Term)
	assert.Equal(t, loan, ToDomainLoan(model))
}

func TestToDomainLoan_NormalisesToUTC(t *testing.T) {
	local := time.Date(2024, 1, 2, 5, 4, 5, 0, time.FixedZone("EET", 2*3600))

	got := ToDomainLoan(models.Loan{CreatedAt: local, UpdatedAt: local})

	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, local.Equal(got.UpdatedAt))
}

func TestToDomainLoanSlice_Empty(t *testing.T) {
	got := ToDomainLoanSlice(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
