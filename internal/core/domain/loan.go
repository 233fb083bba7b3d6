package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the original currency a loan was requested in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

// SupportedCurrencies lists every currency a loan may be recorded in, in display order.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD}

// IsSupported reports whether c is one of SupportedCurrencies.
func (c Currency) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// LoanDetails are the user-supplied fields of a loan after validation.
type LoanDetails struct {
	Name           string   `json:"name"`
	AmountGBP      float64  `json:"amount_gbp"` // already converted by the caller
	AmountOriginal float64  `json:"amount_original"`
	Term           int64    `json:"term"`
	RateUsed       float64  `json:"rate_used"`
	Currency       Currency `json:"currency"`
}

// Loan is a stored loan record. Loans are immutable once created.
type Loan struct {
	LoanID string `json:"_id"`
	LoanDetails
	Timestamps
}

// NewLoan assigns a fresh identifier and stamps both timestamps with now.
// now is truncated to millisecond precision, the resolution of the document store.
func NewLoan(details LoanDetails, now time.Time) Loan {
	stamp := now.UTC().Truncate(time.Millisecond)
	return Loan{
		LoanID:      uuid.NewString(),
		LoanDetails: details,
		Timestamps: Timestamps{
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
	}
}
