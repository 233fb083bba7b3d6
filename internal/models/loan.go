package models

import "time"

// Loan is the document stored in the loans collection.
type Loan struct {
	LoanID         string    `bson:"_id"`
	Name           string    `bson:"name"`
	AmountGBP      float64   `bson:"amount_gbp"`
	AmountOriginal float64   `bson:"amount_original"`
	Term           int64     `bson:"term"`
	RateUsed       float64   `bson:"rate_used"`
	Currency       string    `bson:"currency"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}
