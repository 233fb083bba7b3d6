package domain

// LoanSortField is a loan attribute a list query can be ordered by.
type LoanSortField string

const (
	LoanSortByAmountGBP LoanSortField = "amount_gbp"
	LoanSortByTerm      LoanSortField = "term"
	LoanSortByCreatedAt LoanSortField = "createdAt"
)

// SortDirection is the ordering applied to a LoanSortField.
type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

func (d SortDirection) String() string {
	if d == SortAscending {
		return "asc"
	}
	return "desc"
}

// LoanSort is the (field, direction) pair a list query is ordered by.
type LoanSort struct {
	Field     LoanSortField
	Direction SortDirection
}

// DefaultLoanSort orders loans most recent first.
var DefaultLoanSort = LoanSort{Field: LoanSortByCreatedAt, Direction: SortDescending}
