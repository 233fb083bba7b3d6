package services

import (
	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/dto"
)

// loanSortPrecedence lists the sort parameters in the order they are consulted.
// The first one present decides the ordering; the others are ignored.
var loanSortPrecedence = []struct {
	param string
	field domain.LoanSortField
}{
	{param: dto.AmountSortParam, field: domain.LoanSortByAmountGBP},
	{param: dto.TermSortParam, field: domain.LoanSortByTerm},
	{param: dto.CreatedAtSortParam, field: domain.LoanSortByCreatedAt},
}

// ResolveLoanSort maps list query parameters to a single sort order.
// A parameter counts as present only when its value is non-empty. The value "asc"
// sorts ascending and anything else descending. Without any sort parameter loans
// are ordered newest first.
func ResolveLoanSort(params map[string]string) domain.LoanSort {
	for _, p := range loanSortPrecedence {
		value := params[p.param]
		if value == "" {
			continue
		}
		direction := domain.SortDescending
		if value == "asc" {
			direction = domain.SortAscending
		}
		return domain.LoanSort{Field: p.field, Direction: direction}
	}
	return domain.DefaultLoanSort
}
