package mongodb

import (
	portsrepo "github.com/SscSPs/loan_service/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Mongo-backed repositories.
func NewRepositoryProvider(db DatabaseProvider, loanCollection string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LoanRepo: newMongoLoanRepository(db, loanCollection),
	}
}
