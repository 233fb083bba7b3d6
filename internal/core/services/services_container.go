package services

import (
	portsrepo "github.com/SscSPs/loan_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Loan: NewLoanService(repos.LoanRepo),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.LoanSvcFacade = (*LoanService)(nil)
