package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/loan_service/internal/apperrors"
	portssvc "github.com/SscSPs/loan_service/internal/core/ports/services"
	"github.com/SscSPs/loan_service/internal/dto"
	"github.com/SscSPs/loan_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	createLoanFailed = "Failed to save loan"
	listLoansFailed  = "Failed to fetch loans"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{
		loanService: ls,
	}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	rg.POST("/loan", h.createLoan)
	rg.GET("/loans", h.listLoans)
}

// createLoan godoc
// @Summary Create a new loan
// @Description Validates a loan submission and stores it. Every violated rule is listed in details.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} dto.ServerErrorResponse "Failed to save loan"
// @Router /loan [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := c.GetRawData()
	if err != nil {
		logger.Warn("Failed to read request body for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: createLoanFailed, Details: []string{"failed to read request body"}})
		return
	}

	req, err := dto.DecodeCreateLoanRequest(raw)
	if err != nil {
		logger.Warn("Failed to decode JSON for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: createLoanFailed, Details: []string{err.Error()}})
		return
	}

	createdLoan, err := h.loanService.CreateLoan(c.Request.Context(), req)
	if err != nil {
		if details, ok := apperrors.ValidationDetails(err); ok {
			logger.Warn("Validation error creating loan", slog.Any("details", details))
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: createLoanFailed, Details: details})
			return
		}
		logger.Error("Failed to create loan in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ServerErrorResponse{Error: createLoanFailed, Details: persistenceFailureDetail(err)})
		return
	}

	logger.Info("Loan created successfully", slog.String("loan_id", createdLoan.LoanID))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(createdLoan))
}

// listLoans godoc
// @Summary List all loans
// @Description Retrieves every loan. Only the first present sort parameter applies, in the order amount_sort, term_sort, createdAt_sort. "asc" sorts ascending, any other value descending. Without sort parameters loans are returned newest first.
// @Tags loans
// @Produce  json
// @Param   amount_sort query string false "Sort by amount_gbp" Enums(asc, desc)
// @Param   term_sort query string false "Sort by term" Enums(asc, desc)
// @Param   createdAt_sort query string false "Sort by creation time" Enums(asc, desc)
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch loans"
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list loans from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: listLoansFailed})
		return
	}

	logger.Info("Loans listed successfully", slog.Int("count", len(loans)))
	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}

func persistenceFailureDetail(err error) string {
	if errors.Is(err, apperrors.ErrNotConnected) {
		return "database is not connected"
	}
	return "internal server error"
}
