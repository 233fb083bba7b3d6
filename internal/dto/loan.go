package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/loan_service/internal/core/domain"
)

// CreateLoanRequest is the body of POST /v1/loan.
// Every field is optional at the decoding stage so that missing values reach the
// validator and are reported together instead of failing the decode.
type CreateLoanRequest struct {
	Name           *string  `json:"name" validate:"required,loanname" example:"Alice Smith"`
	AmountGBP      *float64 `json:"amount_gbp" validate:"required,gte=1" example:"100"`
	AmountOriginal *float64 `json:"amount_original" validate:"required,gte=1" example:"127.5"`
	Term           *float64 `json:"term" validate:"required,gte=1,wholenumber" example:"12"` // decoded as float to detect fractional terms
	RateUsed       *float64 `json:"rate_used" validate:"required" example:"1.275"`
	Currency       *string  `json:"currency" validate:"required,loancurrency" example:"USD"`

	typeErrors    map[string]string
	unknownFields []string
}

// CreateLoanFields are the JSON keys of CreateLoanRequest in reporting order.
var CreateLoanFields = []string{"name", "amount_gbp", "amount_original", "term", "rate_used", "currency"}

// TypeError returns the message recorded when field held a value of the wrong JSON type.
func (r CreateLoanRequest) TypeError(field string) (string, bool) {
	msg, ok := r.typeErrors[field]
	return msg, ok
}

// UnknownFields returns the keys of the body that are not loan fields, sorted.
func (r CreateLoanRequest) UnknownFields() []string {
	return r.unknownFields
}

// DecodeCreateLoanRequest decodes a POST /v1/loan body field by field.
// Wrong-typed values leave their field nil and are recorded with TypeError,
// unknown keys are recorded with UnknownFields; neither stops decoding of the
// remaining fields. An error is returned only when the body is not a single JSON object.
func DecodeCreateLoanRequest(raw []byte) (CreateLoanRequest, error) {
	var req CreateLoanRequest
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, errors.New("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &typeErr):
			return req, errors.New("request body must be a JSON object")
		case errors.As(err, &syntaxErr):
			return req, fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
		default:
			return req, fmt.Errorf("invalid request format: %v", err)
		}
	}
	if dec.More() {
		return req, errors.New("request body must contain a single JSON object")
	}

	decoders := map[string]func(json.RawMessage) bool{
		"name":            func(v json.RawMessage) bool { return decodeField(v, &req.Name) },
		"amount_gbp":      func(v json.RawMessage) bool { return decodeField(v, &req.AmountGBP) },
		"amount_original": func(v json.RawMessage) bool { return decodeField(v, &req.AmountOriginal) },
		"term":            func(v json.RawMessage) bool { return decodeField(v, &req.Term) },
		"rate_used":       func(v json.RawMessage) bool { return decodeField(v, &req.RateUsed) },
		"currency":        func(v json.RawMessage) bool { return decodeField(v, &req.Currency) },
	}
	kinds := map[string]string{
		"name":     "string",
		"currency": "string",
	}

	for key, value := range fields {
		decode, known := decoders[key]
		if !known {
			req.unknownFields = append(req.unknownFields, key)
			continue
		}
		if !decode(value) {
			kind, ok := kinds[key]
			if !ok {
				kind = "number"
			}
			if req.typeErrors == nil {
				req.typeErrors = make(map[string]string)
			}
			req.typeErrors[key] = fmt.Sprintf("%s must be a %s", key, kind)
		}
	}
	sort.Strings(req.unknownFields)

	return req, nil
}

// decodeField sets *dst only when raw decodes cleanly, so a wrong-typed value stays nil.
func decodeField[T any](raw json.RawMessage, dst **T) bool {
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// Sort query parameter names accepted by GET /v1/loans.
const (
	AmountSortParam    = "amount_sort"
	TermSortParam      = "term_sort"
	CreatedAtSortParam = "createdAt_sort"
)

// LoanResponse is the JSON representation of a stored loan.
type LoanResponse struct {
	LoanID         string    `json:"_id"`
	Name           string    `json:"name"`
	AmountGBP      float64   `json:"amount_gbp"`
	AmountOriginal float64   `json:"amount_original"`
	Term           int64     `json:"term"`
	RateUsed       float64   `json:"rate_used"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ErrorResponse is returned when a request fails without further detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every rule a rejected submission violated.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// ServerErrorResponse is returned when persisting a loan fails for reasons other than validation.
type ServerErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:         l.LoanID,
		Name:           l.Name,
		AmountGBP:      l.AmountGBP,
		AmountOriginal: l.AmountOriginal,
		Term:           l.Term,
		RateUsed:       l.RateUsed,
		Currency:       string(l.Currency),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ToListLoanResponse converts a slice of domain.Loan, never returning nil.
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return res
}
