package validation_test

import (
	"testing"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/core/validation"
	"github.com/SscSPs/loan_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func validRequest() dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		Name:           stringPtr("Alice Smith"),
		AmountGBP:      floatPtr(100),
		AmountOriginal: floatPtr(127.5),
		Term:           floatPtr(12),
		RateUsed:       floatPtr(1.275),
		Currency:       stringPtr("USD"),
	}
}

func TestValidate_Success(t *testing.T) {
	v := validation.NewLoanValidator()

	details, err := v.Validate(validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.LoanDetails{
		Name:           "Alice Smith",
		AmountGBP:      100,
		AmountOriginal: 127.5,
		Term:           12,
		RateUsed:       1.275,
		Currency:       domain.CurrencyUSD,
	}, details)
}

func TestValidate_ZeroRateIsPresent(t *testing.T) {
	req := validRequest()
	req.RateUsed = floatPtr(0)

	_, err := validation.NewLoanValidator().Validate(req)

	assert.NoError(t, err)
}

func TestValidate_SingleRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateLoanRequest)
		wantErr string
	}{
		{name: "name missing", mutate: func(r *dto.CreateLoanRequest) { r.Name = nil }, wantErr: "name is required"},
		{name: "name too short", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("Al") }, wantErr: "name must be 3 to 20 characters long and contain only letters and spaces"},
		{name: "name too long", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("Abcdefghijklmnopqrstu") }, wantErr: "name must be 3 to 20 characters long and contain only letters and spaces"},
		{name: "name with digits", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("Alice123") }, wantErr: "name must be 3 to 20 characters long and contain only letters and spaces"},
		{name: "name empty", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("") }, wantErr: "name must be 3 to 20 characters long and contain only letters and spaces"},
		{name: "amount_gbp missing", mutate: func(r *dto.CreateLoanRequest) { r.AmountGBP = nil }, wantErr: "amount_gbp is required"},
		{name: "amount_gbp below one", mutate: func(r *dto.CreateLoanRequest) { r.AmountGBP = floatPtr(0.5) }, wantErr: "amount_gbp must be at least 1"},
		{name: "amount_original missing", mutate: func(r *dto.CreateLoanRequest) { r.AmountOriginal = nil }, wantErr: "amount_original is required"},
		{name: "amount_original negative", mutate: func(r *dto.CreateLoanRequest) { r.AmountOriginal = floatPtr(-3) }, wantErr: "amount_original must be at least 1"},
		{name: "term missing", mutate: func(r *dto.CreateLoanRequest) { r.Term = nil }, wantErr: "term is required"},
		{name: "term zero", mutate: func(r *dto.CreateLoanRequest) { r.Term = floatPtr(0) }, wantErr: "term must be at least 1"},
		{name: "term fractional", mutate: func(r *dto.CreateLoanRequest) { r.Term = floatPtr(2.5) }, wantErr: "2.5 is not an integer"},
		{name: "rate_used missing", mutate: func(r *dto.CreateLoanRequest) { r.RateUsed = nil }, wantErr: "rate_used is required"},
		{name: "currency missing", mutate: func(r *dto.CreateLoanRequest) { r.Currency = nil }, wantErr: "currency is required"},
		{name: "currency unsupported", mutate: func(r *dto.CreateLoanRequest) { r.Currency = stringPtr("JPY") }, wantErr: "currency must be one of USD, EUR, GBP, CAD"},
		{name: "currency lowercase", mutate: func(r *dto.CreateLoanRequest) { r.Currency = stringPtr("usd") }, wantErr: "currency must be one of USD, EUR, GBP, CAD"},
	}

	v := validation.NewLoanValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := v.Validate(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			details, ok := apperrors.ValidationDetails(err)
			require.True(t, ok)
			assert.Equal(t, []string{tt.wantErr}, details)
		})
	}
}

func TestValidate_AcceptedBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateLoanRequest)
	}{
		{name: "three letter name", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("Bob") }},
		{name: "twenty letter name", mutate: func(r *dto.CreateLoanRequest) { r.Name = stringPtr("Abcdefghijklmnopqrst") }},
		{name: "amounts exactly one", mutate: func(r *dto.CreateLoanRequest) { r.AmountGBP = floatPtr(1); r.AmountOriginal = floatPtr(1) }},
		{name: "term one", mutate: func(r *dto.CreateLoanRequest) { r.Term = floatPtr(1) }},
		{name: "euro", mutate: func(r *dto.CreateLoanRequest) { r.Currency = stringPtr("EUR") }},
		{name: "negative rate", mutate: func(r *dto.CreateLoanRequest) { r.RateUsed = floatPtr(-0.2) }},
	}

	v := validation.NewLoanValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := v.Validate(req)
			assert.NoError(t, err)
		})
	}
}

func TestValidate_AllFieldsInvalid(t *testing.T) {
	req := dto.CreateLoanRequest{
		Name:           stringPtr("Al"),
		AmountGBP:      floatPtr(0),
		AmountOriginal: nil,
		Term:           floatPtr(2.5),
		RateUsed:       nil,
		Currency:       stringPtr("JPY"),
	}

	_, err := validation.NewLoanValidator().Validate(req)

	require.Error(t, err)
	details, ok := apperrors.ValidationDetails(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"name must be 3 to 20 characters long and contain only letters and spaces",
		"amount_gbp must be at least 1",
		"amount_original is required",
		"2.5 is not an integer",
		"rate_used is required",
		"currency must be one of USD, EUR, GBP, CAD",
	}, details)
}

func TestValidate_EmptyRequestReportsEveryField(t *testing.T) {
	_, err := validation.NewLoanValidator().Validate(dto.CreateLoanRequest{})

	details, ok := apperrors.ValidationDetails(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"name is required",
		"amount_gbp is required",
		"amount_original is required",
		"term is required",
		"rate_used is required",
		"currency is required",
	}, details)
}

func TestValidate_TypeErrorsReportedWithRuleViolations(t *testing.T) {
	req, err := dto.DecodeCreateLoanRequest([]byte(`{"name":"Al","amount_gbp":0,"term":"x","currency":"JPY","nickname":"Al"}`))
	require.NoError(t, err)

	_, err = validation.NewLoanValidator().Validate(req)

	details, ok := apperrors.ValidationDetails(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"name must be 3 to 20 characters long and contain only letters and spaces",
		"amount_gbp must be at least 1",
		"amount_original is required",
		"term must be a number",
		"rate_used is required",
		"currency must be one of USD, EUR, GBP, CAD",
		"nickname is not allowed",
	}, details)
}

func TestValidate_UnknownFieldAloneIsRejected(t *testing.T) {
	req, err := dto.DecodeCreateLoanRequest([]byte(
		`{"name":"Alice Smith","amount_gbp":100,"amount_original":127.5,"term":12,"rate_used":1.275,"currency":"USD","status":"open"}`))
	require.NoError(t, err)

	_, err = validation.NewLoanValidator().Validate(req)

	details, ok := apperrors.ValidationDetails(err)
	require.True(t, ok)
	assert.Equal(t, []string{"status is not allowed"}, details)
}
