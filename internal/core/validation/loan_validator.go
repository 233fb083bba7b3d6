// Package validation checks loan submissions against the field rules every
// stored loan must satisfy. It has no dependency on the storage layer.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/SscSPs/loan_service/internal/core/domain"
	"github.com/SscSPs/loan_service/internal/dto"
	"github.com/go-playground/validator/v10"
)

// maxWholeTerm is the largest integer a JSON number carries without precision loss.
const maxWholeTerm = 1<<53 - 1

var loanNamePattern = regexp.MustCompile(`^[a-zA-Z\s]{3,20}$`)

// LoanValidator validates CreateLoanRequest values.
type LoanValidator struct {
	validate *validator.Validate
}

// NewLoanValidator creates a LoanValidator with the loan specific rules registered.
func NewLoanValidator() *LoanValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("loanname", isLoanName)
	_ = v.RegisterValidation("wholenumber", isWholeNumber)
	_ = v.RegisterValidation("loancurrency", isSupportedCurrency)

	return &LoanValidator{validate: v}
}

// Validate checks req and returns its typed fields. When any rule is violated it
// returns a *apperrors.ValidationError holding one message per violated field in
// dto.CreateLoanFields order, followed by one message per unknown field. A field
// that was decoded with the wrong JSON type is reported with its type message.
func (lv *LoanValidator) Validate(req dto.CreateLoanRequest) (domain.LoanDetails, error) {
	byField := make(map[string]string)
	if err := lv.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.LoanDetails{}, fmt.Errorf("failed to validate loan: %w", err)
		}
		for _, fe := range fieldErrs {
			if _, seen := byField[fe.Field()]; !seen {
				byField[fe.Field()] = translateFieldError(fe)
			}
		}
	}

	details := make([]string, 0, len(byField))
	for _, field := range dto.CreateLoanFields {
		if msg, ok := req.TypeError(field); ok {
			details = append(details, msg)
		} else if msg, ok := byField[field]; ok {
			details = append(details, msg)
		}
	}
	for _, field := range req.UnknownFields() {
		details = append(details, fmt.Sprintf("%s is not allowed", field))
	}
	if len(details) > 0 {
		return domain.LoanDetails{}, apperrors.NewValidationError(details...)
	}

	return domain.LoanDetails{
		Name:           *req.Name,
		AmountGBP:      *req.AmountGBP,
		AmountOriginal: *req.AmountOriginal,
		Term:           int64(*req.Term),
		RateUsed:       *req.RateUsed,
		Currency:       domain.Currency(*req.Currency),
	}, nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func isLoanName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return loanNamePattern.MatchString(field.String())
}

func isWholeNumber(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f == math.Trunc(f) && math.Abs(f) <= maxWholeTerm
	default:
		return false
	}
}

func isSupportedCurrency(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return domain.Currency(field.String()).IsSupported()
}

func supportedCurrencyList() string {
	names := make([]string, len(domain.SupportedCurrencies))
	for i, c := range domain.SupportedCurrencies {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func translateFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "loanname":
		return fmt.Sprintf("%s must be 3 to 20 characters long and contain only letters and spaces", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "wholenumber":
		return fmt.Sprintf("%s is not an integer", formatValue(fe.Value()))
	case "loancurrency":
		return fmt.Sprintf("%s must be one of %s", field, supportedCurrencyList())
	default:
		return fmt.Sprintf("%s failed the '%s' rule", field, fe.Tag())
	}
}

func formatValue(value interface{}) string {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "<nil>"
	}
	return fmt.Sprintf("%v", rv.Interface())
}
