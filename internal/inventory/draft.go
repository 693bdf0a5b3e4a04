package inventory

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ProductDraft is the transient, unsaved representation of a product being
// created or edited. Numeric fields always hold numbers; coercion of loose
// input happens in SetField, never here.
type ProductDraft struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	CostValue   float64 `json:"cost_value" validate:"gte=0"`
	SaleValue   float64 `json:"sale_value" validate:"gte=0"`
}

// FieldViolation describes a single invalid draft field.
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError carries all field-level violations found in a draft.
// Submit returns it before any store call is attempted, so a caller that
// bypasses the form constraints still cannot persist an invalid draft.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft validation failed: %d field(s) invalid", len(e.Violations))
}

var validate = validator.New()

// Validate checks the required-field contract: non-empty name, non-negative
// quantity, cost and sale values.
func (d ProductDraft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Violations = append(ve.Violations, FieldViolation{
			Field:       fe.Field(),
			Description: describeViolation(fe),
		})
	}
	return ve
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " cannot be negative"
	default:
		return fe.Field() + " is invalid"
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", value)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}
