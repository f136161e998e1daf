// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their json names and understands the "money" tag.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// money accepts non-negative decimal strings
	_ = validate.RegisterValidation("money", func(fl playground.FieldLevel) bool {
		amount, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}

		return !amount.IsNegative()
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i and turns field failures into ErrValidationFailed with the failing fields as details.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	failures := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		failures = append(failures, fieldErr.Field()+" failed "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failures, "; "))
}
