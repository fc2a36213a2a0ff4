package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/networkteam/uikit/ui"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator with the button_variant and button_size rules registered.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("button_variant", func(fl validator.FieldLevel) bool {
			_, err := ui.ParseVariant(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("button_size", func(fl validator.FieldLevel) bool {
			_, err := ui.ParseSize(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and flattens field errors into a single readable error.
func Struct(s any) error {
	err := Instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "button_variant":
		return fmt.Sprintf("%s: unknown button variant %q", field, fmt.Sprint(fe.Value()))
	case "button_size":
		return fmt.Sprintf("%s: unknown button size %q", field, fmt.Sprint(fe.Value()))
	case "min", "max", "gte", "lte", "gt", "lt":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
