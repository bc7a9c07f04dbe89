package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports the first failing
// field as a 400-class AppError.
func ValidateRequest(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return NewAppError(fiber.StatusBadRequest,
				fmt.Sprintf("field %s failed on %s validation", f.Field(), f.Tag()))
		}
		return NewAppError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
