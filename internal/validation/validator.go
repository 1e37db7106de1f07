package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})

	phoneRegex := regexp.MustCompile(`^\+?[0-9 .-]{7,20}$`)
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return models.KnownCategory(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
