package form

import (
	"github.com/go-playground/validator/v10"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/pkg/models"
)

// ValidationRule registers one custom tag on the validator
type ValidationRule struct {
	Rule func(v *validator.Validate)
}

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) ValidationRule {
	return ValidationRule{
		Rule: func(v *validator.Validate) {
			_ = v.RegisterValidation(tag, fn)
		},
	}
}

// NewInputValidationRules returns the custom tags used by Input
func NewInputValidationRules() []ValidationRule {
	return []ValidationRule{
		registerFn("weekday", weekdayValidator),
		registerFn("house_type", houseTypeValidator),
	}
}

func weekdayValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(models.Day)
	if !ok {
		return false
	}
	return estimator.IsKnownDay(val)
}

func houseTypeValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(models.HouseType)
	if !ok {
		return false
	}
	switch val {
	case models.HouseFlat, models.HouseTenament:
		return true
	default:
		return false
	}
}
