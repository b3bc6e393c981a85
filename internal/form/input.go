// Package form collects and validates the household details entered by the user.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/pkg/models"
)

const (
	MinAge     = 1
	MaxAge     = 120
	MinACCount = 1
	MaxACCount = 10
)

// Input is one submission of the household form
type Input struct {
	Name              string           `schema:"name" validate:"required"`
	Age               int              `schema:"age" validate:"required,min=1,max=120"`
	Area              string           `schema:"area" validate:"required"`
	City              string           `schema:"city" validate:"required"`
	HouseType         models.HouseType `schema:"house_type" validate:"house_type"`
	RoomType          models.RoomType  `schema:"room_type"`
	Day               models.Day       `schema:"day" validate:"required,weekday"`
	HasAC             bool             `schema:"has_ac"`
	ACCount           int              `schema:"ac_count" validate:"omitempty,min=1,max=10"`
	HasFridge         bool             `schema:"has_fridge"`
	HasWashingMachine bool             `schema:"has_washing_machine"`
}

// Validator wraps go-playground/validator with the form's custom rules
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a Validator with the input rules registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("schema"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	for _, r := range NewInputValidationRules() {
		r.Rule(v)
	}
	return &Validator{validator: v}
}

// Normalize trims text fields and canonicalizes the room type
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Area = strings.TrimSpace(in.Area)
	in.City = strings.TrimSpace(in.City)
	in.Day = models.Day(strings.TrimSpace(string(in.Day)))
	in.RoomType = models.ParseRoomType(string(in.RoomType))
	if !in.HasAC {
		in.ACCount = 0
	}
	return in
}

// Validate checks the input. Empty required fields produce a *MissingFieldsError listing
// all of them; otherwise the first out-of-range value produces a *FieldError.
// Room type is left to the estimator.
func (v *Validator) Validate(in Input) error {
	var fieldErr *FieldError
	var missing []string

	if err := v.validator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating input: %w", err)
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
				continue
			}
			if fieldErr == nil {
				fieldErr = &FieldError{Field: fe.Field(), Reason: reason(fe)}
			}
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if fieldErr != nil {
		return fieldErr
	}
	if in.HasAC && in.ACCount < MinACCount {
		return &FieldError{Field: "ac_count", Reason: fmt.Sprintf("must be between %d and %d", MinACCount, MaxACCount)}
	}
	return nil
}

// Request converts validated input to an estimator request
func (in Input) Request() estimator.Request {
	return estimator.Request{
		Profile: in.Profile(),
		Appliances: models.ApplianceSet{
			HasAC:             in.HasAC,
			ACCount:           in.ACCount,
			HasFridge:         in.HasFridge,
			HasWashingMachine: in.HasWashingMachine,
		},
		Day: in.Day,
	}
}

// Profile returns the household part of the input
func (in Input) Profile() models.HouseholdProfile {
	return models.HouseholdProfile{RoomType: in.RoomType, HouseType: in.HouseType}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		switch fe.Field() {
		case "age":
			return fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)
		case "ac_count":
			return fmt.Sprintf("must be between %d and %d", MinACCount, MaxACCount)
		}
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	case "weekday":
		return fmt.Sprintf("%q is not a day of the week", fe.Value())
	case "house_type":
		return fmt.Sprintf("%q is not one of Flat, Tenament", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
