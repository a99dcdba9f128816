package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// newValidator creates a validator that knows the engine's enum rules
// and reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("enum", validateEnum)
	_ = v.RegisterValidation("trackable", validateTrackable)

	return v
}

// validateEnum accepts only declared values of the engine's enums.
func validateEnum(fl validator.FieldLevel) bool {
	switch value := fl.Field().Interface().(type) {
	case enum.QuestType:
		return value.IsAQuestType()
	case enum.ActionType:
		return value.IsAActionType()
	case enum.BadgeType:
		return value.IsABadgeType()
	default:
		return false
	}
}

// validateTrackable accepts action types that quests may count.
func validateTrackable(fl validator.FieldLevel) bool {
	action, ok := fl.Field().Interface().(enum.ActionType)
	return ok && action.Trackable()
}

// validationError converts validator output into an ErrValidation wrapped error.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", types.ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", types.ErrValidation, strings.Join(messages, "; "))
}
