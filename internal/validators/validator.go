package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
	"github.com/go-playground/validator/v10"
)

// Custom tags registered on top of the validator built-ins.
const (
	TagEntityID   = "entity_id"
	TagJournalDay = "journal_day"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator that reports fields by their JSON
// names and knows the entity_id and journal_day tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(TagEntityID, func(fl validator.FieldLevel) bool {
		return utils.IsValidUUID(fl.Field().String())
	})
	_ = v.RegisterValidation(TagJournalDay, func(fl validator.FieldLevel) bool {
		_, ok := models.ParseJournalDay(fl.Field().String())
		return ok
	})

	return &requestValidator{validate: v}
}

func (v *requestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	return translate(err)
}

func (v *requestValidator) ValidateID(id string) error {
	if err := v.validate.Var(id, "required,"+TagEntityID); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func (v *requestValidator) ValidateDay(day string) error {
	if err := v.validate.Var(day, "required,"+TagJournalDay); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
}
