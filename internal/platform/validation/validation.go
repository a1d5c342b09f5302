package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
)

// emailPattern accepts local@domain.tld: dot-separated domain labels of
// [A-Za-z0-9-], at least two of them.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

var (
	initOnce sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	initOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		if err := validate.RegisterValidation("email_basic", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// Struct checks v's validate tags and translates every failure into the
// apperr taxonomy, joined into a single error.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, translate(fe))
	}
	return errors.Join(out...)
}

func translate(fe validator.FieldError) error {
	if fe.Tag() == "oneof" {
		return &apperr.EnumError{
			Field:   fe.Field(),
			Value:   fe.Value(),
			Allowed: strings.Fields(fe.Param()),
		}
	}
	return &apperr.FieldError{
		Field:      fe.Field(),
		Constraint: constraint(fe),
		Value:      fe.Value(),
	}
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}
