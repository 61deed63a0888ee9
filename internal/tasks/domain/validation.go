package domain

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries one or more client-facing messages for input that
// could not be turned into a domain value.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Messages, "; ")
}

func invalid(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidation unwraps a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

var imageFilenamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+\.(jpg|jpeg|gif|png)$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Field errors are reported by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "deadline", func(fl validator.FieldLevel) bool {
		_, err := ParseDeadline(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "image_filename", func(fl validator.FieldLevel) bool {
		return imageFilenamePattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check validates s and translates each failing field into a message.
// messages is keyed by "field.tag" with "field" as the fallback.
func check(s any, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]string, 0, len(fieldErrs))
	seen := make(map[string]struct{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	return invalid(out...)
}

// DeadlineLayout is the wire format of task deadlines.
const DeadlineLayout = "02/01/2006 15:04"

// ParseDeadline parses s strictly: the value must format back to itself.
func ParseDeadline(s string) (time.Time, error) {
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DeadlineLayout) != s {
		return time.Time{}, errors.New("deadline is not in canonical form")
	}
	return t, nil
}

// FormatDeadline renders t in DeadlineLayout, or nil for a nil time.
func FormatDeadline(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DeadlineLayout)
	return &s
}
