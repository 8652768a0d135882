// Package validation holds the input validators run before any store mutation.
// Every validator is a pure function: payload in, field errors and validity out.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ctoup.com/devconnect/pkg/shared/repository/subentity"
)

// Errors maps a JSON field name to a human readable message.
type Errors map[string]string

func (e Errors) IsValid() bool {
	return len(e) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	v.RegisterValidation("weburl", isWebURL)
	v.RegisterValidation("calendar", isCalendarDate)
	return v
}

// isWebURL accepts absolute http(s) URLs as well as bare hosts such as "github.com/user".
func isWebURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !strings.Contains(value, "://") {
		value = "http://" + value
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.Contains(u.Host, ".") || strings.HasPrefix(u.Host, "localhost")
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := subentity.ParseDate(fl.Field().String())
	return err == nil
}

// validateStruct runs the struct tags of input and translates the first failure of each field
// with messages, keyed "<field>.<tag>".
func validateStruct(input interface{}, messages map[string]string) (Errors, bool) {
	errs := Errors{}
	err := validate.Struct(input)
	if err == nil {
		return errs, true
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs["message"] = err.Error()
		return errs, false
	}
	for _, fe := range fieldErrors {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		message, ok := messages[field+"."+fe.Tag()]
		if !ok {
			message = fmt.Sprintf("%s is invalid", field)
		}
		errs[field] = message
	}
	return errs, false
}

func trim(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
