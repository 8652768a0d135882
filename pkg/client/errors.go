package client

import (
	"fmt"
	"sort"
	"strings"
)

// APIError is a non 2xx answer of the API. Errors holds the field to message map of the body.
type APIError struct {
	Status int
	Errors map[string]string
}

func (e *APIError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field, message := range e.Errors {
		fields = append(fields, field+": "+message)
	}
	sort.Strings(fields)
	return fmt.Sprintf("api error %d: %s", e.Status, strings.Join(fields, ", "))
}

// Field returns the message reported for field, or "".
func (e *APIError) Field(field string) string {
	return e.Errors[field]
}
