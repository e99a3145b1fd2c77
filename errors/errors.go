// Package errors error module.
package errors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotFound error not found.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrMalformed error malformed request or document.
	ErrMalformed = fmt.Errorf("malformed")
	// ErrInvalidForm form error.
	ErrInvalidForm = fmt.Errorf("formerror")
	// ErrInternalServerError Internal Server Error.
	ErrInternalServerError = fmt.Errorf("internal")
	// ErrNotImplemented ...
	ErrNotImplemented = fmt.Errorf("notimplemented")
)

// FormError maps a field (layer name, material, option) to the problem found in it.
type FormError map[string]string

// NewFormError ...
func NewFormError() FormError {
	return FormError{"reason": ErrInvalidForm.Error()}
}

// NewFormErrorFrom flattens err into a FormError. Every error of a
// multierror gets its own numbered entry.
func NewFormErrorFrom(err error) FormError {
	fe := NewFormError()
	merr, ok := err.(*multierror.Error)
	if !ok {
		fe["0"] = err.Error()
		return fe
	}
	for i, e := range merr.Errors {
		fe[fmt.Sprintf("%d", i)] = e.Error()
	}
	return fe
}

// Error lists entries sorted by key, "reason" first.
func (fe FormError) Error() string {
	keys := make([]string, 0, len(fe))
	for key := range fe {
		if key != "reason" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, found := fe["reason"]; found {
		keys = append([]string{"reason"}, keys...)
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+fe[key])
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON ...
func (fe FormError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(fe))
}
