package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDefaultCategory  = errors.New("default category cannot be changed")
	ErrDefaultParent    = errors.New("cannot create a subcategory under the default category")
	ErrCategoryCycle    = errors.New("category cannot be moved below itself")
	ErrStorageDisabled  = errors.New("snapshot storage is not configured")
)

// ValidationError carries field-level validation messages. It matches
// ErrFailedValidation, and ErrDuplicateRecord when raised by a uniqueness check.
type ValidationError struct {
	Errors    map[string]string
	duplicate bool
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q %s", k, e.Errors[k]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrFailedValidation || (e.duplicate && target == ErrDuplicateRecord)
}

// failedValidation wraps a validation error map.
func failedValidation(errorMap map[string]string) error {
	return &ValidationError{Errors: errorMap}
}

// duplicateField reports a uniqueness violation on a single field.
func duplicateField(field, message string) error {
	return &ValidationError{Errors: map[string]string{field: message}, duplicate: true}
}
