// Package parser decodes and validates the documents the traceability engine
// consumes: programme snapshots and award standard reference files.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/programmedesign/core/internal/models"
)

// ErrEmptyInput is returned when a document has no content.
var ErrEmptyInput = errors.New("empty input")

var validate = validator.New()

// ValidationError lists the fields of a document that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// ParseProgramme decodes a programme snapshot and checks its structural rules.
// Dangling MIMLO references are not an error; the engine skips them.
func ParseProgramme(data []byte) (*models.Programme, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("programme: %w", ErrEmptyInput)
	}

	var p models.Programme
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal programme: %w", err)
	}

	if err := validate.Struct(&p); err != nil {
		return nil, toValidationError(err)
	}

	return &p, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate programme: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.TrimPrefix(fe.Namespace(), "Programme."), fe.Tag()))
	}
	return &ValidationError{Fields: fields}
}
