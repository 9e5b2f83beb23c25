package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Error Kinds
// ============================================================================

// ErrorKind classifies why a calculation could not be performed.
type ErrorKind string

const (
	KindMissingInput ErrorKind = "MissingInput"
	KindParseError   ErrorKind = "ParseError"
	KindDomainError  ErrorKind = "DomainError"
)

// Sentinels matched with errors.Is against an *InputError.
var (
	ErrMissingInput = errors.New("missing input")
	ErrParse        = errors.New("input is not a finite real number")
	ErrDomain       = errors.New("input outside the domain of the formula")
)

// ============================================================================
// Specific Causes
// ============================================================================

var (
	ErrUnknownMedium        = errors.New("unknown medium")
	ErrUnknownFormula       = errors.New("unknown formula")
	ErrNonPositiveChannel   = errors.New("channel size must be greater than zero")
	ErrNonPositiveFlowRate  = errors.New("flow rate must be greater than zero")
	ErrZeroFlowIndex        = errors.New("flow index evaluates to zero")
	ErrNonFiniteResult      = errors.New("formula produced a non-finite value")
	ErrNegativeViscosity    = errors.New("formula produced a negative viscosity")
	ErrFormulaNotCalibrated = errors.New("medium has no coefficients for this formula")
)

// ============================================================================
// Catalog Errors
// ============================================================================

var (
	ErrInvalidMediumID    = errors.New("medium id is required")
	ErrInvalidMediumLabel = errors.New("medium label is required")
	ErrDuplicateMedium    = errors.New("medium is defined more than once")
	ErrEmptyCatalog       = errors.New("media catalog is empty")
)

// InputError reports a rejected calculation input.
type InputError struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMissingInput) and friends match on kind.
func (e *InputError) Is(target error) bool {
	switch target {
	case ErrMissingInput:
		return e.Kind == KindMissingInput
	case ErrParse:
		return e.Kind == KindParseError
	case ErrDomain:
		return e.Kind == KindDomainError
	}
	return false
}

func missingInput(field string) error {
	return &InputError{Kind: KindMissingInput, Field: field, Err: ErrMissingInput}
}

func parseError(field string, err error) error {
	return &InputError{Kind: KindParseError, Field: field, Err: err}
}

func domainError(field string, err error) error {
	return &InputError{Kind: KindDomainError, Field: field, Err: err}
}

// KindOf returns the classification of err, or "" if it is not an *InputError.
func KindOf(err error) ErrorKind {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}
