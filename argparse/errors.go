package argparse

import (
	"errors"
	"fmt"

	"github.com/vishalbelsare/austin/internal/fuzzy"
)

// ErrorType represents the category of a parse failure.
// Categories drive suggestion logic and exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeUnrecognizedOption       ErrorType = "unrecognized_option"
	ErrorTypeUnrecognizedLongOption   ErrorType = "unrecognized_long_option"
	ErrorTypeMissingOptionArgument    ErrorType = "missing_option_argument"
	ErrorTypeUnexpectedOptionArgument ErrorType = "unexpected_option_argument"
	ErrorTypeInvalidValue             ErrorType = "invalid_value"
	ErrorTypeIncompatibleOptions      ErrorType = "incompatible_options"
)

// ErrorTypes lists every category in exit-code order.
var ErrorTypes = []ErrorType{
	ErrorTypeUnrecognizedOption,
	ErrorTypeUnrecognizedLongOption,
	ErrorTypeMissingOptionArgument,
	ErrorTypeUnexpectedOptionArgument,
	ErrorTypeInvalidValue,
	ErrorTypeIncompatibleOptions,
}

// ParseError is returned for every failed parse.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string // Offending option as typed, e.g. "-x" or "--colour"
	Index      int    // Index of the offending token in argv
	Suggestion string // Closest long option name, if any
	Cause      error
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '--%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message}
}

// Errorf creates a ParseError with a formatted message.
func Errorf(typ ErrorType, format string, args ...any) *ParseError {
	return NewParseError(typ, fmt.Sprintf(format, args...))
}

// WithOption records the offending option spelling.
func (e *ParseError) WithOption(option string) *ParseError {
	e.Option = option
	return e
}

// WithCause adds an underlying cause to the error
func (e *ParseError) WithCause(cause error) *ParseError {
	e.Cause = cause
	return e
}

// TypeOf returns the category of err, or "" when err is not a ParseError.
func TypeOf(err error) ErrorType {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type
	}
	return ""
}

// IsType reports whether err is a ParseError of the given category.
func IsType(err error, typ ErrorType) bool {
	return err != nil && TypeOf(err) == typ
}

func unrecognizedOption(code rune, index int) *ParseError {
	e := Errorf(ErrorTypeUnrecognizedOption, "invalid option -- '%c'", code)
	e.Option = "-" + string(code)
	e.Index = index
	return e
}

func unrecognizedLongOption(t *Table, name string, index int) *ParseError {
	e := Errorf(ErrorTypeUnrecognizedLongOption, "unrecognized option '--%s'", name)
	e.Option = "--" + name
	e.Index = index
	e.Suggestion = fuzzy.FindBestFlag(name, t.longNames(), suggestionDistance)
	return e
}

func missingArgument(opt *Option, index int) *ParseError {
	e := Errorf(ErrorTypeMissingOptionArgument, "option '%s' requires an argument", opt.Name())
	e.Option = opt.Name()
	e.Index = index
	return e
}

func unexpectedArgument(opt *Option, index int) *ParseError {
	e := Errorf(ErrorTypeUnexpectedOptionArgument, "option '%s' doesn't allow an argument", opt.Name())
	e.Option = opt.Name()
	e.Index = index
	return e
}

// suggestionDistance is the largest edit distance offered as a suggestion.
const suggestionDistance = 2

// Errorf creates a ParseError located at the event's token, for handlers that
// reject an option value.
func (e Event) Errorf(typ ErrorType, format string, args ...any) *ParseError {
	err := Errorf(typ, format, args...)
	err.Index = e.Index
	if e.Option != nil {
		err.Option = e.Option.Name()
	}
	return err
}
