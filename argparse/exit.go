package argparse

import (
	"errors"
	"reflect"
)

// ExitError requests a specific exit code, for example from a handler that
// must terminate after printing help text.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
}

// ExitCodeManager maps parse errors to process exit codes. Each ErrorType
// gets its own non-zero code so that scripts can tell failures apart.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	codesByErr  map[reflect.Type]int
	defaults    ExitCodeDefaults
}

// NewExitCodeManager returns a manager with one code per ErrorType, numbered
// from 1 in the order of ErrorTypes.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int, len(ErrorTypes)),
		codesByErr:  make(map[reflect.Type]int),
		defaults:    ExitCodeDefaults{Success: 0, GeneralError: 1},
	}
	for i, typ := range ErrorTypes {
		m.codesByType[typ] = i + 1
	}
	return m
}

// DefineType overrides the exit code for a parse error category.
func (m *ExitCodeManager) DefineType(typ ErrorType, code int) *ExitCodeManager {
	m.codesByType[typ] = code
	return m
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. Parse error categories take precedence over it.
func (m *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return m
	}
	m.codesByErr[reflect.TypeOf(err)] = code
	return m
}

// Default replaces the manager's default codes.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	return m
}

// CodeFor returns the exit code registered for a parse error category.
func (m *ExitCodeManager) CodeFor(typ ErrorType) int {
	if code, ok := m.codesByType[typ]; ok {
		return code
	}
	return m.defaults.GeneralError
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category (DefineType)
//  3. Concrete error type (DefineError)
//  4. Defaults
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return m.CodeFor(parseErr.Type)
	}

	for t, code := range m.codesByErr {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return m.defaults.GeneralError
}
