package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *MissingError.
	ErrNotFound = errors.New("configuration not found")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("malformed configuration")
)

// MissingError reports a configuration document that does not exist.
type MissingError struct {
	Dir  string
	Name string // document base name, e.g. "kits"
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("none of %[1]s.json, %[1]s.yaml, %[1]s.toml found in %[2]s: create %[1]s.json to set up cptb", e.Name, e.Dir)
}

func (e *MissingError) Is(target error) bool { return target == ErrNotFound }

// ParseError reports a document that exists but is malformed or lacks a
// required field. Field is a dotted path such as "kits.k1.cmake" when the
// offending field is known.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

var errRequired = errors.New("required field is missing")
