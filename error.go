// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package argbind

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ConfigError is returned when the slot declarations of a target are
// inconsistent: duplicate names or positions, malformed tags, unsupported
// field types or defaults that don't convert. These are programming errors
// in the target and not problems with the command-line input.
//
// BuildRegistry reports every ConfigError it finds, aggregated with
// go-multierror. Use errors.As to extract individual errors.
type ConfigError struct {
	// Field is the struct field or builder label with the problem.
	Field string

	// Reason describes what is wrong with the declaration.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "invalid slot declaration: " + e.Reason
	}

	return fmt.Sprintf("invalid slot declaration on %q: %s", e.Field, e.Reason)
}

// configErrorFormat renders aggregated configuration errors.
func configErrorFormat(es []error) string {
	if len(es) == 1 {
		return es[0].Error()
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%d slot declaration errors:\n\n", len(es))
	for _, err := range es {
		fmt.Fprintf(buf, "    - %s\n", err)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

//go:generate go tool stringer -type=ErrorKind -linecomment -output=errorkind_string.go

// ErrorKind identifies the kind of problem a MappingError reports.
type ErrorKind uint8

const (
	ErrorInvalid              ErrorKind = iota // invalid
	ErrorUnknownOption                         // unknown option
	ErrorMissingRequiredValue                  // missing required value
	ErrorTypeMismatch                          // type mismatch
	ErrorDuplicatePositional                   // duplicate positional
	ErrorPropertyNotFound                      // property not found
	ErrorMissingOptionValue                    // missing option value
)

// Sentinel errors matched by MappingError.Is for each ErrorKind.
var (
	ErrUnknownOption        = errors.New("unknown option")
	ErrMissingRequiredValue = errors.New("missing required value")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrDuplicatePositional  = errors.New("duplicate positional")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrMissingOptionValue   = errors.New("missing option value")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorUnknownOption:
		return ErrUnknownOption
	case ErrorMissingRequiredValue:
		return ErrMissingRequiredValue
	case ErrorTypeMismatch:
		return ErrTypeMismatch
	case ErrorDuplicatePositional:
		return ErrDuplicatePositional
	case ErrorPropertyNotFound:
		return ErrPropertyNotFound
	case ErrorMissingOptionValue:
		return ErrMissingOptionValue
	default:
		return nil
	}
}

// MappingError is a single problem found with the command-line input
// during Map. Which fields are set depends on Kind:
//
//   - ErrorUnknownOption: Token.
//   - ErrorMissingRequiredValue: Slot.
//   - ErrorTypeMismatch: Slot, Token, Expected and Err.
//   - ErrorDuplicatePositional: Slot, Token and Position.
//   - ErrorPropertyNotFound: Token and Position.
//   - ErrorMissingOptionValue: Slot and Token (the dangling option).
type MappingError struct {
	Kind ErrorKind

	// Token is the raw command-line token involved, if any.
	Token string

	// Slot is the ID of the slot involved, if any. See SlotSpec.ID.
	Slot string

	// Position is the positional index involved for value errors.
	Position int

	// Expected is the declared type of the slot for type mismatches.
	Expected Type

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *MappingError) Error() string {
	switch e.Kind {
	case ErrorUnknownOption:
		return fmt.Sprintf("unknown option %q", e.Token)

	case ErrorMissingRequiredValue:
		return fmt.Sprintf("missing required value for %q", e.Slot)

	case ErrorTypeMismatch:
		msg := fmt.Sprintf("invalid value %q for %q: expected %s", e.Token, e.Slot, e.Expected)
		if e.Err != nil {
			msg += " (" + e.Err.Error() + ")"
		}
		return msg

	case ErrorDuplicatePositional:
		return fmt.Sprintf("value %q for position %d (%q) was already bound", e.Token, e.Position, e.Slot)

	case ErrorPropertyNotFound:
		return fmt.Sprintf("unexpected value %q: no slot at position %d", e.Token, e.Position)

	case ErrorMissingOptionValue:
		return fmt.Sprintf("option %q requires a value", e.Token)

	default:
		return "invalid mapping error"
	}
}

// Unwrap returns the underlying conversion error.
func (e *MappingError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's kind, for example
// errors.Is(err, ErrTypeMismatch).
func (e *MappingError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// appendConfigError aggregates err into errs, formatting the result for
// configuration errors.
func appendConfigError(errs *multierror.Error, err error) *multierror.Error {
	errs = multierror.Append(errs, err)
	errs.ErrorFormat = configErrorFormat
	return errs
}

var (
	_ error = (*ConfigError)(nil)
	_ error = (*MappingError)(nil)
)
