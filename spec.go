package argbind

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind distinguishes the two kinds of slot.
type Kind uint8

const (
	KindInvalid Kind = iota // invalid
	KindOption              // option
	KindValue               // value
)

// SlotSpec describes one bindable slot. Exactly one of Names and Position
// is meaningful, selected by Kind.
//
// A SlotSpec is not modified once it has been registered.
type SlotSpec struct {
	// Kind is whether this slot is an option or a positional value.
	Kind Kind

	// Field is the name of the struct field (or builder label) backing
	// the slot. It is only used in diagnostics.
	Field string

	// Names are the names accepted for an option, without prefix. The
	// first name is the primary name.
	Names []string

	// Position is the zero-based index of a value among the positional
	// tokens.
	Position int

	// Type is the declared type of the slot.
	Type Type

	// Required is true if mapping must supply a token for this slot.
	Required bool

	// Default, if non-nil, is the raw text converted into the slot when
	// no token is supplied.
	Default *string
}

// ID returns the identifier used for this slot in diagnostics: the primary
// name of an option, or the field name of a value.
func (s *SlotSpec) ID() string {
	if s.Kind == KindOption && len(s.Names) > 0 {
		return s.Names[0]
	}

	if s.Field != "" {
		return s.Field
	}

	return "#" + strconv.Itoa(s.Position)
}

func (s *SlotSpec) String() string {
	switch s.Kind {
	case KindOption:
		return fmt.Sprintf("option %s (%s)", strings.Join(s.Names, "|"), s.Type)
	case KindValue:
		return fmt.Sprintf("value %d %s (%s)", s.Position, s.ID(), s.Type)
	default:
		return fmt.Sprintf("invalid slot %s", s.Field)
	}
}

// normalizeName strips any leading "-" from a declared option name.
func normalizeName(n string) string {
	return strings.TrimLeft(n, "-")
}

// validate checks the internal consistency of a single spec. Uniqueness
// across specs is checked by the Registry.
func (s *SlotSpec) validate() error {
	var problems []string
	switch s.Kind {
	case KindOption:
		if len(s.Names) == 0 {
			problems = append(problems, "option has no names")
		}
		for _, n := range s.Names {
			if !validName(n) {
				problems = append(problems, fmt.Sprintf("invalid option name %q", n))
			}
		}

	case KindValue:
		if s.Position < 0 {
			problems = append(problems, fmt.Sprintf("negative position %d", s.Position))
		}

	default:
		problems = append(problems, "slot must be either an option or a value")
	}

	if s.Type == TypeInvalid {
		problems = append(problems, "unsupported type")
	}

	if s.Default != nil && s.Type != TypeInvalid {
		if _, err := Convert(s.Type, *s.Default, false); err != nil {
			problems = append(problems, fmt.Sprintf(
				"default %q is not a valid %s: %s", *s.Default, s.Type, err))
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return &ConfigError{
		Field:  s.Field,
		Reason: strings.Join(problems, "; "),
	}
}

// validName reports whether n can be used as an option name. Names can't
// be empty, contain whitespace, or contain "=" since that separates an
// inline value.
func validName(n string) bool {
	if n == "" {
		return false
	}

	for _, r := range n {
		if r == '=' || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
