package argbind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	errBoolSyntax  = errors.New("expected true, false, 1 or 0")
	errCharLength  = errors.New("expected exactly one character")
	errFloatSyntax = errors.New("expected decimal or exponential notation")
	errByteRange   = errors.New("value out of range [0, 255]")
)

// Convert converts raw using the grammar of the declared type t. The
// returned value is one of bool, rune, uint8, int16, int32, int64, float32,
// float64 or string depending on t.
//
// caseSensitive only affects booleans: when set, the literals must be
// lowercase "true" or "false".
func Convert(t Type, raw string, caseSensitive bool) (interface{}, error) {
	switch t {
	case TypeBool:
		return convertBool(raw, caseSensitive)

	case TypeChar:
		r, size := utf8.DecodeRuneInString(raw)
		if size == 0 || size != len(raw) || (r == utf8.RuneError && size == 1) {
			return nil, errCharLength
		}
		return r, nil

	case TypeByte:
		// ParseUint rejects a leading sign, so go through a wider signed
		// parse and range check by hand.
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, err
		}
		if n < 0 || n > 255 {
			return nil, errByteRange
		}
		return uint8(n), nil

	case TypeShort:
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, err
		}
		return int16(n), nil

	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		return int32(n), nil

	case TypeLong:
		return strconv.ParseInt(raw, 10, 64)

	case TypeFloat, TypeDouble:
		if !isDecimalFloat(raw) {
			return nil, errFloatSyntax
		}
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return nil, err
		}
		if t == TypeFloat {
			return float32(f), nil
		}
		return f, nil

	case TypeString:
		return raw, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

func convertBool(raw string, caseSensitive bool) (bool, error) {
	switch {
	case raw == "1":
		return true, nil
	case raw == "0":
		return false, nil
	case caseSensitive && raw == "true":
		return true, nil
	case caseSensitive && raw == "false":
		return false, nil
	case !caseSensitive && strings.EqualFold(raw, "true"):
		return true, nil
	case !caseSensitive && strings.EqualFold(raw, "false"):
		return false, nil
	}

	return false, errBoolSyntax
}

// isDecimalFloat reports whether s only uses the characters of decimal
// and exponential notation. ParseFloat on its own also accepts "Inf",
// "NaN" and hexadecimal mantissas.
func isDecimalFloat(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return false
		}
	}

	return true
}
