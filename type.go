package argbind

import (
	"reflect"
)

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is the declared type of a slot. It determines the grammar used to
// convert a raw token and the set of Go field kinds that can hold it.
type Type uint8

const (
	TypeInvalid Type = iota // invalid
	TypeBool                // boolean
	TypeChar                // character
	TypeByte                // byte
	TypeShort               // short
	TypeInt                 // integer
	TypeLong                // long
	TypeFloat               // float
	TypeDouble              // double
	TypeString              // string
)

// IsInteger reports whether t is one of the integer types.
func (t Type) IsInteger() bool {
	switch t {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is one of the floating point types.
func (t Type) IsFloat() bool {
	return t == TypeFloat || t == TypeDouble
}

// Bits returns the width of a numeric type.
func (t Type) Bits() int {
	switch t {
	default:
		panic("only numeric types have a meaningful bit size, requested for: " + t.String())
	case TypeByte:
		return 8
	case TypeShort:
		return 16
	case TypeInt, TypeFloat:
		return 32
	case TypeLong, TypeDouble:
		return 64
	}
}

// typeOf returns the declared type for a Go type. char selects TypeChar
// for int32 since rune and int32 are the same type. TypeInvalid is returned
// for anything that can't be bound.
func typeOf(rt reflect.Type, char bool) Type {
	if rt == nil {
		return TypeInvalid
	}

	if char {
		if rt.Kind() == reflect.Int32 {
			return TypeChar
		}

		return TypeInvalid
	}

	switch rt.Kind() {
	case reflect.Bool:
		return TypeBool
	case reflect.Uint8:
		return TypeByte
	case reflect.Int16:
		return TypeShort
	case reflect.Int, reflect.Int32:
		return TypeInt
	case reflect.Int64:
		return TypeLong
	case reflect.Float32:
		return TypeFloat
	case reflect.Float64:
		return TypeDouble
	case reflect.String:
		return TypeString
	default:
		return TypeInvalid
	}
}

// holds reports whether a field of Go kind k can store values of type t.
func (t Type) holds(k reflect.Kind) bool {
	switch t {
	case TypeBool:
		return k == reflect.Bool
	case TypeChar:
		return k == reflect.Int32
	case TypeByte:
		return k == reflect.Uint8
	case TypeShort:
		return k == reflect.Int16
	case TypeInt:
		return k == reflect.Int || k == reflect.Int32
	case TypeLong:
		return k == reflect.Int64
	case TypeFloat:
		return k == reflect.Float32
	case TypeDouble:
		return k == reflect.Float64
	case TypeString:
		return k == reflect.String
	default:
		return false
	}
}
