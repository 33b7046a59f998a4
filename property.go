package argbind

import (
	"fmt"
	"reflect"
)

// Property is a single bindable slot: its SlotSpec plus the settable value
// in the target that tokens are written to. The target is owned by the
// caller; a Property only refers to it.
type Property struct {
	spec  *SlotSpec
	value reflect.Value
}

// NewProperty creates the Property for spec, writing through v. v must be
// settable and of a Go kind that can hold spec.Type.
func NewProperty(spec *SlotSpec, v reflect.Value) (*Property, error) {
	if spec == nil {
		return nil, &ConfigError{Reason: "nil slot spec"}
	}

	if !v.IsValid() || !v.CanSet() {
		return nil, &ConfigError{Field: spec.Field, Reason: "slot is not settable"}
	}

	if !spec.Type.holds(v.Kind()) {
		return nil, &ConfigError{
			Field:  spec.Field,
			Reason: fmt.Sprintf("field of kind %s can't hold a %s", v.Kind(), spec.Type),
		}
	}

	return &Property{spec: spec, value: v}, nil
}

// Spec returns the slot specification of the property.
func (p *Property) Spec() *SlotSpec { return p.spec }

// Value returns the current value of the slot in the target.
func (p *Property) Value() interface{} { return p.value.Interface() }

// TryAssign converts raw according to the declared type of the slot and,
// on success, writes it into the target. On failure the slot is left
// unmodified and a type mismatch is returned.
//
// The returned error is nil on success. It is typed so the caller can
// record it directly on a Result.
func (p *Property) TryAssign(raw string, caseSensitive bool) *MappingError {
	v, err := Convert(p.spec.Type, raw, caseSensitive)
	if err != nil {
		return &MappingError{
			Kind:     ErrorTypeMismatch,
			Token:    raw,
			Slot:     p.spec.ID(),
			Position: p.spec.Position,
			Expected: p.spec.Type,
			Err:      err,
		}
	}

	p.set(v)
	return nil
}

// set writes a value returned by Convert. Setting through the kind setters
// rather than reflect.Value.Set lets named field types (type Level int16)
// receive values.
func (p *Property) set(v interface{}) {
	switch v := v.(type) {
	case bool:
		p.value.SetBool(v)
	case int32:
		p.value.SetInt(int64(v))
	case uint8:
		p.value.SetUint(uint64(v))
	case int16:
		p.value.SetInt(int64(v))
	case int64:
		p.value.SetInt(v)
	case float32:
		p.value.SetFloat(float64(v))
	case float64:
		p.value.SetFloat(v)
	case string:
		p.value.SetString(v)
	default:
		panic(fmt.Sprintf("unexpected converted value of type %T", v))
	}
}

func (p *Property) String() string {
	return p.spec.String()
}
