package argbind

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Builder declares slots explicitly instead of through struct tags. Each
// slot is bound to a pointer to the variable it writes:
//
//	var count int
//	var name string
//	b := argbind.NewBuilder(nil)
//	b.Option(&count, "count", "c").Required()
//	b.Value(0, &name).Label("name")
//	reg, err := b.Build()
//
// Declaration errors are reported by Build, all at once.
type Builder struct {
	target interface{}
	slots  []*SlotBuilder
}

// SlotBuilder refines a slot declared on a Builder.
type SlotBuilder struct {
	spec SlotSpec
	ptr  interface{}
	char bool
}

// NewBuilder returns a Builder. target is only recorded as the Result
// target and may be nil.
func NewBuilder(target interface{}) *Builder {
	return &Builder{target: target}
}

// Option declares an option named by names, written to *ptr.
func (b *Builder) Option(ptr interface{}, names ...string) *SlotBuilder {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = normalizeName(n)
	}

	s := &SlotBuilder{
		spec: SlotSpec{Kind: KindOption, Names: normalized},
		ptr:  ptr,
	}
	if len(normalized) > 0 {
		s.spec.Field = normalized[0]
	}

	b.slots = append(b.slots, s)
	return s
}

// Value declares the positional value at position, written to *ptr.
func (b *Builder) Value(position int, ptr interface{}) *SlotBuilder {
	s := &SlotBuilder{
		spec: SlotSpec{
			Kind:     KindValue,
			Position: position,
			Field:    "#" + strconv.Itoa(position),
		},
		ptr: ptr,
	}

	b.slots = append(b.slots, s)
	return s
}

// Required marks the slot as required.
func (s *SlotBuilder) Required() *SlotBuilder {
	s.spec.Required = true
	return s
}

// Default sets the raw text converted into the slot when no token is
// supplied for it.
func (s *SlotBuilder) Default(raw string) *SlotBuilder {
	s.spec.Default = &raw
	return s
}

// Char declares that a *rune holds a character rather than an integer.
func (s *SlotBuilder) Char() *SlotBuilder {
	s.char = true
	return s
}

// Label sets the name used for the slot in diagnostics.
func (s *SlotBuilder) Label(l string) *SlotBuilder {
	s.spec.Field = l
	return s
}

// Build validates every declared slot and returns the Registry.
func (b *Builder) Build(opts ...Option) (*Registry, error) {
	o := newOptions(opts...)

	var slots []*Slot
	var errs *multierror.Error
	for _, sb := range b.slots {
		slot, err := sb.slot()
		if err != nil {
			errs = appendConfigError(errs, err)
			continue
		}

		slots = append(slots, slot)
	}

	for _, err := range checkUnique(slots, o.caseSensitive) {
		errs = appendConfigError(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return buildRegistry(o, b.target, slots)
}

func (s *SlotBuilder) slot() (*Slot, error) {
	rv := reflect.ValueOf(s.ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, &ConfigError{
			Field:  s.spec.Field,
			Reason: fmt.Sprintf("slot must be a non-nil pointer, got %T", s.ptr),
		}
	}

	spec := s.spec
	spec.Type = typeOf(rv.Elem().Type(), s.char)
	if spec.Type == TypeInvalid {
		return nil, &ConfigError{
			Field:  spec.Field,
			Reason: fmt.Sprintf("unsupported slot type %s", rv.Elem().Type()),
		}
	}

	if err := spec.validate(); err != nil {
		return nil, err
	}

	return &Slot{Spec: &spec, Value: rv.Elem()}, nil
}
