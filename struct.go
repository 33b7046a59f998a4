package argbind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// tagName is the struct tag read by Discover.
const tagName = "argbind"

// Slot is a discovered slot: its specification and the settable field in
// the target it writes to.
type Slot struct {
	Spec  *SlotSpec
	Value reflect.Value
}

// Discover walks the fields of target, which must be a non-nil pointer to
// a struct, and returns a Slot for every field with an argbind tag, in
// field order.
//
// All declaration problems are collected and returned together as a
// multierror of *ConfigError, including duplicate option names and
// duplicate positions. Option names are compared ignoring case unless
// WithCaseSensitive is set; the other options don't apply.
func Discover(target interface{}, opts ...Option) ([]*Slot, error) {
	o := newOptions(opts...)

	sv, err := structValueOf(target)
	if err != nil {
		return nil, err
	}
	st := sv.Type()

	var result []*Slot
	var errs *multierror.Error
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok {
			continue
		}

		// Unexported fields can't be set through reflection.
		if sf.PkgPath != "" {
			errs = appendConfigError(errs, &ConfigError{
				Field:  sf.Name,
				Reason: "tagged field is unexported",
			})
			continue
		}

		spec, err := specFromField(sf, tag)
		if err != nil {
			errs = appendConfigError(errs, err)
			continue
		}

		result = append(result, &Slot{Spec: spec, Value: sv.Field(i)})
	}

	for _, err := range checkUnique(result, o.caseSensitive) {
		errs = appendConfigError(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return result, nil
}

// structValueOf returns the struct that target points to.
func structValueOf(target interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, &ConfigError{
			Reason: fmt.Sprintf("target must be a non-nil pointer to a struct, got %T", target),
		}
	}

	sv := rv.Elem()
	if sv.Kind() != reflect.Struct {
		return reflect.Value{}, &ConfigError{
			Reason: fmt.Sprintf("target must be a non-nil pointer to a struct, got %T", target),
		}
	}

	return sv, nil
}

// fieldTag is the parsed form of an argbind tag.
type fieldTag struct {
	names    []string
	position *int
	required bool
	char     bool
	def      *string
}

// parseTag parses a tag of the form "option=a|b,required,default=x". Each
// part is either a flag or key=value. default consumes the remainder of the
// tag so the default text may contain commas.
func parseTag(tag string) (*fieldTag, error) {
	result := &fieldTag{}
	parts := strings.Split(tag, ",")
	for i, part := range parts {
		key, value, hasValue := strings.Cut(part, "=")
		switch key {
		case "option":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("option requires at least one name")
			}
			for _, n := range strings.Split(value, "|") {
				result.names = append(result.names, normalizeName(n))
			}

		case "value":
			pos, err := strconv.Atoi(value)
			if !hasValue || err != nil {
				return nil, fmt.Errorf("value requires an integer position, got %q", value)
			}
			result.position = &pos

		case "required":
			result.required = true

		case "char":
			result.char = true

		case "default":
			// Everything after "default=" belongs to the default.
			def := strings.Join(append([]string{value}, parts[i+1:]...), ",")
			result.def = &def
			return result, nil

		case "":
			// Tolerate empty parts such as a trailing comma.

		default:
			return nil, fmt.Errorf("unknown tag option %q", key)
		}
	}

	return result, nil
}

func specFromField(sf reflect.StructField, tag string) (*SlotSpec, error) {
	ft, err := parseTag(tag)
	if err != nil {
		return nil, &ConfigError{Field: sf.Name, Reason: err.Error()}
	}

	spec := &SlotSpec{
		Field:    sf.Name,
		Names:    ft.names,
		Type:     typeOf(sf.Type, ft.char),
		Required: ft.required,
		Default:  ft.def,
	}

	switch {
	case len(ft.names) > 0 && ft.position != nil:
		return nil, &ConfigError{Field: sf.Name, Reason: "slot can't be both an option and a value"}
	case len(ft.names) > 0:
		spec.Kind = KindOption
	case ft.position != nil:
		spec.Kind = KindValue
		spec.Position = *ft.position
	}

	if spec.Type == TypeInvalid {
		return nil, &ConfigError{
			Field:  sf.Name,
			Reason: fmt.Sprintf("unsupported field type %s", sf.Type),
		}
	}

	if err := spec.validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// checkUnique returns an error for every option name or position declared
// by more than one slot. Names differing only by case are duplicates unless
// caseSensitive.
func checkUnique(slots []*Slot, caseSensitive bool) []error {
	var errs []error
	names := map[string]string{}
	positions := map[int]string{}
	for _, s := range slots {
		switch s.Spec.Kind {
		case KindOption:
			for _, n := range s.Spec.Names {
				key := nameKey(n, caseSensitive)
				if other, ok := names[key]; ok {
					errs = append(errs, &ConfigError{
						Field:  s.Spec.Field,
						Reason: fmt.Sprintf("option name %q is already used by %q", n, other),
					})
					continue
				}
				names[key] = s.Spec.Field
			}

		case KindValue:
			if other, ok := positions[s.Spec.Position]; ok {
				errs = append(errs, &ConfigError{
					Field:  s.Spec.Field,
					Reason: fmt.Sprintf("position %d is already used by %q", s.Spec.Position, other),
				})
				continue
			}
			positions[s.Spec.Position] = s.Spec.Field
		}
	}

	return errs
}
