// Package argbind binds command-line tokens onto the fields of a Go struct.
//
// go-argbind discovers the bindable slots of a target struct, matches raw
// command-line tokens against them, converts each token to the slot's
// declared type and reports every problem with the input at once rather
// than stopping at the first error.
//
// # Declaring Slots
//
// Slots are declared with the "argbind" struct tag. A slot is either an
// option, matched by one or more names, or a value, matched by its position
// among the non-option tokens:
//
//	type Config struct {
//		Count   int    `argbind:"option=count|c,required"`
//		Verbose bool   `argbind:"option=verbose|v,default=false"`
//		Name    string `argbind:"value=0"`
//	}
//
// Fields without the tag are ignored; tagging an unexported field is an
// error. The tag options are:
//
//   - option=<names>: the slot is an option. Names are separated by "|".
//     Any leading "-" on a name is stripped, so "--count" and "count"
//     declare the same name.
//   - value=<position>: the slot is a positional value, zero-indexed.
//   - required: mapping fails if no token is supplied for the slot.
//   - default=<raw>: raw text converted into the slot when no token is
//     supplied. Everything after "default=" is taken verbatim, so it must
//     be the last tag option.
//   - char: an int32 (rune) field holds a single character rather than
//     an integer.
//
// Supported field types are bool, rune (with char), byte, int16, int,
// int32, int64, float32, float64 and string, along with named types whose
// underlying type is one of these.
//
// Where reflection over a tagged struct isn't wanted, Builder registers the
// same slots explicitly against pointers to variables.
//
// # Binding
//
// BuildRegistry turns a target into a Registry. It is the only place
// declaration mistakes are reported; a target that builds cleanly can be
// mapped against any input. Map then scans the tokens and returns a
// Result. Input problems never surface as a Go error from Map: they are
// collected as MappingError values on the Result so that all of them can
// be shown to the user together.
//
// Option names must be unique ignoring case, unless the registry is built
// with WithCaseSensitive(true), in which case names that differ only by
// case are distinct options.
//
// A Registry and its target are meant to be mapped exactly once.
package argbind
