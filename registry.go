package argbind

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the Properties of a single target, indexed by option name
// and by position. It is built by BuildRegistry or Builder.Build.
//
// Option names are unique under the case sensitivity the registry was
// built with (see WithCaseSensitive). Map only writes to the registry to
// record which positions it bound, so that a second Map on the same
// registry reports DuplicatePositional rather than overwriting them.
type Registry struct {
	target        interface{}
	caseSensitive bool

	// props is in registration (declaration) order.
	props []*Property

	byName map[string]*Property
	byPos  map[int]*Property

	// byFold indexes names by lowercase. A nil entry means two names of a
	// case sensitive registry fold to the same key.
	byFold map[string]*Property

	// bound tracks the positions already bound by a Map call on this
	// registry.
	bound map[int]struct{}
}

// NewRegistry returns an empty registry for target. Of the options only
// WithCaseSensitive applies. Most callers want BuildRegistry instead.
func NewRegistry(target interface{}, opts ...Option) *Registry {
	return newRegistry(target, newOptions(opts...).caseSensitive)
}

func newRegistry(target interface{}, caseSensitive bool) *Registry {
	return &Registry{
		target:        target,
		caseSensitive: caseSensitive,
		byName:        make(map[string]*Property),
		byFold:        make(map[string]*Property),
		byPos:         make(map[int]*Property),
		bound:         make(map[int]struct{}),
	}
}

// Target returns the object the registry's properties write into.
func (r *Registry) Target() interface{} { return r.target }

// Register adds p to the registry. A name that collides with an existing
// option, compared with the registry's case sensitivity, or a position that
// is already taken, is a configuration error and leaves the registry
// unchanged.
func (r *Registry) Register(p *Property) error {
	spec := p.Spec()
	if err := spec.validate(); err != nil {
		return err
	}

	switch spec.Kind {
	case KindOption:
		seen := make(map[string]struct{}, len(spec.Names))
		for _, n := range spec.Names {
			key := nameKey(n, r.caseSensitive)
			if _, ok := seen[key]; ok {
				return &ConfigError{
					Field:  spec.Field,
					Reason: fmt.Sprintf("option name %q is listed twice", n),
				}
			}
			seen[key] = struct{}{}

			if other, ok := r.lookup(n); ok {
				return &ConfigError{
					Field:  spec.Field,
					Reason: fmt.Sprintf("option name %q is already used by %q", n, other.Spec().Field),
				}
			}
		}

		for _, n := range spec.Names {
			r.byName[n] = p

			fold := strings.ToLower(n)
			if _, ok := r.byFold[fold]; ok {
				r.byFold[fold] = nil
			} else {
				r.byFold[fold] = p
			}
		}

	case KindValue:
		if other, ok := r.byPos[spec.Position]; ok {
			return &ConfigError{
				Field:  spec.Field,
				Reason: fmt.Sprintf("position %d is already used by %q", spec.Position, other.Spec().Field),
			}
		}

		r.byPos[spec.Position] = p
	}

	r.props = append(r.props, p)
	return nil
}

// FindByName looks up an option by its exact name.
func (r *Registry) FindByName(name string) (*Property, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// FindByNameFold looks up an option by name ignoring case. In a case
// sensitive registry a name that matches more than one option this way is
// not found.
func (r *Registry) FindByNameFold(name string) (*Property, bool) {
	p := r.byFold[strings.ToLower(name)]
	return p, p != nil
}

// Find looks up an option by name using FindByName or FindByNameFold
// depending on caseSensitive. A case sensitive registry always matches
// exactly first, so names differing only by case resolve to their own
// option even when caseSensitive is false.
func (r *Registry) Find(name string, caseSensitive bool) (*Property, bool) {
	if caseSensitive || r.caseSensitive {
		if p, ok := r.FindByName(name); ok || caseSensitive {
			return p, ok
		}
	}

	return r.FindByNameFold(name)
}

// CaseSensitive reports whether option names in the registry are unique
// only when compared case sensitively.
func (r *Registry) CaseSensitive() bool {
	return r.caseSensitive
}

// lookup finds an option the way names are compared for uniqueness.
func (r *Registry) lookup(name string) (*Property, bool) {
	if r.caseSensitive {
		return r.FindByName(name)
	}

	return r.FindByNameFold(name)
}

// nameKey returns the key option names are compared by.
func nameKey(n string, caseSensitive bool) string {
	if caseSensitive {
		return n
	}

	return strings.ToLower(n)
}

// FindByPosition looks up a positional value by index.
func (r *Registry) FindByPosition(idx int) (*Property, bool) {
	p, ok := r.byPos[idx]
	return p, ok
}

// AllRequired returns the specs of every required slot in declaration
// order.
func (r *Registry) AllRequired() []*SlotSpec {
	var result []*SlotSpec
	for _, p := range r.Filter(FilterRequired()) {
		result = append(result, p.Spec())
	}

	return result
}

// Properties returns all properties in declaration order.
func (r *Registry) Properties() []*Property {
	result := make([]*Property, len(r.props))
	copy(result, r.props)
	return result
}

// Filter returns the properties, in declaration order, that f accepts.
func (r *Registry) Filter(f FilterFunc) []*Property {
	var result []*Property
	for _, p := range r.props {
		if f(p.Spec()) {
			result = append(result, p)
		}
	}

	return result
}

// Positions returns the declared value positions in ascending order.
func (r *Registry) Positions() []int {
	result := make([]int, 0, len(r.byPos))
	for k := range r.byPos {
		result = append(result, k)
	}
	sort.Ints(result)

	return result
}

// Len returns the number of registered properties.
func (r *Registry) Len() int {
	return len(r.props)
}

func (r *Registry) isBound(pos int) bool {
	_, ok := r.bound[pos]
	return ok
}

func (r *Registry) markBound(pos int) {
	r.bound[pos] = struct{}{}
}
