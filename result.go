package argbind

import (
	"github.com/hashicorp/go-multierror"
)

// Result is returned from Map with the outcome of binding. A Result is
// not modified after Map returns.
type Result struct {
	target interface{}
	errs   []*MappingError
}

// Success is true if every token was bound and every required slot
// received a value.
func (r *Result) Success() bool {
	return len(r.errs) == 0
}

// Target returns the target the registry was built for. It is the same
// instance passed in, not a copy. Slots that bound successfully hold
// their new values even when Success is false.
func (r *Result) Target() interface{} {
	return r.target
}

// Errors returns the problems found, in the order they were found.
func (r *Result) Errors() []*MappingError {
	result := make([]*MappingError, len(r.errs))
	copy(result, r.errs)
	return result
}

// Err returns all the errors aggregated as a single error, or nil if
// mapping succeeded.
func (r *Result) Err() error {
	var result error
	for _, err := range r.errs {
		result = multierror.Append(result, err)
	}

	return result
}

// ErrorsOf returns the errors of the given kind.
func (r *Result) ErrorsOf(k ErrorKind) []*MappingError {
	var result []*MappingError
	for _, err := range r.errs {
		if err.Kind == k {
			result = append(result, err)
		}
	}

	return result
}
