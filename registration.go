package argbind

import (
	"github.com/hashicorp/go-multierror"
)

// BuildRegistry discovers the tagged slots of target (see Discover) and
// returns a Registry ready for Map. target must be a non-nil pointer to a
// struct and is written to in place by Map.
//
// An error here is always a declaration problem in target, never a
// problem with command-line input.
func BuildRegistry(target interface{}, opts ...Option) (*Registry, error) {
	o := newOptions(opts...)
	slots, err := Discover(target, opts...)
	if err != nil {
		o.logger.Debug("slot discovery failed", "target", target, "error", err)
		return nil, err
	}

	return buildRegistry(o, target, slots)
}

// buildRegistry creates a Property for every slot and registers it.
func buildRegistry(o *options, target interface{}, slots []*Slot) (*Registry, error) {
	log := o.logger
	reg := newRegistry(target, o.caseSensitive)

	var errs *multierror.Error
	for _, s := range slots {
		p, err := NewProperty(s.Spec, s.Value)
		if err != nil {
			errs = appendConfigError(errs, err)
			continue
		}

		if err := reg.Register(p); err != nil {
			errs = appendConfigError(errs, err)
			continue
		}

		log.Trace("registered slot", "slot", s.Spec.String())
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	log.Debug("registry built",
		"options", len(reg.Filter(FilterKind(KindOption))),
		"values", len(reg.Filter(FilterKind(KindValue))),
		"required", len(reg.AllRequired()))
	return reg, nil
}
