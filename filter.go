package argbind

// FilterFunc selects slots, for example with Registry.Filter.
type FilterFunc func(*SlotSpec) bool

// FilterKind matches slots of the given kind.
func FilterKind(k Kind) FilterFunc {
	return func(s *SlotSpec) bool {
		return s.Kind == k
	}
}

// FilterType matches slots with the given declared type.
func FilterType(t Type) FilterFunc {
	return func(s *SlotSpec) bool {
		return s.Type == t
	}
}

// FilterRequired matches required slots.
func FilterRequired() FilterFunc {
	return func(s *SlotSpec) bool {
		return s.Required
	}
}

// FilterDefault matches slots that declare a default.
func FilterDefault() FilterFunc {
	return func(s *SlotSpec) bool {
		return s.Default != nil
	}
}

// FilterOr returns a FilterFunc that returns true if any of the given
// filter functions return true.
func FilterOr(fs ...FilterFunc) FilterFunc {
	return func(s *SlotSpec) bool {
		for _, f := range fs {
			if f(s) {
				return true
			}
		}

		return false
	}
}

// FilterAnd returns a FilterFunc that returns true if all of the given
// filter functions return true.
func FilterAnd(fs ...FilterFunc) FilterFunc {
	return func(s *SlotSpec) bool {
		for _, f := range fs {
			if !f(s) {
				return false
			}
		}

		return true
	}
}
