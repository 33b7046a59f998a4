package argbind

import (
	"strings"
)

type scanState uint8

const (
	expectingToken scanState = iota
	expectingOptionValue
)

func (s scanState) String() string {
	if s == expectingOptionValue {
		return "expecting-option-value"
	}

	return "expecting-token"
}

// Mapper binds command-line tokens onto a Registry.
type Mapper struct {
	opts *options
}

// NewMapper returns a Mapper configured with opts.
func NewMapper(opts ...Option) *Mapper {
	return &Mapper{opts: newOptions(opts...)}
}

// Map is shorthand for NewMapper(opts...).Map(args, reg).
func Map(args []string, reg *Registry, opts ...Option) *Result {
	return NewMapper(opts...).Map(args, reg)
}

// Bind builds the registry for target and maps args onto it. The error
// is only set for declaration problems in target; input problems are on
// the Result.
func Bind(target interface{}, args []string, opts ...Option) (*Result, error) {
	reg, err := BuildRegistry(target, opts...)
	if err != nil {
		return nil, err
	}

	return Map(args, reg, opts...), nil
}

// Map scans args left to right and binds every token it can. It never
// stops at the first problem: every unknown option, type mismatch,
// unexpected value and missing required slot is recorded on the Result.
//
// A token starting with the option prefix names an option, and the next
// token is its value whatever it looks like. "--name=value" binds inline.
// Other tokens are positional values, numbered from zero. The prefix
// doubled ("--" by default) on its own ends option recognition so that
// every later token is positional.
//
// An unknown option does not consume the token after it; that token is
// read as if the unknown option were absent.
//
// After scanning, slots that were given no token are set from their
// default if they have one, or reported missing if they are required. A
// slot whose token failed to convert counts as given a token.
func (m *Mapper) Map(args []string, reg *Registry) *Result {
	run := &mapRun{
		opts:     m.opts,
		reg:      reg,
		supplied: make(map[*Property]struct{}),
	}

	return run.scan(args)
}

// mapRun is the state of a single Map call.
type mapRun struct {
	opts     *options
	reg      *Registry
	supplied map[*Property]struct{}
	errs     []*MappingError
}

func (r *mapRun) scan(args []string) *Result {
	log := r.opts.logger
	prefix := r.opts.prefix
	terminator := prefix + prefix

	state := expectingToken
	var pending *Property
	var pendingToken string
	position := 0
	optionsDone := false
	for _, tok := range args {
		log.Trace("token", "token", tok, "state", state.String(), "position", position)

		if state == expectingOptionValue {
			r.assign(pending, tok)
			state, pending = expectingToken, nil
			continue
		}

		if !optionsDone && tok == terminator {
			optionsDone = true
			continue
		}

		if !optionsDone && tok != prefix && strings.HasPrefix(tok, prefix) {
			name, inline, hasInline := r.splitOption(tok)
			p, ok := r.reg.Find(name, r.opts.caseSensitive)
			if !ok {
				if r.opts.allowUnknown {
					log.Debug("ignoring unknown option", "token", tok)
					continue
				}

				r.fail(&MappingError{Kind: ErrorUnknownOption, Token: tok})
				continue
			}

			if hasInline {
				r.assign(p, inline)
				continue
			}

			state, pending, pendingToken = expectingOptionValue, p, tok
			continue
		}

		r.positional(position, tok)
		position++
	}

	if state == expectingOptionValue {
		r.fail(&MappingError{
			Kind:  ErrorMissingOptionValue,
			Token: pendingToken,
			Slot:  pending.Spec().ID(),
		})

		// The option was named, so it isn't also reported as missing.
		r.supplied[pending] = struct{}{}
	}

	r.finish()

	return &Result{target: r.reg.Target(), errs: r.errs}
}

// splitOption strips the prefix (possibly repeated) from tok and splits
// off an inline "=value".
func (r *mapRun) splitOption(tok string) (name, value string, hasValue bool) {
	name = tok
	for strings.HasPrefix(name, r.opts.prefix) {
		name = name[len(r.opts.prefix):]
	}

	return strings.Cut(name, "=")
}

func (r *mapRun) positional(pos int, tok string) {
	p, ok := r.reg.FindByPosition(pos)
	if !ok {
		r.fail(&MappingError{Kind: ErrorPropertyNotFound, Token: tok, Position: pos})
		return
	}

	if r.reg.isBound(pos) {
		r.supplied[p] = struct{}{}
		r.fail(&MappingError{
			Kind:     ErrorDuplicatePositional,
			Token:    tok,
			Slot:     p.Spec().ID(),
			Position: pos,
		})
		return
	}

	r.assign(p, tok)
}

// assign converts tok into p, recording a mismatch on failure. Either way
// p counts as supplied.
func (r *mapRun) assign(p *Property, tok string) {
	r.supplied[p] = struct{}{}
	if err := p.TryAssign(tok, r.opts.caseSensitive); err != nil {
		r.fail(err)
	}
}

// finish applies defaults, checks required slots and records the
// positions bound by this run.
func (r *mapRun) finish() {
	for _, p := range r.reg.Properties() {
		spec := p.Spec()
		if _, ok := r.supplied[p]; ok {
			if spec.Kind == KindValue {
				r.reg.markBound(spec.Position)
			}
			continue
		}

		if spec.Default != nil {
			// Defaults were validated case-insensitively at build time.
			if err := p.TryAssign(*spec.Default, false); err != nil {
				r.fail(err)
			}
			continue
		}

		if spec.Required {
			r.fail(&MappingError{
				Kind:     ErrorMissingRequiredValue,
				Slot:     spec.ID(),
				Position: spec.Position,
			})
		}
	}
}

func (r *mapRun) fail(err *MappingError) {
	r.opts.logger.Trace("mapping error", "error", err.Error())
	r.errs = append(r.errs, err)
}
