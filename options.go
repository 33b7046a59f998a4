package argbind

import (
	"github.com/hashicorp/go-hclog"
)

// DefaultOptionPrefix is the option prefix used unless WithOptionPrefix
// sets another.
const DefaultOptionPrefix = "-"

// Option configures BuildRegistry, Builder.Build and Map.
type Option func(*options)

type options struct {
	logger        hclog.Logger
	prefix        string
	caseSensitive bool
	allowUnknown  bool
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: hclog.L(),
		prefix: DefaultOptionPrefix,
	}

	for _, opt := range opts {
		opt(o)
	}

	o.logger = o.logger.Named("argbind")
	return o
}

// WithLogger sets the logger. Mapping logs every token at trace level.
// Defaults to hclog.L().
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOptionPrefix sets the literal prefix that marks a token as an option.
// A token that starts with the prefix repeated is also an option, so with
// the default "-" both "-v" and "--verbose" are options. An empty prefix
// is ignored.
func WithOptionPrefix(p string) Option {
	return func(o *options) {
		if p != "" {
			o.prefix = p
		}
	}
}

// WithCaseSensitive sets whether option names and boolean literals are
// matched case sensitively. Defaults to false.
func WithCaseSensitive(v bool) Option {
	return func(o *options) {
		o.caseSensitive = v
	}
}

// WithAllowUnknownOptions sets whether unknown options are silently
// skipped instead of being reported. Defaults to false.
func WithAllowUnknownOptions(v bool) Option {
	return func(o *options) {
		o.allowUnknown = v
	}
}
