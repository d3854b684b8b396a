package apierror

import (
	"context"
	"reflect"

	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// MaxUnwrapDepth bounds the walk over wrapped errors. Cause chains deeper than
// this are truncated, which also guards against self-referencing chains.
const MaxUnwrapDepth = 64

// Unwrap walks the chain of wrapped errors starting at err and returns the
// last *Error found, i.e. the innermost one. The walk follows Unwrap() error
// and stops at the first link that does not implement it.
func Unwrap(err error) *Error {
	return unwrap(err, MaxUnwrapDepth)
}

func unwrap(err error, maxDepth int) *Error {
	var found *Error
	for depth := 0; !isNil(err) && depth < maxDepth; depth++ {
		// Errors not built by Class.New carry no taxonomy.
		if e, ok := err.(*Error); ok && e.class != nil {
			found = e
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return found
}

// isNil reports whether err is nil or a typed nil pointer, on which calling
// Unwrap could panic.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Formatter turns errors caught by the GraphQL engine into the errors sent to
// clients. The zero value is ready to use.
type Formatter struct {
	log      zerolog.Logger
	hasLog   bool
	metrics  *Metrics
	maxDepth int
}

type FormatterOption func(*Formatter)

// WithLogger makes the formatter log every error it formats at debug level,
// internal data included.
func WithLogger(logger zerolog.Logger) FormatterOption {
	return func(f *Formatter) {
		f.log = logger
		f.hasLog = true
	}
}

func WithMetrics(m *Metrics) FormatterOption {
	return func(f *Formatter) {
		f.metrics = m
	}
}

// WithMaxDepth overrides MaxUnwrapDepth. Values below 1 are ignored.
func WithMaxDepth(depth int) FormatterOption {
	return func(f *Formatter) {
		if depth > 0 {
			f.maxDepth = depth
		}
	}
}

func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatError builds the client-visible error from the engine's default
// formatted error and the raw error it caught. When raw, or an error it wraps,
// is an *Error the result is enriched by Error.Format. Internal data is always
// stripped. Neither argument is modified.
func (f *Formatter) FormatError(formatted *gqlerror.Error, raw error) *gqlerror.Error {
	if isNil(raw) {
		if formatted == nil {
			return nil
		}
		raw = formatted
	}
	if formatted == nil {
		formatted = gqlerror.WrapPath(nil, raw)
	}

	maxDepth := f.maxDepth
	if maxDepth == 0 {
		maxDepth = MaxUnwrapDepth
	}

	out := formatted
	apiErr := unwrap(raw, maxDepth)
	if apiErr != nil {
		out = apiErr.Format(formatted)
	}

	f.logFormatted(out, apiErr)
	if f.metrics != nil {
		f.metrics.observe(apiErr)
	}

	return Redact(out)
}

func (f *Formatter) logFormatted(out *gqlerror.Error, apiErr *Error) {
	if !f.hasLog {
		return
	}
	ev := f.log.Debug()
	if !ev.Enabled() {
		return
	}
	ev = ev.Str("message", out.Message).
		Stringer("path", out.Path).
		Bool("structured", apiErr != nil)
	if apiErr != nil {
		ev = ev.Str("name", apiErr.Name()).
			Str("key", string(apiErr.Key())).
			Str("code", string(apiErr.Code())).
			Str("timeThrown", apiErr.TimeThrown())
		if len(apiErr.internalData) > 0 {
			ev = ev.Interface("internalData", apiErr.internalData)
		}
	}
	ev.Msg("formatting GraphQL error")
}

// Presenter adapts f to the error presenter hook of gqlgen-style servers.
// def produces the engine's default formatted error, e.g.
// graphql.DefaultErrorPresenter:
//
//	srv.SetErrorPresenter(formatter.Presenter(graphql.DefaultErrorPresenter))
func (f *Formatter) Presenter(def func(ctx context.Context, err error) *gqlerror.Error) func(ctx context.Context, err error) *gqlerror.Error {
	return func(ctx context.Context, err error) *gqlerror.Error {
		var formatted *gqlerror.Error
		if def != nil {
			formatted = def(ctx, err)
		}
		return f.FormatError(formatted, err)
	}
}

var defaultFormatter Formatter

// FormatError formats an error with a Formatter that has no logger and no
// metrics.
func FormatError(formatted *gqlerror.Error, raw error) *gqlerror.Error {
	return defaultFormatter.FormatError(formatted, raw)
}
