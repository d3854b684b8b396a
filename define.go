package apierror

import (
	"time"

	"github.com/vektah/gqlparser/v2/ast"
)

// Definition holds the class-level defaults of a structured error.
type Definition struct {
	Key     Key
	Code    Code
	Message string
	// TimeThrown, when set, is used instead of the construction time.
	TimeThrown   string
	Data         map[string]interface{}
	InternalData map[string]interface{}
	Options      Options
}

// Options control which engine-supplied fields survive formatting.
type Options struct {
	HidePath      bool
	HideLocations bool
}

// Config holds the per-instance overrides passed to Class.New. The zero value
// produces an error with the class defaults.
type Config struct {
	Message      string
	TimeThrown   string
	Data         map[string]interface{}
	InternalData map[string]interface{}
	// ValidationPath points at the nested input field that failed. It is
	// appended to the field path computed by the engine.
	ValidationPath ast.Path
	// Options replaces the class options when non-nil.
	Options *Options
	Cause   error
}

// Class is a structured error class created by Define. It is immutable and
// safe for concurrent use.
type Class struct {
	name  string
	def   Definition
	clock func() time.Time
}

// DefineOption configures a Class.
type DefineOption func(*Class)

// WithClock sets the time source used for timeThrown when neither the
// definition nor the instance provides one.
func WithClock(clock func() time.Time) DefineOption {
	return func(c *Class) {
		c.clock = clock
	}
}

// Define creates a structured error class. The name is reported to clients as
// extensions.name. Defining two classes with the same name is allowed.
func Define(name string, def Definition, opts ...DefineOption) *Class {
	def.Data = copyData(def.Data)
	def.InternalData = copyData(def.InternalData)
	c := &Class{
		name:  name,
		def:   def,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Definition() Definition {
	def := c.def
	def.Data = copyData(def.Data)
	def.InternalData = copyData(def.InternalData)
	return def
}

// New returns an error of this class with cfg applied over the class
// defaults.
func (c *Class) New(cfg Config) *Error {
	opts := c.def.Options
	if cfg.Options != nil {
		opts = *cfg.Options
	}

	timeThrown := firstNonEmpty(cfg.TimeThrown, c.def.TimeThrown)
	if timeThrown == "" {
		timeThrown = c.clock().UTC().Format(TimeLayout)
	}

	var validationPath ast.Path
	if len(cfg.ValidationPath) > 0 {
		validationPath = append(ast.Path(nil), cfg.ValidationPath...)
	}

	return &Error{
		class:          c,
		message:        firstNonEmpty(cfg.Message, c.def.Message),
		timeThrown:     timeThrown,
		data:           mergeData(c.def.Data, cfg.Data),
		internalData:   mergeData(c.def.InternalData, cfg.InternalData),
		validationPath: validationPath,
		opts:           opts,
		cause:          cfg.Cause,
	}
}

// Is reports whether err, or an error it wraps, is an instance of c.
func (c *Class) Is(err error) bool {
	for depth := 0; !isNil(err) && depth < MaxUnwrapDepth; depth++ {
		if e, ok := err.(*Error); ok && e.class == c {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
