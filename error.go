package apierror

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Error is a structured API error, created with Class.New.
type Error struct {
	class          *Class
	message        string
	timeThrown     string
	data           map[string]interface{}
	internalData   map[string]interface{}
	validationPath ast.Path
	opts           Options
	cause          error
}

func (err *Error) Error() string {
	if err.message == "" && err.class != nil {
		return err.class.name
	}
	return err.message
}

func (err *Error) Unwrap() error {
	return err.cause
}

func (err *Error) Class() *Class {
	return err.class
}

func (err *Error) Name() string {
	if err.class == nil {
		return ""
	}
	return err.class.name
}

func (err *Error) Key() Key {
	if err.class == nil {
		return ""
	}
	return err.class.def.Key
}

func (err *Error) Code() Code {
	if err.class == nil {
		return ""
	}
	return err.class.def.Code
}

// Message returns the effective message, which may be empty.
func (err *Error) Message() string {
	return err.message
}

func (err *Error) TimeThrown() string {
	return err.timeThrown
}

func (err *Error) Data() map[string]interface{} {
	return copyData(err.data)
}

// InternalData returns the server-only payload. It is never sent to clients.
func (err *Error) InternalData() map[string]interface{} {
	return copyData(err.internalData)
}

func (err *Error) ValidationPath() ast.Path {
	if len(err.validationPath) == 0 {
		return nil
	}
	return append(ast.Path(nil), err.validationPath...)
}

// Extensions returns the extension fields describing err. The result includes
// internalData; FormatError strips it before anything reaches a client.
func (err *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		ExtensionName:       err.Name(),
		ExtensionKey:        string(err.Key()),
		ExtensionCode:       string(err.Code()),
		ExtensionTimeThrown: err.timeThrown,
	}
	if len(err.data) > 0 {
		ext[ExtensionData] = copyData(err.data)
	}
	if len(err.internalData) > 0 {
		ext[ExtensionInternalData] = copyData(err.internalData)
	}
	return ext
}

// Format merges err into the default formatted error produced by the engine
// and returns the result as a new value. def is left untouched. Redaction is
// not applied here; see FormatError.
func (err *Error) Format(def *gqlerror.Error) *gqlerror.Error {
	if def == nil {
		def = &gqlerror.Error{Message: err.message}
	}

	out := &gqlerror.Error{
		Err:     err,
		Message: def.Message,
		Rule:    def.Rule,
	}

	if !err.opts.HidePath {
		if len(err.validationPath) > 0 {
			out.Path = MergePath(def.Path, err.validationPath)
		} else if def.Path != nil {
			out.Path = append(ast.Path{}, def.Path...)
		}
	}
	if !err.opts.HideLocations && def.Locations != nil {
		out.Locations = append([]gqlerror.Location{}, def.Locations...)
	}

	out.Extensions = make(map[string]interface{}, len(def.Extensions)+6)
	for k, v := range def.Extensions {
		out.Extensions[k] = v
	}
	for k, v := range err.Extensions() {
		out.Extensions[k] = v
	}

	return out
}
