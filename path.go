package apierror

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// MergePath returns the engine path followed by the validation path. It
// returns nil rather than an empty path so that the field is omitted on the
// wire.
func MergePath(engine, validation ast.Path) ast.Path {
	if len(engine)+len(validation) == 0 {
		return nil
	}
	path := make(ast.Path, 0, len(engine)+len(validation))
	path = append(path, engine...)
	return append(path, validation...)
}
