package apierror

import (
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Redact removes server-only extensions from err. When there is nothing to
// remove err itself is returned; otherwise a shallow copy is returned and err
// is left as it was.
func Redact(err *gqlerror.Error) *gqlerror.Error {
	if err == nil {
		return nil
	}
	if _, ok := err.Extensions[ExtensionInternalData]; !ok {
		return err
	}

	redacted := *err
	redacted.Extensions = make(map[string]interface{}, len(err.Extensions)-1)
	for k, v := range err.Extensions {
		if k != ExtensionInternalData {
			redacted.Extensions[k] = v
		}
	}
	if len(redacted.Extensions) == 0 {
		redacted.Extensions = nil
	}
	return &redacted
}
