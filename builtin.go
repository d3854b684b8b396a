package apierror

var (
	InvalidAttributeError = Define("InvalidAttributeError", Definition{
		Message: "Invalid attribute error.",
		Key:     KeyInvalidAttribute,
		Code:    CodeValidation,
	})
	MissingAttributeError = Define("MissingAttributeError", Definition{
		Message: "Missing attribute error.",
		Key:     KeyMissingAttribute,
		Code:    CodeValidation,
	})
	NotFoundError = Define("NotFoundError", Definition{
		Message: "Not found error.",
		Key:     KeyNotFound,
		Code:    CodeValidation,
	})
)
