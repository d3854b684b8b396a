package apierror

// Code classifies the general category of an error. It is sent to clients as
// extensions.code.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"

	// Codes reserved by GraphQL engines. Classes may reuse them when an error
	// should look like one the engine would have produced itself.
	CodeBadUserInput            Code = "BAD_USER_INPUT"
	CodeGraphQLParseFailed      Code = "GRAPHQL_PARSE_FAILED"
	CodeGraphQLValidationFailed Code = "GRAPHQL_VALIDATION_FAILED"
	CodeInternalServerError     Code = "INTERNAL_SERVER_ERROR"
)

// Key identifies which rule an error reports, e.g. "missing-attribute". Keys
// are unique per class by convention only.
type Key string

const (
	KeyInvalidAttribute Key = "invalid-attribute"
	KeyMissingAttribute Key = "missing-attribute"
	KeyNotFound         Key = "not-found"
)

// Extension names written into a formatted error.
const (
	ExtensionName         = "name"
	ExtensionKey          = "key"
	ExtensionCode         = "code"
	ExtensionTimeThrown   = "timeThrown"
	ExtensionData         = "data"
	ExtensionInternalData = "internalData"
)

// TimeLayout is the ISO-8601 layout used for timeThrown.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"
