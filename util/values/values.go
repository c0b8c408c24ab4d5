package values

// Status strings used across handlers; util.StatusCode maps them onto HTTP
// status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	SystemErr      = "system-error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
)

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-ID"
)

type contextKey string

// ContextTracingKey carries the tracing context through a request.
const ContextTracingKey = contextKey("tracing-context")

// ContextUserKey carries the authenticated user id through a request.
const ContextUserKey = contextKey("user-id")

// ContextAdminKey carries the authenticated user's admin flag.
const ContextAdminKey = contextKey("is-admin")
