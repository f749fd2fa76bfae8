package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RoutePathZone    = "*"
	RoutePathConvert = "/api/v1/convert"
	RoutePathDiff    = "/api/v1/datediff"
	RoutePathSwagger = "/swagger/*"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelHTTPScopeName    = "http"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	RequestHeaderUserAgent   = "User-Agent"
)

const (
	ContentTypeJSON  = "application/json"
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
