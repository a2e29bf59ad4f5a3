package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMETextPlain           = "text/plain"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationForm     = "application/x-www-form-urlencoded"
	MIMEOctetStream         = "application/octet-stream"
	MIMEMultipartForm       = "multipart/form-data"
	MIMEImagePNG            = "image/png"
	MIMEImageJPEG           = "image/jpeg"
	MIMEImageGIF            = "image/gif"
	MIMEImageWEBP           = "image/webp"
	MIMEApplicationJSONUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"
)

const (
	AuthorizationBearerPrefix = "Bearer "
	ClientUserAgent           = "psychology-assessment-client/1.0"
)

const (
	URLParamScaleCode = "scale_code"
	URLParamOrdinal   = "ordinal"
	QueryParamLimit   = "limit"
)

const (
	DefaultSubmissionsLimit = 20
)

// DefaultAllowedOrigins lists the local front-end dev servers.
const DefaultAllowedOrigins = "http://localhost:5173,http://127.0.0.1:5173"
