package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Rate limiting and alert thresholds
const (
	RateLimitRequests        = 1000
	RateLimitWindow          = 5 * time.Minute
	RateLimitLogEvery        = 100
	RetryAfterSeconds        = "300"
	MaxTrackedClients        = 10000
	FailedAuthAlertThreshold = 5
	MaxRequestBodyBytes      = 1 << 20
	ReadHeaderTimeout        = 5 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRetryAfter      = "Retry-After"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderCacheControl    = "Cache-Control"
)

// Header values
const (
	AuthScheme            = "Bearer"
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// APIPrefix roots the read-only account and catalog API
const APIPrefix = "/api/"

// PublicPaths bypass authentication
var PublicPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
	"/version": {},
}

// quietPaths are probes and scrapes kept out of the request log
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
