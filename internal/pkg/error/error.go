package error

import "net/http"

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ─── invalid input (400) ───────────────────────────────────────────────────────

func ValidateErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request/body", errorDesc)
}

func ValidatePathParamsErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request/params", errorDesc)
}

func BadRequestHeaders(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_HEADERS, "bad-request-headers", errorDesc)
}

func InvalidCaption(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_CAPTION, "invalid-caption", errorDesc)
}

func QueryTooShort(errorDesc string) *Error {
	return New(http.StatusBadRequest, QUERY_TOO_SHORT, "query-too-short", errorDesc)
}

func InvalidToken(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_TOKEN, "invalid-token", errorDesc)
}

func UnsupportedMedia(errorDesc string) *Error {
	return New(http.StatusBadRequest, UNSUPPORTED_MEDIA, "unsupported-media-type", errorDesc)
}

// ─── authorization (401, 403) ──────────────────────────────────────────────────

func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func UnauthorizedGateway(errorDesc string) *Error {
	return New(http.StatusForbidden, UNAUTHORIZED_GATEWAY, "unauthorized-gateway", errorDesc)
}

// Distinct role-gate failures: the caller-facing reason matters (spec: not a
// tenant / expired / inactive must be told apart).

func NotATenant(errorDesc string) *Error {
	return New(http.StatusForbidden, NOT_A_TENANT, "not-a-tenant", errorDesc)
}

func LeaseExpired(errorDesc string) *Error {
	return New(http.StatusForbidden, LEASE_EXPIRED, "lease-expired", errorDesc)
}

func LeaseInactive(errorDesc string) *Error {
	return New(http.StatusForbidden, LEASE_INACTIVE, "lease-inactive", errorDesc)
}

func NotSuperuser(errorDesc string) *Error {
	return New(http.StatusForbidden, NOT_SUPERUSER, "not-superuser", errorDesc)
}

// ─── expected empty outcomes (404) ─────────────────────────────────────────────

func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}

func NoAccess(errorDesc string) *Error {
	return New(http.StatusNotFound, NO_ACCESS, "no-access", errorDesc)
}

func NoResults(errorDesc string) *Error {
	return New(http.StatusNotFound, NO_RESULTS, "no-results", errorDesc)
}

// ─── throttling (429) ──────────────────────────────────────────────────────────

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

// ─── internal (500) ────────────────────────────────────────────────────────────

func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ─── external collaborators (502, 504) ─────────────────────────────────────────

func ExternalRequestError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_REQUEST_ERROR, "external-request-failed", errorDesc)
}

func ExternalResponseFormatError(errorDesc string) *Error {
	return New(http.StatusBadGateway, EXTERNAL_RESPONSE_FORMAT_ERROR, "external-response-invalid", errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusGatewayTimeout, GATEWAY_TIMEOUT, "gateway-timeout", errorDesc)
}

// ─── accessors ─────────────────────────────────────────────────────────────────

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Error() string {
	return e.errorMsg
}

func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return ValidateErr(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return NotSuperuser(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	case http.StatusGatewayTimeout:
		return GatewayTimeout(desc)
	default:
		return InternalServer(desc)
	}
}
