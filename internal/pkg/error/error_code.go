package error

const (
	// 0 ~ 999: success
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: invalid input (400)
	BAD_REQUEST_BODY    = 40000 // 400 - malformed request body
	BAD_REQUEST_PARAMS  = 40001 // 400 - malformed request parameters
	BAD_REQUEST_HEADERS = 40002 // 400 - malformed request headers
	INVALID_CAPTION     = 40003 // 400 - caption empty or too long after stripping
	QUERY_TOO_SHORT     = 40004 // 400 - normalized query below minimum length
	INVALID_TOKEN       = 40005 // 400 - malformed invitation token or actor id
	UNSUPPORTED_MEDIA   = 40006 // 400 - content reference suffix not allow-listed

	// 40100 ~ 40399: authorization (401, 403)
	UNAUTHORIZED          = 40100 // 401 - no/invalid session
	INVALID_SESSION       = 40101 // 401 - session token rejected
	NOT_A_TENANT          = 40300 // 403 - actor holds no tenant record
	LEASE_EXPIRED         = 40301 // 403 - tenant lease expired
	LEASE_INACTIVE        = 40302 // 403 - tenant deactivated, pending setup
	NOT_SUPERUSER         = 40303 // 403 - privileged command, actor is not the superuser
	UNAUTHORIZED_GATEWAY  = 40304 // 403 - transport bridge key rejected

	// 40400 ~ 40499: expected empty outcomes (404)
	NOT_FOUND  = 40400 // 404 - resource not found
	NO_ACCESS  = 40401 // 404 - user holds no read grants
	NO_RESULTS = 40402 // 404 - search matched nothing

	// 42900 ~ 42999: throttling (429)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - tenancy request window exhausted

	// 50000 ~ 50199: internal (500)
	INTERNAL_ERROR      = 50000 // 500 - unexpected failure
	DATABASE_ERROR      = 50001 // 500 - storage failure, retryable
	SERVICE_UNAVAILABLE = 50002 // 503 - maintenance

	// 50200 ~ 50499: external collaborators (502, 504)
	EXTERNAL_REQUEST_ERROR         = 50200 // 502 - chat platform request failed
	EXTERNAL_RESPONSE_FORMAT_ERROR = 50201 // 502 - chat platform response unreadable
	GATEWAY_TIMEOUT                = 50400 // 504 - chat platform timed out
)
