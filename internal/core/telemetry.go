package core

const ContextTraceKey = "telemetry_trace_ctx"

// ContextActorKey carries the authenticated actor id through gin.
const ContextActorKey = "actorID"

// ==== span names ====
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanAuthMiddleware      TraceSpanName = "auth_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
	SpanSearchDispatch      TraceSpanName = "search_dispatch"
	SpanMembershipGate      TraceSpanName = "membership_gate"
)

// ==== metric names ====
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricCommandSuccessTotal MetricName = "command_success_total"
	MetricCommandFailTotal    MetricName = "command_fail_total"
	MetricSearchTenantsTotal  MetricName = "search_tenants_total"
	MetricGateSkipTotal       MetricName = "gate_skip_total"
)

type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
)

// ==== trace attribute carriers (applied via `trace` struct tags) ====

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
}

type TraceAuthMeta struct {
	ActorID int64  `trace:"auth.actor_id"`
	Role    string `trace:"auth.role"`
	Where   string `trace:"auth.token_source"`
	Status  string `trace:"auth.status"`
}

type TraceLeaseMeta struct {
	ActorID int64  `trace:"lease.actor_id"`
	Status  string `trace:"lease.status"`
	Op      string `trace:"lease.op"`
}

type TraceSearchMeta struct {
	UserID      int64  `trace:"search.user_id"`
	Query       string `trace:"search.query"`
	GrantCount  int    `trace:"search.grant_count"`
	TenantsHit  int    `trace:"search.tenants_hit"`
	SkippedGate int    `trace:"search.skipped_gate"`
	ResultCount int    `trace:"search.result_count"`
	Degraded    bool   `trace:"search.degraded"`
}

type TraceGateMeta struct {
	TenantID   int64  `trace:"gate.tenant_id"`
	UserID     int64  `trace:"gate.user_id"`
	ChannelRef string `trace:"gate.channel_ref"`
	Verdict    string `trace:"gate.verdict"`
	Cached     bool   `trace:"gate.cached"`
}

type TraceCatalogMeta struct {
	TenantID   int64  `trace:"catalog.tenant_id"`
	ContentRef string `trace:"catalog.content_ref"`
	Outcome    string `trace:"catalog.outcome"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"http.status_code"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"duration_ms"`
	Data       string  `trace:"response.data"`
}

type TraceRateLimitMeta struct {
	ActorID   int64  `trace:"ratelimit.actor_id"`
	Limit     int    `trace:"ratelimit.limit"`
	WindowSec int64  `trace:"ratelimit.window_sec"`
	Remaining int    `trace:"ratelimit.remaining"`
	TTL       int64  `trace:"ratelimit.ttl_sec"`
	Op        string `trace:"ratelimit.op"`
}
