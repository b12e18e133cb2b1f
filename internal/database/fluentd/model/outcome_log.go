package model

// OutcomeLog is the audit record shipped when a command finishes, keyed to its
// CommandLog by RequestID.
type OutcomeLog struct {
	RequestID  string `bson:"request_id" json:"request_id"`
	ActorID    int64  `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	Code       int    `bson:"code" json:"code"`
	StatusCode int    `bson:"status_code" json:"status_code"`
	Body       string `bson:"body,omitempty" json:"body,omitempty"`
	Error      string `bson:"error,omitempty" json:"error,omitempty"`
	Version    string `bson:"version,omitempty" json:"version,omitempty"`
	ResponseTS string `bson:"response_ts" json:"response_ts"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
