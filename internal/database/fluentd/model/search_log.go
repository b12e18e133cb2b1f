package model

// SearchLog records one search fan-out for offline analysis.
type SearchLog struct {
	RequestID   string `bson:"request_id,omitempty" json:"request_id"`
	UserID      int64  `bson:"user_id" json:"user_id"`
	Query       string `bson:"query" json:"query"`
	GrantCount  int    `bson:"grant_count" json:"grant_count"`
	TenantsHit  int    `bson:"tenants_hit" json:"tenants_hit"`
	SkippedGate int    `bson:"skipped_gate,omitempty" json:"skipped_gate,omitempty"`
	ResultCount int    `bson:"result_count" json:"result_count"`
	Degraded    bool   `bson:"degraded,omitempty" json:"degraded,omitempty"`
	Version     string `bson:"version" json:"version"`
	LoggedAt    string `bson:"logged_at" json:"logged_at"`
}
