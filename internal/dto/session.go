package dto

// StartSessionDto is posted by the transport bridge when an actor opens a
// conversation. Token is the optional invitation deep-link payload.
type StartSessionDto struct {
	ActorID int64  `json:"actorID" binding:"required"`
	Token   string `json:"token,omitempty"`
}

type SessionResponseDto struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Granted bool   `json:"granted"`
}

type WhoAmIResponseDto struct {
	ActorID     int64  `json:"actorID"`
	Role        string `json:"role"`
	LeaseStatus string `json:"leaseStatus,omitempty"`
}
