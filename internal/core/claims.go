package core

import "github.com/golang-jwt/jwt/v4"

// SessionClaims is the payload of the bearer token issued by startSession.
// The role is a snapshot for display only; authorization always re-checks the
// persisted lease state.
type SessionClaims struct {
	ActorID int64 `json:"actorID"`
	Role    Role  `json:"role"`
	jwt.RegisteredClaims
}
