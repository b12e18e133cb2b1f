package dto

import "time"

type RequestTenancyResponseDto struct {
	// Pending is true whether this call filed the request or an earlier one did
	Pending bool `json:"pending"`
	Created bool `json:"created"`
}

type TenantRequestResponseDto struct {
	ActorID     int64     `json:"actorID"`
	RequestedAt time.Time `json:"requestedAt"`
}
