package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Tenant is a leased catalog owner. The actor id is the natural key.
type Tenant struct {
	ID         int64     `json:"id" bson:"_id"`
	Superuser  bool      `json:"superuser" bson:"superuser"`
	Active     bool      `json:"active" bson:"active"`
	GrantedAt  time.Time `json:"grantedAt" bson:"grantedAt"`
	ExpiresAt  time.Time `json:"expiresAt" bson:"expiresAt"`
	ChannelRef string    `json:"channelRef,omitempty" bson:"channelRef,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

var TenantIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "active", Value: 1}},
		Options: options.Index().SetName("idx_active"),
	},
	{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetName("idx_expiresAt"),
	},
}
