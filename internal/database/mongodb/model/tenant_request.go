package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TenantRequest is one actor's pending application for tenancy. At most one
// per actor; re-requesting is a no-op while a request is pending.
type TenantRequest struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	ActorID   int64              `json:"actorID" bson:"actorID"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var TenantRequestIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "actorID", Value: 1}},
		Options: options.Index().SetName("uniq_actorID").SetUnique(true),
	},
}
