package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AccessGrant records that a user redeemed a tenant's invitation. Grants are
// append-only; duplicates collapse on the unique pair index. Insertion order
// (the _id) is the order search fans out in.
type AccessGrant struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserID    int64              `json:"userID" bson:"userID"`
	TenantID  int64              `json:"tenantID" bson:"tenantID"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var AccessGrantIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "userID", Value: 1}, {Key: "tenantID", Value: 1}},
		Options: options.Index().SetName("uniq_userID_tenantID").SetUnique(true),
	},
}
