package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentItem is one catalog entry in a tenant's private collection. The text
// index over title and seasonTag is the full-text view; it is maintained by
// the engine in the same write, so a successful insert is immediately
// searchable.
type ContentItem struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	ContentRef string             `json:"contentRef" bson:"contentRef"`
	Title      string             `json:"title" bson:"title"`
	SeasonTag  string             `json:"seasonTag" bson:"seasonTag"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var ContentItemIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "contentRef", Value: 1}},
		Options: options.Index().SetName("uniq_contentRef").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "seasonTag", Value: "text"}},
		Options: options.Index().SetName("txt_title_seasonTag"),
	},
}
