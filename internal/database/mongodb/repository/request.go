package repository

import (
	"context"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestRepository struct {
	collection *mongo.Collection
}

func NewRequestRepository(mongoClient *client.MongoClient) *RequestRepository {
	repository := &RequestRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBCentral)).Collection(string(core.MongoCollectionTenantRequests)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *RequestRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.TenantRequestIndexes)
	return nil
}

// InsertIfAbsent files a tenancy request. A pending duplicate collapses on
// the unique index and reports created=false.
func (repository *RequestRepository) InsertIfAbsent(contextValue context.Context, actorID int64) (created bool, returnedError error) {
	nowUTC := time.Now().UTC()
	request := &model.TenantRequest{
		ID:        primitive.NewObjectID(),
		ActorID:   actorID,
		CreatedAt: nowUTC,
		UpdatedAt: nowUTC,
	}
	_, insertError := repository.collection.InsertOne(contextValue, request)
	if insertError != nil {
		if mongo.IsDuplicateKeyError(insertError) {
			return false, nil
		}
		return false, insertError
	}
	return true, nil
}

func (repository *RequestRepository) ExistsByActor(contextValue context.Context, actorID int64) (_ bool, returnedError error) {
	count, countError := repository.collection.CountDocuments(contextValue, bson.M{"actorID": actorID})
	if countError != nil {
		return false, countError
	}
	return count > 0, nil
}

func (repository *RequestRepository) List(contextValue context.Context) (_ []*model.TenantRequest, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, bson.M{})
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.TenantRequest
	for cursor.Next(contextValue) {
		var request model.TenantRequest
		if decodeError := cursor.Decode(&request); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &request)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *RequestRepository) DeleteByActor(contextValue context.Context, actorID int64) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"actorID": actorID})
	return returnedError
}
