package repository

import (
	"context"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TenantRepository struct {
	collection *mongo.Collection
}

func NewTenantRepository(mongoClient *client.MongoClient) *TenantRepository {
	repository := &TenantRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBCentral)).Collection(string(core.MongoCollectionTenants)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *TenantRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.TenantIndexes)
	return nil
}

// Upsert grants or renews a lease. Only the lease fields are $set so a
// channelRef configured before a re-approval survives it.
func (repository *TenantRepository) Upsert(contextValue context.Context, actorID int64, superuser bool, grantedAt, expiresAt time.Time) (returnedError error) {
	update := withUpdatedAt(bson.M{
		"$set": bson.M{
			"superuser": superuser,
			"active":    true,
			"grantedAt": grantedAt,
			"expiresAt": expiresAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": time.Now().UTC(),
		},
	})
	_, returnedError = repository.collection.UpdateByID(contextValue, actorID, update, options.Update().SetUpsert(true))
	return returnedError
}

func (repository *TenantRepository) GetByID(contextValue context.Context, actorID int64) (_ *model.Tenant, returnedError error) {
	var tenant model.Tenant
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": actorID}).Decode(&tenant); returnedError != nil {
		return nil, returnedError
	}
	return &tenant, nil
}

func (repository *TenantRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Tenant, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Tenant
	for cursor.Next(contextValue) {
		var tenant model.Tenant
		if decodeError := cursor.Decode(&tenant); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &tenant)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// Deactivate flips active to false. Used both by the lazy expiry check and
// the sweep; the write is the same either way.
func (repository *TenantRepository) Deactivate(contextValue context.Context, actorID int64) (returnedError error) {
	update := withUpdatedAt(bson.M{"$set": bson.M{"active": false}})
	result, updateError := repository.collection.UpdateByID(contextValue, actorID, update)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repository *TenantRepository) SetChannelRef(contextValue context.Context, actorID int64, channelRef string) (returnedError error) {
	update := withUpdatedAt(bson.M{"$set": bson.M{"channelRef": channelRef, "active": true}})
	result, updateError := repository.collection.UpdateByID(contextValue, actorID, update)
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeactivateExpired flips every lapsed non-superuser lease in one write.
// Returns how many documents changed.
func (repository *TenantRepository) DeactivateExpired(contextValue context.Context, now time.Time) (returnedCount int64, returnedError error) {
	filter := bson.M{
		"superuser": false,
		"active":    true,
		"expiresAt": bson.M{"$lt": now},
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"active": false}})
	result, updateError := repository.collection.UpdateMany(contextValue, filter, update)
	if updateError != nil {
		return 0, updateError
	}
	return result.ModifiedCount, nil
}
