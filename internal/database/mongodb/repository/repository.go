package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

var ProviderSet = wire.NewSet(
	NewTenantRepository,
	NewRequestRepository,
	NewGrantRepository,
	NewCatalogRepository)

// withUpdatedAt stamps updatedAt server-side on every mutation.
func withUpdatedAt(update bson.M) bson.M {
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
