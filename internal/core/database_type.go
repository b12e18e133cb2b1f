package core

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

const (
	// central store: tenants, pending requests, read grants
	MongoDBCentral MongoDatabaseName = "mediadex"
	// one collection per tenant lives here, nothing is shared across tenants
	MongoDBCatalog MongoDatabaseName = "mediadex_catalog"
)

const (
	MongoCollectionTenants        MongoCollection = "tenants"
	MongoCollectionTenantRequests MongoCollection = "tenant_requests"
	MongoCollectionAccessGrants   MongoCollection = "access_grants"
)

// CatalogCollectionName names a tenant's private catalog collection.
func CatalogCollectionName(tenantID int64) MongoCollection {
	return MongoCollection(fmt.Sprintf("catalog_%d", tenantID))
}

// ─── Redis keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyGateVerdict    RedisKey = "gate"    // cached membership verdicts
	RedisKeyTenancyLimiter RedisKey = "reqrate" // tenancy request rate windows
)

// ─── Fluentd tags ──────────────────────────────────────────────────────────────

const (
	FluentdCommand FluentdSubTag = "command_log"
	FluentdOutcome FluentdSubTag = "outcome_log"
	FluentdSearch  FluentdSubTag = "search_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
