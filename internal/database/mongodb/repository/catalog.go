package repository

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/database/mongodb/model"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CatalogRepository owns the per-tenant content collections. Each tenant's
// collection is created lazily on first touch; until then the tenant has no
// catalog footprint at all.
type CatalogRepository struct {
	database    *mongo.Database
	logger      *zap.Logger
	initialized sync.Map // tenantID -> struct{}, collections already index-ensured
}

func NewCatalogRepository(logger *zap.Logger, mongoClient *client.MongoClient) *CatalogRepository {
	return &CatalogRepository{
		database: mongoClient.Client().Database(string(core.MongoDBCatalog)),
		logger:   logger,
	}
}

// collectionFor resolves a tenant's collection, ensuring its indexes once per
// process. CreateMany is create-if-not-exists server-side, so concurrent
// first touches are safe.
func (repository *CatalogRepository) collectionFor(contextValue context.Context, tenantID int64) (*mongo.Collection, error) {
	collection := repository.database.Collection(string(core.CatalogCollectionName(tenantID)))
	if _, done := repository.initialized.Load(tenantID); !done {
		if _, indexError := collection.Indexes().CreateMany(contextValue, model.ContentItemIndexes); indexError != nil {
			repository.logger.Warn("catalog index creation failed",
				zap.Int64("tenantID", tenantID), zap.Error(indexError))
			return collection, indexError
		}
		repository.initialized.Store(tenantID, struct{}{})
	}
	return collection, nil
}

// Insert stores a content item. A duplicate contentRef is reported as an
// outcome, not an error. Writes refuse to proceed until the unique contentRef
// index exists; otherwise a duplicate could land in the window before it.
func (repository *CatalogRepository) Insert(contextValue context.Context, tenantID int64, item *model.ContentItem) (_ core.InsertOutcome, returnedError error) {
	collection, indexError := repository.collectionFor(contextValue, tenantID)
	if indexError != nil {
		return "", indexError
	}

	nowUTC := time.Now().UTC()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = nowUTC
	item.UpdatedAt = nowUTC

	_, insertError := collection.InsertOne(contextValue, item)
	if insertError != nil {
		if mongo.IsDuplicateKeyError(insertError) {
			return core.OutcomeAlreadyExists, nil
		}
		return "", insertError
	}
	return core.OutcomeInserted, nil
}

func (repository *CatalogRepository) Count(contextValue context.Context, tenantID int64) (_ int64, returnedError error) {
	// reads work without the indexes
	collection, _ := repository.collectionFor(contextValue, tenantID)
	return collection.CountDocuments(contextValue, bson.M{})
}

// Search runs the server-side match: a case-insensitive escaped-substring
// query over title and seasonTag, augmented with $text relevance hits. When
// the server-side path fails it degrades to a full scan ranked in memory, so
// a broken index never makes search unavailable. degraded reports which path
// answered.
func (repository *CatalogRepository) Search(contextValue context.Context, tenantID int64, query string) (_ []*model.ContentItem, degraded bool, returnedError error) {
	// a missing index only costs relevance here, the scan fallback still answers
	collection, _ := repository.collectionFor(contextValue, tenantID)

	substringPattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	substringFilter := bson.M{"$or": []bson.M{
		{"title": substringPattern},
		{"seasonTag": substringPattern},
	}}
	items, findError := repository.find(contextValue, collection, substringFilter, nil)
	if findError != nil {
		fallback, scanError := repository.scanAndRank(contextValue, collection, tenantID, query)
		if scanError != nil {
			return nil, false, scanError
		}
		return fallback, true, nil
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item.ContentRef] = struct{}{}
	}

	// $text adds stemmed whole-word hits the substring match misses; its
	// failure (no text index yet) is not a failure of search
	textItems, textError := repository.find(contextValue, collection,
		bson.M{"$text": bson.M{"$search": query}},
		options.Find().
			SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
			SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}),
	)
	if textError == nil {
		for _, item := range textItems {
			if _, dup := seen[item.ContentRef]; dup {
				continue
			}
			seen[item.ContentRef] = struct{}{}
			items = append(items, item)
		}
	}

	return items, false, nil
}

func (repository *CatalogRepository) find(contextValue context.Context, collection *mongo.Collection, filter bson.M, findOptions *options.FindOptions) (_ []*model.ContentItem, returnedError error) {
	var cursor *mongo.Cursor
	var findError error
	if findOptions != nil {
		cursor, findError = collection.Find(contextValue, filter, findOptions)
	} else {
		cursor, findError = collection.Find(contextValue, filter)
	}
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.ContentItem
	for cursor.Next(contextValue) {
		var item model.ContentItem
		if decodeError := cursor.Decode(&item); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &item)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// scanAndRank is the degraded path: pull everything, keep fold-insensitive
// substring matches, order best fuzzy rank first.
func (repository *CatalogRepository) scanAndRank(contextValue context.Context, collection *mongo.Collection, tenantID int64, query string) (_ []*model.ContentItem, returnedError error) {
	repository.logger.Warn("catalog search degraded to full scan", zap.Int64("tenantID", tenantID))

	all, scanError := repository.find(contextValue, collection, bson.M{}, nil)
	if scanError != nil {
		return nil, scanError
	}

	loweredQuery := strings.ToLower(query)
	type ranked struct {
		item     *model.ContentItem
		distance int
	}
	var matches []ranked
	for _, item := range all {
		haystack := strings.ToLower(item.Title + " " + item.SeasonTag)
		if !strings.Contains(haystack, loweredQuery) {
			continue
		}
		distance := fuzzy.RankMatchNormalizedFold(query, item.Title)
		if distance < 0 {
			distance = len(item.Title)
		}
		matches = append(matches, ranked{item: item, distance: distance})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	results := make([]*model.ContentItem, len(matches))
	for i, match := range matches {
		results[i] = match.item
	}
	return results, nil
}
