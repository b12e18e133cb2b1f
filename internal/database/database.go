package database

import (
	client "mediadex/internal/database/client"
	fluentdRepo "mediadex/internal/database/fluentd/repository"
	mongoRepo "mediadex/internal/database/mongodb/repository"
	redisRepo "mediadex/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet wires every storage client and repository.
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
