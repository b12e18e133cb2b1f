package repository

import (
	"context"
	"encoding/json"
	"time"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/client"
	"mediadex/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository ships command/outcome/search audit records to Fluentd.
type LogRepository struct {
	fluentdClient *client.FluentdClient
	version       string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version}
}

func (repository *LogRepository) LogCommand(ctx context.Context, rec model.CommandLog) error {
	if rec.LoggedAt == "" {
		rec.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if rec.Version == "" {
		rec.Version = repository.version
	}
	return repository.post(ctx, string(core.FluentdCommand), rec)
}

func (repository *LogRepository) LogOutcome(ctx context.Context, rec model.OutcomeLog) error {
	if rec.LoggedAt == "" {
		rec.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if rec.Version == "" {
		rec.Version = repository.version
	}
	return repository.post(ctx, string(core.FluentdOutcome), rec)
}

func (repository *LogRepository) LogSearch(ctx context.Context, rec model.SearchLog) error {
	if rec.LoggedAt == "" {
		rec.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if rec.Version == "" {
		rec.Version = repository.version
	}
	return repository.post(ctx, string(core.FluentdSearch), rec)
}

func (repository *LogRepository) post(ctx context.Context, tag string, rec any) error {
	b, _ := json.Marshal(rec)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	return repository.fluentdClient.Post(ctx, tag, fluentdMessage)
}
