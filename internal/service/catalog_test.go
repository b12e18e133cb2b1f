package service

import (
	"context"
	"errors"
	"testing"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/model"
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentStore struct {
	outcome   core.InsertOutcome
	insertErr error
	inserted  []*model.ContentItem
}

func (f *fakeContentStore) Insert(ctx context.Context, tenantID int64, item *model.ContentItem) (core.InsertOutcome, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = append(f.inserted, item)
	return f.outcome, nil
}

func (f *fakeContentStore) Count(ctx context.Context, tenantID int64) (int64, error) {
	return int64(len(f.inserted)), nil
}

func newCatalogService(t *testing.T, store contentStore) *CatalogService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &CatalogService{
		trace:       trace,
		conf:        &config.Configuration{},
		catalogRepo: store,
	}
}

func TestParseCaption(t *testing.T) {
	tests := []struct {
		name      string
		caption   string
		wantTitle string
		wantTag   string
		wantErr   bool
	}{
		{"title and tag", "Breaking Code|S01", "Breaking Code", "S01", false},
		{"title only", "Breaking Code", "Breaking Code", "", false},
		{"whitespace trimmed", "  Breaking Code  |  S01  ", "Breaking Code", "S01", false},
		{"only first pipe splits", "A|B|C", "A", "B|C", false},
		{"empty tag after pipe", "Breaking Code|", "Breaking Code", "", false},
		{"empty caption", "", "", "", true},
		{"pipe only", "|S01", "", "", true},
		{"whitespace title", "   |S01", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, tag, err := ParseCaption(tt.caption)
			if tt.wantErr {
				require.Error(t, err)
				appErr := cErr.From(err)
				assert.Equal(t, cErr.INVALID_CAPTION, appErr.ErrorCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantTag, tag)
		})
	}
}

func TestFormatCaption(t *testing.T) {
	assert.Equal(t, "Breaking Code (S01)", FormatCaption("Breaking Code", "S01"))
	assert.Equal(t, "Breaking Code", FormatCaption("Breaking Code", ""))
}

func TestSubmitStoresItem(t *testing.T) {
	store := &fakeContentStore{outcome: core.OutcomeInserted}
	s := newCatalogService(t, store)

	resp, err := s.Submit(context.Background(), 1, &dto.SubmitContentDto{
		ContentRef: "breaking.code.s01e01.mkv",
		Caption:    "Breaking Code|S01",
	})
	require.NoError(t, err)
	assert.Equal(t, string(core.OutcomeInserted), resp.Outcome)
	assert.Equal(t, "Breaking Code (S01)", resp.FormattedCaption)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Breaking Code", store.inserted[0].Title)
}

func TestSubmitStoreFailureSurfaces(t *testing.T) {
	// a store that cannot guarantee its unique index must refuse the write,
	// and that refusal reaches the caller instead of landing un-indexed
	store := &fakeContentStore{insertErr: errors.New("index creation failed")}
	s := newCatalogService(t, store)

	_, err := s.Submit(context.Background(), 1, &dto.SubmitContentDto{
		ContentRef: "breaking.code.s01e01.mkv",
		Caption:    "Breaking Code|S01",
	})
	require.Error(t, err)
	assert.Equal(t, cErr.DATABASE_ERROR, cErr.From(err).ErrorCode())
	assert.Empty(t, store.inserted)
}
