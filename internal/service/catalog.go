package service

import (
	"context"
	"fmt"
	"strings"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/model"
	"mediadex/internal/database/mongodb/repository"
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"
)

// contentStore is the write side of the per-tenant catalog; a seam so
// submission handling can be exercised without Mongo.
type contentStore interface {
	Insert(ctx context.Context, tenantID int64, item *model.ContentItem) (core.InsertOutcome, error)
	Count(ctx context.Context, tenantID int64) (int64, error)
}

// CatalogService validates submissions and fronts the per-tenant store.
type CatalogService struct {
	trace       *telemetry.Trace
	conf        *config.Configuration
	catalogRepo contentStore
}

func NewCatalogService(
	trace *telemetry.Trace,
	conf *config.Configuration,
	catalogRepo *repository.CatalogRepository,
) *CatalogService {
	return &CatalogService{trace: trace, conf: conf, catalogRepo: catalogRepo}
}

// ParseCaption splits "Title|SeasonTag" on the first pipe. The tag part is
// optional; an empty title is not a caption.
func ParseCaption(caption string) (title, seasonTag string, err error) {
	title, seasonTag, _ = strings.Cut(caption, "|")
	title = strings.TrimSpace(title)
	seasonTag = strings.TrimSpace(seasonTag)
	if title == "" {
		return "", "", cErr.InvalidCaption("caption needs a title before the pipe")
	}
	return title, seasonTag, nil
}

// FormatCaption renders the display caption stored items are announced with.
func FormatCaption(title, seasonTag string) string {
	if seasonTag == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, seasonTag)
}

// Submit validates and stores one content item. A duplicate contentRef is an
// in-band outcome.
func (s *CatalogService) Submit(ctx context.Context, tenantID int64, submitDto *dto.SubmitContentDto) (_ *dto.SubmitContentResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if !core.IsAllowedMediaName(submitDto.ContentRef) {
		returnedError = cErr.UnsupportedMedia("content reference has an unsupported suffix")
		return nil, returnedError
	}
	if maxLen := s.conf.Catalog.MaxCaptionLengthOrDefault(); len([]rune(submitDto.Caption)) > maxLen {
		returnedError = cErr.InvalidCaption(fmt.Sprintf("caption longer than %d characters", maxLen))
		return nil, returnedError
	}
	title, seasonTag, err := ParseCaption(submitDto.Caption)
	if err != nil {
		return nil, err
	}

	outcome, err := s.catalogRepo.Insert(ctx, tenantID, &model.ContentItem{
		ContentRef: submitDto.ContentRef,
		Title:      title,
		SeasonTag:  seasonTag,
	})
	if err != nil {
		returnedError = cErr.DatabaseError("database Submit error")
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceCatalogMeta{
		TenantID:   tenantID,
		ContentRef: submitDto.ContentRef,
		Outcome:    string(outcome),
	})
	return &dto.SubmitContentResponseDto{
		Outcome:          string(outcome),
		Title:            title,
		SeasonTag:        seasonTag,
		FormattedCaption: FormatCaption(title, seasonTag),
	}, nil
}

func (s *CatalogService) Size(ctx context.Context, tenantID int64) (_ *dto.CatalogSizeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	count, err := s.catalogRepo.Count(ctx, tenantID)
	if err != nil {
		returnedError = cErr.DatabaseError("database Size error")
		return nil, returnedError
	}
	return &dto.CatalogSizeResponseDto{Count: count}, nil
}
