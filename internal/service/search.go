package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"mediadex/config"
	"mediadex/internal/core"
	fluentdModel "mediadex/internal/database/fluentd/model"
	fluentdRepo "mediadex/internal/database/fluentd/repository"
	"mediadex/internal/database/mongodb/model"
	"mediadex/internal/database/mongodb/repository"
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/service/membership"
	"mediadex/internal/telemetry"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultGateTimeout   = 2 * time.Second
	searchFanOutParallel = 8
)

// Small seams so the dispatcher can be exercised without Mongo or Redis.
type grantLister interface {
	ListTenantIDs(ctx context.Context, userID int64) ([]int64, error)
}
type leaseChecker interface {
	CheckLease(ctx context.Context, actorID int64) (core.LeaseStatus, *model.Tenant, error)
}
type catalogSearcher interface {
	Search(ctx context.Context, tenantID int64, query string) ([]*model.ContentItem, bool, error)
}
type searchAuditor interface {
	LogSearch(ctx context.Context, rec fluentdModel.SearchLog) error
}

// SearchService fans a query out across every tenant the user holds a grant
// for. Tenants are consulted concurrently but results keep grant-insertion
// order, and no single tenant's failure reaches the caller.
type SearchService struct {
	trace    *telemetry.Trace
	logger   *zap.Logger
	conf     *config.Configuration
	metric   *telemetry.Metric
	grants   grantLister
	leases   leaseChecker
	gate     membership.Gate
	catalogs catalogSearcher
	audit    searchAuditor
}

func NewSearchService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	conf *config.Configuration,
	metric *telemetry.Metric,
	grantRepo *repository.GrantRepository,
	leaseService *LeaseService,
	gate membership.Gate,
	catalogRepo *repository.CatalogRepository,
	logRepo *fluentdRepo.LogRepository,
) *SearchService {
	return &SearchService{
		trace:    trace,
		logger:   logger,
		conf:     conf,
		metric:   metric,
		grants:   grantRepo,
		leases:   leaseService,
		gate:     gate,
		catalogs: catalogRepo,
		audit:    logRepo,
	}
}

// NormalizeQuery lowercases, strips everything but letters, digits and
// spaces, and collapses whitespace. Length checks run on the normalized form,
// so punctuation cannot pad a query past the minimum. Normalizing twice
// changes nothing.
func NormalizeQuery(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

type tenantSlot struct {
	results  []*dto.SearchResultDto
	skipped  string // empty when the tenant was searched
	degraded bool
}

// Search runs the full dispatch: normalize, enumerate grants, fan out, merge.
func (s *SearchService) Search(ctx context.Context, userID int64, rawQuery string) (_ *dto.SearchResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	query := NormalizeQuery(rawQuery)
	if len([]rune(query)) < s.conf.Catalog.MinQueryLengthOrDefault() {
		returnedError = cErr.QueryTooShort("query too short")
		return nil, returnedError
	}

	tenantIDs, err := s.grants.ListTenantIDs(ctx, userID)
	if err != nil {
		returnedError = cErr.DatabaseError("database Search error")
		return nil, returnedError
	}
	if len(tenantIDs) == 0 {
		returnedError = cErr.NoAccess("no access grants")
		return nil, returnedError
	}

	slots := make([]tenantSlot, len(tenantIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchFanOutParallel)
	for i, tenantID := range tenantIDs {
		i, tenantID := i, tenantID
		group.Go(func() error {
			slots[i] = s.searchTenant(groupCtx, tenantID, userID, query)
			return nil
		})
	}
	_ = group.Wait()

	response := &dto.SearchResponseDto{Query: query, Results: []*dto.SearchResultDto{}}
	skippedGate := 0
	for _, slot := range slots {
		if slot.skipped != "" {
			skippedGate++
			if s.metric.GateSkipTotal != nil {
				s.metric.GateSkipTotal.WithLabelValues(slot.skipped).Inc()
			}
			continue
		}
		response.TenantsHit++
		response.Degraded = response.Degraded || slot.degraded
		response.Results = append(response.Results, slot.results...)
	}
	if s.metric.SearchTenantsTotal != nil {
		s.metric.SearchTenantsTotal.WithLabelValues("hit").Add(float64(response.TenantsHit))
		s.metric.SearchTenantsTotal.WithLabelValues("skipped").Add(float64(skippedGate))
	}

	searchMeta := core.TraceSearchMeta{
		UserID:      userID,
		Query:       query,
		GrantCount:  len(tenantIDs),
		TenantsHit:  response.TenantsHit,
		SkippedGate: skippedGate,
		ResultCount: len(response.Results),
		Degraded:    response.Degraded,
	}
	s.trace.ApplyTraceAttributes(span, searchMeta)
	if s.audit != nil {
		if auditErr := s.audit.LogSearch(ctx, fluentdModel.SearchLog{
			UserID:      userID,
			Query:       query,
			GrantCount:  len(tenantIDs),
			TenantsHit:  response.TenantsHit,
			SkippedGate: skippedGate,
			ResultCount: len(response.Results),
			Degraded:    response.Degraded,
		}); auditErr != nil {
			s.logger.Warn("search audit shipping failed", zap.Error(auditErr))
		}
	}

	if len(response.Results) == 0 {
		returnedError = cErr.NoResults("nothing matched")
		return nil, returnedError
	}
	return response, nil
}

// searchTenant decides whether one tenant participates and, if so, queries
// its store. Every failure is a skip, never an error, so one bad tenant
// cannot poison the whole dispatch.
func (s *SearchService) searchTenant(ctx context.Context, tenantID, userID int64, query string) tenantSlot {
	status, tenant, err := s.leases.CheckLease(ctx, tenantID)
	if err != nil {
		s.logger.Warn("lease check failed during search",
			zap.Int64("tenantID", tenantID), zap.Error(err))
		return tenantSlot{skipped: "lease_error"}
	}
	if status != core.LeaseActive {
		return tenantSlot{skipped: "lease_" + string(status)}
	}
	// the gate applies only when the tenant linked a channel; without one
	// the grant alone is the whole authorization
	if tenant.ChannelRef != "" {
		gateTimeout := defaultGateTimeout
		if s.conf.Catalog.GateTimeoutMs > 0 {
			gateTimeout = time.Duration(s.conf.Catalog.GateTimeoutMs) * time.Millisecond
		}
		gateCtx, cancel := context.WithTimeout(ctx, gateTimeout)
		member, gateErr := s.gate.IsMember(gateCtx, tenant.ChannelRef, userID)
		cancel()
		if gateErr != nil {
			s.logger.Warn("membership gate failed, skipping tenant",
				zap.Int64("tenantID", tenantID), zap.Error(gateErr))
			return tenantSlot{skipped: "gate_error"}
		}
		if !member {
			return tenantSlot{skipped: "not_member"}
		}
	}

	items, degraded, searchErr := s.catalogs.Search(ctx, tenantID, query)
	if searchErr != nil {
		s.logger.Warn("tenant store search failed, skipping tenant",
			zap.Int64("tenantID", tenantID), zap.Error(searchErr))
		return tenantSlot{skipped: "store_error"}
	}

	results := make([]*dto.SearchResultDto, len(items))
	for i, item := range items {
		results[i] = &dto.SearchResultDto{
			TenantID:   tenantID,
			ContentRef: item.ContentRef,
			Title:      item.Title,
			SeasonTag:  item.SeasonTag,
			Caption:    FormatCaption(item.Title, item.SeasonTag),
		}
	}
	return tenantSlot{results: results, degraded: degraded}
}
