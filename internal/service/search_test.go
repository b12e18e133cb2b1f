package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mediadex/config"
	"mediadex/internal/core"
	fluentdModel "mediadex/internal/database/fluentd/model"
	"mediadex/internal/database/mongodb/model"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGrants struct {
	ids []int64
	err error
}

func (f *fakeGrants) ListTenantIDs(ctx context.Context, userID int64) ([]int64, error) {
	return f.ids, f.err
}

type fakeLease struct {
	status core.LeaseStatus
	tenant *model.Tenant
	err    error
}

type fakeLeases map[int64]fakeLease

func (f fakeLeases) CheckLease(ctx context.Context, actorID int64) (core.LeaseStatus, *model.Tenant, error) {
	l, ok := f[actorID]
	if !ok {
		return core.LeaseNotATenant, nil, nil
	}
	return l.status, l.tenant, l.err
}

type fakeGate struct {
	member map[string]bool
	err    map[string]error
}

func (f *fakeGate) IsMember(ctx context.Context, channelRef string, userID int64) (bool, error) {
	if err := f.err[channelRef]; err != nil {
		return false, err
	}
	return f.member[channelRef], nil
}

type fakeCatalogs struct {
	items    map[int64][]*model.ContentItem
	degraded map[int64]bool
	err      map[int64]error
}

func (f *fakeCatalogs) Search(ctx context.Context, tenantID int64, query string) ([]*model.ContentItem, bool, error) {
	if err := f.err[tenantID]; err != nil {
		return nil, false, err
	}
	return f.items[tenantID], f.degraded[tenantID], nil
}

type recordingAuditor struct {
	last *fluentdModel.SearchLog
}

func (r *recordingAuditor) LogSearch(ctx context.Context, rec fluentdModel.SearchLog) error {
	r.last = &rec
	return nil
}

func activeTenant(id int64, channelRef string) fakeLease {
	return fakeLease{
		status: core.LeaseActive,
		tenant: &model.Tenant{ID: id, Active: true, ChannelRef: channelRef},
	}
}

func newSearchService(t *testing.T, grants grantLister, leases leaseChecker, gate *fakeGate, catalogs *fakeCatalogs, audit searchAuditor) *SearchService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &SearchService{
		trace:    trace,
		logger:   zap.NewNop(),
		conf:     &config.Configuration{},
		metric:   telemetry.NewMetric(nil),
		grants:   grants,
		leases:   leases,
		gate:     gate,
		catalogs: catalogs,
		audit:    audit,
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  breaking   code  ", "breaking code"},
		{"breaking code", "breaking code"},
		{"\tbreaking\n code\t", "breaking code"},
		{"Inception", "inception"},
		{"A!B-C", "abc"},
		{"Breaking.Code (2024)", "breakingcode 2024"},
		{"a!!", "a"},
		{"!!!", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		got := NormalizeQuery(tt.raw)
		assert.Equal(t, tt.want, got)
		// normalizing twice changes nothing
		assert.Equal(t, got, NormalizeQuery(got))
	}
}

func TestSearchRejectsShortQuery(t *testing.T) {
	s := newSearchService(t, &fakeGrants{}, fakeLeases{}, &fakeGate{}, &fakeCatalogs{}, nil)

	_, err := s.Search(context.Background(), 1, "  ab ")
	require.Error(t, err)
	assert.Equal(t, cErr.QUERY_TOO_SHORT, cErr.From(err).ErrorCode())
}

func TestSearchWithoutGrants(t *testing.T) {
	s := newSearchService(t, &fakeGrants{ids: nil}, fakeLeases{}, &fakeGate{}, &fakeCatalogs{}, nil)

	_, err := s.Search(context.Background(), 1, "breaking code")
	require.Error(t, err)
	assert.Equal(t, cErr.NO_ACCESS, cErr.From(err).ErrorCode())
}

func TestSearchGrantListFailure(t *testing.T) {
	s := newSearchService(t, &fakeGrants{err: errors.New("mongo down")}, fakeLeases{}, &fakeGate{}, &fakeCatalogs{}, nil)

	_, err := s.Search(context.Background(), 1, "breaking code")
	require.Error(t, err)
	assert.Equal(t, cErr.DATABASE_ERROR, cErr.From(err).ErrorCode())
}

func TestSearchSkipsBrokenTenantsAndKeepsGrantOrder(t *testing.T) {
	// grants in insertion order: 1 hits, 2 expired, 3 gate error, 4 not a
	// member, 5 store error, 6 hits (degraded)
	grants := &fakeGrants{ids: []int64{1, 2, 3, 4, 5, 6}}
	leases := fakeLeases{
		1: activeTenant(1, "ch-1"),
		2: {status: core.LeaseExpired, tenant: &model.Tenant{ID: 2}},
		3: activeTenant(3, "ch-3"),
		4: activeTenant(4, "ch-4"),
		5: activeTenant(5, "ch-5"),
		6: activeTenant(6, "ch-6"),
	}
	gate := &fakeGate{
		member: map[string]bool{"ch-1": true, "ch-5": true, "ch-6": true},
		err:    map[string]error{"ch-3": errors.New("gate timeout")},
	}
	catalogs := &fakeCatalogs{
		items: map[int64][]*model.ContentItem{
			1: {
				{ContentRef: "a.mkv", Title: "Alpha", SeasonTag: "S01"},
				{ContentRef: "b.mkv", Title: "Beta"},
			},
			6: {
				{ContentRef: "c.mkv", Title: "Gamma"},
			},
		},
		degraded: map[int64]bool{6: true},
		err:      map[int64]error{5: errors.New("collection scan failed")},
	}
	audit := &recordingAuditor{}
	s := newSearchService(t, grants, leases, gate, catalogs, audit)

	resp, err := s.Search(context.Background(), 99, "alpha")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TenantsHit)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Results, 3)
	// merged in grant-insertion order regardless of fan-out scheduling
	assert.Equal(t, int64(1), resp.Results[0].TenantID)
	assert.Equal(t, "a.mkv", resp.Results[0].ContentRef)
	assert.Equal(t, "Alpha (S01)", resp.Results[0].Caption)
	assert.Equal(t, int64(1), resp.Results[1].TenantID)
	assert.Equal(t, "Beta", resp.Results[1].Caption)
	assert.Equal(t, int64(6), resp.Results[2].TenantID)

	require.NotNil(t, audit.last)
	assert.Equal(t, int64(99), audit.last.UserID)
	assert.Equal(t, 6, audit.last.GrantCount)
	assert.Equal(t, 2, audit.last.TenantsHit)
	assert.Equal(t, 4, audit.last.SkippedGate)
	assert.Equal(t, 3, audit.last.ResultCount)
}

func TestSearchTenantWithoutChannelSkipsGate(t *testing.T) {
	// a granted, active tenant that never linked a channel is searched on the
	// strength of the grant alone; the gate must not be consulted
	grants := &fakeGrants{ids: []int64{7}}
	leases := fakeLeases{7: activeTenant(7, "")}
	gate := &fakeGate{err: map[string]error{"": errors.New("gate must not be called")}}
	catalogs := &fakeCatalogs{items: map[int64][]*model.ContentItem{
		7: {{ContentRef: "inception.mkv", Title: "Inception"}},
	}}
	s := newSearchService(t, grants, leases, gate, catalogs, nil)

	resp, err := s.Search(context.Background(), 7, "ince")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TenantsHit)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Inception", resp.Results[0].Title)
}

func TestSearchAllTenantsEmptyIsNoResults(t *testing.T) {
	grants := &fakeGrants{ids: []int64{1, 2}}
	leases := fakeLeases{
		1: activeTenant(1, "ch-1"),
		2: activeTenant(2, "ch-2"),
	}
	gate := &fakeGate{member: map[string]bool{"ch-1": true, "ch-2": true}}
	s := newSearchService(t, grants, leases, gate, &fakeCatalogs{}, nil)

	_, err := s.Search(context.Background(), 1, "breaking code")
	require.Error(t, err)
	assert.Equal(t, cErr.NO_RESULTS, cErr.From(err).ErrorCode())
}

func TestSearchManyGrantsKeepOrder(t *testing.T) {
	var ids []int64
	leases := fakeLeases{}
	gate := &fakeGate{member: map[string]bool{}}
	catalogs := &fakeCatalogs{items: map[int64][]*model.ContentItem{}}
	for i := int64(1); i <= 40; i++ {
		ids = append(ids, i)
		ch := fmt.Sprintf("ch-%d", i)
		leases[i] = activeTenant(i, ch)
		gate.member[ch] = true
		catalogs.items[i] = []*model.ContentItem{{ContentRef: fmt.Sprintf("%d.mkv", i), Title: fmt.Sprintf("Item %d", i)}}
	}
	s := newSearchService(t, &fakeGrants{ids: ids}, leases, gate, catalogs, nil)

	resp, err := s.Search(context.Background(), 1, "item")
	require.NoError(t, err)
	require.Len(t, resp.Results, 40)
	for i, result := range resp.Results {
		assert.Equal(t, int64(i+1), result.TenantID)
	}
}
