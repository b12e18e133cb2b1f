package service

import (
	"context"
	"testing"
	"time"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/model"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakeTenantStore keeps tenants in a map. GetByID hands out copies, so the
// only way state changes is through the write methods, same as Mongo.
type fakeTenantStore struct {
	tenants     map[int64]*model.Tenant
	deactivated []int64
}

func (f *fakeTenantStore) GetByID(ctx context.Context, actorID int64) (*model.Tenant, error) {
	tenant, ok := f.tenants[actorID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *tenant
	return &copied, nil
}

func (f *fakeTenantStore) Upsert(ctx context.Context, actorID int64, superuser bool, grantedAt, expiresAt time.Time) error {
	tenant, ok := f.tenants[actorID]
	if !ok {
		tenant = &model.Tenant{ID: actorID}
		f.tenants[actorID] = tenant
	}
	tenant.Superuser = superuser
	tenant.Active = true
	tenant.GrantedAt = grantedAt
	tenant.ExpiresAt = expiresAt
	return nil
}

func (f *fakeTenantStore) List(ctx context.Context, filter bson.M) ([]*model.Tenant, error) {
	var out []*model.Tenant
	for _, tenant := range f.tenants {
		copied := *tenant
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTenantStore) Deactivate(ctx context.Context, actorID int64) error {
	tenant, ok := f.tenants[actorID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	f.deactivated = append(f.deactivated, actorID)
	tenant.Active = false
	return nil
}

func (f *fakeTenantStore) SetChannelRef(ctx context.Context, actorID int64, channelRef string) error {
	tenant, ok := f.tenants[actorID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	tenant.ChannelRef = channelRef
	tenant.Active = true
	return nil
}

func (f *fakeTenantStore) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	for id, tenant := range f.tenants {
		if tenant.Active && !tenant.Superuser && now.After(tenant.ExpiresAt) {
			tenant.Active = false
			f.deactivated = append(f.deactivated, id)
			count++
		}
	}
	return count, nil
}

func newLeaseService(t *testing.T, store *fakeTenantStore) *LeaseService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &LeaseService{
		trace:      trace,
		logger:     zap.NewNop(),
		conf:       &config.Configuration{},
		tenantRepo: store,
	}
}

func TestCheckLeaseLapsedTenantIsDeactivated(t *testing.T) {
	store := &fakeTenantStore{tenants: map[int64]*model.Tenant{
		1: {ID: 1, Active: true, ExpiresAt: time.Now().UTC().Add(-time.Hour)},
	}}
	s := newLeaseService(t, store)

	// the first check sees the lapse, reports it, and writes the flag down
	status, tenant, err := s.CheckLease(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseExpired, status)
	require.NotNil(t, tenant)
	assert.False(t, tenant.Active)
	assert.Equal(t, []int64{1}, store.deactivated)
	assert.False(t, store.tenants[1].Active)

	// from then on the tenant just reads as inactive, no further writes
	status, _, err = s.CheckLease(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseInactive, status)
	assert.Equal(t, []int64{1}, store.deactivated)
}

func TestCheckLeaseUnknownActor(t *testing.T) {
	s := newLeaseService(t, &fakeTenantStore{tenants: map[int64]*model.Tenant{}})

	status, tenant, err := s.CheckLease(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseNotATenant, status)
	assert.Nil(t, tenant)
}

func TestCheckLeaseSuperuserOutlivesWindow(t *testing.T) {
	store := &fakeTenantStore{tenants: map[int64]*model.Tenant{
		9: {ID: 9, Active: true, Superuser: true, ExpiresAt: time.Now().UTC().Add(-365 * 24 * time.Hour)},
	}}
	s := newLeaseService(t, store)

	status, _, err := s.CheckLease(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseActive, status)
	assert.Empty(t, store.deactivated)
}

func TestRevokeKeepsRecord(t *testing.T) {
	store := &fakeTenantStore{tenants: map[int64]*model.Tenant{
		5: {ID: 5, Active: true, ChannelRef: "ch-5", ExpiresAt: time.Now().UTC().Add(24 * time.Hour)},
	}}
	s := newLeaseService(t, store)

	require.NoError(t, s.Revoke(context.Background(), 5))

	// the record survives with its channel binding; only the flag flips
	tenant := store.tenants[5]
	require.NotNil(t, tenant)
	assert.False(t, tenant.Active)
	assert.Equal(t, "ch-5", tenant.ChannelRef)

	status, _, err := s.CheckLease(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseInactive, status)
}

func TestRevokeUnknownTenant(t *testing.T) {
	s := newLeaseService(t, &fakeTenantStore{tenants: map[int64]*model.Tenant{}})

	err := s.Revoke(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, cErr.NOT_FOUND, cErr.From(err).ErrorCode())
}

func TestRenewAfterRevokeReopensLease(t *testing.T) {
	store := &fakeTenantStore{tenants: map[int64]*model.Tenant{
		5: {ID: 5, Active: true, ChannelRef: "ch-5", ExpiresAt: time.Now().UTC().Add(24 * time.Hour)},
	}}
	s := newLeaseService(t, store)

	require.NoError(t, s.Revoke(context.Background(), 5))
	require.NoError(t, s.Renew(context.Background(), 5, 7))

	status, tenant, err := s.CheckLease(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, core.LeaseActive, status)
	require.NotNil(t, tenant)
	assert.Equal(t, "ch-5", tenant.ChannelRef)
	assert.True(t, tenant.ExpiresAt.After(time.Now().UTC().Add(6*24*time.Hour)))
}
