package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/model"
	"mediadex/internal/database/mongodb/repository"
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/service/notify"
	"mediadex/internal/telemetry"
	"mediadex/utils/token"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// tenantStore is the slice of TenantRepository the lease state machine
// needs; a seam so the lazy-expiry write can be exercised without Mongo.
type tenantStore interface {
	GetByID(ctx context.Context, actorID int64) (*model.Tenant, error)
	Upsert(ctx context.Context, actorID int64, superuser bool, grantedAt, expiresAt time.Time) error
	List(ctx context.Context, filter bson.M) ([]*model.Tenant, error)
	Deactivate(ctx context.Context, actorID int64) error
	SetChannelRef(ctx context.Context, actorID int64, channelRef string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// LeaseService owns the tenancy state machine: requests, approval, the lease
// window, and read-time expiry.
type LeaseService struct {
	trace       *telemetry.Trace
	logger      *zap.Logger
	conf        *config.Configuration
	tenantRepo  tenantStore
	requestRepo *repository.RequestRepository
	notifier    notify.Notifier
}

func NewLeaseService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	conf *config.Configuration,
	tenantRepo *repository.TenantRepository,
	requestRepo *repository.RequestRepository,
	notifier notify.Notifier,
) *LeaseService {
	return &LeaseService{
		trace:       trace,
		logger:      logger,
		conf:        conf,
		tenantRepo:  tenantRepo,
		requestRepo: requestRepo,
		notifier:    notifier,
	}
}

// CheckLease classifies an actor's lease right now. An expired lease is
// deactivated on the spot, so the stored active flag converges on first
// touch even without the sweep.
func (s *LeaseService) CheckLease(ctx context.Context, actorID int64) (_ core.LeaseStatus, _ *model.Tenant, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	tenant, err := s.tenantRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.LeaseNotATenant, nil, nil
		}
		returnedError = cErr.DatabaseError("database CheckLease error")
		return "", nil, returnedError
	}

	status := core.LeaseStatusOf(tenant.Active, tenant.Superuser, tenant.ExpiresAt, time.Now().UTC())
	if status == core.LeaseExpired && tenant.Active {
		if deactivateErr := s.tenantRepo.Deactivate(ctx, actorID); deactivateErr != nil {
			s.logger.Warn("lazy lease deactivation failed",
				zap.Int64("actorID", actorID), zap.Error(deactivateErr))
		}
		tenant.Active = false
	}

	s.trace.ApplyTraceAttributes(span, core.TraceLeaseMeta{ActorID: actorID, Status: string(status), Op: "check"})
	return status, tenant, nil
}

// RequestTenancy files an application. Re-requesting while one is pending is
// a no-op; an already active tenant has nothing to request.
func (s *LeaseService) RequestTenancy(ctx context.Context, actorID int64) (_ *dto.RequestTenancyResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	status, _, err := s.CheckLease(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if status == core.LeaseActive {
		return &dto.RequestTenancyResponseDto{Pending: false, Created: false}, nil
	}

	created, err := s.requestRepo.InsertIfAbsent(ctx, actorID)
	if err != nil {
		returnedError = cErr.DatabaseError("database RequestTenancy error")
		return nil, returnedError
	}

	if created {
		s.notifyBestEffort(ctx, s.conf.Catalog.SuperuserID,
			fmt.Sprintf("Tenancy request from %d", actorID))
	}
	return &dto.RequestTenancyResponseDto{Pending: true, Created: created}, nil
}

func (s *LeaseService) ListRequests(ctx context.Context) (_ []*dto.TenantRequestResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		returnedError = cErr.DatabaseError("database ListRequests error")
		return nil, returnedError
	}
	resp := make([]*dto.TenantRequestResponseDto, len(requests))
	for i, r := range requests {
		resp[i] = &dto.TenantRequestResponseDto{ActorID: r.ActorID, RequestedAt: r.CreatedAt}
	}
	return resp, nil
}

// Approve turns a pending request into a lease, removes the request, and
// sends the actor their invitation link.
func (s *LeaseService) Approve(ctx context.Context, actorID int64, leaseDays int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	exists, err := s.requestRepo.ExistsByActor(ctx, actorID)
	if err != nil {
		returnedError = cErr.DatabaseError("database Approve error")
		return returnedError
	}
	if !exists {
		returnedError = cErr.NotFound(fmt.Sprintf("no pending request for actor %d", actorID))
		return returnedError
	}

	if err := s.Grant(ctx, actorID, leaseDays); err != nil {
		return err
	}
	if err := s.requestRepo.DeleteByActor(ctx, actorID); err != nil {
		returnedError = cErr.DatabaseError("database Approve error")
		return returnedError
	}

	link := token.BuildDeepLink(s.conf.Transport.LinkBase, s.conf.Transport.BotName, actorID)
	s.notifyBestEffort(ctx, actorID, "Your tenancy was approved. Invitation link: "+link)
	return nil
}

// Reject removes a pending request and tells the actor.
func (s *LeaseService) Reject(ctx context.Context, actorID int64) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	exists, err := s.requestRepo.ExistsByActor(ctx, actorID)
	if err != nil {
		returnedError = cErr.DatabaseError("database Reject error")
		return returnedError
	}
	if !exists {
		returnedError = cErr.NotFound(fmt.Sprintf("no pending request for actor %d", actorID))
		return returnedError
	}
	if err := s.requestRepo.DeleteByActor(ctx, actorID); err != nil {
		returnedError = cErr.DatabaseError("database Reject error")
		return returnedError
	}

	s.notifyBestEffort(ctx, actorID, "Your tenancy request was rejected.")
	return nil
}

// Grant opens (or reopens) a lease directly, without a pending request.
func (s *LeaseService) Grant(ctx context.Context, actorID int64, leaseDays int) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if leaseDays <= 0 {
		leaseDays = s.conf.Catalog.LeaseDaysOrDefault()
	}
	nowUTC := time.Now().UTC()
	expiresAt := nowUTC.AddDate(0, 0, leaseDays)

	if err := s.tenantRepo.Upsert(ctx, actorID, false, nowUTC, expiresAt); err != nil {
		returnedError = cErr.DatabaseError("database Grant error")
		return returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceLeaseMeta{ActorID: actorID, Status: string(core.LeaseActive), Op: "grant"})
	return nil
}

// Invitation builds the redeemable access token and its deep link for a
// tenant. Anyone presenting the token at session start is recorded as a
// reader of that tenant's catalog.
func (s *LeaseService) Invitation(actorID int64) *dto.InvitationResponseDto {
	return &dto.InvitationResponseDto{
		Token:    token.BuildAccess(actorID),
		DeepLink: token.BuildDeepLink(s.conf.Transport.LinkBase, s.conf.Transport.BotName, actorID),
	}
}

// Revoke flips the tenant inactive. The record, its channelRef and its
// catalog all survive, so a later renewal reopens the lease as it was.
func (s *LeaseService) Revoke(ctx context.Context, actorID int64) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := s.tenantRepo.Deactivate(ctx, actorID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound(fmt.Sprintf("tenant %d not found", actorID))
			return returnedError
		}
		returnedError = cErr.DatabaseError("database Revoke error")
		return returnedError
	}
	return nil
}

// Renew opens a fresh lease window for an existing tenant.
func (s *LeaseService) Renew(ctx context.Context, actorID int64, leaseDays int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	tenant, err := s.tenantRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound(fmt.Sprintf("tenant %d not found", actorID))
			return returnedError
		}
		returnedError = cErr.DatabaseError("database Renew error")
		return returnedError
	}

	if leaseDays <= 0 {
		leaseDays = s.conf.Catalog.LeaseDaysOrDefault()
		if tenant.Superuser {
			leaseDays *= s.conf.Catalog.SuperuserLeaseMultipleOrDefault()
		}
	}
	nowUTC := time.Now().UTC()
	if err := s.tenantRepo.Upsert(ctx, actorID, tenant.Superuser, nowUTC, nowUTC.AddDate(0, 0, leaseDays)); err != nil {
		returnedError = cErr.DatabaseError("database Renew error")
		return returnedError
	}
	return nil
}

func (s *LeaseService) ListTenants(ctx context.Context) (_ []*dto.TenantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	tenants, err := s.tenantRepo.List(ctx, bson.M{})
	if err != nil {
		returnedError = cErr.DatabaseError("database ListTenants error")
		return nil, returnedError
	}

	nowUTC := time.Now().UTC()
	resp := make([]*dto.TenantResponseDto, len(tenants))
	for i, t := range tenants {
		resp[i] = &dto.TenantResponseDto{
			ID:          t.ID,
			Superuser:   t.Superuser,
			Active:      t.Active,
			GrantedAt:   t.GrantedAt,
			ExpiresAt:   t.ExpiresAt,
			ChannelRef:  t.ChannelRef,
			LeaseStatus: string(core.LeaseStatusOf(t.Active, t.Superuser, t.ExpiresAt, nowUTC)),
		}
	}
	return resp, nil
}

// SetChannel binds the tenant's channel and reactivates the record, so a
// freshly approved tenant finishes setup in one step.
func (s *LeaseService) SetChannel(ctx context.Context, actorID int64, channelRef string) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := s.tenantRepo.SetChannelRef(ctx, actorID, channelRef); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			returnedError = cErr.NotATenant("no tenant record")
			return returnedError
		}
		returnedError = cErr.DatabaseError("database SetChannel error")
		return returnedError
	}
	return nil
}

func (s *LeaseService) GetChannel(ctx context.Context, actorID int64) (_ *dto.ChannelResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	tenant, err := s.tenantRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			returnedError = cErr.NotATenant("no tenant record")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database GetChannel error")
		return nil, returnedError
	}
	return &dto.ChannelResponseDto{ChannelRef: tenant.ChannelRef}, nil
}

// EnsureSuperuser seeds the configured superuser with an extended lease.
// Idempotent; runs at startup and behind the seed command.
func (s *LeaseService) EnsureSuperuser(ctx context.Context) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	superuserID := s.conf.Catalog.SuperuserID
	if superuserID == 0 {
		s.logger.Warn("no superuser configured, skipping seed")
		return nil
	}

	leaseDays := s.conf.Catalog.LeaseDaysOrDefault() * s.conf.Catalog.SuperuserLeaseMultipleOrDefault()
	nowUTC := time.Now().UTC()
	if err := s.tenantRepo.Upsert(ctx, superuserID, true, nowUTC, nowUTC.AddDate(0, 0, leaseDays)); err != nil {
		returnedError = cErr.DatabaseError("database EnsureSuperuser error")
		return returnedError
	}
	s.logger.Info("superuser seeded", zap.Int64("actorID", superuserID), zap.Int("leaseDays", leaseDays))
	return nil
}

// SweepExpired deactivates every lapsed lease. Same write as the lazy path,
// so the two can never disagree.
func (s *LeaseService) SweepExpired(ctx context.Context) (deactivated int64, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	count, err := s.tenantRepo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		returnedError = cErr.DatabaseError("database SweepExpired error")
		return 0, returnedError
	}
	if count > 0 {
		s.logger.Info("lease sweep deactivated tenants", zap.Int64("count", count))
	}
	return count, nil
}

func (s *LeaseService) notifyBestEffort(ctx context.Context, actorID int64, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, actorID, text); err != nil {
		s.logger.Warn("notification failed", zap.Int64("actorID", actorID), zap.Error(err))
	}
}
