package service

import (
	"context"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/database/mongodb/model"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"
)

// RoleGateService holds the guard predicates handlers call explicitly at the
// top of each command. Authorization is a named check in the command body,
// not something a middleware does behind its back.
type RoleGateService struct {
	trace *telemetry.Trace
	conf  *config.Configuration
	lease *LeaseService
}

func NewRoleGateService(
	trace *telemetry.Trace,
	conf *config.Configuration,
	lease *LeaseService,
) *RoleGateService {
	return &RoleGateService{trace: trace, conf: conf, lease: lease}
}

// RequireSuperuser admits only the configured superuser.
func (s *RoleGateService) RequireSuperuser(ctx context.Context, actorID int64) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if actorID != s.conf.Catalog.SuperuserID || actorID == 0 {
		s.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{ActorID: actorID, Status: "denied"})
		returnedError = cErr.NotSuperuser("superuser only")
		return returnedError
	}
	s.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{ActorID: actorID, Role: string(core.RoleSuperuser), Status: "ok"})
	return nil
}

// RequireActiveTenant admits only an actor whose lease is active right now,
// returning the tenant record. Each failure mode is its own error so the
// caller's reply can say why.
func (s *RoleGateService) RequireActiveTenant(ctx context.Context, actorID int64) (_ *model.Tenant, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	status, tenant, err := s.lease.CheckLease(ctx, actorID)
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceLeaseMeta{ActorID: actorID, Status: string(status), Op: "gate"})

	switch status {
	case core.LeaseActive:
		return tenant, nil
	case core.LeaseExpired:
		returnedError = cErr.LeaseExpired("tenant lease expired")
	case core.LeaseInactive:
		returnedError = cErr.LeaseInactive("tenant lease inactive")
	default:
		returnedError = cErr.NotATenant("not a tenant")
	}
	return nil, returnedError
}
