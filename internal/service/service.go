package service

import (
	"mediadex/internal/service/membership"
	"mediadex/internal/service/notify"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewLeaseService,
	NewRoleGateService,
	NewSessionService,
	NewCatalogService,
	NewSearchService,
	membership.NewHTTPGate,
	membership.NewCachedGate,
	notify.NewHTTPNotifier,
)
