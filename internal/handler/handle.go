package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewSessionHandler,
	NewTenancyHandler,
	NewSearchHandler,
	NewTenantHandler,
	NewAdminHandler,
	NewHealthHandler,
)
