package service

import (
	"context"
	"testing"

	"mediadex/config"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSuperuser(t *testing.T) {
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)

	conf := &config.Configuration{}
	conf.Catalog.SuperuserID = 7
	gate := &RoleGateService{trace: trace, conf: conf}

	assert.NoError(t, gate.RequireSuperuser(context.Background(), 7))

	for _, actorID := range []int64{0, 1, -7, 8} {
		err := gate.RequireSuperuser(context.Background(), actorID)
		require.Error(t, err, "actor %d", actorID)
		assert.Equal(t, cErr.NOT_SUPERUSER, cErr.From(err).ErrorCode())
	}
}

func TestRequireSuperuserUnconfigured(t *testing.T) {
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)

	// SuperuserID zero means nobody passes, not everybody
	gate := &RoleGateService{trace: trace, conf: &config.Configuration{}}
	err = gate.RequireSuperuser(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, cErr.NOT_SUPERUSER, cErr.From(err).ErrorCode())
}
