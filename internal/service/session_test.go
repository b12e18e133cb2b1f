package service

import (
	"testing"

	"mediadex/config"
	"mediadex/internal/core"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, conf *config.Configuration) *SessionService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &SessionService{trace: trace, conf: conf}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	conf := &config.Configuration{}
	conf.App.Name = "mediadex"
	conf.App.SecretKey = "test-secret"
	s := newSessionService(t, conf)

	signed, err := s.issue(42, core.RoleTenant)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := s.VerifySession(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ActorID)
	assert.Equal(t, core.RoleTenant, claims.Role)
	assert.Equal(t, "mediadex", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifySessionRejectsWrongKey(t *testing.T) {
	issuerConf := &config.Configuration{}
	issuerConf.App.SecretKey = "key-a"
	verifierConf := &config.Configuration{}
	verifierConf.App.SecretKey = "key-b"

	signed, err := newSessionService(t, issuerConf).issue(42, core.RoleUser)
	require.NoError(t, err)

	_, err = newSessionService(t, verifierConf).VerifySession(signed)
	assert.Error(t, err)
}

func TestVerifySessionRejectsGarbage(t *testing.T) {
	conf := &config.Configuration{}
	conf.App.SecretKey = "test-secret"
	s := newSessionService(t, conf)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := s.VerifySession(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
