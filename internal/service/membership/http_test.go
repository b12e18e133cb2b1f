package membership

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediadex/config"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T, baseURL string) *HTTPGate {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	conf := &config.Configuration{}
	conf.Transport.BaseURL = baseURL
	return NewHTTPGate(trace, conf, http.DefaultClient)
}

func TestIsMemberStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"creator", true},
		{"administrator", true},
		{"member", true},
		{"left", false},
		{"kicked", false},
		{"restricted", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/getChatMember", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status":"` + tt.status + `"}`))
			}))
			defer srv.Close()

			member, err := newTestGate(t, srv.URL).IsMember(context.Background(), "@chan", 42)
			require.NoError(t, err)
			assert.Equal(t, tt.want, member)
		})
	}
}

func TestIsMemberUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestGate(t, srv.URL).IsMember(context.Background(), "@chan", 42)
	require.Error(t, err)
	assert.Equal(t, cErr.EXTERNAL_REQUEST_ERROR, cErr.From(err).ErrorCode())
}

func TestIsMemberBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestGate(t, srv.URL).IsMember(context.Background(), "@chan", 42)
	require.Error(t, err)
	assert.Equal(t, cErr.EXTERNAL_RESPONSE_FORMAT_ERROR, cErr.From(err).ErrorCode())
}

func TestIsMemberUnreachable(t *testing.T) {
	_, err := newTestGate(t, "http://127.0.0.1:1").IsMember(context.Background(), "@chan", 42)
	require.Error(t, err)
	assert.Equal(t, cErr.EXTERNAL_REQUEST_ERROR, cErr.From(err).ErrorCode())
}
