package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestParseActorID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"plain id", "42", 42, false},
		{"negative id", "-1", -1, false},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
		{"trailing junk", "42x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(t)
			c.Params = gin.Params{{Key: "actorID", Value: tt.value}}

			id, cause, err := ParseActorID(c, "actorID")
			if tt.wantErr {
				require.Error(t, err)
				assert.Error(t, cause)
				assert.Equal(t, cErr.BAD_REQUEST_PARAMS, cErr.From(err).ErrorCode())
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cause)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	c := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"channelRef":"@mychannel"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.SetChannelDto
	cause, err := BindAndValidate(c, &req)
	require.NoError(t, err)
	require.NoError(t, cause)
	assert.Equal(t, "@mychannel", req.ChannelRef)
}

func TestBindAndValidateMissingField(t *testing.T) {
	c := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.SetChannelDto
	cause, err := BindAndValidate(c, &req)
	require.Error(t, err)
	assert.Error(t, cause)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, cErr.From(err).ErrorCode())
}

func TestBindAndValidateCustomMessages(t *testing.T) {
	c := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"contentRef":"a.mkv"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.SubmitContentDto
	_, err := BindAndValidate(c, &req)
	require.Error(t, err)
	appErr := cErr.From(err)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, appErr.ErrorCode())
	assert.Contains(t, appErr.ErrorDesc(), "caption is required")
}
