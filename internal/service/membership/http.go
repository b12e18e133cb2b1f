package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mediadex/config"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

type HTTPGate struct {
	HTTPClient *http.Client
	baseURL    string
	trace      *telemetry.Trace
}

func NewHTTPGate(
	trace *telemetry.Trace,
	conf *config.Configuration,
	client *http.Client,
) *HTTPGate {
	return &HTTPGate{HTTPClient: client, baseURL: strings.TrimRight(conf.Transport.BaseURL, "/"), trace: trace}
}

type memberPayload struct {
	ChannelRef string `json:"channel_ref"`
	UserID     int64  `json:"user_id"`
}

type memberResult struct {
	Status string `json:"status"`
}

// IsMember calls the chat platform's getChatMember. Failure paths map to:
//   - request sent / non-2xx reply: ExternalRequestError
//   - reply undecodable: ExternalResponseFormatError
//   - local marshal/build failure: InternalServer
func (s *HTTPGate) IsMember(ctx context.Context, channelRef string, userID int64) (bool, error) {
	url := s.baseURL + "/getChatMember"
	ctx, span, end := s.trace.WithSpan(ctx, "transport.getChatMember")
	defer end(nil)

	span.SetAttributes(
		attribute.String("http.url", url),
		attribute.String("gate.channel_ref", channelRef),
		attribute.Int64("gate.user_id", userID),
	)

	payload, err := json.Marshal(memberPayload{ChannelRef: channelRef, UserID: userID})
	if err != nil {
		end(err)
		return false, cErr.InternalServer("marshal member payload failed")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		end(err)
		return false, cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		end(err)
		return false, cErr.ExternalRequestError("transport api request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		cause := fmt.Errorf("transport non-2xx: %s (%d) %s", resp.Status, resp.StatusCode, strings.TrimSpace(string(b)))
		end(cause)
		return false, cErr.ExternalRequestError("transport api error: " + strings.TrimSpace(string(b)))
	}

	var result memberResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		end(err)
		return false, cErr.ExternalResponseFormatError("decode member response failed")
	}

	switch result.Status {
	case "creator", "administrator", "member":
		return true, nil
	default:
		return false, nil
	}
}
