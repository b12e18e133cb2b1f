package notify

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

type HTTPNotifier struct {
	HTTPClient *http.Client
	baseURL    string
	trace      *telemetry.Trace
}

func NewHTTPNotifier(
	trace *telemetry.Trace,
	conf *config.Configuration,
	client *http.Client,
) Notifier {
	return &HTTPNotifier{HTTPClient: client, baseURL: strings.TrimRight(conf.Transport.BaseURL, "/"), trace: trace}
}

type sendPayload struct {
	ActorID int64  `json:"actor_id"`
	Text    string `json:"text"`
}

// Send calls the chat platform's sendMessage.
func (s *HTTPNotifier) Send(ctx context.Context, actorID int64, text string) error {
	url := s.baseURL + "/sendMessage"
	ctx, span, end := s.trace.WithSpan(ctx, "transport.sendMessage")
	defer end(nil)

	span.SetAttributes(
		attribute.String("http.url", url),
		attribute.Int64("notify.actor_id", actorID),
	)

	payload, err := json.Marshal(sendPayload{ActorID: actorID, Text: text})
	if err != nil {
		end(err)
		return cErr.InternalServer("marshal send payload failed")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		end(err)
		return cErr.InternalServer("create http request failed")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		end(err)
		return cErr.ExternalRequestError("transport api request failed")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		cause := fmt.Errorf("transport non-2xx: %s (%d) %s", resp.Status, resp.StatusCode, strings.TrimSpace(string(b)))
		end(cause)
		return cErr.ExternalRequestError("transport api error: " + strings.TrimSpace(string(b)))
	}

	return nil
}
