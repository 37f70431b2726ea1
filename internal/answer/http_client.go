package answer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"
)

// HTTPClient calls the upstream answer endpoint once per Fetch.
// It never retries and sets no deadline of its own; ctx is the only way to abandon a request.
type HTTPClient struct {
	httpClient *resty.Client
	endpoint   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(endpoint, userAgent string) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)
	client.SetRetryCount(0)

	return &HTTPClient{
		httpClient: client,
		endpoint:   endpoint,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

// Endpoint returns the URL this client fetches from
func (client *HTTPClient) Endpoint() string {
	return client.endpoint
}

func (client *HTTPClient) Fetch(ctx context.Context) (Record, error) {
	requestID := uuid.NewString()
	startedAt := time.Now()

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		Get(client.endpoint)
	if err != nil {
		slog.Default().Warn("answer request failed",
			"requestID", requestID,
			"endpoint", client.endpoint,
			"error", err,
		)
		return Record{}, &TransportError{URL: client.endpoint, Err: err}
	}

	body := response.String()
	slog.Default().Debug("answer response",
		"requestID", requestID,
		"status", response.StatusCode(),
		"elapsed", time.Since(startedAt),
		"body", body,
	)
	if !response.IsSuccess() {
		return Record{}, &StatusError{
			StatusCode: response.StatusCode(),
			URL:        client.endpoint,
			Body:       body,
		}
	}

	var record Record
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		slog.Default().Warn("failed to parse answer response",
			"requestID", requestID,
			"error", err,
		)
		return Record{}, &ParseError{Body: body, Err: err}
	}
	return record, nil
}
