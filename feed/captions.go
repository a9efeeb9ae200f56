package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/opencivic/archivist/core"
)

// CaptionSourceConfig configures an HTTPCaptionSource.
type CaptionSourceConfig struct {
	// BaseURL is the caption endpoint. The external id is passed as the
	// "id" query parameter.
	BaseURL string

	// RateLimit caps requests per second against the caption host.
	RateLimit float64

	Timeout time.Duration
}

// captionPayload is the wire format of one caption row.
type captionPayload struct {
	Text       string `json:"text"`
	StartMs    int64  `json:"start_ms"`
	DurationMs int64  `json:"duration_ms"`
}

// HTTPCaptionSource implements TranscriptSource against a JSON caption
// endpoint. A 404 from the endpoint means the recording has no caption
// track and maps to ErrNoCaptions.
type HTTPCaptionSource struct {
	config  CaptionSourceConfig
	client  *http.Client
	limiter *rate.Limiter
}

var _ TranscriptSource = (*HTTPCaptionSource)(nil)

// NewHTTPCaptionSource creates a transcript source over a caption endpoint.
func NewHTTPCaptionSource(config CaptionSourceConfig) (*HTTPCaptionSource, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("caption base URL is required")
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid caption base URL: %w", err)
	}

	return &HTTPCaptionSource{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}, nil
}

// Fetch retrieves the caption track for an external id.
func (s *HTTPCaptionSource) Fetch(ctx context.Context, externalId string) ([]core.CaptionSegment, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(s.config.BaseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("id", externalId)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoCaptions
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption endpoint returned status %d", resp.StatusCode)
	}

	var rows []captionPayload
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding captions: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoCaptions
	}

	segments := make([]core.CaptionSegment, len(rows))
	for i, row := range rows {
		segments[i] = core.CaptionSegment{
			Text:           row.Text,
			StartMillis:    row.StartMs,
			DurationMillis: row.DurationMs,
		}
	}
	return segments, nil
}
