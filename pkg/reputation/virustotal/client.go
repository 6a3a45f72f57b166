// Package virustotal provides a reputation.Client backed by the VirusTotal v3 API.
package virustotal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"phishguard/pkg/domain"
	"phishguard/pkg/reputation"
	"phishguard/pkg/serrors"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public VirusTotal endpoint.
const DefaultBaseURL = "https://www.virustotal.com"

// Options configures a Client.
type Options struct {
	APIKey  string
	BaseURL string
	// RequestsPerMinute throttles outgoing requests. Zero disables throttling.
	RequestsPerMinute int
}

// Client talks to the VirusTotal REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
}

var _ reputation.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, options Options) *Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if options.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(options.RequestsPerMinute)), 1)
	}
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     options.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    limiter,
	}
}

// URLID returns the identifier VirusTotal uses for a URL: its unpadded
// URL-safe base64 encoding.
func URLID(rawURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(rawURL))
}

type stats struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
}

func (s stats) toDomain() *domain.ReputationReport {
	return &domain.ReputationReport{
		Malicious:  s.Malicious,
		Suspicious: s.Suspicious,
		Harmless:   s.Harmless,
		Undetected: s.Undetected,
	}
}

// Lookup fetches the URL object report.
// https://docs.virustotal.com/reference/url-info
func (c *Client) Lookup(ctx context.Context, rawURL string) (*domain.ReputationReport, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/v3/urls/"+URLID(rawURL), nil)
	if err != nil {
		return nil, err
	}

	var res struct {
		Data struct {
			Attributes struct {
				LastAnalysisStats stats `json:"last_analysis_stats"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "could not decode url report")
	}

	return res.Data.Attributes.LastAnalysisStats.toDomain(), nil
}

// Submit queues a URL for scanning.
// https://docs.virustotal.com/reference/scan-url
func (c *Client) Submit(ctx context.Context, rawURL string) (string, error) {
	form := url.Values{"url": {rawURL}}
	b, err := c.do(ctx, http.MethodPost, "/api/v3/urls", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	var res struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return "", serrors.Wrap(serrors.ErrParse, err, "could not decode submission")
	}
	if res.Data.ID == "" {
		return "", serrors.With(serrors.ErrParse, "submission returned no analysis id")
	}

	return res.Data.ID, nil
}

// Analysis fetches a submitted analysis.
// https://docs.virustotal.com/reference/analysis
func (c *Client) Analysis(ctx context.Context, analysisID string) (*domain.ReputationReport, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/v3/analyses/"+url.PathEscape(analysisID), nil)
	if err != nil {
		return nil, err
	}

	var res struct {
		Data struct {
			Attributes struct {
				Status string `json:"status"`
				Stats  stats  `json:"stats"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "could not decode analysis")
	}
	if res.Data.Attributes.Status != "completed" {
		return nil, serrors.With(serrors.ErrNotFound, "analysis %s is %s", analysisID, res.Data.Attributes.Status)
	}

	return res.Data.Attributes.Stats.toDomain(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, serrors.Wrap(serrors.ErrRateLimited, err, "request budget exhausted")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "virustotal request timed out")
		}

		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrFetch, err, "could not read response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "not found: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrUnauthorized, "rejected api key: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.Wrap(serrors.ErrFetch,
			errors.Errorf("status %d", resp.StatusCode),
			"virustotal request failed: %s", strings.TrimSpace(string(b)))
	}

	return b, nil
}
