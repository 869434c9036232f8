// Package catalog submits enriched open-call records to the mirr.art
// catalog API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://beta.mirr.art"

	openCallsPath = "/api/open_calls/"
)

// Client performs open-call submissions against the catalog API.
type Client interface {
	SubmitOpenCall(ctx context.Context, sub Submission) error
}

// Submission is the request body for POST /api/open_calls/. The
// application_from_link key spelling is the catalog API's, not ours.
type Submission struct {
	CityCountry         string `json:"city_country"`
	OpenCallTitle       string `json:"open_call_title"`
	DeadlineDate        string `json:"deadline_date"`
	EventDate           string `json:"event_date"`
	ApplicationFromLink string `json:"application_from_link"`
	SelectionCriteria   string `json:"selection_criteria"`
	FAQ                 string `json:"faq"`
	Fee                 string `json:"fee"`
	ApplicationGuide    string `json:"application_guide"`
	OpenCallDescription string `json:"open_call_description"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog API client authenticating with the given
// bearer token. Submissions are not retried.
func NewClient(token string, opts ...Option) Client {
	c := &httpClient{
		token:   token,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) SubmitOpenCall(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return eris.Wrap(err, "catalog: marshal submission")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+openCallsPath, bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "catalog: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "catalog: send request")
	}
	defer resp.Body.Close()

	// Only 200 counts as accepted; the API does not use other 2xx codes.
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return eris.Errorf("catalog: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
