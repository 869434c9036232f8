package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission() Submission {
	return Submission{
		CityCountry:         "UK",
		OpenCallTitle:       "Open Studios 2025",
		DeadlineDate:        "2025-03-01",
		EventDate:           "2025-06-14",
		ApplicationFromLink: "http://x.test/apply",
		SelectionCriteria:   "Open to UK-based artists",
		FAQ:                 "Who is eligible?: UK-based artists",
		Fee:                 "no fee",
		ApplicationGuide:    "1. Prepare portfolio",
		OpenCallDescription: "Open call in UK titled Open Studios 2025.",
	}
}

func TestSubmitOpenCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/open_calls/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var raw map[string]any
		err := json.NewDecoder(r.Body).Decode(&raw)
		require.NoError(t, err)

		// The API expects this exact key set, including its spelling of
		// application_from_link.
		for _, key := range []string{
			"city_country", "open_call_title", "deadline_date", "event_date",
			"application_from_link", "selection_criteria", "faq", "fee",
			"application_guide", "open_call_description",
		} {
			assert.Contains(t, raw, key)
		}
		assert.Equal(t, "Open call in UK titled Open Studios 2025.", raw["open_call_description"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient("test-token", WithBaseURL(srv.URL))
	err := client.SubmitOpenCall(context.Background(), testSubmission())
	require.NoError(t, err)
}

func TestSubmitOpenCall_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "server_error", status: http.StatusInternalServerError},
		{name: "validation_rejected", status: http.StatusUnprocessableEntity},
		// The API only ever returns 200 for accepted records, so even
		// another 2xx is treated as a failure.
		{name: "created_is_not_success", status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"rejected"}`))
			}))
			defer srv.Close()

			client := NewClient("test-token", WithBaseURL(srv.URL))
			err := client.SubmitOpenCall(context.Background(), testSubmission())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unexpected status")
			assert.Contains(t, err.Error(), "rejected")
		})
	}
}

func TestSubmitOpenCall_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close() // connection refused

	client := NewClient("test-token", WithBaseURL(srv.URL))
	err := client.SubmitOpenCall(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}

func TestSubmitOpenCall_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-token", WithBaseURL(srv.URL))
	err := client.SubmitOpenCall(ctx, testSubmission())
	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()
	c := NewClient("tok")
	hc := c.(*httpClient)
	assert.Equal(t, "tok", hc.token)
	assert.Equal(t, defaultBaseURL, hc.baseURL)
	assert.NotNil(t, hc.http)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	custom := &http.Client{}
	c := NewClient("tok", WithHTTPClient(custom))
	hc := c.(*httpClient)
	assert.Equal(t, custom, hc.http)
}
