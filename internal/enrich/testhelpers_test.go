package enrich

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/mirr-art/opencall-cli/internal/config"
	"github.com/mirr-art/opencall-cli/pkg/anthropic"
)

// fakeBackend is a scripted stand-in for the generative-text backend.
type fakeBackend struct {
	mu      sync.Mutex
	calls   []anthropic.MessageRequest
	respond func(req anthropic.MessageRequest) (*anthropic.MessageResponse, error)
}

func (f *fakeBackend) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.respond(req)
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

// ruleBackend answers each field's query with a recognizable canned value
// chosen by matching the instruction text inside the prompt.
func ruleBackend() *fakeBackend {
	rules := []struct {
		marker string
		answer string
	}{
		{marker: "country", answer: "UK"},
		{marker: "title of the open call", answer: "Open Studios 2025"},
		{marker: "deadline date, in YYYY-MM-DD", answer: "2025-03-01"},
		{marker: "date of the event itself", answer: "2025-06-14"},
		{marker: "link to the application form", answer: "http://x.test/apply"},
		{marker: "selection criteria", answer: "Open to UK-based artists"},
		{marker: "participation fee", answer: "no fee"},
		{marker: "FAQ", answer: "Who is eligible for this opportunity?: UK-based artists"},
		{marker: "to-do list", answer: "1. Prepare portfolio\n2. Fill in the form"},
	}

	return &fakeBackend{
		respond: func(req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
			prompt := req.Messages[0].Content
			for _, r := range rules {
				if strings.Contains(prompt, r.marker) {
					return textResponse(r.answer), nil
				}
			}
			return textResponse("unmatched"), nil
		},
	}
}

func createTestXLSXTable(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(dir, "listings.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func testModelConfig() config.AnthropicConfig {
	return config.AnthropicConfig{
		Model:       "claude-sonnet-4-5-20250929",
		MaxTokens:   4000,
		Temperature: 1.0,
	}
}
