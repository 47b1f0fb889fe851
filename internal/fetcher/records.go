package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://huggingface.co"

// ModelRecord is the raw body of GET /api/models/{id}. Values keep their JSON
// shape (map[string]any, []any, json.Number, string, bool, nil) so the
// metadata rules can tell a list from a scalar.
type ModelRecord map[string]any

// DatasetRecord is the raw body of GET /api/datasets/{id}.
type DatasetRecord map[string]any

func baseURLOrDefault(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	if s == "" {
		return defaultBaseURL
	}
	return s
}

func trimID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "/")
}

// decodeRecord decodes a JSON object, keeping numbers as json.Number.
func decodeRecord(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("empty response body")
	}
	return out, nil
}

// getRecord performs a JSON GET and decodes the object body.
func getRecord(ctx context.Context, client *http.Client, url string) (map[string]any, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HFError{StatusCode: resp.StatusCode}
	}
	return decodeRecord(resp.Body)
}
