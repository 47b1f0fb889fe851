package fetcher

import (
	"context"
	"fmt"
	"net/http"
)

// ModelAPIFetcher fetches model metadata from the Hugging Face Hub API.
type ModelAPIFetcher struct {
	Client  *http.Client
	BaseURL string // optional; defaults to "https://huggingface.co"
}

// Fetch returns the decoded body of GET {base}/api/models/{modelID}.
// A non-200 status is reported as *HFError.
func (f *ModelAPIFetcher) Fetch(ctx context.Context, modelID string) (ModelRecord, error) {
	id := trimID(modelID)
	logf(id, "GET /api/models/%s", id)

	url := fmt.Sprintf("%s/api/models/%s", baseURLOrDefault(f.BaseURL), id)
	rec, err := getRecord(ctx, f.Client, url)
	if err != nil {
		logf(id, "fetch failed (%v)", err)
		return nil, err
	}
	logf(id, "ok")
	return ModelRecord(rec), nil
}
