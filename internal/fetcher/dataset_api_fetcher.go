package fetcher

import (
	"context"
	"fmt"
	"net/http"
)

// DatasetAPIFetcher fetches dataset metadata from the Hugging Face Hub API.
type DatasetAPIFetcher struct {
	Client  *http.Client
	BaseURL string // optional; defaults to "https://huggingface.co"
}

// Fetch returns the decoded body of GET {base}/api/datasets/{datasetID}.
func (f *DatasetAPIFetcher) Fetch(ctx context.Context, datasetID string) (DatasetRecord, error) {
	id := trimID(datasetID)
	dslogf(id, "GET /api/datasets/%s", id)

	url := fmt.Sprintf("%s/api/datasets/%s", baseURLOrDefault(f.BaseURL), id)
	rec, err := getRecord(ctx, f.Client, url)
	if err != nil {
		dslogf(id, "fetch failed (%v)", err)
		return nil, err
	}
	dslogf(id, "ok")
	return DatasetRecord(rec), nil
}
