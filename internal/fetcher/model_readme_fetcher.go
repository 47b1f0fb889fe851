package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ModelReadmeFetcher fetches the raw README.md (model card) for a model repo.
//
// It uses URLs like:
//
//	GET https://huggingface.co/{modelID}/raw/main/README.md
//
// and falls back to /raw/master/README.md.
type ModelReadmeFetcher struct {
	Client  *http.Client
	BaseURL string        // optional; defaults to "https://huggingface.co"
	Timeout time.Duration // bounds the whole fetch, both branches; 0 = none
}

func (f *ModelReadmeFetcher) Fetch(ctx context.Context, modelID string) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	id := trimID(modelID)
	if id == "" {
		return "", errors.New("empty model id")
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	base := baseURLOrDefault(f.BaseURL)
	candidates := []string{
		fmt.Sprintf("%s/%s/raw/main/README.md", base, id),
		fmt.Sprintf("%s/%s/raw/master/README.md", base, id),
	}

	var lastErr error
	for _, url := range candidates {
		logf(id, "GET %s", url)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("Accept", "text/markdown, text/plain, */*")

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = &HFError{StatusCode: resp.StatusCode}
			continue
		}

		logf(id, "readme ok (%d bytes)", len(body))
		return string(body), nil
	}

	if lastErr == nil {
		lastErr = errors.New("unable to fetch README")
	}
	logf(id, "readme failed (%v)", lastErr)
	return "", lastErr
}
