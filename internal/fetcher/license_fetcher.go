package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/idlab-discover/aloha-cli/internal/license"
)

// DefaultSPDXURL is the published SPDX license list.
const DefaultSPDXURL = "https://spdx.org/licenses/licenses.json"

type spdxDocument struct {
	Licenses []license.SPDXLicense `json:"licenses" yaml:"licenses"`
}

// SPDXListFetcher downloads the SPDX license list.
type SPDXListFetcher struct {
	Client *http.Client
	URL    string // optional; defaults to DefaultSPDXURL
}

func (f *SPDXListFetcher) Fetch(ctx context.Context) (*license.List, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimSpace(f.URL)
	if url == "" {
		url = DefaultSPDXURL
	}
	logger.Logf("spdx", "GET %s", url)

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
		return nil, fmt.Errorf("spdx license list: status %d", resp.StatusCode)
	}

	var doc spdxDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("spdx license list: %w", err)
	}
	logger.Logf("spdx", "%d licenses", len(doc.Licenses))
	return license.NewList(doc.Licenses), nil
}

// LicenseFileSource reads an SPDX license list from disk. The file may be the
// published licenses.json, a YAML document with a top-level "licenses" key,
// or a bare list of {licenseId, reference} entries.
type LicenseFileSource struct {
	Path string
}

func (s *LicenseFileSource) Fetch(ctx context.Context) (*license.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read license list: %w", err)
	}
	entries, err := parseLicenseList(data)
	if err != nil {
		return nil, fmt.Errorf("parse license list %s: %w", s.Path, err)
	}
	logger.Logf("spdx", "%d licenses from %s", len(entries), s.Path)
	return license.NewList(entries), nil
}

func parseLicenseList(data []byte) ([]license.SPDXLicense, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var entries []license.SPDXLicense
		if err := node.Content[0].Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var doc spdxDocument
	if err := node.Content[0].Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Licenses, nil
}
