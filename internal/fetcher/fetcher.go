// Package fetcher holds the data sources behind AIBOM generation: the Hugging
// Face model and dataset APIs, the model README and the SPDX license list.
package fetcher

import (
	"context"
	"strings"
	"time"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
	"github.com/idlab-discover/aloha-cli/internal/license"
)

// Modes accepted by NewSet.
const (
	ModeOnline = "online"
	ModeDummy  = "dummy"
)

type ModelFetcher interface {
	Fetch(ctx context.Context, modelID string) (ModelRecord, error)
}

type DatasetFetcher interface {
	Fetch(ctx context.Context, datasetID string) (DatasetRecord, error)
}

type ReadmeFetcher interface {
	Fetch(ctx context.Context, modelID string) (string, error)
}

type LicenseListFetcher interface {
	Fetch(ctx context.Context) (*license.List, error)
}

// Set bundles the collaborators one generation run needs.
type Set struct {
	Model    ModelFetcher
	Dataset  DatasetFetcher
	Readme   ReadmeFetcher
	Licenses LicenseListFetcher
}

// Config selects and configures a Set.
type Config struct {
	Mode          string // online (default) | dummy
	BaseURL       string
	Token         string
	ReadmeTimeout time.Duration
	Retries       int
	LicensesURL   string
	LicensesFile  string // takes precedence over LicensesURL and the dummy list
}

// NewSet builds the fetchers for cfg.Mode.
func NewSet(cfg Config) (*Set, error) {
	var licenses LicenseListFetcher
	if path := strings.TrimSpace(cfg.LicensesFile); path != "" {
		licenses = &LicenseFileSource{Path: path}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case "", ModeOnline:
		client := NewHFClient(0, cfg.Token, cfg.Retries)
		if licenses == nil {
			licenses = &SPDXListFetcher{Client: NewHFClient(0, "", cfg.Retries), URL: cfg.LicensesURL}
		}
		return &Set{
			Model:    &ModelAPIFetcher{Client: client, BaseURL: cfg.BaseURL},
			Dataset:  &DatasetAPIFetcher{Client: client, BaseURL: cfg.BaseURL},
			Readme:   &ModelReadmeFetcher{Client: client, BaseURL: cfg.BaseURL, Timeout: cfg.ReadmeTimeout},
			Licenses: licenses,
		}, nil
	case ModeDummy:
		if licenses == nil {
			licenses = DummyLicenseSource{}
		}
		return &Set{
			Model:    DummyModelAPIFetcher{},
			Dataset:  DummyDatasetAPIFetcher{},
			Readme:   DummyModelReadmeFetcher{},
			Licenses: licenses,
		}, nil
	default:
		return nil, apperr.Userf("invalid hf mode %q (expected %s|%s)", cfg.Mode, ModeOnline, ModeDummy)
	}
}
