// Package generator turns one Hugging Face model id into a CycloneDX AIBOM:
// fetch the model record, README and SPDX list, run the model rules, add one
// component per referenced dataset and link them in the dependency graph.
package generator

import (
	"context"
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
	"github.com/idlab-discover/aloha-cli/internal/builder"
	"github.com/idlab-discover/aloha-cli/internal/fetcher"
	"github.com/idlab-discover/aloha-cli/internal/license"
	"github.com/idlab-discover/aloha-cli/internal/metadata"
)

type bomBuilder interface {
	Build(builder.BuildContext) (*cdx.BOM, error)
	BuildDataset(builder.DatasetBuildContext) (*cdx.Component, error)
}

var (
	newFetcherSet = fetcher.NewSet
	newBOMBuilder = func(opts builder.Options) bomBuilder { return builder.NewBOMBuilder(opts) }
)

// ProgressCallback is called during generation to report progress
type ProgressCallback func(event ProgressEvent)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Type     ProgressEventType
	ModelID  string
	Message  string
	Datasets int
	Error    error
}

// ProgressEventType identifies the type of progress event
type ProgressEventType int

const (
	EventFetchStart ProgressEventType = iota
	EventFetchAPIComplete
	EventFetchReadmeComplete
	EventLicensesComplete
	EventBuildStart
	EventBuildComplete
	EventDatasetStart
	EventDatasetComplete
	EventModelComplete
	EventWarning // absorbed failure; Message describes it
	EventError
)

// Options configures one Generate call.
type Options struct {
	// Fetchers overrides the set built from Fetch.
	Fetchers *fetcher.Set
	Fetch    fetcher.Config
	// LicensesStrict makes a failed SPDX list fetch fatal. Otherwise every
	// license is treated as unrecognised.
	LicensesStrict bool
	Builder        builder.Options
	OnProgress     ProgressCallback
}

// Generate builds the AIBOM for modelID. A failed model fetch aborts the run;
// README, dataset and (non-strict) license list failures are absorbed.
func Generate(ctx context.Context, modelID string, opts Options) (*cdx.BOM, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, apperr.User("model id is required")
	}

	progress := opts.OnProgress
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	fail := func(err error) (*cdx.BOM, error) {
		progress(ProgressEvent{Type: EventError, ModelID: modelID, Error: err})
		return nil, err
	}

	set := opts.Fetchers
	if set == nil {
		s, err := newFetcherSet(opts.Fetch)
		if err != nil {
			return fail(err)
		}
		set = s
	}

	progress(ProgressEvent{Type: EventFetchStart, ModelID: modelID})
	logf(modelID, "fetch model record")
	rec, err := set.Model.Fetch(ctx, modelID)
	if err != nil {
		logf(modelID, "model fetch failed (status=%d): %v", fetcher.StatusCode(err), err)
		return fail(fmt.Errorf("fetch model %s: %w", modelID, err))
	}
	progress(ProgressEvent{Type: EventFetchAPIComplete, ModelID: modelID})

	readme, err := set.Readme.Fetch(ctx, modelID)
	if err != nil {
		logf(modelID, "README fetch failed: %v", err)
		readme = ""
		progress(ProgressEvent{Type: EventWarning, ModelID: modelID, Message: "README unavailable", Error: err})
	} else {
		progress(ProgressEvent{Type: EventFetchReadmeComplete, ModelID: modelID})
	}

	var licenses *license.List
	if declaresLicense(rec) {
		licenses, err = set.Licenses.Fetch(ctx)
		switch {
		case err == nil:
			logf(modelID, "SPDX list loaded (%d licenses)", licenses.Len())
			progress(ProgressEvent{Type: EventLicensesComplete, ModelID: modelID, Message: fmt.Sprintf("%d licenses", licenses.Len())})
		case opts.LicensesStrict:
			return fail(fmt.Errorf("fetch SPDX license list: %w", err))
		default:
			logf(modelID, "SPDX list unavailable, licenses left unresolved: %v", err)
			licenses = nil
			progress(ProgressEvent{Type: EventWarning, ModelID: modelID, Message: "SPDX license list unavailable", Error: err})
		}
	}

	progress(ProgressEvent{Type: EventBuildStart, ModelID: modelID})
	b := newBOMBuilder(opts.Builder)
	bom, err := b.Build(builder.BuildContext{
		ModelID:  modelID,
		HF:       rec,
		Readme:   readme,
		Licenses: licenses,
	})
	if err != nil {
		return fail(fmt.Errorf("build model component: %w", err))
	}
	progress(ProgressEvent{Type: EventBuildComplete, ModelID: modelID})

	datasetCount := 0
	for _, dsID := range metadata.DatasetIDs(rec) {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		progress(ProgressEvent{Type: EventDatasetStart, ModelID: modelID, Message: dsID})

		dsRec, err := set.Dataset.Fetch(ctx, dsID)
		if err != nil {
			logf(modelID, "dataset %s fetch failed (status=%d), stub: %v", dsID, fetcher.StatusCode(err), err)
			dsRec = nil
			progress(ProgressEvent{Type: EventWarning, ModelID: modelID, Message: "dataset " + dsID + " unavailable", Error: err})
		}

		comp, err := b.BuildDataset(builder.DatasetBuildContext{DatasetID: dsID, HF: dsRec})
		if err != nil {
			logf(modelID, "failed to build dataset %s: %v", dsID, err)
			continue
		}
		if comp == nil {
			logf(modelID, "dataset %s has no card data, skipped", dsID)
			continue
		}

		if bom.Components == nil {
			bom.Components = &[]cdx.Component{}
		}
		*bom.Components = append(*bom.Components, *comp)
		datasetCount++

		progress(ProgressEvent{Type: EventDatasetComplete, ModelID: modelID, Message: dsID})
	}

	builder.AddDependencies(bom)
	logf(modelID, "done (datasets=%d)", datasetCount)
	progress(ProgressEvent{Type: EventModelComplete, ModelID: modelID, Datasets: datasetCount})
	return bom, nil
}

func declaresLicense(rec fetcher.ModelRecord) bool {
	card, ok := rec["cardData"].(map[string]any)
	if !ok {
		return false
	}
	v, ok := card["license"]
	return ok && v != nil
}
