package fetcher

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/idlab-discover/aloha-cli/internal/license"
)

// The dummy fetchers return fixed data without any HTTP requests. They back
// hf.mode=dummy and the generator tests.

const dummyModelJSON = `{
  "id": %s,
  "author": "dummy-org",
  "pipeline_tag": "text-classification",
  "library_name": "transformers",
  "tags": ["transformers", "pytorch", "bert", "text-classification", "en"],
  "config": {"model_type": "bert", "architectures": ["BertForSequenceClassification"]},
  "cardData": {
    "license": "apache-2.0",
    "datasets": ["dummy-org/dummy-dataset"],
    "base_model": "google-bert/bert-base-uncased",
    "base_model_relation": "finetune",
    "co2_eq_emissions": {"emissions": 12.5, "source": "codecarbon", "training_type": "fine-tuning", "geographical_location": "Ghent, Belgium", "hardware_used": "1 x A100"},
    "model-index": [{
      "name": "dummy-model",
      "results": [{
        "task": {"type": "text-classification"},
        "dataset": {"type": "dummy-org/dummy-dataset", "name": "Dummy", "split": "test", "config": "default"},
        "metrics": [{"type": "accuracy", "value": 0.91}, {"type": "f1", "value": 0.89}]
      }]
    }]
  }
}`

const dummyDatasetJSON = `{
  "id": %s,
  "author": "dummy-org",
  "description": "A small labelled corpus used for demonstrations.",
  "cardData": {
    "task_categories": ["text-classification"],
    "language": ["en"],
    "size_categories": ["1K<n<10K"],
    "pretty_name": "Dummy Dataset",
    "license": "cc-by-4.0",
    "configs": [{"config_name": "default", "data_files": [{"split": "train", "path": "data/train-*"}, {"split": "test", "path": "data/test-*"}]}]
  }
}`

const dummyReadme = `# Dummy Model

## Model description

A BERT model fine-tuned for demonstration purposes.

## Intended uses & limitations

Classifying short English sentences.

## Training procedure
`

func dummyRecord(tmpl, id string) map[string]any {
	quoted, _ := json.Marshal(id)
	rec, err := decodeRecord(strings.NewReader(strings.Replace(tmpl, "%s", string(quoted), 1)))
	if err != nil {
		panic("fetcher: invalid dummy record: " + err.Error())
	}
	return rec
}

// DummyModelAPIFetcher returns a fixed ModelRecord carrying the requested id.
type DummyModelAPIFetcher struct{}

func (DummyModelAPIFetcher) Fetch(_ context.Context, modelID string) (ModelRecord, error) {
	id := trimID(modelID)
	logf(id, "[dummy] model")
	return ModelRecord(dummyRecord(dummyModelJSON, id)), nil
}

// DummyDatasetAPIFetcher returns a fixed DatasetRecord carrying the requested id.
type DummyDatasetAPIFetcher struct{}

func (DummyDatasetAPIFetcher) Fetch(_ context.Context, datasetID string) (DatasetRecord, error) {
	id := trimID(datasetID)
	dslogf(id, "[dummy] dataset")
	return DatasetRecord(dummyRecord(dummyDatasetJSON, id)), nil
}

// DummyModelReadmeFetcher returns a fixed model card.
type DummyModelReadmeFetcher struct{}

func (DummyModelReadmeFetcher) Fetch(_ context.Context, modelID string) (string, error) {
	logf(trimID(modelID), "[dummy] readme")
	return dummyReadme, nil
}

// DummyLicenseSource returns a handful of SPDX entries.
type DummyLicenseSource struct{}

func (DummyLicenseSource) Fetch(context.Context) (*license.List, error) {
	return license.NewList([]license.SPDXLicense{
		{LicenseID: "Apache-2.0", Reference: "https://spdx.org/licenses/Apache-2.0.html"},
		{LicenseID: "MIT", Reference: "https://spdx.org/licenses/MIT.html"},
		{LicenseID: "CC-BY-4.0", Reference: "https://spdx.org/licenses/CC-BY-4.0.html"},
	}), nil
}
