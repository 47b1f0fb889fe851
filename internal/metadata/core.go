// Package metadata maps raw Hugging Face records onto CycloneDX fields.
//
// Each mapping is a FieldSpec: a list of Sources (tried in order, first hit
// wins) and an Apply func that writes the value into the Target. Builders run
// every spec of a registry once, in registry order, so the order of
// properties in the output follows the order of the registry.
package metadata

import (
	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/fetcher"
	"github.com/idlab-discover/aloha-cli/internal/license"
)

// Source is everything FieldSpecs can read from.
type Source struct {
	ModelID  string
	HF       fetcher.ModelRecord
	Readme   string
	Licenses *license.List
}

// Target is everything FieldSpecs are allowed to mutate.
type Target struct {
	Component *cdx.Component
	ModelCard *cdx.MLModelCard

	HuggingFaceBaseURL string
}

// DatasetSource mirrors Source but for datasets
type DatasetSource struct {
	DatasetID string
	HF        fetcher.DatasetRecord
}

// DatasetTarget is the dataset entry being built (the inner data element of
// the "data" component).
type DatasetTarget struct {
	Data *cdx.ComponentData

	HuggingFaceBaseURL string
}

// FieldSpec is a first-class definition of a model field: where its value
// comes from and how it is written into the BOM.
type FieldSpec struct {
	Key     Key
	Sources []func(Source) (any, bool)
	Apply   func(Target, any) error
}

// DatasetFieldSpec is the dataset analog of FieldSpec
type DatasetFieldSpec struct {
	Key     DatasetKey
	Sources []func(DatasetSource) (any, bool)
	Apply   func(DatasetTarget, any) error
}

// Registry returns the model FieldSpecs in application order.
func Registry() []FieldSpec {
	specs := make([]FieldSpec, 0, 16)
	specs = append(specs, componentFields()...)
	specs = append(specs, modelCardFields()...)
	return specs
}

// DatasetRegistry returns the dataset FieldSpecs in application order.
func DatasetRegistry() []DatasetFieldSpec {
	specs := make([]DatasetFieldSpec, 0, 20)
	specs = append(specs, datasetFields()...)
	specs = append(specs, datasetPropertyFields()...)
	return specs
}
