package metadata

import (
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/bom"
	"github.com/idlab-discover/aloha-cli/internal/markdown"
)

// co2Fields are the co2_eq_emissions sub-fields copied as properties, in order.
var co2Fields = []string{"emissions", "source", "training_type", "geographical_location", "hardware_used"}

func modelCardFields() []FieldSpec {
	return []FieldSpec{
		{
			Key: ModelCardModelParametersTask,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return stringAt(src.HF, "pipeline_tag") },
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardModelParametersTask)
				}
				task, _ := input.Value.(string)
				ensureModelParameters(tgt.ModelCard).Task = task
				logf(tgt.Component.Name, "apply %s set=%s", ModelCardModelParametersTask, summarizeValue(task))
				return nil
			},
		},
		{
			Key: ModelCardModelParametersArchitectureFamily,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					v, ok := lookup(src.HF, "config", "model_type")
					if !ok {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardModelParametersArchitectureFamily)
				}
				family, _ := input.Value.(string)
				ensureModelParameters(tgt.ModelCard).ArchitectureFamily = family
				return nil
			},
		},
		{
			Key: ModelCardModelParametersModelArchitecture,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					v, ok := lookup(src.HF, "config", "architectures")
					if !ok {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardModelParametersModelArchitecture)
				}
				arch, _ := input.Value.(string)
				ensureModelParameters(tgt.ModelCard).ModelArchitecture = arch
				return nil
			},
		},
		{
			Key: ComponentPropertiesLibraryName,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					v, ok := lookup(src.HF, "library_name")
					if !ok || !truthy(v) {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentPropertiesLibraryName)
				}
				lib, _ := input.Value.(string)
				addComponentProperty(tgt.Component, "library_name", lib)
				return nil
			},
		},
		{
			Key: ModelCardQuantitativeAnalysisPerformanceMetrics,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					raw, ok := lookup(src.HF, "cardData", "model-index")
					if !ok {
						return nil, false
					}
					metrics := performanceMetrics(src.ModelID, raw)
					return metrics, len(metrics) > 0
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardQuantitativeAnalysisPerformanceMetrics)
				}
				metrics, _ := input.Value.([]cdx.MLPerformanceMetric)
				if tgt.ModelCard.QuantitativeAnalysis == nil {
					tgt.ModelCard.QuantitativeAnalysis = &cdx.MLQuantitativeAnalysis{}
				}
				tgt.ModelCard.QuantitativeAnalysis.PerformanceMetrics = &metrics
				logf(tgt.Component.Name, "apply %s count=%d", ModelCardQuantitativeAnalysisPerformanceMetrics, len(metrics))
				return nil
			},
		},
		{
			Key: ComponentPropertiesBaseModel,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					v, ok := lookup(src.HF, "cardData", "base_model")
					if !ok {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentPropertiesBaseModel)
				}
				base, _ := input.Value.(string)
				addComponentProperty(tgt.Component, "base_model", base)
				return nil
			},
		},
		{
			Key: ComponentPropertiesBaseModelRelation,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					if _, ok := lookup(src.HF, "cardData", "base_model"); !ok {
						return nil, false
					}
					v, ok := lookup(src.HF, "cardData", "base_model_relation")
					if !ok {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentPropertiesBaseModelRelation)
				}
				rel, _ := input.Value.(string)
				addComponentProperty(tgt.Component, "base_model_relation", rel)
				return nil
			},
		},
		{
			Key: ModelCardConsiderationsUseCases,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return markdown.ExtractSection(src.Readme, UseCaseHeadings) },
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardConsiderationsUseCases)
				}
				text, _ := input.Value.(string)
				ensureConsiderations(tgt.ModelCard).UseCases = &[]string{text}
				logf(tgt.Component.Name, "apply %s set=%s", ModelCardConsiderationsUseCases, summarizeValue(text))
				return nil
			},
		},
		{
			Key: ModelCardConsiderationsEnvironmentalConsiderationsProperties,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					raw, ok := lookup(src.HF, "cardData", "co2_eq_emissions")
					if !ok {
						return nil, false
					}
					props := co2Properties(raw)
					return props, len(props) > 0
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardConsiderationsEnvironmentalConsiderationsProperties)
				}
				props, _ := input.Value.([]cdx.Property)
				cons := ensureConsiderations(tgt.ModelCard)
				cons.EnvironmentalConsiderations = &cdx.MLModelCardEnvironmentalConsiderations{Properties: &props}
				return nil
			},
		},
		{
			Key: ModelCardModelParametersDatasets,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					ids := DatasetIDs(src.HF)
					return ids, len(ids) > 0
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ModelCardModelParametersDatasets)
				}
				ids, _ := input.Value.([]string)
				choices := make([]cdx.MLDatasetChoice, 0, len(ids))
				for _, id := range ids {
					choices = append(choices, cdx.MLDatasetChoice{Ref: bom.Ref(id)})
				}
				ensureModelParameters(tgt.ModelCard).Datasets = &choices
				logf(tgt.Component.Name, "apply %s count=%d", ModelCardModelParametersDatasets, len(choices))
				return nil
			},
		},
	}
}

// performanceMetrics flattens model-index[].results[].metrics[]. Entries of
// the wrong shape are skipped and logged.
func performanceMetrics(modelID string, raw any) []cdx.MLPerformanceMetric {
	entries, ok := asList(raw)
	if !ok {
		logf(modelID, "model-index is %T, skipped", raw)
		return nil
	}

	var metrics []cdx.MLPerformanceMetric
	for _, e := range entries {
		entry, ok := asMap(e)
		if !ok {
			logf(modelID, "model-index entry is %T, skipped", e)
			continue
		}
		results, ok := asList(entry["results"])
		if !ok {
			logf(modelID, "model-index results is %T, skipped", entry["results"])
			continue
		}
		for _, r := range results {
			result, ok := asMap(r)
			if !ok {
				logf(modelID, "model-index result is %T, skipped", r)
				continue
			}
			slice := metricSlice(result)
			list, ok := asList(result["metrics"])
			if !ok {
				logf(modelID, "model-index metrics is %T, skipped", result["metrics"])
				continue
			}
			for _, m := range list {
				metric, ok := asMap(m)
				if !ok {
					continue
				}
				metrics = append(metrics, cdx.MLPerformanceMetric{
					Slice: slice,
					Type:  stringify(metric["type"]),
					Value: stringify(metric["value"]),
				})
			}
		}
	}
	return metrics
}

// metricSlice builds "dataset: <type>[, split: <split>][, config: <config>]".
func metricSlice(result map[string]any) string {
	var b strings.Builder
	b.WriteString("dataset: ")
	if v, ok := lookup(result, "dataset", "type"); ok {
		b.WriteString(stringify(v))
	}
	if v, ok := lookup(result, "dataset", "split"); ok && truthy(v) {
		b.WriteString(", split: ")
		b.WriteString(stringify(v))
	}
	if v, ok := lookup(result, "dataset", "config"); ok && truthy(v) {
		b.WriteString(", config: ")
		b.WriteString(stringify(v))
	}
	return b.String()
}

func co2Properties(raw any) []cdx.Property {
	m, ok := asMap(raw)
	if !ok {
		return []cdx.Property{{Name: "emissions", Value: stringify(raw)}}
	}
	var props []cdx.Property
	for _, field := range co2Fields {
		if v := m[field]; truthy(v) {
			props = append(props, cdx.Property{Name: field, Value: stringify(v)})
		}
	}
	return props
}
