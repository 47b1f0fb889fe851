// Package completeness scores how much of the AIBOM the model card could
// fill in.
package completeness

import (
	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/metadata"
)

type Report struct {
	Score float64 // 0..1

	Passed int
	Total  int

	MissingRequired []metadata.Key
	MissingOptional []metadata.Key

	// Dataset-specific tracking
	DatasetReports map[string]DatasetReport // key is the dataset name
}

type DatasetReport struct {
	DatasetRef string

	Score  float64 // 0..1
	Passed int
	Total  int

	Missing []metadata.DatasetKey
}

type modelCheck struct {
	Key      metadata.Key
	Weight   float64
	Required bool
	Present  func(*cdx.Component) bool
}

type datasetCheck struct {
	Key     metadata.DatasetKey
	Weight  float64
	Present func(*cdx.ComponentData) bool
}

func modelChecks() []modelCheck {
	return []modelCheck{
		{metadata.ComponentName, 1, true, func(c *cdx.Component) bool { return c.Name != "" }},
		{metadata.ComponentLicenses, 1, true, func(c *cdx.Component) bool { return c.Licenses != nil && len(*c.Licenses) > 0 }},
		{metadata.ComponentDescription, 1, false, func(c *cdx.Component) bool { return c.Description != "" }},
		{metadata.ComponentAuthors, 0.5, false, func(c *cdx.Component) bool { return c.Authors != nil && len(*c.Authors) > 0 }},
		{metadata.ComponentTags, 0.5, false, func(c *cdx.Component) bool { return c.Tags != nil && len(*c.Tags) > 0 }},
		{metadata.ModelCardModelParametersTask, 1, true, func(c *cdx.Component) bool {
			mp := params(c)
			return mp != nil && mp.Task != ""
		}},
		{metadata.ModelCardModelParametersArchitectureFamily, 0.5, false, func(c *cdx.Component) bool {
			mp := params(c)
			return mp != nil && mp.ArchitectureFamily != ""
		}},
		{metadata.ModelCardModelParametersModelArchitecture, 0.5, false, func(c *cdx.Component) bool {
			mp := params(c)
			return mp != nil && mp.ModelArchitecture != ""
		}},
		{metadata.ModelCardModelParametersDatasets, 1, false, func(c *cdx.Component) bool {
			mp := params(c)
			return mp != nil && mp.Datasets != nil && len(*mp.Datasets) > 0
		}},
		{metadata.ComponentPropertiesLibraryName, 0.5, false, func(c *cdx.Component) bool {
			return hasProperty(c.Properties, "library_name")
		}},
		{metadata.ModelCardQuantitativeAnalysisPerformanceMetrics, 1, false, func(c *cdx.Component) bool {
			if c.ModelCard == nil || c.ModelCard.QuantitativeAnalysis == nil {
				return false
			}
			pm := c.ModelCard.QuantitativeAnalysis.PerformanceMetrics
			return pm != nil && len(*pm) > 0
		}},
		{metadata.ModelCardConsiderationsUseCases, 1, false, func(c *cdx.Component) bool {
			cons := considerations(c)
			return cons != nil && cons.UseCases != nil && len(*cons.UseCases) > 0
		}},
		{metadata.ModelCardConsiderationsEnvironmentalConsiderationsProperties, 0.5, false, func(c *cdx.Component) bool {
			cons := considerations(c)
			return cons != nil && cons.EnvironmentalConsiderations != nil &&
				cons.EnvironmentalConsiderations.Properties != nil && len(*cons.EnvironmentalConsiderations.Properties) > 0
		}},
	}
}

func datasetChecks() []datasetCheck {
	return []datasetCheck{
		{metadata.DatasetDescription, 1, func(d *cdx.ComponentData) bool { return d.Description != "" }},
		{metadata.DatasetGovernance, 1, func(d *cdx.ComponentData) bool {
			if d.Governance == nil || d.Governance.Owners == nil {
				return false
			}
			for _, o := range *d.Governance.Owners {
				if o.Organization != nil && o.Organization.Name != "" {
					return true
				}
			}
			return false
		}},
		{metadata.DatasetContentsURL, 1, func(d *cdx.ComponentData) bool { return d.Contents != nil && d.Contents.URL != "" }},
		{metadata.DatasetPropertyTaskCategories, 0.5, dataProperty("task_categories")},
		{metadata.DatasetPropertyLanguage, 0.5, dataProperty("language")},
		{metadata.DatasetPropertySizeCategories, 0.5, dataProperty("size_categories")},
		{metadata.DatasetPropertyLicense, 1, dataProperty("license")},
	}
}

// Check scores the model component and every dataset component of bom.
func Check(bom *cdx.BOM) Report {
	report := Report{DatasetReports: make(map[string]DatasetReport)}
	if bom == nil || bom.Metadata == nil || bom.Metadata.Component == nil {
		return report
	}
	model := bom.Metadata.Component

	var earned, max float64
	for _, c := range modelChecks() {
		report.Total++
		max += c.Weight
		if c.Present(model) {
			report.Passed++
			earned += c.Weight
			continue
		}
		if c.Required {
			report.MissingRequired = append(report.MissingRequired, c.Key)
		} else {
			report.MissingOptional = append(report.MissingOptional, c.Key)
		}
	}
	if max > 0 {
		report.Score = earned / max
	}

	if bom.Components != nil {
		for i := range *bom.Components {
			comp := &(*bom.Components)[i]
			if comp.Type == cdx.ComponentTypeData {
				report.DatasetReports[comp.Name] = CheckDataset(comp)
			}
		}
	}
	return report
}

// CheckDataset scores a single dataset component (its first data entry).
func CheckDataset(comp *cdx.Component) DatasetReport {
	report := DatasetReport{DatasetRef: comp.Name}
	var data *cdx.ComponentData
	if comp.Data != nil && len(*comp.Data) > 0 {
		data = &(*comp.Data)[0]
	}

	var earned, max float64
	for _, c := range datasetChecks() {
		report.Total++
		max += c.Weight
		if data != nil && c.Present(data) {
			report.Passed++
			earned += c.Weight
			continue
		}
		report.Missing = append(report.Missing, c.Key)
	}
	if max > 0 {
		report.Score = earned / max
	}
	return report
}

func params(c *cdx.Component) *cdx.MLModelParameters {
	if c.ModelCard == nil {
		return nil
	}
	return c.ModelCard.ModelParameters
}

func considerations(c *cdx.Component) *cdx.MLModelCardConsiderations {
	if c.ModelCard == nil {
		return nil
	}
	return c.ModelCard.Considerations
}

func hasProperty(props *[]cdx.Property, name string) bool {
	if props == nil {
		return false
	}
	for _, p := range *props {
		if p.Name == name && p.Value != "" {
			return true
		}
	}
	return false
}

func dataProperty(name string) func(*cdx.ComponentData) bool {
	return func(d *cdx.ComponentData) bool {
		return d.Contents != nil && hasProperty(d.Contents.Properties, name)
	}
}
