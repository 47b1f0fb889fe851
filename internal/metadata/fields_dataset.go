package metadata

import (
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/license"
)

// cardProperty describes a cardData field copied verbatim (lists joined) into
// contents.properties under its own name.
type cardProperty struct {
	Key   DatasetKey
	Field string
}

// simpleCardProperties are emitted before configs and license, in this order.
var simpleCardProperties = []cardProperty{
	{DatasetPropertyTaskCategories, "task_categories"},
	{DatasetPropertyTaskIDs, "task_ids"},
	{DatasetPropertyLanguage, "language"},
	{DatasetPropertyLanguageDetails, "language_details"},
	{DatasetPropertySizeCategories, "size_categories"},
	{DatasetPropertyAnnotationsCreators, "annotations_creators"},
	{DatasetPropertyLanguageCreators, "language_creators"},
	{DatasetPropertyPrettyName, "pretty_name"},
	{DatasetPropertySourceDatasets, "source_datasets"},
	{DatasetPropertyPapersWithCodeID, "paperswithcode_id"},
}

// licenseSiblings are only emitted when the dataset license is "other".
var licenseSiblings = []cardProperty{
	{DatasetPropertyLicenseName, "license_name"},
	{DatasetPropertyLicenseLink, "license_link"},
	{DatasetPropertyLicenseDetails, "license_details"},
}

func datasetFields() []DatasetFieldSpec {
	return []DatasetFieldSpec{
		{
			Key: DatasetDescription,
			Sources: []func(DatasetSource) (any, bool){
				func(src DatasetSource) (any, bool) {
					v, ok := lookup(src.HF, "description")
					if !ok {
						return nil, false
					}
					return stringify(v), true
				},
			},
			Apply: func(tgt DatasetTarget, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", DatasetDescription)
				}
				desc, _ := input.Value.(string)
				tgt.Data.Description = desc
				return nil
			},
		},
		{
			Key: DatasetGovernance,
			Sources: []func(DatasetSource) (any, bool){
				func(src DatasetSource) (any, bool) { return stringAt(src.HF, "author") },
			},
			Apply: func(tgt DatasetTarget, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", DatasetGovernance)
				}
				author, _ := input.Value.(string)
				urls := []string{baseURL(tgt.HuggingFaceBaseURL) + author}
				tgt.Data.Governance = &cdx.DataGovernance{
					Owners: &[]cdx.ComponentDataGovernanceResponsibleParty{{
						Organization: &cdx.OrganizationalEntity{Name: author, URL: &urls},
					}},
				}
				return nil
			},
		},
		{
			Key: DatasetContentsURL,
			Sources: []func(DatasetSource) (any, bool){
				func(src DatasetSource) (any, bool) {
					id := strings.TrimSpace(src.DatasetID)
					return id, id != "" && src.HF != nil
				},
			},
			Apply: func(tgt DatasetTarget, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", DatasetContentsURL)
				}
				id, _ := input.Value.(string)
				if tgt.Data.Contents == nil {
					tgt.Data.Contents = &cdx.ComponentDataContents{}
				}
				tgt.Data.Contents.URL = baseURL(tgt.HuggingFaceBaseURL) + "datasets/" + id
				return nil
			},
		},
	}
}

func datasetPropertyFields() []DatasetFieldSpec {
	specs := make([]DatasetFieldSpec, 0, len(simpleCardProperties)+2+len(licenseSiblings))
	for _, p := range simpleCardProperties {
		specs = append(specs, cardPropertySpec(p, nil))
	}
	specs = append(specs, configsSpec(), cardPropertySpec(cardProperty{DatasetPropertyLicense, "license"}, nil))
	for _, p := range licenseSiblings {
		specs = append(specs, cardPropertySpec(p, licenseIsOther))
	}
	return specs
}

func licenseIsOther(src DatasetSource) bool {
	v, ok := lookup(src.HF, "cardData", "license")
	return ok && stringify(v) == license.Other
}

// cardPropertySpec builds the spec for one flat cardData property. when, if
// set, gates the source.
func cardPropertySpec(p cardProperty, when func(DatasetSource) bool) DatasetFieldSpec {
	return DatasetFieldSpec{
		Key: p.Key,
		Sources: []func(DatasetSource) (any, bool){
			func(src DatasetSource) (any, bool) {
				if when != nil && !when(src) {
					return nil, false
				}
				v, ok := lookup(src.HF, "cardData", p.Field)
				if !ok {
					return nil, false
				}
				return stringify(v), true
			},
		},
		Apply: func(tgt DatasetTarget, value any) error {
			input, ok := value.(applyInput)
			if !ok {
				return fmt.Errorf("invalid input for %s", p.Key)
			}
			s, _ := input.Value.(string)
			addDataProperty(tgt.Data, p.Field, s)
			return nil
		},
	}
}

func configsSpec() DatasetFieldSpec {
	return DatasetFieldSpec{
		Key: DatasetPropertyConfigs,
		Sources: []func(DatasetSource) (any, bool){
			func(src DatasetSource) (any, bool) {
				raw, ok := lookup(src.HF, "cardData", "configs")
				if !ok {
					return nil, false
				}
				values := configValues(src.DatasetID, raw)
				return values, len(values) > 0
			},
		},
		Apply: func(tgt DatasetTarget, value any) error {
			input, ok := value.(applyInput)
			if !ok {
				return fmt.Errorf("invalid input for %s", DatasetPropertyConfigs)
			}
			values, _ := input.Value.([]string)
			for _, v := range values {
				addDataProperty(tgt.Data, "configs", v)
			}
			return nil
		},
	}
}

// configValues renders one "configs" property value per config:
// "Name of the dataset subset: <name> " followed by the data_files entries as
// JSON, joined by ", ".
func configValues(datasetID string, raw any) []string {
	configs, ok := asList(raw)
	if !ok {
		dslogf(datasetID, "configs is %T, skipped", raw)
		return nil
	}
	var out []string
	for _, c := range configs {
		cfg, ok := asMap(c)
		if !ok {
			dslogf(datasetID, "config is %T, skipped", c)
			continue
		}
		name, ok := cfg["config_name"]
		if !ok {
			dslogf(datasetID, "config without config_name, skipped")
			continue
		}
		files, ok := cfg["data_files"]
		if !ok {
			dslogf(datasetID, "config %s without data_files, skipped", stringify(name))
			continue
		}

		var encoded []string
		if list, ok := asList(files); ok {
			encoded = make([]string, 0, len(list))
			for _, f := range list {
				encoded = append(encoded, dumpJSON(f))
			}
		} else {
			encoded = []string{dumpJSON(files)}
		}
		out = append(out, "Name of the dataset subset: "+stringify(name)+" "+strings.Join(encoded, ", "))
	}
	return out
}
