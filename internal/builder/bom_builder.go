package builder

import (
	"errors"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/bom"
	"github.com/idlab-discover/aloha-cli/internal/metadata"
)

type BOMBuilder struct {
	Opts Options
}

func NewBOMBuilder(opts Options) *BOMBuilder {
	return &BOMBuilder{Opts: opts}
}

// Build creates the document shell (serial, timestamp, tools) with the model
// component under metadata.component. Dataset components are added by the
// caller.
func (b BOMBuilder) Build(ctx BuildContext) (*cdx.BOM, error) {
	comp := buildModelComponent()

	src := metadata.Source{
		ModelID:  strings.TrimSpace(ctx.ModelID),
		HF:       ctx.HF,
		Readme:   ctx.Readme,
		Licenses: ctx.Licenses,
	}
	tgt := metadata.Target{
		Component:          comp,
		ModelCard:          comp.ModelCard,
		HuggingFaceBaseURL: b.Opts.HuggingFaceBaseURL,
	}
	for _, spec := range metadata.Registry() {
		metadata.ApplyFromSources(spec, src, tgt)
	}

	if comp.Name == "" {
		return nil, errors.New("model has no id")
	}
	comp.BOMRef = bom.Ref(comp.Name)

	doc := cdx.NewBOM()
	doc.Metadata = &cdx.Metadata{Component: comp}
	if err := AddMetaSerialNumber(doc); err != nil {
		return nil, err
	}
	if err := AddMetaTimestamp(doc); err != nil {
		return nil, err
	}
	if err := AddMetaTools(doc, b.Opts.ToolName, b.Opts.ToolVersion); err != nil {
		return nil, err
	}
	logf(comp.Name, "model component built (ref=%s)", comp.BOMRef)
	return doc, nil
}

// BuildDataset builds the "data" component for one dataset.
//
// A nil ctx.HF yields a stub with empty description, URL and properties. A
// record without cardData yields (nil, nil): nothing is worth describing.
func (b BOMBuilder) BuildDataset(ctx DatasetBuildContext) (*cdx.Component, error) {
	id := strings.TrimSpace(ctx.DatasetID)
	if id == "" {
		return nil, errors.New("empty dataset id")
	}

	data := buildDatasetData(id)
	if ctx.HF != nil {
		if card, ok := ctx.HF["cardData"]; !ok || card == nil {
			logf(id, "dataset has no cardData, no component")
			return nil, nil
		}

		src := metadata.DatasetSource{DatasetID: id, HF: ctx.HF}
		tgt := metadata.DatasetTarget{Data: data, HuggingFaceBaseURL: b.Opts.HuggingFaceBaseURL}
		for _, spec := range metadata.DatasetRegistry() {
			metadata.ApplyDatasetFromSources(spec, src, tgt)
		}
	} else {
		logf(id, "dataset stub")
	}

	return &cdx.Component{
		Type:   cdx.ComponentTypeData,
		BOMRef: bom.Ref(id),
		Name:   id,
		Data:   &[]cdx.ComponentData{*data},
	}, nil
}

func buildModelComponent() *cdx.Component {
	// Minimal skeleton; registry fills the rest
	return &cdx.Component{
		Type:      cdx.ComponentTypeMachineLearningModel,
		Licenses:  &cdx.Licenses{},
		ModelCard: &cdx.MLModelCard{},
	}
}

// buildDatasetData creates the skeleton dataset entry: every field the stub
// needs is present but empty.
func buildDatasetData(id string) *cdx.ComponentData {
	return &cdx.ComponentData{
		Type: cdx.ComponentDataTypeDataset,
		Name: id,
		Contents: &cdx.ComponentDataContents{
			Properties: &[]cdx.Property{},
		},
		Governance: &cdx.DataGovernance{
			Owners: &[]cdx.ComponentDataGovernanceResponsibleParty{{
				Organization: &cdx.OrganizationalEntity{},
			}},
		},
	}
}
