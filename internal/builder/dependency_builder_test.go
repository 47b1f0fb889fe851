package builder

import (
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

func modelWithDatasets(refs ...string) *cdx.Component {
	choices := make([]cdx.MLDatasetChoice, 0, len(refs))
	for _, r := range refs {
		choices = append(choices, cdx.MLDatasetChoice{Ref: r})
	}
	return &cdx.Component{
		BOMRef:    "model-ref",
		Type:      cdx.ComponentTypeMachineLearningModel,
		ModelCard: &cdx.MLModelCard{ModelParameters: &cdx.MLModelParameters{Datasets: &choices}},
	}
}

func TestAddDependencies(t *testing.T) {
	tests := []struct {
		name       string
		model      *cdx.Component
		components []cdx.Component
		wantNil    bool
		wantModel  []string // dependsOn of the model; nil means none
		wantTotal  int
	}{
		{
			name:  "model depends on present datasets in reference order",
			model: modelWithDatasets("ds-2", "ds-1"),
			components: []cdx.Component{
				{BOMRef: "ds-1", Type: cdx.ComponentTypeData},
				{BOMRef: "ds-2", Type: cdx.ComponentTypeData},
			},
			wantModel: []string{"ds-2", "ds-1"},
			wantTotal: 3,
		},
		{
			name:       "dangling reference left out",
			model:      modelWithDatasets("ds-1", "ds-gone"),
			components: []cdx.Component{{BOMRef: "ds-1", Type: cdx.ComponentTypeData}},
			wantModel:  []string{"ds-1"},
			wantTotal:  2,
		},
		{
			name:      "no datasets",
			model:     &cdx.Component{BOMRef: "model-ref", Type: cdx.ComponentTypeMachineLearningModel},
			wantTotal: 1,
		},
		{
			name:       "unreferenced or non-data components ignored",
			model:      modelWithDatasets(),
			components: []cdx.Component{{BOMRef: "x", Type: cdx.ComponentTypeData}, {BOMRef: "y", Type: cdx.ComponentTypeApplication}},
			wantTotal:  1,
		},
		{
			name:    "missing model ref",
			model:   &cdx.Component{Type: cdx.ComponentTypeMachineLearningModel},
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cdx.NewBOM()
			b.Metadata = &cdx.Metadata{Component: tt.model}
			if tt.components != nil {
				comps := tt.components
				b.Components = &comps
			}

			AddDependencies(b)

			if tt.wantNil {
				if b.Dependencies != nil {
					t.Fatalf("expected Dependencies to remain nil")
				}
				return
			}
			deps := *b.Dependencies
			if len(deps) != tt.wantTotal {
				t.Fatalf("len(Dependencies) = %d, want %d", len(deps), tt.wantTotal)
			}
			if deps[0].Ref != "model-ref" {
				t.Fatalf("first dependency = %q, want model-ref", deps[0].Ref)
			}
			if tt.wantModel == nil {
				if deps[0].Dependencies != nil {
					t.Fatalf("model dependsOn = %v, want none", *deps[0].Dependencies)
				}
				return
			}
			got := *deps[0].Dependencies
			if len(got) != len(tt.wantModel) {
				t.Fatalf("model dependsOn = %v, want %v", got, tt.wantModel)
			}
			for i := range got {
				if got[i] != tt.wantModel[i] {
					t.Fatalf("model dependsOn = %v, want %v", got, tt.wantModel)
				}
				if deps[i+1].Ref != tt.wantModel[i] || deps[i+1].Dependencies != nil {
					t.Fatalf("dataset node %d = %+v", i, deps[i+1])
				}
			}
		})
	}

	AddDependencies(nil)
}
