package builder

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/bom"
	"github.com/idlab-discover/aloha-cli/internal/fetcher"
	"github.com/idlab-discover/aloha-cli/internal/license"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func TestNewBOMBuilder(t *testing.T) {
	opts := Options{HuggingFaceBaseURL: "https://example/", ToolName: "x", ToolVersion: "v1"}
	if got := NewBOMBuilder(opts); !reflect.DeepEqual(got, &BOMBuilder{Opts: opts}) {
		t.Errorf("NewBOMBuilder() = %v", got)
	}
}

func TestBOMBuilder_Build(t *testing.T) {
	list := license.NewList([]license.SPDXLicense{{LicenseID: "Apache-2.0", Reference: "https://spdx.org/licenses/Apache-2.0.html"}})

	tests := []struct {
		name     string
		ctx      BuildContext
		wantName string
		wantErr  bool
	}{
		{
			name: "record id wins",
			ctx: BuildContext{
				ModelID:  "org/model-a",
				HF:       fetcher.ModelRecord(decode(t, `{"id":"org/model-a","pipeline_tag":"text-classification","cardData":{"license":"apache-2.0"}}`)),
				Licenses: list,
			},
			wantName: "org/model-a",
		},
		{name: "falls back to requested id", ctx: BuildContext{ModelID: " mymodel "}, wantName: "mymodel"},
		{name: "no id at all", ctx: BuildContext{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBOMBuilder(DefaultOptions()).Build(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			comp := got.Metadata.Component
			if comp.Type != cdx.ComponentTypeMachineLearningModel {
				t.Errorf("Type = %v", comp.Type)
			}
			if comp.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", comp.Name, tt.wantName)
			}
			if comp.BOMRef != bom.Ref(tt.wantName) {
				t.Errorf("BOMRef = %q", comp.BOMRef)
			}
			if got.SpecVersion != cdx.SpecVersion1_6 || got.Version != 1 {
				t.Errorf("specVersion/version = %v/%d", got.SpecVersion, got.Version)
			}
			if !strings.HasPrefix(got.SerialNumber, "urn:uuid:") {
				t.Errorf("SerialNumber = %q", got.SerialNumber)
			}
			if got.Metadata.Timestamp == "" || got.Metadata.Tools == nil {
				t.Errorf("expected timestamp and tools")
			}
			if comp.Licenses == nil {
				t.Errorf("licenses must always be present")
			}
			if got.Components != nil {
				t.Errorf("Build must not add dataset components")
			}
		})
	}
}

func TestBOMBuilder_Build_EndToEndModel(t *testing.T) {
	list := license.NewList([]license.SPDXLicense{{LicenseID: "Apache-2.0", Reference: "https://spdx.org/licenses/Apache-2.0.html"}})
	ctx := BuildContext{
		ModelID:  "org/model-a",
		HF:       fetcher.ModelRecord(decode(t, `{"id":"org/model-a","pipeline_tag":"text-classification","cardData":{"license":"apache-2.0","datasets":["org/dataset-a"]}}`)),
		Licenses: list,
	}
	got, err := NewBOMBuilder(DefaultOptions()).Build(ctx)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	comp := got.Metadata.Component
	if comp.Properties != nil {
		t.Errorf("component properties should be absent, got %+v", *comp.Properties)
	}
	lics := *comp.Licenses
	if len(lics) != 1 || lics[0].License.ID != "Apache-2.0" || lics[0].License.URL == "" {
		t.Errorf("licenses = %+v", lics)
	}
	ds := *comp.ModelCard.ModelParameters.Datasets
	if len(ds) != 1 || ds[0].Ref != bom.Ref("org/dataset-a") {
		t.Errorf("datasets = %+v", ds)
	}
}

func TestBOMBuilder_BuildDataset(t *testing.T) {
	b := NewBOMBuilder(DefaultOptions())

	t.Run("stub when fetch failed", func(t *testing.T) {
		comp, err := b.BuildDataset(DatasetBuildContext{DatasetID: "org/missing"})
		if err != nil || comp == nil {
			t.Fatalf("BuildDataset() = %v, %v", comp, err)
		}
		if comp.Type != cdx.ComponentTypeData || comp.BOMRef != bom.Ref("org/missing") || comp.Name != "org/missing" {
			t.Fatalf("wrapper = %+v", comp)
		}
		data := (*comp.Data)[0]
		if data.BOMRef != "" {
			t.Errorf("inner dataset must not repeat the bom-ref")
		}
		if data.Type != cdx.ComponentDataTypeDataset || data.Description != "" {
			t.Errorf("data = %+v", data)
		}
		if data.Contents == nil || data.Contents.URL != "" || data.Contents.Properties == nil || len(*data.Contents.Properties) != 0 {
			t.Errorf("contents = %+v", data.Contents)
		}
		owner := (*data.Governance.Owners)[0].Organization
		if owner == nil || owner.Name != "" || owner.URL != nil {
			t.Errorf("owner = %+v", owner)
		}
	})

	t.Run("no cardData means no component", func(t *testing.T) {
		for _, rec := range []string{`{"author":"org"}`, `{"cardData":null}`} {
			comp, err := b.BuildDataset(DatasetBuildContext{DatasetID: "org/ds", HF: fetcher.DatasetRecord(decode(t, rec))})
			if err != nil || comp != nil {
				t.Fatalf("BuildDataset(%s) = %v, %v; want nil, nil", rec, comp, err)
			}
		}
	})

	t.Run("full record", func(t *testing.T) {
		rec := fetcher.DatasetRecord(decode(t, `{"author":"org","description":"d","cardData":{"task_categories":["text-classification"]}}`))
		comp, err := b.BuildDataset(DatasetBuildContext{DatasetID: "org/dataset-a", HF: rec})
		if err != nil {
			t.Fatalf("BuildDataset() error = %v", err)
		}
		data := (*comp.Data)[0]
		if data.Contents.URL != "https://huggingface.co/datasets/org/dataset-a" {
			t.Errorf("URL = %q", data.Contents.URL)
		}
		props := *data.Contents.Properties
		if len(props) != 1 || props[0] != (cdx.Property{Name: "task_categories", Value: "text-classification"}) {
			t.Errorf("properties = %+v", props)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		if _, err := b.BuildDataset(DatasetBuildContext{DatasetID: " "}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
