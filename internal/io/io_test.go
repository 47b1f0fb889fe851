package io

import (
	"os"
	"path/filepath"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
)

func minimalBOM() *cdx.BOM {
	bom := cdx.NewBOM()
	bom.SerialNumber = "urn:uuid:00000000-0000-4000-8000-000000000000"
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			Type:   cdx.ComponentTypeMachineLearningModel,
			BOMRef: "ref-1",
			Name:   "org/model-a",
		},
	}
	return bom
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		modelID string
		output  string
		want    string
	}{
		{name: "default", modelID: "org/model-a", want: "org_model-a.json"},
		{name: "no namespace", modelID: "gpt2", want: "gpt2.json"},
		{name: "directory prefix", modelID: "org/model-a", output: "out/", want: "out/org_model-a.json"},
		{name: "name prefix", modelID: "org/model-a", output: "aibom-", want: "aibom-org_model-a.json"},
		{name: "explicit file", modelID: "org/model-a", output: "reports/bom.json", want: "reports/bom.json"},
		{name: "explicit file upper-case ext", modelID: "org/model-a", output: "BOM.JSON", want: "BOM.JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.modelID, tt.output); got != tt.want {
				t.Fatalf("OutputPath(%q, %q) = %q, want %q", tt.modelID, tt.output, got, tt.want)
			}
		})
	}
}

func TestWriteBOM_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "org_model-a.json")

	if err := WriteBOM(path, minimalBOM()); err != nil {
		t.Fatalf("WriteBOM() error = %v", err)
	}

	got, err := ReadBOM(path)
	if err != nil {
		t.Fatalf("ReadBOM() error = %v", err)
	}
	if got.SerialNumber != "urn:uuid:00000000-0000-4000-8000-000000000000" {
		t.Errorf("SerialNumber = %q", got.SerialNumber)
	}
	if got.Metadata == nil || got.Metadata.Component == nil || got.Metadata.Component.Name != "org/model-a" {
		t.Fatalf("metadata component not preserved: %+v", got.Metadata)
	}
	if got.Metadata.Component.Type != cdx.ComponentTypeMachineLearningModel {
		t.Errorf("Type = %q", got.Metadata.Component.Type)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) == 0 || raw[0] != '{' || raw[1] != '\n' {
		t.Errorf("expected pretty-printed JSON, got %q", raw[:min(len(raw), 20)])
	}
}

func TestWriteBOM_Errors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "parent is a file", path: filepath.Join(blocker, "bom.json")},
		{name: "target is a directory", path: dir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteBOM(tt.path, minimalBOM())
			if !apperr.IsWrite(err) {
				t.Fatalf("WriteBOM(%q) error = %v, want write error", tt.path, err)
			}
		})
	}
}

func TestReadBOM_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{filepath.Join(dir, "missing.json"), bad} {
		if _, err := ReadBOM(p); err == nil {
			t.Errorf("ReadBOM(%q) expected error", p)
		}
	}
}
