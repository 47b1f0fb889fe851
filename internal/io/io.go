// Package io reads and writes CycloneDX documents on disk.
package io

import (
	"os"
	"path/filepath"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
)

// OutputPath returns where the AIBOM for modelID is written.
//
// The file name is the model id with "/" replaced by "_" plus ".json".
// output, when set, is prepended to it as-is (a directory needs its trailing
// separator). An output ending in ".json" is used verbatim.
func OutputPath(modelID string, output string) string {
	output = strings.TrimSpace(output)
	if strings.HasSuffix(strings.ToLower(output), ".json") {
		return output
	}
	name := strings.ReplaceAll(strings.TrimSpace(modelID), "/", "_") + ".json"
	return output + name
}

// WriteBOM writes bom as pretty-printed CycloneDX JSON, creating parent
// directories as needed. Failures are returned as *apperr.WriteError.
func WriteBOM(path string, bom *cdx.BOM) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &apperr.WriteError{Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &apperr.WriteError{Path: path, Err: err}
	}

	encoder := cdx.NewBOMEncoder(f, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	if err := encoder.Encode(bom); err != nil {
		_ = f.Close()
		return &apperr.WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &apperr.WriteError{Path: path, Err: err}
	}
	return nil
}

// ReadBOM reads a CycloneDX JSON document.
func ReadBOM(path string) (*cdx.BOM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bom := new(cdx.BOM)
	if err := cdx.NewBOMDecoder(f, cdx.BOMFileFormatJSON).Decode(bom); err != nil {
		return nil, err
	}
	return bom, nil
}
