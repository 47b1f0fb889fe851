// Package validator checks the structural invariants of a generated AIBOM
// before it is written: identity, cross-references and the dependency graph.
package validator

import (
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

// Result collects the problems found in one document. Errors break the
// document's references; Warnings are legal but worth reporting.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks bom and logs every finding.
func Validate(bom *cdx.BOM) (r Result) {
	defer func() {
		r.Valid = len(r.Errors) == 0
		for _, e := range r.Errors {
			logf("error: %s", e)
		}
		for _, w := range r.Warnings {
			logf("warning: %s", w)
		}
	}()

	if bom == nil {
		r.Errors = append(r.Errors, "BOM is nil")
		return r
	}
	if bom.SpecVersion != cdx.SpecVersion1_6 {
		r.Errors = append(r.Errors, fmt.Sprintf("specVersion is %s, expected %s", bom.SpecVersion, cdx.SpecVersion1_6))
	}
	if !strings.HasPrefix(bom.SerialNumber, "urn:uuid:") {
		r.Errors = append(r.Errors, fmt.Sprintf("serialNumber %q is not a urn:uuid", bom.SerialNumber))
	}
	if bom.Metadata == nil || bom.Metadata.Component == nil {
		r.Errors = append(r.Errors, "metadata.component is missing")
		return r
	}
	if bom.Metadata.Timestamp == "" {
		r.Warnings = append(r.Warnings, "metadata.timestamp is empty")
	}

	model := bom.Metadata.Component
	if model.Name == "" {
		r.Errors = append(r.Errors, "metadata.component.name is required")
	}
	if model.BOMRef == "" {
		r.Errors = append(r.Errors, "metadata.component.bom-ref is required")
	}

	refs := map[string]bool{model.BOMRef: true}
	if bom.Components != nil {
		for i, comp := range *bom.Components {
			switch {
			case comp.BOMRef == "":
				r.Errors = append(r.Errors, fmt.Sprintf("components[%d] %q: bom-ref is required", i, comp.Name))
			case refs[comp.BOMRef]:
				r.Errors = append(r.Errors, fmt.Sprintf("components[%d] %q: duplicate bom-ref %s", i, comp.Name, comp.BOMRef))
			default:
				refs[comp.BOMRef] = true
			}
			if comp.Type == cdx.ComponentTypeData && (comp.Data == nil || len(*comp.Data) == 0) {
				r.Errors = append(r.Errors, fmt.Sprintf("components[%d] %q: data component without data", i, comp.Name))
			}
		}
	}

	if mc := model.ModelCard; mc != nil && mc.ModelParameters != nil && mc.ModelParameters.Datasets != nil {
		for _, ds := range *mc.ModelParameters.Datasets {
			if ds.Ref != "" && !refs[ds.Ref] {
				r.Warnings = append(r.Warnings, fmt.Sprintf("dataset reference %s has no component", ds.Ref))
			}
		}
	}

	if bom.Dependencies != nil {
		for _, dep := range *bom.Dependencies {
			if !refs[dep.Ref] {
				r.Errors = append(r.Errors, fmt.Sprintf("dependency ref %s does not resolve", dep.Ref))
			}
			if dep.Dependencies == nil {
				continue
			}
			for _, on := range *dep.Dependencies {
				if !refs[on] {
					r.Errors = append(r.Errors, fmt.Sprintf("dependency %s -> %s does not resolve", dep.Ref, on))
				}
			}
		}
	}
	return r
}
