package builder

import cdx "github.com/CycloneDX/cyclonedx-go"

// AddDependencies builds the dependency graph: the model (metadata
// component) depends on every dataset it references that is present in
// bom.components, in reference order, and each of those datasets gets an
// entry of its own. References without a component are left out of the
// graph.
func AddDependencies(doc *cdx.BOM) {
	if doc == nil || doc.Metadata == nil || doc.Metadata.Component == nil {
		return
	}
	model := doc.Metadata.Component
	if model.BOMRef == "" {
		return
	}

	present := map[string]bool{}
	if doc.Components != nil {
		for _, comp := range *doc.Components {
			if comp.Type == cdx.ComponentTypeData && comp.BOMRef != "" {
				present[comp.BOMRef] = true
			}
		}
	}

	var datasetRefs []string
	if mc := model.ModelCard; mc != nil && mc.ModelParameters != nil && mc.ModelParameters.Datasets != nil {
		for _, choice := range *mc.ModelParameters.Datasets {
			if present[choice.Ref] {
				datasetRefs = append(datasetRefs, choice.Ref)
				delete(present, choice.Ref)
			}
		}
	}

	deps := make([]cdx.Dependency, 0, 1+len(datasetRefs))
	modelDep := cdx.Dependency{Ref: model.BOMRef}
	if len(datasetRefs) > 0 {
		cp := make([]string, len(datasetRefs))
		copy(cp, datasetRefs)
		modelDep.Dependencies = &cp
	}
	deps = append(deps, modelDep)
	for _, ds := range datasetRefs {
		deps = append(deps, cdx.Dependency{Ref: ds})
	}

	doc.Dependencies = &deps
}
