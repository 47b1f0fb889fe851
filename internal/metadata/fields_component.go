package metadata

import (
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/license"
	"github.com/idlab-discover/aloha-cli/internal/markdown"
)

// modelName is the registry id when present, else the requested id.
func modelName(src Source) (string, bool) {
	if s, ok := stringAt(src.HF, "id"); ok {
		return s, true
	}
	if s := strings.TrimSpace(src.ModelID); s != "" {
		return s, true
	}
	return "", false
}

func componentFields() []FieldSpec {
	return []FieldSpec{
		{
			Key: ComponentName,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return modelName(src) },
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentName)
				}
				name, _ := input.Value.(string)
				if name == "" {
					return fmt.Errorf("name value is empty")
				}
				if tgt.Component == nil {
					return fmt.Errorf("component is nil")
				}
				tgt.Component.Name = name
				logf(name, "apply %s set=%s", ComponentName, summarizeValue(name))
				return nil
			},
		},
		{
			Key: ComponentExternalReferences,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return modelName(src) },
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentExternalReferences)
				}
				if tgt.Component == nil {
					return fmt.Errorf("component is nil")
				}
				id, _ := input.Value.(string)
				refs := []cdx.ExternalReference{{
					URL:  baseURL(tgt.HuggingFaceBaseURL) + strings.TrimPrefix(id, "/"),
					Type: cdx.ERTypeDocumentation,
				}}
				tgt.Component.ExternalReferences = &refs
				return nil
			},
		},
		{
			Key: ComponentAuthors,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return stringAt(src.HF, "author") },
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentAuthors)
				}
				author, _ := input.Value.(string)
				tgt.Component.Authors = &[]cdx.OrganizationalContact{{Name: author}}
				logf(tgt.Component.Name, "apply %s set=%s", ComponentAuthors, summarizeValue(author))
				return nil
			},
		},
		{
			Key: ComponentLicenses,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					raw, ok := lookup(src.HF, "cardData", "license")
					if !ok {
						return nil, false
					}
					var sib license.Siblings
					if v, ok := lookup(src.HF, "cardData", "license_name"); ok {
						sib.Name = stringPtr(v)
					}
					if v, ok := lookup(src.HF, "cardData", "license_link"); ok {
						sib.Link = stringPtr(v)
					}
					if v, ok := lookup(src.HF, "cardData", "license_details"); ok {
						sib.Details = stringPtr(v)
					}
					return license.Normalize(raw, sib, src.Licenses), true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentLicenses)
				}
				lics, ok := input.Value.(cdx.Licenses)
				if !ok {
					return fmt.Errorf("unexpected license value %T", input.Value)
				}
				if tgt.Component.Licenses == nil {
					tgt.Component.Licenses = &cdx.Licenses{}
				}
				*tgt.Component.Licenses = append(*tgt.Component.Licenses, lics...)
				logf(tgt.Component.Name, "apply %s count=%d", ComponentLicenses, len(lics))
				return nil
			},
		},
		{
			Key: ComponentDescription,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) { return markdown.ExtractSection(src.Readme, DescriptionHeadings) },
				func(src Source) (any, bool) {
					return markdown.ExtractSection(src.Readme, FallbackDescriptionHeadings)
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentDescription)
				}
				desc, _ := input.Value.(string)
				tgt.Component.Description = desc
				logf(tgt.Component.Name, "apply %s set=%s", ComponentDescription, summarizeValue(desc))
				return nil
			},
		},
		{
			Key: ComponentTags,
			Sources: []func(Source) (any, bool){
				func(src Source) (any, bool) {
					v, ok := lookup(src.HF, "tags")
					if !ok || !truthy(v) {
						return nil, false
					}
					list, ok := asList(v)
					if !ok {
						return nil, false
					}
					tags := make([]string, 0, len(list))
					for _, t := range list {
						tags = append(tags, stringify(t))
					}
					return tags, true
				},
			},
			Apply: func(tgt Target, value any) error {
				input, ok := value.(applyInput)
				if !ok {
					return fmt.Errorf("invalid input for %s", ComponentTags)
				}
				tags, _ := input.Value.([]string)
				tgt.Component.Tags = &tags
				logf(tgt.Component.Name, "apply %s set=%s", ComponentTags, summarizeValue(tags))
				return nil
			},
		},
	}
}
