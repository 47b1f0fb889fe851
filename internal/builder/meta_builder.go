package builder

import (
	"time"

	"github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/bom"
)

// AddMetaSerialNumber sets a serial number if not already set
func AddMetaSerialNumber(doc *cyclonedx.BOM) error {
	if doc.SerialNumber == "" {
		doc.SerialNumber = bom.SerialNumber()
	}
	return nil
}

// AddMetaTimestamp sets the timestamp if not already set
func AddMetaTimestamp(doc *cyclonedx.BOM) error {
	if doc.Metadata == nil {
		doc.Metadata = &cyclonedx.Metadata{}
	}
	if doc.Metadata.Timestamp == "" {
		doc.Metadata.Timestamp = CurrentTimestampRFC3339()
	}
	return nil
}

var now = time.Now

// CurrentTimestampRFC3339 returns now in UTC formatted as RFC3339 (e.g. 2026-01-22T09:41:24Z)
func CurrentTimestampRFC3339() string {
	return now().UTC().Format(time.RFC3339)
}

const (
	DefaultToolVendor  = "idlab-discover"
	DefaultToolName    = "aloha-cli"
	DefaultToolVersion = "v0.0.0"
)

// AddMetaTools adds a Component entry for the tool into bom.metadata.tools.Components.
// If toolName or toolVersion are empty the defaults above are used.
func AddMetaTools(doc *cyclonedx.BOM, toolName string, toolVersion string) error {
	if doc.Metadata == nil {
		doc.Metadata = &cyclonedx.Metadata{}
	}
	if doc.Metadata.Tools == nil {
		doc.Metadata.Tools = &cyclonedx.ToolsChoice{}
	}

	name := toolName
	if name == "" {
		name = DefaultToolName
	}
	version := toolVersion
	if version == "" {
		version = DefaultToolVersion
	}

	comp := cyclonedx.Component{
		Type: cyclonedx.ComponentTypeApplication,
		Manufacturer: &cyclonedx.OrganizationalEntity{
			Name: DefaultToolVendor,
		},
		Name:    name,
		Version: version,
	}

	if doc.Metadata.Tools.Components == nil {
		doc.Metadata.Tools.Components = &[]cyclonedx.Component{comp}
	} else {
		components := append(*doc.Metadata.Tools.Components, comp)
		doc.Metadata.Tools.Components = &components
	}

	return nil
}
