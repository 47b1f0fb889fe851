// Package bom derives the bom-ref identifiers used to cross-link components
// inside a generated AIBOM.
package bom

import (
	"strings"

	"github.com/google/uuid"
)

// Ref returns the deterministic bom-ref for a named entity (model or dataset):
//
//	<name>-<uuid5(OID namespace, name)>
//
// The same name always yields the same reference, so BOMs generated on
// different days can be diffed component by component.
//
// name must be non-empty; Ref panics otherwise.
func Ref(name string) string {
	if strings.TrimSpace(name) == "" {
		panic("bom: Ref called with empty name")
	}
	return name + "-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// SerialNumber returns a fresh urn:uuid serial number for a BOM document.
func SerialNumber() string {
	return "urn:uuid:" + uuid.New().String()
}
