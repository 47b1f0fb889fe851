package builder

import (
	"github.com/idlab-discover/aloha-cli/internal/fetcher"
	"github.com/idlab-discover/aloha-cli/internal/license"
)

type BuildContext struct {
	ModelID  string
	HF       fetcher.ModelRecord
	Readme   string        // empty when the README could not be fetched
	Licenses *license.List // nil recognizes no SPDX identifier
}

// DatasetBuildContext carries one dataset. A nil HF means the registry fetch
// failed.
type DatasetBuildContext struct {
	DatasetID string
	HF        fetcher.DatasetRecord
}

type Options struct {
	HuggingFaceBaseURL string
	ToolName           string
	ToolVersion        string
}

func DefaultOptions() Options {
	return Options{
		HuggingFaceBaseURL: "https://huggingface.co/",
		ToolName:           DefaultToolName,
		ToolVersion:        ToolVersion(),
	}
}
