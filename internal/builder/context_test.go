package builder

import "testing"

func TestDefaultOptions(t *testing.T) {
	got := DefaultOptions()
	if got.HuggingFaceBaseURL != "https://huggingface.co/" {
		t.Errorf("HuggingFaceBaseURL = %q", got.HuggingFaceBaseURL)
	}
	if got.ToolName != DefaultToolName {
		t.Errorf("ToolName = %q", got.ToolName)
	}
	if got.ToolVersion == "" {
		t.Errorf("ToolVersion is empty")
	}
}
