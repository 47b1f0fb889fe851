package metadata

// Section headings searched in the model README, compared after
// lower-casing and emoji removal.
var (
	DescriptionHeadings = []string{
		"model description", "model details", "about", "description", "details",
		"intro", "introduction", "model", "model info", "model information",
		"model overview", "model summary", "model type", "overview", "system info",
	}

	FallbackDescriptionHeadings = []string{"model description"}

	UseCaseHeadings = []string{
		"responsibility & safety", "responsible deployment", "use", "uses",
		"uses and limitations", "direct use", "use cases", "intended use",
		"intended uses", "intended uses & limitations",
	}
)
