package completeness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/idlab-discover/aloha-cli/internal/metadata"
)

// Summary renders the model score for status output, e.g. "62% (8/13)".
func Summary(r Report) string {
	return fmt.Sprintf("%.0f%% (%d/%d)", r.Score*100, r.Passed, r.Total)
}

// PrintReport writes the report to the configured logger writer.
// If no logger writer is configured, it produces no output.
func PrintReport(r Report) {
	logf("score=%.1f%% (%d/%d)", r.Score*100, r.Passed, r.Total)

	if len(r.MissingRequired) > 0 {
		logf("missing required: %s", joinKeys(r.MissingRequired))
	}
	if len(r.MissingOptional) > 0 {
		logf("missing optional: %s", joinKeys(r.MissingOptional))
	}

	names := make([]string, 0, len(r.DatasetReports))
	for name := range r.DatasetReports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ds := r.DatasetReports[name]
		logf("dataset %s score=%.1f%% (%d/%d)", name, ds.Score*100, ds.Passed, ds.Total)
		if len(ds.Missing) > 0 {
			logf("dataset %s missing: %s", name, joinKeys(ds.Missing))
		}
	}
}

func joinKeys[K metadata.Key | metadata.DatasetKey](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
