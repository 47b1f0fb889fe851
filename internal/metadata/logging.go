package metadata

import (
	"fmt"
	"io"
	"strings"

	"github.com/idlab-discover/aloha-cli/internal/logging"
	"github.com/idlab-discover/aloha-cli/internal/ui"
)

var (
	logger   = &logging.Logger{PrefixText: "Meta:", PrefixColor: ui.FgRed}
	dsLogger = &logging.Logger{PrefixText: "Meta:", PrefixColor: ui.FgRed, Field: "dataset"}
)

// SetLogger sets an optional destination for metadata logs.
func SetLogger(w io.Writer) {
	logger.SetWriter(w)
	dsLogger.SetWriter(w)
}

func logf(modelID string, format string, args ...any) {
	logger.Logf(modelID, format, args...)
}

func dslogf(datasetID string, format string, args ...any) {
	dsLogger.Logf(datasetID, format, args...)
}

func summarizeValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if len(s) > 80 {
			s = s[:77] + "..."
		}
		return fmt.Sprintf("%q", s)
	case []string:
		return fmt.Sprintf("[]string(len=%d)", len(t))
	case []any:
		return fmt.Sprintf("list(len=%d)", len(t))
	case map[string]any:
		return fmt.Sprintf("map(len=%d)", len(t))
	default:
		return fmt.Sprintf("%T", v)
	}
}
