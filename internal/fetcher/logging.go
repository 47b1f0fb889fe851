package fetcher

import (
	"io"

	"github.com/idlab-discover/aloha-cli/internal/logging"
	"github.com/idlab-discover/aloha-cli/internal/ui"
)

var (
	logger   = &logging.Logger{PrefixText: "Fetch:", PrefixColor: ui.FgMagenta}
	dsLogger = &logging.Logger{PrefixText: "Fetch:", PrefixColor: ui.FgMagenta, Field: "dataset"}
)

// SetLogger sets an optional destination for fetch logs.
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
