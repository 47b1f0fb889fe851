package generator

import (
	"io"

	"github.com/idlab-discover/aloha-cli/internal/logging"
	"github.com/idlab-discover/aloha-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Generator:", PrefixColor: ui.FgCyan}

// SetLogger sets an optional destination for generator logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(modelID string, format string, args ...any) {
	logger.Logf(modelID, format, args...)
}
