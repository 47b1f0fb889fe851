package license

import (
	"io"

	"github.com/idlab-discover/aloha-cli/internal/logging"
	"github.com/idlab-discover/aloha-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "License:", PrefixColor: ui.FgYellow, OmitModel: true}

// SetLogger sets an optional destination for license logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
