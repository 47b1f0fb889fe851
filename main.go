package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	cmd "github.com/idlab-discover/aloha-cli/cmd/aloha-cli"
	"github.com/idlab-discover/aloha-cli/internal/builder"
	"github.com/idlab-discover/aloha-cli/internal/ui"
)

func main() {
	cmd.SetVersion(builder.ToolVersion())
	if err := fang.Execute(
		context.Background(),
		cmd.GetRootCmd(),
		fang.WithColorSchemeFunc(ui.FangColorScheme),
	); err != nil {
		os.Exit(1)
	}
}
