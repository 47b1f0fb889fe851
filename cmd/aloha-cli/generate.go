package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
	"github.com/idlab-discover/aloha-cli/internal/builder"
	"github.com/idlab-discover/aloha-cli/internal/completeness"
	"github.com/idlab-discover/aloha-cli/internal/fetcher"
	"github.com/idlab-discover/aloha-cli/internal/generator"
	bomio "github.com/idlab-discover/aloha-cli/internal/io"
	"github.com/idlab-discover/aloha-cli/internal/license"
	"github.com/idlab-discover/aloha-cli/internal/metadata"
	"github.com/idlab-discover/aloha-cli/internal/ui"
	"github.com/idlab-discover/aloha-cli/internal/validator"
)

// Flag and config defaults.
const (
	defaultReadmeTimeoutSec = 10
	defaultRetries          = 2
)

var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func registerGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output prefix prepended to <model_id>.json; a value ending in .json is the file path")
	flags.String("log-level", "", "Log level: quiet|standard|debug")
	flags.String("hf-mode", "", "Hugging Face metadata mode: online|dummy")
	flags.String("hf-base-url", "", "Hugging Face base URL (default https://huggingface.co)")
	flags.String("hf-token", "", "Hugging Face access token for gated or private repos")
	flags.Int("hf-readme-timeout", 0, "README fetch timeout in seconds")
	flags.Int("hf-retries", 0, "Retries for failed Hugging Face requests")
	flags.String("licenses-url", "", "SPDX license list URL")
	flags.String("licenses-file", "", "Local SPDX license list (JSON or YAML), used instead of the URL")
	flags.Bool("licenses-strict", true, "Fail when the SPDX license list cannot be loaded")

	// Bind all flags to viper for config file support
	for key, flag := range map[string]string{
		"output":            "output",
		"log-level":         "log-level",
		"hf.mode":           "hf-mode",
		"hf.base-url":       "hf-base-url",
		"hf.token":          "hf-token",
		"hf.readme-timeout": "hf-readme-timeout",
		"hf.retries":        "hf-retries",
		"licenses.url":      "licenses-url",
		"licenses.file":     "licenses-file",
		"licenses.strict":   "licenses-strict",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	viper.SetDefault("log-level", "standard")
	viper.SetDefault("hf.mode", fetcher.ModeOnline)
	viper.SetDefault("hf.readme-timeout", defaultReadmeTimeoutSec)
	viper.SetDefault("hf.retries", defaultRetries)
	viper.SetDefault("licenses.url", fetcher.DefaultSPDXURL)
	viper.SetDefault("licenses.strict", true)
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return apperr.User("exactly one MODEL_ID is required (e.g. aloha-cli org/model-name)")
	}
	return nil
}

func logLevel() (string, error) {
	level := strings.ToLower(strings.TrimSpace(viper.GetString("log-level")))
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		return level, nil
	default:
		return "", apperr.Userf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}
}

// fetchConfig resolves the fetcher configuration from flags, env and config file.
func fetchConfig() (fetcher.Config, error) {
	timeoutSec := viper.GetInt("hf.readme-timeout")
	if timeoutSec < 0 {
		return fetcher.Config{}, apperr.Userf("invalid --hf-readme-timeout %d (must be >= 0)", timeoutSec)
	}
	retries := viper.GetInt("hf.retries")
	if retries < 0 {
		return fetcher.Config{}, apperr.Userf("invalid --hf-retries %d (must be >= 0)", retries)
	}
	return fetcher.Config{
		Mode:          strings.ToLower(strings.TrimSpace(viper.GetString("hf.mode"))),
		BaseURL:       viper.GetString("hf.base-url"),
		Token:         viper.GetString("hf.token"),
		ReadmeTimeout: time.Duration(timeoutSec) * time.Second,
		Retries:       retries,
		LicensesURL:   viper.GetString("licenses.url"),
		LicensesFile:  viper.GetString("licenses.file"),
	}, nil
}

func setPackageLoggers(level string) {
	if level != "debug" {
		return
	}
	fetcher.SetLogger(os.Stderr)
	metadata.SetLogger(os.Stderr)
	license.SetLogger(os.Stderr)
	builder.SetLogger(os.Stderr)
	generator.SetLogger(os.Stderr)
	validator.SetLogger(os.Stderr)
	completeness.SetLogger(os.Stderr)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	modelID := strings.TrimSpace(args[0])

	level, err := logLevel()
	if err != nil {
		return err
	}
	cfg, err := fetchConfig()
	if err != nil {
		return err
	}
	setPackageLoggers(level)

	out := cmd.OutOrStdout()
	animate := level == "standard"
	if f, ok := out.(*os.File); !ok || !isTerminal(f) {
		animate = false
		ui.Init(true)
	}

	genUI := ui.NewGenerateUI(out, level == "quiet", animate)
	if cfg.Mode == fetcher.ModeDummy && level != "quiet" {
		fmt.Fprintln(out, ui.GetInfoMark()+" "+ui.Dim.Render("dummy mode: no network access, fixed sample metadata"))
	}

	genUI.Start(modelID)
	genUI.Running(ui.StepModel, modelID)

	datasets := 0
	onProgress := func(evt generator.ProgressEvent) {
		switch evt.Type {
		case generator.EventFetchAPIComplete:
			genUI.Done(ui.StepModel, "Model metadata fetched")
			genUI.Running(ui.StepReadme, "")
		case generator.EventFetchReadmeComplete:
			genUI.Done(ui.StepReadme, "Model card read")
		case generator.EventBuildComplete:
			genUI.Running(ui.StepDatasets, "")
		case generator.EventDatasetStart:
			genUI.Running(ui.StepDatasets, evt.Message)
		case generator.EventWarning:
			if strings.HasPrefix(evt.Message, "README") {
				genUI.Skipped(ui.StepReadme, evt.Message)
				return
			}
			genUI.Warn(evt.Message)
		case generator.EventModelComplete:
			datasets = evt.Datasets
			genUI.Done(ui.StepDatasets, fmt.Sprintf("%d dataset(s) resolved", evt.Datasets))
		case generator.EventError:
			genUI.Failed(ui.StepModel, evt.Error.Error())
		}
	}

	doc, err := generator.Generate(cmd.Context(), modelID, generator.Options{
		Fetch:          cfg,
		LicensesStrict: viper.GetBool("licenses.strict"),
		Builder:        builder.DefaultOptions(),
		OnProgress:     onProgress,
	})
	if err != nil {
		genUI.Finish(err)
		if apperr.IsUser(err) {
			return err
		}
		return fmt.Errorf("AIBoM generation failed: %w", err)
	}

	check := validator.Validate(doc)
	for _, w := range check.Warnings {
		genUI.Warn(w)
	}
	if !check.Valid {
		err := fmt.Errorf("invalid AIBoM: %s", strings.Join(check.Errors, "; "))
		genUI.Finish(err)
		return fmt.Errorf("AIBoM generation failed: %w", err)
	}
	report := completeness.Check(doc)
	completeness.PrintReport(report)

	path := bomio.OutputPath(modelID, viper.GetString("output"))
	genUI.Running(ui.StepWrite, path)
	if err := bomio.WriteBOM(path, doc); err != nil {
		genUI.Failed(ui.StepWrite, path)
		genUI.Finish(err)
		return fmt.Errorf("AIBoM creation failed: %w", err)
	}
	genUI.Done(ui.StepWrite, "AIBoM written")
	genUI.Finish(nil)
	genUI.PrintWritten(path, datasets)
	if level != "quiet" {
		fmt.Fprintln(out, "  "+ui.FormatKeyValue("Completeness", completeness.Summary(report)))
	}
	return nil
}
