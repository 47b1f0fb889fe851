package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/aloha-cli/internal/ui"
)

// rootCmd generates the AIBOM for one model id.
var rootCmd = &cobra.Command{
	Use:   "aloha-cli MODEL_ID",
	Short: "Generate a CycloneDX AIBOM for a Hugging Face model",
	Long:  longDescription,
	Example: `  aloha-cli google-bert/bert-base-uncased
  aloha-cli org/model -o out/
  aloha-cli org/model -o reports/model-aibom.json`,
	Args:              validateArgs,
	SilenceUsage:      true,
	RunE:              runGenerate,
	ValidArgsFunction: cobra.NoFileCompletions,
}

var cfgFile string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aloha-cli.yaml or ./config/defaults.yaml)")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		cmd.Root().Long = ui.RenderBanner(ui.BannerASCII) + "\n" + longDescription
		defaultHelp(cmd, args)
	})

	registerGenerateFlags(rootCmd)
}

func initConfig() {
	// Environment variables, e.g. ALOHA_HF_TOKEN for hf.token.
	viper.SetEnvPrefix("ALOHA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		reportConfigFile()
		return
	}

	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./config")

	// Try .aloha-cli first, then defaults.yaml
	viper.SetConfigName(".aloha-cli")
	err := viper.ReadInConfig()
	notFound := &viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil:
		// The config file is optional
	default:
		reportConfigFile()
	}
}

func reportConfigFile() {
	if strings.EqualFold(viper.GetString("log-level"), "quiet") {
		return
	}
	configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
	fmt.Fprintln(os.Stderr, configMsg)
}

const longDescription = "Generate an AI Bill of Materials (CycloneDX 1.6) for a Hugging Face model: model card metadata, licenses, performance metrics and the datasets it was trained on."
