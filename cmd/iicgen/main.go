package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/olptools/iicgen/pkg/config"
)

var (
	cfgPath   string
	inputDir  string
	outputDir string
	baseFile  string
)

var rootCmd = &cobra.Command{
	Use:   "iicgen",
	Short: "Generate robot ring network configuration files",
	Long: `iicgen converts a JSON description of a multi-robot controller network
into the vendor XML configuration set (ring topology, member registry,
calibration frames, controller check list) and packages the result for
deployment.

Run without arguments to start the interactive flow.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultFilename, "configuration file")
	rootCmd.PersistentFlags().StringVar(&inputDir, "input", "", "workspace directory with layout images and the network JSON")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "output directory for generated documents")
	rootCmd.PersistentFlags().StringVar(&baseFile, "base", "", "path of the static iic_chkbase.xvr template")

	rootCmd.AddCommand(inspectCmd, generateCmd, packageCmd)
}

// loadSettings resolves the run layout: config file first, flags override.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(cfgPath)
	if err != nil {
		return config.Settings{}, err
	}
	if inputDir != "" {
		settings.Input = inputDir
	}
	if outputDir != "" {
		settings.Output = outputDir
	}
	if baseFile != "" {
		settings.Base = baseFile
	}
	return settings, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
