package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olptools/iicgen/pkg/config"
	"github.com/olptools/iicgen/pkg/deploy"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Copy the base check template and zip the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return runPackage(settings)
	},
}

func runPackage(settings config.Settings) error {
	zipPath, err := deploy.Package(settings.Output, settings.Base)
	if errors.Is(err, deploy.ErrBaseMissing) {
		// Diagnostic, not a failure: nothing is archived until the base
		// template is supplied.
		fmt.Printf("Base file %s not found. Please ensure it exists.\n", settings.Base)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Copied %s to %s\n", settings.Base, settings.Output)
	fmt.Printf("ZIP file created: %s\n", zipPath)
	return nil
}
