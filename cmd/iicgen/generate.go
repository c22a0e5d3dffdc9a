package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olptools/iicgen/pkg/config"
	"github.com/olptools/iicgen/pkg/pipeline"
)

var documentPath string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the XML configuration documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), settings)
	},
}

func init() {
	generateCmd.Flags().StringVar(&documentPath, "json", "", "network description file (skips workspace discovery)")
}

func runGenerate(ctx context.Context, settings config.Settings) error {
	p := pipeline.New()
	result, err := p.Generate(ctx, pipeline.Request{
		InputDir:     settings.Input,
		DocumentPath: documentPath,
		OutputDir:    settings.Output,
	})
	if err != nil {
		return err
	}

	for _, path := range result.Files {
		fmt.Printf("File generated: %s\n", path)
	}
	return nil
}
