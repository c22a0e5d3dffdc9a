package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/olptools/iicgen/pkg/config"
	"github.com/olptools/iicgen/pkg/workspace"
)

const (
	actionInspect  = "Inspect workspace"
	actionPreview  = "Preview a layout image"
	actionGenerate = "Generate configuration documents"
	actionPackage  = "Package for deployment"
	actionQuit     = "Quit"
)

// runInteractive drives the inspect, generate, package sequence as a
// prompt loop.
func runInteractive(ctx context.Context) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	for {
		var action string
		prompt := &survey.Select{
			Message: "iicgen:",
			Options: []string{actionInspect, actionPreview, actionGenerate, actionPackage, actionQuit},
		}
		if err := survey.AskOne(prompt, &action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch action {
		case actionInspect:
			err = runInspect(settings.Input)
		case actionPreview:
			err = previewImage(settings.Input)
		case actionGenerate:
			err = runGenerate(ctx, settings)
		case actionPackage:
			err = confirmAndPackage(settings)
		case actionQuit:
			return nil
		}
		if err != nil {
			// Keep the loop alive; one failed action should not end the
			// session.
			fmt.Println(err)
		}
	}
}

func previewImage(inputDir string) error {
	ws, err := workspace.Scan(inputDir)
	if err != nil {
		return err
	}
	if len(ws.Images) == 0 {
		fmt.Println("No layout images in the workspace.")
		return nil
	}

	var name string
	prompt := &survey.Select{
		Message: "Layout image:",
		Options: ws.Images,
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		return err
	}

	fmt.Printf("Layout: %s\n", name)
	return nil
}

func confirmAndPackage(settings config.Settings) error {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Archive %s into %s.zip?", settings.Output, settings.Output),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		return err
	}
	if !confirmed {
		return nil
	}
	return runPackage(settings)
}
