package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olptools/iicgen/pkg/robot"
	"github.com/olptools/iicgen/pkg/workspace"
)

var imageIndex int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List workspace contents and preview the parsed robot table",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return runInspect(settings.Input)
	},
}

func init() {
	inspectCmd.Flags().IntVar(&imageIndex, "image", -1, "print the layout image name at this index")
}

func runInspect(inputDir string) error {
	ws, err := workspace.Scan(inputDir)
	if err != nil {
		return err
	}

	if imageIndex >= 0 {
		name, err := ws.ImageAt(imageIndex)
		if err != nil {
			// Out-of-range is a diagnostic, not a failure.
			fmt.Println(err)
		} else {
			fmt.Printf("Layout: %s\n", name)
		}
	}

	if len(ws.Images) == 0 {
		fmt.Println("No layout images in the workspace.")
	} else {
		fmt.Printf("Layout images (%d):\n", len(ws.Images))
		for i, name := range ws.Images {
			fmt.Printf("  [%d] %s\n", i, name)
		}
	}

	data, err := ws.ReadDocument()
	if errors.Is(err, workspace.ErrNoDocument) {
		fmt.Println("No network description (.json) in the workspace.")
		return nil
	}
	if err != nil {
		return err
	}

	doc, err := robot.ParseDocument(data)
	if err != nil {
		return err
	}
	table := robot.BuildTable(doc)

	fmt.Printf("Network description: %s\n", ws.DocumentName)
	printTable(table)
	return nil
}

func printTable(table robot.Table) {
	fmt.Printf("%-4s %-12s %-8s %-12s %s\n", "id", "name", "role", "type", "ip")
	for i, row := range table {
		fmt.Printf("%-4d %-12s %-8s %-12s %s\n", i+1, row.Name, row.Role, row.Type, row.IP)
	}
}
