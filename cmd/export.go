package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"binx-portfolio/pkg/models"
)

// newExportCmd creates a new command for exporting the photo registry
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export the photo registry",
		Long:  `Export the photo registry in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if !supportedFormat(format) {
				fmt.Printf("Unsupported export format: %s\n", format)
				fmt.Println("Supported formats: json, yaml")
				os.Exit(1)
			}

			photos := loadPhotos()
			if err := exportData(cmd.OutOrStdout(), photos, format); err != nil {
				fmt.Printf("Error marshaling data: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

func supportedFormat(format string) bool {
	return format == "json" || format == "yaml"
}

// exportData writes the photos in registry order in the specified format
func exportData(w io.Writer, photos []models.PhotoRecord, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(photos, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(photos)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
