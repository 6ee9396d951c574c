package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/logger"
)

// Configuration flags
var (
	bucketName   string
	portNumber   string
	galleryDir   string
	manifestPath string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "binx-portfolio",
		Short: "Binx Portfolio serves and manages the Binx Productions photo portfolio",
		Long: `Binx Portfolio is a command line application that builds the photo registry
from the local gallery directory and an optional Cloud Storage bucket. It serves
the portfolio site, browses it from the terminal and writes the deployment files.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&galleryDir, "gallery-dir", "g", "", "Set the GALLERY_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Set the GALLERY_MANIFEST (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListPhotographersCmd())
	rootCmd.AddCommand(newListSessionsCmd())
	rootCmd.AddCommand(newShowSessionCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newScanGalleryCmd())
	rootCmd.AddCommand(newCreateCNAMECmd())
	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if galleryDir != "" {
		os.Setenv("GALLERY_DIR", galleryDir)
	}

	if manifestPath != "" {
		os.Setenv("GALLERY_MANIFEST", manifestPath)
	}

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.InitStructured(cfg.Env)
	return cfg, nil
}
