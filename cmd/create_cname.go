package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/site"
)

// newCreateCNAMECmd creates a new command for writing the CNAME file
func newCreateCNAMECmd() *cobra.Command {
	var dir, domain string

	cmd := &cobra.Command{
		Use:   "create-cname",
		Short: "Write the CNAME file for the custom domain",
		Long:  `Write the custom domain to the CNAME file of the published site directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			if dir == "" {
				dir = cfg.CNAMEDir
			}
			if domain == "" {
				domain = cfg.Domain
			}

			path, err := site.WriteCNAME(dir, domain)
			if err != nil {
				fmt.Printf("Error creating CNAME: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CNAME file created at %s for %s\n", path, domain)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the CNAME file to (defaults to CNAME_DIR)")
	cmd.Flags().StringVar(&domain, "domain", "", "Custom domain (defaults to DOMAIN)")

	return cmd
}
