package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/registry"
	"binx-portfolio/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all photo categories",
		Long:  `List all photo categories with the number of photos in each.`,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			err := listFacet(cmd.OutOrStdout(), "Photo Categories", "categories", services.GetCategories, func(p models.PhotoRecord) string {
				return p.Category
			})
			if err != nil {
				log.Fatalf("Failed to list categories: %v", err)
			}
		},
	}
}

// newListPhotographersCmd creates a new command for listing photographers
func newListPhotographersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-photographers",
		Short: "List all photographers",
		Long:  `List all photographers with the number of photos credited to each.`,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			err := listFacet(cmd.OutOrStdout(), "Photographers", "photographers", services.GetPhotographers, func(p models.PhotoRecord) string {
				return p.Photographer
			})
			if err != nil {
				log.Fatalf("Failed to list photographers: %v", err)
			}
		},
	}
}

// initService loads the configuration and initializes the shared service
func initService() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	services.InitService(cfg)
}

// loadPhotos returns the registry contents from the shared service
func loadPhotos() []models.PhotoRecord {
	initService()
	photos, err := services.GetPhotos()
	if err != nil {
		log.Fatalf("Failed to load photo registry: %v", err)
	}
	return photos
}

// listFacet displays the values returned by facet and their photo counts
func listFacet(w io.Writer, title, noun string, facet func() ([]string, error), key func(models.PhotoRecord) string) error {
	values, err := facet()
	if err != nil {
		return err
	}
	photos, err := services.GetPhotos()
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, p := range photos {
		counts[key(p)]++
	}

	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, "================")

	total := 0
	for _, v := range values {
		if v == registry.All {
			continue
		}
		fmt.Fprintf(w, "%s\n", v)
		fmt.Fprintf(w, "  Photos: %d\n", counts[v])
		fmt.Fprintln(w)
		total++
	}

	fmt.Fprintf(w, "Total: %d %s\n", total, noun)
	return nil
}
