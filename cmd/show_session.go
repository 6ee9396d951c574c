package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/services"
)

// newShowSessionCmd creates a new command for showing session details
func newShowSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-session [name]",
		Short: "Show photos in a specific session",
		Long:  `Show detailed information about the photos in a session identified by its name.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			if err := showSession(cmd.OutOrStdout(), args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// showSession displays details about a specific session
func showSession(w io.Writer, name string) error {
	session, err := services.GetSession(name)
	if err != nil {
		return err
	}
	cover := session.Cover()

	fmt.Fprintf(w, "Session: %s\n", session.Name)
	fmt.Fprintf(w, "Category: %s\n", cover.Category)
	fmt.Fprintf(w, "Photographer: %s\n", cover.Photographer)
	fmt.Fprintf(w, "Photos: %d\n", session.Count())
	fmt.Fprintln(w, "================")

	for i, photo := range session.Photos {
		fmt.Fprintf(w, "%d. %s\n", i+1, photo.Title)
		fmt.Fprintf(w, "   ID: %s\n", photo.ID)
		if photo.Filename != "" {
			fmt.Fprintf(w, "   File: %s\n", photo.Filename)
		}
		if photo.Description != "" {
			fmt.Fprintf(w, "   Description: %s\n", photo.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}
