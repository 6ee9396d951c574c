package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/services"
)

// newListSessionsCmd creates a new command for listing sessions
func newListSessionsCmd() *cobra.Command {
	var filter portfolio.Filter

	cmd := &cobra.Command{
		Use:   "list-sessions",
		Short: "List all sessions",
		Long: `List the sessions visible under the given filters, in the order the
portfolio shows them, with the number of photos in each.`,
		Run: func(cmd *cobra.Command, args []string) {
			initService()
			if err := listSessions(cmd.OutOrStdout(), filter); err != nil {
				log.Fatalf("Failed to list sessions: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&filter.Photographer, "photographer", "", "Only sessions with photos by this photographer")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Only sessions with photos in this category")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Case-insensitive search over title, session, photographer and category")

	return cmd
}

// listSessions displays the filtered sessions and their photos
func listSessions(w io.Writer, filter portfolio.Filter) error {
	sessions, err := services.GetSessions(filter)
	if err != nil {
		return err
	}
	total := 0

	fmt.Fprintln(w, "Sessions:")
	fmt.Fprintln(w, "===============")

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions match the filters.")
		fmt.Fprintln(w)
	}

	for _, session := range sessions {
		cover := session.Cover()
		fmt.Fprintf(w, "Session: %s\n", session.Name)
		fmt.Fprintf(w, "  - %s // %s (photos: %d)\n", cover.Category, cover.Photographer, session.Count())
		fmt.Fprintf(w, "    Cover: %s\n", cover.Title)
		total += session.Count()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d photos across %d sessions\n", total, len(sessions))
	return nil
}
