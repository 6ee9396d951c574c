package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/navigation"
	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/registry"
)

const browseHelp = `Commands:
  enter                  open the portfolio from the home page
  goto SECTION           jump to a home page section (home, gallery, services, about, contact)
  portfolio              show the portfolio immediately
  photographer NAME      toggle the photographer filter
  category NAME          toggle the category filter
  search TEXT            set the search text (empty clears it)
  reset                  reset all filters
  session NAME           open a session
  open N                 open photo N of the session in the lightbox
  next | prev | close    lightbox navigation
  key KEY                send Escape, ArrowLeft or ArrowRight
  back                   go back one level
  state                  print the current view
  help                   print this help
  quit                   leave the browser`

var (
	errQuit          = errors.New("quit")
	errUnknownInput  = errors.New("unknown command")
	errMissingArg    = errors.New("missing argument")
	errInvalidNumber = errors.New("photo number must be a positive integer")
)

// newBrowseCmd creates a new command for browsing the portfolio in the terminal
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the portfolio in the terminal",
		Long: `Browse the portfolio interactively. The browser runs the same navigation
state machine as the web site, including its delayed transitions.`,
		Run: func(cmd *cobra.Command, args []string) {
			photos := loadPhotos()
			runBrowser(cmd.InOrStdin(), cmd.OutOrStdout(), photos)
		},
	}
}

// syncWriter serializes output from the prompt and from delayed transitions
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type terminalViewport struct {
	w io.Writer
}

func (v terminalViewport) ScrollTo(anchor string) {
	if anchor == "" {
		fmt.Fprintln(v.w, "(scrolled to top)")
		return
	}
	fmt.Fprintf(v.w, "(scrolled to #%s)\n", anchor)
}

// runBrowser reads commands from in until quit or end of input
func runBrowser(in io.Reader, out io.Writer, photos []models.PhotoRecord, opts ...navigation.Option) {
	w := &syncWriter{w: out}
	opts = append([]navigation.Option{
		navigation.WithObserver(func(s navigation.State) {
			renderState(w, photos, s)
		}),
	}, opts...)

	ctrl := navigation.NewController(photos, terminalViewport{w: w}, opts...)
	defer ctrl.Close()

	fmt.Fprintln(w, "Binx Portfolio. Type 'help' for commands.")
	renderState(w, photos, ctrl.State())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runCommand(ctrl, w, line); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
}

func runCommand(ctrl *navigation.Controller, w io.Writer, line string) error {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(w, browseHelp)
		return nil
	case "state":
		renderState(w, ctrl.Photos(), ctrl.State())
		return nil
	case "key":
		consumed, err := ctrl.HandleKey(arg)
		if err != nil {
			return err
		}
		if !consumed {
			fmt.Fprintf(w, "(key %s ignored)\n", arg)
		}
		return nil
	}

	action, err := parseCommand(name, arg)
	if err != nil {
		return err
	}
	return ctrl.Dispatch(action)
}

// parseCommand maps a browser command to a navigation action
func parseCommand(name, arg string) (navigation.Action, error) {
	requireArg := func(a navigation.Action) (navigation.Action, error) {
		if arg == "" {
			return nil, fmt.Errorf("%w for %s", errMissingArg, name)
		}
		return a, nil
	}

	switch strings.ToLower(name) {
	case "enter":
		return navigation.EnterGallery{}, nil
	case "goto":
		return navigation.Navigate{Section: arg}, nil
	case "portfolio":
		return navigation.ShowPortfolio{}, nil
	case "photographer":
		return requireArg(navigation.SelectPhotographer{Name: arg})
	case "category":
		return requireArg(navigation.SelectCategory{Name: arg})
	case "search":
		return navigation.SetQuery{Query: arg}, nil
	case "reset":
		return navigation.ResetFilters{}, nil
	case "session":
		return requireArg(navigation.SelectSession{Name: arg})
	case "open":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, errInvalidNumber
		}
		return navigation.OpenLightbox{Index: n - 1}, nil
	case "next":
		return navigation.NextPhoto{}, nil
	case "prev":
		return navigation.PrevPhoto{}, nil
	case "close":
		return navigation.CloseLightbox{}, nil
	case "back":
		return navigation.Back{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownInput, name)
	}
}

// renderState prints the view of s
func renderState(w io.Writer, photos []models.PhotoRecord, s navigation.State) {
	switch s.Mode() {
	case navigation.ModeHome:
		if s.Exiting {
			fmt.Fprintln(w, "[HOME] entering the gallery...")
			return
		}
		fmt.Fprintf(w, "[HOME] %d featured photos. Type 'enter' to open the portfolio.\n", len(portfolio.Featured(photos)))

	case navigation.ModeIndex:
		f := s.Filter
		fmt.Fprintf(w, "[INDEX] photographer=%s category=%s search=%q\n", orAll(f.Photographer), orAll(f.Category), f.Query)
		if s.NoResults(photos) {
			fmt.Fprintln(w, "  No sessions match your filters. Type 'reset' to clear them.")
			return
		}
		for _, session := range s.Groups(photos).Sessions() {
			cover := session.Cover()
			fmt.Fprintf(w, "  %s (%d photos) %s // %s\n", session.Name, session.Count(), cover.Category, cover.Photographer)
		}

	case navigation.ModeSession:
		session := s.SessionPhotos(photos)
		fmt.Fprintf(w, "[SESSION] %s (%d photos)\n", s.Session, len(session))
		for i, p := range session {
			fmt.Fprintf(w, "  %d. %s\n", i+1, p.Title)
		}

	case navigation.ModeLightbox:
		session := s.SessionPhotos(photos)
		p := session[s.Lightbox]
		fmt.Fprintf(w, "[LIGHTBOX] %d / %d %s // %s\n", s.Lightbox+1, len(session), p.Title, p.Photographer)
	}
}

func orAll(v string) string {
	if v == "" {
		return registry.All
	}
	return v
}
