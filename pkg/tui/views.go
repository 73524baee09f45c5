package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/grycap/awsome-cli/pkg/browse"
)

const quitPromptText = "\nReally quit? ([::b]y[::-]/[::b]n[::-])"

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

func spinnerFrame(frame int) rune {
	return spinnerFrames[frame%len(spinnerFrames)]
}

// formatHeader renders the top bar: favorites with the active service
// highlighted, plus the current path breadcrumb
func formatHeader(s *browse.Session) string {
	var b strings.Builder
	b.WriteString("[::b]AWSOME[::-]  ")

	favs := s.FavoriteIndexes()
	if len(favs) == 0 {
		b.WriteString("[darkgray]no favorite services[-]")
	} else {
		parts := make([]string, 0, len(favs))
		for _, i := range favs {
			short := tview.Escape(s.Services[i].Catalog.Short())
			if i == s.Active {
				parts = append(parts, fmt.Sprintf("[green::b]%s[-::-]", short))
			} else {
				parts = append(parts, short)
			}
		}
		b.WriteString(strings.Join(parts, " · "))
	}

	b.WriteString("  [darkgray]Space: services[-]")
	if p := s.Path.String(); p != "" {
		b.WriteString(fmt.Sprintf("  [aqua]%s[-]", tview.Escape(p)))
	}
	return b.String()
}

// formatStatus colors the status line by loading phase and prepends a
// spinner frame while a fetch is pending
func formatStatus(s *browse.Session) string {
	msg := tview.Escape(s.Status)
	switch {
	case s.Loading():
		return fmt.Sprintf("[yellow]%c %s[-]", spinnerFrame(s.Frame), msg)
	case s.Phase == browse.PhaseError:
		return fmt.Sprintf("[red]%s[-]", msg)
	case s.Phase == browse.PhaseLoaded:
		return fmt.Sprintf("[green]%s[-]", msg)
	default:
		return msg
	}
}

// formatPicker renders the service selection popup with the highlight bar
// and favorite stars
func formatPicker(s *browse.Session) string {
	if len(s.Services) == 0 {
		return "[darkgray]Connecting to AWS...[-]"
	}

	var b strings.Builder
	for i, svc := range s.Services {
		cursor := "  "
		if i == s.PickerIdx {
			cursor = "> "
		}
		star := "  "
		if svc.Favorite {
			star = "★ "
		}
		line := cursor + star + svc.Catalog.Title()
		if i == s.PickerIdx {
			b.WriteString(fmt.Sprintf("[black:aqua]%s[-:-]\n", tview.Escape(line)))
		} else {
			b.WriteString(tview.Escape(line) + "\n")
		}
	}
	b.WriteString("\n[darkgray]↑/↓ move · Enter select · f favorite · Esc close[-]")
	return b.String()
}

// formatDetail renders the detail popup content and its border title
func formatDetail(s *browse.Session) (text, title string) {
	title = " Details "
	if s.Detail.Title != "" {
		title = fmt.Sprintf(" %s ", s.Detail.Title)
	}
	if s.Detail.Loading {
		return fmt.Sprintf("[yellow]%c Loading details...[-]", spinnerFrame(s.Frame)), title
	}
	if len(s.Detail.Fields) == 0 {
		return "[darkgray]No details available[-]", title
	}

	var b strings.Builder
	offset := s.Detail.Offset
	if offset > len(s.Detail.Fields) {
		offset = len(s.Detail.Fields)
	}
	for _, f := range s.Detail.Fields[offset:] {
		b.WriteString(fmt.Sprintf("[yellow]%s:[-] %s\n", tview.Escape(f.Key), tview.Escape(f.Value)))
	}
	b.WriteString("\n[darkgray]j/k scroll · Esc close[-]")
	return b.String(), title
}
