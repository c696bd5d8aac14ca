package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
)

// RenderDetail writes a detail view as plain text, one block per section.
func RenderDetail(w io.Writer, d viewmodel.DetailView) error {
	blocks := make([]string, 0, len(d.Sections))

	for _, s := range d.Sections {
		var lines []string
		switch s.Kind {
		case viewmodel.SectionHeader:
			lines = append(lines, TitleStyle.Render(themes.KindIcon(d.Kind)+" "+s.Title))
			for _, f := range s.Fields {
				lines = append(lines, f.Label+": "+f.Value)
			}

		case viewmodel.SectionIdentity, viewmodel.SectionFooter:
			for _, f := range s.Fields {
				lines = append(lines, SubtleStyle.Render(f.Label+": "+f.Value))
			}
			for _, item := range s.Items {
				lines = append(lines, SubtleStyle.Render(item))
			}

		default:
			lines = append(lines, TitleStyle.Render(s.Title))
			for _, f := range s.Fields {
				lines = append(lines, "  "+f.Label+": "+f.Value)
			}
			if s.Text != "" {
				lines = append(lines, "  "+s.Text)
			}
			for i, item := range s.Items {
				prefix := "  • "
				if s.Kind == viewmodel.SectionExamples {
					prefix = fmt.Sprintf("  %d. ", i+1)
				}
				lines = append(lines, prefix+item)
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	_, err := fmt.Fprintln(w, strings.Join(blocks, "\n\n"))
	return err
}
