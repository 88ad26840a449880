package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/markmode/pkg/offsetmap"
)

// RenderMapTable renders the raw-to-rendered position map as a table, one
// row per raw offset, marking syntax positions.
func (s *Styles) RenderMapTable(text string, m offsetmap.PositionMap) string {
	var sb strings.Builder

	sb.WriteString(s.TableHeader.Render(fmt.Sprintf("%-6s %-8s %-9s %s", "RAW", "CHAR", "RENDERED", "CLASS")))
	sb.WriteByte('\n')
	sb.WriteString(s.TableSeparator.Render(strings.Repeat("─", 34)))
	sb.WriteByte('\n')

	for i := 0; i < len(text); i++ {
		rendered := m.RawToRendered[i]
		syntax := isSyntaxAt(m, i)

		class := "content"
		renderedCol := s.RenderedOffset.Render(fmt.Sprintf("%-9d", rendered))
		if syntax {
			class = s.SyntaxRun.Render("syntax")
			renderedCol = s.Dim.Render(fmt.Sprintf("%-9d", rendered))
		}

		sb.WriteString(fmt.Sprintf("%s %-8s %s %s\n",
			s.RawOffset.Render(fmt.Sprintf("%-6d", i)),
			printableChar(text[i]),
			renderedCol,
			class,
		))
	}

	return sb.String()
}

// FormatOffsetReport renders a single offset conversion result.
func (s *Styles) FormatOffsetReport(from string, offset, converted int) string {
	return fmt.Sprintf("%s %s %s %s",
		s.Dim.Render(from+" offset"),
		s.RawOffset.Render(fmt.Sprintf("%d", offset)),
		s.Dim.Render("->"),
		s.RenderedOffset.Render(fmt.Sprintf("%d", converted)),
	)
}

// isSyntaxAt reports whether raw offset i was elided by the mapper: no
// rendered position maps back to it.
func isSyntaxAt(m offsetmap.PositionMap, i int) bool {
	for _, raw := range m.RenderedToRaw[:m.RenderedLen()] {
		if raw == i {
			return false
		}
	}
	return true
}

// printableChar renders a byte for table display, escaping whitespace.
func printableChar(b byte) string {
	switch b {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case ' ':
		return "' '"
	default:
		return string(b)
	}
}
