package main

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/storyproof/passage/report"
)

var (
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle       = lipgloss.NewStyle().Faint(true)

	errorSevStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	warnSevStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	infoSevStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

func severityStyle(s report.Severity) lipgloss.Style {
	switch s {
	case report.SeverityError:
		return errorSevStyle
	case report.SeverityWarning:
		return warnSevStyle
	default:
		return infoSevStyle
	}
}

// excerptRunes is the context shown on each side of a located span.
const excerptRunes = 40

// renderExcerpt shows the located span inside its scene, highlighted,
// clipped to a single line of context.
func renderExcerpt(text string, start, end int) string {
	lo := start
	for n := 0; n < excerptRunes && lo > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}

	hi := end
	for n := 0; n < excerptRunes && hi < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}

	var b strings.Builder
	if lo > 0 {
		b.WriteString("…")
	}
	b.WriteString(flatten(text[lo:start]))
	b.WriteString(highlightStyle.Render(flatten(text[start:end])))
	b.WriteString(flatten(text[end:hi]))
	if hi < len(text) {
		b.WriteString("…")
	}

	return b.String()
}

var lineFolder = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// flatten folds line breaks so an excerpt stays on one line.
func flatten(s string) string {
	return lineFolder.Replace(s)
}

// preview returns the first n runes of a scene, folded to one line.
func preview(s string, n int) string {
	s = flatten(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	for i := range s {
		if n == 0 {
			return s[:i] + "…"
		}
		n--
	}

	return s
}
