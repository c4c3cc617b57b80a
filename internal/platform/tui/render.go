package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Play screen styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	tileStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1).
			MarginRight(1)

	vowelTileStyle = tileStyle.
			Background(lipgloss.Color("208"))

	clockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	clockLowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(18)

	submittedWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	zappedWordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true)

	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	zapStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// lowTime is when the clock turns red.
const lowTime = 10

// messageKind selects the style for the status line.
type messageKind int

const (
	messageInfo messageKind = iota
	messageError
	messageZap
	messageOver
)

func (k messageKind) style() lipgloss.Style {
	switch k {
	case messageError:
		return errorStyle
	case messageZap:
		return zapStyle
	case messageOver:
		return overStyle
	default:
		return infoStyle
	}
}

// renderTiles draws the letters as tiles, vowels highlighted.
func renderTiles(letters []rune, isVowel func(rune) bool) string {
	tiles := make([]string, len(letters))
	for i, r := range letters {
		style := tileStyle
		if isVowel(r) {
			style = vowelTileStyle
		}
		tiles[i] = style.Render(string(r))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderClock formats seconds as m:ss.
func renderClock(secs int) string {
	style := clockStyle
	if secs <= lowTime {
		style = clockLowStyle
	}
	return style.Render(formatClock(secs))
}

func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderColumn draws a titled word list.
func renderColumn(title string, words []string, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n")
	if len(words) == 0 {
		b.WriteString(helpStyle.Render("-"))
	}
	for i, w := range words {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Render(w))
	}
	return columnStyle.Render(b.String())
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
