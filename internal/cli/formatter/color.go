package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tempora/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TypeStyle returns the lipgloss style associated with an event type.
func TypeStyle(t domain.EventType) lipgloss.Style {
	switch t {
	case domain.EventClass:
		return StyleBlue
	case domain.EventStudy:
		return StyleAqua
	case domain.EventWork:
		return StyleYellow
	case domain.EventMeeting:
		return StylePurple
	case domain.EventDeadline:
		return StyleRed
	case domain.EventPersonal:
		return StyleGreen
	default:
		return StyleFg
	}
}

// TypeBadge returns a colored event type label such as "● class".
func TypeBadge(t domain.EventType) string {
	if t == "" {
		t = domain.EventOther
	}
	return TypeStyle(t).Render("● " + string(t))
}

// KindBadge marks task-derived pseudo-events apart from stored events.
func KindBadge(kind domain.InstanceKind) string {
	if kind == domain.KindTask {
		return StylePurple.Render("◆ task")
	}
	return ""
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
