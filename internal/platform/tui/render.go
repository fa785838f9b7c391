package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBlack:        lipgloss.Color("16"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkGray:     lipgloss.Color("239"),
	core.ColorBrown:        lipgloss.Color("130"),
	core.ColorDarkGreen:    lipgloss.Color("28"),
	core.ColorSky:          lipgloss.Color("75"),
}

// stylePair identifies a foreground/background combination.
type stylePair struct {
	fg, bg core.Color
}

var (
	stylesMu sync.Mutex
	styles   = map[stylePair]lipgloss.Style{}
)

// styleFor returns the cached lipgloss style for a color pair.
// SSH sessions render concurrently, so the cache is locked.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := stylePair{fg, bg}

	stylesMu.Lock()
	defer stylesMu.Unlock()

	if st, ok := styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		st = st.Background(c)
	}
	styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
