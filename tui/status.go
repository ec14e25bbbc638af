package tui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/tech"
)

// fitBar lays out left and right text on one line of the given width. The
// right side is dropped first when space runs out, then left is truncated.
func fitBar(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	rw := runewidth.StringWidth(right)
	if runewidth.StringWidth(left)+rw+1 > width {
		right, rw = "", 0
	}
	left = runewidth.Truncate(left, width-rw, "…")
	gap := width - runewidth.StringWidth(left) - rw
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// rulesLabel summarizes the rules settings, e.g. "Standard 3050 IS".
func rulesLabel(tm tech.Manager) string {
	level := catalog.TechLevelName(tm.TechLevel())
	parts := []string{strings.ToUpper(level[:1]) + level[1:]}
	if ctx, ok := tm.(*tech.Context); ok && ctx.Year > 0 {
		parts = append(parts, strconv.Itoa(ctx.Year))
	}
	switch {
	case tm.IsMixedTech():
		parts = append(parts, "Mixed")
	case tm.IsClan():
		parts = append(parts, "Clan")
	default:
		parts = append(parts, "IS")
	}
	return strings.Join(parts, " ")
}

// renderHeader produces the title line.
func (m Model) renderHeader() string {
	title := m.engine.Header()
	if title == "" {
		title = "(unnamed)"
	}
	left := " MegaMekLab | " + title
	right := ""
	if m.engine.Structure.Panel.IsCustomization() {
		right = "refit "
	}
	return styleHeader.Width(m.width).Render(fitBar(left, right, m.width))
}

// renderStatusBar produces a full-width inverted status line with the unit
// summary on the left and the rules settings on the right.
func (m Model) renderStatusBar() string {
	left := " " + m.engine.Status()
	right := rulesLabel(m.engine.Tech) + " "
	return styleStatusBar.Width(m.width).Render(fitBar(left, right, m.width))
}
