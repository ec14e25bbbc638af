package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/VicenteCartas/megameklab/engine"
	"github.com/VicenteCartas/megameklab/engine/unit"
)

// tab identifies one of the editor panels above the output log.
type tab int

const (
	tabStructure tab = iota
	tabArmor
)

var tabNames = []string{"Structure", "Armor"}

func (t tab) next() tab { return (t + 1) % tab(len(tabNames)) }

// parseTab accepts a tab name or its first letter.
func parseTab(name string) (tab, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i, n := range tabNames {
		if strings.HasPrefix(strings.ToLower(n), name) {
			return tab(i), true
		}
	}
	return 0, false
}

func renderTabBar(active tab) string {
	parts := make([]string, len(tabNames))
	for i, n := range tabNames {
		if tab(i) == active {
			parts[i] = styleTabActive.Render(n)
		} else {
			parts[i] = styleTabInactive.Render(n)
		}
	}
	return strings.Join(parts, " ") + styleSystem.Render("  (tab to switch)")
}

const fieldColumn = 13

// structureLines renders the chassis panel: tonnage, one row per option
// field with the selection highlighted, and the toggles.
func structureLines(e *engine.Engine, width int) []string {
	p := e.Structure.Panel
	o := p.Options()

	lines := []string{
		styleFieldName.Render(pad("Tonnage", fieldColumn)) +
			styleSelected.Render(strconv.Itoa(p.Tonnage())) +
			styleChoice.Render(fmt.Sprintf("  (%d-%d)", o.MinTonnage, o.MaxTonnage)),
	}
	for _, f := range engine.Fields {
		labels, sel, _ := e.OptionLabels(f)
		lines = append(lines, optionRow(f, labels, sel, width))
	}

	reset := "-"
	if p.ResetEnabled() {
		reset = "available"
	}
	eject := onOff(p.HasFullHeadEject())
	if !o.FullHeadEjectEnabled {
		eject += " (locked)"
	}
	lines = append(lines, styleFieldName.Render(pad("Toggles", fieldColumn))+styleChoice.Render(
		fmt.Sprintf("omni %s  head eject %s  reset %s", onOff(p.IsOmni()), eject, reset)))
	return lines
}

// optionRow lists the labels of one field after its name. Labels that do
// not fit in width are replaced by an ellipsis.
func optionRow(field string, labels []string, sel, width int) string {
	var b strings.Builder
	b.WriteString(styleFieldName.Render(pad(strings.ToUpper(field[:1])+field[1:], fieldColumn)))

	used := fieldColumn
	for i, l := range labels {
		text := l
		if i == sel {
			text = "[" + l + "]"
		}
		w := runewidth.StringWidth(text) + 1
		if width > 0 && used+w > width {
			b.WriteString(styleChoice.Render("…"))
			break
		}
		if i == sel {
			b.WriteString(styleSelected.Render(text))
		} else {
			b.WriteString(styleChoice.Render(text))
		}
		b.WriteString(" ")
		used += w
	}
	return strings.TrimRight(b.String(), " ")
}

// armorLines renders the armor panel as a table of locations. Locations at
// their cap are highlighted.
func armorLines(e *engine.Engine) []string {
	rows := e.Armor.Rows()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleFieldName).
		Headers("Loc", "IS", "Front", "Rear", "Max").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				base = base.Align(lipgloss.Right)
			}
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styleFieldName)
			case row >= 0 && row < len(rows) && rows[row].Front+rows[row].Rear == rows[row].Max:
				return base.Inherit(styleSelected)
			}
			return base.Inherit(styleChoice)
		})
	for _, r := range rows {
		rear := "-"
		if r.HasRear {
			rear = strconv.Itoa(r.Rear)
		}
		t.Row(r.Name, strconv.Itoa(r.Internal), strconv.Itoa(r.Front), rear, strconv.Itoa(r.Max))
	}

	lines := strings.Split(t.Render(), "\n")
	return append(lines, styleFieldName.Render(fmt.Sprintf("Total %d / %d",
		unit.TotalArmor(e.Unit), unit.TotalMaxArmor(e.Unit))))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
