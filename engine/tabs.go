package engine

import (
	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/chassis"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/types"
)

// StructureTab pairs the chassis panel with the editor that writes its
// changes into the unit.
type StructureTab struct {
	Panel  *chassis.Panel
	unit   *types.Unit
	editor *unit.Editor
}

func newStructureTab(u *types.Unit, tm tech.Manager, r unit.Refresher) *StructureTab {
	t := &StructureTab{
		Panel: chassis.NewPanel(tm),
		unit:  u,
	}
	t.editor = unit.NewEditor(u, r, t.Panel)
	t.Panel.LoadFrom(u)
	t.Panel.AddListener(t.editor)
	return t
}

// Refresh reloads the panel from the unit record.
func (t *StructureTab) Refresh() {
	t.Panel.LoadFrom(t.unit)
}

// sync writes the panel's resolved values into the unit. Recompute may fall
// back to a first option without announcing it; this keeps the record in
// step. It reports whether the unit changed.
func (t *StructureTab) sync() bool {
	u, p := t.unit, t.Panel
	changed := false
	set := func(cond bool, apply func()) {
		if cond {
			apply()
			changed = true
		}
	}
	set(catalog.NormalizeStructure(u.Structure) != catalog.NormalizeStructure(p.Structure()), func() { u.Structure = p.Structure() })
	set(u.Engine != p.Engine(), func() { u.Engine = p.Engine() })
	set(u.Gyro != p.Gyro(), func() { u.Gyro = p.Gyro() })
	set(u.Cockpit != p.Cockpit(), func() { u.Cockpit = p.Cockpit() })
	set(u.Enhancement != p.Enhancement(), func() { u.Enhancement = p.Enhancement() })
	set(u.Omni != p.IsOmni(), func() { u.Omni = p.IsOmni() })
	set(u.FullHeadEject != p.HasFullHeadEject(), func() { u.FullHeadEject = p.HasFullHeadEject() })
	return changed
}

// ArmorRow is one location line of the armor tab.
type ArmorRow struct {
	Location types.Location
	Name     string
	Internal int
	Front    int
	Rear     int
	HasRear  bool
	Max      int
}

// ArmorTab edits per-location armor.
type ArmorTab struct {
	unit *types.Unit
	rows []ArmorRow
}

func newArmorTab(u *types.Unit) *ArmorTab {
	t := &ArmorTab{unit: u}
	t.Refresh()
	return t
}

// Refresh rebuilds the rows from the unit record.
func (t *ArmorTab) Refresh() {
	entity := unit.Entity(t.unit)
	t.rows = t.rows[:0]
	for _, loc := range catalog.Locations(entity) {
		a := t.unit.Armor[loc]
		t.rows = append(t.rows, ArmorRow{
			Location: loc,
			Name:     catalog.LocationAbbr(loc),
			Internal: catalog.InternalStructure(t.unit.Tonnage, entity, loc),
			Front:    a.Front,
			Rear:     a.Rear,
			HasRear:  catalog.HasRearArmor(loc),
			Max:      unit.MaxArmor(t.unit, loc),
		})
	}
}

// Rows returns the current rows in location order.
func (t *ArmorTab) Rows() []ArmorRow {
	return append([]ArmorRow(nil), t.rows...)
}

// Set changes the front or rear armor of one location.
func (t *ArmorTab) Set(loc types.Location, points int, rear bool) error {
	return unit.SetArmor(t.unit, loc, points, rear)
}

// Maximize fills every location to its cap. Torsos keep a quarter of the
// points for the rear.
func (t *ArmorTab) Maximize() {
	for _, loc := range catalog.Locations(unit.Entity(t.unit)) {
		limit := unit.MaxArmor(t.unit, loc)
		a := types.Armor{Front: limit}
		if catalog.HasRearArmor(loc) {
			a.Rear = limit / 4
			a.Front = limit - a.Rear
		}
		t.unit.Armor[loc] = a
	}
}

// Clear strips all armor.
func (t *ArmorTab) Clear() {
	unit.ResetArmor(t.unit)
}
