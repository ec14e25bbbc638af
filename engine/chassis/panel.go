package chassis

import (
	"math"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/events"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/types"
)

// Field names a user-editable chassis field.
type Field int

const (
	FieldTonnage Field = iota
	FieldOmni
	FieldBaseType
	FieldMotiveType
	FieldStructure
	FieldEngine
	FieldGyro
	FieldCockpit
	FieldEnhancement
	FieldFullHeadEject
	FieldReset
)

var fieldNames = map[Field]string{
	FieldTonnage:       "tonnage",
	FieldOmni:          "omni",
	FieldBaseType:      "base type",
	FieldMotiveType:    "motive type",
	FieldStructure:     "structure",
	FieldEngine:        "engine",
	FieldGyro:          "gyro",
	FieldCockpit:       "cockpit",
	FieldEnhancement:   "enhancement",
	FieldFullHeadEject: "full head eject",
	FieldReset:         "reset",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Panel holds the chassis field state of one unit. It never touches the
// unit record: listeners apply the changes it announces.
type Panel struct {
	tm  tech.Manager
	bus *events.Bus

	up  Upstream
	sel Selection

	omni          bool
	fullHeadEject bool
	resetEnabled  bool
	customization bool

	opts Options
}

// NewPanel creates a panel for a 20 ton biped and resolves its options.
func NewPanel(tm tech.Manager) *Panel {
	p := &Panel{
		tm:  tm,
		bus: events.NewBus(),
		up:  Upstream{Tonnage: MinTonnage, EngineRating: MinTonnage},
		sel: Selection{
			Structure: types.Structure{Type: types.StructureStandard},
			Engine:    types.Engine{Rating: MinTonnage, Type: types.EngineNormal},
			Gyro:      types.GyroStandard,
			Cockpit:   types.CockpitStandard,
		},
	}
	p.Recompute()
	return p
}

// AddListener registers l for change notifications.
func (p *Panel) AddListener(l events.Listener) { p.bus.Add(l) }

// RemoveListener unregisters l.
func (p *Panel) RemoveListener(l events.Listener) bool { return p.bus.Remove(l) }

// DrainEvents returns the changes announced since the last call.
func (p *Panel) DrainEvents() []types.Event { return p.bus.Drain() }

// LoadFrom rebuilds the field state from a unit and resolves all options.
// Values the unit holds that are not legal options fall back to the first
// option.
func (p *Panel) LoadFrom(u *types.Unit) {
	p.up = Upstream{
		Base:         u.Base,
		Motive:       u.Motive,
		Tonnage:      int(math.Ceil(u.Tonnage)),
		Primitive:    u.Primitive,
		Industrial:   u.Industrial,
		EngineRating: u.Engine.Rating,
	}
	if catalog.BaseTypeName(p.up.Base) == "Unknown" {
		p.up.Base = types.BaseStandard
	}
	if int(p.up.Motive) >= len(catalog.MotiveNames(p.up.Base)) || p.up.Motive < 0 {
		p.up.Motive = 0
	}
	p.sel = Selection{
		Structure:   u.Structure,
		Engine:      u.Engine,
		Gyro:        u.Gyro,
		Cockpit:     u.Cockpit,
		Enhancement: u.Enhancement,
	}
	p.omni = u.Omni
	p.fullHeadEject = u.FullHeadEject
	p.resetEnabled = u.Omni
	p.Recompute()
}

// Recompute regenerates every dependent option list from the current
// upstream fields. Calling it twice in a row changes nothing.
func (p *Panel) Recompute() {
	p.opts = Resolve(p.up, p.sel, p.tm)
	p.sel = p.opts.Selection()
}

// SetAsCustomization locks tonnage, base type and motive type, for editing
// an existing design.
func (p *Panel) SetAsCustomization() {
	p.customization = true
}

// SetEngineRating changes the rating engine options are built at. It is
// derived state, so no change is announced. The selected engine type and
// tech base carry over when the rating crosses into large engines.
func (p *Panel) SetEngineRating(rating int) {
	p.up.EngineRating = rating
	clan := p.sel.Engine.Flags&types.EngineFlagClan != 0
	p.sel.Engine.Rating = rating
	p.sel.Engine.Flags = catalog.EngineFlagsFor(rating, clan)
	p.Recompute()
}

// Options returns the resolved option lists.
func (p *Panel) Options() Options { return p.opts }

func (p *Panel) Tonnage() int                   { return p.up.Tonnage }
func (p *Panel) BaseType() types.BaseType       { return p.up.Base }
func (p *Panel) MotiveType() types.MotiveType   { return p.up.Motive }
func (p *Panel) EngineRating() int              { return p.up.EngineRating }
func (p *Panel) IsSuperheavy() bool             { return p.up.Superheavy() }
func (p *Panel) IsPrimitive() bool              { return p.up.Primitive }
func (p *Panel) IsIndustrial() bool             { return p.up.Industrial }
func (p *Panel) IsCustomization() bool          { return p.customization }
func (p *Panel) ResetEnabled() bool             { return p.resetEnabled }
func (p *Panel) Structure() types.Structure     { return p.opts.SelectedStructure() }
func (p *Panel) Gyro() types.GyroType           { return p.opts.SelectedGyro() }
func (p *Panel) Cockpit() types.CockpitType     { return p.opts.SelectedCockpit() }
func (p *Panel) Enhancement() types.Enhancement { return p.opts.SelectedEnhancement() }

// EntityType derives the unit class from base and motive type.
func (p *Panel) EntityType() types.EntityType {
	return catalog.EntityTypeFor(p.up.Base, p.up.Motive)
}

// Engine returns the selected engine at the current rating.
func (p *Panel) Engine() types.Engine {
	e := p.opts.SelectedEngine()
	e.Rating = p.up.EngineRating
	return e
}

// IsOmni reports the omni flag; it only counts while omni is available.
func (p *Panel) IsOmni() bool {
	return p.omni && p.opts.OmniEnabled
}

// HasFullHeadEject reports the head-eject flag; it only counts while the
// system is available. The checked state itself survives unavailability.
func (p *Panel) HasFullHeadEject() bool {
	return p.fullHeadEject && p.opts.FullHeadEjectEnabled
}

// FullHeadEjectChecked returns the raw checked state.
func (p *Panel) FullHeadEjectChecked() bool { return p.fullHeadEject }

// OnFieldChanged applies a user edit, announces exactly one change to the
// listeners and then recomputes all dependent fields. It returns false, and
// does nothing, when the value is not a selectable choice for the field.
func (p *Panel) OnFieldChanged(field Field, value any) bool {
	switch field {
	case FieldTonnage:
		t, ok := toInt(value)
		if !ok || p.customization || t < p.opts.MinTonnage || t > p.opts.MaxTonnage {
			return false
		}
		p.up.Tonnage = t
		p.bus.TonnageChanged(float64(t))

	case FieldOmni:
		v, ok := value.(bool)
		if !ok || !p.opts.OmniEnabled {
			return false
		}
		p.omni = v
		p.bus.OmniChanged(p.IsOmni())

	case FieldBaseType:
		b, ok := value.(types.BaseType)
		if !ok || p.customization || !p.opts.BaseTypeEnabled || len(catalog.MotiveNames(b)) == 0 {
			return false
		}
		p.up.Base = b
		if int(p.up.Motive) >= len(catalog.MotiveNames(b)) {
			p.up.Motive = 0
		}
		p.bus.TypeChanged(p.up.Base, p.up.Motive, p.EntityType())

	case FieldMotiveType:
		m, ok := value.(types.MotiveType)
		if !ok || p.customization || m < 0 || int(m) >= len(catalog.MotiveNames(p.up.Base)) {
			return false
		}
		p.up.Motive = m
		p.bus.TypeChanged(p.up.Base, p.up.Motive, p.EntityType())

	case FieldStructure:
		s, ok := value.(types.Structure)
		if !ok {
			return false
		}
		i, found := p.findStructure(s)
		if !found {
			return false
		}
		p.sel.Structure = p.opts.Structures[i]
		p.opts.Structure = i
		p.bus.StructureChanged(p.Structure())

	case FieldEngine:
		e, ok := value.(types.Engine)
		if !ok {
			return false
		}
		i, found := p.findEngine(e)
		if !found {
			return false
		}
		p.sel.Engine = p.opts.Engines[i]
		p.opts.Engine = i
		p.bus.EngineChanged(p.Engine())

	case FieldGyro:
		g, ok := value.(types.GyroType)
		if !ok {
			return false
		}
		i, found := find(p.opts.Gyros, g)
		if !found {
			return false
		}
		p.sel.Gyro = g
		p.opts.Gyro = i
		p.bus.GyroChanged(g)

	case FieldCockpit:
		c, ok := value.(types.CockpitType)
		if !ok {
			return false
		}
		i, found := find(p.opts.Cockpits, c)
		if !found {
			return false
		}
		p.sel.Cockpit = c
		p.opts.Cockpit = i
		p.bus.CockpitChanged(c)

	case FieldEnhancement:
		e, ok := value.(types.Enhancement)
		if !ok {
			return false
		}
		i, found := find(p.opts.Enhancements, e)
		if !found {
			return false
		}
		p.sel.Enhancement = e
		p.opts.Enhancement = i
		p.bus.EnhancementChanged(e)

	case FieldFullHeadEject:
		v, ok := value.(bool)
		if !ok || !p.opts.FullHeadEjectEnabled {
			return false
		}
		p.fullHeadEject = v
		p.bus.FullHeadEjectChanged(v)

	case FieldReset:
		if !p.resetEnabled {
			return false
		}
		p.bus.ResetChassis()

	default:
		return false
	}
	p.Recompute()
	return true
}

func (p *Panel) SetTonnage(t int) bool                   { return p.OnFieldChanged(FieldTonnage, t) }
func (p *Panel) SetOmni(omni bool) bool                  { return p.OnFieldChanged(FieldOmni, omni) }
func (p *Panel) SetBaseType(b types.BaseType) bool       { return p.OnFieldChanged(FieldBaseType, b) }
func (p *Panel) SetMotiveType(m types.MotiveType) bool   { return p.OnFieldChanged(FieldMotiveType, m) }
func (p *Panel) SetStructure(s types.Structure) bool     { return p.OnFieldChanged(FieldStructure, s) }
func (p *Panel) SetEngine(e types.Engine) bool           { return p.OnFieldChanged(FieldEngine, e) }
func (p *Panel) SetGyro(g types.GyroType) bool           { return p.OnFieldChanged(FieldGyro, g) }
func (p *Panel) SetCockpit(c types.CockpitType) bool     { return p.OnFieldChanged(FieldCockpit, c) }
func (p *Panel) SetEnhancement(e types.Enhancement) bool { return p.OnFieldChanged(FieldEnhancement, e) }
func (p *Panel) SetFullHeadEject(eject bool) bool        { return p.OnFieldChanged(FieldFullHeadEject, eject) }
func (p *Panel) Reset() bool                             { return p.OnFieldChanged(FieldReset, nil) }

func (p *Panel) findStructure(s types.Structure) (int, bool) {
	want := catalog.NormalizeStructure(s)
	for i, cur := range p.opts.Structures {
		if catalog.NormalizeStructure(cur) == want {
			return i, true
		}
	}
	return 0, false
}

func (p *Panel) findEngine(e types.Engine) (int, bool) {
	for i, cur := range p.opts.Engines {
		if catalog.SameEngine(cur, e) {
			return i, true
		}
	}
	return 0, false
}

func find[T comparable](list []T, v T) (int, bool) {
	for i, cur := range list {
		if cur == v {
			return i, true
		}
	}
	return 0, false
}

// toInt converts an any value to int, handling float64 from parsed input.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(math.Ceil(n)), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
