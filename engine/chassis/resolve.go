// Package chassis keeps the interdependent chassis fields of a Mech
// consistent. Resolve regenerates every dependent option list from the
// upstream fields and the tech-legality context; Panel holds the field state
// and notifies listeners of each edit.
package chassis

import (
	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/types"
)

// Tonnage bounds.
const (
	MinTonnage           = 20
	MinUltraLightTonnage = 10
	MaxTonnage           = 100
	MaxLAMTonnage        = 55
	MaxSuperheavyTonnage = 200
)

// Upstream holds the fields every dependent option list is derived from.
type Upstream struct {
	Base         types.BaseType
	Motive       types.MotiveType
	Tonnage      int
	Primitive    bool
	Industrial   bool
	EngineRating int
}

// Superheavy reports whether the tonnage is above the standard maximum.
func (u Upstream) Superheavy() bool {
	return u.Tonnage > MaxTonnage
}

// Selection is the preferred value of each dependent field. Resolve keeps a
// preferred value only while it remains an option.
type Selection struct {
	Structure   types.Structure
	Engine      types.Engine
	Gyro        types.GyroType
	Cockpit     types.CockpitType
	Enhancement types.Enhancement
}

// Options is the resolved state of all dependent fields. Each list is
// non-empty and each index points into its list.
type Options struct {
	MinTonnage int
	MaxTonnage int

	Structures            []types.Structure
	Structure             int
	ShowStructureTechBase bool

	Engines []types.Engine
	Engine  int

	Gyros []types.GyroType
	Gyro  int

	Cockpits []types.CockpitType
	Cockpit  int

	Enhancements            []types.Enhancement
	Enhancement             int
	ShowEnhancementTechBase bool

	FullHeadEjectEnabled bool
	OmniEnabled          bool
	BaseTypeEnabled      bool
}

// SelectedStructure returns the selected structure.
func (o Options) SelectedStructure() types.Structure { return o.Structures[o.Structure] }

// SelectedEngine returns the selected engine option.
func (o Options) SelectedEngine() types.Engine { return o.Engines[o.Engine] }

// SelectedGyro returns the selected gyro.
func (o Options) SelectedGyro() types.GyroType { return o.Gyros[o.Gyro] }

// SelectedCockpit returns the selected cockpit.
func (o Options) SelectedCockpit() types.CockpitType { return o.Cockpits[o.Cockpit] }

// SelectedEnhancement returns the selected enhancement.
func (o Options) SelectedEnhancement() types.Enhancement { return o.Enhancements[o.Enhancement] }

// Selection returns the selected value of every dependent field.
func (o Options) Selection() Selection {
	return Selection{
		Structure:   o.SelectedStructure(),
		Engine:      o.SelectedEngine(),
		Gyro:        o.SelectedGyro(),
		Cockpit:     o.SelectedCockpit(),
		Enhancement: o.SelectedEnhancement(),
	}
}

// Resolve regenerates every dependent option list in a fixed order:
// tonnage bounds, structure, engine, gyro, cockpit, enhancement, head eject.
// No step reads a field resolved after it. Resolve never fails: a
// preferred value that is no longer an option falls back to the first one.
func Resolve(up Upstream, pref Selection, tm tech.Manager) Options {
	var o Options
	o.MinTonnage, o.MaxTonnage = tonnageBounds(up, tm)

	o.Structures, o.ShowStructureTechBase = structureOptions(up, tm)
	o.Structure = indexOf(len(o.Structures), func(i int) bool {
		return catalog.NormalizeStructure(o.Structures[i]) == catalog.NormalizeStructure(pref.Structure)
	})

	o.Engines = engineOptions(up, tm)
	o.Engine = indexOf(len(o.Engines), func(i int) bool {
		return catalog.SameEngine(o.Engines[i], pref.Engine)
	})

	o.Gyros = gyroOptions(up, tm)
	o.Gyro = indexOf(len(o.Gyros), func(i int) bool { return o.Gyros[i] == pref.Gyro })

	o.Cockpits = cockpitOptions(up, tm)
	o.Cockpit = indexOf(len(o.Cockpits), func(i int) bool { return o.Cockpits[i] == pref.Cockpit })

	o.Enhancements, o.ShowEnhancementTechBase = enhancementOptions(up, tm)
	o.Enhancement = indexOf(len(o.Enhancements), func(i int) bool {
		return o.Enhancements[i] == pref.Enhancement
	})

	o.FullHeadEjectEnabled = fullHeadEjectAvailable(o.SelectedCockpit(), tm)
	o.OmniEnabled = !up.Primitive && !up.Industrial && up.Base != types.BaseLAM &&
		tm.IsLegal(tech.OmniAdvancement())
	o.BaseTypeEnabled = !up.Primitive && !up.Industrial
	return o
}

// indexOf returns the first index matching, or 0.
func indexOf(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return 0
}

func tonnageBounds(up Upstream, tm tech.Manager) (int, int) {
	lo, hi := MinTonnage, MaxTonnage
	switch {
	case up.Base == types.BaseLAM:
		hi = MaxLAMTonnage
	case up.Base == types.BaseStandard && tm.IsLegal(tech.SuperheavyAdvancement()):
		hi = MaxSuperheavyTonnage
	}
	if tm.IsLegal(tech.UltraLightAdvancement()) {
		lo = MinUltraLightTonnage
	}
	return lo, hi
}

// structureOptions lists the structures for the chassis. Industrial and
// primitive chassis have a single fixed choice.
func structureOptions(up Upstream, tm tech.Manager) ([]types.Structure, bool) {
	clan := tm.IsClan()
	mixed := tm.IsMixedTech()
	if up.Industrial {
		return []types.Structure{{Type: types.StructureIndustrial, Clan: clan}}, mixed
	}
	if up.Primitive {
		return []types.Structure{{Type: types.StructureStandard, Clan: clan}}, mixed
	}

	catalogTypes := catalog.StructureTypes
	if up.Superheavy() {
		catalogTypes = catalog.SuperheavyStructureTypes
	}
	var out []types.Structure
	for _, st := range catalogTypes {
		s := types.Structure{Type: st, Clan: clan}
		// LAMs cannot use bulky structure.
		if up.Base == types.BaseLAM && catalog.IsBulkyStructureType(st) {
			continue
		}
		if catalog.StructureExists(s) && tm.IsLegal(tech.StructureAdvancement(s)) {
			out = append(out, s)
		}
		if mixed && !catalog.IsBasicStructure(st) {
			alt := types.Structure{Type: st, Clan: !clan}
			if catalog.StructureExists(alt) && tm.IsLegal(tech.StructureAdvancement(alt)) {
				out = append(out, alt)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, types.Structure{Type: types.StructureStandard, Clan: clan})
	}
	return out, mixed
}

// engineOptions instantiates each candidate engine type at the chassis
// rating. Under mixed tech the opposite tech-base version follows its
// sibling when the two differ in construction.
func engineOptions(up Upstream, tm tech.Manager) []types.Engine {
	experimental := tm.TechLevel() >= types.LevelExperimental
	flags := catalog.EngineFlagsFor(up.EngineRating, tm.IsClan())
	altFlags := flags ^ types.EngineFlagClan

	candidates := catalog.EngineTypes
	switch {
	case up.Primitive || (up.Industrial && !experimental):
		candidates = catalog.PrimitiveEngineTypes
	case up.Base == types.BaseLAM:
		candidates = catalog.LAMEngineTypes
	}
	// Primitive and industrial Mechs can use non-fusion engines, as can
	// non-superheavies under experimental rules.
	allowNonFusion := !up.Superheavy() && (up.Industrial || up.Primitive || experimental)

	var out []types.Engine
	for _, et := range candidates {
		e, ok := catalog.NewEngine(up.EngineRating, et, flags)
		if ok && (catalog.IsFusion(e) || allowNonFusion) {
			out = append(out, e)
		}
		if tm.IsMixedTech() && catalog.SideTorsoSlots(e) > 0 {
			alt, ok := catalog.NewEngine(up.EngineRating, et, altFlags)
			if ok && (catalog.IsFusion(alt) || experimental) {
				out = append(out, alt)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, types.Engine{Rating: up.EngineRating, Type: types.EngineNormal, Flags: flags})
	}
	return out
}

func gyroOptions(up Upstream, tm tech.Manager) []types.GyroType {
	switch {
	case up.Superheavy():
		return []types.GyroType{types.GyroSuperheavy}
	case up.Primitive || up.Industrial:
		return []types.GyroType{types.GyroStandard}
	}
	var out []types.GyroType
	for g := types.GyroStandard; g <= types.GyroNone; g++ {
		if g == types.GyroXL && up.Base == types.BaseLAM {
			continue
		}
		if tm.IsLegal(tech.GyroAdvancement(g)) {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		out = append(out, types.GyroStandard)
	}
	return out
}

// cockpitOptions resolves the cockpit list by a fixed priority chain; only
// the general case consults legality.
func cockpitOptions(up Upstream, tm tech.Manager) []types.CockpitType {
	superheavy := up.Superheavy()
	switch {
	case up.Base == types.BaseStandard && up.Motive == types.MotiveTripod:
		if superheavy {
			return []types.CockpitType{types.CockpitSuperheavyTripod}
		}
		return []types.CockpitType{types.CockpitTripod}
	case up.Base == types.BaseLAM:
		return []types.CockpitType{types.CockpitStandard, types.CockpitSmall}
	case up.Base == types.BaseQuadVee:
		return []types.CockpitType{types.CockpitQuadVee}
	case superheavy:
		if up.Industrial {
			return []types.CockpitType{types.CockpitSuperheavyIndustrial}
		}
		return []types.CockpitType{types.CockpitSuperheavy}
	case up.Primitive:
		if up.Industrial {
			return []types.CockpitType{types.CockpitPrimitiveIndustrial}
		}
		return []types.CockpitType{types.CockpitPrimitive}
	case up.Industrial:
		return []types.CockpitType{types.CockpitIndustrial}
	}
	var out []types.CockpitType
	for _, c := range catalog.GeneralCockpits {
		if tm.IsLegal(tech.CockpitAdvancement(c)) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		out = append(out, types.CockpitStandard)
	}
	return out
}

// enhancementOptions always starts with the "none" choice.
func enhancementOptions(up Upstream, tm tech.Manager) ([]types.Enhancement, bool) {
	out := []types.Enhancement{types.EnhancementNone}
	if up.Superheavy() || up.Primitive {
		return out, false
	}
	if up.Industrial {
		if tm.IsLegal(tech.EnhancementAdvancement(types.EnhancementIndustrialTSM)) {
			out = append(out, types.EnhancementIndustrialTSM)
		}
		return out, false
	}
	for _, e := range catalog.Enhancements {
		if tm.IsLegal(tech.EnhancementAdvancement(e)) {
			out = append(out, e)
		}
	}
	return out, tm.IsMixedTech()
}

func fullHeadEjectAvailable(c types.CockpitType, tm tech.Manager) bool {
	switch c {
	case types.CockpitTorsoMounted, types.CockpitVRRP, types.CockpitCommandConsole:
		return false
	}
	return tm.IsLegal(tech.FullHeadEjectAdvancement())
}
