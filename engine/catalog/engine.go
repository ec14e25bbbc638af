package catalog

import (
	"fmt"

	"github.com/VicenteCartas/megameklab/types"
)

const (
	minEngineRating   = 10
	maxEngineRating   = 500
	largeEngineRating = 400
)

var engineNames = map[types.EngineType]string{
	types.EngineCombustion: "I.C.E.",
	types.EngineNormal:     "Fusion",
	types.EngineXL:         "XL",
	types.EngineXXL:        "XXL",
	types.EngineFuelCell:   "Fuel Cell",
	types.EngineLight:      "Light",
	types.EngineCompact:    "Compact",
	types.EngineFission:    "Fission",
}

// NewEngine builds an engine instance and reports whether it is a legal
// construction. Invalid engines are still returned so callers can inspect
// their side-torso slots.
func NewEngine(rating int, t types.EngineType, flags types.EngineFlag) (types.Engine, bool) {
	e := types.Engine{Rating: rating, Type: t, Flags: flags}
	return e, EngineValid(e)
}

// EngineValid checks the construction rules for a rated engine.
func EngineValid(e types.Engine) bool {
	if _, ok := engineNames[e.Type]; !ok {
		return false
	}
	if e.Flags&^(types.EngineFlagClan|types.EngineFlagLarge) != 0 {
		return false
	}
	if e.Rating%5 != 0 || e.Rating < minEngineRating || e.Rating > maxEngineRating {
		return false
	}
	large := e.Flags&types.EngineFlagLarge != 0
	if large != (e.Rating > largeEngineRating) {
		return false
	}
	clan := e.Flags&types.EngineFlagClan != 0
	switch e.Type {
	case types.EngineCompact:
		if large || clan {
			return false
		}
	case types.EngineLight:
		if clan {
			return false
		}
	}
	return true
}

// IsFusion reports whether the engine is a fusion design.
func IsFusion(e types.Engine) bool {
	switch e.Type {
	case types.EngineNormal, types.EngineXL, types.EngineXXL,
		types.EngineLight, types.EngineCompact:
		return true
	}
	return false
}

// SideTorsoSlots returns the critical slots the engine occupies in each side
// torso. Only these engines differ between IS and Clan construction.
func SideTorsoSlots(e types.Engine) int {
	clan := e.Flags&types.EngineFlagClan != 0
	switch e.Type {
	case types.EngineXL:
		if clan {
			return 2
		}
		return 3
	case types.EngineXXL:
		if clan {
			return 4
		}
		return 6
	case types.EngineLight:
		return 2
	}
	return 0
}

// EngineFlagsFor returns the flags a chassis uses for the given rating.
func EngineFlagsFor(rating int, clan bool) types.EngineFlag {
	var flags types.EngineFlag
	if clan {
		flags |= types.EngineFlagClan
	}
	if rating > largeEngineRating {
		flags |= types.EngineFlagLarge
	}
	return flags
}

// SameEngine reports whether two engines are the same option (type and flags).
func SameEngine(a, b types.Engine) bool {
	return a.Type == b.Type && a.Flags == b.Flags
}

// EngineTypeName returns the bare engine type name.
func EngineTypeName(t types.EngineType) string {
	if n, ok := engineNames[t]; ok {
		return n
	}
	return "Unknown"
}

// EngineName returns the option label without the rating, e.g. "XL (Clan)"
// or "Large Fusion".
func EngineName(e types.Engine) string {
	name := EngineTypeName(e.Type)
	if e.Flags&types.EngineFlagLarge != 0 {
		name = "Large " + name
	}
	if SideTorsoSlots(e) > 0 {
		if e.Flags&types.EngineFlagClan != 0 {
			name += " (Clan)"
		} else {
			name += " (IS)"
		}
	}
	return name
}

// EngineFullName prefixes the rating, e.g. "300 XL (IS)".
func EngineFullName(e types.Engine) string {
	return fmt.Sprintf("%d %s", e.Rating, EngineName(e))
}

// IntegralHeatSinks returns the heat sinks a fusion engine carries for free.
func IntegralHeatSinks(e types.Engine) int {
	if !IsFusion(e) {
		return 0
	}
	return e.Rating / 25
}
