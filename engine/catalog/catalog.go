// Package catalog holds the static construction tables for Mech chassis:
// the fixed option orders, display names, engine validity, and the internal
// structure table.
package catalog

import "github.com/VicenteCartas/megameklab/types"

// Engines that can be used by Mechs, in display order.
var EngineTypes = []types.EngineType{
	types.EngineNormal, types.EngineXL, types.EngineXXL, types.EngineFuelCell,
	types.EngineLight, types.EngineCompact, types.EngineFission, types.EngineCombustion,
}

// PrimitiveEngineTypes is the list for primitive Mechs. IndustrialMechs are
// restricted to it below experimental rules.
var PrimitiveEngineTypes = []types.EngineType{
	types.EngineNormal, types.EngineFuelCell, types.EngineFission, types.EngineCombustion,
}

// LAMEngineTypes holds the fusion engines that fit entirely in the center torso.
var LAMEngineTypes = []types.EngineType{
	types.EngineNormal, types.EngineCompact,
}

// StructureTypes is the structure catalog for non-industrial Mechs.
var StructureTypes = []types.StructureType{
	types.StructureStandard, types.StructureEndoSteel,
	types.StructureEndoPrototype, types.StructureReinforced,
	types.StructureComposite, types.StructureEndoComposite,
}

// SuperheavyStructureTypes is the reduced catalog for superheavy Mechs.
var SuperheavyStructureTypes = []types.StructureType{
	types.StructureStandard, types.StructureEndoSteel, types.StructureEndoComposite,
}

// GeneralCockpits is the cockpit list for a standard non-industrial Mech.
var GeneralCockpits = []types.CockpitType{
	types.CockpitStandard, types.CockpitSmall, types.CockpitCommandConsole,
	types.CockpitTorsoMounted, types.CockpitDual, types.CockpitInterface,
	types.CockpitVRRP,
}

// Enhancements is the myomer enhancement list for non-industrial Mechs.
var Enhancements = []types.Enhancement{
	types.EnhancementISMASC, types.EnhancementClanMASC,
	types.EnhancementTSM, types.EnhancementSupercooled,
}

var baseTypeNames = []string{"Standard", "LAM", "QuadVee"}

var motiveNames = map[types.BaseType][]string{
	types.BaseStandard: {"Biped", "Quad", "Tripod"},
	types.BaseLAM:      {"Standard", "Bimodal"},
	types.BaseQuadVee:  {"Tracked", "Wheeled"},
}

// BaseTypeNames returns the base type labels in index order.
func BaseTypeNames() []string {
	return append([]string(nil), baseTypeNames...)
}

// BaseTypeName returns the label of a base type.
func BaseTypeName(b types.BaseType) string {
	if int(b) < 0 || int(b) >= len(baseTypeNames) {
		return "Unknown"
	}
	return baseTypeNames[b]
}

// MotiveNames returns the motive labels available for a base type.
func MotiveNames(b types.BaseType) []string {
	return append([]string(nil), motiveNames[b]...)
}

// MotiveName returns the label of a motive index under a base type.
func MotiveName(b types.BaseType, m types.MotiveType) string {
	names := motiveNames[b]
	if int(m) < 0 || int(m) >= len(names) {
		return "Unknown"
	}
	return names[m]
}

// EntityTypeFor derives the unit class from the base and motive selection.
func EntityTypeFor(b types.BaseType, m types.MotiveType) types.EntityType {
	switch {
	case b == types.BaseLAM:
		return types.EntityLAM
	case b == types.BaseQuadVee:
		return types.EntityQuadVee
	case m == types.MotiveTripod:
		return types.EntityTripod
	case m == types.MotiveQuad:
		return types.EntityQuad
	default:
		return types.EntityBiped
	}
}

var gyroNames = map[types.GyroType]string{
	types.GyroStandard:   "Standard",
	types.GyroXL:         "XL",
	types.GyroCompact:    "Compact",
	types.GyroHeavyDuty:  "Heavy Duty",
	types.GyroNone:       "None",
	types.GyroSuperheavy: "Superheavy",
}

// GyroName returns the short display name of a gyro.
func GyroName(g types.GyroType) string {
	if n, ok := gyroNames[g]; ok {
		return n
	}
	return "Unknown"
}

var cockpitNames = map[types.CockpitType]string{
	types.CockpitStandard:             "Standard Cockpit",
	types.CockpitTorsoMounted:         "Torso-Mounted Cockpit",
	types.CockpitSmall:                "Small Cockpit",
	types.CockpitCommandConsole:       "Command Console",
	types.CockpitDual:                 "Dual Cockpit",
	types.CockpitIndustrial:           "Industrial Cockpit",
	types.CockpitPrimitive:            "Primitive Cockpit",
	types.CockpitPrimitiveIndustrial:  "Primitive Industrial Cockpit",
	types.CockpitSuperheavy:           "Superheavy Cockpit",
	types.CockpitSuperheavyTripod:     "Superheavy Tripod Cockpit",
	types.CockpitTripod:               "Tripod Cockpit",
	types.CockpitInterface:            "Interface Cockpit",
	types.CockpitVRRP:                 "VRRP",
	types.CockpitQuadVee:              "QuadVee Cockpit",
	types.CockpitSuperheavyIndustrial: "Superheavy Industrial Cockpit",
}

// CockpitName returns the display name of a cockpit.
func CockpitName(c types.CockpitType) string {
	if n, ok := cockpitNames[c]; ok {
		return n
	}
	return "Unknown"
}

var enhancementNames = map[types.Enhancement]string{
	types.EnhancementNone:          "None",
	types.EnhancementISMASC:        "MASC",
	types.EnhancementClanMASC:      "MASC",
	types.EnhancementTSM:           "TSM",
	types.EnhancementSupercooled:   "Supercooled Myomer",
	types.EnhancementIndustrialTSM: "Industrial TSM",
}

var enhancementBases = map[types.Enhancement]types.TechBase{
	types.EnhancementISMASC:        types.TechBaseIS,
	types.EnhancementClanMASC:      types.TechBaseClan,
	types.EnhancementTSM:           types.TechBaseIS,
	types.EnhancementSupercooled:   types.TechBaseIS,
	types.EnhancementIndustrialTSM: types.TechBaseIS,
}

// EnhancementName returns the display name of an enhancement. When
// showTechBase is set the faction is appended, which is how mixed-tech
// lists tell IS and Clan MASC apart.
func EnhancementName(e types.Enhancement, showTechBase bool) string {
	name, ok := enhancementNames[e]
	if !ok {
		return string(e)
	}
	if showTechBase && e != types.EnhancementNone {
		return name + " (" + TechBaseName(enhancementBases[e]) + ")"
	}
	return name
}

// TechBaseName returns "IS", "Clan" or "All".
func TechBaseName(b types.TechBase) string {
	switch b {
	case types.TechBaseIS:
		return "IS"
	case types.TechBaseClan:
		return "Clan"
	default:
		return "All"
	}
}

// TechLevelNames lists tech levels in ascending order.
var TechLevelNames = []string{"intro", "standard", "advanced", "experimental", "unofficial"}

// TechLevelName returns the lowercase name of a tech level.
func TechLevelName(l types.TechLevel) string {
	if int(l) < 0 || int(l) >= len(TechLevelNames) {
		return "unknown"
	}
	return TechLevelNames[l]
}

// ParseTechLevel looks up a tech level by name.
func ParseTechLevel(name string) (types.TechLevel, bool) {
	for i, n := range TechLevelNames {
		if n == name {
			return types.TechLevel(i), true
		}
	}
	return 0, false
}
