package catalog

import (
	"math"

	"github.com/VicenteCartas/megameklab/types"
)

var structureNames = map[types.StructureType]string{
	types.StructureStandard:      "Standard",
	types.StructureIndustrial:    "Industrial",
	types.StructureEndoSteel:     "Endo Steel",
	types.StructureEndoPrototype: "Endo Steel Prototype",
	types.StructureReinforced:    "Reinforced",
	types.StructureComposite:     "Composite",
	types.StructureEndoComposite: "Endo-Composite",
}

// Critical slots taken by bulky structure, IS then Clan.
var structureSlots = map[types.StructureType][2]int{
	types.StructureEndoSteel:     {14, 7},
	types.StructureEndoPrototype: {16, 0},
	types.StructureEndoComposite: {7, 4},
}

// StructureExists reports whether the catalog holds the structure in its
// tech base. Clan has no prototype endo steel.
func StructureExists(s types.Structure) bool {
	if _, ok := structureNames[s.Type]; !ok {
		return false
	}
	return !(s.Clan && s.Type == types.StructureEndoPrototype)
}

// IsBasicStructure reports whether the structure is the same for both tech
// bases. Basic types never get a mixed-tech sibling.
func IsBasicStructure(t types.StructureType) bool {
	return t <= types.StructureIndustrial
}

// NormalizeStructure folds basic structures to a single tech base so that
// Clan and IS standard structure compare equal.
func NormalizeStructure(s types.Structure) types.Structure {
	if IsBasicStructure(s.Type) {
		s.Clan = false
	}
	return s
}

// StructureCriticals returns the number of critical slots the structure
// needs.
func StructureCriticals(s types.Structure) int {
	slots, ok := structureSlots[s.Type]
	if !ok {
		return 0
	}
	if s.Clan {
		return slots[1]
	}
	return slots[0]
}

// IsBulkyStructure reports whether the structure occupies critical slots.
func IsBulkyStructure(s types.Structure) bool {
	return StructureCriticals(s) > 0
}

// IsBulkyStructureType reports whether any tech-base version of the
// structure type occupies critical slots.
func IsBulkyStructureType(t types.StructureType) bool {
	return structureSlots[t][0] > 0 || structureSlots[t][1] > 0
}

// StructureName returns the display name, with the tech base prefix for
// non-basic types.
func StructureName(s types.Structure) string {
	name, ok := structureNames[s.Type]
	if !ok {
		return "Unknown"
	}
	if IsBasicStructure(s.Type) {
		return name
	}
	if s.Clan {
		return "Clan " + name
	}
	return "IS " + name
}

// Internal structure points per location, indexed by tonnage/5:
// center torso, side torso, arm, leg. Head is always 3.
var internalStructure = map[int][4]int{
	10: {4, 3, 1, 2}, 15: {5, 4, 2, 3}, 20: {6, 5, 3, 4},
	25: {8, 6, 4, 6}, 30: {10, 7, 5, 7}, 35: {11, 8, 6, 8},
	40: {12, 10, 6, 10}, 45: {14, 11, 7, 11}, 50: {16, 12, 8, 12},
	55: {18, 13, 9, 13}, 60: {20, 14, 10, 14}, 65: {21, 15, 10, 15},
	70: {22, 15, 11, 15}, 75: {23, 16, 12, 16}, 80: {25, 17, 13, 17},
	85: {27, 18, 14, 18}, 90: {29, 19, 15, 19}, 95: {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// roundTonnage rounds up to the 5-ton brackets of the structure table.
func roundTonnage(tonnage float64) int {
	t := int(math.Ceil(tonnage/5)) * 5
	if t < 10 {
		t = 10
	}
	return t
}

// InternalStructure returns the structure points of a location. Superheavy
// chassis take double the points of half their weight.
func InternalStructure(tonnage float64, entity types.EntityType, loc types.Location) int {
	t := roundTonnage(tonnage)
	if t > 100 {
		if loc == types.LocHead {
			return 4
		}
		half := roundTonnage(float64(t) / 2)
		return 2 * InternalStructure(float64(half), entity, loc)
	}
	row := internalStructure[t]
	switch loc {
	case types.LocHead:
		return 3
	case types.LocCenterTorso:
		return row[0]
	case types.LocRightTorso, types.LocLeftTorso:
		return row[1]
	case types.LocRightArm, types.LocLeftArm:
		if entity == types.EntityQuad || entity == types.EntityQuadVee {
			return row[3]
		}
		return row[2]
	case types.LocRightLeg, types.LocLeftLeg, types.LocCenterLeg:
		return row[3]
	}
	return 0
}

// MaxArmor returns the armor cap of a location.
func MaxArmor(tonnage float64, entity types.EntityType, loc types.Location) int {
	if loc == types.LocHead {
		if tonnage > 100 {
			return 12
		}
		return 9
	}
	return 2 * InternalStructure(tonnage, entity, loc)
}

// HasRearArmor reports whether the location carries rear armor.
func HasRearArmor(loc types.Location) bool {
	switch loc {
	case types.LocCenterTorso, types.LocRightTorso, types.LocLeftTorso:
		return true
	}
	return false
}

var locationNames = map[types.Location]string{
	types.LocHead:        "HD",
	types.LocCenterTorso: "CT",
	types.LocRightTorso:  "RT",
	types.LocLeftTorso:   "LT",
	types.LocRightArm:    "RA",
	types.LocLeftArm:     "LA",
	types.LocRightLeg:    "RL",
	types.LocLeftLeg:     "LL",
	types.LocCenterLeg:   "CL",
}

// Locations returns the locations of an entity type in display order.
// Quad-style chassis report their front legs as arms.
func Locations(entity types.EntityType) []types.Location {
	locs := []types.Location{
		types.LocHead, types.LocCenterTorso, types.LocRightTorso, types.LocLeftTorso,
		types.LocRightArm, types.LocLeftArm, types.LocRightLeg, types.LocLeftLeg,
	}
	if entity == types.EntityTripod {
		locs = append(locs, types.LocCenterLeg)
	}
	return locs
}

// LocationAbbr returns the two letter code of a location.
func LocationAbbr(loc types.Location) string {
	return locationNames[loc]
}

// ParseLocation looks up a location by its two letter code.
func ParseLocation(abbr string) (types.Location, bool) {
	for loc, name := range locationNames {
		if name == abbr {
			return loc, true
		}
	}
	return 0, false
}
