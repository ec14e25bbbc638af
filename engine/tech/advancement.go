package tech

import (
	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/types"
)

var (
	omniAdvancement = Advancement{
		Name: "OmniMech", Level: types.LevelStandard, ISIntro: 3052, ClanIntro: 2854,
	}
	ultraLightAdvancement = Advancement{
		Name: "Ultralight Mech", Level: types.LevelAdvanced, ISIntro: 2500, ClanIntro: 2807,
	}
	superheavyAdvancement = Advancement{
		Name: "Superheavy Mech", Level: types.LevelAdvanced, ISIntro: 3077, ClanIntro: 3077,
	}
	fullHeadEjectAdvancement = Advancement{
		Name: "Full-Head Ejection System", Level: types.LevelAdvanced, ISIntro: 3023, ClanIntro: 3060,
	}
)

// OmniAdvancement gates the omni flag.
func OmniAdvancement() Advancement { return omniAdvancement }

// UltraLightAdvancement gates tonnages below 20.
func UltraLightAdvancement() Advancement { return ultraLightAdvancement }

// SuperheavyAdvancement gates tonnages above 100.
func SuperheavyAdvancement() Advancement { return superheavyAdvancement }

// FullHeadEjectAdvancement gates the full head ejection system.
func FullHeadEjectAdvancement() Advancement { return fullHeadEjectAdvancement }

type intro struct {
	level     types.TechLevel
	isIntro   int
	clanIntro int
}

var structureIntros = map[types.StructureType]intro{
	types.StructureStandard:      {types.LevelIntro, 2439, 2439},
	types.StructureIndustrial:    {types.LevelStandard, 2350, 2350},
	types.StructureEndoSteel:     {types.LevelStandard, 2487, 2827},
	types.StructureEndoPrototype: {types.LevelExperimental, 2471, 0},
	types.StructureReinforced:    {types.LevelAdvanced, 3057, 3057},
	types.StructureComposite:     {types.LevelAdvanced, 3061, 3061},
	types.StructureEndoComposite: {types.LevelAdvanced, 3067, 3073},
}

// StructureAdvancement returns the advancement of one tech-base variant of
// a structure. Basic structure is shared by both bases.
func StructureAdvancement(s types.Structure) Advancement {
	in := structureIntros[s.Type]
	a := Advancement{Name: catalog.StructureName(s), Level: in.level}
	switch {
	case catalog.IsBasicStructure(s.Type):
		a.ISIntro, a.ClanIntro = in.isIntro, in.clanIntro
	case s.Clan:
		a.ClanIntro = in.clanIntro
	default:
		a.ISIntro = in.isIntro
	}
	return a
}

var gyroIntros = map[types.GyroType]intro{
	types.GyroStandard:   {types.LevelIntro, 2300, 2300},
	types.GyroXL:         {types.LevelStandard, 3067, 0},
	types.GyroCompact:    {types.LevelStandard, 3068, 0},
	types.GyroHeavyDuty:  {types.LevelStandard, 3067, 0},
	types.GyroNone:       {types.LevelExperimental, 3067, 3067},
	types.GyroSuperheavy: {types.LevelAdvanced, 3077, 3077},
}

// GyroAdvancement returns the advancement of a gyro type.
func GyroAdvancement(g types.GyroType) Advancement {
	in := gyroIntros[g]
	return Advancement{
		Name:      catalog.GyroName(g) + " Gyro",
		Level:     in.level,
		ISIntro:   in.isIntro,
		ClanIntro: in.clanIntro,
	}
}

var cockpitIntros = map[types.CockpitType]intro{
	types.CockpitStandard:             {types.LevelIntro, 2468, 2468},
	types.CockpitSmall:                {types.LevelStandard, 3067, 3080},
	types.CockpitCommandConsole:       {types.LevelAdvanced, 2625, 0},
	types.CockpitTorsoMounted:         {types.LevelAdvanced, 3053, 3055},
	types.CockpitDual:                 {types.LevelExperimental, 3052, 0},
	types.CockpitIndustrial:           {types.LevelStandard, 2469, 2469},
	types.CockpitPrimitive:            {types.LevelStandard, 2430, 0},
	types.CockpitPrimitiveIndustrial:  {types.LevelStandard, 2300, 0},
	types.CockpitSuperheavy:           {types.LevelAdvanced, 3076, 3076},
	types.CockpitSuperheavyTripod:     {types.LevelAdvanced, 3130, 3130},
	types.CockpitTripod:               {types.LevelAdvanced, 2590, 2590},
	types.CockpitInterface:            {types.LevelExperimental, 3074, 0},
	types.CockpitVRRP:                 {types.LevelExperimental, 3052, 0},
	types.CockpitQuadVee:              {types.LevelAdvanced, 0, 3130},
	types.CockpitSuperheavyIndustrial: {types.LevelAdvanced, 3076, 3076},
}

// CockpitAdvancement returns the advancement of a cockpit type.
func CockpitAdvancement(c types.CockpitType) Advancement {
	in := cockpitIntros[c]
	return Advancement{
		Name:      catalog.CockpitName(c),
		Level:     in.level,
		ISIntro:   in.isIntro,
		ClanIntro: in.clanIntro,
	}
}

var enhancementIntros = map[types.Enhancement]intro{
	types.EnhancementISMASC:        {types.LevelStandard, 2740, 0},
	types.EnhancementClanMASC:      {types.LevelStandard, 0, 2827},
	types.EnhancementTSM:           {types.LevelStandard, 3050, 0},
	types.EnhancementSupercooled:   {types.LevelExperimental, 3100, 0},
	types.EnhancementIndustrialTSM: {types.LevelAdvanced, 3045, 0},
}

// EnhancementAdvancement returns the advancement of a myomer enhancement.
// The "none" choice is always legal.
func EnhancementAdvancement(e types.Enhancement) Advancement {
	if e == types.EnhancementNone {
		return Advancement{Name: "None", Level: types.LevelIntro, ISIntro: 1, ClanIntro: 1}
	}
	in := enhancementIntros[e]
	return Advancement{
		Name:      string(e),
		Level:     in.level,
		ISIntro:   in.isIntro,
		ClanIntro: in.clanIntro,
	}
}

var engineIntros = map[types.EngineType]intro{
	types.EngineCombustion: {types.LevelIntro, 1950, 1950},
	types.EngineNormal:     {types.LevelIntro, 2021, 2021},
	types.EngineXL:         {types.LevelStandard, 2579, 2827},
	types.EngineXXL:        {types.LevelExperimental, 3055, 3055},
	types.EngineFuelCell:   {types.LevelStandard, 2300, 2300},
	types.EngineLight:      {types.LevelStandard, 3062, 0},
	types.EngineCompact:    {types.LevelStandard, 3068, 0},
	types.EngineFission:    {types.LevelStandard, 2882, 2882},
}

// EngineAdvancement returns the advancement of an engine in its tech base.
// Only engines whose construction differs between bases are base-specific.
func EngineAdvancement(e types.Engine) Advancement {
	in := engineIntros[e.Type]
	a := Advancement{Name: catalog.EngineName(e) + " Engine", Level: in.level}
	switch {
	case catalog.SideTorsoSlots(e) == 0:
		a.ISIntro, a.ClanIntro = in.isIntro, in.clanIntro
	case e.Flags&types.EngineFlagClan != 0:
		a.ClanIntro = in.clanIntro
	default:
		a.ISIntro = in.isIntro
	}
	return a
}
