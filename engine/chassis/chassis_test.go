package chassis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/events"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/types"
)

// --- Helpers ---

func introIS() *tech.Context { return tech.NewContext(3025, types.LevelIntro, false, false) }

func standardIS() *tech.Context { return tech.NewContext(3067, types.LevelStandard, false, false) }

// anythingGoes permits every construction in the tables.
func anythingGoes(clan, mixed bool) *tech.Context {
	return tech.NewContext(0, types.LevelUnofficial, clan, mixed)
}

func engineTypes(list []types.Engine) []types.EngineType {
	var out []types.EngineType
	for _, e := range list {
		out = append(out, e.Type)
	}
	return out
}

// countingListener counts each notification it receives.
type countingListener struct {
	events.NopListener
	tonnage     int
	typeChanges int
	gyros       int
	resets      int
	last        types.EntityType
}

func (c *countingListener) TonnageChanged(float64)     { c.tonnage++ }
func (c *countingListener) GyroChanged(types.GyroType) { c.gyros++ }
func (c *countingListener) ResetChassis()              { c.resets++ }
func (c *countingListener) TypeChanged(_ types.BaseType, _ types.MotiveType, e types.EntityType) {
	c.typeChanges++
	c.last = e
}

// --- Resolve ---

func TestResolve_EveryListNonEmpty(t *testing.T) {
	contexts := map[string]tech.Manager{
		"intro":    introIS(),
		"standard": standardIS(),
		"clan":     tech.NewContext(3050, types.LevelStandard, true, false),
		"mixed":    anythingGoes(true, true),
		"nothing":  tech.NewContext(1900, types.LevelIntro, false, false),
	}
	motives := map[types.BaseType][]types.MotiveType{
		types.BaseStandard: {types.MotiveBiped, types.MotiveQuad, types.MotiveTripod},
		types.BaseLAM:      {types.MotiveLAMStandard, types.MotiveLAMBimodal},
		types.BaseQuadVee:  {types.MotiveQVTracked, types.MotiveQVWheeled},
	}
	tonnages := []int{10, 20, 55, 100, 150, 200}

	for name, tm := range contexts {
		for base, ms := range motives {
			for _, m := range ms {
				for _, ton := range tonnages {
					for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
						up := Upstream{
							Base: base, Motive: m, Tonnage: ton,
							Primitive: flags[0], Industrial: flags[1], EngineRating: ton,
						}
						o := Resolve(up, Selection{}, tm)
						require.NotEmpty(t, o.Structures, "%s %+v", name, up)
						require.NotEmpty(t, o.Engines, "%s %+v", name, up)
						require.NotEmpty(t, o.Gyros, "%s %+v", name, up)
						require.NotEmpty(t, o.Cockpits, "%s %+v", name, up)
						require.NotEmpty(t, o.Enhancements, "%s %+v", name, up)
						assert.Less(t, o.Structure, len(o.Structures))
						assert.Less(t, o.Engine, len(o.Engines))
						assert.Less(t, o.Gyro, len(o.Gyros))
						assert.Less(t, o.Cockpit, len(o.Cockpits))
						assert.Less(t, o.Enhancement, len(o.Enhancements))
					}
				}
			}
		}
	}
}

func TestResolve_StandardQuadAt100IsNotSuperheavy(t *testing.T) {
	up := Upstream{Base: types.BaseStandard, Motive: types.MotiveQuad, Tonnage: 100, EngineRating: 300}
	o := Resolve(up, Selection{}, anythingGoes(false, false))

	var structures []types.StructureType
	for _, s := range o.Structures {
		structures = append(structures, s.Type)
	}
	assert.Equal(t, catalog.StructureTypes, structures)
	assert.Equal(t, []types.GyroType{
		types.GyroStandard, types.GyroXL, types.GyroCompact, types.GyroHeavyDuty, types.GyroNone,
	}, o.Gyros)
	assert.NotContains(t, o.Cockpits, types.CockpitSuperheavy)
}

func TestResolve_StructureFilteredByLegality(t *testing.T) {
	up := Upstream{Tonnage: 50, EngineRating: 200}
	o := Resolve(up, Selection{}, introIS())
	assert.Equal(t, []types.Structure{{Type: types.StructureStandard}}, o.Structures)

	o = Resolve(up, Selection{}, standardIS())
	assert.Equal(t, []types.Structure{
		{Type: types.StructureStandard}, {Type: types.StructureEndoSteel},
	}, o.Structures)
}

func TestResolve_LAMNeverOffersXLGyro(t *testing.T) {
	allowXL := anythingGoes(false, true)
	allowXL.Allow["XL Gyro"] = true

	for name, tm := range map[string]tech.Manager{
		"intro":    introIS(),
		"standard": standardIS(),
		"mixed":    anythingGoes(true, true),
		"override": allowXL,
	} {
		for _, m := range []types.MotiveType{types.MotiveLAMStandard, types.MotiveLAMBimodal} {
			up := Upstream{Base: types.BaseLAM, Motive: m, Tonnage: 50, EngineRating: 250}
			o := Resolve(up, Selection{Gyro: types.GyroXL}, tm)
			assert.NotContains(t, o.Gyros, types.GyroXL, name)
			assert.NotEqual(t, types.GyroXL, o.SelectedGyro(), name)
		}
	}
}

func TestResolve_LAMRestrictions(t *testing.T) {
	up := Upstream{Base: types.BaseLAM, Tonnage: 50, EngineRating: 250}
	o := Resolve(up, Selection{}, anythingGoes(true, true))

	for _, s := range o.Structures {
		assert.False(t, catalog.IsBulkyStructureType(s.Type), "LAM offered %s", catalog.StructureName(s))
	}
	for _, e := range o.Engines {
		assert.Contains(t, catalog.LAMEngineTypes, e.Type)
	}
	assert.Equal(t, []types.CockpitType{types.CockpitStandard, types.CockpitSmall}, o.Cockpits)
	assert.Equal(t, MaxLAMTonnage, o.MaxTonnage)
	assert.False(t, o.OmniEnabled)
}

func TestResolve_IndustrialChassis(t *testing.T) {
	for _, ton := range []int{20, 60, 100} {
		up := Upstream{Industrial: true, Tonnage: ton, EngineRating: ton}
		o := Resolve(up, Selection{}, standardIS())

		assert.Equal(t, []types.Structure{{Type: types.StructureIndustrial}}, o.Structures)
		assert.Equal(t, catalog.PrimitiveEngineTypes, engineTypes(o.Engines))
		assert.Equal(t, []types.GyroType{types.GyroStandard}, o.Gyros)
		assert.Equal(t, []types.CockpitType{types.CockpitIndustrial}, o.Cockpits)
		assert.False(t, o.OmniEnabled)
		assert.False(t, o.BaseTypeEnabled)
	}
}

func TestResolve_IndustrialEnhancement(t *testing.T) {
	up := Upstream{Industrial: true, Tonnage: 60, EngineRating: 240}
	o := Resolve(up, Selection{}, standardIS())
	assert.Equal(t, []types.Enhancement{types.EnhancementNone}, o.Enhancements)

	o = Resolve(up, Selection{}, tech.NewContext(3067, types.LevelAdvanced, false, false))
	assert.Equal(t, []types.Enhancement{types.EnhancementNone, types.EnhancementIndustrialTSM}, o.Enhancements)
}

func TestResolve_PrimitiveChassis(t *testing.T) {
	up := Upstream{Primitive: true, Tonnage: 40, EngineRating: 160}
	o := Resolve(up, Selection{}, standardIS())

	assert.Equal(t, []types.Structure{{Type: types.StructureStandard}}, o.Structures)
	assert.Equal(t, []types.CockpitType{types.CockpitPrimitive}, o.Cockpits)
	assert.Equal(t, []types.Enhancement{types.EnhancementNone}, o.Enhancements)

	up.Industrial = true
	o = Resolve(up, Selection{}, standardIS())
	assert.Equal(t, []types.CockpitType{types.CockpitPrimitiveIndustrial}, o.Cockpits)
}

func TestResolve_Superheavy(t *testing.T) {
	up := Upstream{Tonnage: 150, EngineRating: 300}
	o := Resolve(up, Selection{}, anythingGoes(false, false))

	assert.Equal(t, []types.GyroType{types.GyroSuperheavy}, o.Gyros)
	assert.Equal(t, []types.CockpitType{types.CockpitSuperheavy}, o.Cockpits)
	assert.Equal(t, []types.Enhancement{types.EnhancementNone}, o.Enhancements)
	for _, s := range o.Structures {
		assert.Contains(t, catalog.SuperheavyStructureTypes, s.Type)
	}
	for _, e := range o.Engines {
		assert.True(t, catalog.IsFusion(e), "superheavies need fusion engines")
	}

	up.Motive = types.MotiveTripod
	o = Resolve(up, Selection{}, anythingGoes(false, false))
	assert.Equal(t, []types.CockpitType{types.CockpitSuperheavyTripod}, o.Cockpits)
}

func TestResolve_QuadVeeCockpitBeforeSuperheavy(t *testing.T) {
	for _, tons := range []int{50, 100, 150} {
		up := Upstream{Base: types.BaseQuadVee, Motive: types.MotiveQVWheeled, Tonnage: tons, EngineRating: 200}
		o := Resolve(up, Selection{}, anythingGoes(false, false))
		assert.Equal(t, []types.CockpitType{types.CockpitQuadVee}, o.Cockpits, "%d tons", tons)
	}
}

func TestResolve_MixedTechStructureSiblings(t *testing.T) {
	up := Upstream{Tonnage: 50, EngineRating: 200}

	o := Resolve(up, Selection{}, anythingGoes(false, true))
	assert.Equal(t, []types.Structure{
		{Type: types.StructureStandard},
		{Type: types.StructureEndoSteel}, {Type: types.StructureEndoSteel, Clan: true},
		{Type: types.StructureEndoPrototype},
		{Type: types.StructureReinforced}, {Type: types.StructureReinforced, Clan: true},
		{Type: types.StructureComposite}, {Type: types.StructureComposite, Clan: true},
		{Type: types.StructureEndoComposite}, {Type: types.StructureEndoComposite, Clan: true},
	}, o.Structures)

	// A Clan unit lists its own version first and never offers Clan
	// prototype endo steel.
	o = Resolve(up, Selection{}, anythingGoes(true, true))
	assert.Equal(t, []types.Structure{
		{Type: types.StructureStandard, Clan: true},
		{Type: types.StructureEndoSteel, Clan: true}, {Type: types.StructureEndoSteel},
		{Type: types.StructureEndoPrototype},
		{Type: types.StructureReinforced, Clan: true}, {Type: types.StructureReinforced},
		{Type: types.StructureComposite, Clan: true}, {Type: types.StructureComposite},
		{Type: types.StructureEndoComposite, Clan: true}, {Type: types.StructureEndoComposite},
	}, o.Structures)
}

func TestResolve_TonnageBounds(t *testing.T) {
	tests := []struct {
		name   string
		base   types.BaseType
		tm     tech.Manager
		lo, hi int
	}{
		{"intro", types.BaseStandard, introIS(), MinTonnage, MaxTonnage},
		{"advanced", types.BaseStandard, tech.NewContext(3085, types.LevelAdvanced, false, false), MinUltraLightTonnage, MaxSuperheavyTonnage},
		{"lam", types.BaseLAM, anythingGoes(false, false), MinUltraLightTonnage, MaxLAMTonnage},
		{"quadvee", types.BaseQuadVee, anythingGoes(true, false), MinUltraLightTonnage, MaxTonnage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Resolve(Upstream{Base: tt.base, Tonnage: 50, EngineRating: 200}, Selection{}, tt.tm)
			assert.Equal(t, tt.lo, o.MinTonnage)
			assert.Equal(t, tt.hi, o.MaxTonnage)
		})
	}
}

func TestResolve_MixedTechEngineSiblings(t *testing.T) {
	up := Upstream{Tonnage: 75, EngineRating: 300}
	o := Resolve(up, Selection{}, anythingGoes(false, true))

	assert.Contains(t, o.Engines, types.Engine{Rating: 300, Type: types.EngineXL})
	assert.Contains(t, o.Engines, types.Engine{Rating: 300, Type: types.EngineXL, Flags: types.EngineFlagClan})
	assert.Contains(t, o.Engines, types.Engine{Rating: 300, Type: types.EngineLight})
	assert.NotContains(t, o.Engines, types.Engine{Rating: 300, Type: types.EngineLight, Flags: types.EngineFlagClan})
	assert.NotContains(t, o.Engines, types.Engine{Rating: 300, Type: types.EngineNormal, Flags: types.EngineFlagClan})
	assert.True(t, o.ShowStructureTechBase)
	assert.True(t, o.ShowEnhancementTechBase)

	// Each sibling follows its own-base entry.
	for i, e := range o.Engines {
		if e.Flags&types.EngineFlagClan != 0 {
			require.Positive(t, i)
			assert.Equal(t, e.Type, o.Engines[i-1].Type)
		}
	}
}

func TestResolve_LargeEngineFlags(t *testing.T) {
	up := Upstream{Tonnage: 100, EngineRating: 450}
	o := Resolve(up, Selection{}, anythingGoes(false, false))
	for _, e := range o.Engines {
		assert.NotZero(t, e.Flags&types.EngineFlagLarge)
		assert.NotEqual(t, types.EngineCompact, e.Type)
	}
}

func TestResolve_PreservesPreferredEngine(t *testing.T) {
	tm := anythingGoes(false, true)
	pref := Selection{Engine: types.Engine{Type: types.EngineXL, Flags: types.EngineFlagClan}}
	for _, ton := range []int{40, 60, 85} {
		o := Resolve(Upstream{Tonnage: ton, EngineRating: 4 * ton}, pref, tm)
		got := o.SelectedEngine()
		assert.Equal(t, types.EngineXL, got.Type)
		assert.Equal(t, types.EngineFlagClan, got.Flags)
		assert.Equal(t, 4*ton, got.Rating)
	}
}

func TestResolve_FallsBackToFirstOption(t *testing.T) {
	pref := Selection{
		Structure:   types.Structure{Type: types.StructureEndoSteel},
		Engine:      types.Engine{Type: types.EngineXL},
		Gyro:        types.GyroCompact,
		Cockpit:     types.CockpitSmall,
		Enhancement: types.EnhancementTSM,
	}
	o := Resolve(Upstream{Industrial: true, Tonnage: 50, EngineRating: 200}, pref, standardIS())

	assert.Equal(t, 0, o.Structure)
	assert.Equal(t, 0, o.Engine)
	assert.Equal(t, types.EngineNormal, o.SelectedEngine().Type)
	assert.Equal(t, 0, o.Gyro)
	assert.Equal(t, 0, o.Cockpit)
	assert.Equal(t, types.EnhancementNone, o.SelectedEnhancement())
}

func TestResolve_TorsoMountedCockpitHasNoHeadEject(t *testing.T) {
	allow := anythingGoes(false, false)
	allow.Allow["Full-Head Ejection System"] = true

	for _, tm := range []tech.Manager{introIS(), anythingGoes(true, true), allow} {
		for _, c := range []types.CockpitType{types.CockpitTorsoMounted, types.CockpitVRRP, types.CockpitCommandConsole} {
			assert.False(t, fullHeadEjectAvailable(c, tm))
		}
	}
	assert.True(t, fullHeadEjectAvailable(types.CockpitStandard, allow))
	assert.False(t, fullHeadEjectAvailable(types.CockpitStandard, introIS()))
}

func TestResolve_DoesNotTouchTonnage(t *testing.T) {
	up := Upstream{Base: types.BaseLAM, Tonnage: 80, EngineRating: 240}
	before := up
	o := Resolve(up, Selection{}, introIS())
	assert.Equal(t, before, up)
	assert.Equal(t, MaxLAMTonnage, o.MaxTonnage)
}

// --- Panel ---

func TestPanel_RecomputeIsIdempotent(t *testing.T) {
	p := NewPanel(anythingGoes(true, true))
	p.LoadFrom(&types.Unit{
		Kind: types.UnitKindMech, Tonnage: 65,
		Engine:    types.Engine{Rating: 325, Type: types.EngineXXL, Flags: types.EngineFlagClan},
		Structure: types.Structure{Type: types.StructureEndoSteel},
		Cockpit:   types.CockpitSmall,
	})

	p.Recompute()
	first := p.Options()
	p.Recompute()
	assert.Equal(t, first, p.Options())
}

func TestPanel_LoadFromKeepsLegalValues(t *testing.T) {
	p := NewPanel(anythingGoes(false, true))
	p.LoadFrom(&types.Unit{
		Kind: types.UnitKindMech, Tonnage: 55, Base: types.BaseStandard, Motive: types.MotiveQuad,
		Engine:        types.Engine{Rating: 275, Type: types.EngineXL, Flags: types.EngineFlagClan},
		Structure:     types.Structure{Type: types.StructureEndoSteel, Clan: true},
		Gyro:          types.GyroCompact,
		Cockpit:       types.CockpitSmall,
		Enhancement:   types.EnhancementTSM,
		FullHeadEject: true,
		Omni:          true,
	})

	assert.Equal(t, 55, p.Tonnage())
	assert.Equal(t, types.EntityQuad, p.EntityType())
	assert.Equal(t, types.Engine{Rating: 275, Type: types.EngineXL, Flags: types.EngineFlagClan}, p.Engine())
	assert.Equal(t, types.Structure{Type: types.StructureEndoSteel, Clan: true}, p.Structure())
	assert.Equal(t, types.GyroCompact, p.Gyro())
	assert.Equal(t, types.CockpitSmall, p.Cockpit())
	assert.Equal(t, types.EnhancementTSM, p.Enhancement())
	assert.True(t, p.HasFullHeadEject())
	assert.True(t, p.IsOmni())
	assert.True(t, p.ResetEnabled())
}

func TestPanel_LoadFromUnknownBaseType(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	p.LoadFrom(&types.Unit{Kind: types.UnitKindMech, Tonnage: 50, Base: types.BaseType(7), Motive: 1,
		Engine: types.Engine{Rating: 200, Type: types.EngineNormal}})

	assert.Equal(t, types.BaseStandard, p.BaseType())
	assert.Equal(t, types.MotiveQuad, p.MotiveType())
	assert.True(t, p.SetMotiveType(types.MotiveTripod))
	assert.Equal(t, types.EntityTripod, p.EntityType())
}

func TestPanel_LoadFromFallsBack(t *testing.T) {
	p := NewPanel(introIS())
	p.LoadFrom(&types.Unit{
		Kind: types.UnitKindMech, Tonnage: 50, Motive: 7,
		Engine:    types.Engine{Rating: 200, Type: types.EngineFuelCell},
		Structure: types.Structure{Type: types.StructureComposite},
		Gyro:      types.GyroXL,
		Cockpit:   types.CockpitDual,
	})

	assert.Equal(t, types.MotiveBiped, p.MotiveType())
	assert.Equal(t, types.EngineNormal, p.Engine().Type)
	assert.Equal(t, types.StructureStandard, p.Structure().Type)
	assert.Equal(t, types.GyroStandard, p.Gyro())
	assert.Equal(t, types.CockpitStandard, p.Cockpit())
	assert.False(t, p.IsOmni())
}

func TestPanel_OneEventPerEdit(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	l := &countingListener{}
	p.AddListener(l)

	require.True(t, p.SetTonnage(50))
	assert.Equal(t, 1, l.tonnage)
	evts := p.DrainEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, types.EventTonnageChanged, evts[0].Type)
	assert.Equal(t, 50.0, evts[0].Data["tonnage"])

	require.True(t, p.SetGyro(types.GyroHeavyDuty))
	assert.Equal(t, 1, l.gyros)
	assert.Len(t, p.DrainEvents(), 1)
}

func TestPanel_RejectedEditEmitsNothing(t *testing.T) {
	p := NewPanel(introIS())
	l := &countingListener{}
	p.AddListener(l)

	assert.False(t, p.SetTonnage(150), "superheavy is not legal at intro level")
	assert.False(t, p.SetTonnage(15))
	assert.False(t, p.SetGyro(types.GyroXL))
	assert.False(t, p.SetOmni(true))
	assert.False(t, p.Reset(), "reset needs an omni unit")
	assert.False(t, p.OnFieldChanged(FieldTonnage, "heavy"))

	assert.Zero(t, l.tonnage)
	assert.Zero(t, l.gyros)
	assert.Zero(t, l.resets)
	assert.Empty(t, p.DrainEvents())
	assert.Equal(t, MinTonnage, p.Tonnage())
}

func TestPanel_EditRecomputesDependents(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	require.True(t, p.SetGyro(types.GyroCompact))

	require.True(t, p.SetTonnage(150))
	assert.True(t, p.IsSuperheavy())
	assert.Equal(t, []types.GyroType{types.GyroSuperheavy}, p.Options().Gyros)
	assert.Equal(t, types.GyroSuperheavy, p.Gyro())
	assert.Equal(t, types.CockpitSuperheavy, p.Cockpit())

	require.True(t, p.SetTonnage(80))
	assert.Equal(t, types.GyroStandard, p.Gyro(), "compact selection was lost while superheavy")
}

func TestPanel_PreservesEngineAcrossTonnage(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	p.SetEngineRating(200)
	require.True(t, p.SetEngine(types.Engine{Type: types.EngineLight}))

	require.True(t, p.SetTonnage(45))
	assert.Equal(t, types.EngineLight, p.Engine().Type)
	assert.Equal(t, 200, p.Engine().Rating)
}

func TestPanel_BaseTypeResetsMotive(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	l := &countingListener{}
	p.AddListener(l)

	require.True(t, p.SetMotiveType(types.MotiveTripod))
	assert.Equal(t, types.EntityTripod, l.last)
	assert.Equal(t, []types.CockpitType{types.CockpitTripod}, p.Options().Cockpits)

	require.True(t, p.SetBaseType(types.BaseLAM))
	assert.Equal(t, types.MotiveLAMStandard, p.MotiveType())
	assert.Equal(t, types.EntityLAM, l.last)
	assert.Equal(t, 2, l.typeChanges)
	assert.False(t, p.SetMotiveType(types.MotiveTripod))
}

func TestPanel_OmniUnavailableForLAM(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	require.True(t, p.SetOmni(true))
	assert.True(t, p.IsOmni())

	require.True(t, p.SetBaseType(types.BaseLAM))
	assert.False(t, p.IsOmni())
	assert.False(t, p.SetOmni(true))
}

func TestPanel_HeadEjectFollowsCockpit(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	require.True(t, p.SetFullHeadEject(true))
	assert.True(t, p.HasFullHeadEject())

	require.True(t, p.SetCockpit(types.CockpitTorsoMounted))
	assert.False(t, p.Options().FullHeadEjectEnabled)
	assert.False(t, p.HasFullHeadEject())
	assert.True(t, p.FullHeadEjectChecked())
	assert.False(t, p.SetFullHeadEject(false))

	require.True(t, p.SetCockpit(types.CockpitStandard))
	assert.True(t, p.HasFullHeadEject())
}

func TestPanel_CustomizationLocksChassis(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	p.SetAsCustomization()

	assert.False(t, p.SetTonnage(40))
	assert.False(t, p.SetBaseType(types.BaseQuadVee))
	assert.False(t, p.SetMotiveType(types.MotiveQuad))
	assert.True(t, p.SetGyro(types.GyroCompact))
}

func TestPanel_ResetOnOmni(t *testing.T) {
	p := NewPanel(anythingGoes(false, false))
	p.LoadFrom(&types.Unit{Kind: types.UnitKindMech, Tonnage: 50, Omni: true,
		Engine: types.Engine{Rating: 200, Type: types.EngineNormal}})
	l := &countingListener{}
	p.AddListener(l)

	require.True(t, p.Reset())
	assert.Equal(t, 1, l.resets)

	assert.True(t, p.RemoveListener(l))
	require.True(t, p.Reset())
	assert.Equal(t, 1, l.resets)
}
