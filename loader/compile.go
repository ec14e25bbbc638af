// Package loader loads Lua rules packs: the tech context a session runs
// under, per-item allow and forbid overrides, and stock designs the
// editor can start from. The Lua VM is discarded after loading.
package loader

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	lua "github.com/yuin/gopher-lua"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/types"
)

// Pack is a compiled rules pack.
type Pack struct {
	// Context is nil when the pack declares no TechContext; Allow and
	// Forbid entries are then kept in Allow and Forbid for the caller to
	// apply to its own context.
	Context   *tech.Context
	Allow     []string
	Forbid    []string
	Templates map[string]*types.Unit
	Files     []string
}

// Apply copies the pack's allow and forbid overrides into ctx.
func (p *Pack) Apply(ctx *tech.Context) {
	for _, name := range p.Allow {
		ctx.Allow[name] = true
	}
	for _, name := range p.Forbid {
		ctx.Forbid[name] = true
	}
}

// rawMech holds a design table before compilation.
type rawMech struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts the collected Lua data into a Pack.
func compile(coll *collector) (*Pack, error) {
	pack := &Pack{
		Allow:     coll.allow,
		Forbid:    coll.forbid,
		Templates: map[string]*types.Unit{},
	}

	if coll.context != nil {
		ctx, err := compileContext(coll.context)
		if err != nil {
			return nil, fmt.Errorf("compiling TechContext: %w", err)
		}
		pack.Context = ctx
		pack.Apply(ctx)
	}

	defaults := mechDefaults{year: unit.DefaultYear, level: types.LevelIntro}
	if pack.Context != nil {
		defaults = mechDefaults{year: pack.Context.Year, level: pack.Context.Level, clan: pack.Context.Clan}
	}
	for _, raw := range coll.mechs {
		if _, dup := pack.Templates[raw.name]; dup {
			return nil, fmt.Errorf("mech %q defined twice", raw.name)
		}
		u, err := compileMech(raw, defaults)
		if err != nil {
			return nil, fmt.Errorf("compiling mech %q: %w", raw.name, err)
		}
		pack.Templates[raw.name] = u
	}
	return pack, nil
}

func compileContext(tbl *lua.LTable) (*tech.Context, error) {
	level := types.LevelIntro
	if name := getString(tbl, "level"); name != "" {
		l, ok := catalog.ParseTechLevel(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown tech level %q", name)
		}
		level = l
	}
	clan, err := parseFaction(getString(tbl, "faction"))
	if err != nil {
		return nil, err
	}
	return tech.NewContext(getInt(tbl, "year"), level, clan, getBool(tbl, "mixed", false)), nil
}

func parseFaction(name string) (bool, error) {
	switch strings.ToLower(name) {
	case "", "is", "inner sphere":
		return false, nil
	case "clan":
		return true, nil
	}
	return false, fmt.Errorf("unknown faction %q", name)
}

type mechDefaults struct {
	year  int
	level types.TechLevel
	clan  bool
}

func compileMech(raw rawMech, def mechDefaults) (*types.Unit, error) {
	tbl := raw.table
	u := &types.Unit{
		Kind:          types.UnitKindMech,
		Chassis:       getString(tbl, "chassis"),
		Model:         getString(tbl, "model"),
		Year:          def.year,
		TechLevel:     def.level,
		Clan:          getBool(tbl, "clan", def.clan),
		Tonnage:       getNumber(tbl, "tonnage"),
		Primitive:     getBool(tbl, "primitive", false),
		Industrial:    getBool(tbl, "industrial", false),
		Omni:          getBool(tbl, "omni", false),
		FullHeadEject: getBool(tbl, "eject", false),
		Gyro:          types.GyroStandard,
		Cockpit:       types.CockpitStandard,
		Structure:     types.Structure{Type: types.StructureStandard},
	}
	if u.Chassis == "" && u.Model == "" {
		u.Chassis, u.Model = splitName(raw.name)
	}
	if y := getInt(tbl, "year"); y != 0 {
		u.Year = y
	}
	if name := getString(tbl, "level"); name != "" {
		l, ok := catalog.ParseTechLevel(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown tech level %q", name)
		}
		u.TechLevel = l
	}

	var ok bool
	if name := getString(tbl, "base"); name != "" {
		i, found := lookup(name, catalog.BaseTypeNames())
		if !found {
			return nil, fmt.Errorf("unknown base type %q", name)
		}
		u.Base = types.BaseType(i)
	}
	if name := getString(tbl, "motive"); name != "" {
		i, found := lookup(name, catalog.MotiveNames(u.Base))
		if !found {
			return nil, fmt.Errorf("unknown motive type %q for %s", name, catalog.BaseTypeName(u.Base))
		}
		u.Motive = types.MotiveType(i)
	}

	if u.Engine, ok = compileEngine(tbl, u.Clan); !ok {
		return nil, fmt.Errorf("unknown engine type %q", engineTypeField(tbl))
	}
	if name := getString(tbl, "structure"); name != "" {
		if u.Structure, ok = parseStructure(name, u.Clan); !ok {
			return nil, fmt.Errorf("unknown structure %q", name)
		}
	}
	if name := getString(tbl, "gyro"); name != "" {
		if u.Gyro, ok = parseGyro(name); !ok {
			return nil, fmt.Errorf("unknown gyro %q", name)
		}
	}
	if name := getString(tbl, "cockpit"); name != "" {
		if u.Cockpit, ok = parseCockpit(name); !ok {
			return nil, fmt.Errorf("unknown cockpit %q", name)
		}
	}
	if name := getString(tbl, "enhancement"); name != "" {
		if u.Enhancement, ok = parseEnhancement(name, u.Clan); !ok {
			return nil, fmt.Errorf("unknown enhancement %q", name)
		}
	}

	armor, err := compileArmor(getTable(tbl, "armor"))
	if err != nil {
		return nil, err
	}
	u.Armor = armor
	return u, nil
}

// splitName splits "Shadow Hawk SHD-2H" into chassis and model at the last
// space.
func splitName(name string) (string, string) {
	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// compileEngine reads engine = { rating = 160, type = "xl", clan = true }.
// A bare rating = 160 field builds a fusion engine.
func compileEngine(tbl *lua.LTable, clan bool) (types.Engine, bool) {
	e := types.Engine{Type: types.EngineNormal}
	et := getTable(tbl, "engine")
	if et == nil {
		e.Rating = getInt(tbl, "rating")
		e.Flags = catalog.EngineFlagsFor(e.Rating, clan)
		return e, true
	}
	e.Rating = getInt(et, "rating")
	clan = getBool(et, "clan", clan)
	if name := getString(et, "type"); name != "" {
		t, ok := parseEngineType(name)
		if !ok {
			return e, false
		}
		e.Type = t
	}
	e.Flags = catalog.EngineFlagsFor(e.Rating, clan)
	return e, true
}

func engineTypeField(tbl *lua.LTable) string {
	if et := getTable(tbl, "engine"); et != nil {
		return getString(et, "type")
	}
	return ""
}

// compileArmor reads armor = { HD = 9, CT = Rear(20, 6), ... }.
func compileArmor(tbl *lua.LTable) (map[types.Location]types.Armor, error) {
	out := map[types.Location]types.Armor{}
	if tbl == nil {
		return out, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		code, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("armor keys must be location codes, got %s", k.Type())
			return
		}
		loc, ok := catalog.ParseLocation(strings.ToUpper(string(code)))
		if !ok {
			err = fmt.Errorf("unknown armor location %q", string(code))
			return
		}
		switch val := v.(type) {
		case lua.LNumber:
			out[loc] = types.Armor{Front: int(val)}
		case *lua.LTable:
			out[loc] = types.Armor{Front: getInt(val, "front"), Rear: getInt(val, "rear")}
		default:
			err = fmt.Errorf("armor %s: expected number or Rear(front, rear)", string(code))
		}
	})
	return out, err
}

// normalize folds case and punctuation: "Heavy-Duty" and "heavy duty"
// compare equal.
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func lookup(name string, labels []string) (int, bool) {
	n := normalize(name)
	for i, l := range labels {
		if normalize(l) == n {
			return i, true
		}
	}
	return 0, false
}

var engineAliases = map[string]types.EngineType{
	"normal":     types.EngineNormal,
	"standard":   types.EngineNormal,
	"ice":        types.EngineCombustion,
	"combustion": types.EngineCombustion,
}

func parseEngineType(name string) (types.EngineType, bool) {
	n := normalize(name)
	if t, ok := engineAliases[n]; ok {
		return t, true
	}
	for t := types.EngineCombustion; t <= types.EngineFission; t++ {
		if normalize(catalog.EngineTypeName(t)) == n {
			return t, true
		}
	}
	return 0, false
}

// parseStructure accepts "Endo Steel" (tech base of the design) as well as
// "Clan Endo Steel" and "IS Endo Steel".
func parseStructure(name string, clan bool) (types.Structure, bool) {
	n := normalize(name)
	for t := types.StructureStandard; t <= types.StructureEndoComposite; t++ {
		for _, c := range []bool{false, true} {
			s := types.Structure{Type: t, Clan: c}
			if normalize(catalog.StructureName(s)) == n {
				if catalog.IsBasicStructure(t) {
					s.Clan = clan
				}
				return s, true
			}
		}
		bare := types.Structure{Type: t, Clan: clan}
		full := normalize(catalog.StructureName(bare))
		if strings.TrimPrefix(strings.TrimPrefix(full, "clan "), "is ") == n {
			return bare, true
		}
	}
	return types.Structure{}, false
}

func parseGyro(name string) (types.GyroType, bool) {
	n := strings.TrimSuffix(normalize(name), " gyro")
	for g := types.GyroStandard; g <= types.GyroSuperheavy; g++ {
		if normalize(catalog.GyroName(g)) == n {
			return g, true
		}
	}
	return 0, false
}

func parseCockpit(name string) (types.CockpitType, bool) {
	n := strings.TrimSuffix(normalize(name), " cockpit")
	for c := types.CockpitStandard; c <= types.CockpitSuperheavyIndustrial; c++ {
		if strings.TrimSuffix(normalize(catalog.CockpitName(c)), " cockpit") == n {
			return c, true
		}
	}
	return 0, false
}

// parseEnhancement accepts lookup keys ("ISMASC") and display names. A bare
// "MASC" follows the tech base of the design.
func parseEnhancement(name string, clan bool) (types.Enhancement, bool) {
	n := normalize(name)
	if n == "none" {
		return types.EnhancementNone, true
	}
	candidates := []types.Enhancement{
		types.EnhancementISMASC, types.EnhancementClanMASC, types.EnhancementTSM,
		types.EnhancementSupercooled, types.EnhancementIndustrialTSM,
	}
	if clan {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}
	for _, e := range candidates {
		if normalize(string(e)) == n ||
			normalize(catalog.EnhancementName(e, true)) == n ||
			normalize(catalog.EnhancementName(e, false)) == n {
			return e, true
		}
	}
	return types.EnhancementNone, false
}

// sortedLuaFiles puts rules.lua first, then the rest alphabetically.
func sortedLuaFiles(files []string) []string {
	var rulesFile string
	var others []string
	for _, f := range files {
		if f == "rules.lua" {
			rulesFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if rulesFile != "" {
		return append([]string{rulesFile}, others...)
	}
	return others
}
