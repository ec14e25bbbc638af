package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/chassis"
	"github.com/VicenteCartas/megameklab/engine/parser"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/types"
)

// Fields lists the option fields "options" can show, in display order.
var Fields = []string{"type", "motive", "structure", "engine", "gyro", "cockpit", "enhancement"}

// Step processes one command line and returns what changed.
func (e *Engine) Step(input string) types.Result {
	var result types.Result
	e.refreshed = nil
	e.events = nil

	cmd := parser.Parse(input)
	if cmd.Verb == "" {
		result.Output = append(result.Output, "Type a command, or \"help\" for a list.")
		return result
	}
	logging.Debug("engine", "command %q", input)

	result.Output = e.dispatch(cmd)

	if e.Structure.sync() {
		e.RefreshStatus()
	}
	result.Events = append(e.Structure.Panel.DrainEvents(), e.events...)
	result.Refreshed = e.refreshed
	return result
}

func (e *Engine) dispatch(cmd types.Command) []string {
	p := e.Structure.Panel
	arg := parser.Join(cmd.Args)

	switch cmd.Verb {
	case "tonnage":
		return e.setTonnage(arg)
	case "omni":
		on, ok := parser.Toggle(cmd.Args)
		if !ok {
			return []string{"Use omni on or omni off."}
		}
		if !p.SetOmni(on) {
			return []string{"OmniMech construction is not available for this chassis."}
		}
		return []string{onOff("Omni", p.IsOmni())}
	case "type":
		return e.choose("base type", arg, catalog.BaseTypeNames(), func(i int) bool {
			return p.SetBaseType(types.BaseType(i))
		})
	case "motive":
		return e.choose("motive type", arg, catalog.MotiveNames(p.BaseType()), func(i int) bool {
			return p.SetMotiveType(types.MotiveType(i))
		})
	case "structure":
		o := p.Options()
		return e.choose("structure", arg, StructureLabels(o), func(i int) bool {
			return p.SetStructure(o.Structures[i])
		})
	case "engine":
		o := p.Options()
		return e.choose("engine", arg, EngineLabels(o), func(i int) bool {
			return p.SetEngine(o.Engines[i])
		})
	case "rating":
		return e.setRating(arg)
	case "gyro":
		o := p.Options()
		return e.choose("gyro", arg, GyroLabels(o), func(i int) bool {
			return p.SetGyro(o.Gyros[i])
		})
	case "cockpit":
		o := p.Options()
		return e.choose("cockpit", arg, CockpitLabels(o), func(i int) bool {
			return p.SetCockpit(o.Cockpits[i])
		})
	case "enhancement":
		o := p.Options()
		return e.choose("enhancement", arg, EnhancementLabels(o), func(i int) bool {
			return p.SetEnhancement(o.Enhancements[i])
		})
	case "eject":
		on, ok := parser.Toggle(cmd.Args)
		if !ok {
			return []string{"Use eject on or eject off."}
		}
		if !p.SetFullHeadEject(on) {
			return []string{"Full head ejection is not available with this cockpit."}
		}
		return []string{onOff("Full head ejection", p.HasFullHeadEject())}
	case "reset":
		if !p.Reset() {
			return []string{"Only OmniMechs can reset the chassis."}
		}
		return []string{"Chassis reset."}
	case "refit":
		if p.IsCustomization() {
			return []string{"This design is already being refitted."}
		}
		p.SetAsCustomization()
		e.Refresh(types.ChannelHeader, types.ChannelStructure)
		return []string{"Refitting: tonnage, base type and motive type are now fixed."}
	case "chassis":
		e.Unit.Chassis = arg
		e.RefreshHeader()
		return []string{fmt.Sprintf("Chassis is now %q.", arg)}
	case "model":
		e.Unit.Model = arg
		e.RefreshHeader()
		return []string{fmt.Sprintf("Model is now %q.", arg)}
	case "armor":
		return e.setArmor(cmd.Args)
	case "level", "year":
		return e.setRules(cmd.Verb, arg)
	case "options":
		return e.describeOptions(arg)
	case "status", "look":
		return e.describe()
	case "validate":
		problems := unit.Validate(e.Unit, e.Tech)
		if len(problems) == 0 {
			return []string{"All components are legal."}
		}
		return problems
	case "new":
		return e.newUnit(arg)
	case "help":
		return helpText
	default:
		return []string{fmt.Sprintf("Unknown command %q. Type \"help\" for a list.", cmd.Verb)}
	}
}

// choose matches text against labels and applies the chosen index.
func (e *Engine) choose(field, text string, labels []string, apply func(int) bool) []string {
	if text == "" {
		return []string{fmt.Sprintf("Choose a %s: %s.", field, strings.Join(labels, ", "))}
	}
	i, ok := parser.Match(text, labels)
	if !ok {
		return []string{fmt.Sprintf("%q is not an available %s. Choices: %s.", text, field, strings.Join(labels, ", "))}
	}
	if !apply(i) {
		return []string{fmt.Sprintf("The %s cannot be changed right now.", field)}
	}
	return []string{fmt.Sprintf("%s set to %s.", capitalize(field), labels[i])}
}

func (e *Engine) setTonnage(arg string) []string {
	p := e.Structure.Panel
	o := p.Options()
	t, err := strconv.ParseFloat(arg, 64)
	if err != nil || !p.SetTonnage(int(math.Ceil(t))) {
		if p.IsCustomization() {
			return []string{"Tonnage is fixed for this design."}
		}
		return []string{fmt.Sprintf("Tonnage must be between %d and %d.", o.MinTonnage, o.MaxTonnage)}
	}
	return []string{fmt.Sprintf("Tonnage set to %d; engine rating %d.", p.Tonnage(), e.Unit.Engine.Rating)}
}

func (e *Engine) setRating(arg string) []string {
	r, err := strconv.Atoi(arg)
	if err != nil {
		return []string{"Use rating <number>."}
	}
	candidate := e.Unit.Engine
	candidate.Rating = r
	candidate.Flags = catalog.EngineFlagsFor(r, candidate.Flags&types.EngineFlagClan != 0)
	if !catalog.EngineValid(candidate) {
		return []string{fmt.Sprintf("%d is not a valid rating for a %s engine.", r, catalog.EngineTypeName(candidate.Type))}
	}
	e.Unit.Engine.Rating = r
	e.Structure.Panel.SetEngineRating(r)
	e.Structure.sync()
	e.Refresh(types.ChannelStatus, types.ChannelBuild)
	return []string{fmt.Sprintf("Engine is now %s.", catalog.EngineFullName(e.Unit.Engine))}
}

// setRules changes the rules settings of the session. Every option list is
// resolved again and fallbacks are written into the unit.
func (e *Engine) setRules(verb, arg string) []string {
	ctx, ok := e.Tech.(*tech.Context)
	if !ok {
		return []string{"The rules settings are fixed for this session."}
	}
	switch verb {
	case "level":
		level, ok := catalog.ParseTechLevel(strings.ToLower(arg))
		if !ok {
			return []string{fmt.Sprintf("Unknown tech level %q.", arg)}
		}
		ctx.Level = level
		e.Unit.TechLevel = level
	case "year":
		year, err := strconv.Atoi(arg)
		if err != nil || year < 0 {
			return []string{"Use year <number>."}
		}
		ctx.Year = year
		e.Unit.Year = year
	}
	e.Structure.Refresh()
	e.Structure.sync()
	e.RefreshAll()
	return []string{fmt.Sprintf("Rules: %s, year %d.", catalog.TechLevelName(ctx.Level), ctx.Year)}
}

func (e *Engine) setArmor(args []string) []string {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "max", "maximize":
			e.Armor.Maximize()
			e.armorChanged("all")
			return []string{fmt.Sprintf("Armor maximized at %d points.", unit.TotalArmor(e.Unit))}
		case "clear", "none":
			e.Armor.Clear()
			e.armorChanged("all")
			return []string{"Armor removed."}
		}
	}
	if len(args) < 2 {
		return []string{"Use armor <location> <points> [rear], armor max or armor clear."}
	}
	loc, ok := catalog.ParseLocation(strings.ToUpper(args[0]))
	if !ok {
		return []string{fmt.Sprintf("Unknown location %q.", args[0])}
	}
	points, err := strconv.Atoi(args[1])
	if err != nil {
		return []string{fmt.Sprintf("%q is not a number.", args[1])}
	}
	rear := len(args) > 2 && strings.EqualFold(args[2], "rear")
	if err := e.Armor.Set(loc, points, rear); err != nil {
		switch {
		case errors.Is(err, unit.ErrArmorExceeded):
			return []string{fmt.Sprintf("%s holds at most %d points.", catalog.LocationAbbr(loc), unit.MaxArmor(e.Unit, loc))}
		case errors.Is(err, unit.ErrNoRearArmor):
			return []string{fmt.Sprintf("%s has no rear armor.", catalog.LocationAbbr(loc))}
		default:
			return []string{fmt.Sprintf("This unit has no %s location.", catalog.LocationAbbr(loc))}
		}
	}
	e.armorChanged(catalog.LocationAbbr(loc))
	a := e.Unit.Armor[loc]
	if catalog.HasRearArmor(loc) {
		return []string{fmt.Sprintf("%s armor %d / rear %d.", catalog.LocationAbbr(loc), a.Front, a.Rear)}
	}
	return []string{fmt.Sprintf("%s armor %d.", catalog.LocationAbbr(loc), a.Front)}
}

func (e *Engine) armorChanged(location string) {
	e.events = append(e.events, types.Event{
		Type: types.EventArmorChanged,
		Data: map[string]any{"location": location, "total": unit.TotalArmor(e.Unit)},
	})
	e.Refresh(types.ChannelArmor, types.ChannelStatus)
}

func (e *Engine) newUnit(name string) []string {
	if name == "" {
		e.LoadUnit(unit.NewDefault())
		return []string{"Started a new unit."}
	}
	names := make([]string, 0, len(e.Templates))
	for n := range e.Templates {
		names = append(names, n)
	}
	sort.Strings(names)
	i, ok := parser.Match(name, names)
	if !ok {
		if len(names) == 0 {
			return []string{"No stock designs are loaded."}
		}
		return []string{fmt.Sprintf("No stock design matches %q.", name)}
	}
	e.LoadUnit(unit.Clone(e.Templates[names[i]]))
	e.Refresh(types.ChannelAll)
	return []string{fmt.Sprintf("Loaded %s.", names[i])}
}

// OptionLabels returns the labels of one option field and the index of the
// selected entry.
func (e *Engine) OptionLabels(field string) ([]string, int, bool) {
	p := e.Structure.Panel
	o := p.Options()
	switch field {
	case "type":
		return catalog.BaseTypeNames(), int(p.BaseType()), true
	case "motive":
		return catalog.MotiveNames(p.BaseType()), int(p.MotiveType()), true
	case "structure":
		return StructureLabels(o), o.Structure, true
	case "engine":
		return EngineLabels(o), o.Engine, true
	case "gyro":
		return GyroLabels(o), o.Gyro, true
	case "cockpit":
		return CockpitLabels(o), o.Cockpit, true
	case "enhancement":
		return EnhancementLabels(o), o.Enhancement, true
	}
	return nil, 0, false
}

func (e *Engine) describeOptions(field string) []string {
	fields := Fields
	if field != "" {
		fields = []string{strings.ToLower(field)}
	}
	var out []string
	for _, f := range fields {
		labels, sel, ok := e.OptionLabels(f)
		if !ok {
			return []string{fmt.Sprintf("Unknown field %q. Fields: %s.", field, strings.Join(Fields, ", "))}
		}
		marked := make([]string, len(labels))
		for i, l := range labels {
			if i == sel {
				l = "[" + l + "]"
			}
			marked[i] = l
		}
		out = append(out, fmt.Sprintf("%-12s %s", f+":", strings.Join(marked, ", ")))
	}
	o := e.Structure.Panel.Options()
	out = append(out, fmt.Sprintf("%-12s %d-%d", "tonnage:", o.MinTonnage, o.MaxTonnage))
	return out
}

func (e *Engine) describe() []string {
	p := e.Structure.Panel
	u := e.Unit
	title := unit.Title(u)
	if title == "" {
		title = "(unnamed)"
	}
	return []string{
		title,
		fmt.Sprintf("%s %s, %gt%s", catalog.BaseTypeName(u.Base), catalog.MotiveName(u.Base, u.Motive), u.Tonnage, flagSuffix(u)),
		"Structure:   " + catalog.StructureName(u.Structure),
		"Engine:      " + catalog.EngineFullName(u.Engine),
		"Gyro:        " + catalog.GyroName(u.Gyro),
		"Cockpit:     " + catalog.CockpitName(u.Cockpit),
		"Enhancement: " + catalog.EnhancementName(u.Enhancement, p.Options().ShowEnhancementTechBase),
		onOff("Full head ejection", u.FullHeadEject),
		unit.Status(u),
	}
}

func flagSuffix(u *types.Unit) string {
	var flags []string
	if u.Omni {
		flags = append(flags, "omni")
	}
	if u.Industrial {
		flags = append(flags, "industrial")
	}
	if u.Primitive {
		flags = append(flags, "primitive")
	}
	if unit.IsSuperheavy(u) {
		flags = append(flags, "superheavy")
	}
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ", ") + ")"
}

// StructureLabels returns display labels for the structure options.
func StructureLabels(o chassis.Options) []string {
	out := make([]string, len(o.Structures))
	for i, s := range o.Structures {
		out[i] = catalog.StructureName(s)
	}
	return out
}

// EngineLabels returns display labels for the engine options.
func EngineLabels(o chassis.Options) []string {
	out := make([]string, len(o.Engines))
	for i, en := range o.Engines {
		out[i] = catalog.EngineName(en)
	}
	return out
}

// GyroLabels returns display labels for the gyro options.
func GyroLabels(o chassis.Options) []string {
	out := make([]string, len(o.Gyros))
	for i, g := range o.Gyros {
		out[i] = catalog.GyroName(g)
	}
	return out
}

// CockpitLabels returns display labels for the cockpit options.
func CockpitLabels(o chassis.Options) []string {
	out := make([]string, len(o.Cockpits))
	for i, c := range o.Cockpits {
		out[i] = catalog.CockpitName(c)
	}
	return out
}

// EnhancementLabels returns display labels for the enhancement options.
func EnhancementLabels(o chassis.Options) []string {
	out := make([]string, len(o.Enhancements))
	for i, en := range o.Enhancements {
		out[i] = catalog.EnhancementName(en, o.ShowEnhancementTechBase)
	}
	return out
}

func onOff(label string, on bool) string {
	if on {
		return label + ": on."
	}
	return label + ": off."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var helpText = []string{
	"Chassis:",
	"  tonnage <t>            set the weight",
	"  type <base>            Standard, LAM or QuadVee",
	"  motive <type>          biped, quad, tripod, ...",
	"  structure <name>       internal structure",
	"  engine <name>          engine type",
	"  rating <n>             engine rating",
	"  gyro <name>            gyro type",
	"  cockpit <name>         cockpit type",
	"  enhancement <name>     myomer enhancement",
	"  eject on|off           full head ejection",
	"  omni on|off            OmniMech construction",
	"  reset                  reset an OmniMech chassis",
	"  refit                  fix tonnage and type to refit an existing design",
	"  chassis <name>         chassis name",
	"  model <name>           model name",
	"Armor:",
	"  armor <loc> <n> [rear] set armor (HD CT RT LT RA LA RL LL CL)",
	"  armor max|clear        fill or strip all armor",
	"Rules:",
	"  level <name>           intro, standard, advanced, experimental, unofficial",
	"  year <n>               game year, 0 for any",
	"Inspect:",
	"  options [field]        list available choices",
	"  status                 describe the unit",
	"  validate               check tech legality",
	"  new [design]           start over, optionally from a stock design",
}
