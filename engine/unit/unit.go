// Package unit manages the mutable unit record: the blank starting unit,
// derived values (movement, structure and armor totals) and armor edits.
package unit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/types"
)

// Defaults for a new unit.
const (
	DefaultYear    = 2075
	DefaultTonnage = 25
	MinHeatSinks   = 10
)

var (
	// ErrUnknownLocation is returned for a location the unit does not have.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrNoRearArmor is returned when rear armor is set on a front-only location.
	ErrNoRearArmor = errors.New("location has no rear armor")
	// ErrArmorExceeded is returned when armor would pass the location maximum.
	ErrArmorExceeded = errors.New("armor exceeds location maximum")
)

// NewDefault creates the unit a fresh session starts with: a 25 ton biped
// with a 25 rated fusion engine and no armor.
func NewDefault() *types.Unit {
	u := &types.Unit{
		Kind:      types.UnitKindMech,
		Year:      DefaultYear,
		TechLevel: types.LevelIntro,
		Tonnage:   DefaultTonnage,
		Base:      types.BaseStandard,
		Motive:    types.MotiveBiped,
		Engine:    types.Engine{Rating: DefaultTonnage, Type: types.EngineNormal},
		Gyro:      types.GyroStandard,
		Cockpit:   types.CockpitStandard,
		Structure: types.Structure{Type: types.StructureStandard},
	}
	ResetArmor(u)
	return u
}

// Clone returns a copy of u that shares no armor map.
func Clone(u *types.Unit) *types.Unit {
	c := *u
	c.Armor = make(map[types.Location]types.Armor, len(u.Armor))
	for loc, a := range u.Armor {
		c.Armor[loc] = a
	}
	return &c
}

// Entity returns the unit class of u.
func Entity(u *types.Unit) types.EntityType {
	return catalog.EntityTypeFor(u.Base, u.Motive)
}

// Title returns "<chassis> <model>", trimmed.
func Title(u *types.Unit) string {
	return strings.TrimSpace(u.Chassis + " " + u.Model)
}

// FileName returns the default file name for saving u. Path separators in
// the chassis or model become dashes.
func FileName(u *types.Unit) string {
	t := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '-'
		}
		return r
	}, Title(u))
	if t == "" || t == "." || t == ".." {
		t = "untitled"
	}
	return t + ".json"
}

// IsSuperheavy reports whether u is above the standard maximum weight.
func IsSuperheavy(u *types.Unit) bool {
	return u.Tonnage > 100
}

// WalkMP returns the walking movement points the engine gives the chassis.
func WalkMP(u *types.Unit) int {
	if u.Tonnage <= 0 {
		return 0
	}
	return u.Engine.Rating / int(math.Ceil(u.Tonnage))
}

// RunMP returns the running movement points.
func RunMP(u *types.Unit) int {
	return int(math.Ceil(float64(WalkMP(u)) * 1.5))
}

// RatingFor returns the engine rating that keeps walk MP at the given
// tonnage, rounded up to a legal rating.
func RatingFor(walk int, tonnage float64) int {
	if walk < 1 {
		walk = 1
	}
	r := walk * int(math.Ceil(tonnage))
	r = (r + 4) / 5 * 5
	switch {
	case r < 10:
		r = 10
	case r > 500:
		r = 500
	}
	return r
}

// HeatSinks returns the total and integral heat sink counts.
func HeatSinks(u *types.Unit) (total, integral int) {
	integral = catalog.IntegralHeatSinks(u.Engine)
	total = MinHeatSinks
	if integral > total {
		total = integral
	}
	return total, integral
}

// TotalInternal sums the internal structure points of every location.
func TotalInternal(u *types.Unit) int {
	n := 0
	for _, loc := range catalog.Locations(Entity(u)) {
		n += catalog.InternalStructure(u.Tonnage, Entity(u), loc)
	}
	return n
}

// MaxArmor returns the armor cap of a location.
func MaxArmor(u *types.Unit, loc types.Location) int {
	return catalog.MaxArmor(u.Tonnage, Entity(u), loc)
}

// TotalMaxArmor sums the armor caps of every location.
func TotalMaxArmor(u *types.Unit) int {
	n := 0
	for _, loc := range catalog.Locations(Entity(u)) {
		n += MaxArmor(u, loc)
	}
	return n
}

// TotalArmor sums front and rear armor over all locations.
func TotalArmor(u *types.Unit) int {
	n := 0
	for _, a := range u.Armor {
		n += a.Front + a.Rear
	}
	return n
}

// HasLocation reports whether u has the location.
func HasLocation(u *types.Unit, loc types.Location) bool {
	for _, l := range catalog.Locations(Entity(u)) {
		if l == loc {
			return true
		}
	}
	return false
}

// ResetArmor zeroes the armor of every location of u.
func ResetArmor(u *types.Unit) {
	u.Armor = map[types.Location]types.Armor{}
	for _, loc := range catalog.Locations(Entity(u)) {
		u.Armor[loc] = types.Armor{}
	}
}

// SetArmor sets the front or rear armor of a location. Front and rear
// together may not pass the location maximum.
func SetArmor(u *types.Unit, loc types.Location, points int, rear bool) error {
	if !HasLocation(u, loc) {
		return fmt.Errorf("%w: %d", ErrUnknownLocation, loc)
	}
	if rear && !catalog.HasRearArmor(loc) {
		return fmt.Errorf("%s: %w", catalog.LocationAbbr(loc), ErrNoRearArmor)
	}
	if points < 0 {
		points = 0
	}
	a := u.Armor[loc]
	if rear {
		a.Rear = points
	} else {
		a.Front = points
	}
	if limit := MaxArmor(u, loc); a.Front+a.Rear > limit {
		return fmt.Errorf("%s: %d > %d: %w", catalog.LocationAbbr(loc), a.Front+a.Rear, limit, ErrArmorExceeded)
	}
	if u.Armor == nil {
		u.Armor = map[types.Location]types.Armor{}
	}
	u.Armor[loc] = a
	return nil
}

// FitArmor drops locations the unit no longer has and trims armor above
// the caps, rear first. It reports whether anything changed.
func FitArmor(u *types.Unit) bool {
	changed := false
	if u.Armor == nil {
		u.Armor = map[types.Location]types.Armor{}
	}
	for loc := range u.Armor {
		if !HasLocation(u, loc) {
			delete(u.Armor, loc)
			changed = true
		}
	}
	for _, loc := range catalog.Locations(Entity(u)) {
		a := u.Armor[loc]
		if over := a.Front + a.Rear - MaxArmor(u, loc); over > 0 {
			cut := min(over, a.Rear)
			a.Rear -= cut
			a.Front -= over - cut
			changed = true
		}
		u.Armor[loc] = a
	}
	return changed
}

// Status returns the one-line summary shown in the status bar.
func Status(u *types.Unit) string {
	hs, _ := HeatSinks(u)
	return fmt.Sprintf("%gt | %s | Walk %d Run %d | IS %d | Armor %d/%d | HS %d",
		u.Tonnage, catalog.EngineFullName(u.Engine), WalkMP(u), RunMP(u),
		TotalInternal(u), TotalArmor(u), TotalMaxArmor(u), hs)
}

// Validate lists the components of u that are not legal under tm.
func Validate(u *types.Unit, tm tech.Manager) []string {
	var problems []string
	check := func(a tech.Advancement) {
		if !tm.IsLegal(a) {
			problems = append(problems, a.Name+" is not available")
		}
	}
	check(tech.StructureAdvancement(u.Structure))
	check(tech.EngineAdvancement(u.Engine))
	check(tech.GyroAdvancement(u.Gyro))
	check(tech.CockpitAdvancement(u.Cockpit))
	check(tech.EnhancementAdvancement(u.Enhancement))
	if u.Omni {
		check(tech.OmniAdvancement())
	}
	if u.FullHeadEject {
		check(tech.FullHeadEjectAdvancement())
	}
	if IsSuperheavy(u) {
		check(tech.SuperheavyAdvancement())
	}
	if u.Tonnage < 20 {
		check(tech.UltraLightAdvancement())
	}
	if !catalog.EngineValid(u.Engine) {
		problems = append(problems, catalog.EngineFullName(u.Engine)+" is not a valid engine")
	}
	return problems
}
