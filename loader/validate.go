package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/chassis"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks that every stock design is a buildable Mech and that the
// overrides do not contradict each other.
func validate(pack *Pack) error {
	ve := &ValidationError{}

	forbidden := map[string]bool{}
	for _, name := range pack.Forbid {
		forbidden[name] = true
	}
	for _, name := range pack.Allow {
		if forbidden[name] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"%q is both allowed and forbidden; forbid wins", name))
		}
	}

	names := make([]string, 0, len(pack.Templates))
	for name := range pack.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		validateMech(name, pack.Templates[name], ve)
	}

	for _, w := range ve.Warnings {
		logging.Warn("loader", "%s", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateMech(name string, u *types.Unit, ve *ValidationError) {
	errorf := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("mech %q: ", name)+fmt.Sprintf(format, args...))
	}

	maxTonnage := chassis.MaxTonnage
	switch u.Base {
	case types.BaseLAM:
		maxTonnage = chassis.MaxLAMTonnage
	case types.BaseStandard:
		maxTonnage = chassis.MaxSuperheavyTonnage
	}
	if u.Tonnage < chassis.MinUltraLightTonnage || u.Tonnage > float64(maxTonnage) {
		errorf("tonnage %g is outside %d-%d", u.Tonnage, chassis.MinUltraLightTonnage, maxTonnage)
	}
	if !catalog.EngineValid(u.Engine) {
		errorf("%s is not a valid engine", catalog.EngineFullName(u.Engine))
	}
	if !catalog.StructureExists(u.Structure) {
		errorf("%s does not exist", catalog.StructureName(u.Structure))
	}
	if u.Omni && (u.Base == types.BaseLAM || u.Primitive || u.Industrial) {
		errorf("cannot be an OmniMech")
	}
	if u.Tonnage > 0 && unit.WalkMP(u) < 1 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"mech %q: engine rating %d gives no walking MP", name, u.Engine.Rating))
	}

	for loc, a := range u.Armor {
		if !unit.HasLocation(u, loc) {
			errorf("has no %s location", catalog.LocationAbbr(loc))
			continue
		}
		if a.Rear > 0 && !catalog.HasRearArmor(loc) {
			errorf("%s has no rear armor", catalog.LocationAbbr(loc))
		}
		if limit := unit.MaxArmor(u, loc); a.Front+a.Rear > limit {
			errorf("%s armor %d exceeds %d", catalog.LocationAbbr(loc), a.Front+a.Rear, limit)
		}
	}
	for _, loc := range catalog.Locations(unit.Entity(u)) {
		if _, ok := u.Armor[loc]; !ok {
			u.Armor[loc] = types.Armor{}
		}
	}
}
