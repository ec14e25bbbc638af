// Package save implements the JSON unit file format.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/types"
)

// FormatVersion is written into every unit file.
const FormatVersion = "1"

// ErrNotMech is returned when a file holds a unit of another kind.
var ErrNotMech = errors.New("not a mech")

// ErrOutsideDir is returned when an export name resolves outside the
// exporter's directory.
var ErrOutsideDir = errors.New("outside the save directory")

// UnitFile is the JSON-serializable unit format. Armor is keyed by
// location code ("HD", "CT", ...).
type UnitFile struct {
	Version       string                 `json:"version"`
	Kind          string                 `json:"kind"`
	Chassis       string                 `json:"chassis"`
	Model         string                 `json:"model"`
	Year          int                    `json:"year"`
	TechLevel     string                 `json:"tech_level"`
	Clan          bool                   `json:"clan"`
	Tonnage       float64                `json:"tonnage"`
	Base          types.BaseType         `json:"base"`
	Motive        types.MotiveType       `json:"motive"`
	Primitive     bool                   `json:"primitive,omitempty"`
	Industrial    bool                   `json:"industrial,omitempty"`
	Omni          bool                   `json:"omni,omitempty"`
	Engine        types.Engine           `json:"engine"`
	Gyro          types.GyroType         `json:"gyro"`
	Cockpit       types.CockpitType      `json:"cockpit"`
	Structure     types.Structure        `json:"structure"`
	Enhancement   types.Enhancement      `json:"enhancement,omitempty"`
	FullHeadEject bool                   `json:"full_head_eject,omitempty"`
	Armor         map[string]types.Armor `json:"armor"`
}

// Save serializes a unit to JSON bytes.
func Save(u *types.Unit) ([]byte, error) {
	f := UnitFile{
		Version:       FormatVersion,
		Kind:          u.Kind,
		Chassis:       u.Chassis,
		Model:         u.Model,
		Year:          u.Year,
		TechLevel:     catalog.TechLevelName(u.TechLevel),
		Clan:          u.Clan,
		Tonnage:       u.Tonnage,
		Base:          u.Base,
		Motive:        u.Motive,
		Primitive:     u.Primitive,
		Industrial:    u.Industrial,
		Omni:          u.Omni,
		Engine:        u.Engine,
		Gyro:          u.Gyro,
		Cockpit:       u.Cockpit,
		Structure:     u.Structure,
		Enhancement:   u.Enhancement,
		FullHeadEject: u.FullHeadEject,
		Armor:         map[string]types.Armor{},
	}
	for loc, a := range u.Armor {
		f.Armor[catalog.LocationAbbr(loc)] = a
	}
	return json.MarshalIndent(f, "", "  ")
}

// Load deserializes JSON bytes into a unit. Units of any kind but Mech are
// rejected with ErrNotMech.
func Load(data []byte) (*types.Unit, error) {
	var f UnitFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Kind != types.UnitKindMech {
		return nil, fmt.Errorf("%q: %w", f.Kind, ErrNotMech)
	}
	level, ok := catalog.ParseTechLevel(f.TechLevel)
	if !ok && f.TechLevel != "" {
		return nil, fmt.Errorf("unknown tech level %q", f.TechLevel)
	}
	u := &types.Unit{
		Kind:          f.Kind,
		Chassis:       f.Chassis,
		Model:         f.Model,
		Year:          f.Year,
		TechLevel:     level,
		Clan:          f.Clan,
		Tonnage:       f.Tonnage,
		Base:          f.Base,
		Motive:        f.Motive,
		Primitive:     f.Primitive,
		Industrial:    f.Industrial,
		Omni:          f.Omni,
		Engine:        f.Engine,
		Gyro:          f.Gyro,
		Cockpit:       f.Cockpit,
		Structure:     f.Structure,
		Enhancement:   f.Enhancement,
		FullHeadEject: f.FullHeadEject,
		// Ensure the map is never nil after load.
		Armor: map[types.Location]types.Armor{},
	}
	for code, a := range f.Armor {
		loc, ok := catalog.ParseLocation(code)
		if !ok {
			return nil, fmt.Errorf("unknown armor location %q", code)
		}
		u.Armor[loc] = a
	}
	return u, nil
}

// WriteFile saves u to path.
func WriteFile(path string, u *types.Unit) error {
	data, err := Save(u)
	if err != nil {
		return fmt.Errorf("encoding unit: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing unit file: %w", err)
	}
	return nil
}

// ReadFile loads a unit from path.
func ReadFile(path string) (*types.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading unit file: %w", err)
	}
	u, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return u, nil
}

// DirExporter writes units as files into a directory.
type DirExporter struct {
	Dir string
}

// Export writes u to Dir under name and returns the file path. The name
// may hold subdirectories of Dir but must stay inside it.
func (d DirExporter) Export(_ context.Context, name string, u *types.Unit) (string, error) {
	path := filepath.Join(d.Dir, name)
	rel, err := filepath.Rel(d.Dir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", name, ErrOutsideDir)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating save dir: %w", err)
	}
	if err := WriteFile(path, u); err != nil {
		return "", err
	}
	return path, nil
}
