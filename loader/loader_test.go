package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/types"
)

func TestLoad_Basic(t *testing.T) {
	pack, err := Load("testdata/basic")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := strings.Join(pack.Files, ","); got != "rules.lua,stock.lua" {
		t.Errorf("Files = %q, want rules.lua first", got)
	}

	ctx := pack.Context
	if ctx == nil {
		t.Fatal("Context is nil")
	}
	if ctx.Year != 3050 || ctx.Level != types.LevelStandard || ctx.Clan || ctx.Mixed {
		t.Errorf("Context = %+v", ctx)
	}
	if !ctx.Allow["Small Cockpit"] {
		t.Error("Small Cockpit should be allowed")
	}
	if !ctx.Forbid["IS Endo Steel"] {
		t.Error("IS Endo Steel should be forbidden")
	}

	if len(pack.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(pack.Templates))
	}
}

func TestLoad_Templates(t *testing.T) {
	pack, err := Load("testdata/basic")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	locust := pack.Templates["Locust LCT-1V"]
	if locust == nil {
		t.Fatal("Locust not found")
	}
	if locust.Chassis != "Locust" || locust.Model != "LCT-1V" {
		t.Errorf("name = %q / %q", locust.Chassis, locust.Model)
	}
	if locust.Kind != types.UnitKindMech {
		t.Errorf("Kind = %q", locust.Kind)
	}
	if locust.Year != 3050 || locust.TechLevel != types.LevelStandard {
		t.Errorf("rules = %d / %v, want the pack context", locust.Year, locust.TechLevel)
	}
	if locust.Engine != (types.Engine{Rating: 160, Type: types.EngineNormal}) {
		t.Errorf("Engine = %+v", locust.Engine)
	}
	if ct := locust.Armor[types.LocCenterTorso]; ct != (types.Armor{Front: 10, Rear: 2}) {
		t.Errorf("CT armor = %+v", ct)
	}
	if len(locust.Armor) != 8 {
		t.Errorf("expected 8 armor locations, got %d", len(locust.Armor))
	}

	hawk := pack.Templates["Shadow Hawk SHD-2H"]
	if hawk.Chassis != "Shadow Hawk" || hawk.Model != "SHD-2H" {
		t.Errorf("name = %q / %q", hawk.Chassis, hawk.Model)
	}
	if hawk.Cockpit != types.CockpitStandard || hawk.Gyro != types.GyroStandard {
		t.Errorf("cockpit/gyro = %v / %v", hawk.Cockpit, hawk.Gyro)
	}
	if len(hawk.Armor) != 8 {
		t.Errorf("unarmored templates still list every location, got %d", len(hawk.Armor))
	}

	uller := pack.Templates["Uller Prime"]
	if !uller.Clan || !uller.Omni {
		t.Errorf("Uller clan/omni = %v / %v", uller.Clan, uller.Omni)
	}
	if uller.Engine != (types.Engine{Rating: 180, Type: types.EngineXL, Flags: types.EngineFlagClan}) {
		t.Errorf("Engine = %+v", uller.Engine)
	}
	if uller.Structure != (types.Structure{Type: types.StructureEndoSteel, Clan: true}) {
		t.Errorf("Structure = %+v", uller.Structure)
	}
	if uller.Enhancement != types.EnhancementClanMASC {
		t.Errorf("Enhancement = %q, want Clan MASC", uller.Enhancement)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	_, err := Load("testdata/invalid")
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(ve.Errors) != 5 {
		t.Errorf("expected 5 errors, got %d:\n%s", len(ve.Errors), strings.Join(ve.Errors, "\n"))
	}

	msg := err.Error()
	for _, want := range []string{
		`mech "Brick": tonnage 300 is outside 10-200`,
		`mech "Brick": 23 Fusion is not a valid engine`,
		`mech "Overdone": HD armor 12 exceeds 9`,
		`mech "Overdone": LA has no rear armor`,
		`mech "Overdone": has no CL location`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got:\n%s", want, msg)
		}
	}
	if len(ve.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", ve.Warnings)
	}
}

func TestLoad_UnknownName(t *testing.T) {
	_, err := Load("testdata/badname")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `compiling mech "Goldie": unknown gyro "gold"`) {
		t.Errorf("error = %v", err)
	}
}

func TestLoad_Sandboxed(t *testing.T) {
	_, err := Load("testdata/sandbox")
	if err == nil {
		t.Fatal("dofile should not be callable")
	}
	if !strings.Contains(err.Error(), "executing rules.lua") {
		t.Errorf("error = %v", err)
	}
}

func TestLoad_ConflictIsWarning(t *testing.T) {
	pack, err := Load("testdata/conflict")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pack.Context != nil {
		t.Error("pack without TechContext should have nil Context")
	}

	ctx := tech.NewContext(3070, types.LevelStandard, false, false)
	pack.Apply(ctx)
	if ctx.IsLegal(tech.GyroAdvancement(types.GyroXL)) {
		t.Error("forbid should win over allow")
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("nothing"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "no .lua files") {
		t.Errorf("error = %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing dir error = %v", err)
	}
}

func TestLoad_BadContext(t *testing.T) {
	dir := t.TempDir()
	src := `TechContext { level = "heroic" }`
	if err := os.WriteFile(filepath.Join(dir, "rules.lua"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), `unknown tech level "heroic"`) {
		t.Errorf("error = %v", err)
	}
}
