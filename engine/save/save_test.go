package save

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteCartas/megameklab/types"
)

func testUnit() *types.Unit {
	return &types.Unit{
		Kind:          types.UnitKindMech,
		Chassis:       "Shadow Hawk",
		Model:         "SHD-2H",
		Year:          3025,
		TechLevel:     types.LevelStandard,
		Tonnage:       55,
		Base:          types.BaseStandard,
		Motive:        types.MotiveBiped,
		Engine:        types.Engine{Rating: 275, Type: types.EngineXL},
		Gyro:          types.GyroStandard,
		Cockpit:       types.CockpitStandard,
		Structure:     types.Structure{Type: types.StructureEndoSteel},
		Enhancement:   types.EnhancementISMASC,
		FullHeadEject: true,
		Armor: map[types.Location]types.Armor{
			types.LocHead:        {Front: 9},
			types.LocCenterTorso: {Front: 23, Rear: 5},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	u := testUnit()

	data, err := Save(u)
	require.NoError(t, err)

	got, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestSave_ArmorKeyedByLocationCode(t *testing.T) {
	data, err := Save(testUnit())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, FormatVersion, raw["version"])
	assert.Equal(t, "standard", raw["tech_level"])
	armor, ok := raw["armor"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, armor, "HD")
	assert.Contains(t, armor, "CT")
}

func TestLoad_RejectsOtherKinds(t *testing.T) {
	_, err := Load([]byte(`{"version":"1","kind":"Tank","tonnage":50}`))
	assert.ErrorIs(t, err, ErrNotMech)

	_, err = Load([]byte(`{"version":"1","tonnage":50}`))
	assert.ErrorIs(t, err, ErrNotMech)
}

func TestLoad_NilArmorBecomesEmpty(t *testing.T) {
	u, err := Load([]byte(`{"version":"1","kind":"Mech","tonnage":20}`))
	require.NoError(t, err)
	assert.NotNil(t, u.Armor)
	assert.Empty(t, u.Armor)
	assert.Equal(t, types.LevelIntro, u.TechLevel)
}

func TestLoad_BadInput(t *testing.T) {
	_, err := Load([]byte(`not json`))
	assert.Error(t, err)

	_, err = Load([]byte(`{"kind":"Mech","armor":{"XX":{"front":1}}}`))
	assert.ErrorContains(t, err, "XX")

	_, err = Load([]byte(`{"kind":"Mech","tech_level":"legendary"}`))
	assert.ErrorContains(t, err, "legendary")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shd.json")

	require.NoError(t, WriteFile(path, testUnit()))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Shadow Hawk", got.Chassis)

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDirExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "units")
	exp := DirExporter{Dir: dir}

	path, err := exp.Export(context.Background(), "Shadow Hawk SHD-2H.json", testUnit())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Shadow Hawk SHD-2H.json"), path)

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 55.0, got.Tonnage)
}

func TestDirExporter_StaysInsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "saves")
	exp := DirExporter{Dir: dir}

	for _, name := range []string{"../escaped X.json", "../../x.json", "..", ""} {
		_, err := exp.Export(context.Background(), name, testUnit())
		assert.ErrorIs(t, err, ErrOutsideDir, name)
	}
	_, err := os.Stat(filepath.Join(root, "escaped X.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path, err := exp.Export(context.Background(), filepath.Join("mechs", "Shadow Hawk.json"), testUnit())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mechs", "Shadow Hawk.json"), path)
	assert.FileExists(t, path)
}
