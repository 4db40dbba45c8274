package level

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twin-golf/internal/core"
)

func testdataPath() string {
	return filepath.Join("testdata", "courses")
}

func TestTileConversions(t *testing.T) {
	assert.Equal(t, core.V(188, 76), BallPos(11.75, 4.75))
	assert.Equal(t, core.V(96, 64), TilePos(6, 4))
	assert.Equal(t, core.V(44, 76-HoleOffset), HolePos(2.75, 4.75))
}

func TestObstacleBox(t *testing.T) {
	big := BigTile(6, 0)
	assert.Equal(t, core.NewBox(core.V(96, 0), 32, 32), big.Box())

	small := SmallTile(5, 2)
	assert.Equal(t, core.NewBox(core.V(80, 32), 16, 16), small.Box())
}

func TestCatalogAt(t *testing.T) {
	cat := Catalog{ID: "one", Levels: []Def{{Name: "only"}}}

	def, ok := cat.At(0)
	require.True(t, ok)
	assert.Equal(t, "only", def.Name)

	_, ok = cat.At(1)
	assert.False(t, ok, "index at length means course complete")
	_, ok = cat.At(-1)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	open := BoardDef{BallStart: BallPos(2, 2), Hole: HolePos(10, 10)}

	tests := []struct {
		name string
		cat  Catalog
		code string
	}{
		{"empty", Catalog{ID: "empty"}, "NO_LEVELS"},
		{
			"ball off board",
			Catalog{ID: "x", Levels: []Def{{Primary: BoardDef{BallStart: core.V(400, 0), Hole: HolePos(1, 1)}, Secondary: open}}},
			"OUT_OF_BOUNDS",
		},
		{
			"start in hole",
			Catalog{ID: "x", Levels: []Def{{Primary: open, Secondary: BoardDef{BallStart: BallPos(3, 3), Hole: HolePos(3, 3)}}}},
			"START_IN_HOLE",
		},
		{
			"bad size",
			Catalog{ID: "x", Levels: []Def{{Primary: BoardDef{BallStart: BallPos(2, 2), Hole: HolePos(10, 10), Obstacles: []Obstacle{{Size: SizeClass(7)}}}, Secondary: open}}},
			"BAD_SIZE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cat)
			require.Error(t, err)

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.code, verr.Code)
		})
	}

	assert.NoError(t, Validate(Catalog{ID: "ok", Levels: []Def{{Primary: open, Secondary: open}}}))
}

func TestValidateStartAtCaptureRadius(t *testing.T) {
	open := BoardDef{BallStart: BallPos(2, 2), Hole: HolePos(10, 10)}
	hole := HolePos(10, 10)

	edge := BoardDef{BallStart: hole.Add(core.V(CaptureRadius, 0)), Hole: hole}
	assert.NoError(t, Validate(Catalog{ID: "edge", Levels: []Def{{Primary: open, Secondary: edge}}}))

	inside := BoardDef{BallStart: hole.Add(core.V(CaptureRadius-0.01, 0)), Hole: hole}
	var verr ValidationError
	require.ErrorAs(t, Validate(Catalog{ID: "inside", Levels: []Def{{Primary: open, Secondary: inside}}}), &verr)
	assert.Equal(t, "START_IN_HOLE", verr.Code)
}

func TestParseSize(t *testing.T) {
	size, ok := ParseSize("Big")
	assert.True(t, ok)
	assert.Equal(t, Big, size)

	size, ok = ParseSize(" small ")
	assert.True(t, ok)
	assert.Equal(t, Small, size)

	_, ok = ParseSize("huge")
	assert.False(t, ok)
}

func TestParseYAMLRejectsUnknownSize(t *testing.T) {
	data := []byte(`
id: odd
levels:
  - primary:
      ball: {x: 1, y: 1}
      hole: {x: 9, y: 9}
      obstacles:
        - {x: 4, y: 4, size: huge}
    secondary:
      ball: {x: 1, y: 1}
      hole: {x: 9, y: 9}
`)
	_, err := ParseYAML(data)
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "BAD_SIZE", verr.Code)
}

func TestParseYAMLRequiresID(t *testing.T) {
	_, err := ParseYAML([]byte("name: nameless\n"))
	assert.Error(t, err)
}

func TestLoaderLoadAll(t *testing.T) {
	var skipped []string
	loader := NewLoader(testdataPath())
	loader.OnSkip = func(path string, _ error) {
		skipped = append(skipped, filepath.Base(path))
	}

	courses, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, courses, 2)

	// Sorted by ID, nested directories included
	assert.Equal(t, "alpha", courses[0].ID)
	assert.Equal(t, "bank", courses[1].ID)
	assert.Equal(t, []string{"broken.yaml"}, skipped)

	// Name falls back to ID
	assert.Equal(t, "alpha", courses[0].Name)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testdataPath())

	bank, err := loader.LoadByID("bank")
	require.NoError(t, err)
	assert.Equal(t, "Bank Shots", bank.Name)
	require.Equal(t, 2, bank.Len())

	first := bank.Levels[0]
	assert.Equal(t, "Corner", first.Name)
	assert.Equal(t, BallPos(2, 12), first.Primary.BallStart)
	assert.Equal(t, HolePos(17, 1), first.Primary.Hole)
	require.Len(t, first.Primary.Obstacles, 2)
	assert.Equal(t, Big, first.Primary.Obstacles[0].Size)
	assert.Equal(t, Small, first.Primary.Obstacles[1].Size)
	assert.Empty(t, first.Secondary.Obstacles)

	_, err = loader.LoadByID("missing")
	assert.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join("testdata", "nope")).LoadAll()
	assert.Error(t, err)
}
