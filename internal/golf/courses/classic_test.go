package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twin-golf/internal/golf/level"
	"github.com/vovakirdan/twin-golf/internal/registry"
)

func TestBuiltinCoursesValidate(t *testing.T) {
	for _, c := range []level.Catalog{Classic(), ClassicPlus()} {
		t.Run(c.ID, func(t *testing.T) {
			require.NoError(t, level.Validate(c))
		})
	}
}

func TestClassicLayout(t *testing.T) {
	c := Classic()
	require.Equal(t, 4, c.Len())

	first := c.Levels[0]
	assert.Equal(t, level.BallPos(11.75, 4.75), first.Primary.BallStart)
	assert.Len(t, first.Primary.Obstacles, 4)
	assert.Len(t, first.Secondary.Obstacles, 4)

	third := c.Levels[2]
	assert.Empty(t, third.Primary.Obstacles)
	require.Len(t, third.Secondary.Obstacles, 1)
	assert.Equal(t, level.Small, third.Secondary.Obstacles[0].Size)

	// The two boards of the last level put their holes on opposite sides
	last := c.Levels[3]
	assert.Less(t, last.Primary.Hole.X, last.Primary.BallStart.X)
	assert.Greater(t, last.Secondary.Hole.X, last.Secondary.BallStart.X)
}

func TestClassicPlusExtendsClassic(t *testing.T) {
	plus := ClassicPlus()
	require.Equal(t, Classic().Len()+1, plus.Len())
	assert.Equal(t, Classic().Levels, plus.Levels[:4])
	assert.Equal(t, "Open Field", plus.Levels[4].Name)
}

func TestFactoriesReturnFreshSlices(t *testing.T) {
	a := Classic()
	a.Levels[0].Primary.Obstacles[0].Size = level.Small

	b := Classic()
	assert.Equal(t, level.Big, b.Levels[0].Primary.Obstacles[0].Size)
}

func TestCoursesRegistered(t *testing.T) {
	assert.True(t, registry.Exists(ClassicID))
	assert.True(t, registry.Exists(ClassicPlusID))

	c, err := registry.Create(ClassicID)
	require.NoError(t, err)
	assert.Equal(t, "Classic", c.Name)
}
