package fontface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lumen/fittext"
)

func TestMeasureScalesWithSize(t *testing.T) {
	f, err := NewGoRegular()
	require.NoError(t, err)
	defer f.Close()

	small := f.Measure("Invest in IT startups", 20)
	large := f.Measure("Invest in IT startups", 40)

	assert.Greater(t, small, 0.0)
	assert.InDelta(t, 2*small, large, 0.08*large)
	assert.Equal(t, 0.0, f.Measure("", 40))
}

func TestFaceCachedPerPixelSize(t *testing.T) {
	f, err := NewGoRegular()
	require.NoError(t, err)
	defer f.Close()

	a, err := f.Face(16.2)
	require.NoError(t, err)
	b, err := f.Face(15.8)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = f.Face(-3)
	assert.NoError(t, err)
}

func TestCacheIsBounded(t *testing.T) {
	f, err := NewGoRegular()
	require.NoError(t, err)
	defer f.Close()

	for px := 1; px <= maxCachedSizes*2; px++ {
		_, err := f.Face(float64(px))
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, len(f.faces), maxCachedSizes)
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New([]byte("not a font"))
	assert.Error(t, err)
}

func TestFitsHeadlineToContainer(t *testing.T) {
	f, err := NewGoRegular()
	require.NoError(t, err)
	defer f.Close()

	sizer := fittext.NewSizer(f, 0)
	size := sizer.Fit("Invest in IT startups", 600)

	assert.Greater(t, size, 0.0)
	// Pixel rounding of faces keeps the fitted width within a few percent
	assert.InDelta(t, 600, f.Measure("Invest in IT startups", size), 600*0.06)
}
