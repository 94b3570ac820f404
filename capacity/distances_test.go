package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpacing(t *testing.T) {
	got, err := Spacing(20, 22, 1.7, 10, 250)
	require.NoError(t, err)
	assert.Equal(t, Distances{
		MinPitch:        50,
		MinGauge:        50,
		MinEndDistance:  40,
		MinEdgeDistance: 40,
		MaxSpacing:      300,
		MaxEdgeDistance: 120,
	}, got)
}

func TestSpacing_ThinPlate(t *testing.T) {
	// 32t governs below the 300 mm cap; fy above 250 shrinks the maximum
	// edge distance.
	got, err := Spacing(16, 18, 1.5, 6, 350)
	require.NoError(t, err)
	assert.Equal(t, 192, got.MaxSpacing)
	assert.Equal(t, 61, got.MaxEdgeDistance)
	assert.Equal(t, 40, got.MinPitch)
	assert.Equal(t, 30, got.MinEndDistance)
}

func TestSpacing_MinimumsAreMultiplesOfFive(t *testing.T) {
	for d := range tables.NetTensileArea {
		got, err := Spacing(d, float64(d+2), 1.7, 10, 250)
		require.NoError(t, err, "diameter %d", d)
		assert.Zero(t, got.MinPitch%5, "MinPitch for %d mm", d)
		assert.Zero(t, got.MinGauge%5, "MinGauge for %d mm", d)
		assert.Zero(t, got.MinEndDistance%5, "MinEndDistance for %d mm", d)
		assert.Zero(t, got.MinEdgeDistance%5, "MinEdgeDistance for %d mm", d)
	}
}

func TestSpacing_OddDiameterRoundsUp(t *testing.T) {
	// 2.5 x 27 = 67.5, which truncates to 67 and must still land on a
	// multiple of 5.
	got, err := Spacing(27, 30, 1.7, 12, 250)
	require.NoError(t, err)
	assert.Equal(t, 70, got.MinPitch)
}

func TestSpacing_Errors(t *testing.T) {
	_, err := Spacing(14, 16, 1.7, 10, 250)
	assert.ErrorIs(t, err, ErrUnknownDiameter)

	_, err = Spacing(20, 0, 1.7, 10, 250)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Spacing(20, 22, 1.7, -10, 250)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Spacing(20, 22, 1.7, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNetTensileArea(t *testing.T) {
	area, err := NetTensileArea(16)
	require.NoError(t, err)
	assert.Equal(t, 157.0, area)

	area, err = NetTensileArea(36)
	require.NoError(t, err)
	assert.Equal(t, 817.0, area)

	_, err = NetTensileArea(18)
	assert.ErrorIs(t, err, ErrUnknownDiameter)
}
