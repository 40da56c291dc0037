package polarprofile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCenter(t *testing.T) {
	t.Run("odd dimensions land on a pixel", func(t *testing.T) {
		c := defaultCenter(5, 5)
		assert.Equal(t, Point2d{X: 2, Y: 2}, c)
	})

	t.Run("even dimensions are fractional", func(t *testing.T) {
		c := defaultCenter(4, 6)
		assert.Equal(t, Point2d{X: 2.5, Y: 1.5}, c)
	})
}

func TestDistanceMap(t *testing.T) {
	r := distanceMap(3, 3, Point2d{X: 1, Y: 1})
	assert.Equal(t, 0.0, r[1*3+1], "center pixel")
	assert.Equal(t, 1.0, r[1*3+2], "one step right")
	assert.InDelta(t, math.Sqrt2, r[0*3+0], 1e-12, "corner")
}

func TestAngleMap(t *testing.T) {
	theta := angleMap(3, 3, Point2d{X: 1, Y: 1})
	// Zero angle points along increasing row index.
	assert.InDelta(t, 0.0, theta[2*3+1], 1e-12)
	assert.InDelta(t, 90.0, theta[1*3+2], 1e-12)
	assert.InDelta(t, 180.0, theta[0*3+1], 1e-12)
	assert.InDelta(t, 270.0, theta[1*3+0], 1e-12)

	for _, v := range theta {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 360.0)
	}
}

func TestBinEdges(t *testing.T) {
	edges := binEdges(2.828, 1.0)
	// round(2.828)+1 = 4 bins, so the last edge clears the max value.
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, edges)

	centers := binCenters(edges)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, centers)
}

func TestBinIndex(t *testing.T) {
	edges := []float64{0, 1, 2, 3}

	assert.Equal(t, 0, binIndex(0, edges), "first edge belongs to first bin")
	assert.Equal(t, 0, binIndex(0.99, edges))
	assert.Equal(t, 1, binIndex(1, edges), "interior edge opens the next bin")
	assert.Equal(t, 2, binIndex(2.5, edges))
	assert.Equal(t, -1, binIndex(3, edges), "last edge is exclusive")
	assert.Equal(t, -1, binIndex(-0.1, edges))
	assert.Equal(t, -1, binIndex(4, edges))
}

func TestMaxAxisExtent(t *testing.T) {
	assert.Equal(t, 2.0, maxAxisExtent(5, 5, Point2d{X: 2, Y: 2}))
	assert.Equal(t, 4.0, maxAxisExtent(3, 5, Point2d{X: 0, Y: 1}))
}
