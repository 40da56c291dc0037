package polarprofile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// defaultCenter returns the midpoint of the image index ranges, including
// fractional pixels for even dimensions.
func defaultCenter(rows, cols int) Point2d {
	return Point2d{
		X: float64(cols-1) / 2.0,
		Y: float64(rows-1) / 2.0,
	}
}

// distanceMap returns the Euclidean distance of every pixel from the center,
// flattened row-major.
func distanceMap(rows, cols int, center Point2d) []float64 {
	r := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		dy := float64(y) - center.Y
		rowOff := y * cols
		for x := 0; x < cols; x++ {
			dx := float64(x) - center.X
			r[rowOff+x] = math.Hypot(dx, dy)
		}
	}
	return r
}

// angleMap returns the angle of every pixel relative to the center in
// degrees, wrapped to [0, 360), flattened row-major. The zero angle points
// along increasing row index, matching the upstream polar convention.
func angleMap(rows, cols int, center Point2d) []float64 {
	theta := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		dy := float64(y) - center.Y
		rowOff := y * cols
		for x := 0; x < cols; x++ {
			dx := float64(x) - center.X
			t := math.Atan2(dx, dy)
			if t < 0 {
				t += 2 * math.Pi
			}
			theta[rowOff+x] = t * 180.0 / math.Pi
		}
	}
	return theta
}

// binEdges partitions [0, maxVal] into bins of the given width. The bin
// count is round(maxVal/width)+1 so the last edge always lies beyond maxVal.
func binEdges(maxVal, width float64) []float64 {
	nbins := int(math.Round(maxVal/width)) + 1
	edges := make([]float64, nbins+1)
	floats.Span(edges, 0, float64(nbins)*width)
	return edges
}

// binCenters returns the midpoints of consecutive edges.
func binCenters(edges []float64) []float64 {
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2.0
	}
	return centers
}

// binIndex returns the index b such that edges[b] <= v < edges[b+1], or -1
// when v falls outside all bins.
func binIndex(v float64, edges []float64) int {
	if v < edges[0] || v >= edges[len(edges)-1] {
		return -1
	}
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i
	}
	return i - 1
}

// maxAxisExtent returns the largest axis-aligned pixel offset from the
// center, i.e. max(|x-cx|, |y-cy|) over the image.
func maxAxisExtent(rows, cols int, center Point2d) float64 {
	ext := math.Abs(0 - center.X)
	for _, v := range []float64{
		math.Abs(float64(cols-1) - center.X),
		math.Abs(0 - center.Y),
		math.Abs(float64(rows-1) - center.Y),
	} {
		if v > ext {
			ext = v
		}
	}
	return ext
}
