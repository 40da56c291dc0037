package polarprofile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AzimuthalAverage computes the azimuthally aggregated radial profile of the
// image: pixel values grouped by distance from the center into half-open
// bins of width cfg.BinSize (default 0.5). Bins beyond the sampling
// frequency — half the image's horizontal index extent — are truncated, so a
// power spectrum profile stops at the Nyquist-equivalent radius.
func AzimuthalAverage(img Mat, cfg *Config) (*Profile, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidConfiguration)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	rows, cols := img.Rows(), img.Cols()
	if err := cfg.validate(rows * cols); err != nil {
		return nil, err
	}

	binSize := cfg.binSizeOr(DefaultRadialBinSize)
	center := cfg.centerOr(rows, cols)
	r := distanceMap(rows, cols, center)
	edges := binEdges(floats.Max(r), binSize)

	// Exclude frequencies beyond the sampling frequency.
	samplingFreq := float64(cols-1) / 2.0
	nTrue := int(samplingFreq / binSize)
	if n := len(edges) - 1; nTrue > n {
		nTrue = n
	}
	edges = edges[:nTrue+1]

	return aggregate(img, r, edges, cfg), nil
}

// RadialAverage computes the radially aggregated azimuthal profile of the
// image: pixel values grouped by angle around the center into half-open bins
// of cfg.BinSize degrees (default 1.0). Unlike the radial profile, every
// angle bin is retained.
func RadialAverage(img Mat, cfg *Config) (*Profile, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidConfiguration)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	rows, cols := img.Rows(), img.Cols()
	if err := cfg.validate(rows * cols); err != nil {
		return nil, err
	}

	binSize := cfg.binSizeOr(DefaultAzimuthalBinSize)
	center := cfg.centerOr(rows, cols)
	theta := angleMap(rows, cols, center)
	edges := binEdges(floats.Max(theta), binSize)

	return aggregate(img, theta, edges, cfg), nil
}

// aggregate groups pixels into bins by their coord value and computes the
// configured per-bin statistic over mask-passing pixels.
func aggregate(img Mat, coord []float64, edges []float64, cfg *Config) *Profile {
	data := img.DataFloat32()
	nbins := len(edges) - 1

	counts := make([]int, nbins)
	sumW := make([]float64, nbins)
	sumWV := make([]float64, nbins)
	which := make([]int, len(coord))

	for i, v := range coord {
		which[i] = -1
		if cfg.Mask != nil && !cfg.Mask[i] {
			continue
		}
		b := binIndex(v, edges)
		if b < 0 {
			continue
		}
		which[i] = b
		counts[b]++
		w := 1.0
		if cfg.Weights != nil {
			w = cfg.Weights[i]
		}
		sumW[b] += w
		sumWV[b] += w * float64(data[i])
	}

	values := make([]float64, nbins)
	switch cfg.Mode {
	case ModeSum:
		copy(values, sumWV)
	case ModeStdDev:
		// Two-pass population standard deviation. Weights are uniform
		// here; validate rejects the weighted variant.
		mean := make([]float64, nbins)
		for b := range mean {
			if counts[b] > 0 {
				mean[b] = sumWV[b] / float64(counts[b])
			}
		}
		sse := make([]float64, nbins)
		for i, b := range which {
			if b < 0 {
				continue
			}
			d := float64(data[i]) - mean[b]
			sse[b] += d * d
		}
		for b := range values {
			if counts[b] == 0 {
				values[b] = math.NaN()
			} else {
				values[b] = math.Sqrt(sse[b] / float64(counts[b]))
			}
		}
	default:
		// Weighted mean. An empty bin divides 0 by 0 and yields NaN,
		// denoting lack of data rather than an error.
		for b := range values {
			values[b] = sumWV[b] / sumW[b]
		}
	}

	centers := binCenters(edges)
	if cfg.InterpNaN {
		fillNaN(centers, values, cfg.Left, cfg.Right)
	}

	return &Profile{
		BinEdges:   edges,
		BinCenters: centers,
		Values:     values,
		Counts:     counts,
	}
}
