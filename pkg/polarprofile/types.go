// Package polarprofile computes radial and azimuthal intensity profiles of
// 2D images, typically FFT power spectra used for frequency-domain image
// quality metrics. Pixel values are aggregated into bins defined either by
// distance from a center point (radial) or by angle around it (azimuthal).
package polarprofile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports a Config that cannot be computed,
	// e.g. weighted standard deviation or a shape-mismatched mask.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidBinSpecification reports a malformed SectorSpec or BandSpec.
	ErrInvalidBinSpecification = errors.New("invalid bin specification")

	// ErrInconsistentBinCenters reports sector/band sub-profiles that
	// disagree on their bin centers.
	ErrInconsistentBinCenters = errors.New("inconsistent bin centers across sub-profiles")
)

// AggregationMode selects the per-bin statistic.
type AggregationMode int

const (
	ModeMean AggregationMode = iota
	ModeSum
	ModeStdDev
)

func (m AggregationMode) String() string {
	switch m {
	case ModeMean:
		return "Mean"
	case ModeSum:
		return "Sum"
	case ModeStdDev:
		return "StdDev"
	default:
		return "Unknown"
	}
}

// Point2d represents a 2D point with float64 coordinates.
type Point2d struct {
	X, Y float64
}

// Default bin widths, in pixels of radius and degrees of angle respectively.
const (
	DefaultRadialBinSize    = 0.5
	DefaultAzimuthalBinSize = 1.0
)

// Config controls profile aggregation. The zero value requests defaults:
// geometric center of the index range, the operation's default bin size,
// weighted mean aggregation with uniform weights, and no mask.
type Config struct {
	// Center is the profile origin; nil means ((cols-1)/2, (rows-1)/2).
	Center *Point2d
	// BinSize is the bin width (radius units for radial profiles, degrees
	// for azimuthal ones). Values <= 0 select the operation default.
	BinSize float64
	// Mode selects the per-bin statistic.
	Mode AggregationMode
	// Weights holds one weight per pixel, flattened row-major; nil means
	// uniform weight 1. Incompatible with ModeStdDev.
	Weights []float64
	// Mask marks pixels that contribute to aggregation, flattened
	// row-major; nil includes every pixel. Treated as a read-only view.
	Mask []bool
	// InterpNaN fills empty (NaN) bins by linear interpolation over the
	// neighboring occupied bin centers.
	InterpNaN bool
	// Left and Right override the fill values used by InterpNaN outside
	// the occupied range; nil propagates the nearest occupied value.
	Left  *float64
	Right *float64
}

// validate checks the config against an image of n pixels.
func (c *Config) validate(n int) error {
	if c.Mode < ModeMean || c.Mode > ModeStdDev {
		return fmt.Errorf("%w: unknown aggregation mode %d", ErrInvalidConfiguration, c.Mode)
	}
	if c.Mode == ModeStdDev && c.Weights != nil {
		return fmt.Errorf("%w: weighted standard deviation is not defined", ErrInvalidConfiguration)
	}
	if c.Weights != nil && len(c.Weights) != n {
		return fmt.Errorf("%w: weights length %d does not match image size %d",
			ErrInvalidConfiguration, len(c.Weights), n)
	}
	if c.Mask != nil && len(c.Mask) != n {
		return fmt.Errorf("%w: mask length %d does not match image size %d",
			ErrInvalidConfiguration, len(c.Mask), n)
	}
	return nil
}

// binSizeOr returns the configured bin size or the given default.
func (c *Config) binSizeOr(def float64) float64 {
	if c.BinSize > 0 {
		return c.BinSize
	}
	return def
}

// centerOr returns the configured center or the index-range midpoint.
func (c *Config) centerOr(rows, cols int) Point2d {
	if c.Center != nil {
		return *c.Center
	}
	return defaultCenter(rows, cols)
}

// Profile is a 1D intensity profile. All slices share one bin count n;
// BinEdges has n+1 entries bounding the half-open intervals
// [BinEdges[i], BinEdges[i+1]). A bin with no contributing pixels holds NaN
// under ModeMean and ModeStdDev and 0 under ModeSum.
type Profile struct {
	BinEdges   []float64
	BinCenters []float64
	Values     []float64
	Counts     []int
}

// Symmetry selects angle folding for integer-count sector generation.
type Symmetry int

const (
	// SymmetryNone divides the full [0, 360) angle range.
	SymmetryNone Symmetry = iota
	// SymmetryOneFold folds angles modulo 180 and divides [0, 180).
	SymmetryOneFold
	// SymmetryTwoFold folds angles modulo 90 and divides [0, 90).
	SymmetryTwoFold
)

// SectorSpec defines angular sectors for AzimuthalAverageBins. Exactly one
// of Edges and Count must be set; Symmetry applies to Count only.
type SectorSpec struct {
	// Edges lists explicit sector boundaries in degrees.
	Edges []float64
	// Count divides the (possibly folded) angle range into Count equal sectors.
	Count    int
	Symmetry Symmetry
}

// BandExtent selects the outer radius used for integer-count band generation.
type BandExtent int

const (
	// ExtentCorners spans [0, max distance from center], reaching the
	// image corners.
	ExtentCorners BandExtent = iota
	// ExtentAxes spans [0, max axis-aligned offset from center], so the
	// outermost band stops at the image edges rather than the corners.
	ExtentAxes
)

// BandSpec defines radial bands for RadialAverageBins. Exactly one of Edges
// and Count must be set; Extent applies to Count only.
type BandSpec struct {
	// Edges lists explicit band boundaries in pixels of radius.
	Edges  []float64
	Count  int
	Extent BandExtent
}

// SectorProfiles holds per-sector radial profiles sharing one radius grid.
type SectorProfiles struct {
	SectorEdges []float64
	BinCenters  []float64
	Profiles    []*Profile
}

// BandProfiles holds per-band azimuthal profiles sharing one angle grid.
type BandProfiles struct {
	BandEdges  []float64
	BinCenters []float64
	Profiles   []*Profile
}
