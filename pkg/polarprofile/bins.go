package polarprofile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AzimuthalAverageBins computes the radial profile independently within each
// angular sector. All sectors share the image, center and bin size, so their
// radius bin centers are identical; a divergence would be a logic error and
// is reported as ErrInconsistentBinCenters.
func AzimuthalAverageBins(img Mat, sectors SectorSpec, cfg *Config) (*SectorProfiles, error) {
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

	sectorEdges, fold, err := resolveSectors(sectors)
	if err != nil {
		return nil, err
	}

	center := cfg.centerOr(rows, cols)
	theta := angleMap(rows, cols, center)
	if fold > 0 {
		for i, t := range theta {
			theta[i] = math.Mod(t, fold)
		}
	}

	result := &SectorProfiles{
		SectorEdges: sectorEdges,
		Profiles:    make([]*Profile, 0, len(sectorEdges)-1),
	}
	for s := 0; s < len(sectorEdges)-1; s++ {
		sub := *cfg
		sub.Center = &center
		sub.Mask = intervalMask(theta, sectorEdges[s], sectorEdges[s+1], cfg.Mask)
		p, err := AzimuthalAverage(img, &sub)
		if err != nil {
			return nil, err
		}
		if result.BinCenters == nil {
			result.BinCenters = p.BinCenters
		} else if !floats.Equal(result.BinCenters, p.BinCenters) {
			return nil, fmt.Errorf("%w: sector %d", ErrInconsistentBinCenters, s)
		}
		result.Profiles = append(result.Profiles, p)
	}
	return result, nil
}

// RadialAverageBins computes the azimuthal profile independently within each
// radial band. The shared angle bin centers are subject to the same
// consistency check as AzimuthalAverageBins.
func RadialAverageBins(img Mat, bands BandSpec, cfg *Config) (*BandProfiles, error) {
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

	center := cfg.centerOr(rows, cols)
	r := distanceMap(rows, cols, center)

	bandEdges, err := resolveBands(bands, r, rows, cols, center)
	if err != nil {
		return nil, err
	}

	result := &BandProfiles{
		BandEdges: bandEdges,
		Profiles:  make([]*Profile, 0, len(bandEdges)-1),
	}
	for b := 0; b < len(bandEdges)-1; b++ {
		sub := *cfg
		sub.Center = &center
		sub.Mask = intervalMask(r, bandEdges[b], bandEdges[b+1], cfg.Mask)
		p, err := RadialAverage(img, &sub)
		if err != nil {
			return nil, err
		}
		if result.BinCenters == nil {
			result.BinCenters = p.BinCenters
		} else if !floats.Equal(result.BinCenters, p.BinCenters) {
			return nil, fmt.Errorf("%w: band %d", ErrInconsistentBinCenters, b)
		}
		result.Profiles = append(result.Profiles, p)
	}
	return result, nil
}

// resolveSectors turns a SectorSpec into explicit sector edges plus the
// folding period to apply to the angle map (0 means no folding).
func resolveSectors(spec SectorSpec) (edges []float64, fold float64, err error) {
	switch {
	case spec.Count < 0:
		return nil, 0, fmt.Errorf("%w: sector count must be positive, got %d", ErrInvalidBinSpecification, spec.Count)
	case len(spec.Edges) > 0 && spec.Count > 0:
		return nil, 0, fmt.Errorf("%w: both edges and count set", ErrInvalidBinSpecification)
	case len(spec.Edges) > 0:
		if spec.Symmetry != SymmetryNone {
			return nil, 0, fmt.Errorf("%w: symmetry folding requires a sector count", ErrInvalidBinSpecification)
		}
		if err := checkEdges(spec.Edges); err != nil {
			return nil, 0, err
		}
		return spec.Edges, 0, nil
	case spec.Count > 0:
		span := 360.0
		switch spec.Symmetry {
		case SymmetryNone:
		case SymmetryOneFold:
			span = 180.0
			fold = 180.0
		case SymmetryTwoFold:
			span = 90.0
			fold = 90.0
		default:
			return nil, 0, fmt.Errorf("%w: unknown symmetry %d", ErrInvalidBinSpecification, spec.Symmetry)
		}
		edges = make([]float64, spec.Count+1)
		floats.Span(edges, 0, span)
		return edges, fold, nil
	default:
		return nil, 0, fmt.Errorf("%w: either edges or count must be set", ErrInvalidBinSpecification)
	}
}

// resolveBands turns a BandSpec into explicit band edges.
func resolveBands(spec BandSpec, r []float64, rows, cols int, center Point2d) ([]float64, error) {
	switch {
	case spec.Count < 0:
		return nil, fmt.Errorf("%w: band count must be positive, got %d", ErrInvalidBinSpecification, spec.Count)
	case len(spec.Edges) > 0 && spec.Count > 0:
		return nil, fmt.Errorf("%w: both edges and count set", ErrInvalidBinSpecification)
	case len(spec.Edges) > 0:
		if err := checkEdges(spec.Edges); err != nil {
			return nil, err
		}
		return spec.Edges, nil
	case spec.Count > 0:
		var outer float64
		switch spec.Extent {
		case ExtentCorners:
			outer = floats.Max(r)
		case ExtentAxes:
			outer = maxAxisExtent(rows, cols, center)
		default:
			return nil, fmt.Errorf("%w: unknown band extent %d", ErrInvalidBinSpecification, spec.Extent)
		}
		edges := make([]float64, spec.Count+1)
		floats.Span(edges, 0, outer)
		return edges, nil
	default:
		return nil, fmt.Errorf("%w: either edges or count must be set", ErrInvalidBinSpecification)
	}
}

func checkEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least two edges, got %d", ErrInvalidBinSpecification, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			return fmt.Errorf("%w: edges must be non-decreasing", ErrInvalidBinSpecification)
		}
	}
	return nil
}

// intervalMask restricts base (which may be nil) to pixels whose coord falls
// in the half-open interval [lo, hi).
func intervalMask(coord []float64, lo, hi float64, base []bool) []bool {
	m := make([]bool, len(coord))
	for i, v := range coord {
		m[i] = (base == nil || base[i]) && v >= lo && v < hi
	}
	return m
}
