package polarprofile

import "math"

// fillNaN replaces NaN entries of ys by linear interpolation over the
// non-NaN neighbors at the (ascending) sample positions xs. Outside the
// occupied range the nearest occupied value is propagated unless an explicit
// left/right fill is supplied. All-NaN input is left untouched.
func fillNaN(xs, ys []float64, left, right *float64) {
	kx := make([]float64, 0, len(xs))
	ky := make([]float64, 0, len(ys))
	for i, y := range ys {
		if !math.IsNaN(y) {
			kx = append(kx, xs[i])
			ky = append(ky, y)
		}
	}
	if len(kx) == 0 || len(kx) == len(xs) {
		return
	}

	for i, y := range ys {
		if !math.IsNaN(y) {
			continue
		}
		x := xs[i]
		switch {
		case x < kx[0]:
			if left != nil {
				ys[i] = *left
			} else {
				ys[i] = ky[0]
			}
		case x > kx[len(kx)-1]:
			if right != nil {
				ys[i] = *right
			} else {
				ys[i] = ky[len(ky)-1]
			}
		default:
			// Bracket x between consecutive occupied samples.
			j := 1
			for kx[j] < x {
				j++
			}
			t := (x - kx[j-1]) / (kx[j] - kx[j-1])
			ys[i] = ky[j-1] + t*(ky[j]-ky[j-1])
		}
	}
}

// Steps renders the profile as a step function for plotting fidelity: each
// bin emits two samples, at its left and right edge, both holding the bin's
// aggregate value.
func (p *Profile) Steps() (x, y []float64) {
	n := len(p.Values)
	x = make([]float64, 0, 2*n)
	y = make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		x = append(x, p.BinEdges[i], p.BinEdges[i+1])
		y = append(y, p.Values[i], p.Values[i])
	}
	return x, y
}
