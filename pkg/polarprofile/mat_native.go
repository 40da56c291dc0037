//go:build !purego && !js

package polarprofile

import (
	"gocv.io/x/gocv"
)

// Mat wraps gocv.Mat for the native OpenCV backend.
type Mat struct {
	m gocv.Mat
}

func NewMatWithSize(rows, cols int) Mat {
	return Mat{m: gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)}
}

func (mat Mat) Rows() int { return mat.m.Rows() }

func (mat Mat) Cols() int { return mat.m.Cols() }

// Empty reports whether the Mat holds no data. A zero-value Mat wraps an
// unallocated gocv.Mat whose handle must not reach the C side, so the
// closed check comes first.
func (mat Mat) Empty() bool { return mat.m.Closed() || mat.m.Empty() }

func (mat Mat) Clone() Mat { return Mat{m: mat.m.Clone()} }

func (mat *Mat) Close() { mat.m.Close() }

func (mat Mat) DataFloat32() []float32 {
	data, _ := mat.m.DataPtrFloat32()
	return data
}

// dftPowerSpectrum computes the squared magnitude of the unnormalized 2D DFT.
func dftPowerSpectrum(src Mat) Mat {
	complexMat := gocv.NewMat()
	defer complexMat.Close()
	gocv.DFT(src.m, &complexMat, gocv.DftComplexOutput)

	planes := gocv.Split(complexMat)
	defer planes[0].Close()
	defer planes[1].Close()

	mag := gocv.NewMat()
	defer mag.Close()
	gocv.Magnitude(planes[0], planes[1], &mag)

	power := gocv.NewMat()
	gocv.Multiply(mag, mag, &power)
	return Mat{m: power}
}
