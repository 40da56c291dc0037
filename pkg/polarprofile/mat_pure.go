//go:build purego || js

package polarprofile

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Mat is a pure Go 2D float32 matrix, row-major and contiguous.
type Mat struct {
	data []float32
	rows int
	cols int
}

func NewMatWithSize(rows, cols int) Mat {
	return Mat{
		data: make([]float32, rows*cols),
		rows: rows,
		cols: cols,
	}
}

func (m Mat) Rows() int   { return m.rows }
func (m Mat) Cols() int   { return m.cols }
func (m Mat) Empty() bool { return m.data == nil || m.rows == 0 || m.cols == 0 }

func (m Mat) Clone() Mat {
	newData := make([]float32, len(m.data))
	copy(newData, m.data)
	return Mat{data: newData, rows: m.rows, cols: m.cols}
}

func (m *Mat) Close() {
	m.data = nil
	m.rows = 0
	m.cols = 0
}

// DataFloat32 returns the backing float32 slice.
func (m Mat) DataFloat32() []float32 {
	return m.data
}

// dftPowerSpectrum computes the squared magnitude of the unnormalized 2D DFT
// of src: a real FFT per row expanded by conjugate symmetry, followed by a
// complex FFT per column.
func dftPowerSpectrum(src Mat) Mat {
	rows, cols := src.rows, src.cols
	data := src.DataFloat32()
	coeff := make([]complex128, rows*cols)

	rowFFT := fourier.NewFFT(cols)
	rowIn := make([]float64, cols)
	rowHalf := make([]complex128, cols/2+1)
	for r := 0; r < rows; r++ {
		rowOff := r * cols
		for c := 0; c < cols; c++ {
			rowIn[c] = float64(data[rowOff+c])
		}
		rowFFT.Coefficients(rowHalf, rowIn)
		for c := 0; c <= cols/2; c++ {
			coeff[rowOff+c] = rowHalf[c]
		}
		for c := cols/2 + 1; c < cols; c++ {
			coeff[rowOff+c] = cmplx.Conj(rowHalf[cols-c])
		}
	}

	colFFT := fourier.NewCmplxFFT(rows)
	colIn := make([]complex128, rows)
	colOut := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = coeff[r*cols+c]
		}
		colFFT.Coefficients(colOut, colIn)
		for r := 0; r < rows; r++ {
			coeff[r*cols+c] = colOut[r]
		}
	}

	out := NewMatWithSize(rows, cols)
	od := out.DataFloat32()
	for i, v := range coeff {
		re, im := real(v), imag(v)
		od[i] = float32(re*re + im*im)
	}
	return out
}
