package polarprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerSpectrumConstantImage(t *testing.T) {
	img := onesMat(5, 5)
	defer img.Close()

	ps := PowerSpectrum(img)
	defer ps.Close()

	data := ps.DataFloat32()
	// All energy of a constant image sits in the DC term, shifted to the
	// image center. Unnormalized DFT: (sum of pixels)^2 = 625.
	dc := float64(data[2*5+2])
	assert.InDelta(t, 625.0, dc, 1e-2)

	var rest float64
	for i, v := range data {
		if i == 2*5+2 {
			continue
		}
		rest += float64(v)
	}
	assert.InDelta(t, 0.0, rest, 1e-2)
}

func TestPowerSpectrumParseval(t *testing.T) {
	rows, cols := 4, 6
	vals := make([]float64, rows*cols)
	for i := range vals {
		vals[i] = float64((i*7)%11) - 5.0
	}
	img := NewMatFromFloat64(rows, cols, vals)
	defer img.Close()

	ps := PowerSpectrum(img)
	defer ps.Close()

	var spectral float64
	for _, v := range ps.DataFloat32() {
		spectral += float64(v)
	}

	var spatial float64
	for _, v := range img.DataFloat32() {
		spatial += float64(v) * float64(v)
	}

	// Parseval for the unnormalized DFT: sum |F|^2 = N * sum |x|^2.
	want := float64(rows*cols) * spatial
	assert.InDelta(t, want, spectral, want*1e-4)
}

func TestPowerSpectrumProfileConcentratesAtDC(t *testing.T) {
	img := onesMat(5, 5)
	defer img.Close()

	p, err := PowerSpectrumProfile(img, &Config{Mode: ModeSum})
	require.NoError(t, err)
	require.NotEmpty(t, p.Values)

	// The shifted DC term coincides with the default profile center on an
	// odd-sized grid, so the whole energy lands in the innermost bin.
	assert.InDelta(t, 625.0, p.Values[0], 1e-2)
	for i := 1; i < len(p.Values); i++ {
		assert.InDelta(t, 0.0, p.Values[i], 1e-2)
	}
}

func TestPowerSpectrumProfileRejectsEmptyImage(t *testing.T) {
	var empty Mat
	_, err := PowerSpectrumProfile(empty, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
