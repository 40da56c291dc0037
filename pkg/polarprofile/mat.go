package polarprofile

// NewMatFromFloat64 builds a Mat from a flat row-major float64 slice. The
// slice must hold rows*cols values; extra values are ignored.
func NewMatFromFloat64(rows, cols int, values []float64) Mat {
	m := NewMatWithSize(rows, cols)
	dest := m.DataFloat32()
	n := rows * cols
	for i := 0; i < n; i++ {
		dest[i] = float32(values[i])
	}
	return m
}

// NewMatFromUint16 converts a uint16 pixel array to a Mat normalized to
// [0, 1] for the given bit depth.
func NewMatFromUint16(pixels []uint16, bpp, width, height int) Mat {
	m := NewMatWithSize(height, width)
	dest := m.DataFloat32()
	scalingRatio := float32(uint32(1) << uint(bpp))
	numPixels := width * height
	for i := 0; i < numPixels; i++ {
		dest[i] = float32(pixels[i]) / scalingRatio
	}
	return m
}

// fftShift swaps quadrants in place so the DC component moves from index
// (0, 0) to (rows/2, cols/2).
func fftShift(m *Mat) {
	rows, cols := m.Rows(), m.Cols()
	data := m.DataFloat32()
	shifted := make([]float32, rows*cols)
	dr, dc := rows/2, cols/2
	for r := 0; r < rows; r++ {
		sr := (r + dr) % rows
		for c := 0; c < cols; c++ {
			sc := (c + dc) % cols
			shifted[sr*cols+sc] = data[r*cols+c]
		}
	}
	copy(data, shifted)
}
