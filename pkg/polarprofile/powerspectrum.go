package polarprofile

import "fmt"

// PowerSpectrum returns the squared-magnitude 2D Fourier spectrum of the
// image with the DC component shifted to the image center, ready for radial
// profiling. The transform is unnormalized, so the DC term equals the square
// of the pixel sum. The caller owns the returned Mat.
func PowerSpectrum(img Mat) Mat {
	out := dftPowerSpectrum(img)
	fftShift(&out)
	return out
}

// PowerSpectrumProfile computes the radial profile of the image's shifted
// power spectrum. With ModeSum this yields the per-frequency-band spectral
// power commonly used as an image quality measure.
func PowerSpectrumProfile(img Mat, cfg *Config) (*Profile, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidConfiguration)
	}
	ps := PowerSpectrum(img)
	defer ps.Close()
	return AzimuthalAverage(ps, cfg)
}
