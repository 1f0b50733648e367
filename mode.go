package interpolation

import (
	"fmt"
	"strconv"
)

// Mode selects an interpolation technique.
type Mode int

const (
	// Nearest copies the intensity of the nearest pixel.
	Nearest Mode = iota
	// Linear interpolates intensity linearly between neighbors.
	Linear
	// BSpline weights the support region with cubic B-spline coefficients.
	BSpline
	// Gaussian weights neighbors with a Gaussian kernel.
	Gaussian
	// LabelGaussian is the Gaussian variant for label maps.
	LabelGaussian
	// Hamming is a Hamming-windowed sinc.
	Hamming
	// Cosine is a cosine-windowed sinc.
	Cosine
	// Welch is a Welch-windowed sinc.
	Welch
	// Lanczos is a Lanczos-windowed sinc.
	Lanczos
	// Blackman is a Blackman-windowed sinc.
	Blackman

	modeCount
)

var modeNames = [modeCount]string{
	Nearest:       "NEAREST",
	Linear:        "LINEAR",
	BSpline:       "BSPLINE",
	Gaussian:      "GAUSSIAN",
	LabelGaussian: "LABEL_GAUSSIAN",
	Hamming:       "HAMMING",
	Cosine:        "COSINE",
	Welch:         "WELCH",
	Lanczos:       "LANCZOS",
	Blackman:      "BLACKMAN",
}

var modeIdentifiers = [modeCount]string{
	Nearest:       "sitkNearestNeighbor",
	Linear:        "sitkLinear",
	BSpline:       "sitkBSpline",
	Gaussian:      "sitkGaussian",
	LabelGaussian: "sitkLabelGaussian",
	Hamming:       "sitkHammingWindowedSinc",
	Cosine:        "sitkCosineWindowedSinc",
	Welch:         "sitkWelchWindowedSinc",
	Lanczos:       "sitkLanczosWindowedSinc",
	Blackman:      "sitkBlackmanWindowedSinc",
}

// Modes returns all modes in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := Mode(0); m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// Identifier returns the toolkit identifier of m, or an empty string for an invalid mode.
func (m Mode) Identifier() string {
	if !m.Valid() {
		return ""
	}
	return modeIdentifiers[m]
}

// String returns the mode name, e.g. "LABEL_GAUSSIAN".
func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ParseMode matches s exactly against mode names and toolkit identifiers.
// Both "LINEAR" and "sitkLinear" yield Linear; "linear" is rejected.
func ParseMode(s string) (Mode, error) {
	for m := Mode(0); m < modeCount; m++ {
		if s == modeNames[m] || s == modeIdentifiers[m] {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
