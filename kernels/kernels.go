// Package kernels registers golang.org/x/image/draw interpolators under their toolkit
// identifiers.
//
// Nearest and linear use the draw package's own interpolators. The remaining modes reuse
// the imaging filters as draw.Kernel values.
package kernels

import (
	"github.com/disintegration/imaging"
	"github.com/vearutop/interpolation"
	"golang.org/x/image/draw"
)

// Namespace maps toolkit identifiers to draw interpolators.
var Namespace = interpolation.NewTable("x/image/draw", map[string]draw.Interpolator{
	"sitkNearestNeighbor":      draw.NearestNeighbor,
	"sitkLinear":               draw.BiLinear,
	"sitkBSpline":              kernel(imaging.BSpline),
	"sitkGaussian":             kernel(imaging.Gaussian),
	"sitkHammingWindowedSinc":  kernel(imaging.Hamming),
	"sitkCosineWindowedSinc":   kernel(imaging.Cosine),
	"sitkWelchWindowedSinc":    kernel(imaging.Welch),
	"sitkLanczosWindowedSinc":  kernel(imaging.Lanczos),
	"sitkBlackmanWindowedSinc": kernel(imaging.Blackman),
})

func kernel(f imaging.ResampleFilter) *draw.Kernel {
	return &draw.Kernel{
		Support: f.Support,
		At:      f.Kernel,
	}
}

// Resolve returns the draw interpolator for m.
func Resolve(m interpolation.Mode) (draw.Interpolator, error) {
	return interpolation.ResolveInterpolator[draw.Interpolator](Namespace, m)
}
