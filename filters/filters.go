// Package filters registers github.com/disintegration/imaging resample filters
// under their toolkit identifiers.
package filters

import (
	"github.com/disintegration/imaging"
	"github.com/vearutop/interpolation"
)

// Namespace maps toolkit identifiers to imaging filters.
// imaging has no label-voting filter, so sitkLabelGaussian is not registered.
var Namespace = interpolation.NewTable("imaging", map[string]imaging.ResampleFilter{
	"sitkNearestNeighbor":      imaging.NearestNeighbor,
	"sitkLinear":               imaging.Linear,
	"sitkBSpline":              imaging.BSpline,
	"sitkGaussian":             imaging.Gaussian,
	"sitkHammingWindowedSinc":  imaging.Hamming,
	"sitkCosineWindowedSinc":   imaging.Cosine,
	"sitkWelchWindowedSinc":    imaging.Welch,
	"sitkLanczosWindowedSinc":  imaging.Lanczos,
	"sitkBlackmanWindowedSinc": imaging.Blackman,
})

// Resolve returns the imaging filter for m.
func Resolve(m interpolation.Mode) (imaging.ResampleFilter, error) {
	return interpolation.ResolveInterpolator[imaging.ResampleFilter](Namespace, m)
}
