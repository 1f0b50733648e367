// Package nfnt registers github.com/nfnt/resize interpolation functions under their
// toolkit identifiers. Only nearest, linear and Lanczos are available there.
package nfnt

import (
	"github.com/nfnt/resize"
	"github.com/vearutop/interpolation"
)

// Namespace maps toolkit identifiers to resize interpolation functions.
var Namespace = interpolation.NewTable("nfnt/resize", map[string]resize.InterpolationFunction{
	"sitkNearestNeighbor":     resize.NearestNeighbor,
	"sitkLinear":              resize.Bilinear,
	"sitkLanczosWindowedSinc": resize.Lanczos3,
})

// Resolve returns the resize interpolation function for m.
func Resolve(m interpolation.Mode) (resize.InterpolationFunction, error) {
	return interpolation.ResolveInterpolator[resize.InterpolationFunction](Namespace, m)
}
