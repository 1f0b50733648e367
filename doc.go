// Package interpolation names the interpolation modes an image resampler can be asked for
// and resolves them to the interpolator handles a concrete imaging toolkit registers.
//
// A Mode is a closed vocabulary: each value carries the toolkit identifier it is known by
// (for example "sitkLinear"). ResolveInterpolator looks that identifier up in a Namespace
// and returns whatever handle the toolkit keeps under it. The filters, kernels and nfnt
// subpackages provide namespaces backed by real Go imaging libraries.
package interpolation
