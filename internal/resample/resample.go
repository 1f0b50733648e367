// Package resample runs image resizes through one of the registered toolkit namespaces.
package resample

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/vearutop/interpolation"
	"github.com/vearutop/interpolation/filters"
	"github.com/vearutop/interpolation/kernels"
	"github.com/vearutop/interpolation/nfnt"
	"golang.org/x/image/draw"
)

// Backend names an imaging toolkit.
type Backend string

// Available backends.
const (
	BackendImaging Backend = "imaging"
	BackendDraw    Backend = "draw"
	BackendNfnt    Backend = "nfnt"
)

var (
	// ErrInvalidSize is returned for non-positive target dimensions.
	ErrInvalidSize = errors.New("invalid target dimensions")

	// ErrUnknownBackend is returned for backend names outside Backends.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Backends returns all backends, default first.
func Backends() []Backend {
	return []Backend{BackendImaging, BackendDraw, BackendNfnt}
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends() {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Supports reports whether b registers an interpolator for m.
func Supports(b Backend, m interpolation.Mode) bool {
	_, err := Describe(b, m)
	return err == nil
}

// Describe resolves m in b and returns a printable form of the handle.
func Describe(b Backend, m interpolation.Mode) (string, error) {
	switch b {
	case BackendImaging:
		f, err := filters.Resolve(m)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("imaging.ResampleFilter{Support: %g}", f.Support), nil
	case BackendDraw:
		ip, err := kernels.Resolve(m)
		if err != nil {
			return "", err
		}
		if k, ok := ip.(*draw.Kernel); ok {
			return fmt.Sprintf("draw.Kernel{Support: %g}", k.Support), nil
		}
		return fmt.Sprintf("%T", ip), nil
	case BackendNfnt:
		fn, err := nfnt.Resolve(m)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("resize.InterpolationFunction(%d)", int(fn)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, b)
	}
}

// Resize scales img to w x h with mode m using backend b.
func Resize(img image.Image, w, h int, m interpolation.Mode, b Backend) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}

	switch b {
	case BackendImaging:
		f, err := filters.Resolve(m)
		if err != nil {
			return nil, err
		}
		return imaging.Resize(img, w, h, f), nil
	case BackendDraw:
		ip, err := kernels.Resolve(m)
		if err != nil {
			return nil, err
		}
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		ip.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst, nil
	case BackendNfnt:
		fn, err := nfnt.Resolve(m)
		if err != nil {
			return nil, err
		}
		return resize.Resize(uint(w), uint(h), img, fn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b)
	}
}

// Load decodes an image file, applying EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img in the format implied by the extension of path.
func Save(img image.Image, path string, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
