package nfnt_test

import (
	"errors"
	"image"
	"testing"

	"github.com/nfnt/resize"
	"github.com/vearutop/interpolation"
	"github.com/vearutop/interpolation/nfnt"
)

func TestResolve(t *testing.T) {
	cases := map[interpolation.Mode]resize.InterpolationFunction{
		interpolation.Nearest: resize.NearestNeighbor,
		interpolation.Linear:  resize.Bilinear,
		interpolation.Lanczos: resize.Lanczos3,
	}
	for m, want := range cases {
		got, err := nfnt.Resolve(m)
		if err != nil {
			t.Fatalf("resolve %s: %v", m, err)
		}
		if got != want {
			t.Errorf("resolve %s: got %v want %v", m, got, want)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	for _, m := range []interpolation.Mode{
		interpolation.BSpline, interpolation.Gaussian, interpolation.LabelGaussian,
		interpolation.Hamming, interpolation.Cosine, interpolation.Welch, interpolation.Blackman,
	} {
		_, err := nfnt.Resolve(m)
		var re *interpolation.ResolutionError
		if !errors.As(err, &re) {
			t.Fatalf("%s: expected ResolutionError, got %v", m, err)
		}
		if re.Identifier != m.Identifier() {
			t.Fatalf("%s: error names %q", m, re.Identifier)
		}
	}
}

func TestResolvedFunctionResizes(t *testing.T) {
	fn, err := nfnt.Resolve(interpolation.Linear)
	if err != nil {
		t.Fatal(err)
	}
	dst := resize.Resize(5, 3, image.NewRGBA(image.Rect(0, 0, 10, 6)), fn)
	if b := dst.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("unexpected size %v", b)
	}
}
