package gamma

import (
	"testing"
)

func assertNear(t *testing.T, p0 Coordinate, p1 Coordinate, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Coord(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Coord(8, 10), epsilon)
	assertNear(t, p.Transform(BoostTransform(0)), p, epsilon)
	// γ = 1.25 for v = 0.6.
	assertNear(t, p.Transform(BoostTransform(0.6)), Coord(1.25*(3-0.6*4), 1.25*(4-0.6*3)), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Coord(1, 0)
	pt := Coord(0, 1)
	pxt := Coord(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pt.Transform(a2).Transform(a1), pt.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxt.Transform(a2).Transform(a1), pxt.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	for _, a := range []Affine{
		{0.1, 1.2, 2.3, 3.4, 4.5, 5.6},
		BoostTransform(0.8).PreTranslate(Vec(-2, 3)),
	} {
		aInv := a.Invert()
		for _, p := range []Coordinate{Coord(1, 0), Coord(0, 1), Coord(1, 1)} {
			assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
			assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
		}
	}
}

func TestBoostComposition(t *testing.T) {
	const epsilon = 1e-9
	// Boosting by u and then by w equals a single boost by their
	// relativistic difference.
	u, w := 0.5, -0.3
	p := Coord(2, 7)
	got := p.Transform(BoostTransform(u).ThenBoost(w))
	want := p.Transform(BoostTransform(AddVelocities(u, w)))
	assertNear(t, got, want, epsilon)

	if d := BoostTransform(0.9).Determinant(); d < 1-epsilon || d > 1+epsilon {
		t.Errorf("boost determinant is %v, want 1", d)
	}
}

func TestAffineTranslation(t *testing.T) {
	a := Identity.ThenTranslate(Vec(1, 2)).ThenTranslate(Vec(3, 4))
	diff(t, Vec(4, 6), a.Translation())
	if a.IsNaN() {
		t.Error("translation is NaN")
	}
	if !(Affine{}).Invert().IsNaN() {
		t.Error("inverse of singular transform isn't NaN")
	}
}
