package scene

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestIdentityQuat(t *testing.T) {
	q := IdentityQuat()
	r, p, y := q.ToEuler()
	if !approxEqual(r, 0, eps) || !approxEqual(p, 0, eps) || !approxEqual(y, 0, eps) {
		t.Errorf("identity ToEuler = (%f,%f,%f), want zeros", r, p, y)
	}
}

func TestEulerZRoundTrip(t *testing.T) {
	for deg := -179.0; deg < 180.0; deg += 7.3 {
		q := FromEulerZ(deg)
		got := q.EulerZ()
		if !approxEqual(got, deg, 1e-9) {
			t.Errorf("EulerZ(FromEulerZ(%f)) = %f", deg, got)
		}
	}
}

func TestQuatEulerQuatRoundTrip(t *testing.T) {
	// For Z-only rotations in (-180, 180), quat -> euler -> quat must
	// reproduce the quaternion components exactly (within epsilon).
	for deg := -170.0; deg <= 170.0; deg += 23.0 {
		q := FromEulerZ(deg)
		r, p, y := q.ToEuler()
		q2 := FromEuler(r, p, y)
		if !approxEqual(q.X, q2.X, eps) || !approxEqual(q.Y, q2.Y, eps) ||
			!approxEqual(q.Z, q2.Z, eps) || !approxEqual(q.W, q2.W, eps) {
			t.Errorf("round trip at %f deg: %+v != %+v", deg, q, q2)
		}
	}
}

func TestGimbalLockClamped(t *testing.T) {
	// A quaternion slightly past the singularity must not produce NaN.
	q := FromEuler(0, 90, 0)
	// Nudge components so 2*(w*y - z*x) computes marginally above 1.
	q.Y += 1e-9
	q.W += 1e-9
	r, p, y := q.ToEuler()
	if math.IsNaN(r) || math.IsNaN(p) || math.IsNaN(y) {
		t.Fatalf("ToEuler produced NaN at gimbal lock: (%f,%f,%f)", r, p, y)
	}
	if !approxEqual(p, 90, 1e-3) {
		t.Errorf("pitch = %f, want ~90", p)
	}
}

func TestMixedAxisRoundTrip(t *testing.T) {
	cases := []struct{ roll, pitch, yaw float64 }{
		{10, 20, 30},
		{-45, 15, -120},
		{0, -60, 90},
	}
	for _, c := range cases {
		q := FromEuler(c.roll, c.pitch, c.yaw)
		r, p, y := q.ToEuler()
		if !approxEqual(r, c.roll, 1e-9) || !approxEqual(p, c.pitch, 1e-9) || !approxEqual(y, c.yaw, 1e-9) {
			t.Errorf("FromEuler(%v) -> ToEuler = (%f,%f,%f)", c, r, p, y)
		}
	}
}
