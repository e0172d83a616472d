package scene

import "math"

// Quat is a rotation quaternion. Scene entities only rotate about Z, but
// rotations are stored as full quaternions so documents stay compatible
// with engines that use them everywhere.
type Quat struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// FromEuler builds a quaternion from roll (x), pitch (y), and yaw (z)
// angles in degrees.
func FromEuler(rollDeg, pitchDeg, yawDeg float64) Quat {
	roll := rollDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	yaw := yawDeg * math.Pi / 180

	cr := math.Cos(roll / 2)
	sr := math.Sin(roll / 2)
	cpch := math.Cos(pitch / 2)
	spch := math.Sin(pitch / 2)
	cy := math.Cos(yaw / 2)
	sy := math.Sin(yaw / 2)

	return Quat{
		W: cr*cpch*cy + sr*spch*sy,
		X: sr*cpch*cy - cr*spch*sy,
		Y: cr*spch*cy + sr*cpch*sy,
		Z: cr*cpch*sy - sr*spch*cy,
	}
}

// ToEuler decomposes the quaternion into roll (x), pitch (y), and yaw (z)
// angles in degrees. The asin argument is clamped to [-1, 1] so the
// gimbal-lock boundary yields ±90° pitch instead of NaN.
func (q Quat) ToEuler() (rollDeg, pitchDeg, yawDeg float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	pitch := math.Asin(sinp)

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return roll * 180 / math.Pi, pitch * 180 / math.Pi, yaw * 180 / math.Pi
}

// FromEulerZ builds a quaternion rotating about Z only.
func FromEulerZ(deg float64) Quat {
	return FromEuler(0, 0, deg)
}

// EulerZ returns the rotation about Z in degrees.
func (q Quat) EulerZ() float64 {
	_, _, yaw := q.ToEuler()
	return yaw
}
