// Package astro implements the pure, stateless attitude/pitch kernel
// SPEC_FULL.md §4.7–4.8 treats as an external collaborator: quaternion
// slerp for maneuver profiles, a target attitude for normal-sun mode,
// and sun-pitch/RA-Dec-roll conversions. No ephemeris library exists in
// the retrieved example corpus, so the sun direction is modeled as a
// fixed vector in the inertial frame (settable for tests), keeping every
// function in this package a pure, deterministic computation.
package astro

import (
	"math"

	"github.com/chandraflight/kadistate/chrono"
)

// Quat is a unit quaternion [q1, q2, q3, q4] (vector, scalar) describing
// spacecraft attitude.
type Quat [4]float64

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if n == 0 {
		return q
	}
	return Quat{q[0] / n, q[1] / n, q[2] / n, q[3] / n}
}

// dot returns the inner product of two quaternions.
func dot(a, b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Slerp performs spherical linear interpolation between unit quaternions
// a and b at fraction t in [0, 1].
func Slerp(a, b Quat, t float64) Quat {
	cosTheta := dot(a, b)
	if cosTheta < 0 {
		b = Quat{-b[0], -b[1], -b[2], -b[3]}
		cosTheta = -cosTheta
	}
	if cosTheta > 0.9995 {
		// nearly parallel: fall back to linear interpolation
		out := Quat{
			a[0] + t*(b[0]-a[0]),
			a[1] + t*(b[1]-a[1]),
			a[2] + t*(b[2]-a[2]),
			a[3] + t*(b[3]-a[3]),
		}
		return out.Normalize()
	}
	theta0 := math.Acos(cosTheta)
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	sinTheta := math.Sin(theta)
	s0 := math.Cos(theta) - cosTheta*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0
	return Quat{
		s0*a[0] + s1*b[0],
		s0*a[1] + s1*b[1],
		s0*a[2] + s1*b[2],
		s0*a[3] + s1*b[3],
	}.Normalize()
}

// Angle returns the rotation angle in degrees between two unit
// quaternions.
func Angle(a, b Quat) float64 {
	c := math.Abs(dot(a, b))
	if c > 1 {
		c = 1
	}
	return 2 * math.Acos(c) * 180 / math.Pi
}

// sunVector is the fixed inertial-frame sun direction used by SunPitch
// and NSMAttitude in the absence of a real ephemeris (SPEC_FULL.md §4.8).
var sunVector = [3]float64{1, 0, 0}

// SetSunVector overrides the fixed sun direction, for deterministic
// tests. v need not be normalized.
func SetSunVector(v [3]float64) {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return
	}
	sunVector = [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// bodyXAxis returns the spacecraft +X axis rotated into the inertial
// frame by q.
func bodyXAxis(q Quat) [3]float64 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return [3]float64{
		1 - 2*(y*y+z*z),
		2 * (x*y + z*w),
		2 * (x*z - y*w),
	}
}

// SunPitch returns the angle in degrees between the sun vector and the
// spacecraft +X axis for the attitude described by ra/dec (degrees).
// date is accepted for interface parity with Ska.Sun.pitch; the fixed
// sun model makes it otherwise unused.
func SunPitch(ra, dec float64, date string) float64 {
	_ = date
	rr, dd := ra*math.Pi/180, dec*math.Pi/180
	bodyX := [3]float64{
		math.Cos(dd) * math.Cos(rr),
		math.Cos(dd) * math.Sin(rr),
		math.Sin(dd),
	}
	c := bodyX[0]*sunVector[0] + bodyX[1]*sunVector[1] + bodyX[2]*sunVector[2]
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

// QuatToRADecRoll converts a quaternion to right ascension, declination
// and roll, all in degrees.
func QuatToRADecRoll(q Quat) (ra, dec, roll float64) {
	x := bodyXAxis(q)
	dec = math.Asin(clamp(x[2], -1, 1)) * 180 / math.Pi
	ra = math.Atan2(x[1], x[0]) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}

	// Roll: angle of the body +Z axis projected into the plane
	// perpendicular to the line of sight, measured from local north.
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	zAxis := [3]float64{
		2 * (qx*qz + qy*qw),
		2 * (qy*qz - qx*qw),
		1 - 2*(qx*qx+qy*qy),
	}
	// local north direction at (ra, dec): derivative of line-of-sight
	// with respect to -dec.
	rr, dd := ra*math.Pi/180, dec*math.Pi/180
	north := [3]float64{
		-math.Sin(dd) * math.Cos(rr),
		-math.Sin(dd) * math.Sin(rr),
		math.Cos(dd),
	}
	east := [3]float64{-math.Sin(rr), math.Cos(rr), 0}
	roll = math.Atan2(dotv(zAxis, east), dotv(zAxis, north)) * 180 / math.Pi
	if roll < 0 {
		roll += 360
	}
	return ra, dec, roll
}

func dotv(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NominalRoll returns the roll angle that keeps the sun vector in the
// spacecraft X-Z plane for the given RA/Dec pointing — the reference
// used to compute off_nom_roll.
func NominalRoll(ra, dec float64) float64 {
	rr, dd := ra*math.Pi/180, dec*math.Pi/180
	bodyX := [3]float64{math.Cos(dd) * math.Cos(rr), math.Cos(dd) * math.Sin(rr), math.Sin(dd)}
	north := [3]float64{-math.Sin(dd) * math.Cos(rr), -math.Sin(dd) * math.Sin(rr), math.Cos(dd)}
	east := [3]float64{-math.Sin(rr), math.Cos(rr), 0}
	// project sun vector into the north/east tangent plane
	sn := dotv(sunVector, north)
	se := dotv(sunVector, east)
	_ = bodyX
	return math.Atan2(se, sn) * 180 / math.Pi
}

// AttitudeSample is one point of a maneuver profile: a timestamped
// attitude plus the instantaneous pitch at that time.
type AttitudeSample struct {
	Time  float64
	Q     Quat
	Pitch float64
}

// stepDeg is the angular spacing between samples Attitudes synthesizes
// along a slew, chosen to keep pitch resampling smooth without emitting
// an unbounded number of transitions for large maneuvers.
const stepDeg = 5.0

// maneuverRateDegPerSec is Chandra's nominal single-axis slew rate,
// used only to place sample times along the profile.
const maneuverRateDegPerSec = 0.2

// Attitudes returns a slerp-sampled attitude/pitch profile from curr to
// targ starting at tstart (mission seconds). At least two samples are
// always returned (start and end).
func Attitudes(curr, targ Quat, tstart float64) []AttitudeSample {
	curr = curr.Normalize()
	targ = targ.Normalize()
	angle := Angle(curr, targ)
	n := int(math.Ceil(angle / stepDeg))
	if n < 1 {
		n = 1
	}
	duration := angle / maneuverRateDegPerSec
	samples := make([]AttitudeSample, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := Slerp(curr, targ, t)
		ra, dec, _ := QuatToRADecRoll(q)
		pitch := SunPitch(ra, dec, chrono.SecsToDate(tstart+t*duration))
		samples = append(samples, AttitudeSample{Time: tstart + t*duration, Q: q, Pitch: pitch})
	}
	return samples
}

// NSMAttitude returns the target attitude for normal-sun mode: the
// spacecraft +X axis rotated onto the (fixed) sun vector with roll 0.
// curr is not read; the twist of the current attitude is not preserved.
func NSMAttitude(curr Quat, date string) Quat {
	_ = date
	ra := math.Atan2(sunVector[1], sunVector[0]) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}
	dec := math.Asin(clamp(sunVector[2], -1, 1)) * 180 / math.Pi
	return fromRADecRoll(ra, dec, 0)
}

// fromRADecRoll is the inverse of QuatToRADecRoll (X axis pointed at
// ra/dec, Z axis rotated from celestial north toward east by roll).
// Used to synthesize NSMAttitude targets, always with roll 0.
func fromRADecRoll(ra, dec, roll float64) Quat {
	rr, dd, rl := ra*math.Pi/180, dec*math.Pi/180, roll*math.Pi/180

	// Build an orthonormal body frame (X, Y, Z) from ra/dec/roll, then
	// convert the rotation matrix to a quaternion.
	bx := [3]float64{math.Cos(dd) * math.Cos(rr), math.Cos(dd) * math.Sin(rr), math.Sin(dd)}
	north := [3]float64{-math.Sin(dd) * math.Cos(rr), -math.Sin(dd) * math.Sin(rr), math.Cos(dd)}
	east := [3]float64{-math.Sin(rr), math.Cos(rr), 0}
	bz := [3]float64{
		north[0]*math.Cos(rl) + east[0]*math.Sin(rl),
		north[1]*math.Cos(rl) + east[1]*math.Sin(rl),
		north[2]*math.Cos(rl) + east[2]*math.Sin(rl),
	}
	by := cross(bz, bx)

	// rotation matrix with columns bx, by, bz -> quaternion
	m00, m01, m02 := bx[0], by[0], bz[0]
	m10, m11, m12 := bx[1], by[1], bz[1]
	m20, m21, m22 := bx[2], by[2], bz[2]

	tr := m00 + m11 + m22
	var q Quat
	if tr > 0 {
		s := math.Sqrt(tr+1) * 2
		q = Quat{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, s / 4}
	} else if m00 > m11 && m00 > m22 {
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = Quat{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	} else if m11 > m22 {
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = Quat{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m02 - m20) / s}
	} else {
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = Quat{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m10 - m01) / s}
	}
	return q.Normalize()
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
