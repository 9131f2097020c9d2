package pointer

import "math"

// maxTilt keeps tan() away from its singularity at ±90°.
const maxTilt = 89.9

// TiltToOrientation converts W3C tiltX/tiltY angles in degrees to an
// Orientation.
//
// The pen axis is modeled as the vector (tan tx, tan ty, 1). Altitude is the
// angle between that vector and the surface; azimuth is its direction in the
// surface plane. A pen with no tilt has an undefined azimuth and reports π/2.
func TiltToOrientation(tiltX, tiltY float32) Orientation {
	tx := clampTilt(float64(tiltX)) * math.Pi / 180
	ty := clampTilt(float64(tiltY)) * math.Pi / 180

	x, y, z := math.Tan(tx), math.Tan(ty), 1.0
	n := math.Sqrt(x*x + y*y + z*z)
	x, y, z = x/n, y/n, z/n

	altitude := math.Asin(z)
	azimuth := math.Pi / 2
	if x != 0 || y != 0 {
		azimuth = normalizeAngle(math.Atan2(y, x))
	}
	return Orientation{Altitude: float32(altitude), Azimuth: float32(azimuth)}
}

// FromAltitudeAzimuth builds an Orientation from angles reported directly by
// the platform, in radians. Backends prefer this over TiltToOrientation when
// both are available.
func FromAltitudeAzimuth(altitude, azimuth float64) Orientation {
	if math.IsNaN(altitude) || math.IsInf(altitude, 0) {
		altitude = math.Pi / 2
	}
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		azimuth = math.Pi / 2
	}
	altitude = math.Max(0, math.Min(math.Pi/2, altitude))
	return Orientation{Altitude: float32(altitude), Azimuth: float32(normalizeAngle(azimuth))}
}

func clampTilt(deg float64) float64 {
	if math.IsNaN(deg) {
		return 0
	}
	return math.Max(-maxTilt, math.Min(maxTilt, deg))
}

// normalizeAngle maps a to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
