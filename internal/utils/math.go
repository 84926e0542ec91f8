// internal/utils/math.go
package utils

import "math"

// WrapAngle maps any angle into [-π, π].
func WrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// LerpAngle turns from toward to by fraction t along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	return WrapAngle(from + WrapAngle(to-from)*t)
}
