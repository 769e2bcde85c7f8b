// Package calculator holds the arithmetic core of the calculation service.
// Addition follows plain IEEE 754 float64 semantics; NaN and infinities
// propagate rather than being rejected here.
package calculator

// Add returns the sum of two numbers.
func Add(a, b float64) float64 {
	return a + b
}
