package utils

// CeilDiv divides a by b rounding up. b must be positive.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// ClampMin returns v, or floor when v is below it.
func ClampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
