package utils

import "math"

// RoundDiv divides n by d and rounds half to even, the same way the original
// chat bot rounded message rewards (round(47/10) == 5, round(25/10) == 2).
// d must be positive.
func RoundDiv(n, d int) int64 {
	if d <= 0 {
		return 0
	}
	return int64(math.RoundToEven(float64(n) / float64(d)))
}
