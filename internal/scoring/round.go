package scoring

import "math"

// Round rounds half-way values up (toward +Inf), so Round(2.5) == 3 and
// Round(-2.5) == -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
