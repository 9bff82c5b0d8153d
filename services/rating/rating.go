package rating

// Recompute returns the mean and count of all recorded rating values. An
// empty set yields (0, 0).
func Recompute(values []float64) (mean float64, count int) {
	if len(values) == 0 {
		return 0, 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), len(values)
}

// Valid reports whether a rating value is inside the accepted 1 to 5 range.
func Valid(value float64) bool {
	return value >= 1 && value <= 5
}
