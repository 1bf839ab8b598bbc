package series

// FirstNonZero returns the index of the first sample that is not exactly
// zero. ok is false when every sample is zero or data is empty.
func FirstNonZero(data []float64) (idx int, ok bool) {
	for i, v := range data {
		if v != 0 {
			return i, true
		}
	}
	return 0, false
}

// LastNonZero returns the index of the last sample that is not exactly zero.
// ok is false when every sample is zero or data is empty.
func LastNonZero(data []float64) (idx int, ok bool) {
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] != 0 {
			return i, true
		}
	}
	return 0, false
}

// LeadingZeros returns the length of the exact-zero run at the start of
// data. For an all-zero slice it returns len(data) and ok=false.
func LeadingZeros(data []float64) (n int, ok bool) {
	idx, ok := FirstNonZero(data)
	if !ok {
		return len(data), false
	}
	return idx, true
}

// TrailingZeros returns the length of the exact-zero run at the end of
// data. For an all-zero slice it returns len(data) and ok=false.
func TrailingZeros(data []float64) (n int, ok bool) {
	idx, ok := LastNonZero(data)
	if !ok {
		return len(data), false
	}
	return len(data) - 1 - idx, true
}
