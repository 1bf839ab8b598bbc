package core

// Fill sets all values in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// ResizeHold returns a new slice of length n holding src. When src is
// shorter than n the tail repeats the last element of src; when src is
// empty the tail is zero. When src is longer it is truncated.
func ResizeHold(src []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	copied := CopyInto(out, src)
	if copied > 0 && copied < n {
		Fill(out[copied:], src[copied-1])
	}
	return out
}
