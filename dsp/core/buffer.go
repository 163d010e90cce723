package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []Sample, n int) []Sample {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]Sample, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []Sample) {
	for i := range buf {
		buf[i] = 0
	}
}

// ToFloats widens src into dst (reusing its capacity) without scaling.
func ToFloats(dst []float64, src []Sample) []float64 {
	if cap(dst) >= len(src) {
		dst = dst[:len(src)]
	} else {
		dst = make([]float64, len(src))
	}

	for i, s := range src {
		dst[i] = float64(s)
	}

	return dst
}
