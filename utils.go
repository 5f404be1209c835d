package breadth

// extendSlice extends a slice by n elements, reallocating if necessary. The
// new tail is zeroed even when it reuses capacity left by an earlier shrink.
func extendSlice[T any](s []T, n int) []T {
	oldLen := len(s)
	newLen := oldLen + n
	if cap(s) >= newLen {
		s = s[:newLen]
		clear(s[oldLen:])
		return s
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}
