package util

// IsPowerOfTwo reports whether x is a power of two (> 0).
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}

// Index maps a 64-bit hash onto [0, n) as hash mod n.
// Power-of-two sizes take the mask path, which yields the same result.
// n must be positive.
func Index(hash uint64, n int) int {
	if n == 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(n)) {
		return int(hash & uint64(n-1))
	}
	return int(hash % uint64(n))
}
