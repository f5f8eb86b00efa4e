// Package util contains internal helpers (key hashing and bucket routing).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"fmt"
	"math"
)

// Fnv64a hashes common key types using 64-bit FNV-1a.
// Supported: string, []byte-like arrays, bool, all int/uint widths, uintptr,
// float32/float64 and fmt.Stringer.
// The same hash feeds every routing level (segment, primary bucket, stash
// bucket), each taking it modulo its own size.
// Unsupported key types panic; pass Options.Hash for those.
func Fnv64a[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return fnvString(v)
	case [16]byte:
		return fnvBytes(v[:])
	case [32]byte:
		return fnvBytes(v[:])
	case bool:
		if v {
			return fnvUint64(1)
		}
		return fnvUint64(0)

	// Integer-like keys hash the 8 little-endian bytes of the widened value,
	// so int64(7) and uint8(7) land in the same bucket.
	case int:
		return fnvUint64(uint64(v))
	case int8:
		return fnvUint64(uint64(v))
	case int16:
		return fnvUint64(uint64(v))
	case int32:
		return fnvUint64(uint64(v))
	case int64:
		return fnvUint64(uint64(v))
	case uint:
		return fnvUint64(uint64(v))
	case uint8:
		return fnvUint64(uint64(v))
	case uint16:
		return fnvUint64(uint64(v))
	case uint32:
		return fnvUint64(uint64(v))
	case uint64:
		return fnvUint64(v)
	case uintptr:
		return fnvUint64(uint64(v))
	case float32:
		return fnvUint64(math.Float64bits(float64(v)))
	case float64:
		return fnvUint64(math.Float64bits(v))

	case fmt.Stringer:
		return fnvString(v.String())
	default:
		panic(fmt.Sprintf("util.Fnv64a: unsupported key type %T; set Options.Hash", k))
	}
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func fnvString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func fnvBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

func fnvUint64(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for range 8 {
		h ^= u & 0xff
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
