package util

import "testing"

func TestIndex_MatchesModulo(t *testing.T) {
	t.Parallel()

	hashes := []uint64{0, 1, 7, 123, 1 << 40, ^uint64(0)}
	for _, n := range []int{1, 2, 3, 10, 16, 28} {
		for _, h := range hashes {
			if got, want := Index(h, n), int(h%uint64(n)); got != want {
				t.Fatalf("Index(%d, %d) = %d, want %d", h, n, got, want)
			}
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for x, want := range map[uint64]bool{0: false, 1: true, 2: true, 3: false, 64: true, 96: false} {
		if got := IsPowerOfTwo(x); got != want {
			t.Fatalf("IsPowerOfTwo(%d) = %v", x, got)
		}
	}
}

type name string

func (n name) String() string { return string(n) }

func TestFnv64a(t *testing.T) {
	t.Parallel()

	// Known FNV-1a vector for the empty input is the offset basis.
	if got := Fnv64a(""); got != fnvOffset64 {
		t.Fatalf("Fnv64a(\"\") = %d", got)
	}
	if Fnv64a("a") == Fnv64a("b") {
		t.Fatal("distinct strings should not collide")
	}
	if Fnv64a(int64(7)) != Fnv64a(uint8(7)) {
		t.Fatal("integer widths must hash identically for equal values")
	}
	if Fnv64a(name("k")) != Fnv64a("k") {
		t.Fatal("Stringer keys hash their String()")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("unsupported key type must panic")
		}
	}()
	Fnv64a(struct{ a int }{1})
}
