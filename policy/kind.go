package policy

import (
	"fmt"
	"strings"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownPolicy is returned by [FromCode] and [Parse] for inputs that do
// not name one of the supported kinds.
const ErrUnknownPolicy = constError("unknown eviction policy")

// Kind tags the eviction policy of a bucket. The numeric values are the
// stable codes used by external simulators; the zero value is ClassicLRU.
type Kind uint8

const (
	// ClassicLRU moves an entry to the newest end on every hit and evicts
	// from the oldest end.
	ClassicLRU Kind = iota
	// Lifo evicts the most recently inserted entry; hits change nothing.
	Lifo
	// Lfu counts hits per entry and evicts the least frequently used one.
	Lfu
	// Fifo evicts the oldest arrival; hits change nothing.
	Fifo
	// TimestampLRU stamps entries on hit without moving them and evicts the
	// one touched longest ago.
	TimestampLRU

	numKinds
)

var names = [numKinds]string{
	ClassicLRU:   "classic-lru",
	Lifo:         "lifo",
	Lfu:          "lfu",
	Fifo:         "fifo",
	TimestampLRU: "timestamp-lru",
}

// String returns the flag-friendly name of k.
func (k Kind) String() string {
	if k.Valid() {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < numKinds }

// Code returns the external numeric code of k.
func (k Kind) Code() int { return int(k) }

// Kinds returns all supported kinds in code order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// FromCode maps an external numeric code to a Kind.
func FromCode(code int) (Kind, error) {
	if code < 0 || code >= int(numKinds) {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownPolicy, code)
	}
	return Kind(code), nil
}

// Parse maps a policy name to a Kind. Matching is case-insensitive and
// accepts underscores in place of dashes; "lru" is an alias of classic-lru.
func Parse(name string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if n == "lru" {
		return ClassicLRU, nil
	}
	for k, s := range names {
		if s == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
