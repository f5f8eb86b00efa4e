package lfu

import (
	"testing"

	"github.com/IvanBrykalov/dashcache/policy"
)

// --- test doubles (same shape as in LRU tests) ---

type testNode[K comparable, V any] struct {
	k K
	v V
	m policy.Meta
}

func (n *testNode[K, V]) Key() K             { return n.k }
func (n *testNode[K, V]) Value() *V          { return &n.v }
func (n *testNode[K, V]) Meta() *policy.Meta { return &n.m }

type mockHooks[K comparable, V any] struct {
	nodes []*testNode[K, V]
}

func (h *mockHooks[K, V]) Len() int                   { return len(h.nodes) }
func (h *mockHooks[K, V]) At(i int) policy.Node[K, V] { return h.nodes[i] }
func (h *mockHooks[K, V]) MoveToBack(i int) int       { panic("lfu must not reorder") }
func (h *mockHooks[K, V]) Now() int64                 { return 0 }

func newHooks(keys ...string) *mockHooks[string, int] {
	h := &mockHooks[string, int]{}
	for _, k := range keys {
		h.nodes = append(h.nodes, &testNode[string, int]{k: k})
	}
	return h
}

// OnHit increments the counter by exactly one and keeps the position.
func TestLFU_OnHit_Counts(t *testing.T) {
	t.Parallel()

	h := newHooks("a")
	p := New[string, int]().New(h)
	for range 3 {
		if got := p.OnHit(0); got != 0 {
			t.Fatalf("OnHit must keep the index, got %d", got)
		}
	}
	if hits := h.nodes[0].m.Hits; hits != 3 {
		t.Fatalf("Hits = %d, want 3", hits)
	}
}

// Victim is the least-hit entry; ties resolve to the first occurrence.
func TestLFU_Victim_MinHits(t *testing.T) {
	t.Parallel()

	h := newHooks("a", "b", "c")
	p := New[string, int]().New(h)

	p.OnHit(0)
	p.OnHit(0)
	p.OnHit(2)
	if v := p.Victim(); h.nodes[v].k != "b" {
		t.Fatalf("victim = %q, want b", h.nodes[v].k)
	}

	p.OnHit(1)
	if v := p.Victim(); h.nodes[v].k != "b" {
		t.Fatalf("tie b/c must evict b (first occurrence), got %q", h.nodes[v].k)
	}
	if v := New[string, int]().New(newHooks()).Victim(); v != -1 {
		t.Fatalf("empty bucket victim = %d, want -1", v)
	}
}
