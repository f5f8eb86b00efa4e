package fifo

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
	nodes   []*testNode[K, V]
	moveCnt int
}

func (h *mockHooks[K, V]) Len() int                   { return len(h.nodes) }
func (h *mockHooks[K, V]) At(i int) policy.Node[K, V] { return h.nodes[i] }
func (h *mockHooks[K, V]) MoveToBack(i int) int       { h.moveCnt++; return i }
func (h *mockHooks[K, V]) Now() int64                 { return 0 }

// --- tests ---

// Hits must leave order and metadata untouched.
func TestFIFO_OnHit_NoOp(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{nodes: []*testNode[string, int]{{k: "a"}, {k: "b"}}}
	p := New[string, int]().New(h)

	if got := p.OnHit(0); got != 0 {
		t.Fatalf("OnHit must keep the index, got %d", got)
	}
	if h.moveCnt != 0 {
		t.Fatal("OnHit must not reorder")
	}
	if m := h.nodes[0].m; m != (policy.Meta{}) {
		t.Fatalf("OnHit must not touch metadata, got %+v", m)
	}
}

// Victim is always the oldest arrival.
func TestFIFO_Victim_Head(t *testing.T) {
	t.Parallel()

	h := &mockHooks[string, int]{}
	p := New[string, int]().New(h)
	if v := p.Victim(); v != -1 {
		t.Fatalf("empty bucket victim = %d, want -1", v)
	}

	h.nodes = []*testNode[string, int]{{k: "a"}, {k: "b"}, {k: "c"}}
	p.OnHit(0)
	if v := p.Victim(); v != 0 {
		t.Fatalf("victim = %d, want 0", v)
	}
	if k := New[string, int]().Kind(); k != policy.Fifo {
		t.Fatalf("Kind = %v", k)
	}
}
