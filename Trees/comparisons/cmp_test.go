package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 12

var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

type llrbInt int

func (x llrbInt) Less(than llrb.Item) bool {
	return x < than.(llrbInt)
}

// compares the unbalanced tree, before and after Rebalance, with the ordered
// containers of https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods, and with the hash maps of
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap.
func setupBST(b *testing.B, rebalance bool) *Trees.LinkedBST[int] {
	b.Helper()
	t := Trees.From(keys)
	if rebalance {
		t.Rebalance()
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrbInt(k))
	}
	return t
}

func setupRBT(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, k)
	}
	return t
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func benchmarkBST(b *testing.B, rebalance bool) {
	t := setupBST(b, rebalance)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j, ok := t.Find(k); !ok || j != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadBST(b *testing.B) {
	benchmarkBST(b, false)
}

func BenchmarkReadBSTRebalanced(b *testing.B) {
	benchmarkBST(b, true)
}

func BenchmarkReadBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j, ok := t.Get(k); !ok || j != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j := t.Get(llrbInt(k)); j == nil || j.(llrbInt) != llrbInt(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadRBT(b *testing.B) {
	t := setupRBT(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j, ok := t.Get(k); !ok || j.(int) != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j, ok := m.Get(k); !ok || j != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if j, ok := m.Get(k); !ok || j != k {
				b.Fail()
			}
		}
	}
}

// TestSameOrder checks that every ordered container yields the keys in the
// same order as LinkedBST.InOrder.
func TestSameOrder(t *testing.T) {
	tree := Trees.From(keys)
	want := tree.InOrder()

	bt := btree.NewOrderedG[int](32)
	lt := llrb.New()
	rt := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		bt.ReplaceOrInsert(k)
		lt.ReplaceOrInsert(llrbInt(k))
		rt.Put(k, k)
	}
	var got []int
	bt.Ascend(func(k int) bool {
		got = append(got, k)
		return true
	})
	check := func(name string, got []int) {
		if len(got) != len(want) {
			t.Fatalf("%s has %d keys, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s differs at %d: %d, want %d", name, i, got[i], want[i])
			}
		}
	}
	check("btree", got)

	got = got[:0]
	lt.AscendGreaterOrEqual(llrbInt(want[0]), func(i llrb.Item) bool {
		got = append(got, int(i.(llrbInt)))
		return true
	})
	check("llrb", got)

	got = got[:0]
	for _, k := range rt.Keys() {
		got = append(got, k.(int))
	}
	check("rbt", got)

	tree.Rebalance()
	check("rebalanced", tree.InOrder())
}
