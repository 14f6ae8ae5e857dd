package Trees

import (
	"testing"
)

var (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

func create(b *testing.B) (*LinkedBST[int], []int) {
	b.Helper()
	all := rg.Perm(bAddN)
	return From(all), all
}

func BenchmarkAdd(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for range bAddN {
			tree.Add(rg.Int())
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

var sideEff bool

func BenchmarkFind(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = tree.Find(v)
		}
	}
}

func BenchmarkFindRebalanced(b *testing.B) {
	tree, all := create(b)
	tree.Rebalance()
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = tree.Find(v)
		}
	}
}

func BenchmarkRebalance(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.Rebalance()
	}
}

func BenchmarkIter(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.Range(func(int) bool {
			return true
		})
	}
}
