package Trees

import "math"

// Height [BST.Height]
// Recomputed on every call.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Height() int {
	h := -1
	if u.root == nil {
		return h
	}
	st := []depthNode[T]{{u.root, 0}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, depthNode[T]{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, depthNode[T]{top.n.r, top.d + 1})
		}
	}
	return h
}

// IsBalanced [BST.IsBalanced]
// An empty tree gives -1 < 2*log2(1)-1, so it isn't balanced.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	return float64(u.Height()) < 2*math.Log2(float64(u.sz+1))-1
}

// Rebalance [BST.Rebalance]
// The values are collected in order, the tree is cleared, then the middle
// value of every remaining range is added, left range before right range.
// The result has minimal height when the values are distinct.
// Time: O(n*D)
func (u *LinkedBST[T]) Rebalance() []T {
	all := u.InOrder()
	u.Clear()
	st := make([][2]int, 0, 64)
	for st = append(st, [2]int{0, len(all)}); len(st) > 0; { //[lo,hi)
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] >= top[1] {
			continue
		}
		mid := top[0] + (top[1]-top[0])>>1
		u.Add(all[mid])
		st = append(st, [2]int{mid + 1, top[1]}, [2]int{top[0], mid})
	}
	return all
}
