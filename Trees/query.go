package Trees

// Find [BST.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Contains [BST.Contains]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Contains(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Count returns the number of nodes holding v.
// Time: O(n)
func (u *LinkedBST[T]) Count(v T) (c int) {
	u.Range(func(x T) bool {
		if x == v {
			c++
		}
		return true
	})
	return
}

// RangeFind [BST.RangeFind]
// The bounds are positions, not values. An empty slice is returned when
// low > high. Panics with *IndexError if low < 0 or high >= Size();
// negative positions aren't counted from the end.
// Time: O(n)
func (u *LinkedBST[T]) RangeFind(low, high int) []T {
	if low > high {
		return []T{}
	}
	if low < 0 || high >= u.sz {
		panic(&IndexError{low, high, u.sz})
	}
	all := u.preOrder()
	res := make([]T, high-low+1)
	copy(res, all[low:high+1])
	return res
}

// Successor [BST.Successor]
// Time: O(n)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	for _, x := range u.InOrder() {
		if v < x {
			return x, true
		}
	}
	return *new(T), false
}

// Predecessor [BST.Predecessor]
// Time: O(n)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	all := u.InOrder()
	for i := len(all) - 1; i >= 0; i-- {
		if v > all[i] {
			return all[i], true
		}
	}
	return *new(T), false
}
