package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
)

// Iter [BST.Iter]
// Every call starts a new traversal.
// Time: f(): O(1) at each call to the returned function.
func (u *LinkedBST[T]) Iter() func() (T, bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*node[T])
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

// Range calls f on every value in preorder until f returns false.
func (u *LinkedBST[T]) Range(f func(T) bool) {
	for next := u.Iter(); ; {
		v, ok := next()
		if !ok || !f(v) {
			return
		}
	}
}

// Values returns all values in preorder, the default iteration order.
func (u *LinkedBST[T]) Values() []interface{} {
	res := make([]interface{}, 0, u.sz)
	u.Range(func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

// preOrder is Values without boxing.
func (u *LinkedBST[T]) preOrder() []T {
	res := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

// InOrder [BST.InOrder]
// The returned slice is newly allocated on every call.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) InOrder() []T {
	res := make([]T, 0, u.sz)
	var st []*node[T]
	for cur := u.root; cur != nil || len(st) > 0; cur = cur.r {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		res = append(res, cur.v)
	}
	return res
}

// PostOrder returns all values in left, right, node order.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) PostOrder() []T {
	res := make([]T, 0, u.sz)
	var st []*node[T]
	var last *node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
			continue
		}
		top := st[len(st)-1]
		if top.r != nil && top.r != last {
			cur = top.r
		} else {
			res = append(res, top.v)
			last = top
			st = st[:len(st)-1]
		}
	}
	return res
}

// LevelOrder returns all values level by level, left to right within a level.
// Time: O(n); Space: O(width)
func (u *LinkedBST[T]) LevelOrder() []T {
	res := make([]T, 0, u.sz)
	if u.root == nil {
		return res
	}
	q := Queues.MakeArrayQueue[*node[T]](16)
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		res = append(res, n.v)
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
	return res
}
