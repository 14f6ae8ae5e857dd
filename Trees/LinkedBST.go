package Trees

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// LinkedBST is a binary search tree made of linked nodes. It performs no
// balancing on mutation; call Rebalance to rebuild it to minimal height.
// Equal values are kept as separate nodes, routed to the right subtree.
// The zero value is an empty tree ready to use.
// LinkedBST isn't safe for concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   int
}

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return new(LinkedBST[T])
}

// From returns a LinkedBST holding the values of sli, added in order.
// Time: O(n*D)
func From[T constraints.Ordered](sli []T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range sli {
		u.Add(v)
	}
	return u
}

// Size returns the number of nodes in the tree.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no nodes.
func (u *LinkedBST[T]) Empty() bool {
	return u.sz == 0
}

// Clear the tree in O(1).
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Add [BST.Add].
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	n := &node[T]{v: v}
	u.sz++
	if u.root == nil {
		u.root = n
		return
	}
	for cur := u.root; ; {
		if v < cur.v {
			if cur.l == nil {
				cur.l = n
				return
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = n
				return
			}
			cur = cur.r
		}
	}
}

// Remove [BST.Remove].
// When the matched node has two children, it keeps its place and takes the
// maximum value of its left subtree; that value's node is unlinked instead.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	if !u.Contains(v) {
		return *new(T), &NotFoundError{v}
	}
	preRoot := &node[T]{l: u.root}
	parent, cur, left := preRoot, u.root, true
	for cur != nil && cur.v != v {
		parent = cur
		if cur.v > v {
			cur, left = cur.l, true
		} else {
			cur, left = cur.r, false
		}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxInLeft(cur)
	} else {
		child := cur.l
		if child == nil {
			child = cur.r
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
	}
	u.sz--
	u.root = preRoot.l
	return removed, nil
}

// Replace [BST.Replace].
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for probe := u.root; probe != nil; {
		if probe.v == v {
			old := probe.v
			probe.v = nv
			return old, true
		} else if probe.v > v {
			probe = probe.l
		} else {
			probe = probe.r
		}
	}
	return *new(T), false
}

// Concat returns a new tree holding the values of u followed by those of w,
// each added in preorder.
func (u *LinkedBST[T]) Concat(w *LinkedBST[T]) *LinkedBST[T] {
	res := New[T]()
	add := func(v T) bool {
		res.Add(v)
		return true
	}
	u.Range(add)
	w.Range(add)
	return res
}

// Equal reports whether u and w have the same size and the same preorder sequence.
// A nil w is equal to nothing.
func (u *LinkedBST[T]) Equal(w *LinkedBST[T]) bool {
	if u == w {
		return true
	}
	if w == nil {
		return false
	}
	if u.sz != w.sz {
		return false
	}
	f, g := u.Iter(), w.Iter()
	for {
		a, ok1 := f()
		b, ok2 := g()
		if ok1 != ok2 || a != b {
			return false
		}
		if !ok1 {
			return true
		}
	}
}

// String returns the tree rotated 90 degrees counterclockwise: the right
// subtree above its parent, the left subtree below, each level indented by "| ".
func (u *LinkedBST[T]) String() string {
	var sb strings.Builder
	var st []depthNode[T]
	for cur, d := u.root, 0; cur != nil || len(st) > 0; {
		for ; cur != nil; cur, d = cur.r, d+1 {
			st = append(st, depthNode[T]{cur, d})
		}
		top := st[len(st)-1]
		st = st[:len(st)-1]
		sb.WriteString(strings.Repeat("| ", top.d))
		fmt.Fprintln(&sb, top.n.v)
		cur, d = top.n.l, top.d+1
	}
	return sb.String()
}
