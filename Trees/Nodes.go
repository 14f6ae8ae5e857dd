package Trees

import "golang.org/x/exp/constraints"

// A node in the LinkedBST.
// l and r are owned exclusively by the node; no two nodes share a child.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// liftMaxInLeft replaces top.v with the maximum value in top's left subtree and
// unlinks the node that held it. The unlinked node has no right child, so its
// left child takes its place.
// top must have a left child.
// Time: O(D); Space: O(1)
func liftMaxInLeft[T constraints.Ordered](top *node[T]) {
	parent, cur := top, top.l
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	top.v = cur.v
	if parent == top {
		top.l = cur.l
	} else {
		parent.r = cur.l
	}
}

// a node paired with its depth, used by the stack based walks.
type depthNode[T constraints.Ordered] struct {
	n *node[T]
	d int
}
