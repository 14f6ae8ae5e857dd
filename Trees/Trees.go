package Trees

import (
	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

// BST represents an unbalanced binary search tree keyed by ordered values.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Find on an
// empty tree returns (x T, false). In this case x is the zero value of T
// and shouldn't be used.
// Duplicates are allowed: an equal value always goes to the right subtree,
// and every Add creates a new node.
// Unless noted otherwise, methods are implemented iteratively, so their stack
// usage doesn't depend on the height of the tree.
type BST[T constraints.Ordered] interface {
	//Add v to the tree. Never fails.
	Add(v T)
	//Remove one node holding v from the tree and return v. Returns
	//*NotFoundError and leaves the tree untouched if v isn't in the tree.
	Remove(v T) (T, error)
	//Replace the first v found on the search path with nv, returning the
	//old value. The tree isn't reordered, so nv must sort where v did.
	Replace(v, nv T) (T, bool)
	//Find returns the stored value equal to v.
	Find(v T) (T, bool)
	//Contains reports whether v is in the tree.
	Contains(v T) bool
	//Height of the tree. An empty tree has height -1, a single node 0.
	Height() int
	//IsBalanced reports whether Height() < 2*log2(Size()+1)-1.
	IsBalanced() bool
	//RangeFind returns the elements at positions low..high, both inclusive,
	//of the default (preorder) iteration sequence.
	RangeFind(low, high int) []T
	//Rebalance rebuilds the tree to minimal height and returns its elements
	//in ascending order.
	Rebalance() []T
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//InOrder returns all elements in ascending order.
	InOrder() []T
	//Iter returns a closure acting like an iterator over the preorder
	//traversal. val, valid=f(); val is meaningful only if valid is true.
	//The tree must not be modified while f is in use.
	Iter() func() (T, bool)
	Size() int
}

var (
	_ BST[int]             = (*LinkedBST[int])(nil)
	_ containers.Container = (*LinkedBST[string])(nil)
)
