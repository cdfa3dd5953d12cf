package list

import "iter"

// Node is a link in a circular doubly-linked list, embedded in the element
// it links. The same type serves as the list head.
//
// The zero value is an unlinked node. A zero-value head is initialized
// lazily by the head-side operations, so it can be used without Init.
type Node[T any] struct {
	next, prev *Node[T]
	value      *T
}

// Init makes n an empty ring (a list head with no elements).
// Any elements previously linked to n are forgotten, not unlinked.
func (n *Node[T]) Init() *Node[T] {
	n.next = n
	n.prev = n
	return n
}

func (n *Node[T]) lazyInit() {
	if n.next == nil {
		n.Init()
	}
}

// Bind records v as the element n is embedded in and returns n.
func (n *Node[T]) Bind(v *T) *Node[T] {
	n.value = v
	return n
}

// Value returns the bound element, or nil.
func (n *Node[T]) Value() *T { return n.value }

// Linked reports whether n is part of a ring.
func (n *Node[T]) Linked() bool { return n.next != nil }

// Empty reports whether the list headed by n has no elements.
func (n *Node[T]) Empty() bool { return n.next == nil || n.next == n }

// Next returns the following node in the ring, or nil if n is unlinked.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node in the ring, or nil if n is unlinked.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Len counts the elements of the list headed by n. O(n).
func (n *Node[T]) Len() int {
	if n.next == nil {
		return 0
	}
	count := 0
	for p := n.next; p != n; p = p.next {
		count++
	}
	return count
}

// First returns the first element, or nil if the list is empty.
func (n *Node[T]) First() *T {
	if n.Empty() {
		return nil
	}
	return n.next.value
}

// Last returns the last element, or nil if the list is empty.
func (n *Node[T]) Last() *T {
	if n.Empty() {
		return nil
	}
	return n.prev.value
}

// insert links node between prev and next, which must be adjacent.
func insert[T any](node, prev, next *Node[T]) {
	next.prev = node
	node.next = next
	node.prev = prev
	prev.next = node
}

// unlink joins n's neighbours. n's own links are left stale.
func unlink[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Add inserts node right after the head n (at the front of the list).
// node must not be linked into any list.
func (n *Node[T]) Add(node *Node[T]) {
	n.lazyInit()
	insert(node, n, n.next)
}

// AddTail inserts node right before the head n (at the back of the list).
// node must not be linked into any list.
func (n *Node[T]) AddTail(node *Node[T]) {
	n.lazyInit()
	insert(node, n.prev, n)
}

// Delete unlinks n from its list and clears its links.
// Deleting an unlinked node does nothing.
func (n *Node[T]) Delete() {
	if n.next == nil {
		return
	}
	unlink(n)
	n.next = nil
	n.prev = nil
}

// Move unlinks node from whatever list holds it and inserts it at the front
// of the list headed by n. An unlinked node is simply added.
func (n *Node[T]) Move(node *Node[T]) {
	if node == n {
		return
	}
	n.lazyInit()
	if node.next != nil {
		unlink(node)
	}
	insert(node, n, n.next)
}

// MoveTail is like Move but inserts node at the back of the list.
func (n *Node[T]) MoveTail(node *Node[T]) {
	if node == n {
		return
	}
	n.lazyInit()
	if node.next != nil {
		unlink(node)
	}
	insert(node, n.prev, n)
}

// Splice moves all elements of the list headed by other to the front of the
// list headed by n, keeping their order. other is left empty.
func (n *Node[T]) Splice(other *Node[T]) {
	if other == n || other.Empty() {
		return
	}
	n.lazyInit()

	first, last, at := other.next, other.prev, n.next

	first.prev = n
	n.next = first
	last.next = at
	at.prev = last

	other.Init()
}

// All iterates the elements from front to back.
//
// The list must not be modified during the walk; use AllSafe for that.
func (n *Node[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if n.next == nil {
			return
		}
		for p := n.next; p != n; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Backward iterates the elements from back to front.
func (n *Node[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if n.prev == nil {
			return
		}
		for p := n.prev; p != n; p = p.prev {
			if !yield(p.value) {
				return
			}
		}
	}
}

// AllSafe iterates front to back and tolerates deleting or moving the
// yielded element, within the list or to another one. The walk ends at the
// element that was last when it started. Other nodes must not be removed
// during the walk.
func (n *Node[T]) AllSafe() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if n.next == nil {
			return
		}
		last := n.prev
		for p := n.next; p != n; {
			next := p.next
			if !yield(p.value) || p == last {
				return
			}
			p = next
		}
	}
}

// BackwardSafe iterates back to front and tolerates deleting or moving the
// yielded element. The walk ends at the element that was first when it
// started.
func (n *Node[T]) BackwardSafe() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if n.prev == nil {
			return
		}
		first := n.next
		for p := n.prev; p != n; {
			prev := p.prev
			if !yield(p.value) || p == first {
				return
			}
			p = prev
		}
	}
}
