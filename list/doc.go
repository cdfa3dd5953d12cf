// Package list implements an intrusive circular doubly-linked list.
//
// The link fields live inside the caller's own struct, so inserting an
// element never allocates and an element can be unlinked in O(1) given only
// a pointer to it. A list is identified by a head Node that carries no
// payload; an empty list is a head linked to itself.
//
//	type job struct {
//	    id   int
//	    link list.Node[job]
//	}
//
//	var queue list.Node[job]
//
//	j := &job{id: 1}
//	queue.AddTail(j.link.Bind(j))
//
//	for j := range queue.AllSafe() {
//	    run(j)
//	    j.link.Delete()
//	}
//
// Bind records the struct a node is embedded in; iteration yields that
// struct. A node must belong to at most one list at a time. Delete leaves the
// node unlinked; it may be added again, but its old neighbours are forgotten.
//
// Lists are not safe for concurrent use.
package list
