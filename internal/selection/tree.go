// Package selection models hierarchical multi-select preferences as a
// generic tree with two operations: Select marks a node and its ancestor
// chain, Deselect removes a node and all of its descendants. Ancestors are
// never removed implicitly.
package selection

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Set is the id-set type selections are held in, independent from the
// last-saved server state until an explicit save.
type Set = mapset.Set[int64]

// NewSet returns an empty (non-thread-safe) selection set.
func NewSet(ids ...int64) Set {
	return mapset.NewThreadUnsafeSet(ids...)
}

// Tree is an id-keyed forest. Nodes are added parent-first; a zero parent
// id makes a root.
type Tree struct {
	names    map[int64]string
	parent   map[int64]int64
	children map[int64][]int64
	roots    []int64
}

func NewTree() *Tree {
	return &Tree{
		names:    map[int64]string{},
		parent:   map[int64]int64{},
		children: map[int64][]int64{},
	}
}

// Add inserts a node. parentID 0 marks a root. Re-adding an id is a no-op,
// so taxonomy lists with repeated nested parents can be fed directly.
func (t *Tree) Add(id int64, name string, parentID int64) {
	if _, ok := t.names[id]; ok {
		return
	}
	t.names[id] = name
	if parentID == 0 {
		t.roots = append(t.roots, id)
		return
	}
	t.parent[id] = parentID
	t.children[parentID] = append(t.children[parentID], id)
}

// Contains reports whether the node exists in the tree.
func (t *Tree) Contains(id int64) bool {
	_, ok := t.names[id]
	return ok
}

// Name returns the node's display name, or "".
func (t *Tree) Name(id int64) string {
	return t.names[id]
}

// Roots returns root ids in insertion order.
func (t *Tree) Roots() []int64 {
	return t.roots
}

// ChildrenOf returns direct children in insertion order.
func (t *Tree) ChildrenOf(id int64) []int64 {
	return t.children[id]
}

// Ancestors returns the chain from the node's parent up to its root.
func (t *Tree) Ancestors(id int64) []int64 {
	var chain []int64
	for {
		parent, ok := t.parent[id]
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		id = parent
	}
}

// Descendants returns every node below id, depth-first.
func (t *Tree) Descendants(id int64) []int64 {
	var out []int64
	stack := append([]int64(nil), t.children[id]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		stack = append(stack, t.children[n]...)
	}
	return out
}

// Select adds the node and its ancestor chain to the set, so picking a
// specialization also marks its domain and opportunity type.
func (t *Tree) Select(sel Set, id int64) {
	if !t.Contains(id) {
		return
	}
	sel.Add(id)
	for _, a := range t.Ancestors(id) {
		sel.Add(a)
	}
}

// Deselect removes the node and all of its descendants. Ancestors stay
// selected even when this was their last selected child.
func (t *Tree) Deselect(sel Set, id int64) {
	sel.Remove(id)
	for _, d := range t.Descendants(id) {
		sel.Remove(d)
	}
}

// Subtree returns a new tree rooted at rootID (which becomes a root of the
// result), preserving insertion order. Unknown ids yield an empty tree.
func (t *Tree) Subtree(rootID int64) *Tree {
	sub := NewTree()
	if !t.Contains(rootID) {
		return sub
	}
	sub.Add(rootID, t.names[rootID], 0)
	var walk func(parent int64)
	walk = func(parent int64) {
		for _, c := range t.children[parent] {
			sub.Add(c, t.names[c], parent)
			walk(c)
		}
	}
	walk(rootID)
	return sub
}

// FindByName returns the first node with the given name, scanning roots
// first then insertion order per level.
func (t *Tree) FindByName(name string) (int64, bool) {
	var found int64
	var ok bool
	var walk func(ids []int64)
	walk = func(ids []int64) {
		for _, id := range ids {
			if ok {
				return
			}
			if t.names[id] == name {
				found, ok = id, true
				return
			}
			walk(t.children[id])
		}
	}
	walk(t.roots)
	return found, ok
}
