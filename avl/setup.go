// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 when the item is less than, equal to
// or greater than the argument.  The argument is another key or a
// lookup view of one, e.g. a []byte for a StringKey
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
//
// the zero value is an empty tree ready to use
type Tree[K Item, V any] struct {
	root *Node[K, V]
}

// New - create an initially empty tree
func New[K Item, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of entries currently in the tree
func (tree *Tree[K, V]) Count() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.size
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}
