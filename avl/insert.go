// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new entry into the tree, or overwrite the value
// of an existing key
//
// returns the previous value and true if the key was already present
func (tree *Tree[K, V]) Insert(key K, value V) (V, bool) {
	root, previous, replaced := insert(key, value, tree.root)
	tree.root = root
	return previous, replaced
}

// internal routine for insert
//
// returns the new sub-tree root, the displaced value and whether a
// value was displaced
func insert[K Item, V any](key K, value V, p *Node[K, V]) (*Node[K, V], V, bool) {
	if nil == p { // insert new node
		var none V
		return newNode(key, value), none, false
	}

	var previous V
	replaced := false

	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, previous, replaced = insert(key, value, p.left)
	case c < 0: // p.key < key
		p.right, previous, replaced = insert(key, value, p.right)
	default:
		// same shape, nothing to rebalance
		previous = p.value
		p.value = value
		return p, previous, true
	}

	p.update()
	return rebalance(p), previous, replaced
}
