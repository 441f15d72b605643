// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Nth - the entry with the zero based index in key order
//
// i.e. the entry that has exactly index smaller keys in the tree
func (tree *Tree[K, V]) Nth(index int) (K, V, bool) {
	p := tree.Select(index)
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}

// Select - the node at a zero based index in key order, nil if out
// of range
func (tree *Tree[K, V]) Select(index int) *Node[K, V] {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get[K Item, V any](index int, tree *Node[K, V]) *Node[K, V] {
	if nil == tree || index >= tree.size {
		return nil
	}

	switch {
	case nil != tree.left:
		nl := tree.left.size
		if index < nl {
			return get(index, tree.left)
		}
		if index > nl {
			// subtract left nodes + 1 (for this node)
			return get(index-nl-1, tree.right)
		}
		return tree

	case nil != tree.right:
		if 0 == index {
			return tree
		}
		return get(index-1, tree.right)

	case 0 == index:
		return tree
	}

	// size guard above makes a leaf with index != 0 impossible
	fault.PanicWithError("avl: get", fault.ErrRankUnreachable)
	return nil // not reached
}
