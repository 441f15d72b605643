// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the node and its zero based index in key order, or nil
// and -1 if the item is not present
func (tree *Tree[K, V]) Search(query interface{}) (*Node[K, V], int) {
	return search(query, tree.root, 0)
}

// Get - the value stored for a key
func (tree *Tree[K, V]) Get(query interface{}) (V, bool) {
	p, _ := search(query, tree.root, 0)
	if nil == p {
		var value V
		return value, false
	}
	return p.value, true
}

// GetEntry - the stored key and value for a key
func (tree *Tree[K, V]) GetEntry(query interface{}) (K, V, bool) {
	p, _ := search(query, tree.root, 0)
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}

// Contains - true if the key is present
func (tree *Tree[K, V]) Contains(query interface{}) bool {
	p, _ := search(query, tree.root, 0)
	return nil != p
}

func search[K Item, V any](query interface{}, tree *Node[K, V], index int) (*Node[K, V], int) {
	if nil == tree {
		return nil, -1
	}

	switch c := tree.key.Compare(query); {
	case c > 0: // tree.key > query
		return search(query, tree.left, index)
	case c < 0: // tree.key < query
		return search(query, tree.right, index+sizeOf(tree.left)+1)
	default:
		return tree, index + sizeOf(tree.left)
	}
}

// number of entries in a possibly empty sub-tree
func sizeOf[K Item, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.size
}
