// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Delete - removes a specific item from the tree
//
// returns the removed value and true if the key was present
func (tree *Tree[K, V]) Delete(query interface{}) (V, bool) {
	_, value, removed := tree.DeleteEntry(query)
	return value, removed
}

// DeleteEntry - removes a specific item from the tree returning both
// the stored key and its value
func (tree *Tree[K, V]) DeleteEntry(query interface{}) (K, V, bool) {
	root, q := remove(query, tree.root)
	tree.root = root
	if nil == q {
		var key K
		var value V
		return key, value, false
	}
	return q.key, q.value, true
}

// internal delete routine
//
// returns the new sub-tree root (possibly nil) and the detached node
// or nil if the key was not found
func remove[K Item, V any](query interface{}, p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p { // key not in tree
		return nil, nil
	}

	var q *Node[K, V]

	switch c := p.key.Compare(query); {
	case c > 0: // p.key > query
		if nil == p.left {
			return p, nil
		}
		p.left, q = remove(query, p.left)
	case c < 0: // p.key < query
		if nil == p.right {
			return p, nil
		}
		p.right, q = remove(query, p.right)
	default: // found: delete p
		return merge(p), p
	}

	if nil == q {
		return p, nil // nothing changed below
	}
	p.update()
	return rebalance(p), q
}

// delete: replace a node by an extremal node taken from its taller side
func merge[K Item, V any](q *Node[K, V]) *Node[K, V] {
	left := q.left
	right := q.right
	balance := q.balance

	q.left = nil
	q.right = nil

	switch {
	case balance < 0 && nil != left:
		rest, r := takeMax(left)
		r.left = rest
		r.right = right
		r.update()
		return rebalance(r)

	case balance >= 0 && nil != right:
		rest, r := takeMin(right)
		r.left = left
		r.right = rest
		r.update()
		return rebalance(r)

	case nil == left && nil == right:
		return nil
	}

	fault.PanicWithError("avl: delete", fault.ErrMergeInconsistent)
	return nil // not reached
}

// delete: detach the highest node of a sub-tree
//
// returns the rebuilt remainder and the detached node
func takeMax[K Item, V any](p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.right {
		rest := p.left
		p.left = nil
		return rest, p
	}
	rest, m := takeMax(p.right)
	p.right = rest
	p.update()
	return rebalance(p), m
}

// delete: detach the lowest node of a sub-tree
//
// returns the rebuilt remainder and the detached node
func takeMin[K Item, V any](p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.left {
		rest := p.right
		p.right = nil
		return rest, p
	}
	rest, m := takeMin(p.left)
	p.left = rest
	p.update()
	return rebalance(p), m
}
