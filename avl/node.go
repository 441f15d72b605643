// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Node - a node in the tree
type Node[K Item, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	key     K           // key part for ordering
	value   V           // value part for data storage
	height  int         // 1 for a leaf
	balance int         // height(right) - height(left): -1, 0, +1 when stable
	size    int         // number of entries in this sub-tree
}

// allocate a new leaf node
func newNode[K Item, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:     key,
		value:   value,
		height:  1,
		balance: 0,
		size:    1,
	}
}

// compute the cached values of a node from its children
func derive[K Item, V any](left *Node[K, V], right *Node[K, V]) (int, int, int) {
	switch {
	case nil != left && nil != right:
		height := left.height
		if right.height > height {
			height = right.height
		}
		return height + 1, right.height - left.height, left.size + right.size + 1
	case nil != left:
		return left.height + 1, -left.height, left.size + 1
	case nil != right:
		return right.height + 1, right.height, right.size + 1
	default:
		return 1, 0, 1
	}
}

// recompute after any change to the children, never patched incrementally
func (p *Node[K, V]) update() {
	p.height, p.balance, p.size = derive(p.left, p.right)
}

// single left rotation, the right child becomes the sub-tree root
func rotateLeft[K Item, V any](p *Node[K, V]) *Node[K, V] {
	r := p.right
	if nil == r {
		fault.PanicWithError("avl: rotate left", fault.ErrRotateLeftWithoutRight)
	}
	p.right = r.left
	p.update()
	r.left = p
	r.update()
	return r
}

// single right rotation, the left child becomes the sub-tree root
func rotateRight[K Item, V any](p *Node[K, V]) *Node[K, V] {
	l := p.left
	if nil == l {
		fault.PanicWithError("avl: rotate right", fault.ErrRotateRightWithoutLeft)
	}
	p.left = l.right
	p.update()
	l.right = p
	l.update()
	return l
}

// restore the balance of a node whose cached values are current
//
// this is the only place a transient ±2 balance is removed
func rebalance[K Item, V any](p *Node[K, V]) *Node[K, V] {
	switch p.balance {
	case -2:
		if p.left.balance > 0 { // left-right case
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case -1, 0, +1:
		return p
	case +2:
		if p.right.balance < 0 { // right-left case
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	default:
		fault.PanicWithError("avl: rebalance", fault.ErrBalanceOutOfRange)
	}
	return nil // not reached
}
