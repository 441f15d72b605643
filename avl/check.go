// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify the structure of the whole tree
//
// every cached height, balance and size is recomputed from the
// actual children, every balance must be in [-1, +1] and an in-order
// scan must give strictly increasing keys
func (tree *Tree[K, V]) Check() error {
	if _, _, err := check(tree.root); nil != err {
		return err
	}

	var err error
	var previous *Node[K, V]
	tree.walkNodes(func(p *Node[K, V]) bool {
		if nil != previous && previous.key.Compare(p.key) >= 0 {
			err = fault.ErrOrderCorrupt
			return false
		}
		previous = p
		return true
	})
	return err
}

// internal: consistency checker, returns actual height and size
func check[K Item, V any](p *Node[K, V]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	lh, ls, err := check(p.left)
	if nil != err {
		return 0, 0, err
	}
	rh, rs, err := check(p.right)
	if nil != err {
		return 0, 0, err
	}

	height := lh
	if rh > height {
		height = rh
	}
	height += 1

	if p.height != height {
		return 0, 0, fault.ErrHeightCorrupt
	}
	if b := rh - lh; p.balance != b || b < -1 || b > 1 {
		return 0, 0, fault.ErrBalanceCorrupt
	}
	if p.size != 1+ls+rs {
		return 0, 0, fault.ErrSizeCorrupt
	}
	return height, p.size, nil
}

// internal: in-order scan of the nodes themselves
func (tree *Tree[K, V]) walkNodes(f func(p *Node[K, V]) bool) {
	stack := make([]*Node[K, V], 0, tree.Height())
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(p) {
			return
		}
		p = p.right
	}
}
