// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - visit every entry in increasing key order until the
// callback returns false
//
// the tree must not be modified by the callback
func (tree *Tree[K, V]) Walk(f func(key K, value V) bool) {
	tree.walkNodes(func(p *Node[K, V]) bool {
		return f(p.key, p.value)
	})
}

// WalkBackward - visit every entry in decreasing key order until the
// callback returns false
func (tree *Tree[K, V]) WalkBackward(f func(key K, value V) bool) {
	stack := make([]*Node[K, V], 0, tree.Height())
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.right
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(p.key, p.value) {
			return
		}
		p = p.left
	}
}
