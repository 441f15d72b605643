// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered map with order statistics
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches its height, balance factor (right height minus
// left height) and the number of entries in its sub-tree.  The
// cached sizes allow the n-th smallest entry to be selected in
// O(log n) without any secondary index.
//
// Nodes hold no parent pointers, each one is owned by exactly one
// parent (or the tree for the root).  Every recursive operation
// returns the possibly different root of the sub-tree it was given
// and the caller re-attaches it, then recomputes its own cached
// values and rebalances.
//
// Keys are compared through the Item interface, the value passed
// to Compare may be another key or any lookup type that the key
// understands, so a search never needs to build an owned key.
//
// Corruption of the internal structure is not recoverable; it is
// reported by a panic carrying a fault.InvariantError.
package avl
