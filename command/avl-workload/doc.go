// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-workload - exercise an AVL tree from a Lua configuration
//
// run:    random inserts and deletes with periodic structure checks,
//         prints a JSON summary
// script: execute the configured list of operations, one JSON
//         result per operation
package main
