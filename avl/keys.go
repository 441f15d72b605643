// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// StringKey - a string key that can be searched for using a
// StringKey, a string or a []byte
type StringKey string

// Compare - ordering for the AVL Item interface
func (k StringKey) Compare(x interface{}) int {
	switch v := x.(type) {
	case StringKey:
		return strings.Compare(string(k), string(v))
	case string:
		return strings.Compare(string(k), v)
	case []byte:
		return compareStringBytes(string(k), v)
	default:
		fault.PanicWithError("avl: string key compare", fault.ErrIncomparableKey)
	}
	return 0 // not reached
}

// String - for printing
func (k StringKey) String() string {
	return string(k)
}

// byte-wise comparison, strings.Compare would need a string(b) allocation
func compareStringBytes(s string, b []byte) int {
	n := len(s)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i += 1 {
		switch {
		case s[i] < b[i]:
			return -1
		case s[i] > b[i]:
			return +1
		}
	}
	switch {
	case len(s) < len(b):
		return -1
	case len(s) > len(b):
		return +1
	}
	return 0
}

// IntKey - an integer key that can be searched for using any of the
// common integer types
type IntKey int64

// Compare - ordering for the AVL Item interface
func (k IntKey) Compare(x interface{}) int {
	var v int64
	switch n := x.(type) {
	case IntKey:
		v = int64(n)
	case int:
		v = int64(n)
	case int64:
		v = n
	case int32:
		v = int64(n)
	case uint32:
		v = int64(n)
	default:
		fault.PanicWithError("avl: integer key compare", fault.ErrIncomparableKey)
	}
	switch {
	case int64(k) < v:
		return -1
	case int64(k) > v:
		return +1
	}
	return 0
}
