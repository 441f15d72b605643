// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func TestStringKeyCompare(t *testing.T) {
	k := avl.StringKey("mango")

	testData := []struct {
		query    interface{}
		expected int
	}{
		{avl.StringKey("mango"), 0},
		{"mango", 0},
		{[]byte("mango"), 0},
		{"apple", +1},
		{[]byte("apple"), +1},
		{"peach", -1},
		{[]byte("peach"), -1},
		{"man", +1},
		{[]byte("man"), +1},
		{"mangos", -1},
		{[]byte("mangos"), -1},
		{[]byte{}, +1},
	}

	for i, item := range testData {
		assert.Equal(t, item.expected, k.Compare(item.query), "%d: %v", i, item.query)
	}

	assert.PanicsWithValue(t, fault.ErrIncomparableKey, func() {
		k.Compare(3.5)
	})
}

func TestIntKeyCompare(t *testing.T) {
	k := avl.IntKey(42)

	testData := []struct {
		query    interface{}
		expected int
	}{
		{avl.IntKey(42), 0},
		{42, 0},
		{int64(42), 0},
		{int32(42), 0},
		{uint32(42), 0},
		{41, +1},
		{int64(-7), +1},
		{uint32(4000000000), -1},
	}

	for i, item := range testData {
		assert.Equal(t, item.expected, k.Compare(item.query), "%d: %v", i, item.query)
	}

	assert.PanicsWithValue(t, fault.ErrIncomparableKey, func() {
		k.Compare("42")
	})
}

// stored keys can be found and removed through a borrowed view
func TestLookupByView(t *testing.T) {
	tree := avl.New[avl.StringKey, int]()
	for i, s := range []string{"delta", "alpha", "echo", "charlie", "bravo"} {
		tree.Insert(avl.StringKey(s), i)
	}

	buffer := []byte("charlie")
	value, ok := tree.Get(buffer)
	assert.True(t, ok)
	assert.Equal(t, 3, value)

	key, _, ok := tree.GetEntry("echo")
	assert.True(t, ok)
	assert.Equal(t, avl.StringKey("echo"), key)

	_, index := tree.Search([]byte("bravo"))
	assert.Equal(t, 1, index)

	assert.False(t, tree.Contains([]byte("foxtrot")))

	key, value, ok = tree.DeleteEntry([]byte("alpha"))
	assert.True(t, ok)
	assert.Equal(t, avl.StringKey("alpha"), key)
	assert.Equal(t, 1, value)
	assert.Equal(t, 4, tree.Count())
	assert.NoError(t, tree.Check())
}
