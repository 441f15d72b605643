// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
)

type intTree = avl.Tree[avl.IntKey, string]

func keysOf(tree *intTree) []avl.IntKey {
	keys := make([]avl.IntKey, 0, tree.Count())
	tree.Walk(func(key avl.IntKey, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func sampleTree(t *testing.T) *intTree {
	tree := avl.New[avl.IntKey, string]()
	for _, key := range []avl.IntKey{5, 3, 8, 1, 4, 7, 9} {
		_, replaced := tree.Insert(key, fmt.Sprintf("v%d", key))
		require.False(t, replaced, "insert: %d", key)
	}
	require.NoError(t, tree.Check())
	return tree
}

func TestEmptyTree(t *testing.T) {
	var tree intTree

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Contains(1))
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())

	_, ok := tree.Get(1)
	assert.False(t, ok)
	_, _, ok = tree.Nth(0)
	assert.False(t, ok)
	_, ok = tree.Delete(1)
	assert.False(t, ok)
	node, index := tree.Search(1)
	assert.Nil(t, node)
	assert.Equal(t, -1, index)
	assert.NoError(t, tree.Check())
}

func TestScenarioInsertOrder(t *testing.T) {
	tree := sampleTree(t)

	assert.Equal(t, []avl.IntKey{1, 3, 4, 5, 7, 8, 9}, keysOf(tree))
	assert.Equal(t, 7, tree.Count())
	assert.False(t, tree.IsEmpty())
}

func TestScenarioAscendingInsertHeight(t *testing.T) {
	tree := avl.New[avl.IntKey, string]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(avl.IntKey(i), "")
	}
	assert.Equal(t, 3, tree.Height())
	assert.NoError(t, tree.Check())
}

func TestScenarioGet(t *testing.T) {
	tree := sampleTree(t)

	value, ok := tree.Get(4)
	assert.True(t, ok)
	assert.Equal(t, "v4", value)

	key, value, ok := tree.GetEntry(avl.IntKey(4))
	assert.True(t, ok)
	assert.Equal(t, avl.IntKey(4), key)
	assert.Equal(t, "v4", value)

	_, ok = tree.Get(100)
	assert.False(t, ok)
	assert.True(t, tree.Contains(int64(9)))
	assert.False(t, tree.Contains(int32(2)))
}

func TestScenarioDelete(t *testing.T) {
	tree := sampleTree(t)

	value, ok := tree.Delete(3)
	assert.True(t, ok)
	assert.Equal(t, "v3", value)
	assert.Equal(t, 6, tree.Count())
	assert.Equal(t, []avl.IntKey{1, 4, 5, 7, 8, 9}, keysOf(tree))
	assert.NoError(t, tree.Check())

	key, value, ok := tree.DeleteEntry(9)
	assert.True(t, ok)
	assert.Equal(t, avl.IntKey(9), key)
	assert.Equal(t, "v9", value)

	_, _, ok = tree.DeleteEntry(9)
	assert.False(t, ok)
	assert.Equal(t, 5, tree.Count())
}

func TestScenarioNth(t *testing.T) {
	tree := sampleTree(t)

	key, value, ok := tree.Nth(0)
	assert.True(t, ok)
	assert.Equal(t, avl.IntKey(1), key)
	assert.Equal(t, "v1", value)

	key, _, ok = tree.Nth(6)
	assert.True(t, ok)
	assert.Equal(t, avl.IntKey(9), key)

	_, _, ok = tree.Nth(7)
	assert.False(t, ok)
	assert.Nil(t, tree.Select(7))
}

func TestScenarioReplace(t *testing.T) {
	tree := sampleTree(t)

	previous, replaced := tree.Insert(5, "new")
	assert.True(t, replaced)
	assert.Equal(t, "v5", previous)
	assert.Equal(t, 7, tree.Count())

	value, _ := tree.Get(5)
	assert.Equal(t, "new", value)

	previous, replaced = tree.Insert(6, "v6")
	assert.False(t, replaced)
	assert.Equal(t, "", previous)
	assert.Equal(t, 8, tree.Count())
}

func TestFirstLast(t *testing.T) {
	tree := sampleTree(t)
	assert.Equal(t, avl.IntKey(1), tree.First().Key())
	assert.Equal(t, avl.IntKey(9), tree.Last().Key())
	assert.Equal(t, "v9", tree.Last().Value())
}

// random operations compared against a plain map
func TestRandomOperationsAgainstMap(t *testing.T) {
	r := rand.New(rand.NewSource(20200101))

	tree := avl.New[avl.IntKey, string]()
	reference := make(map[avl.IntKey]string)

	for i := 0; i < 5000; i += 1 {
		key := avl.IntKey(r.Intn(500))
		if r.Intn(10) < 6 {
			value := fmt.Sprintf("%d:%d", key, i)
			previous, replaced := tree.Insert(key, value)
			old, present := reference[key]
			require.Equal(t, present, replaced, "insert: %d", key)
			require.Equal(t, old, previous, "insert: %d", key)
			reference[key] = value
		} else {
			value, removed := tree.Delete(key)
			old, present := reference[key]
			require.Equal(t, present, removed, "delete: %d", key)
			require.Equal(t, old, value, "delete: %d", key)
			delete(reference, key)
		}
		require.Equal(t, len(reference), tree.Count())

		if 0 == i%250 {
			require.NoError(t, tree.Check(), "operation: %d", i)
			checkRanks(t, tree, reference)
		}
	}
	require.NoError(t, tree.Check())
	checkRanks(t, tree, reference)
}

// each index selects the key with exactly that many smaller keys
func checkRanks(t *testing.T, tree *intTree, reference map[avl.IntKey]string) {
	expected := make([]avl.IntKey, 0, len(reference))
	for key := range reference {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	for index, key := range expected {
		k, v, ok := tree.Nth(index)
		require.True(t, ok, "nth: %d", index)
		require.Equal(t, key, k, "nth: %d", index)
		require.Equal(t, reference[key], v, "nth: %d", index)

		_, rank := tree.Search(key)
		require.Equal(t, index, rank, "search: %d", key)
	}
	_, _, ok := tree.Nth(len(expected))
	require.False(t, ok)
}

func TestDeleteInsertInverse(t *testing.T) {
	tree := sampleTree(t)
	before := keysOf(tree)

	for _, key := range before {
		_, ok := tree.Delete(key)
		require.True(t, ok)
		_, replaced := tree.Insert(key, "again")
		require.False(t, replaced)
		require.Equal(t, before, keysOf(tree))
		require.Equal(t, len(before), tree.Count())
		require.NoError(t, tree.Check())
	}
}

func TestFprint(t *testing.T) {
	tree := sampleTree(t)

	var b bytes.Buffer
	depth := tree.Fprint(&b, false)
	assert.Equal(t, tree.Height(), depth)
	assert.Equal(t, 7, strings.Count(b.String(), "\n"))
	assert.Contains(t, b.String(), "|------+ 5\n")

	b.Reset()
	tree.Fprint(&b, true)
	assert.Contains(t, b.String(), "5 → v5")
}
