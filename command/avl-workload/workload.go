// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

type workloadTree = avl.Tree[avl.IntKey, string]

// summary of a random run
type workloadSummary struct {
	Count    int    `json:"count"`
	Height   int    `json:"height"`
	Inserted int    `json:"inserted"`
	Replaced int    `json:"replaced"`
	Deleted  int    `json:"deleted"`
	Missed   int    `json:"missed"`
	Checks   int    `json:"checks"`
	Elapsed  string `json:"elapsed"`
}

// random inserts then deletes of previously inserted keys
//
// the tree is checked every CheckEvery operations and once at the end
func runWorkload(log *logger.L, w WorkloadType) (*workloadSummary, *workloadTree, error) {

	if w.Inserts < 0 || w.Deletes < 0 || w.CheckEvery < 0 {
		return nil, nil, fault.ErrInvalidNumber
	}
	if w.Deletes > w.Inserts {
		return nil, nil, fault.ErrDeleteExceedsInsert
	}
	if w.KeySpace < 1 {
		return nil, nil, fault.ErrKeySpaceTooSmall
	}

	log.Infof("seed: %d  inserts: %d  deletes: %d  key space: %d", w.Seed, w.Inserts, w.Deletes, w.KeySpace)

	start := time.Now()
	r := rand.New(rand.NewSource(w.Seed))
	tree := avl.New[avl.IntKey, string]()
	summary := &workloadSummary{}
	keys := make([]avl.IntKey, 0, w.Inserts)

	operations := 0
	check := func() error {
		operations += 1
		if 0 == w.CheckEvery || 0 != operations%w.CheckEvery {
			return nil
		}
		summary.Checks += 1
		return tree.Check()
	}

	for i := 0; i < w.Inserts; i += 1 {
		key := avl.IntKey(r.Int63n(w.KeySpace))
		keys = append(keys, key)
		if _, replaced := tree.Insert(key, strconv.FormatInt(int64(key), 10)); replaced {
			summary.Replaced += 1
		} else {
			summary.Inserted += 1
		}
		if err := check(); nil != err {
			log.Criticalf("insert: %d  check failed: %s", key, err)
			return nil, tree, err
		}
	}
	log.Debugf("after inserts count: %d  height: %d", tree.Count(), tree.Height())

	for _, key := range keys[:w.Deletes] {
		if _, ok := tree.Delete(key); ok {
			summary.Deleted += 1
		} else {
			summary.Missed += 1 // duplicate key already removed
		}
		if err := check(); nil != err {
			log.Criticalf("delete: %d  check failed: %s", key, err)
			return nil, tree, err
		}
	}

	summary.Checks += 1
	if err := tree.Check(); nil != err {
		log.Criticalf("final check failed: %s", err)
		return nil, tree, err
	}

	summary.Count = tree.Count()
	summary.Height = tree.Height()
	summary.Elapsed = time.Since(start).String()

	log.Infof("finished count: %d  height: %d  elapsed: %s", summary.Count, summary.Height, summary.Elapsed)
	return summary, tree, nil
}
