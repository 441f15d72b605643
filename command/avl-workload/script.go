// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

type scriptTree = avl.Tree[avl.StringKey, string]

// one line of output for each script operation
type scriptResult struct {
	Operation string `json:"operation"`
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
	Previous  string `json:"previous,omitempty"`
	Index     *int   `json:"index,omitempty"`
	Height    *int   `json:"height,omitempty"`
	Found     bool   `json:"found"`
	Count     int    `json:"count"`
}

// execute each line against the tree writing a JSON result for each
//
// lines are: "insert KEY VALUE…", "get KEY", "contains KEY",
// "delete KEY", "rank KEY", "nth INDEX", "count", "height",
// "check" and "print"; blank lines and comments are skipped, a
// comment being any word starting with "--" and the rest of the line
func runScript(log *logger.L, tree *scriptTree, lines []string, handle io.Writer) error {
	for n, line := range lines {
		words := stripComment(strings.Fields(line))
		if 0 == len(words) {
			continue
		}
		log.Debugf("line: %d  words: %q", n+1, words)

		result, err := execute(tree, words, handle)
		if nil != err {
			log.Errorf("line: %d  %q  error: %s", n+1, line, err)
			return fmt.Errorf("script line %d: %w", n+1, err)
		}
		if nil == result {
			continue
		}
		result.Count = tree.Count()
		if err := printJson(handle, result, false); nil != err {
			return err
		}
	}
	return nil
}

// drop the first word starting with "--" and all words after it
func stripComment(words []string) []string {
	for i, w := range words {
		if strings.HasPrefix(w, "--") {
			return words[:i]
		}
	}
	return words
}

// run a single operation, a nil result means nothing to output
func execute(tree *scriptTree, words []string, handle io.Writer) (*scriptResult, error) {

	operation := strings.ToLower(words[0])
	arguments := words[1:]
	result := &scriptResult{
		Operation: operation,
	}

	// check argument count for everything except insert
	expect := func(count int) error {
		if len(arguments) < count {
			return fault.ErrMissingArgument
		}
		if len(arguments) > count {
			return fault.ErrTooManyArguments
		}
		return nil
	}

	switch operation {
	case "insert":
		if len(arguments) < 2 {
			return nil, fault.ErrMissingArgument
		}
		result.Key = arguments[0]
		result.Value = strings.Join(arguments[1:], " ")
		result.Previous, result.Found = tree.Insert(avl.StringKey(result.Key), result.Value)

	case "get":
		if err := expect(1); nil != err {
			return nil, err
		}
		result.Key = arguments[0]
		result.Value, result.Found = tree.Get(result.Key)

	case "contains":
		if err := expect(1); nil != err {
			return nil, err
		}
		result.Key = arguments[0]
		result.Found = tree.Contains(result.Key)

	case "delete":
		if err := expect(1); nil != err {
			return nil, err
		}
		result.Key = arguments[0]
		result.Value, result.Found = tree.Delete(result.Key)

	case "rank":
		if err := expect(1); nil != err {
			return nil, err
		}
		result.Key = arguments[0]
		node, index := tree.Search(result.Key)
		if nil != node {
			result.Found = true
			result.Value = node.Value()
			result.Index = &index
		}

	case "nth":
		if err := expect(1); nil != err {
			return nil, err
		}
		index, err := strconv.Atoi(arguments[0])
		if nil != err {
			return nil, fault.ErrInvalidNumber
		}
		result.Index = &index
		key, value, found := tree.Nth(index)
		if found {
			result.Key = key.String()
			result.Value = value
			result.Found = true
		}

	case "count":
		if err := expect(0); nil != err {
			return nil, err
		}
		result.Found = true

	case "height":
		if err := expect(0); nil != err {
			return nil, err
		}
		height := tree.Height()
		result.Height = &height
		result.Found = true

	case "check":
		if err := expect(0); nil != err {
			return nil, err
		}
		if err := tree.Check(); nil != err {
			return nil, err
		}
		result.Found = true

	case "print":
		if err := expect(0); nil != err {
			return nil, err
		}
		tree.Fprint(handle, true)
		return nil, nil

	default:
		return nil, fault.ErrUnknownOperation
	}

	return result, nil
}
