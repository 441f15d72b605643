// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// output a JSON block, or a single line for streamed results
func printJson(handle io.Writer, message interface{}, indent bool) error {

	var b []byte
	var err error
	if indent {
		b, err = json.MarshalIndent(message, "", "  ")
	} else {
		b, err = json.Marshal(message)
	}
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
