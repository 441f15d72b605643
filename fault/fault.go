// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrBalanceCorrupt         = InvalidError("balance factor corrupt")
	ErrBalanceOutOfRange      = InvariantError("balance factor out of range")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrDeleteExceedsInsert    = InvalidError("deletions exceed insertions")
	ErrHeightCorrupt          = InvalidError("cached height corrupt")
	ErrIncomparableKey        = InvalidError("key cannot be compared with this type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidNumber          = InvalidError("invalid number")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeySpaceTooSmall       = InvalidError("key space too small")
	ErrMergeInconsistent      = InvariantError("balance factor inconsistent with children")
	ErrMissingArgument        = InvalidError("missing argument")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotFoundDataDirectory  = NotFoundError("data directory is not found")
	ErrOrderCorrupt           = InvalidError("key order corrupt")
	ErrRankUnreachable        = InvariantError("rank selection reached an impossible branch")
	ErrRotateLeftWithoutRight = InvariantError("rotate left requires a right child")
	ErrRotateRightWithoutLeft = InvariantError("rotate right requires a left child")
	ErrSizeCorrupt            = InvalidError("subtree size corrupt")
	ErrTooManyArguments       = InvalidError("too many arguments")
	ErrUnknownCommand         = InvalidError("unknown command")
	ErrUnknownOperation       = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
