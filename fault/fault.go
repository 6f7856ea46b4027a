// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCloneNotIndependent  = ProcessError("clone shares nodes with original")
	ErrConfigDirPath        = InvalidError("config is not a folder")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrElementsMismatch     = ProcessError("elements do not match reference")
	ErrEmptyTree            = EmptyError("tree is empty")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidElementType   = InvalidError("element type is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOutputFormat  = InvalidError("output format is invalid")
	ErrInvalidQueries       = InvalidError("queries is invalid")
	ErrInvalidRange         = InvalidError("range is invalid")
	ErrInvalidRounds        = InvalidError("rounds is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkers       = InvalidError("workers is invalid")
	ErrMinMaxMismatch       = ProcessError("minimum or maximum does not match reference")
	ErrMissingValue         = InvalidError("value is required")
	ErrNoSuccessor          = NotFoundError("there is no successor")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotOrdered           = InvalidError("elements are not in order")
	ErrSizeMismatch         = InvalidError("size does not match node count")
	ErrSuccessorMismatch    = ProcessError("successor does not match reference")
	ErrUnbalanced           = InvalidError("sub-tree heights differ by more than one")
	ErrVerificationFailed   = ProcessError("verification failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
