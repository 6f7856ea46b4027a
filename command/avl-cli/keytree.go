// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// keyTree - the tree operations the commands need, independent of
// the element type selected on the command line
type keyTree interface {
	insert(key string) (bool, error)
	contains(key string) (bool, error)
	min() (interface{}, error)
	max() (interface{}, error)
	successor(key string) (interface{}, error)
	preOrder() string
	inOrder() string
	postOrder() string
	format(withHeight bool) string
	size() int
	height() int
}

type typedTree[T cmp.Ordered] struct {
	tree  *avl.Tree[T]
	parse func(string) (T, error)
}

func newKeyTree(elementType string) (keyTree, error) {
	switch elementType {
	case "int", "integer":
		return &typedTree[int64]{
			tree:  avl.New[int64](),
			parse: parseInt,
		}, nil
	case "string", "str":
		return &typedTree[string]{
			tree:  avl.New[string](),
			parse: parseString,
		}, nil
	default:
		return nil, fault.ErrInvalidElementType
	}
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidElementType
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func (t *typedTree[T]) insert(key string) (bool, error) {
	k, err := t.parse(key)
	if nil != err {
		return false, err
	}
	return t.tree.Insert(k), nil
}

func (t *typedTree[T]) contains(key string) (bool, error) {
	k, err := t.parse(key)
	if nil != err {
		return false, err
	}
	return t.tree.Contains(k), nil
}

func (t *typedTree[T]) min() (interface{}, error) {
	k, err := t.tree.Min()
	if nil != err {
		return nil, err
	}
	return k, nil
}

func (t *typedTree[T]) max() (interface{}, error) {
	k, err := t.tree.Max()
	if nil != err {
		return nil, err
	}
	return k, nil
}

func (t *typedTree[T]) successor(key string) (interface{}, error) {
	k, err := t.parse(key)
	if nil != err {
		return nil, err
	}
	s, err := t.tree.Successor(k)
	if nil != err {
		return nil, err
	}
	return s, nil
}

func (t *typedTree[T]) preOrder() string {
	return t.tree.PreOrder()
}

func (t *typedTree[T]) inOrder() string {
	return t.tree.InOrder()
}

func (t *typedTree[T]) postOrder() string {
	return t.tree.PostOrder()
}

func (t *typedTree[T]) format(withHeight bool) string {
	return t.tree.Format(withHeight)
}

func (t *typedTree[T]) size() int {
	return t.tree.Size()
}

func (t *typedTree[T]) height() int {
	return t.tree.Height()
}
