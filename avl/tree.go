// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "cmp"

// Tree holds the root of an AVL tree and the ordering used to place keys.
type Tree[K any] struct {
	root  *Node[K]
	less  func(a, b K) bool
	count int
}

// New creates an empty tree ordered by less, which must be a strict weak
// ordering that stays consistent for the lifetime of the tree.
func New[K any](less func(a, b K) bool) *Tree[K] {
	if less == nil {
		panic("avl: nil comparator")
	}
	return &Tree[K]{less: less}
}

// NewOrdered creates an empty tree using the natural order of K.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New(cmp.Less[K])
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Len returns the number of keys stored.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// Less reports whether a orders before b under the tree's comparator.
func (tree *Tree[K]) Less(a, b K) bool {
	return tree.less(a, b)
}

// Clear removes every key.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Insert adds key unless an equal key is already present, in which case the
// tree is left untouched.
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insertRecursive(tree.root, key)
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		tree.count++
		return &Node[K]{key: key, height: 1}
	}

	if tree.less(key, node.key) {
		node.left = tree.insertRecursive(node.left, key)
	} else if tree.less(node.key, key) {
		node.right = tree.insertRecursive(node.right, key)
	} else {
		// first writer wins
		return node
	}

	node.updateHeight()
	return rebalance(node)
}

// Erase removes the key equal to key, if any.
func (tree *Tree[K]) Erase(key K) {
	tree.root = tree.eraseRecursive(tree.root, key)
}

func (tree *Tree[K]) eraseRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		return nil
	}

	if tree.less(key, node.key) {
		node.left = tree.eraseRecursive(node.left, key)
	} else if tree.less(node.key, key) {
		node.right = tree.eraseRecursive(node.right, key)
	} else {
		switch {
		case node.right == nil:
			tree.count--
			return node.left
		case node.left == nil:
			tree.count--
			return node.right
		default:
			// Overwrite with the in-order successor, then remove the
			// successor from the right subtree.
			successor := findMin(node.right)
			node.key = successor.key
			node.right = tree.eraseRecursive(node.right, node.key)
		}
	}

	node.updateHeight()
	return rebalance(node)
}

func findMin[K any](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// Find returns the node holding a key equal to key, or nil.
func (tree *Tree[K]) Find(key K) *Node[K] {
	node := tree.root
	for node != nil {
		if tree.less(key, node.key) {
			node = node.left
		} else if tree.less(node.key, key) {
			node = node.right
		} else {
			return node
		}
	}
	return nil
}

// Exists reports whether a key equal to key is stored.
func (tree *Tree[K]) Exists(key K) bool {
	return tree.Find(key) != nil
}
