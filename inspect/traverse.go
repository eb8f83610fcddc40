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

// Package inspect walks an avl.Tree through its read-only node accessors to
// produce traversals, verify the tree's invariants and draw it.
package inspect

import "github.com/cybrota/avltree/avl"

// PreOrder returns the keys in node, left, right order.
func PreOrder[K any](tree *avl.Tree[K]) []K {
	result := make([]K, 0, tree.Len())
	preOrderTraversal(tree.Root(), &result)
	return result
}

// InOrder returns the keys in ascending comparator order.
func InOrder[K any](tree *avl.Tree[K]) []K {
	result := make([]K, 0, tree.Len())
	inOrderTraversal(tree.Root(), &result)
	return result
}

// PostOrder returns the keys in left, right, node order.
func PostOrder[K any](tree *avl.Tree[K]) []K {
	result := make([]K, 0, tree.Len())
	postOrderTraversal(tree.Root(), &result)
	return result
}

func preOrderTraversal[K any](node *avl.Node[K], result *[]K) {
	if node == nil {
		return
	}
	*result = append(*result, node.Key())
	preOrderTraversal(node.Left(), result)
	preOrderTraversal(node.Right(), result)
}

func inOrderTraversal[K any](node *avl.Node[K], result *[]K) {
	if node == nil {
		return
	}
	inOrderTraversal(node.Left(), result)
	*result = append(*result, node.Key())
	inOrderTraversal(node.Right(), result)
}

func postOrderTraversal[K any](node *avl.Node[K], result *[]K) {
	if node == nil {
		return
	}
	postOrderTraversal(node.Left(), result)
	postOrderTraversal(node.Right(), result)
	*result = append(*result, node.Key())
}
