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

// Node is a single stored key. Nodes are created by Tree.Insert and are
// read-only to callers.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int // 1 for a leaf
}

// Key returns the key held by the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n. A nil node has
// height 0.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

func (n *Node[K]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}
