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

//	  node                pivot
//	  /  \                /   \
//	 A   pivot   ---->  node   C
//	     /  \           /  \
//	    B    C         A    B
func rotateLeft[K any](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

//	      node            pivot
//	      /  \            /   \
//	  pivot   C   ---->  A    node
//	  /  \                    /  \
//	 A    B                  B    C
func rotateRight[K any](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores |balance factor| <= 1 at node, whose children must
// already be balanced and whose height must be current. It returns the root
// of the rebalanced subtree.
//
// When the heavy child is itself level, a single rotation is used.
func rebalance[K any](node *Node[K]) *Node[K] {
	balanceFactor := node.balanceFactor()

	// Left-heavy
	if balanceFactor > 1 {
		if node.left.balanceFactor() >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if node.right.balanceFactor() <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
