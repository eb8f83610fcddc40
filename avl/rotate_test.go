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

import "testing"

func leaf(key int) *Node[int] {
	return &Node[int]{key: key, height: 1}
}

func link(key int, left, right *Node[int]) *Node[int] {
	node := &Node[int]{key: key, left: left, right: right}
	node.updateHeight()
	return node
}

func TestRotateLeft(t *testing.T) {
	// 1 -> 2 -> 3 becomes 2(1, 3)
	root := link(1, nil, link(2, nil, leaf(3)))

	got := rotateLeft(root)

	if got.key != 2 || got.left.key != 1 || got.right.key != 3 {
		t.Fatalf("unexpected shape after rotateLeft: %v", preOrder(got))
	}
	if got.height != 2 || got.left.height != 1 {
		t.Errorf("heights not updated: root=%d left=%d", got.height, got.left.height)
	}
}

func TestRotateRight(t *testing.T) {
	// 20's right subtree (25) moves under 30
	root := link(30, link(20, leaf(10), leaf(25)), leaf(40))

	got := rotateRight(root)

	verifyOrder(t, "pre-order", preOrder(got), []int{20, 10, 30, 25, 40})
	if got.height != 3 || got.right.height != 2 {
		t.Errorf("heights not updated: root=%d right=%d", got.height, got.right.height)
	}
}

func TestRotateWithoutPivotIsNoop(t *testing.T) {
	single := leaf(1)
	if rotateLeft(single) != single || rotateRight(single) != single {
		t.Errorf("rotation without a pivot should return the node unchanged")
	}
	if rotateLeft[int](nil) != nil || rotateRight[int](nil) != nil {
		t.Errorf("rotation of nil should return nil")
	}
}

func TestRebalanceCases(t *testing.T) {
	testCases := []struct {
		name     string
		build    func() *Node[int]
		expected []int
	}{
		{
			name:     "balanced node untouched",
			build:    func() *Node[int] { return link(2, leaf(1), leaf(3)) },
			expected: []int{2, 1, 3},
		},
		{
			name:     "left-left",
			build:    func() *Node[int] { return link(3, link(2, leaf(1), nil), nil) },
			expected: []int{2, 1, 3},
		},
		{
			name:     "left-right",
			build:    func() *Node[int] { return link(3, link(1, nil, leaf(2)), nil) },
			expected: []int{2, 1, 3},
		},
		{
			name:     "right-right",
			build:    func() *Node[int] { return link(1, nil, link(2, nil, leaf(3))) },
			expected: []int{2, 1, 3},
		},
		{
			name:     "right-left",
			build:    func() *Node[int] { return link(1, nil, link(3, leaf(2), nil)) },
			expected: []int{2, 1, 3},
		},
		{
			name: "left child level prefers single rotation",
			build: func() *Node[int] {
				return link(20, link(10, leaf(5), leaf(15)), nil)
			},
			expected: []int{10, 5, 20, 15},
		},
		{
			name: "right child level prefers single rotation",
			build: func() *Node[int] {
				return link(10, nil, link(20, leaf(15), leaf(25)))
			},
			expected: []int{20, 10, 15, 25},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rebalance(tc.build())
			verifyOrder(t, "pre-order", preOrder(got), tc.expected)
			if bf := got.balanceFactor(); bf > 1 || bf < -1 {
				t.Errorf("balance factor %d after rebalance", bf)
			}
		})
	}
}
