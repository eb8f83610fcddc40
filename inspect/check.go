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

package inspect

import (
	"errors"
	"fmt"
	"math"

	"github.com/cybrota/avltree/avl"
)

var (
	ErrStaleHeight = errors.New("cached height differs from real height")
	ErrUnbalanced  = errors.New("balance factor out of range")
	ErrOrder       = errors.New("key out of order")
	ErrCount       = errors.New("key count differs from reachable nodes")
	ErrHeightBound = errors.New("height exceeds AVL bound")
)

// Violation describes the first node found breaking an invariant.
type Violation struct {
	Key    string
	Detail string
	Err    error
}

func (v *Violation) Error() string {
	if v.Key == "" {
		return fmt.Sprintf("%v: %s", v.Err, v.Detail)
	}
	return fmt.Sprintf("node %s: %v: %s", v.Key, v.Err, v.Detail)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// RealHeight recomputes the height of the subtree at node without trusting
// the cached values.
func RealHeight[K any](node *avl.Node[K]) int {
	if node == nil {
		return 0
	}
	return max(RealHeight(node.Left()), RealHeight(node.Right())) + 1
}

// Check verifies ordering, cached heights, balance and the key count of
// tree. It returns nil or a *Violation.
func Check[K any](tree *avl.Tree[K]) error {
	count := 0
	if _, err := checkNode(tree, tree.Root(), nil, nil, &count); err != nil {
		return err
	}
	if count != tree.Len() {
		return &Violation{
			Detail: fmt.Sprintf("Len() = %d, reachable = %d", tree.Len(), count),
			Err:    ErrCount,
		}
	}
	return nil
}

// checkNode returns the real height of node. lo and hi are the exclusive
// bounds inherited from ancestors.
func checkNode[K any](tree *avl.Tree[K], node *avl.Node[K], lo, hi *K, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*count++

	key := node.Key()
	if lo != nil && !tree.Less(*lo, key) {
		return 0, &Violation{
			Key:    fmt.Sprint(key),
			Detail: fmt.Sprintf("not greater than ancestor %v", *lo),
			Err:    ErrOrder,
		}
	}
	if hi != nil && !tree.Less(key, *hi) {
		return 0, &Violation{
			Key:    fmt.Sprint(key),
			Detail: fmt.Sprintf("not less than ancestor %v", *hi),
			Err:    ErrOrder,
		}
	}

	leftHeight, err := checkNode(tree, node.Left(), lo, &key, count)
	if err != nil {
		return 0, err
	}
	rightHeight, err := checkNode(tree, node.Right(), &key, hi, count)
	if err != nil {
		return 0, err
	}

	height := max(leftHeight, rightHeight) + 1
	if node.Height() != height {
		return 0, &Violation{
			Key:    fmt.Sprint(key),
			Detail: fmt.Sprintf("cached %d, real %d", node.Height(), height),
			Err:    ErrStaleHeight,
		}
	}
	if bf := leftHeight - rightHeight; bf > 1 || bf < -1 {
		return 0, &Violation{
			Key:    fmt.Sprint(key),
			Detail: fmt.Sprintf("left %d, right %d", leftHeight, rightHeight),
			Err:    ErrUnbalanced,
		}
	}
	return height, nil
}

// HeightBound is the worst-case AVL height for n keys.
func HeightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}

// CheckHeightBound reports ErrHeightBound when the tree is taller than an AVL
// tree of its size can be.
func CheckHeightBound[K any](tree *avl.Tree[K]) error {
	bound := HeightBound(tree.Len())
	if float64(tree.Height()) > bound {
		return &Violation{
			Detail: fmt.Sprintf("height %d for %d keys, bound %.2f", tree.Height(), tree.Len(), bound),
			Err:    ErrHeightBound,
		}
	}
	return nil
}
