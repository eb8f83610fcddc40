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
	"fmt"
	"strings"

	"github.com/cybrota/avltree/avl"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Render draws the tree sideways: right subtrees above their parent, left
// subtrees below. format may be nil, in which case keys are printed with
// fmt.Sprint.
func Render[K any](tree *avl.Tree[K], format func(K) string) string {
	if format == nil {
		format = func(key K) string { return fmt.Sprint(key) }
	}
	var sb strings.Builder
	renderNode(&sb, tree.Root(), "", rootBranch, format)
	return sb.String()
}

func renderNode[K any](sb *strings.Builder, node *avl.Node[K], prefix string, br branch, format func(K) string) {
	if node == nil {
		return
	}

	if node.Right() != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		renderNode(sb, node.Right(), prefix+pad, rightBranch, format)
	}

	switch br {
	case rootBranch:
		sb.WriteString(prefix + "|------+ ")
	case leftBranch:
		sb.WriteString(prefix + "\\------+ ")
	case rightBranch:
		sb.WriteString(prefix + "/------+ ")
	}
	sb.WriteString(format(node.Key()))
	sb.WriteByte('\n')

	if node.Left() != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		renderNode(sb, node.Left(), prefix+pad, leftBranch, format)
	}
}
