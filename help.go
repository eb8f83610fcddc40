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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	return fmt.Sprintf(`
 **avltree %s**

A height-balanced binary search tree you can drive from the shell. Every insert and erase keeps the AVL invariant, so lookups stay O(log n) in the worst case.

Built with Go %s

# 1. Commands
* **run**: interactive tree explorer (default when no command is given)
* **eval [FILE]**: run session commands from FILE or stdin
* **load FILE**: insert every key in FILE, print traversals and verify the tree
* **check**: randomized verification over many tree sizes
* **settings**: show or create ~/.avltree.yaml

# 2. Session commands
* insert|add K..., erase|delete|rm K...
* find K, exists|has K
* pre, in, post, len, height
* check, print, clear, help

Quote string keys that contain spaces: insert "hello world"

# 3. Explorer keys
* **enter**: run the typed command
* **f1**: toggle this help
* **ctrl+y**: copy the in-order traversal
* **esc / ctrl+c**: quit

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
