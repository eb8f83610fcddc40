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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/inspect"
	"github.com/cybrota/avltree/keys"
)

const emptyTreeText = "(empty)"

const sessionHelp = `insert|add K...        insert keys (duplicates are ignored)
erase|delete|rm K...   erase keys (absent keys are ignored)
find K                 look up a key and show its subtree height
exists|has K           report whether a key is stored
pre | in | post        print a traversal
len|size               number of stored keys
height                 height of the tree
check                  verify order, heights and balance
print|tree             draw the tree
clear                  remove every key
help                   show this list`

// Session runs text commands against a tree of one key type.
type Session interface {
	Exec(line string) (string, error)
	// InsertKey and EraseKey take one unquoted key, as read from a key file.
	// They report whether the tree changed.
	InsertKey(raw string) (bool, error)
	EraseKey(raw string) (bool, error)
	Kind() keys.Kind
	Len() int
	Render() string
}

type session[K any] struct {
	kind    keys.Kind
	codec   keys.Codec[K]
	tree    *avl.Tree[K]
	renders *cache.Cache
}

// NewSession creates an empty session for the given key type. renders may be
// nil, in which case drawings are not cached.
func NewSession(kind keys.Kind, renders *cache.Cache) (Session, error) {
	switch kind {
	case keys.KindInt:
		return newSession[int64](kind, keys.IntCodec{}, renders), nil
	case keys.KindString:
		return newSession[string](kind, keys.StringCodec{}, renders), nil
	case keys.KindFloat:
		return newSession[float64](kind, keys.FloatCodec{}, renders), nil
	}
	return nil, fmt.Errorf("unsupported key type %v", kind)
}

func newSession[K any](kind keys.Kind, codec keys.Codec[K], renders *cache.Cache) *session[K] {
	return &session[K]{
		kind:    kind,
		codec:   codec,
		tree:    avl.New(codec.Less),
		renders: renders,
	}
}

func (s *session[K]) Kind() keys.Kind {
	return s.kind
}

func (s *session[K]) Len() int {
	return s.tree.Len()
}

func (s *session[K]) InsertKey(raw string) (bool, error) {
	key, err := s.codec.Parse(raw)
	if err != nil {
		return false, err
	}
	before := s.tree.Len()
	s.tree.Insert(key)
	return s.tree.Len() > before, nil
}

func (s *session[K]) EraseKey(raw string) (bool, error) {
	key, err := s.codec.Parse(raw)
	if err != nil {
		return false, err
	}
	before := s.tree.Len()
	s.tree.Erase(key)
	return s.tree.Len() < before, nil
}

// Exec runs a single command line. Blank lines and # comments produce no
// output.
func (s *session[K]) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	name, operands := strings.ToLower(args[0]), args[1:]
	switch name {
	case "insert", "add":
		return s.insert(name, operands)
	case "erase", "delete", "rm":
		return s.erase(name, operands)
	case "find":
		return s.find(name, operands)
	case "exists", "has":
		key, err := s.singleKey(name, operands)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(s.tree.Exists(key)), nil
	case "pre":
		return s.formatKeys(inspect.PreOrder(s.tree)), nil
	case "in":
		return s.formatKeys(inspect.InOrder(s.tree)), nil
	case "post":
		return s.formatKeys(inspect.PostOrder(s.tree)), nil
	case "len", "size":
		return strconv.Itoa(s.tree.Len()), nil
	case "height":
		return strconv.Itoa(s.tree.Height()), nil
	case "check":
		if err := s.check(); err != nil {
			return "", fmt.Errorf("check failed: %w", err)
		}
		return "ok", nil
	case "print", "tree":
		return s.Render(), nil
	case "clear":
		n := s.tree.Len()
		s.tree.Clear()
		return fmt.Sprintf("cleared %d keys", n), nil
	case "help":
		return sessionHelp, nil
	}
	return "", fmt.Errorf("unknown command %q (try \"help\")", args[0])
}

func (s *session[K]) insert(name string, operands []string) (string, error) {
	parsed, err := s.parseKeys(name, operands)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(parsed))
	for _, key := range parsed {
		before := s.tree.Len()
		s.tree.Insert(key)
		if s.tree.Len() > before {
			lines = append(lines, "inserted "+s.codec.Format(key))
		} else {
			lines = append(lines, "duplicate "+s.codec.Format(key))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (s *session[K]) erase(name string, operands []string) (string, error) {
	parsed, err := s.parseKeys(name, operands)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(parsed))
	for _, key := range parsed {
		before := s.tree.Len()
		s.tree.Erase(key)
		if s.tree.Len() < before {
			lines = append(lines, "erased "+s.codec.Format(key))
		} else {
			lines = append(lines, "absent "+s.codec.Format(key))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (s *session[K]) find(name string, operands []string) (string, error) {
	key, err := s.singleKey(name, operands)
	if err != nil {
		return "", err
	}
	node := s.tree.Find(key)
	if node == nil {
		return s.codec.Format(key) + " not found", nil
	}
	return fmt.Sprintf("found %s (height %d)", s.codec.Format(node.Key()), node.Height()), nil
}

func (s *session[K]) check() error {
	if err := inspect.Check(s.tree); err != nil {
		return err
	}
	return inspect.CheckHeightBound(s.tree)
}

// Render draws the tree, reusing a cached drawing for an identical shape.
func (s *session[K]) Render() string {
	if s.tree.IsEmpty() {
		return emptyTreeText
	}
	draw := func() string {
		return strings.TrimRight(inspect.Render(s.tree, s.codec.Format), "\n")
	}
	if s.renders == nil {
		return draw()
	}

	preOrder := inspect.PreOrder(s.tree)
	formatted := make([]string, len(preOrder))
	for i, key := range preOrder {
		formatted[i] = s.codec.Format(key)
	}
	return GetOrFillRender(s.renders, renderCacheKey(s.kind.String(), formatted), draw)
}

// parseKeys parses every operand before any is applied, so a bad key leaves
// the tree untouched.
func (s *session[K]) parseKeys(name string, operands []string) ([]K, error) {
	if len(operands) == 0 {
		return nil, fmt.Errorf("%s: at least one key required", name)
	}
	parsed := make([]K, 0, len(operands))
	for _, operand := range operands {
		key, err := s.codec.Parse(operand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		parsed = append(parsed, key)
	}
	return parsed, nil
}

func (s *session[K]) singleKey(name string, operands []string) (K, error) {
	var zero K
	if len(operands) != 1 {
		return zero, fmt.Errorf("%s: exactly one key required, got %d", name, len(operands))
	}
	key, err := s.codec.Parse(operands[0])
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return key, nil
}

func (s *session[K]) formatKeys(list []K) string {
	if len(list) == 0 {
		return emptyTreeText
	}
	formatted := make([]string, len(list))
	for i, key := range list {
		formatted[i] = s.codec.Format(key)
	}
	return strings.Join(formatted, " ")
}
