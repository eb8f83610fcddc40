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
	"strings"
	"testing"

	"github.com/cybrota/avltree/keys"
)

type execStep struct {
	line    string
	want    string
	wantErr string
}

func runSteps(t *testing.T, s Session, steps []execStep) {
	t.Helper()
	for _, step := range steps {
		got, err := s.Exec(step.line)
		if step.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), step.wantErr) {
				t.Fatalf("Exec(%q) error = %v; want containing %q", step.line, err, step.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Exec(%q) returned error: %v", step.line, err)
		}
		if got != step.want {
			t.Fatalf("Exec(%q) = %q; want %q", step.line, got, step.want)
		}
	}
}

func TestSessionIntCommands(t *testing.T) {
	s, err := NewSession(keys.KindInt, NewRenderCache(0))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	runSteps(t, s, []execStep{
		{line: "", want: ""},
		{line: "# a comment", want: ""},
		{line: "pre", want: "(empty)"},
		{line: "insert 10 20 30", want: "inserted 10\ninserted 20\ninserted 30"},
		{line: "pre", want: "20 10 30"},
		{line: "in", want: "10 20 30"},
		{line: "post", want: "10 30 20"},
		{line: "add 20", want: "duplicate 20"},
		{line: "len", want: "3"},
		{line: "height", want: "2"},
		{line: "find 10", want: "found 10 (height 1)"},
		{line: "find 11", want: "11 not found"},
		{line: "exists 30", want: "true"},
		{line: "HAS 31", want: "false"},
		{line: "check", want: "ok"},
		{line: "erase 20 99", want: "erased 20\nabsent 99"},
		{line: "pre", want: "30 10"},
		{line: "clear", want: "cleared 2 keys"},
		{line: "size", want: "0"},
	})
}

func TestSessionEraseLeavesBalancedTree(t *testing.T) {
	s, _ := NewSession(keys.KindInt, nil)
	runSteps(t, s, []execStep{
		{line: "insert 10 5 15 3 7 12 18", want: "inserted 10\ninserted 5\ninserted 15\ninserted 3\ninserted 7\ninserted 12\ninserted 18"},
		{line: "pre", want: "10 5 3 7 15 12 18"},
		{line: "rm 3 7", want: "erased 3\nerased 7"},
		{line: "pre", want: "10 5 15 12 18"},
		{line: "in", want: "5 10 12 15 18"},
		{line: "post", want: "5 12 18 15 10"},
	})
}

func TestSessionStringKeys(t *testing.T) {
	s, _ := NewSession(keys.KindString, nil)
	runSteps(t, s, []execStep{
		{line: `insert "hello world" apple 'b c'`, want: "inserted \"hello world\"\ninserted \"apple\"\ninserted \"b c\""},
		{line: "in", want: `"apple" "b c" "hello world"`},
		{line: `exists "hello world"`, want: "true"},
		{line: `delete apple`, want: `erased "apple"`},
	})
}

func TestSessionErrors(t *testing.T) {
	s, _ := NewSession(keys.KindInt, nil)
	runSteps(t, s, []execStep{
		{line: "frobnicate 1", wantErr: `unknown command "frobnicate"`},
		{line: "insert", wantErr: "insert: at least one key required"},
		{line: "insert 1 two 3", wantErr: `invalid int key "two"`},
		{line: "len", want: "0"},
		{line: "find", wantErr: "find: exactly one key required, got 0"},
		{line: "exists 1 2", wantErr: "exists: exactly one key required, got 2"},
		{line: `insert "unterminated`, wantErr: "failed to parse command"},
	})

	f, _ := NewSession(keys.KindFloat, nil)
	runSteps(t, f, []execStep{
		{line: "insert NaN", wantErr: "NaN is not an orderable key"},
		{line: "insert 0.5 -1e3", want: "inserted 0.5\ninserted -1000"},
	})
}

func TestSessionRenderUsesCache(t *testing.T) {
	renders := NewRenderCache(0)
	s, _ := NewSession(keys.KindInt, renders)

	if got := s.Render(); got != "(empty)" {
		t.Errorf("Render on empty tree = %q", got)
	}

	s.Exec("insert 10 20 30")
	want := "       /------+ 30\n|------+ 20\n       \\------+ 10"
	if got, _ := s.Exec("print"); got != want {
		t.Fatalf("print = %q; want %q", got, want)
	}

	key := renderCacheKey("int", []string{"20", "10", "30"})
	if cached, ok := GetRender(renders, key); !ok || cached != want {
		t.Errorf("render not cached under %q: %q, %v", key, cached, ok)
	}

	CacheRender(renders, key, "stale")
	if got := s.Render(); got != "stale" {
		t.Errorf("Render should be served from the cache, got %q", got)
	}
}

func TestNewSessionKinds(t *testing.T) {
	for _, kind := range []keys.Kind{keys.KindInt, keys.KindString, keys.KindFloat} {
		s, err := NewSession(kind, nil)
		if err != nil {
			t.Fatalf("NewSession(%v): %v", kind, err)
		}
		if s.Kind() != kind || s.Len() != 0 {
			t.Errorf("NewSession(%v) = kind %v len %d", kind, s.Kind(), s.Len())
		}
	}
	if _, err := NewSession(keys.Kind(42), nil); err == nil {
		t.Errorf("NewSession with unknown kind should fail")
	}
}
