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

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/avltree/keys"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := NewSession(keys.KindInt, NewRenderCache(0))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	updated, _ := InitialModel(s).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func submit(m Model, line string) Model {
	m.textInput.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelExecutesCommands(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "insert 10 20 30")

	if m.session.Len() != 3 {
		t.Fatalf("Len = %d; want 3", m.session.Len())
	}
	if m.textInput.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.textInput.Value())
	}
	if len(m.opLog.Items()) != 1 {
		t.Fatalf("op log has %d items; want 1", len(m.opLog.Items()))
	}
	item := m.opLog.Items()[0].(logItem)
	if item.command != "insert 10 20 30" || item.failed {
		t.Errorf("unexpected log item %+v", item)
	}
	if m.statusErr {
		t.Errorf("status should not be an error: %q", m.status)
	}

	content := m.treeView.View()
	if !strings.Contains(content, "pre:  20 10 30") {
		t.Errorf("tree view missing pre-order:\n%s", content)
	}
}

func TestModelRecordsFailures(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "insert 1")
	m = submit(m, "frobnicate")

	if len(m.opLog.Items()) != 2 {
		t.Fatalf("op log has %d items; want 2", len(m.opLog.Items()))
	}
	latest := m.opLog.Items()[0].(logItem)
	if !latest.failed || latest.command != "frobnicate" {
		t.Errorf("newest item should be the failure, got %+v", latest)
	}
	if !m.statusErr {
		t.Errorf("status should report the error")
	}
	if !strings.HasPrefix(latest.Description(), "✗ ") {
		t.Errorf("failed description = %q", latest.Description())
	}
}

func TestModelIgnoresBlankInput(t *testing.T) {
	m := newTestModel(t)
	m = submit(m, "   ")
	if len(m.opLog.Items()) != 0 {
		t.Errorf("blank input should not be logged")
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if !m.showHelp {
		t.Errorf("f1 should show help")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if m.showHelp {
		t.Errorf("second f1 should hide help")
	}

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s should quit", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should return tea.Quit", key.String())
		}
	}
}

func TestModelView(t *testing.T) {
	s, _ := NewSession(keys.KindInt, nil)
	if got := InitialModel(s).View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	m := newTestModel(t)
	m = submit(m, "insert 2 1 3")
	view := m.View()
	for _, fragment := range []string{"avltree", "toggle help", "3 keys"} {
		if !strings.Contains(view, fragment) {
			t.Errorf("view missing %q", fragment)
		}
	}
}

func TestLogItemDescription(t *testing.T) {
	item := logItem{command: "insert 1 2", output: "inserted 1\ninserted 2"}
	if item.Title() != "insert 1 2" || item.FilterValue() != "insert 1 2" {
		t.Errorf("unexpected title %q", item.Title())
	}
	if item.Description() != "inserted 1; inserted 2" {
		t.Errorf("Description = %q", item.Description())
	}
}
