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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const maxLogItems = 200

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput textinput.Model
	opLog     list.Model
	treeView  viewport.Model
	helpView  viewport.Model

	session  Session
	showHelp bool

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// logItem is one executed command in the operation log
type logItem struct {
	command string
	output  string
	failed  bool
}

func (i logItem) FilterValue() string { return i.command }
func (i logItem) Title() string       { return i.command }
func (i logItem) Description() string {
	summary := strings.ReplaceAll(i.output, "\n", "; ")
	if i.failed {
		return "✗ " + summary
	}
	return summary
}

// InitialModel creates the initial model
func InitialModel(session Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	opLog := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	opLog.SetShowTitle(false)
	opLog.SetShowHelp(false)
	opLog.SetShowStatusBar(false)
	opLog.SetFilteringEnabled(false)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	m := Model{
		textInput:       ti,
		opLog:           opLog,
		treeView:        viewport.New(0, 0),
		helpView:        viewport.New(0, 0),
		session:         session,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	m.refreshHelp()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "ctrl+y":
			m.copyInOrder()
			return m, nil
		case "pgup", "pgdown":
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		case "enter":
			cmd = m.execInput()
			return m, cmd
		}

		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshHelp()
		m.ready = true
	}

	return m, nil
}

// execInput runs the typed command and records it in the operation log.
func (m *Model) execInput() tea.Cmd {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if line == "" {
		return nil
	}

	output, err := m.session.Exec(line)
	item := logItem{command: line, output: output}
	if err != nil {
		item.output = err.Error()
		item.failed = true
		m.status, m.statusErr = err.Error(), true
	} else {
		m.status, m.statusErr = fmt.Sprintf("%d keys", m.session.Len()), false
	}

	cmd := m.opLog.InsertItem(0, item)
	if n := len(m.opLog.Items()); n > maxLogItems {
		m.opLog.RemoveItem(n - 1)
	}
	m.opLog.Select(0)
	m.refreshTree()
	return cmd
}

func (m *Model) copyInOrder() {
	inOrder, err := m.session.Exec("in")
	if err == nil {
		err = copyToClipboard(inOrder)
	}
	if err != nil {
		m.status, m.statusErr = fmt.Sprintf("copy failed: %v", err), true
		return
	}
	m.status, m.statusErr = "📋 copied in-order traversal", false
}

func (m *Model) refreshTree() {
	var sb strings.Builder
	sb.WriteString(m.session.Render())
	sb.WriteString("\n\n")
	for _, order := range []string{"pre", "in", "post"} {
		out, _ := m.session.Exec(order)
		fmt.Fprintf(&sb, "%-5s %s\n", order+":", out)
	}
	height, _ := m.session.Exec("height")
	fmt.Fprintf(&sb, "\n%d keys, height %s, %s keys", m.session.Len(), height, m.session.Kind())
	m.treeView.SetContent(sb.String())
}

func (m *Model) refreshHelp() {
	md := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.helpView.SetContent(rendered)
			return
		}
	}
	m.helpView.SetContent(md)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 4
	logWidth := (m.width * 4 / 10) - 1
	treeWidth := m.width - logWidth - 3

	m.textInput.Width = logWidth - 8
	m.opLog.SetSize(logWidth-2, bodyHeight-2)
	m.treeView.Width = treeWidth - 2
	m.treeView.Height = bodyHeight + inputHeight
	m.helpView.Width = treeWidth - 2
	m.helpView.Height = bodyHeight + inputHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 avltree %s", version))
	input := m.styles.Border.Width(m.textInput.Width + 6).Render(m.textInput.View())
	opLog := m.styles.Border.Render(m.opLog.View())
	left := lipgloss.JoinVertical(lipgloss.Left, input, opLog)

	right := m.styles.Border.Render(m.treeView.View())
	if m.showHelp {
		right = m.styles.Border.Render(m.helpView.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run command", "toggle help", "copy in-order", "scroll tree", "quit"}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	footer := strings.Join(parts, "  •  ")

	if m.status != "" {
		style := m.styles.SuccessMessage
		if m.statusErr {
			style = m.styles.ErrorMessage
		}
		footer = style.Render(m.status) + "   " + footer
	}
	return footer
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session Session) error {
	model := InitialModel(session)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
