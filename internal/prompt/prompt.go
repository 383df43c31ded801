package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var messageStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(1, 2)

// choiceItem implements list.Item for a selectable option
type choiceItem string

func (i choiceItem) Title() string       { return string(i) }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return string(i) }

// choiceModel is the bubbletea model for a one-shot option picker.
type choiceModel struct {
	message string
	list    list.Model
	choice  string
}

func newChoiceModel(message string, options []string) choiceModel {
	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = choiceItem(option)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, listHeight(len(options)))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)

	return choiceModel{message: message, list: l}
}

func listHeight(options int) int {
	// one row per item plus pagination and help chrome
	height := options + 4
	if height > 16 {
		height = 16
	}
	return height
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = string(item)
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m choiceModel) View() string {
	return messageStyle.Render(m.message) + "\n" + m.list.View()
}

// TerminalPrompt renders choice prompts on the controlling terminal.
type TerminalPrompt struct{}

func NewTerminalPrompt() *TerminalPrompt {
	return &TerminalPrompt{}
}

// ShowChoice presents message with one selectable entry per option and
// returns the selected option. Dismissal (esc, q, ctrl+c) and context
// cancellation both report an empty selection.
func (p *TerminalPrompt) ShowChoice(ctx context.Context, message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	program := tea.NewProgram(newChoiceModel(message, options), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", nil
		}
		return "", fmt.Errorf("prompt ui failed: %w", err)
	}

	model, ok := final.(choiceModel)
	if !ok {
		return "", fmt.Errorf("prompt ui returned unexpected model %T", final)
	}
	return model.choice, nil
}
