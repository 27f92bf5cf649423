package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Step int

const (
	StepDirectory Step = iota
	StepVerbose
	StepDone
)

// Answers 交互式输入的结果
type Answers struct {
	Directory string
	Verbose   bool
}

type model struct {
	step         Step
	dirInput     textinput.Model
	verboseInput textinput.Model
	answers      Answers
	cancelled    bool
	err          error
	validate     func(string) error
}

func initialModel(validate func(string) error) model {
	dirInput := textinput.New()
	dirInput.Placeholder = "e.g. ~/Downloads"
	dirInput.Prompt = "> "
	dirInput.PromptStyle = focusedPromptStyle
	dirInput.TextStyle = textStyle
	dirInput.Focus()

	verboseInput := textinput.New()
	verboseInput.Placeholder = "y/n"
	verboseInput.Prompt = "> "
	verboseInput.PromptStyle = focusedPromptStyle
	verboseInput.TextStyle = textStyle
	verboseInput.CharLimit = 3

	return model{
		step:         StepDirectory,
		dirInput:     dirInput,
		verboseInput: verboseInput,
		validate:     validate,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case StepDirectory:
		m.dirInput, cmd = m.dirInput.Update(msg)
	case StepVerbose:
		m.verboseInput, cmd = m.verboseInput.Update(msg)
	}
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepDirectory:
		dir := strings.TrimSpace(m.dirInput.Value())
		if dir == "" {
			m.err = errEmptyPath
			return m, nil
		}
		if m.validate != nil {
			if err := m.validate(dir); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.err = nil
		m.answers.Directory = dir
		m.step = StepVerbose
		m.dirInput.Blur()
		cmd := m.verboseInput.Focus()
		return m, cmd

	case StepVerbose:
		m.answers.Verbose = strings.EqualFold(strings.TrimSpace(m.verboseInput.Value()), "y")
		m.step = StepDone
		m.verboseInput.Blur()
		return m, tea.Quit
	}

	return m, nil
}
