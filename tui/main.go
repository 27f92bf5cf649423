package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrCancelled = errors.New("cancelled by user")

	errEmptyPath = errors.New("path must not be empty")
)

// Options 输入输出可替换，便于测试；Validate 在确认目录时调用
type Options struct {
	Input    io.Reader
	Output   io.Writer
	Validate func(string) error
}

// Run 依次询问目录和是否显示详细日志
func Run(opts Options) (Answers, error) {
	var progOpts []tea.ProgramOption
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(initialModel(opts.Validate), progOpts...)

	final, err := p.Run()
	if err != nil {
		return Answers{}, err
	}

	m := final.(model)
	if m.cancelled {
		return Answers{}, ErrCancelled
	}
	return m.answers, nil
}
