package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/beardbaba/KuchTohHai/config"
	"github.com/beardbaba/KuchTohHai/pkg/logger"
	"github.com/beardbaba/KuchTohHai/pkg/organizer"
)

type OrganizeOptions struct {
	Directory string
	Verbose   bool
	DryRun    bool
	Preset    string
	LogFile   string
	NoLogFile bool
	Exclude   []string

	Config *config.Config
	Fs     afero.Fs
}

// RunOrganize 初始化日志、分类表并执行一次整理
func RunOrganize(ctx context.Context, opts *OrganizeOptions) (*organizer.RunResult, error) {
	base := opts.Config
	if base == nil {
		base = config.Get()
	}
	cfg := *base

	sinks, err := logger.ParseSinks(cfg.Logging.Sinks)
	if err != nil {
		return nil, err
	}
	if opts.NoLogFile {
		sinks = slices.DeleteFunc(sinks, func(s logger.Sink) bool { return s == logger.SinkFile })
	}

	logFile := cfg.Logging.File
	if opts.LogFile != "" {
		logFile = opts.LogFile
	}

	closer, err := logger.Init(logger.Options{
		Verbose: opts.Verbose || cfg.Logging.Verbose,
		Sinks:   sinks,
		File:    logFile,
	})
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	log := logger.Get()
	log.Info().Msg("File organizer started")
	log.Debug().Msgf("Verbose mode %s", enabled(opts.Verbose || cfg.Logging.Verbose))

	if opts.Preset != "" {
		cfg.Classify.Preset = opts.Preset
	}
	table, err := cfg.Table()
	if err != nil {
		logger.Critical(log).Err(err).Msg("Invalid category configuration")
		return nil, fmt.Errorf("category table: %w", err)
	}

	exclude := append([]string{}, cfg.Organize.Exclude...)
	exclude = append(exclude, opts.Exclude...)
	if slices.Contains(sinks, logger.SinkFile) {
		if pattern, ok := logFileInside(opts.Directory, logFile); ok {
			exclude = append(exclude, pattern)
		}
	}

	org := organizer.New(opts.Fs, table, *log,
		organizer.WithDryRun(opts.DryRun || cfg.Organize.DryRun),
		organizer.WithExclude(exclude...),
	)

	return org.Organize(ctx, opts.Directory)
}

// logFileInside 日志文件就在目标目录下时返回它的文件名，避免把日志自己移走
func logFileInside(dir, logFile string) (string, bool) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	absLog, err := filepath.Abs(logFile)
	if err != nil {
		return "", false
	}
	if filepath.Dir(absLog) != absDir {
		return "", false
	}
	// 文件名里的 glob 元字符需要转义
	return escapeGlob(filepath.Base(absLog)), true
}

func escapeGlob(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '*', '?', '[', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
