package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/beardbaba/KuchTohHai/pkg/classifier"
	"github.com/beardbaba/KuchTohHai/pkg/logger"
	"github.com/beardbaba/KuchTohHai/pkg/scanner"
)

// Organizer 按扩展名把目录下一层的文件移动到分类子目录
type Organizer struct {
	fs     afero.Fs
	table  *classifier.Table
	log    zerolog.Logger
	lister *scanner.FileLister
	dryRun bool
}

type Option func(*Organizer)

// WithDryRun 只计算目标位置，不修改文件系统
func WithDryRun(dryRun bool) Option {
	return func(o *Organizer) {
		o.dryRun = dryRun
	}
}

// WithExclude 跳过文件名匹配这些 glob 的文件
func WithExclude(patterns ...string) Option {
	return func(o *Organizer) {
		o.lister.Exclude = append(o.lister.Exclude, patterns...)
	}
}

func New(fs afero.Fs, table *classifier.Table, log zerolog.Logger, opts ...Option) *Organizer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if table == nil {
		table = classifier.Default()
	}

	o := &Organizer{
		fs:     fs,
		table:  table,
		log:    log,
		lister: scanner.NewFileLister(fs),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Organize 整理 dir 下一层的文件
// 只有目录校验或列举失败会返回错误；单个文件的失败记录在结果中，不中断运行。
// ctx 取消后在下一个文件前停止，已移动的文件保持原样，返回部分结果和 ctx.Err()。
func (o *Organizer) Organize(ctx context.Context, dir string) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.NewString(),
		Directory: dir,
		DryRun:    o.dryRun,
		StartTime: time.Now(),
	}
	log := o.log.With().Str("run_id", result.RunID).Logger()

	if err := o.validate(dir); err != nil {
		logger.Critical(&log).Err(err).Str("path", dir).Msg("Invalid directory")
		return nil, err
	}

	log.Info().Str("path", dir).Bool("dry_run", o.dryRun).Msg("Starting organization")

	files, err := o.lister.List(dir)
	if err != nil {
		logger.Critical(&log).Err(err).Str("path", dir).Msg("Fatal error during organization")
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	for i, info := range files {
		if err := ctx.Err(); err != nil {
			log.Warn().
				Int("remaining", len(files)-i).
				Msg("Operation cancelled, files already moved stay in place")
			o.finish(&log, result)
			return result, err
		}

		result.TotalFiles++
		item := o.processFile(&log, dir, info, result)
		result.record(item)
		report(&log, item)
	}

	o.finish(&log, result)
	return result, nil
}

func (o *Organizer) validate(dir string) error {
	info, err := o.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
		}
		return fmt.Errorf("%w: %s: %w", ErrNotADirectory, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return nil
}

func (o *Organizer) processFile(log *zerolog.Logger, dir string, info os.FileInfo, result *RunResult) ItemResult {
	name := info.Name()
	category := o.table.Classify(name)
	folder := filepath.Join(dir, category)

	item := ItemResult{
		Name:        name,
		Category:    category,
		Destination: filepath.Join(folder, name),
		Size:        info.Size(),
	}

	if o.dryRun {
		exists, err := o.occupied(item.Destination)
		switch {
		case err != nil:
			item.Err = err
		case exists:
			item.Err = fmt.Errorf("%w: %s", ErrDestinationExists, item.Destination)
		}
		item.Outcome = outcomeOf(item.Err)
		if item.Err == nil {
			item.Outcome = Planned
		}
		return item
	}

	created, err := o.ensureDir(log, folder)
	if err != nil {
		item.Err = fmt.Errorf("create %s: %w", folder, err)
		item.Outcome = outcomeOf(err)
		return item
	}
	if created {
		result.CreatedDirs = append(result.CreatedDirs, folder)
	}

	item.Err = o.moveFile(log, filepath.Join(dir, name), item.Destination)
	item.Outcome = outcomeOf(item.Err)
	return item
}

func report(log *zerolog.Logger, item ItemResult) {
	switch item.Outcome {
	case Moved:
		log.Debug().
			Str("file", item.Name).
			Str("category", item.Category).
			Msgf("Moved: %s -> %s", item.Name, item.Category)
	case Planned:
		log.Info().
			Str("file", item.Name).
			Str("destination", item.Destination).
			Msgf("Would move: %s -> %s", item.Name, item.Category)
	case SkippedPermission:
		log.Error().Err(item.Err).Str("file", item.Name).Msgf("Permission denied: %s", item.Name)
	case SkippedCollision:
		log.Warn().Err(item.Err).Str("file", item.Name).Msgf("File already exists: %s", item.Name)
	default:
		log.Error().Err(item.Err).Str("file", item.Name).Msgf("Unexpected error with %s", item.Name)
	}
}

func (o *Organizer) finish(log *zerolog.Logger, result *RunResult) {
	result.EndTime = time.Now()

	log.Info().
		Int("total_files", result.TotalFiles).
		Int("moved_files", result.MovedFiles).
		Dur("duration", result.EndTime.Sub(result.StartTime)).
		Msgf("Organization complete. Processed %d/%d files", result.MovedFiles, result.TotalFiles)

	if n := result.Unprocessed(); n > 0 {
		log.Warn().Int("unprocessed", n).Msgf("%d files could not be processed", n)
	}
}
