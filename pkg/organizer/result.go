package organizer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Outcome 单个文件的处理结果
type Outcome int

const (
	Moved Outcome = iota
	Planned
	SkippedPermission
	SkippedCollision
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Planned:
		return "planned"
	case SkippedPermission:
		return "permission_denied"
	case SkippedCollision:
		return "already_exists"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Succeeded 已移动（或预览模式下可以移动）
func (o Outcome) Succeeded() bool {
	return o == Moved || o == Planned
}

// ItemResult 单个文件的处理记录
type ItemResult struct {
	Name        string
	Category    string
	Destination string
	Size        int64
	Outcome     Outcome
	Err         error
}

// RunResult 一次整理的统计信息
type RunResult struct {
	RunID       string
	Directory   string
	DryRun      bool
	TotalFiles  int
	MovedFiles  int
	BytesMoved  int64
	CreatedDirs []string
	Items       []ItemResult
	StartTime   time.Time
	EndTime     time.Time
}

// Unprocessed 未能处理的文件数
func (r *RunResult) Unprocessed() int {
	return r.TotalFiles - r.MovedFiles
}

// Count 统计某种结果的文件数
func (r *RunResult) Count(o Outcome) int {
	n := 0
	for _, item := range r.Items {
		if item.Outcome == o {
			n++
		}
	}
	return n
}

func (r *RunResult) record(item ItemResult) {
	r.Items = append(r.Items, item)
	if item.Outcome.Succeeded() {
		r.MovedFiles++
		r.BytesMoved += item.Size
	}
}

func (r *RunResult) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== Organization summary ==========\n")
	buf.WriteString(fmt.Sprintf("Directory: %s\n", r.Directory))
	if r.DryRun {
		buf.WriteString("Mode: dry run (no files were moved)\n")
	}
	buf.WriteString(fmt.Sprintf("Processed %d/%d files\n", r.MovedFiles, r.TotalFiles))
	buf.WriteString(fmt.Sprintf("Moved: %s\n", humanize.IBytes(uint64(r.BytesMoved))))
	if n := len(r.CreatedDirs); n > 0 {
		buf.WriteString(fmt.Sprintf("Created folders: %d\n", n))
	}
	if r.Unprocessed() > 0 {
		buf.WriteString(fmt.Sprintf("Not processed: %d (permission denied: %d, already exists: %d, failed: %d)\n",
			r.Unprocessed(), r.Count(SkippedPermission), r.Count(SkippedCollision), r.Count(Failed)))
	}
	if !r.EndTime.IsZero() {
		buf.WriteString(fmt.Sprintf("Elapsed: %v\n", r.EndTime.Sub(r.StartTime).Round(time.Millisecond)))
	}
	buf.WriteString("==========================================")

	return buf.String()
}
