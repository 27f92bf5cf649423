package organizer

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotADirectory 目标路径不存在或不是目录，整次运行中止
	ErrNotADirectory = errors.New("not a directory")

	// ErrDestinationExists 目标位置已有同名文件
	ErrDestinationExists = errors.New("destination already exists")
)

// outcomeOf 把单个文件的错误映射为处理结果
func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Moved
	case errors.Is(err, ErrDestinationExists), errors.Is(err, fs.ErrExist):
		return SkippedCollision
	case errors.Is(err, fs.ErrPermission):
		return SkippedPermission
	default:
		return Failed
	}
}
