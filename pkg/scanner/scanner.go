package scanner

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileLister 列出目录下一层的普通文件，不递归
type FileLister struct {
	Fs      afero.Fs
	Exclude []string
}

func NewFileLister(fs afero.Fs, exclude ...string) *FileLister {
	return &FileLister{
		Fs:      fs,
		Exclude: exclude,
	}
}

// List 返回 dir 下的普通文件，顺序与 afero.ReadDir 一致（按名称）
// 目录、符号链接及其他特殊文件会被跳过
func (l *FileLister) List(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, err
	}

	files := make([]os.FileInfo, 0, len(entries))
	for _, info := range entries {
		if !info.Mode().IsRegular() {
			continue
		}
		if l.excluded(info.Name()) {
			continue
		}
		files = append(files, info)
	}

	return files, nil
}

func (l *FileLister) excluded(name string) bool {
	for _, pattern := range l.Exclude {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// CountFiles 统计 dir 下一层的普通文件数量
func (l *FileLister) CountFiles(dir string) (int, error) {
	files, err := l.List(dir)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
