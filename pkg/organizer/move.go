package organizer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ensureDir 确保分类目录存在，返回是否为本次新建
// 已被其他进程创建的目录视为成功
func (o *Organizer) ensureDir(log *zerolog.Logger, dir string) (bool, error) {
	info, err := o.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &os.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	log.Info().Str("path", dir).Msgf("Creating directory: %s", dir)
	if err := o.fs.MkdirAll(dir, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// occupied 检查目标路径是否已存在（不跟随符号链接）
func (o *Organizer) occupied(path string) (bool, error) {
	var err error
	if lst, ok := o.fs.(afero.Lstater); ok {
		_, _, err = lst.LstatIfPossible(path)
	} else {
		_, err = o.fs.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// moveFile 移动文件，不覆盖已存在的目标
// rename 跨设备失败时回退为复制后删除
func (o *Organizer) moveFile(log *zerolog.Logger, src, dst string) error {
	exists, err := o.occupied(dst)
	if err != nil {
		return fmt.Errorf("check destination: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}

	err = o.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	log.Debug().
		Err(err).
		Str("source", src).
		Str("destination", dst).
		Msg("rename across devices failed, copying instead")

	return o.copyAndRemove(src, dst)
}

func (o *Organizer) copyAndRemove(src, dst string) error {
	in, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		o.fs.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		o.fs.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	// 源文件删不掉时撤回副本，保持文件留在原处
	if err := o.fs.Remove(src); err != nil {
		o.fs.Remove(dst)
		return fmt.Errorf("remove source: %w", err)
	}
	return nil
}
