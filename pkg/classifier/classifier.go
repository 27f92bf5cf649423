package classifier

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// FallbackCategory 未匹配任何扩展名时使用的分类
	FallbackCategory = "Others"

	PresetDefault = "default"
	PresetLegacy  = "legacy"
)

var (
	ErrDuplicateExtension = errors.New("extension mapped to more than one category")
	ErrEmptyFallback      = errors.New("fallback category must not be empty")
	ErrUnknownPreset      = errors.New("unknown category preset")
)

// Table 扩展名到分类的只读映射表
type Table struct {
	byExt    map[string]string
	fallback string
}

// NewTable 根据 分类 -> 扩展名列表 构建映射表
// 扩展名统一转为小写并去掉前导点，同一扩展名出现在多个分类中视为错误
func NewTable(categories map[string][]string, fallback string) (*Table, error) {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		return nil, ErrEmptyFallback
	}

	byExt := make(map[string]string)
	for category, exts := range categories {
		category = strings.TrimSpace(category)
		if category == "" {
			return nil, fmt.Errorf("empty category name for extensions %v", exts)
		}
		for _, ext := range exts {
			ext = normalizeExt(ext)
			if ext == "" {
				continue
			}
			if prev, ok := byExt[ext]; ok && prev != category {
				return nil, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateExtension, ext, prev, category)
			}
			byExt[ext] = category
		}
	}

	return &Table{byExt: byExt, fallback: fallback}, nil
}

func mustTable(categories map[string][]string, fallback string) *Table {
	t, err := NewTable(categories, fallback)
	if err != nil {
		panic(err)
	}
	return t
}

// Default 默认分类表
func Default() *Table {
	return mustTable(map[string][]string{
		"Images":    {"jpg", "jpeg", "png", "gif"},
		"Documents": {"pdf", "doc", "docx", "txt", "csv", "xlsx", "pptx"},
		"Archives":  {"zip", "rar", "7z", "tar", "gz"},
		"Videos":    {"mp4", "avi", "mkv", "mov", "wmv"},
		"Audio":     {"mp3", "wav"},
		"Programs":  {"exe", "msi", "bat"},
		"Code":      {"py", "ipynb"},
	}, FallbackCategory)
}

// Legacy 旧版脚本使用的细粒度分类表
func Legacy() *Table {
	return mustTable(map[string][]string{
		"image":        {"jpg", "png", "gif"},
		"audio":        {"mp3", "wav"},
		"video":        {"mp4", "mov"},
		"text":         {"txt"},
		"word":         {"docx"},
		"pdf":          {"pdf"},
		"excel":        {"xlsx", "csv"},
		"presentation": {"pptx", "ppt"},
		"archive":      {"zip", "rar", "gz", "tar"},
		"programs":     {"exe"},
		"python":       {"py", "ipynb"},
	}, FallbackCategory)
}

// Preset 按名称返回内置分类表
func Preset(name string) (*Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetDefault:
		return Default(), nil
	case PresetLegacy:
		return Legacy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Classify 返回文件名所属的分类，未匹配时返回 fallback
func (t *Table) Classify(name string) string {
	if category, ok := t.byExt[ExtensionOf(name)]; ok {
		return category
	}
	return t.fallback
}

func (t *Table) Fallback() string {
	return t.fallback
}

// Categories 返回所有分类名（含 fallback），按字母排序
func (t *Table) Categories() []string {
	seen := map[string]bool{t.fallback: true}
	out := []string{t.fallback}
	for _, category := range t.byExt {
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	sort.Strings(out)
	return out
}

// Extensions 返回某个分类下的扩展名
func (t *Table) Extensions(category string) []string {
	var out []string
	for ext, c := range t.byExt {
		if c == category {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// ExtensionOf 取最后一个点之后的部分并转为小写
// 前导点不算分隔符（.bashrc 没有扩展名）
func ExtensionOf(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
