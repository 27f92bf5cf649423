package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/beardbaba/KuchTohHai/internal"
	"github.com/beardbaba/KuchTohHai/pkg/classifier"
)

// Category 自定义分类；用列表而不是 map，避免 viper 把分类名转成小写
type Category struct {
	Name       string
	Extensions []string
}

type Config struct {
	Logging struct {
		Sinks   []string
		File    string
		Verbose bool
	}
	Classify struct {
		Preset     string
		Categories []Category
		Fallback   string
	}
	Organize struct {
		Exclude []string
		DryRun  bool `mapstructure:"dry_run"`
	}
}

var cfg Config

// Load 读取配置文件，path 为空时按默认路径查找
// 配置文件不存在不视为错误
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(internal.ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/." + internal.AppName)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/" + internal.AppName)
	}

	v.SetEnvPrefix(internal.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.sinks", []string{"console", "file"})
	v.SetDefault("logging.file", internal.DefaultLogFile)
	v.SetDefault("logging.verbose", false)
	v.SetDefault("classify.preset", classifier.PresetDefault)
	v.SetDefault("classify.fallback", classifier.FallbackCategory)
	v.SetDefault("organize.exclude", []string{})
	v.SetDefault("organize.dry_run", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg = c
	return &c, nil
}

func Get() *Config {
	return &cfg
}

// Table 根据配置构建分类表
// 自定义 categories 非空时替换预设表
func (c *Config) Table() (*classifier.Table, error) {
	if len(c.Classify.Categories) > 0 {
		categories := make(map[string][]string, len(c.Classify.Categories))
		for _, category := range c.Classify.Categories {
			categories[category.Name] = append(categories[category.Name], category.Extensions...)
		}
		return classifier.NewTable(categories, c.Classify.Fallback)
	}

	table, err := classifier.Preset(c.Classify.Preset)
	if err != nil {
		return nil, err
	}
	if c.Classify.Fallback == "" || c.Classify.Fallback == table.Fallback() {
		return table, nil
	}

	categories := make(map[string][]string)
	for _, category := range table.Categories() {
		if exts := table.Extensions(category); len(exts) > 0 {
			categories[category] = exts
		}
	}
	return classifier.NewTable(categories, c.Classify.Fallback)
}
