package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Sink 日志输出目标
type Sink string

const (
	SinkConsole Sink = "console"
	SinkFile    Sink = "file"

	DefaultLogFile = "file_organizer.log"
	TimeFormat     = "2006-01-02 15:04:05"
)

// Options 日志配置
// Verbose 控制控制台级别（debug/info），文件始终记录 debug
type Options struct {
	Verbose bool
	Sinks   []Sink
	File    string
	NoColor bool

	// Console 为空时使用 os.Stdout，测试中可替换
	Console io.Writer
}

var Logger *zerolog.Logger

// ParseSinks 解析配置中的 sink 名称
func ParseSinks(names []string) ([]Sink, error) {
	sinks := make([]Sink, 0, len(names))
	for _, name := range names {
		switch Sink(strings.ToLower(strings.TrimSpace(name))) {
		case SinkConsole:
			sinks = append(sinks, SinkConsole)
		case SinkFile:
			sinks = append(sinks, SinkFile)
		default:
			return nil, fmt.Errorf("unknown log sink %q (want console or file)", name)
		}
	}
	return sinks, nil
}

// New 按配置创建 logger，返回的 Closer 用于关闭日志文件
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	consoleLevel := zerolog.InfoLevel
	if opts.Verbose {
		consoleLevel = zerolog.DebugLevel
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	for _, sink := range dedupe(opts.Sinks) {
		switch sink {
		case SinkConsole:
			out := opts.Console
			if out == nil {
				out = os.Stdout
			}
			writers = append(writers, &LevelFilter{
				Writer: zerolog.ConsoleWriter{Out: out, TimeFormat: TimeFormat, NoColor: opts.NoColor},
				Min:    consoleLevel,
			})
		case SinkFile:
			file := opts.File
			if file == "" {
				file = DefaultLogFile
			}
			f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				closer.Close()
				return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
			}
			closer = f
			writers = append(writers, &LevelFilter{Writer: f, Min: zerolog.DebugLevel})
		default:
			closer.Close()
			return zerolog.Nop(), nil, fmt.Errorf("unknown log sink %q", sink)
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return l, closer, nil
}

// Init 创建 logger 并设置为全局实例
func Init(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}
	Logger = &l
	return closer, nil
}

// Get 返回全局 logger 实例
// 如果 logger 未初始化，返回一个默认的 logger（输出到 /dev/null）
func Get() *zerolog.Logger {
	if Logger == nil {
		l := zerolog.New(io.Discard)
		Logger = &l
	}
	return Logger
}

// Critical 记录致命级别事件但不退出进程
func Critical(l *zerolog.Logger) *zerolog.Event {
	return l.WithLevel(zerolog.FatalLevel)
}

// LevelFilter 只写入不低于 Min 级别的日志
type LevelFilter struct {
	Writer io.Writer
	Min    zerolog.Level
}

func (w *LevelFilter) Write(p []byte) (int, error) {
	return w.Writer.Write(p)
}

func (w *LevelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.Min {
		return len(p), nil
	}
	return w.Writer.Write(p)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func dedupe(sinks []Sink) []Sink {
	seen := make(map[Sink]bool, len(sinks))
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
