package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	MaxSize    int      `yaml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the package logger. Unknown levels fall back to info
// and an empty target list writes to the console.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		switch t {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		case TargetFile:
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	mu.Unlock()
}

func Debug(msg string, keyvals ...any) {
	write(func(l *zerolog.Logger) *zerolog.Event { return l.Debug() }, msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	write(func(l *zerolog.Logger) *zerolog.Event { return l.Info() }, msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	write(func(l *zerolog.Logger) *zerolog.Event { return l.Warn() }, msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	write(func(l *zerolog.Logger) *zerolog.Event { return l.Error() }, msg, keyvals)
}

func write(level func(*zerolog.Logger) *zerolog.Event, msg string, keyvals []any) {
	mu.RLock()
	l := global
	mu.RUnlock()

	e := level(&l)
	if len(keyvals) > 0 {
		e = e.Fields(keyvals)
	}
	e.Msg(msg)
}
