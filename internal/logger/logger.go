// Package logger writes lumibot's diagnostic log. The TUI owns the terminal, so records
// go to a rotating file and only reach stderr with --debug.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/lumibot/internal/constants"
)

// Logger is nil until Init succeeds. The package helpers drop records until then.
var Logger *log.Logger

var file string

type Config struct {
	Debug     bool
	ConfigDir string
	// LogDir overrides <ConfigDir>/logs.
	LogDir string
}

func (c Config) Dir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.ConfigDir, "logs")
}

func (c Config) level() log.Level {
	if c.Debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

func Init(cfg Config) error {
	dir := cfg.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, constants.AppName+".log")

	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, out)
	}

	Logger = log.NewWithOptions(out, log.Options{
		Level:           cfg.level(),
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
	file = path
	return nil
}

// File is the active log file, empty before Init.
func File() string {
	if Logger == nil {
		return ""
	}
	return file
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
