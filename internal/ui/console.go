// Package ui provides console output and logging for workbench commands.
package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// plainHandler is a slog handler that writes bare messages without
// timestamps or level prefixes. Console output is for humans.
type plainHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // shared with Console so it can be flipped at runtime
}

func (h *plainHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *plainHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *plainHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *plainHandler) WithGroup(_ string) slog.Handler {
	return h
}

// newRotatingLogger creates a lumberjack logger with limits taken from
// WORKBENCH_LOG_* environment variables when present.
func newRotatingLogger(logFilePath string) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if maxSizeStr := os.Getenv("WORKBENCH_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			logger.MaxSize = maxSize
		}
	}
	if maxBackupsStr := os.Getenv("WORKBENCH_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			logger.MaxBackups = maxBackups
		}
	}
	if maxAgeStr := os.Getenv("WORKBENCH_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			logger.MaxAge = maxAge
		}
	}

	return logger
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// Console provides user-facing output plus optional file logging
type Console struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser // rotating file logger, when configured
	quiet     bool
}

// NewConsole creates a console-only instance. Debug messages are enabled
// when the DEBUG environment variable is set.
func NewConsole() *Console {
	console, _ := NewConsoleWithLogFile("")
	return console
}

// NewConsoleWithLogFile creates a Console that additionally logs everything,
// timestamped, to a rotating file.
func NewConsoleWithLogFile(logFilePath string) (*Console, error) {
	console := &Console{
		writer: os.Stdout,
	}

	consoleHandler := &plainHandler{
		writer:    console.writer,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &console.quiet,
	}

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		rotating := newRotatingLogger(logFilePath)
		console.logWriter = rotating

		fileHandler := slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	console.logger = slog.New(&multiHandler{handlers: handlers})
	return console, nil
}

// SetQuiet suppresses all console output when true.
func (c *Console) SetQuiet(quiet bool) {
	c.quiet = quiet
}

// Close releases the rotating log file, if any.
func (c *Console) Close() error {
	if c.logWriter != nil {
		return c.logWriter.Close()
	}
	return nil
}

// Info writes an info message
func (c *Console) Info(format string, args ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (c *Console) Warn(format string, args ...interface{}) {
	c.logger.Warn(warnStyle.Render("warning: ") + fmt.Sprintf(format, args...))
}

// Error writes an error message
func (c *Console) Error(format string, args ...interface{}) {
	c.logger.Error(errorStyle.Render("error: ") + fmt.Sprintf(format, args...))
}

// Debug writes a debug message, shown only when DEBUG is set
func (c *Console) Debug(format string, args ...interface{}) {
	c.logger.Debug(fmt.Sprintf(format, args...))
}

// Page writes pre-formatted output verbatim
func (c *Console) Page(content string) {
	if c.quiet {
		return
	}
	fmt.Fprint(c.writer, content)
}
