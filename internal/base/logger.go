package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/global"
	"github.com/fatih/color"
)

type loggerShutdownCallback struct {
	logFile *os.File
}

func (lc *loggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logFile == nil {
		return nil
	}
	return lc.logFile.Close()
}

// Logger writes colored lines to the console and plain lines to an
// optional log file, and installs itself as the slog default so that
// echo request logging shares the same sinks.
type Logger struct {
	console *slog.Logger
	file    *slog.Logger
	logFile *os.File
	debug   bool
}

func NewLogger() *Logger {
	return &Logger{}
}

func (logger *Logger) Init(debug bool) {
	logger.debug = debug

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger.console = slog.New(newConsoleHandler(os.Stdout, level))

	if file, err := os.OpenFile("clubhouse.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions); err == nil {
		logger.logFile = file
		logger.file = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	} else {
		logger.console.Warn(fmt.Sprintf("Fail to open log file, file logging disabled: %v", err))
	}

	slog.SetDefault(logger.console)
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logFile: logger.logFile}
}

func (logger *Logger) log(level slog.Level, msg string) {
	if logger.console != nil {
		logger.console.Log(context.Background(), level, msg)
	}
	if logger.file != nil {
		logger.file.Log(context.Background(), level, msg)
	}
}

func (logger *Logger) Debug(msg string, v ...interface{}) {
	logger.log(slog.LevelDebug, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.log(slog.LevelDebug, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, v ...interface{}) {
	logger.log(slog.LevelInfo, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.log(slog.LevelInfo, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, v ...interface{}) {
	logger.log(slog.LevelWarn, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.log(slog.LevelWarn, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprintf(msg, v...))
}

type consoleHandler struct {
	slog.Handler
	out *os.File
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

func newConsoleHandler(out *os.File, level slog.Level) *consoleHandler {
	return &consoleHandler{
		Handler: slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		out:     out,
	}
}

func (handler *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	levelColor, ok := levelColors[record.Level]
	if !ok {
		levelColor = color.New(color.FgWhite)
	}
	timestamp := record.Time.Format("2006-01-02 15:04:05.000")
	_, err := fmt.Fprintf(handler.out, "[%s] [%s] %s\n",
		timestamp, levelColor.Sprint(record.Level.String()), record.Message)
	return err
}
