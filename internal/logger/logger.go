// Package logger provides file-backed logging of oracle interactions.
// A nil *Logger is valid and silently discards everything, so library
// callers stay quiet by default.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger writes pipeline events to a timestamped log file
type Logger struct {
	*log.Logger
	file *os.File
}

// NewLogger creates a logger writing to a new file under logDir
func NewLogger(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logDir, fmt.Sprintf("extract_%s.log", timestamp))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	return &Logger{
		Logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}, nil
}

// Close closes the log file
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// LogStage records the outcome of one pipeline stage for an invocation
func (l *Logger) LogStage(invocationID, stage string, detail interface{}, err error) {
	if l == nil {
		return
	}
	l.Printf("invocation %s stage %s\n", invocationID, stage)
	if detail != nil {
		l.Printf("detail: %+v\n", detail)
	}
	if err != nil {
		l.Printf("error: %v\n", err)
	}
	l.Println("---")
}

// LogOracleInteraction records a prompt/response exchange with the oracle
func (l *Logger) LogOracleInteraction(invocationID string, promptBytes int, response string, err error) {
	if l == nil {
		return
	}
	l.Printf("invocation %s oracle call (%d byte prompt)\n", invocationID, promptBytes)
	if err != nil {
		l.Printf("error: %v\n", err)
	} else {
		l.Printf("response: %s\n", response)
	}
	l.Println("---")
}
