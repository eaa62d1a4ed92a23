package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures messages and rendered frames for debugging.
// A nil or disabled Recorder ignores every call.
type Recorder struct {
	logFile  *os.File
	logger   *slog.Logger
	frameDir string
	frameNum int
}

// NewRecorder creates a recorder writing into dir. An empty dir disables recording.
func NewRecorder(dir string) *Recorder {
	if dir == "" {
		return nil
	}

	recordDir := filepath.Join(dir, fmt.Sprintf("tui-record-%d", time.Now().Unix()))
	if err := os.MkdirAll(recordDir, 0750); err != nil {
		slog.Warn("recording disabled", "error", err)
		return nil
	}

	logPath := filepath.Join(recordDir, "tui.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- safe constructed path
	if err != nil {
		slog.Warn("recording disabled", "error", err)
		return nil
	}

	r := &Recorder{
		logFile:  logFile,
		logger:   slog.New(slog.NewJSONHandler(logFile, nil)),
		frameDir: recordDir,
	}
	r.logger.Info("recorder started", "dir", recordDir)
	return r
}

// RecordState logs msg and the resulting frame.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if r == nil {
		return
	}

	r.frameNum++
	r.logger.Info("frame",
		"frame", r.frameNum,
		"msg_type", fmt.Sprintf("%T", msg),
		"screen", m.screen.String(),
		"tab", string(m.entryList.Tab()),
		"entries", len(m.snapshot.Entries),
		"pending", m.snapshot.PendingOperations,
	)

	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(m.View()), 0600); err != nil {
		r.logger.Error("saving frame failed", "error", err)
	}
}

// Dir returns the recording directory.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.frameDir
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r == nil || r.logFile == nil {
		return
	}
	r.logger.Info("recording complete", "frames", r.frameNum, "dir", r.frameDir)
	_ = r.logFile.Close() // Best effort close
}
