package log

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetLogDir(t *testing.T) {
	// Test with nil config
	dir, err := GetLogDir(nil)
	if err != nil {
		t.Errorf("GetLogDir failed with nil config: %v", err)
	}
	if dir == "" {
		t.Error("GetLogDir returned empty string for nil config")
	}

	// Test with disabled logging
	cfg := &LogConfig{
		Enabled: false,
	}
	dir, err = GetLogDir(cfg)
	if err != nil {
		t.Errorf("GetLogDir failed with disabled logging: %v", err)
	}
	if dir != os.TempDir() {
		t.Errorf("GetLogDir should return temp dir for disabled logging, got %s", dir)
	}

	// Test with custom log dir
	cfg = &LogConfig{
		Enabled: true,
		Dir:     "/custom/log/dir",
	}
	dir, err = GetLogDir(cfg)
	if err != nil {
		t.Errorf("GetLogDir failed with custom log dir: %v", err)
	}
	if dir != "/custom/log/dir" {
		t.Errorf("GetLogDir should return custom log dir, got %s", dir)
	}

	// Test with default log dir
	cfg = &LogConfig{
		Enabled: true,
		Dir:     "",
	}
	dir, err = GetLogDir(cfg)
	if err != nil {
		t.Errorf("GetLogDir failed with default log dir: %v", err)
	}

	if !strings.Contains(dir, ".commandsite"+string(filepath.Separator)+"logs") {
		t.Errorf("GetLogDir should return default log dir, got %s", dir)
	}
}

func TestGetLogFilePath(t *testing.T) {
	cfg := &LogConfig{
		Enabled: true,
		Dir:     "",
	}
	path, err := GetLogFilePath(cfg)
	if err != nil {
		t.Errorf("GetLogFilePath failed with default config: %v", err)
	}
	if !strings.HasSuffix(path, "commandsite.log") {
		t.Errorf("GetLogFilePath should end with commandsite.log, got %s", path)
	}

	cfg = &LogConfig{
		Enabled: true,
		Dir:     "/custom/log/dir",
	}
	path, err = GetLogFilePath(cfg)
	if err != nil {
		t.Errorf("GetLogFilePath failed with custom log dir: %v", err)
	}
	if path != filepath.Join("/custom/log/dir", "commandsite.log") {
		t.Errorf("GetLogFilePath should return custom log path, got %s", path)
	}
}

func TestCreateRotatingWriter(t *testing.T) {
	tempDir := t.TempDir()

	// Test with nil config
	writer := createRotatingWriter(filepath.Join(tempDir, "test.log"), nil)
	if writer == nil {
		t.Error("createRotatingWriter returned nil with nil config")
	}
	if c, ok := writer.(io.Closer); ok {
		c.Close()
	}

	// Test with zero max size
	cfg := &LogConfig{
		MaxSize: 0,
	}
	writer = createRotatingWriter(filepath.Join(tempDir, "test.log"), cfg)
	if _, ok := writer.(*os.File); !ok {
		t.Errorf("createRotatingWriter should return a plain file without rotation, got %T", writer)
	}
	if c, ok := writer.(io.Closer); ok {
		c.Close()
	}

	cfg = &LogConfig{
		MaxSize:  10,
		MaxFiles: 5,
		MaxAge:   30,
		Compress: true,
	}
	writer = createRotatingWriter(filepath.Join(tempDir, "test.log"), cfg)
	if writer == nil {
		t.Error("createRotatingWriter returned nil with valid config")
	}
}

func TestInitializeWritesToConfiguredDir(t *testing.T) {
	tempDir := t.TempDir()
	prevInfo, prevWarn, prevErr := InfoLog, WarningLog, ErrorLog
	defer func() {
		InfoLog, WarningLog, ErrorLog = prevInfo, prevWarn, prevErr
	}()

	Initialize(&LogConfig{Enabled: true, Dir: tempDir}, true)
	ErrorLog.Printf("failed to load commands: %v", "boom")
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	data, err := os.ReadFile(filepath.Join(tempDir, "commandsite.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "[SERVE] ERROR:") {
		t.Errorf("expected serve prefix in log output, got %q", string(data))
	}
	if FilePath() != filepath.Join(tempDir, "commandsite.log") {
		t.Errorf("FilePath should report the active log file, got %s", FilePath())
	}
}

func TestEvery(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDummyLogger(&buf, "")

	every := NewEvery(50 * time.Millisecond)
	if !every.ShouldLog() {
		t.Fatal("first call should always log")
	}
	logger.Print("frame")
	if every.ShouldLog() {
		t.Error("second call inside the window should not log")
	}
	time.Sleep(80 * time.Millisecond)
	if !every.ShouldLog() {
		t.Error("call after the window should log")
	}
}

// NewDummyLogger creates a test logger that doesn't panic on write errors
func NewDummyLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, 0)
}
