package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range testCases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDefaultLoggerIsUsableBeforeInit(t *testing.T) {
	// Library packages log through Log before any binary calls Init.
	Info("before init", zap.Int("frame", 1))
	Sugar.Debugf("frame %d", 2)
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "render.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()

	Named("raycast").Info("theme bound", zap.String("theme", "hell"))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "theme bound") {
		t.Errorf("log file missing message, got %q", content)
	}
	if !strings.Contains(content, "hell") {
		t.Errorf("log file missing field, got %q", content)
	}
}
