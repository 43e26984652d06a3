package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New(Options{Dir: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Infow("hello", "k", "v")
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"hello"`) || !strings.Contains(string(raw), `"k":"v"`) {
		t.Fatalf("log missing entry:\n%s", raw)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Dir: t.TempDir(), Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
