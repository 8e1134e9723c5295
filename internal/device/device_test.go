package device

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOS_OpenReadReadsContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "project")
	if err := os.WriteFile(p, []byte("42\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	rc, err := OS{}.OpenRead(p)
	if err != nil {
		t.Fatalf("OpenRead: %v", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(b) != "42\n" {
		t.Fatalf("content=%q want %q", b, "42\n")
	}
}

func TestOS_OpenWriteDoesNotCreate(t *testing.T) {
	p := filepath.Join(t.TempDir(), "led1_duty")
	if _, err := (OS{}).OpenWrite(p); err == nil {
		t.Fatalf("expected error opening missing resource")
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("OpenWrite created %s (stat err=%v)", p, err)
	}
}

func TestOS_OpenWriteErrorNamesPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing")
	_, err := OS{}.OpenWrite(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	var pe *os.PathError
	if !errors.As(err, &pe) || pe.Path != p {
		t.Fatalf("err=%v want *os.PathError for %s", err, p)
	}
}

func TestOS_OpenWriteWritesFromStart(t *testing.T) {
	p := filepath.Join(t.TempDir(), "led2_duty")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	wc, err := OS{}.OpenWrite(p)
	if err != nil {
		t.Fatalf("OpenWrite: %v", err)
	}
	if _, err := io.WriteString(wc, "50\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "50\n" {
		t.Fatalf("content=%q want %q", b, "50\n")
	}
}
