package manager

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkspaceLifecycle(t *testing.T) {
	ws, err := NewWorkspace()
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	if _, err := os.Stat(ws.Dir()); err != nil {
		t.Fatalf("workspace dir missing: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ws.Dir(), "PKGBUILD"), []byte("pkgname=x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ws.Remove()
	if _, err := os.Stat(ws.Dir()); !os.IsNotExist(err) {
		t.Fatalf("workspace still present: %v", err)
	}
}

func TestWorkspaceRemoveTwice(t *testing.T) {
	ws, err := NewWorkspace()
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	ws.Remove()
	ws.Remove()
}
