package manager

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Workspace is the scratch directory community packages are cloned and built
// in. It is the only disk state this tool owns, and it must be gone by the
// time the process exits no matter which path it takes out, including
// signals.
type Workspace struct {
	dir string
}

var (
	wsMu     sync.Mutex
	wsOpen   = map[*Workspace]struct{}{}
	wsSignal sync.Once
)

func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "aurgo-")
	if err != nil {
		return nil, err
	}
	w := &Workspace{dir: dir}
	wsMu.Lock()
	wsOpen[w] = struct{}{}
	wsMu.Unlock()
	wsSignal.Do(installSignalCleanup)
	return w, nil
}

func (w *Workspace) Dir() string { return w.dir }

func (w *Workspace) Remove() {
	wsMu.Lock()
	delete(wsOpen, w)
	wsMu.Unlock()
	_ = os.RemoveAll(w.dir)
}

func removeOpenWorkspaces() {
	wsMu.Lock()
	defer wsMu.Unlock()
	for w := range wsOpen {
		_ = os.RemoveAll(w.dir)
		delete(wsOpen, w)
	}
}

func installSignalCleanup() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		removeOpenWorkspaces()
		os.Exit(130)
	}()
}
