package console

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// SyncWriter serializes writes to an underlying writer shared by the
// printer, the approver and the observer.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w. Wrapping a SyncWriter returns it unchanged.
func NewSyncWriter(w io.Writer) *SyncWriter {
	if sw, ok := w.(*SyncWriter); ok {
		return sw
	}
	return &SyncWriter{w: w}
}

func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// newRenderer builds a lipgloss renderer whose colour profile follows the
// terminal behind w.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	if sw, ok := w.(*SyncWriter); ok {
		w = sw.w
	}
	return lipgloss.NewRenderer(w)
}
