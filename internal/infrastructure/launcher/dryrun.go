package launcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/splitview/internal/domain/entity"
)

// Request is one recorded window creation.
type Request struct {
	URL     string
	Rect    entity.Rect
	Focused bool
	Handle  entity.WindowHandle
}

// Recorder is a window manager that opens nothing. It records every request
// and hands out sequential handles.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateWindow implements port.WindowManager.
func (r *Recorder) CreateWindow(ctx context.Context, url string, rect entity.Rect, focused bool) (entity.WindowHandle, error) {
	if err := ctx.Err(); err != nil {
		return entity.WindowHandle{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	handle := entity.WindowHandle{ID: fmt.Sprintf("dry-run:%d", len(r.requests)+1)}
	r.requests = append(r.requests, Request{URL: url, Rect: rect, Focused: focused, Handle: handle})
	return handle, nil
}

// Requests returns the recorded requests in order.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.requests...)
}

// Name implements port.HealthChecker.
func (*Recorder) Name() string { return "launcher:dry-run" }

// Check implements port.HealthChecker.
func (*Recorder) Check(context.Context) error { return nil }
