package preview

import (
	"context"
	"time"

	"github.com/emberfx/ember"
)

// frameInterval paces the interactive render loop.
const frameInterval = 15 * time.Millisecond

// resume starts the background render loop, or returns immediately if
// it is already running.
func (r *Renderer) resume() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	r.running = true
	r.mu.Unlock()

	ember.Logger().Info("preview: interactive render started")
	go r.renderLoop(ctx, done)
	return nil
}

// renderLoop renders frames from the current scene state until the
// session is paused. At least one frame completes per resume, so edits
// made before the previous pause are always visible after the next one.
func (r *Renderer) renderLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		r.mu.Lock()
		snap := r.snapshotLocked()
		r.mu.Unlock()

		frame, err := renderFrame(snap)
		if err != nil {
			ember.Logger().Warn("preview: frame failed", "error", err)
		} else {
			r.mu.Lock()
			r.frame = frame
			r.frames++
			r.mu.Unlock()
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Pause halts an interactive render so edits can be made, returning
// once the in-flight frame has completed. A no-op for batch sessions
// or when not running.
func (r *Renderer) Pause() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel := r.cancel
	done := r.done
	r.running = false
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	cancel()
	<-done
	ember.Logger().Info("preview: interactive render paused")
}
