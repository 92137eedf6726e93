package renderer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// workerState tracks one pass worth of parallel workers
type workerState struct {
	wg             sync.WaitGroup
	launched       int
	finished       atomic.Int32
	startTime      time.Time
	boundaryPixels atomic.Int64
}

// RenderStats summarizes a completed pass
type RenderStats struct {
	Elapsed        time.Duration
	BoundaryPixels int64 // Pixels re-sampled by the antialiasing pass
}

// StartRender prepares the buffer and launches the primary render
// workers, returning immediately. Each worker owns a strided subset of
// pixel indices, so no pixel is ever written by two workers and the
// buffer needs no locking. Poll RenderComplete or call Wait to join.
func (rt *RayTracer) StartRender(width, height int) {
	rt.Setup(width, height)
	rt.startWorkers(rt.renderWorker)
	rt.logger.Printf("render started: %dx%d, %d workers, depth %d\n",
		width, height, rt.config.Threads, rt.config.Depth)
}

// StartAntialias launches the edge-adaptive antialiasing pass. The
// primary pass must be fully joined first: this pass reads neighbor
// pixels written by every primary worker.
func (rt *RayTracer) StartAntialias() {
	if rt.config.SuperSamples <= 1 {
		return
	}

	// Boundary detection reads from a snapshot so workers replacing
	// their own pixels never race the neighbor reads of other workers.
	snapshot := make([]byte, len(rt.buffer))
	copy(snapshot, rt.buffer)

	rt.startWorkers(func(id int) {
		rt.antialiasWorker(id, snapshot)
	})
	rt.logger.Printf("antialias started: %dx%d grid, threshold %.3f\n",
		rt.config.SuperSamples, rt.config.SuperSamples, rt.config.AAThreshold)
}

// startWorkers resets completion state and launches one goroutine per
// configured thread, each walking its strided pixel subset
func (rt *RayTracer) startWorkers(worker func(id int)) {
	rt.workers.launched = rt.config.Threads
	rt.workers.finished.Store(0)
	rt.workers.boundaryPixels.Store(0)
	rt.workers.startTime = time.Now()

	for id := 0; id < rt.config.Threads; id++ {
		rt.workers.wg.Add(1)
		go func(id int) {
			defer rt.workers.wg.Done()
			worker(id)
			rt.workers.finished.Add(1)
		}(id)
	}
}

// renderWorker traces every pixel p = id, id+threads, id+2*threads, ...
func (rt *RayTracer) renderWorker(id int) {
	total := rt.width * rt.height
	for p := id; p < total; p += rt.config.Threads {
		rt.TracePixel(p%rt.width, p/rt.width)
	}
}

// RenderComplete is a non-blocking poll for whether all workers of the
// current pass have finished
func (rt *RayTracer) RenderComplete() bool {
	return int(rt.workers.finished.Load()) >= rt.workers.launched
}

// Wait blocks until all workers of the current pass have finished
func (rt *RayTracer) Wait() {
	rt.workers.wg.Wait()
}

// Stats reports timing and antialiasing counts for the current pass
func (rt *RayTracer) Stats() RenderStats {
	return RenderStats{
		Elapsed:        time.Since(rt.workers.startTime),
		BoundaryPixels: rt.workers.boundaryPixels.Load(),
	}
}
