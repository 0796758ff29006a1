package renderer

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band   *Band
	TaskID int          // For deterministic ordering
	Buffer *PixelBuffer // Shared pixel buffer to write to
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  BandStats
	Error  error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
	logger      *slog.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks sizes the queues so submitting every band never blocks.
func NewWorkerPool(renderer *BandRenderer, numWorkers, maxTasks int, logger *slog.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	logger = core.LoggerOrNop(logger)

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			logger:      logger.With("worker", i),
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.render(task)
	}
}

// render runs one band and turns a panic inside it into the result's error
func (w *Worker) render(task BandTask) (result BandResult) {
	result.TaskID = task.TaskID

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("band panicked", "band", task.Band.Index, "panic", r, "stack", string(debug.Stack()))
			result.Error = fmt.Errorf("band %d (rows %d-%d): panic: %v", task.Band.Index, task.Band.MinY, task.Band.MaxY-1, r)
		}
	}()

	result.Stats = w.renderer.RenderBand(task.Band, task.Buffer)
	w.logger.Debug("band done", "band", task.Band.Index, "minY", task.Band.MinY, "rows", result.Stats.Rows)
	return result
}
