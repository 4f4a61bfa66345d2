// ABOUTME: Refresh worker keeps source caches warm with a managed worker pool
// ABOUTME: Schedules periodic refetches of the podcast, video and news sources

package workers

import (
	"context"
	"sync"
	"time"

	"lakeshow-api/core/interfaces"
)

// Refresher refetches one upstream source and replaces its cached copy
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob represents one refresh of a named source
type RefreshJob struct {
	Name      string
	Refresher Refresher
	Context   context.Context
	ResultCh  chan<- error
}

// RefreshWorker manages background cache refreshes
type RefreshWorker struct {
	logger     interfaces.Logger
	jobQueue   chan *RefreshJob
	maxWorkers int
	timeout    time.Duration
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// WorkerConfig holds configuration for the refresh worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// JobTimeout bounds a single refresh
	JobTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 3,
		QueueSize:  16,
		JobTimeout: 30 * time.Second,
	}
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(logger interfaces.Logger, config WorkerConfig) *RefreshWorker {
	ctx, cancel := context.WithCancel(context.Background())

	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaults.JobTimeout
	}

	return &RefreshWorker{
		logger:     interfaces.Dependencies{Logger: logger}.Log(),
		jobQueue:   make(chan *RefreshJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		timeout:    config.JobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (rw *RefreshWorker) Start() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.running {
		return nil
	}

	for i := 0; i < rw.maxWorkers; i++ {
		rw.wg.Add(1)
		go rw.run(i)
	}

	rw.running = true
	return nil
}

// Stop stops the worker pool and waits for in-flight refreshes
func (rw *RefreshWorker) Stop() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.running {
		return nil
	}

	rw.cancel()
	rw.wg.Wait()

	rw.running = false
	return nil
}

// SubmitJob queues a job, waiting up to five seconds for space
func (rw *RefreshWorker) SubmitJob(job *RefreshJob) error {
	rw.mu.Lock()
	running := rw.running
	rw.mu.Unlock()
	if !running {
		return ErrWorkerNotRunning
	}

	if job.Context == nil {
		job.Context = rw.ctx
	}

	select {
	case rw.jobQueue <- job:
		return nil
	case <-rw.ctx.Done():
		return ErrWorkerNotRunning
	case <-time.After(5 * time.Second):
		return ErrQueueFull
	}
}

// Schedule refreshes every source immediately and then every interval
// until ctx is cancelled or the pool stops
func (rw *RefreshWorker) Schedule(ctx context.Context, interval time.Duration, sources map[string]Refresher) {
	if interval <= 0 || len(sources) == 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			rw.submitAll(ctx, sources)

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			case <-rw.ctx.Done():
				return
			}
		}
	}()
}

func (rw *RefreshWorker) submitAll(ctx context.Context, sources map[string]Refresher) {
	for name, refresher := range sources {
		err := rw.SubmitJob(&RefreshJob{Name: name, Refresher: refresher, Context: ctx})
		if err != nil {
			rw.logger.Warn("Skipped scheduled refresh", map[string]interface{}{
				"source": name,
				"error":  err.Error(),
			})
		}
	}
}

// run is the main loop for each worker
func (rw *RefreshWorker) run(id int) {
	defer rw.wg.Done()

	for {
		select {
		case job := <-rw.jobQueue:
			rw.process(id, job)
		case <-rw.ctx.Done():
			return
		}
	}
}

// process runs a single refresh with the configured timeout
func (rw *RefreshWorker) process(id int, job *RefreshJob) {
	ctx, cancel := context.WithTimeout(job.Context, rw.timeout)
	defer cancel()

	started := time.Now()
	err := job.Refresher.Refresh(ctx)

	fields := map[string]interface{}{
		"worker":      id,
		"source":      job.Name,
		"duration_ms": time.Since(started).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		rw.logger.Warn("Source refresh failed", fields)
	} else {
		rw.logger.Debug("Source refreshed", fields)
	}

	if job.ResultCh != nil {
		select {
		case job.ResultCh <- err:
		case <-job.Context.Done():
		}
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
