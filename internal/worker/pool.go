package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mediagrab/mediagrab/internal/app"
	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/metrics"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"go.uber.org/zap"
)

// Pool runs a fixed number of download workers over an unbounded FIFO
// queue. Enqueue never blocks and never rejects while the pool is running;
// the worker count is the only admission control, bounding how many
// external tool invocations run at once.
type Pool struct {
	size     int
	repo     app.JobRepository
	fetcher  app.Fetcher
	recorder *metrics.Recorder
	baseDir  string

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []models.WorkItem
	stopped bool
	wg      sync.WaitGroup
	active  atomic.Int64
}

func CreatePool(size int, repo app.JobRepository, fetcher app.Fetcher, recorder *metrics.Recorder, baseDir string) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		size:     size,
		repo:     repo,
		fetcher:  fetcher,
		recorder: recorder,
		baseDir:  baseDir,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *Pool) Start() {
	const funcName = "Pool.Start"
	logger.Info("starting worker pool",
		zap.String("function", funcName),
		zap.Int("workers", p.size),
	)

	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.run(i)
	}
}

// Stop wakes all workers and waits for in-flight items to finish. Items
// still queued are dropped; their entries stay pending in the registry.
func (p *Pool) Stop() {
	const funcName = "Pool.Stop"

	p.mu.Lock()
	p.stopped = true
	dropped := len(p.queue)
	p.queue = nil
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	logger.Info("worker pool stopped",
		zap.String("function", funcName),
		zap.Int("dropped_items", dropped),
	)
}

func (p *Pool) Enqueue(item models.WorkItem) error {
	const funcName = "Pool.Enqueue"

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return errs.ErrPoolStopped
	}
	p.queue = append(p.queue, item)
	depth := len(p.queue)
	p.cond.Signal()
	p.mu.Unlock()

	if p.recorder != nil {
		p.recorder.SetQueueDepth(depth)
	}

	logger.Debug("work item enqueued",
		zap.String("function", funcName),
		zap.String("job_id", item.JobID),
		zap.Int("entry_index", item.EntryIndex),
		zap.Int("queue_depth", depth),
	)

	return nil
}

func (p *Pool) Depth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

func (p *Pool) next() (models.WorkItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 && !p.stopped {
		p.cond.Wait()
	}
	if p.stopped {
		return models.WorkItem{}, false
	}

	item := p.queue[0]
	p.queue = p.queue[1:]
	if p.recorder != nil {
		p.recorder.SetQueueDepth(len(p.queue))
	}
	return item, true
}

func (p *Pool) run(workerID int) {
	const funcName = "Pool.run"
	defer p.wg.Done()

	for {
		item, ok := p.next()
		if !ok {
			logger.Debug("worker exiting",
				zap.String("function", funcName),
				zap.Int("worker_id", workerID),
			)
			return
		}
		p.process(workerID, item)
	}
}

// process drives one entry through running -> succeeded|failed. Any fault
// from the adapter, panics included, is converted into a failed entry; a
// bad download must never cost the pool a worker.
func (p *Pool) process(workerID int, item models.WorkItem) {
	const funcName = "Pool.process"
	started := time.Now()
	ctx := context.Background()

	if p.recorder != nil {
		p.recorder.SetActiveWorkers(int(p.active.Add(1)))
		defer func() {
			p.recorder.SetActiveWorkers(int(p.active.Add(-1)))
		}()
	}

	job, err := p.repo.UpdateEntry(ctx, item.JobID, item.EntryIndex, models.EntryUpdate{
		Status: models.EntryStatusRunning,
	})
	if err != nil {
		logger.Error("failed to mark entry running",
			zap.String("function", funcName),
			zap.Int("worker_id", workerID),
			zap.String("job_id", item.JobID),
			zap.Int("entry_index", item.EntryIndex),
			zap.Error(err),
		)
		return
	}

	preset, ok := models.Presets[job.Preset]
	if !ok {
		preset = models.Presets[models.DefaultPreset]
	}

	if p.recorder != nil {
		p.recorder.MarkStarted(preset.ID)
	}
	logger.Info("download started",
		zap.String("function", funcName),
		zap.Int("worker_id", workerID),
		zap.String("job_id", item.JobID),
		zap.Int("entry_index", item.EntryIndex),
		zap.String("url", item.URL),
		zap.String("preset", preset.ID),
	)

	result, fetchErr := p.fetch(ctx, item, preset)
	elapsed := time.Since(started)

	if fetchErr != nil {
		if _, err := p.repo.UpdateEntry(ctx, item.JobID, item.EntryIndex, models.EntryUpdate{
			Status:       models.EntryStatusFailed,
			ErrorMessage: fetchErr.Error(),
		}); err != nil {
			logger.Error("failed to mark entry failed",
				zap.String("function", funcName),
				zap.String("job_id", item.JobID),
				zap.Int("entry_index", item.EntryIndex),
				zap.Error(err),
			)
		}
		if p.recorder != nil {
			p.recorder.MarkFailed(metrics.FailureReason(fetchErr.Error()))
			p.recorder.ObserveJobDuration(preset.ID, string(models.EntryStatusFailed), elapsed.Seconds())
		}
		logger.Error("download failed",
			zap.String("function", funcName),
			zap.Int("worker_id", workerID),
			zap.String("job_id", item.JobID),
			zap.Int("entry_index", item.EntryIndex),
			zap.String("url", item.URL),
			zap.Duration("elapsed", elapsed),
			zap.Error(fetchErr),
		)
		return
	}

	if _, err := p.repo.UpdateEntry(ctx, item.JobID, item.EntryIndex, models.EntryUpdate{
		Status:      models.EntryStatusSucceeded,
		ResultFiles: result.Files,
	}); err != nil {
		logger.Error("failed to mark entry succeeded",
			zap.String("function", funcName),
			zap.String("job_id", item.JobID),
			zap.Int("entry_index", item.EntryIndex),
			zap.Error(err),
		)
		return
	}

	if p.recorder != nil {
		p.recorder.MarkCompleted(preset.ID)
		p.recorder.ObserveJobDuration(preset.ID, string(models.EntryStatusSucceeded), elapsed.Seconds())
	}
	logger.Info("download completed",
		zap.String("function", funcName),
		zap.Int("worker_id", workerID),
		zap.String("job_id", item.JobID),
		zap.Int("entry_index", item.EntryIndex),
		zap.Int("files", len(result.Files)),
		zap.Duration("elapsed", elapsed),
	)
}

func (p *Pool) fetch(ctx context.Context, item models.WorkItem, preset models.Preset) (result *models.FetchResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("%w: panic in fetcher: %v", errs.ErrFetchFailed, rec)
		}
	}()

	onProgress := func(progress models.EntryProgress) {
		if err := p.repo.UpdateEntryProgress(ctx, item.JobID, item.EntryIndex, progress); err != nil {
			logger.Debug("failed to record progress",
				zap.String("function", "Pool.fetch"),
				zap.String("job_id", item.JobID),
				zap.Int("entry_index", item.EntryIndex),
				zap.Error(err),
			)
		}
	}

	return p.fetcher.Fetch(ctx, item.URL, p.baseDir, preset, onProgress)
}
