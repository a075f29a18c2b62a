package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"go.uber.org/zap"
)

// JobRepository is the in-memory job registry. State lives for the process
// lifetime only; a restart drops all job history (the download directory
// remains the system of record for completed files).
type JobRepository struct {
	jobs map[string]*models.Job
	mu   sync.Mutex
}

func CreateJobRepository() *JobRepository {
	return &JobRepository{
		jobs: make(map[string]*models.Job),
	}
}

func (r *JobRepository) CreateJob(ctx context.Context, urls []string, preset string) (*models.Job, error) {
	const funcName = "JobRepository.CreateJob"
	logger.Debug("attempting to create job",
		zap.String("function", funcName),
		zap.Int("url_count", len(urls)),
		zap.String("preset", preset),
	)

	if len(urls) == 0 {
		return nil, errs.ErrEmptySubmission
	}

	now := time.Now()
	job := &models.Job{
		ID:        uuid.NewString(),
		Preset:    preset,
		Status:    models.JobStatusQueued,
		Entries:   make([]*models.JobEntry, 0, len(urls)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, url := range urls {
		job.Entries = append(job.Entries, &models.JobEntry{
			URL:    url,
			Status: models.EntryStatusPending,
		})
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	logger.Info("job created successfully",
		zap.String("function", funcName),
		zap.String("job_id", job.ID),
		zap.Int("entries", len(job.Entries)),
		zap.String("preset", preset),
	)

	return job.Clone(), nil
}

func (r *JobRepository) GetJob(ctx context.Context, id string) (*models.Job, error) {
	const funcName = "JobRepository.GetJob"
	logger.Debug("attempting to get job",
		zap.String("function", funcName),
		zap.String("job_id", id),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		logger.Warn("job not found",
			zap.String("function", funcName),
			zap.String("job_id", id),
		)
		return nil, errs.ErrJobNotFound
	}

	return job.Clone(), nil
}

// UpdateEntry applies one entry transition and re-derives the aggregate job
// status under the same lock, so concurrent readers never observe a torn
// state. Transitions are monotonic: a terminal entry is never overwritten.
func (r *JobRepository) UpdateEntry(ctx context.Context, jobID string, entryIndex int, update models.EntryUpdate) (*models.Job, error) {
	const funcName = "JobRepository.UpdateEntry"
	logger.Debug("attempting to update job entry",
		zap.String("function", funcName),
		zap.String("job_id", jobID),
		zap.Int("entry_index", entryIndex),
		zap.String("new_status", string(update.Status)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[jobID]
	if !exists {
		logger.Warn("job not found when updating entry",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
		)
		return nil, errs.ErrJobNotFound
	}

	if entryIndex < 0 || entryIndex >= len(job.Entries) {
		return nil, fmt.Errorf("%w: entry index %d out of range", errs.ErrJobNotFound, entryIndex)
	}

	entry := job.Entries[entryIndex]
	if entry.Status.Terminal() {
		logger.Warn("ignoring update of terminal entry",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Int("entry_index", entryIndex),
			zap.String("current_status", string(entry.Status)),
			zap.String("new_status", string(update.Status)),
		)
		return job.Clone(), nil
	}

	entry.Status = update.Status
	entry.ErrorMessage = update.ErrorMessage
	if update.ResultFiles != nil {
		entry.ResultFiles = append([]string(nil), update.ResultFiles...)
	}
	if update.Status == models.EntryStatusSucceeded {
		progress := models.EntryProgress{Percent: 100}
		if entry.Progress != nil {
			progress.DownloadedBytes = entry.Progress.DownloadedBytes
			progress.TotalBytes = entry.Progress.TotalBytes
		}
		entry.Progress = &progress
	}

	oldStatus := job.Status
	job.Status = models.DeriveJobStatus(job.Entries)
	job.UpdatedAt = time.Now()

	logger.Info("job entry updated successfully",
		zap.String("function", funcName),
		zap.String("job_id", jobID),
		zap.Int("entry_index", entryIndex),
		zap.String("entry_status", string(entry.Status)),
		zap.String("old_job_status", string(oldStatus)),
		zap.String("new_job_status", string(job.Status)),
	)

	return job.Clone(), nil
}

// UpdateEntryProgress overwrites the live progress snapshot of a running
// entry. Snapshots arriving after the entry went terminal are dropped; the
// aggregate job status never depends on progress, so nothing is re-derived.
func (r *JobRepository) UpdateEntryProgress(ctx context.Context, jobID string, entryIndex int, progress models.EntryProgress) error {
	const funcName = "JobRepository.UpdateEntryProgress"

	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[jobID]
	if !exists {
		return errs.ErrJobNotFound
	}
	if entryIndex < 0 || entryIndex >= len(job.Entries) {
		return fmt.Errorf("%w: entry index %d out of range", errs.ErrJobNotFound, entryIndex)
	}

	entry := job.Entries[entryIndex]
	if entry.Status.Terminal() {
		logger.Debug("dropping progress for terminal entry",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Int("entry_index", entryIndex),
			zap.String("entry_status", string(entry.Status)),
		)
		return nil
	}

	snapshot := progress
	entry.Progress = &snapshot
	job.UpdatedAt = time.Now()

	return nil
}

func (r *JobRepository) ListJobs(ctx context.Context, opts models.ListOptions) ([]*models.Job, int, error) {
	const funcName = "JobRepository.ListJobs"
	logger.Debug("listing jobs",
		zap.String("function", funcName),
		zap.Int("page", opts.Page),
		zap.Int("per_page", opts.PerPage),
		zap.String("status", opts.Status),
	)

	r.mu.Lock()
	jobs := make([]*models.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if opts.Status != "" && string(job.Status) != opts.Status {
			continue
		}
		jobs = append(jobs, job.Clone())
	}
	r.mu.Unlock()

	switch opts.Sort {
	case "created_asc":
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.Before(jobs[j].CreatedAt) })
	default:
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	}

	total := len(jobs)
	start := (opts.Page - 1) * opts.PerPage
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + opts.PerPage
	if opts.PerPage <= 0 || end > total {
		end = total
	}

	logger.Info("jobs listed",
		zap.String("function", funcName),
		zap.Int("total", total),
		zap.Int("returned", end-start),
	)

	return jobs[start:end], total, nil
}
