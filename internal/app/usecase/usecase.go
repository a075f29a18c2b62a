package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mediagrab/mediagrab/internal/app"
	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/metrics"
	"github.com/mediagrab/mediagrab/internal/storage"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"github.com/mediagrab/mediagrab/internal/utils/pathguard"
	"github.com/mediagrab/mediagrab/internal/utils/validate"
	"go.uber.org/zap"
)

// JobUsecase orchestrates submissions, status queries and file management.
// It never runs a download itself: submissions only create the job record
// and enqueue work, so the caller returns immediately.
type JobUsecase struct {
	jobRepository app.JobRepository
	queue         app.WorkQueue
	scanner       app.MediaScanner
	fetcher       app.Fetcher
	recorder      *metrics.Recorder
	baseDir       string
}

func CreateJobUsecase(jobRepository app.JobRepository, queue app.WorkQueue, scanner app.MediaScanner, fetcher app.Fetcher, recorder *metrics.Recorder, baseDir string) *JobUsecase {
	return &JobUsecase{
		jobRepository: jobRepository,
		queue:         queue,
		scanner:       scanner,
		fetcher:       fetcher,
		recorder:      recorder,
		baseDir:       baseDir,
	}
}

func (u *JobUsecase) Submit(ctx context.Context, urls []string, preset string) (*models.Job, error) {
	const funcName = "JobUsecase.Submit"
	logger.Debug("submitting download job",
		zap.String("function", funcName),
		zap.Int("values", len(urls)),
		zap.String("preset", preset),
	)

	normalized, err := validate.NormalizeURLs(urls)
	if err != nil {
		logger.Warn("submission rejected",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	if preset == "" {
		preset = models.DefaultPreset
	}
	if err := validate.ValidatePreset(preset); err != nil {
		logger.Warn("submission rejected",
			zap.String("function", funcName),
			zap.String("preset", preset),
			zap.Error(err),
		)
		return nil, err
	}

	job, err := u.jobRepository.CreateJob(ctx, normalized, preset)
	if err != nil {
		logger.Error("failed to create job",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	for i, url := range normalized {
		if err := u.queue.Enqueue(models.WorkItem{
			JobID:      job.ID,
			EntryIndex: i,
			URL:        url,
		}); err != nil {
			logger.Error("failed to enqueue work item",
				zap.String("function", funcName),
				zap.String("job_id", job.ID),
				zap.Int("entry_index", i),
				zap.Error(err),
			)
			return nil, err
		}
		if u.recorder != nil {
			u.recorder.MarkQueued(preset)
		}
	}

	logger.Info("job submitted",
		zap.String("function", funcName),
		zap.String("job_id", job.ID),
		zap.Int("entries", len(job.Entries)),
		zap.String("preset", preset),
	)

	return job, nil
}

func (u *JobUsecase) GetJob(ctx context.Context, id string) (*models.Job, error) {
	const funcName = "JobUsecase.GetJob"

	job, err := u.jobRepository.GetJob(ctx, id)
	if err != nil {
		logger.Warn("failed to get job",
			zap.String("function", funcName),
			zap.String("job_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return job, nil
}

func (u *JobUsecase) ListJobs(ctx context.Context, opts models.ListOptions) ([]*models.Job, int, error) {
	const funcName = "JobUsecase.ListJobs"

	jobs, total, err := u.jobRepository.ListJobs(ctx, clampListOptions(opts, 20))
	if err != nil {
		logger.Error("failed to list jobs",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, 0, err
	}

	return jobs, total, nil
}

// Gallery rebuilds the media listing from the directory on every call and
// applies search, sort and pagination in memory.
func (u *JobUsecase) Gallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error) {
	const funcName = "JobUsecase.Gallery"

	records, err := u.scanner.ListMedia(ctx, u.baseDir)
	if err != nil {
		logger.Error("failed to scan media directory",
			zap.String("function", funcName),
			zap.String("base_dir", u.baseDir),
			zap.Error(err),
		)
		return nil, err
	}

	opts = clampListOptions(opts, 24)

	if opts.Query != "" || opts.Uploader != "" {
		q := strings.ToLower(opts.Query)
		uploader := strings.ToLower(opts.Uploader)
		filtered := records[:0]
		for _, record := range records {
			if q != "" &&
				!strings.Contains(strings.ToLower(record.Title), q) &&
				!strings.Contains(strings.ToLower(record.Uploader), q) {
				continue
			}
			if uploader != "" && strings.ToLower(record.Uploader) != uploader {
				continue
			}
			filtered = append(filtered, record)
		}
		records = filtered
	}

	sortRecords(records, opts.Sort)

	total := len(records)
	pages := 1
	if opts.PerPage > 0 {
		pages = (total + opts.PerPage - 1) / opts.PerPage
		if pages == 0 {
			pages = 1
		}
	}

	start := (opts.Page - 1) * opts.PerPage
	if start > total {
		start = total
	}
	end := start + opts.PerPage
	if end > total {
		end = total
	}

	return &models.GalleryPage{
		Items:   records[start:end],
		Page:    opts.Page,
		PerPage: opts.PerPage,
		Pages:   pages,
		Total:   total,
	}, nil
}

// DeleteFile removes the primary file plus any sidecars sharing its base
// name. Removing the primary file is the success criterion; sidecar
// failures are logged and swallowed.
func (u *JobUsecase) DeleteFile(ctx context.Context, filename string) error {
	const funcName = "JobUsecase.DeleteFile"

	full, err := pathguard.Resolve(u.baseDir, filename)
	if err != nil {
		logger.Warn("delete rejected by path guard",
			zap.String("function", funcName),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return err
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errs.ErrFileNotFound, filename)
		}
		return fmt.Errorf("stat %s: %w", filename, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", errs.ErrInvalidPath, filename)
	}

	if err := os.Remove(full); err != nil {
		logger.Error("failed to delete file",
			zap.String("function", funcName),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return fmt.Errorf("delete %s: %w", filename, err)
	}

	base := strings.TrimSuffix(full, filepath.Ext(full))
	for _, ext := range storage.SidecarExtensions {
		sidecar := base + ext
		if _, err := os.Stat(sidecar); err != nil {
			continue
		}
		if err := os.Remove(sidecar); err != nil {
			logger.Warn("failed to delete sidecar",
				zap.String("function", funcName),
				zap.String("sidecar", filepath.Base(sidecar)),
				zap.Error(err),
			)
		}
	}

	logger.Info("file deleted",
		zap.String("function", funcName),
		zap.String("filename", filename),
	)

	return nil
}

// Probe runs a synchronous metadata lookup for one URL. Nothing is queued
// and nothing is written to disk.
func (u *JobUsecase) Probe(ctx context.Context, url string) (*models.ProbeResult, error) {
	const funcName = "JobUsecase.Probe"

	if err := validate.ValidateURL(url); err != nil {
		logger.Warn("probe rejected",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := u.fetcher.Probe(ctx, url)
	if err != nil {
		logger.Warn("probe failed",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Debug("probe finished",
		zap.String("function", funcName),
		zap.String("url", url),
		zap.String("title", result.Title),
	)

	return result, nil
}

// ResolveFile validates a filename for serving and returns its absolute
// path inside the download directory.
func (u *JobUsecase) ResolveFile(ctx context.Context, filename string) (string, error) {
	const funcName = "JobUsecase.ResolveFile"

	full, err := pathguard.Resolve(u.baseDir, filename)
	if err != nil {
		logger.Warn("file request rejected by path guard",
			zap.String("function", funcName),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return "", err
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", errs.ErrFileNotFound, filename)
	}

	return full, nil
}

func clampListOptions(opts models.ListOptions, defaultPerPage int) models.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = defaultPerPage
	}
	if opts.PerPage > 100 {
		opts.PerPage = 100
	}
	return opts
}

func sortRecords(records []*models.MediaRecord, sortKey string) {
	switch sortKey {
	case "title_asc":
		sortSlice(records, func(a, b *models.MediaRecord) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		})
	case "title_desc":
		sortSlice(records, func(a, b *models.MediaRecord) bool {
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		})
	case "created_asc":
		sortSlice(records, func(a, b *models.MediaRecord) bool {
			return a.ModifiedAt.Before(b.ModifiedAt)
		})
	default:
		sortSlice(records, func(a, b *models.MediaRecord) bool {
			return a.ModifiedAt.After(b.ModifiedAt)
		})
	}
}

func sortSlice(records []*models.MediaRecord, less func(a, b *models.MediaRecord) bool) {
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}
