package app

import (
	"context"

	"github.com/mediagrab/mediagrab/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type JobRepository interface {
	CreateJob(ctx context.Context, urls []string, preset string) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context, opts models.ListOptions) ([]*models.Job, int, error)
	UpdateEntry(ctx context.Context, jobID string, entryIndex int, update models.EntryUpdate) (*models.Job, error)
	UpdateEntryProgress(ctx context.Context, jobID string, entryIndex int, progress models.EntryProgress) error
}

type JobUsecase interface {
	Submit(ctx context.Context, urls []string, preset string) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context, opts models.ListOptions) ([]*models.Job, int, error)
	Gallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error)
	DeleteFile(ctx context.Context, filename string) error
	ResolveFile(ctx context.Context, filename string) (string, error)
	Probe(ctx context.Context, url string) (*models.ProbeResult, error)
}

type WorkQueue interface {
	Enqueue(item models.WorkItem) error
	Depth() int
}

type MediaScanner interface {
	ListMedia(ctx context.Context, baseDir string) ([]*models.MediaRecord, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, url string, targetDir string, preset models.Preset, onProgress func(models.EntryProgress)) (*models.FetchResult, error)
	Probe(ctx context.Context, url string) (*models.ProbeResult, error)
}
