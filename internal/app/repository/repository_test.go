package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestCreateJob_Success(t *testing.T) {
	repo := CreateJobRepository()
	urls := []string{"https://example.com/a", "https://example.com/b"}

	job, err := repo.CreateJob(context.Background(), urls, "best")

	assert.NoError(t, err)
	assert.NotNil(t, job)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, models.JobStatusQueued, job.Status)
	assert.Equal(t, "best", job.Preset)
	assert.Len(t, job.Entries, 2)
	for i, entry := range job.Entries {
		assert.Equal(t, urls[i], entry.URL)
		assert.Equal(t, models.EntryStatusPending, entry.Status)
	}
	assert.WithinDuration(t, time.Now(), job.CreatedAt, time.Second)
}

func TestCreateJob_EmptyURLs(t *testing.T) {
	repo := CreateJobRepository()

	job, err := repo.CreateJob(context.Background(), nil, "best")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errs.ErrEmptySubmission)
}

func TestCreateJob_UniqueIDs(t *testing.T) {
	repo := CreateJobRepository()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		job, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
		assert.NoError(t, err)
		assert.False(t, seen[job.ID])
		seen[job.ID] = true
	}
}

func TestGetJob_Success(t *testing.T) {
	repo := CreateJobRepository()
	created, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	job, err := repo.GetJob(context.Background(), created.ID)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, job.ID)
	assert.Equal(t, created.Status, job.Status)
}

func TestGetJob_NotFound(t *testing.T) {
	repo := CreateJobRepository()

	job, err := repo.GetJob(context.Background(), "missing")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errs.ErrJobNotFound)
}

func TestGetJob_ReturnsSnapshot(t *testing.T) {
	repo := CreateJobRepository()
	created, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	snapshot, err := repo.GetJob(context.Background(), created.ID)
	assert.NoError(t, err)

	// Mutating the snapshot must not leak into the registry.
	snapshot.Entries[0].Status = models.EntryStatusFailed

	fresh, err := repo.GetJob(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.EntryStatusPending, fresh.Entries[0].Status)
}

func TestUpdateEntry_LifecycleAndAggregate(t *testing.T) {
	repo := CreateJobRepository()
	created, err := repo.CreateJob(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/b",
	}, "best")
	assert.NoError(t, err)

	job, err := repo.UpdateEntry(context.Background(), created.ID, 0, models.EntryUpdate{
		Status: models.EntryStatusRunning,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusRunning, job.Status)

	job, err = repo.UpdateEntry(context.Background(), created.ID, 0, models.EntryUpdate{
		Status:      models.EntryStatusSucceeded,
		ResultFiles: []string{"a.mp4"},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusRunning, job.Status)
	assert.Equal(t, []string{"a.mp4"}, job.Entries[0].ResultFiles)

	job, err = repo.UpdateEntry(context.Background(), created.ID, 1, models.EntryUpdate{
		Status:       models.EntryStatusFailed,
		ErrorMessage: "boom",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusPartial, job.Status)
	assert.Equal(t, "boom", job.Entries[1].ErrorMessage)
}

func TestUpdateEntry_TerminalEntryIsNeverOverwritten(t *testing.T) {
	repo := CreateJobRepository()
	created, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	_, err = repo.UpdateEntry(context.Background(), created.ID, 0, models.EntryUpdate{
		Status:      models.EntryStatusSucceeded,
		ResultFiles: []string{"a.mp4"},
	})
	assert.NoError(t, err)

	job, err := repo.UpdateEntry(context.Background(), created.ID, 0, models.EntryUpdate{
		Status:       models.EntryStatusFailed,
		ErrorMessage: "late failure",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.EntryStatusSucceeded, job.Entries[0].Status)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
}

func TestUpdateEntry_JobNotFound(t *testing.T) {
	repo := CreateJobRepository()

	job, err := repo.UpdateEntry(context.Background(), "missing", 0, models.EntryUpdate{
		Status: models.EntryStatusRunning,
	})

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errs.ErrJobNotFound)
}

func TestUpdateEntry_IndexOutOfRange(t *testing.T) {
	repo := CreateJobRepository()
	created, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	_, err = repo.UpdateEntry(context.Background(), created.ID, 5, models.EntryUpdate{
		Status: models.EntryStatusRunning,
	})

	assert.ErrorIs(t, err, errs.ErrJobNotFound)
}

func TestUpdateEntry_ConcurrentSiblingsLoseNothing(t *testing.T) {
	repo := CreateJobRepository()

	urls := make([]string, 10)
	for i := range urls {
		urls[i] = "https://example.com/video"
	}
	created, err := repo.CreateJob(context.Background(), urls, "best")
	assert.NoError(t, err)

	var wg sync.WaitGroup
	for i := range urls {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, err := repo.UpdateEntry(context.Background(), created.ID, index, models.EntryUpdate{
				Status: models.EntryStatusRunning,
			})
			assert.NoError(t, err)
			status := models.EntryStatusSucceeded
			update := models.EntryUpdate{Status: status, ResultFiles: []string{"file.mp4"}}
			if index%2 == 1 {
				update = models.EntryUpdate{Status: models.EntryStatusFailed, ErrorMessage: "boom"}
			}
			_, err = repo.UpdateEntry(context.Background(), created.ID, index, update)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	job, err := repo.GetJob(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Len(t, job.Entries, 10)

	terminal := 0
	for _, entry := range job.Entries {
		if entry.Status.Terminal() {
			terminal++
		}
	}
	assert.Equal(t, 10, terminal)
	assert.Equal(t, models.JobStatusPartial, job.Status)
}

func TestListJobs_PaginationAndFilter(t *testing.T) {
	repo := CreateJobRepository()

	for i := 0; i < 5; i++ {
		_, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
		assert.NoError(t, err)
	}
	failing, err := repo.CreateJob(context.Background(), []string{"https://example.com/b"}, "best")
	assert.NoError(t, err)
	_, err = repo.UpdateEntry(context.Background(), failing.ID, 0, models.EntryUpdate{
		Status:       models.EntryStatusFailed,
		ErrorMessage: "boom",
	})
	assert.NoError(t, err)

	jobs, total, err := repo.ListJobs(context.Background(), models.ListOptions{Page: 1, PerPage: 4})
	assert.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, jobs, 4)

	jobs, total, err = repo.ListJobs(context.Background(), models.ListOptions{Page: 2, PerPage: 4})
	assert.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, jobs, 2)

	jobs, total, err = repo.ListJobs(context.Background(), models.ListOptions{
		Page:    1,
		PerPage: 10,
		Status:  string(models.JobStatusFailed),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, jobs, 1)
	assert.Equal(t, failing.ID, jobs[0].ID)
}

func TestUpdateEntryProgress_VisibleInSnapshots(t *testing.T) {
	repo := CreateJobRepository()
	job, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	_, err = repo.UpdateEntry(context.Background(), job.ID, 0, models.EntryUpdate{Status: models.EntryStatusRunning})
	assert.NoError(t, err)

	err = repo.UpdateEntryProgress(context.Background(), job.ID, 0, models.EntryProgress{
		Percent:         25,
		DownloadedBytes: 2048,
		TotalBytes:      8192,
		SpeedBPS:        1024,
		ETASeconds:      6,
	})
	assert.NoError(t, err)

	got, err := repo.GetJob(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.Entries[0].Progress)
	assert.Equal(t, float64(25), got.Entries[0].Progress.Percent)
	assert.EqualValues(t, 2048, got.Entries[0].Progress.DownloadedBytes)

	// A newer snapshot overwrites the old one wholesale.
	err = repo.UpdateEntryProgress(context.Background(), job.ID, 0, models.EntryProgress{
		Percent:         50,
		DownloadedBytes: 4096,
		TotalBytes:      8192,
	})
	assert.NoError(t, err)

	got, err = repo.GetJob(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(50), got.Entries[0].Progress.Percent)
	assert.Zero(t, got.Entries[0].Progress.SpeedBPS)
}

func TestUpdateEntryProgress_DroppedOnceTerminal(t *testing.T) {
	repo := CreateJobRepository()
	job, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	_, err = repo.UpdateEntry(context.Background(), job.ID, 0, models.EntryUpdate{
		Status:      models.EntryStatusSucceeded,
		ResultFiles: []string{"video.mp4"},
	})
	assert.NoError(t, err)

	err = repo.UpdateEntryProgress(context.Background(), job.ID, 0, models.EntryProgress{Percent: 10})
	assert.NoError(t, err)

	got, err := repo.GetJob(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(100), got.Entries[0].Progress.Percent)
}

func TestUpdateEntryProgress_Errors(t *testing.T) {
	repo := CreateJobRepository()
	job, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	err = repo.UpdateEntryProgress(context.Background(), "missing", 0, models.EntryProgress{})
	assert.ErrorIs(t, err, errs.ErrJobNotFound)

	err = repo.UpdateEntryProgress(context.Background(), job.ID, 7, models.EntryProgress{})
	assert.ErrorIs(t, err, errs.ErrJobNotFound)
}

func TestUpdateEntry_SucceededSettlesProgressAt100(t *testing.T) {
	repo := CreateJobRepository()
	job, err := repo.CreateJob(context.Background(), []string{"https://example.com/a"}, "best")
	assert.NoError(t, err)

	_, err = repo.UpdateEntry(context.Background(), job.ID, 0, models.EntryUpdate{Status: models.EntryStatusRunning})
	assert.NoError(t, err)
	err = repo.UpdateEntryProgress(context.Background(), job.ID, 0, models.EntryProgress{
		Percent:         80,
		DownloadedBytes: 6553,
		TotalBytes:      8192,
		SpeedBPS:        2048,
		ETASeconds:      1,
	})
	assert.NoError(t, err)

	final, err := repo.UpdateEntry(context.Background(), job.ID, 0, models.EntryUpdate{
		Status:      models.EntryStatusSucceeded,
		ResultFiles: []string{"video.mp4"},
	})
	assert.NoError(t, err)

	progress := final.Entries[0].Progress
	assert.NotNil(t, progress)
	assert.Equal(t, float64(100), progress.Percent)
	assert.EqualValues(t, 6553, progress.DownloadedBytes)
	assert.EqualValues(t, 8192, progress.TotalBytes)
	assert.Zero(t, progress.SpeedBPS)
	assert.Zero(t, progress.ETASeconds)
}
