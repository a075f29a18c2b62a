package models

import "time"

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusPartial   JobStatus = "partial"
	JobStatusFailed    JobStatus = "failed"
)

type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusRunning   EntryStatus = "running"
	EntryStatusSucceeded EntryStatus = "succeeded"
	EntryStatusFailed    EntryStatus = "failed"
)

// Terminal reports whether an entry status admits no further transitions.
func (s EntryStatus) Terminal() bool {
	return s == EntryStatusSucceeded || s == EntryStatusFailed
}

type Job struct {
	ID        string      `json:"id"`
	Preset    string      `json:"preset"`
	Status    JobStatus   `json:"status"`
	Entries   []*JobEntry `json:"entries"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type JobEntry struct {
	URL          string         `json:"url"`
	Status       EntryStatus    `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	ResultFiles  []string       `json:"result_files,omitempty"`
	Progress     *EntryProgress `json:"progress,omitempty"`
}

// EntryProgress is the latest download snapshot for a running entry. Only
// the most recent snapshot is kept; the adapter pushes them throttled.
type EntryProgress struct {
	Percent         float64 `json:"percent"`
	DownloadedBytes int64   `json:"downloaded_bytes"`
	TotalBytes      int64   `json:"total_bytes,omitempty"`
	SpeedBPS        float64 `json:"speed_bps,omitempty"`
	ETASeconds      int64   `json:"eta_seconds,omitempty"`
}

// Clone returns a deep copy so callers never observe a job while a worker
// is mutating it.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	clone := *j
	clone.Entries = make([]*JobEntry, len(j.Entries))
	for i, entry := range j.Entries {
		entryCopy := *entry
		if entry.ResultFiles != nil {
			entryCopy.ResultFiles = append([]string(nil), entry.ResultFiles...)
		}
		if entry.Progress != nil {
			progressCopy := *entry.Progress
			entryCopy.Progress = &progressCopy
		}
		clone.Entries[i] = &entryCopy
	}
	return &clone
}

// DeriveJobStatus computes the aggregate job status purely from entry
// statuses. A job never stores a status that contradicts its entries.
func DeriveJobStatus(entries []*JobEntry) JobStatus {
	allPending := true
	allTerminal := true
	succeeded := 0
	failed := 0

	for _, entry := range entries {
		if entry.Status != EntryStatusPending {
			allPending = false
		}
		switch entry.Status {
		case EntryStatusSucceeded:
			succeeded++
		case EntryStatusFailed:
			failed++
		default:
			allTerminal = false
		}
	}

	switch {
	case len(entries) == 0 || allPending:
		return JobStatusQueued
	case !allTerminal:
		return JobStatusRunning
	case failed == 0:
		return JobStatusCompleted
	case succeeded == 0:
		return JobStatusFailed
	default:
		return JobStatusPartial
	}
}

// EntryUpdate carries a single entry transition applied by a worker.
type EntryUpdate struct {
	Status       EntryStatus
	ResultFiles  []string
	ErrorMessage string
}

// WorkItem is one unit of work for the pool: one URL of one job.
type WorkItem struct {
	JobID      string
	EntryIndex int
	URL        string
}

// FetchResult is what the extraction adapter reports on success. Files are
// relative to the base download directory, the primary media file first.
type FetchResult struct {
	Files []string
}

// ProbeResult is the metadata for a URL looked up without downloading it.
type ProbeResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Ext      string `json:"ext"`
	Uploader string `json:"uploader"`
}

// MediaRecord groups a downloaded media file with the sidecars sharing its
// base name. It is derived from the directory on every scan, never stored.
type MediaRecord struct {
	Filename   string    `json:"filename"`
	Title      string    `json:"title"`
	Uploader   string    `json:"uploader"`
	WebpageURL string    `json:"original_url,omitempty"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	InfoFile   string    `json:"info_file,omitempty"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

type Preset struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Format string `json:"-"`

	AudioOnly   bool   `json:"-"`
	AudioFormat string `json:"-"`
}

const DefaultPreset = "best"

var Presets = map[string]Preset{
	"best": {
		ID:     "best",
		Label:  "Best",
		Format: "bestvideo+bestaudio/best",
	},
	"best_1080p": {
		ID:     "best_1080p",
		Label:  "Best 1080p",
		Format: "bestvideo[height<=1080]+bestaudio/best[height<=1080]/best",
	},
	"audio_only": {
		ID:          "audio_only",
		Label:       "Audio only (M4A)",
		Format:      "bestaudio/best",
		AudioOnly:   true,
		AudioFormat: "m4a",
	},
}

type SubmitRequest struct {
	URLs   []string `json:"urls"`
	Preset string   `json:"preset"`
}

type DeleteRequest struct {
	Filename string `json:"filename"`
}

type ListOptions struct {
	Page     int
	PerPage  int
	Status   string
	Query    string
	Sort     string
	Uploader string
}

type JobSummary struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	URLCount  int       `json:"url_count"`
}

type GalleryPage struct {
	Items   []*MediaRecord `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Pages   int            `json:"pages"`
	Total   int            `json:"total"`
}
