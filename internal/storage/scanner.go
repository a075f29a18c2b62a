package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const infoSuffix = ".info.json"

var mediaExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
	".mov":  true,
	".avi":  true,
	".m4a":  true,
	".mp3":  true,
	".opus": true,
	".flac": true,
	".ogg":  true,
	".wav":  true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".png":  true,
}

// SidecarExtensions are the sibling files deleted together with a primary
// media file.
var SidecarExtensions = []string{infoSuffix, ".jpg", ".jpeg", ".webp", ".png"}

// infoSidecar is the subset of the yt-dlp metadata sidecar the gallery
// cares about.
type infoSidecar struct {
	Title      string `json:"title"`
	Uploader   string `json:"uploader"`
	WebpageURL string `json:"webpage_url"`
}

// Scanner derives gallery records from the download directory. Every call
// re-scans; there is no cache to go stale, the directory itself is the
// system of record.
type Scanner struct{}

func CreateScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) ListMedia(ctx context.Context, baseDir string) ([]*models.MediaRecord, error) {
	const funcName = "Scanner.ListMedia"

	dirEntries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("read download dir: %w", err)
	}

	groups := make(map[string]*models.MediaRecord)
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		name := dirEntry.Name()

		switch {
		case strings.HasSuffix(name, infoSuffix):
			base := strings.TrimSuffix(name, infoSuffix)
			record := groups[base]
			if record == nil {
				record = &models.MediaRecord{}
				groups[base] = record
			}
			record.InfoFile = name

		case imageExtensions[strings.ToLower(filepath.Ext(name))]:
			base := strings.TrimSuffix(name, filepath.Ext(name))
			record := groups[base]
			if record == nil {
				record = &models.MediaRecord{}
				groups[base] = record
			}
			record.Thumbnail = name

		case mediaExtensions[strings.ToLower(filepath.Ext(name))]:
			base := strings.TrimSuffix(name, filepath.Ext(name))
			record := groups[base]
			if record == nil {
				record = &models.MediaRecord{}
				groups[base] = record
			}
			record.Filename = name
			record.Title = base
			if info, err := dirEntry.Info(); err == nil {
				record.SizeBytes = info.Size()
				record.ModifiedAt = info.ModTime()
			}
		}
	}

	// Groups without a primary media file are orphaned sidecars; they are
	// not surfaced as records.
	records := make([]*models.MediaRecord, 0, len(groups))
	for _, record := range groups {
		if record.Filename == "" {
			continue
		}
		records = append(records, record)
	}

	if err := s.enrichFromSidecars(ctx, baseDir, records); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ModifiedAt.After(records[j].ModifiedAt)
	})

	logger.Debug("directory scanned",
		zap.String("function", funcName),
		zap.String("base_dir", baseDir),
		zap.Int("records", len(records)),
	)

	return records, nil
}

// enrichFromSidecars parses .info.json metadata for each record. Parsing
// is concurrent since a big gallery means many small reads; a broken or
// vanished sidecar only leaves that record with filename-derived fields.
func (s *Scanner) enrichFromSidecars(ctx context.Context, baseDir string, records []*models.MediaRecord) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	var mu sync.Mutex
	for _, record := range records {
		record := record
		if record.InfoFile == "" {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			raw, err := os.ReadFile(filepath.Join(baseDir, record.InfoFile))
			if err != nil {
				logger.Warn("failed to read metadata sidecar",
					zap.String("function", "Scanner.enrichFromSidecars"),
					zap.String("info_file", record.InfoFile),
					zap.Error(err),
				)
				return nil
			}

			var info infoSidecar
			if err := json.Unmarshal(raw, &info); err != nil {
				logger.Warn("failed to parse metadata sidecar",
					zap.String("function", "Scanner.enrichFromSidecars"),
					zap.String("info_file", record.InfoFile),
					zap.Error(err),
				)
				return nil
			}

			mu.Lock()
			if info.Title != "" {
				record.Title = info.Title
			}
			record.Uploader = info.Uploader
			record.WebpageURL = info.WebpageURL
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
