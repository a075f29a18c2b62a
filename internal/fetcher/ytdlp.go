package fetcher

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/errs"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"go.uber.org/zap"
)

const outputTemplate = "%(title).200B [%(id)s].%(ext)s"

// progressPrefix marks progress lines on stdout so they cannot be mistaken
// for the printed filepaths.
const progressPrefix = "PROGRESS "

const progressTemplate = "download:" + progressPrefix +
	"%(progress.downloaded_bytes)s %(progress.total_bytes)s %(progress.total_bytes_estimate)s %(progress.speed)s %(progress.eta)s"

// YtDlp invokes the external yt-dlp binary for one URL at a time. The tool
// writes the media file plus an .info.json sidecar and a thumbnail into the
// target directory; produced media paths are read from stdout. Retries are
// not the adapter's business.
type YtDlp struct {
	binaryPath       string
	timeout          time.Duration
	progressInterval time.Duration
}

func CreateYtDlp(binaryPath string, timeout, progressInterval time.Duration) *YtDlp {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	if progressInterval <= 0 {
		progressInterval = 750 * time.Millisecond
	}
	return &YtDlp{
		binaryPath:       binaryPath,
		timeout:          timeout,
		progressInterval: progressInterval,
	}
}

func (f *YtDlp) Fetch(ctx context.Context, url string, targetDir string, preset models.Preset, onProgress func(models.EntryProgress)) (*models.FetchResult, error) {
	const funcName = "YtDlp.Fetch"

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	args := []string{
		"--no-warnings",
		"--restrict-filenames",
		"--write-info-json",
		"--write-thumbnail",
		"--no-playlist",
		"--no-simulate",
		"--newline",
		"--progress-template", progressTemplate,
		"--print", "after_move:filepath",
		"-f", preset.Format,
		"-o", filepath.Join(targetDir, outputTemplate),
	}
	if preset.AudioOnly {
		args = append(args, "--extract-audio", "--audio-format", preset.AudioFormat)
	} else {
		args = append(args, "--merge-output-format", "mp4")
	}
	args = append(args, url)

	logger.Debug("invoking yt-dlp",
		zap.String("function", funcName),
		zap.String("binary", f.binaryPath),
		zap.String("url", url),
		zap.String("preset", preset.ID),
	)

	cmd := exec.CommandContext(ctx, f.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", errs.ErrFetchFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %v", errs.ErrFetchFailed, f.binaryPath, err)
	}

	// Stdout carries two kinds of lines: throttled progress snapshots and
	// the final filepaths. Scanning happens while the tool runs so progress
	// reaches the registry live, not after the download.
	var fileLines []string
	var lastPush time.Time
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, progressPrefix) {
			if onProgress == nil {
				continue
			}
			progress, ok := parseProgressLine(line)
			if !ok || time.Since(lastPush) < f.progressInterval {
				continue
			}
			onProgress(progress)
			lastPush = time.Now()
			continue
		}
		fileLines = append(fileLines, line)
	}

	err = cmd.Wait()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Warn("yt-dlp timed out",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Duration("timeout", f.timeout),
		)
		return nil, fmt.Errorf("%w after %s: %s", errs.ErrFetchTimeout, f.timeout, url)
	}
	if err != nil {
		logger.Warn("yt-dlp failed",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", errs.ErrFetchFailed, stderrTail(stderr.String()))
	}

	files, err := f.collectFiles(fileLines, targetDir)
	if err != nil {
		return nil, err
	}

	logger.Info("yt-dlp finished",
		zap.String("function", funcName),
		zap.String("url", url),
		zap.Strings("files", files),
	)

	return &models.FetchResult{Files: files}, nil
}

// Probe looks up metadata for a URL without downloading anything.
func (f *YtDlp) Probe(ctx context.Context, url string) (*models.ProbeResult, error) {
	const funcName = "YtDlp.Probe"

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	args := []string{
		"--no-warnings",
		"--no-playlist",
		"--skip-download",
		"--dump-json",
		url,
	}

	cmd := exec.CommandContext(ctx, f.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s: %s", errs.ErrFetchTimeout, f.timeout, url)
	}
	if err != nil {
		logger.Warn("yt-dlp probe failed",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", errs.ErrFetchFailed, stderrTail(stderr.String()))
	}

	var result models.ProbeResult
	if err := json.NewDecoder(&stdout).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: parse probe output: %v", errs.ErrFetchFailed, err)
	}

	logger.Debug("yt-dlp probe finished",
		zap.String("function", funcName),
		zap.String("url", url),
		zap.String("title", result.Title),
	)

	return &result, nil
}

// parseProgressLine decodes "PROGRESS <downloaded> <total> <total_estimate>
// <speed> <eta>" where any field may be NA. The percent is computed here,
// from the estimate when the exact total is unknown.
func parseProgressLine(line string) (models.EntryProgress, bool) {
	fields := strings.Fields(strings.TrimPrefix(line, progressPrefix))
	if len(fields) != 5 {
		return models.EntryProgress{}, false
	}

	progress := models.EntryProgress{
		DownloadedBytes: parseByteField(fields[0]),
		TotalBytes:      parseByteField(fields[1]),
		SpeedBPS:        parseFloatField(fields[3]),
		ETASeconds:      parseByteField(fields[4]),
	}
	if progress.TotalBytes == 0 {
		progress.TotalBytes = parseByteField(fields[2])
	}
	if progress.TotalBytes > 0 {
		percent := float64(progress.DownloadedBytes) / float64(progress.TotalBytes) * 100
		if percent > 100 {
			percent = 100
		}
		progress.Percent = percent
	}

	return progress, true
}

func parseByteField(raw string) int64 {
	value := parseFloatField(raw)
	if value < 0 {
		return 0
	}
	return int64(value)
}

func parseFloatField(raw string) float64 {
	if raw == "" || raw == "NA" || raw == "None" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// collectFiles turns the printed filepaths into paths relative to the target
// directory, dropping anything the tool wrote elsewhere.
func (f *YtDlp) collectFiles(lines []string, targetDir string) ([]string, error) {
	base, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve target dir: %v", errs.ErrFetchFailed, err)
	}

	var files []string
	for _, line := range lines {
		abs := line
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(base, abs)
		}
		rel, err := filepath.Rel(base, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		files = append(files, rel)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: tool produced no files", errs.ErrFetchFailed)
	}

	return files, nil
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown error"
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	tail := strings.Join(lines, " | ")
	if len(tail) > 500 {
		tail = tail[len(tail)-500:]
	}
	return tail
}
