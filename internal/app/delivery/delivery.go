package delivery

import (
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/mediagrab/mediagrab/internal/app"
	"github.com/mediagrab/mediagrab/internal/app/models"
	"github.com/mediagrab/mediagrab/internal/utils/logger"
	"github.com/mediagrab/mediagrab/internal/utils/responses"
	"go.uber.org/zap"
)

type JobDelivery struct {
	jobUsecase    app.JobUsecase
	baseDir       string
	minFreeDiskMB int
}

func CreateJobDelivery(jobUsecase app.JobUsecase, baseDir string, minFreeDiskMB int) *JobDelivery {
	return &JobDelivery{
		jobUsecase:    jobUsecase,
		baseDir:       baseDir,
		minFreeDiskMB: minFreeDiskMB,
	}
}

// Submit accepts a JSON body ({"urls": [...], "preset": "..."}) or a classic
// form post with "u" and "preset" fields; either way each value may carry
// several newline-separated URLs. Responds 202 as soon as the job is queued.
func (d *JobDelivery) Submit(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.Submit"
	logger.Debug("submitting job", zap.String("function", funcName))

	var req models.SubmitRequest
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.URLs = r.PostForm["u"]
		req.Preset = r.PostFormValue("preset")
	}

	job, err := d.jobUsecase.Submit(r.Context(), req.URLs, req.Preset)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"ok":     true,
		"job_id": job.ID,
		"preset": job.Preset,
		"status": job.Status,
		"job":    job,
	}, http.StatusAccepted)
}

func (d *JobDelivery) GetStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.GetStatus"
	logger.Debug("getting job status", zap.String("function", funcName))

	vars := mux.Vars(r)
	jobID := vars["id"]

	job, err := d.jobUsecase.GetJob(r.Context(), jobID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"ok":  true,
		"job": job,
	}, http.StatusOK)
}

func (d *JobDelivery) ListJobs(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.ListJobs"
	logger.Debug("listing jobs", zap.String("function", funcName))

	opts := models.ListOptions{
		Page:    parsePositiveInt(r.URL.Query().Get("page"), 1, 1, 100000),
		PerPage: parsePositiveInt(r.URL.Query().Get("per_page"), 20, 1, 100),
		Status:  strings.TrimSpace(r.URL.Query().Get("status")),
		Sort:    strings.TrimSpace(r.URL.Query().Get("sort")),
	}

	jobs, total, err := d.jobUsecase.ListJobs(r.Context(), opts)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	items := make([]models.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, models.JobSummary{
			ID:        job.ID,
			Preset:    job.Preset,
			Status:    job.Status,
			CreatedAt: job.CreatedAt,
			URLCount:  len(job.Entries),
		})
	}

	pages := (total + opts.PerPage - 1) / opts.PerPage
	if pages == 0 {
		pages = 1
	}

	responses.DoJSONResponse(w, map[string]any{
		"ok":       true,
		"items":    items,
		"page":     opts.Page,
		"per_page": opts.PerPage,
		"pages":    pages,
		"total":    total,
	}, http.StatusOK)
}

func (d *JobDelivery) Gallery(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.Gallery"
	logger.Debug("listing gallery", zap.String("function", funcName))

	opts := models.ListOptions{
		Page:     parsePositiveInt(r.URL.Query().Get("page"), 1, 1, 100000),
		PerPage:  parsePositiveInt(r.URL.Query().Get("per_page"), 24, 1, 100),
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
		Sort:     strings.TrimSpace(r.URL.Query().Get("sort")),
		Uploader: strings.TrimSpace(r.URL.Query().Get("uploader")),
	}

	page, err := d.jobUsecase.Gallery(r.Context(), opts)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, page, http.StatusOK)
}

// Delete removes a downloaded file and its sidecars. The filename travels in
// the body, not the path, so no proxy or router normalization touches it
// before the path guard sees it.
func (d *JobDelivery) Delete(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.Delete"
	logger.Debug("deleting file", zap.String("function", funcName))

	var req models.DeleteRequest
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Filename = r.PostFormValue("filename")
	}

	if strings.TrimSpace(req.Filename) == "" {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "no filename")
		return
	}

	if err := d.jobUsecase.DeleteFile(r.Context(), req.Filename); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"ok": true}, http.StatusOK)
}

func (d *JobDelivery) ServeFile(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.ServeFile"

	vars := mux.Vars(r)
	filename := vars["filename"]

	full, err := d.jobUsecase.ResolveFile(r.Context(), filename)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	http.ServeFile(w, r, full)
}

// Probe answers a synchronous metadata lookup for the "u" query parameter.
func (d *JobDelivery) Probe(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.Probe"
	logger.Debug("probing url", zap.String("function", funcName))

	url := strings.TrimSpace(r.URL.Query().Get("u"))
	if url == "" {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "no url")
		return
	}

	result, err := d.jobUsecase.Probe(r.Context(), url)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"ok":       true,
		"id":       result.ID,
		"title":    result.Title,
		"ext":      result.Ext,
		"uploader": result.Uploader,
	}, http.StatusOK)
}

func (d *JobDelivery) Presets(w http.ResponseWriter, r *http.Request) {
	presets := make([]models.Preset, 0, len(models.Presets))
	for _, preset := range models.Presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })

	responses.DoJSONResponse(w, map[string]any{
		"ok":      true,
		"presets": presets,
		"default": models.DefaultPreset,
	}, http.StatusOK)
}

// Readyz checks that the download directory is writable and has enough free
// disk. Healthz stays elsewhere and depends on nothing.
func (d *JobDelivery) Readyz(w http.ResponseWriter, r *http.Request) {
	const funcName = "JobDelivery.Readyz"

	checks := map[string]any{
		"download_dir_writable":    false,
		"disk_free_mb":             nil,
		"required_min_disk_free_mb": d.minFreeDiskMB,
	}

	probe, err := os.CreateTemp(d.baseDir, ".readyz-*")
	if err == nil {
		probe.Close()
		os.Remove(probe.Name())
		checks["download_dir_writable"] = true
	} else {
		checks["download_dir_error"] = err.Error()
	}

	diskOK := false
	var stat syscall.Statfs_t
	if err := syscall.Statfs(d.baseDir, &stat); err == nil {
		freeMB := int(uint64(stat.Bsize) * stat.Bavail / (1024 * 1024))
		checks["disk_free_mb"] = freeMB
		diskOK = freeMB >= d.minFreeDiskMB
	} else {
		checks["disk_error"] = err.Error()
	}
	checks["disk_ok"] = diskOK

	ok := checks["download_dir_writable"] == true && diskOK
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
		logger.Warn("readiness check failed",
			zap.String("function", funcName),
			zap.Any("checks", checks),
		)
	}

	responses.DoJSONResponse(w, map[string]any{
		"ok":     ok,
		"checks": checks,
	}, status)
}

func parsePositiveInt(value string, def, min, max int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	if parsed < min {
		return min
	}
	if parsed > max {
		return max
	}
	return parsed
}
