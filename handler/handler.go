package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/jaidevxr/instagram-wrapped/analyzer"
	"github.com/jaidevxr/instagram-wrapped/archive"
	"github.com/jaidevxr/instagram-wrapped/cache"
	"github.com/jaidevxr/instagram-wrapped/config"
	"github.com/jaidevxr/instagram-wrapped/session"
	"github.com/jaidevxr/instagram-wrapped/utils"
)

// AnalysisHandler serves the upload-once, analyze-per-year flow.
type AnalysisHandler struct {
	sessions *session.Store
	cache    *cache.Cache
	config   config.Config
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(sessions *session.Store, cacheClient *cache.Cache, cfg config.Config) *AnalysisHandler {
	return &AnalysisHandler{
		sessions: sessions,
		cache:    cacheClient,
		config:   cfg,
	}
}

func (h *AnalysisHandler) operationContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
}

// Upload handles POST /upload
// @Summary Ingest an Instagram data export
// @Description Accepts a ZIP export, classifies every machine-readable entry and stores the session. Individual unreadable entries are skipped, never fatal; only a corrupt container fails the call.
// @Tags Analysis
// @Accept mpfd
// @Produce json
// @Success 201 {object} UploadResponse "Archive ingested and session stored"
// @Failure 400 {object} ErrorResponse "Missing, oversized or corrupt archive"
// @Failure 500 {object} ErrorResponse "Session could not be stored"
// @Router /upload [post]
func (h *AnalysisHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.operationContext(r)
	defer cancel()

	maxBytes := int64(h.config.Ingest.MaxArchiveMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		log.Warn().Err(err).Msg("Failed to parse upload form")
		SendJSONError(w, http.StatusBadRequest, utils.ErrArchiveTooLarge, "Upload exceeds the size limit or is not valid multipart data")
		return
	}

	file, _, err := r.FormFile("archive")
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, utils.ErrMissingArchive, "Attach the export ZIP as the 'archive' field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded archive")
		SendJSONError(w, http.StatusBadRequest, utils.ErrCorruptArchive, "Could not read the uploaded file")
		return
	}

	result, err := archive.Ingest(data)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "The file is not a readable ZIP archive")
		return
	}

	uploadID := uuid.NewString()
	sess := session.Session{
		Records:    result.Records,
		MarkupOnly: result.MarkupOnly,
		UploadedAt: time.Now(),
	}
	if err := h.sessions.Save(ctx, uploadID, sess); err != nil {
		log.Error().Err(err).Str("upload_id", uploadID).Msg("Failed to store session")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to store the ingested data")
		return
	}

	SendJSONSuccess(w, http.StatusCreated, UploadResponse{
		UploadID:           uploadID,
		RecordCount:        len(result.Records),
		SkippedEntries:     result.ParseFailures + result.Unclassified,
		AvailableYears:     analyzer.AvailableYears(result.Records),
		IsMarkupOnlyExport: result.MarkupOnly,
	})
}

// Analysis handles GET /analysis/{uploadID}
// @Summary Year-scoped analysis of a stored session
// @Description Recomputes (or serves from cache) the full AnalysisResult for the requested year. An absent or unavailable year falls back to the most recent year in the data. Aggregation itself never fails; missing categories yield zero-valued stats.
// @Tags Analysis
// @Produce json
// @Param uploadID path string true "Upload ID returned by /upload"
// @Param year query int false "Calendar year to analyze"
// @Success 200 {object} model.AnalysisResult
// @Failure 404 {object} ErrorResponse "Unknown or expired upload ID"
// @Router /analysis/{uploadID} [get]
func (h *AnalysisHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.operationContext(r)
	defer cancel()

	uploadID := mux.Vars(r)["uploadID"]
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	cacheKey := fmt.Sprintf("%s:%d", uploadID, year)
	if payload, ok := h.cache.GetAnalysis(cacheKey); ok {
		log.Debug().Str("upload_id", uploadID).Int("year", year).Msg("Serving cached analysis")
		writeJSONPayload(w, payload)
		return
	}

	sess, err := h.sessions.Load(ctx, uploadID)
	if errors.Is(err, session.ErrNotFound) {
		SendJSONError(w, http.StatusNotFound, err, "Upload the export again to start a new session")
		return
	} else if err != nil {
		log.Error().Err(err).Str("upload_id", uploadID).Msg("Failed to load session")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to load the stored session")
		return
	}

	result := analyzer.Analyze(sess.Records, year)

	payload, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode analysis result")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to encode the analysis result")
		return
	}
	h.cache.SetAnalysis(cacheKey, payload)

	writeJSONPayload(w, payload)
}

// Years handles GET /analysis/{uploadID}/years
// @Summary Calendar years available in a stored session
// @Tags Analysis
// @Produce json
// @Param uploadID path string true "Upload ID returned by /upload"
// @Success 200 {object} YearsResponse
// @Failure 404 {object} ErrorResponse "Unknown or expired upload ID"
// @Router /analysis/{uploadID}/years [get]
func (h *AnalysisHandler) Years(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.operationContext(r)
	defer cancel()

	uploadID := mux.Vars(r)["uploadID"]

	sess, err := h.sessions.Load(ctx, uploadID)
	if errors.Is(err, session.ErrNotFound) {
		SendJSONError(w, http.StatusNotFound, err, "Upload the export again to start a new session")
		return
	} else if err != nil {
		log.Error().Err(err).Str("upload_id", uploadID).Msg("Failed to load session")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to load the stored session")
		return
	}

	SendJSONSuccess(w, http.StatusOK, YearsResponse{
		AvailableYears: analyzer.AvailableYears(sess.Records),
	})
}

// HealthCheck handles GET /health
// @Summary Service liveness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *AnalysisHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.operationContext(r)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := h.sessions.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("Health check failed")
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	SendJSONSuccess(w, code, map[string]string{"status": status})
}

// CacheMetrics handles GET /cache/metrics
// @Summary Analysis cache metrics
// @Tags System
// @Produce json
// @Success 200 {object} cache.MetricsSnapshot
// @Router /cache/metrics [get]
func (h *AnalysisHandler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, h.cache.GetMetricsSnapshot())
}

func writeJSONPayload(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("Failed to write response payload")
	}
}
