package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-profiler/internal/db"
	"github.com/jonathan/resume-profiler/internal/parser"
	"github.com/jonathan/resume-profiler/internal/pipeline"
	"github.com/jonathan/resume-profiler/internal/profile"
	"github.com/jonathan/resume-profiler/internal/script"
)

// GenerateResponse represents the response for /generate-script
type GenerateResponse struct {
	RunID    string                 `json:"run_id,omitempty"`
	Variant  string                 `json:"variant"`
	Industry string                 `json:"industry"`
	Profile  *profile.ResumeProfile `json:"profile"`
	Script   string                 `json:"script"`
}

// RunSummary represents a run in list and detail responses
type RunSummary struct {
	RunID       string `json:"run_id"`
	SourceFile  string `json:"source_file"`
	Variant     string `json:"variant"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

var allowedUploadExtensions = map[string]bool{
	".txt":  true,
	".docx": true,
	".pdf":  true,
	".html": true,
	".htm":  true,
}

// maxUploadBytes caps resume uploads at 10 MB
const maxUploadBytes = 10 << 20

// parseGenerateRequest extracts the uploaded resume and options from a
// multipart request and stages the file in a temp directory.
func (s *Server) parseGenerateRequest(w http.ResponseWriter, r *http.Request) (resumePath, variant string, cleanup func(), ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return "", "", nil, false
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return "", "", nil, false
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		docErr := &ErrUnsupportedDocument{Filename: header.Filename}
		s.errorResponse(w, HTTPStatus(docErr), docErr.Error())
		return "", "", nil, false
	}

	variant = r.FormValue("variant")
	if variant == "" {
		variant = parser.VariantGeneral
	}
	if variant != parser.VariantGeneral && variant != parser.VariantTemplate {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown variant: %q", variant))
		return "", "", nil, false
	}

	dir, err := os.MkdirTemp("", "profiler-upload-")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage upload")
		return "", "", nil, false
	}
	cleanup = func() { os.RemoveAll(dir) }

	resumePath = filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(resumePath)
	if err != nil {
		cleanup()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage upload")
		return "", "", nil, false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		cleanup()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to stage upload")
		return "", "", nil, false
	}

	return resumePath, variant, cleanup, true
}

// handleGenerateScript runs the full pipeline on an uploaded resume
func (s *Server) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	resumePath, variant, cleanup, ok := s.parseGenerateRequest(w, r)
	if !ok {
		return
	}
	defer cleanup()

	opts := pipeline.RunOptions{
		ResumePath:  resumePath,
		Variant:     variant,
		DefaultRole: s.defaultRole,
		APIKey:      s.apiKey,
		DatabaseURL: s.databaseURL,
	}

	started := time.Now()
	result, err := pipeline.Run(r.Context(), opts)
	s.metrics.observeGeneration(variant, started, err)
	if err != nil {
		log.Error().Err(err).Str("variant", variant).Msg("pipeline run failed")
		s.errorResponse(w, http.StatusInternalServerError, "Pipeline failed: "+err.Error())
		return
	}

	resp := GenerateResponse{
		Variant:  variant,
		Industry: script.DetectIndustry(result.Profile),
		Profile:  result.Profile,
		Script:   result.Script,
	}
	if result.RunID != uuid.Nil {
		resp.RunID = result.RunID.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGenerateScriptStream runs the pipeline and streams progress via SSE
func (s *Server) handleGenerateScriptStream(w http.ResponseWriter, r *http.Request) {
	resumePath, variant, cleanup, ok := s.parseGenerateRequest(w, r)
	if !ok {
		return
	}
	defer cleanup()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts := pipeline.RunOptions{
		ResumePath:  resumePath,
		Variant:     variant,
		DefaultRole: s.defaultRole,
		APIKey:      s.apiKey,
		DatabaseURL: s.databaseURL,
		OnProgress: func(event pipeline.ProgressEvent) {
			if err := sse.WriteEvent("step", event); err != nil {
				log.Warn().Err(err).Msg("failed to write SSE event")
			}
		},
	}

	started := time.Now()
	result, err := pipeline.Run(r.Context(), opts)
	s.metrics.observeGeneration(variant, started, err)
	if err != nil {
		log.Error().Err(err).Str("variant", variant).Msg("streaming pipeline run failed")
		sse.WriteError(err.Error())
		return
	}

	runID := ""
	if result.RunID != uuid.Nil {
		runID = result.RunID.String()
	}
	sse.WriteComplete(runID, db.StatusCompleted)
}

// requireDB ensures persistence is configured before serving run endpoints
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		dbErr := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(dbErr), dbErr.Error())
		return false
	}
	return true
}

// parseRunID extracts and validates the run ID path parameter
func (s *Server) parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	runID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return uuid.Nil, false
	}
	return runID, true
}

func runSummary(run *db.Run) RunSummary {
	summary := RunSummary{
		RunID:      run.ID.String(),
		SourceFile: run.SourceFile,
		Variant:    run.Variant,
		Status:     run.Status,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
	}
	if run.CompletedAt != nil {
		summary.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	return summary
}

// handleListRuns returns recent pipeline runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	filters := db.RunFilters{
		Variant: r.URL.Query().Get("variant"),
		Status:  r.URL.Query().Get("status"),
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]RunSummary, 0, len(runs))
	for i := range runs {
		summaries = append(summaries, runSummary(&runs[i]))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": summaries})
}

// handleGetRun returns the status of a single run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, runSummary(run))
}

// handleRunProfile returns the extracted profile artifact for a run
func (s *Server) handleRunProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	content, err := s.db.GetArtifact(r.Context(), runID, db.StepProfile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if content == nil {
		notFound := &ErrArtifactNotFound{RunID: runID, Step: db.StepProfile}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Error().Err(err).Msg("failed to write profile artifact")
	}
}

// handleRunScript returns the generated script for a run as plain text
func (s *Server) handleRunScript(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	text, err := s.db.GetTextArtifact(r.Context(), runID, db.StepScript)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if text == "" {
		notFound := &ErrArtifactNotFound{RunID: runID, Step: db.StepScript}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, text); err != nil {
		log.Error().Err(err).Msg("failed to write script artifact")
	}
}

// handleDeleteRun removes a run and its artifacts
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.db.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
