package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"propfilter/adapters/excel"
	"propfilter/app"
	"propfilter/domain/project"
	"propfilter/internal/errors"
	"propfilter/internal/logger"
)

// maxBodyBytes bounds filter request bodies
const maxBodyBytes = 1 << 20

// ProjectHandler serves project options, filters and exports
type ProjectHandler struct {
	service *app.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service *app.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type filterResponse struct {
	Count    int                     `json:"count"`
	Records  []project.ProjectRecord `json:"records"`
	Digest   string                  `json:"digest"`
	LoadedAt string                  `json:"loaded_at"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Options returns the selectable values per field
func (h *ProjectHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.Options(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// Filter applies the JSON criteria body
func (h *ProjectHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req app.FilterRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("invalid filter body: %w", err)))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	outcome, err := h.service.Filter(r.Context(), req.Criteria())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, filterResponse{
		Count:    outcome.Count,
		Records:  outcome.Records,
		Digest:   outcome.Digest,
		LoadedAt: outcome.LoadedAt.UTC().Format(time.RFC3339),
	})
}

// Export downloads the records matching the query string criteria
func (h *ProjectHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := app.FilterRequest{
		Developers:   q["developer"],
		Areas:        q["area"],
		DeliverDates: q["date"],
		Format:       q.Get("format"),
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	export, err := h.service.Export(r.Context(), req.Criteria(), req.Format, &buf)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", excel.ContentType(export.Format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("X-Export-ID", export.ID)
	w.Header().Set("X-Record-Count", fmt.Sprint(export.Count))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Reload rebuilds the table from the source file
func (h *ProjectHandler) Reload(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Reload(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects": len(table.Records),
		"digest":   table.Digest,
	})
}

// writeJSON encodes before writing the status so an encode failure becomes a 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Named("api").Error().Err(err).Msg("failed to encode response")
		http.Error(w, `{"error":"failed to encode response","code":"INTERNAL_ERROR"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	logger.C(r.Context()).Error().Err(err).Str("code", code).Msg("request failed")
	writeJSON(w, errors.HTTPStatus(err), errorResponse{Error: err.Error(), Code: code})
}
