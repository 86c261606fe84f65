package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/ainkit/ainviz/pkg/errors"
	"github.com/ainkit/ainviz/pkg/graphio"
	"github.com/ainkit/ainviz/pkg/pipeline"
	"github.com/ainkit/ainviz/pkg/store"
)

// createRequest is the POST /v1/graphs body.
type createRequest struct {
	Collection graphio.Collection `json:"collection"`
	Precision  int                `json:"precision,omitempty"`
	Strict     bool               `json:"strict,omitempty"`
}

// createResponse is the POST /v1/graphs response.
type createResponse struct {
	ID        string               `json:"id"`
	GraphHash string               `json:"graph_hash"`
	Graph     *graphio.GraphDoc    `json:"graph"`
	Timeline  *graphio.TimelineDoc `json:"timeline"`
	Nodes     int                  `json:"nodes"`
	Edges     int                  `json:"edges"`
	Levels    int                  `json:"levels"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	// Both views are computed up front so the SVG endpoints serve from the
	// stored document without re-running the pipeline options negotiation.
	opts := pipeline.Options{
		VizType:   pipeline.VizTypeTimeline,
		Formats:   []string{pipeline.FormatJSON},
		Precision: req.Precision,
		Strict:    req.Strict,
	}
	result, err := s.runner.Execute(r.Context(), req.Collection, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := store.NewDocument(req.Collection, result.GraphDoc, result.TimelineDoc)
	if err := s.store.Insert(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, createResponse{
		ID:        doc.ID,
		GraphHash: result.GraphHash,
		Graph:     result.GraphDoc,
		Timeline:  result.TimelineDoc,
		Nodes:     result.Stats.NodeCount,
		Edges:     result.Stats.EdgeCount,
		Levels:    result.Stats.LevelCount,
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

// handleAddNode rejects incremental mutation. Stored graphs are immutable;
// clients submit a new collection instead.
func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeError(w, r, apperrors.New(apperrors.ErrCodeUnsupported,
		"stored graphs are immutable; submit a new collection"))
}

func (s *Server) handleGraphSVG(w http.ResponseWriter, r *http.Request) {
	s.renderSVG(w, r, pipeline.VizTypeGraph)
}

func (s *Server) handleTimelineSVG(w http.ResponseWriter, r *http.Request) {
	s.renderSVG(w, r, pipeline.VizTypeTimeline)
}

func (s *Server) renderSVG(w http.ResponseWriter, r *http.Request, vizType string) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		VizType: vizType,
		Formats: []string{pipeline.FormatSVG},
	}
	result, err := s.runner.Execute(r.Context(), doc.Collection, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusForCode maps structured error codes to HTTP statuses.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidVizType,
		apperrors.ErrCodeInvalidPrecision,
		apperrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := statusForCode(code)

	if status >= 500 {
		s.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()))
	}

	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
