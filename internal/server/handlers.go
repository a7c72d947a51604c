package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/geometry"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/gridarea"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/pipeline"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/schema"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// readSchema decodes the request body as a schema document.
func readSchema(r *http.Request) (*schema.Schema, error) {
	return schema.Read(r.Body)
}

// queryOptions builds pipeline options from the request query string.
// Recognized parameters: normalize, policy, refresh.
func queryOptions(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	normalize, _ := strconv.ParseBool(q.Get("normalize"))
	refresh, _ := strconv.ParseBool(q.Get("refresh"))
	return pipeline.Options{
		Normalize: normalize,
		Policy:    q.Get("policy"),
		Refresh:   refresh,
	}
}

// handleValidate runs the pipeline and returns the validation report.
// With ?normalize=true the schema is cascaded first, which is what the
// builder's export path uses.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc, err := readSchema(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := queryOptions(r)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.logger.Error("validate failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"schema_hash": result.SchemaHash,
		"validation":  result.Validation,
		"groups":      result.Groups,
	})
}

// handleNormalize returns the schema after the breakpoint cascade.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	doc, err := readSchema(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := queryOptions(r)
	normalized, err := s.runner.Normalize(r.Context(), doc, opts)
	if err != nil {
		s.logger.Error("normalize failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, normalized)
}

// areasToRectsRequest is the body for POST /api/v1/convert/areas-to-rects.
type areasToRectsRequest struct {
	Areas [][]string `json:"areas"`
}

func (s *Server) handleAreasToRects(w http.ResponseWriter, r *http.Request) {
	var req areasToRectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rects": gridarea.AreasToRects(req.Areas),
	})
}

// rectsToAreasRequest is the body for POST /api/v1/convert/rects-to-areas.
type rectsToAreasRequest struct {
	Rects []gridarea.Placement `json:"rects"`
	Cols  int                  `json:"cols"`
	Rows  int                  `json:"rows"`
}

func (s *Server) handleRectsToAreas(w http.ResponseWriter, r *http.Request) {
	var req rectsToAreasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Cols <= 0 || req.Rows <= 0 {
		writeError(w, http.StatusBadRequest, "cols and rows must be positive")
		return
	}
	for _, p := range req.Rects {
		if !geometry.InBounds(p.Rect, req.Cols, req.Rows) {
			s.logger.Warn("rect exceeds grid, clipping", "id", p.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"areas": gridarea.RectsToAreas(req.Rects, req.Cols, req.Rows),
	})
}

// handleGroups resolves link groups under the requested policy.
func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	doc, err := readSchema(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := queryOptions(r)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"policy": opts.LinkPolicy().String(),
		"groups": s.runner.Groups(doc, opts),
	})
}

// handleGraph renders the link graph. ?format=dot returns text, svg returns
// the rendered image.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	doc, err := readSchema(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatDOT
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := queryOptions(r)
	opts.Formats = []string{format}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	artifacts, err := s.runner.Render(r.Context(), doc, opts)
	if err != nil {
		s.logger.Error("graph render failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	case pipeline.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	default:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}
