package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/fracnet/pkg/errors"
	"github.com/matzehuels/fracnet/pkg/pipeline"
	"github.com/matzehuels/fracnet/pkg/render/sink"
	"github.com/matzehuels/fracnet/pkg/scene"
	"github.com/matzehuels/fracnet/pkg/store"
)

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatVTK:  "text/plain; charset=utf-8",
	pipeline.FormatOBJ:  "text/plain; charset=utf-8",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSaveScene(w http.ResponseWriter, r *http.Request) {
	var sc scene.Scene
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid scene JSON: "+err.Error())
		return
	}
	if sc.Name == "" {
		writeError(w, http.StatusBadRequest, "scene name is required")
		return
	}

	rec, err := s.store.Save(r.Context(), &sc)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// computeRequest carries optional pipeline overrides for compute endpoints.
type computeRequest struct {
	Seed    uint64 `json:"seed,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

// computeResponse is the statistics payload returned by compute endpoints.
type computeResponse struct {
	SceneHash string             `json:"scene_hash"`
	Stats     sink.NetworkStats  `json:"stats"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

func (s *Server) handleComputeScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	var req computeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
			return
		}
	}

	s.compute(w, r, rec.Scene, req)
}

func (s *Server) handleComputeInline(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Scene *scene.Scene `json:"scene"`
		computeRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
		return
	}
	if body.Scene == nil {
		writeError(w, http.StatusBadRequest, "scene is required")
		return
	}

	s.compute(w, r, body.Scene, body.computeRequest)
}

func (s *Server) compute(w http.ResponseWriter, r *http.Request, sc *scene.Scene, req computeRequest) {
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Scene:   sc,
		Seed:    req.Seed,
		Refresh: req.Refresh,
		Formats: []string{pipeline.FormatJSON},
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, computeResponse{
		SceneHash: result.SceneHash,
		Stats:     result.Stats,
		CacheInfo: result.CacheInfo,
	})
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatVTK
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seed, _ := strconv.ParseUint(q.Get("seed"), 10, 64)
	opts := pipeline.Options{
		Scene:        rec.Scene,
		Seed:         seed,
		Refresh:      boolParam(q.Get("refresh")),
		ClipToSystem: boolParam(q.Get("clip")),
		Wells:        boolParam(q.Get("wells")),
		Traces:       boolParam(q.Get("traces")),
		Detailed:     boolParam(q.Get("detailed")),
		Formats:      []string{format},
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func boolParam(v string) bool {
	return v == "1" || v == "true"
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case err == store.ErrNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case err == store.ErrDuplicateName:
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errors.ErrCodeInvalidScene):
		writeError(w, http.StatusBadRequest, errors.UserMessage(err))
	default:
		s.logger.Error("store operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
