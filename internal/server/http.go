package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/groblegark/waveplan/internal/model"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *PlannerServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/snapshots", s.handleIngestSnapshot)
	mux.HandleFunc("GET /v1/model", s.handleGetModel)
	mux.HandleFunc("GET /v1/model/ready", s.handleGetReady)
	mux.HandleFunc("GET /v1/model/critical-paths", s.handleGetCriticalPaths)
	mux.HandleFunc("GET /v1/model/phases", s.handleGetPhases)
	mux.HandleFunc("GET /v1/plan", s.handleGetPlan)
	mux.HandleFunc("GET /v1/builds", s.handleListBuilds)
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	return AuthMiddleware(authToken, RecoveryMiddleware(LoggingMiddleware(mux)))
}

// filterFromQuery builds an issue filter from request query parameters.
// An invalid priority value is reported to the caller.
func filterFromQuery(r *http.Request) (model.Filter, error) {
	var f model.Filter
	if v := r.URL.Query().Get("priority"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.Priority = &p
	}
	f.Assignee = r.URL.Query().Get("assignee")
	f.Label = r.URL.Query().Get("label")
	return f, nil
}

// handleIngestSnapshot handles POST /v1/snapshots.
func (s *PlannerServer) handleIngestSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap model.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot payload: "+err.Error())
		return
	}

	rec, build, err := s.ingest(r.Context(), &snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "ingest snapshot: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"snapshot_id": rec.ID,
		"build_id":    build.ID,
		"issue_count": build.IssueCount,
		"edge_count":  build.EdgeCount,
		"ready_count": build.ReadyCount,
		"phase_count": build.PhaseCount,
	})
}

// handleGetModel handles GET /v1/model.
func (s *PlannerServer) handleGetModel(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid priority: "+err.Error())
		return
	}

	_, m, err := s.latestModel(r.Context(), f)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "no snapshot ingested")
			return
		}
		writeError(w, http.StatusInternalServerError, "build model: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// handleGetReady handles GET /v1/model/ready.
func (s *PlannerServer) handleGetReady(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid priority: "+err.Error())
		return
	}

	_, m, err := s.latestModel(r.Context(), f)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "no snapshot ingested")
			return
		}
		writeError(w, http.StatusInternalServerError, "build model: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ready_items": m.ReadyItems})
}

// handleGetCriticalPaths handles GET /v1/model/critical-paths.
func (s *PlannerServer) handleGetCriticalPaths(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid priority: "+err.Error())
		return
	}

	_, m, err := s.latestModel(r.Context(), f)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "no snapshot ingested")
			return
		}
		writeError(w, http.StatusInternalServerError, "build model: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"critical_paths": m.CriticalPaths})
}

// handleGetPhases handles GET /v1/model/phases.
func (s *PlannerServer) handleGetPhases(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid priority: "+err.Error())
		return
	}

	_, m, err := s.latestModel(r.Context(), f)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "no snapshot ingested")
			return
		}
		writeError(w, http.StatusInternalServerError, "build model: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"parallel_groups": m.ParallelGroups})
}

// handleGetPlan handles GET /v1/plan.
func (s *PlannerServer) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid priority: "+err.Error())
		return
	}

	capacity := s.defaultCapacity
	if v := r.URL.Query().Get("capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			// Unparseable capacity degrades to serial planning rather
			// than failing the request.
			n = 1
		}
		capacity = n
	}

	rec, err := s.buildPlan(r.Context(), capacity, f)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "no snapshot ingested")
			return
		}
		writeError(w, http.StatusInternalServerError, "build plan: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"plan_id":     rec.ID,
		"snapshot_id": rec.SnapshotID,
		"schedule":    rec.Schedule,
	})
}

// handleListBuilds handles GET /v1/builds.
func (s *PlannerServer) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit: "+err.Error())
			return
		}
		limit = n
	}

	builds, err := s.store.ListBuilds(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list builds: "+err.Error())
		return
	}
	if builds == nil {
		builds = []*model.Build{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"builds": builds})
}

// handleHealth handles GET /v1/health.
func (s *PlannerServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
