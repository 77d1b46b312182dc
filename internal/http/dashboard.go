package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkumar312/movie-ratings-dashboard/internal/charts"
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
	"github.com/mkumar312/movie-ratings-dashboard/internal/report"
)

const maxBins = 200

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type movieListResponse struct {
	Items []domain.Movie `json:"items"`
	Total int            `json:"total"`
}

// requestFilter bundles the decoded filter state and report parameters of one
// request. Defaults come from the loaded dataset's full span.
type requestFilter struct {
	Filter domain.Filter
	Params report.Params
}

func buildRequestFilter(query url.Values, defaults domain.Filter) (requestFilter, error) {
	rf := requestFilter{Filter: defaults}

	if val := strings.TrimSpace(query.Get("genre")); val != "" {
		rf.Filter.Genre = val
	}
	if val := strings.TrimSpace(query.Get("yearFrom")); val != "" {
		year, err := strconv.Atoi(val)
		if err != nil {
			return rf, fmt.Errorf("invalid yearFrom value")
		}
		rf.Filter.YearFrom = year
	}
	if val := strings.TrimSpace(query.Get("yearTo")); val != "" {
		year, err := strconv.Atoi(val)
		if err != nil {
			return rf, fmt.Errorf("invalid yearTo value")
		}
		rf.Filter.YearTo = year
	}
	if val := strings.TrimSpace(query.Get("jointKind")); val != "" {
		kind := charts.JointKind(val)
		if !charts.ValidJointKind(kind) {
			return rf, fmt.Errorf("invalid jointKind value")
		}
		rf.Params.JointKind = kind
	}
	if val := strings.TrimSpace(query.Get("bins")); val != "" {
		bins, err := strconv.Atoi(val)
		if err != nil || bins <= 0 {
			return rf, fmt.Errorf("invalid bins value")
		}
		if bins > maxBins {
			bins = maxBins
		}
		rf.Params.Bins = bins
	}
	if val := strings.TrimSpace(query.Get("limit")); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil || limit <= 0 {
			return rf, fmt.Errorf("invalid limit value")
		}
		rf.Params.PreviewLimit = limit
	}
	return rf, nil
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.gen.Meta())
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	rf, err := buildRequestFilter(r.URL.Query(), s.gen.FullSpan())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	items := s.gen.Preview(rf.Filter, rf.Params.PreviewLimit)
	if items == nil {
		items = []domain.Movie{}
	}
	s.respondJSON(w, http.StatusOK, movieListResponse{Items: items, Total: len(items)})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rf, err := buildRequestFilter(r.URL.Query(), s.gen.FullSpan())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, s.gen.Build(rf.Filter, rf.Params))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rf, err := buildRequestFilter(r.URL.Query(), s.gen.FullSpan())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	spec, err := s.gen.Chart(name, rf.Filter, rf.Params)
	if err != nil {
		if errors.Is(err, report.ErrUnknownChart) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("build chart %s error: %v", name, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build chart")
		return
	}
	s.respondJSON(w, http.StatusOK, spec)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
