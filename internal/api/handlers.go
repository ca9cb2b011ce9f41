package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nauticalab/paramfile/internal/log"
	"github.com/nauticalab/paramfile/internal/params"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// store is the loaded parameter store; handlers only read from it
	store *params.Store
	// source is the parameter file the store was loaded from
	source string
	// describe returns the schema description of a parameter, may be nil
	describe func(name string) string
	// version is the application version
	version string
	// gitCommit is the git commit hash of the build
	gitCommit string
	// buildTime is the time when the application was built
	buildTime string
	// goVersion is the Go version used to build the application
	goVersion string
}

// NewHandler creates a new Handler instance
func NewHandler(config ServerConfig) *Handler {
	return &Handler{
		store:     config.Store,
		source:    config.Source,
		describe:  config.Describe,
		version:   config.Version,
		gitCommit: config.GitCommit,
		buildTime: config.BuildTime,
		goVersion: config.GoVersion,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// ListParameters handles GET /api/v1/parameters
func (h *Handler) ListParameters(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Snapshot()

	resp := ListParametersResponse{
		Source:     h.source,
		Parameters: make([]ParameterResponse, 0, len(snapshot)),
	}
	for _, p := range snapshot {
		resp.Parameters = append(resp.Parameters, convertParameter(p, h.describe))
	}
	resp.Count = len(resp.Parameters)

	respondSuccess(w, resp)
}

// GetParameter handles GET /api/v1/parameters/{name}
// Unknown names map to 404, parameters without a value to 409.
func (h *Handler) GetParameter(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	value, err := h.store.Get(name)
	switch {
	case errors.Is(err, params.ErrUnknownParameter):
		respondNotFound(w, fmt.Sprintf("Parameter %q is not registered", name))
		return
	case errors.Is(err, params.ErrNoValue):
		respondConflict(w, fmt.Sprintf("Parameter %q has no value", name))
		return
	case err != nil:
		logger := log.WithComponent("api")
		logger.Error().Err(err).Str("parameter", name).Msg("error reading parameter")
		respondInternalError(w, "Failed to read parameter")
		return
	}

	respondSuccess(w, convertParameter(params.Parameter{Name: name, Value: value, Set: true}, h.describe))
}

// Dump handles GET /api/v1/dump and returns the plain-text parameter listing
func (h *Handler) Dump(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.store.Dump(&buf); err != nil {
		respondInternalError(w, "Failed to dump parameters")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
