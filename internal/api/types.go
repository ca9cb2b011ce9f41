package api

import (
	"time"

	"github.com/nauticalab/paramfile/internal/params"
)

// ParameterResponse represents a single parameter in API responses
type ParameterResponse struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	Set         bool   `json:"set"`
	Description string `json:"description,omitempty"`
}

// ListParametersResponse represents the response for listing parameters
type ListParametersResponse struct {
	Source     string              `json:"source,omitempty"`
	Parameters []ParameterResponse `json:"parameters"`
	Count      int                 `json:"count"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse represents the version information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// convertParameter maps a store entry to its API representation
func convertParameter(p params.Parameter, describe func(string) string) ParameterResponse {
	resp := ParameterResponse{
		Name:  p.Name,
		Value: p.Value,
		Set:   p.Set,
	}
	if describe != nil {
		resp.Description = describe(p.Name)
	}
	return resp
}
