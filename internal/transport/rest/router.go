// Package rest exposes the course service over HTTP.
package rest

import "net/http"

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(resources *ResourceHandler, assessments *AssessmentHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/courses/{courseId}/resources", resources.List)
	mux.HandleFunc("PUT /api/v1/courses/{courseId}/resources", resources.Replace)
	mux.HandleFunc("GET /api/v1/assessments/course/{courseId}", assessments.List)
	mux.HandleFunc("PUT /api/v1/assessments/course/{courseId}", assessments.Replace)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
