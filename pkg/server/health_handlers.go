package server

import (
	"net/http"
	"time"

	"github.com/getzep/pdffacts/pkg/server/handlertools"
)

const RootMessage = "PDF Facts Analyzer API is running"

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RootHandler godoc
//
//	@Summary	Reports that the API is up
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Router		/ [get]
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlertools.JSONOK(w, MessageResponse{Message: RootMessage}, http.StatusOK)
	}
}

// HealthHandler godoc
//
//	@Summary	Liveness probe with the current server time
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlertools.JSONOK(w, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, http.StatusOK)
	}
}
