package handlertools

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/getzep/pdffacts/internal"
	"github.com/getzep/pdffacts/pkg/models"
)

var log = internal.GetLogger()

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data any) error {
	return json.NewEncoder(w).Encode(data)
}

// JSONOK writes data as a JSON response with the given status code.
func JSONOK(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := EncodeJSON(w, data); err != nil {
		log.Errorf("failed to encode response: %s", err)
	}
}

func JSONError(w http.ResponseWriter, e error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	errorResponse := models.ErrorResponse{
		Message: e.Error(),
	}
	if err := EncodeJSON(w, errorResponse); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleError maps err onto a status code and renders it.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		LogAndRenderError(w, err, http.StatusBadRequest)
	case errors.Is(err, models.ErrDocumentParse):
		LogAndRenderError(w, err, http.StatusUnprocessableEntity)
	default:
		LogAndRenderError(w, err, http.StatusInternalServerError)
	}
}

// LogAndRenderError logs and renders an error response.
func LogAndRenderError(w http.ResponseWriter, err error, status int) {
	// Add descriptive error messages for request body too large
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf(
			"request body too large, the limit is %s",
			humanize.Bytes(uint64(maxBytesErr.Limit)),
		)
	} else if err.Error() == "http: request body too large" {
		status = http.StatusRequestEntityTooLarge
		err = errors.New("request body too large")
	}

	switch {
	case status >= http.StatusInternalServerError:
		log.Error(err)
	case status == http.StatusNotFound:
		// Don't log not found errors
	default:
		log.Warn(err)
	}

	JSONError(w, err, status)
}
