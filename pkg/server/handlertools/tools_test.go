package handlertools

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/pdffacts/pkg/models"
)

func TestHandleError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "bad request",
			err:     models.NewBadRequestError("file is required"),
			status:  http.StatusBadRequest,
			message: "bad request: file is required",
		},
		{
			name:    "document parse",
			err:     models.NewDocumentParseError("a.pdf", errors.New("boom")),
			status:  http.StatusUnprocessableEntity,
			message: `unable to parse document "a.pdf": boom`,
		},
		{
			name:    "wrapped max bytes",
			err:     fmt.Errorf("multipart: NextPart: %w", &http.MaxBytesError{Limit: 1024}),
			status:  http.StatusRequestEntityTooLarge,
			message: "request body too large, the limit is 1.0 kB",
		},
		{
			name:    "internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "boom",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleError(rr, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

			var body models.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestJSONOK(t *testing.T) {
	rr := httptest.NewRecorder()
	JSONOK(rr, map[string]string{"message": "ok"}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "ok"}`, rr.Body.String())
}
