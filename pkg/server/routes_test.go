package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/pkg/analyzer"
	"github.com/getzep/pdffacts/pkg/extractors"
	"github.com/getzep/pdffacts/pkg/models"
	"github.com/getzep/pdffacts/pkg/testutils"
	"github.com/getzep/pdffacts/pkg/textsource"
)

func newAppState(source models.TextSource) *models.AppState {
	return &models.AppState{
		TextSource: source,
		Config:     testutils.NewTestConfig(),
	}
}

// multipartBody builds an upload with an optional file part and extra form fields.
func multipartBody(
	t *testing.T,
	filename string,
	data []byte,
	fields map[string]string,
) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func postAnalyze(
	t *testing.T,
	ts *httptest.Server,
	query string,
	body io.Reader,
	contentType string,
) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/analyze-pdf"+query, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeAnalyzeResponse(t *testing.T, resp *http.Response) models.AnalyzeResponse {
	t.Helper()

	var response models.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func TestRootAndHealth(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewStubSource())))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var message MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
	assert.Equal(t, RootMessage, message.Message)

	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	timestamp, err := time.Parse(time.RFC3339, health.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), timestamp, time.Minute)

	resp, err = http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAnalyzePDF(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewStubSource())))
	defer ts.Close()

	body, contentType := multipartBody(t, "contract.pdf", []byte("%PDF-1.4"), map[string]string{
		"pointers": `["Who signed?", "sample pdf", "describe the weather"]`,
	})
	resp := postAnalyze(t, ts, "", body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	response := decodeAnalyzeResponse(t, resp)
	assert.Equal(t, "contract.pdf", response.Filename)
	require.Len(t, response.Results, 3)

	assert.Equal(t, models.ExtractionResult{
		Pointer:          "Who signed?",
		Snippets:         []string{"John Doe"},
		PageNumbers:      []int{1},
		CharacterOffsets: []models.CharacterOffset{{Start: 20, End: 38}},
		Rationale:        extractors.RationaleSigner,
	}, response.Results[0])

	assert.Equal(t, models.ExtractionResult{
		Pointer:          "sample pdf",
		Snippets:         []string{"Found: sample pdf"},
		PageNumbers:      []int{1},
		CharacterOffsets: []models.CharacterOffset{{Start: 0, End: 10}},
		Rationale:        "Searched for: sample pdf",
	}, response.Results[1])

	assert.Equal(t, models.ExtractionResult{
		Pointer:          "describe the weather",
		Snippets:         []string{},
		PageNumbers:      []int{},
		CharacterOffsets: []models.CharacterOffset{},
		Rationale:        "Searched for: describe the weather",
	}, response.Results[2])
}

func TestAnalyzePDFPointers(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewStubSource())))
	defer ts.Close()

	testCases := []struct {
		name     string
		query    string
		fields   map[string]string
		expected []string
	}{
		{name: "absent", expected: analyzer.DefaultPointers},
		{
			name:     "malformed",
			fields:   map[string]string{"pointers": "not json"},
			expected: analyzer.DefaultPointers,
		},
		{
			name:     "query string",
			query:    `?pointers=` + `%5B%22Who%20signed%3F%22%5D`,
			expected: []string{"Who signed?"},
		},
		{
			name:     "empty list",
			fields:   map[string]string{"pointers": "[]"},
			expected: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartBody(t, "contract.pdf", []byte("%PDF-1.4"), tc.fields)
			resp := postAnalyze(t, ts, tc.query, body, contentType)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			response := decodeAnalyzeResponse(t, resp)
			require.NotNil(t, response.Results)

			pointers := make([]string, 0, len(response.Results))
			for _, result := range response.Results {
				pointers = append(pointers, result.Pointer)
			}
			assert.Equal(t, tc.expected, pointers)
		})
	}
}

func TestAnalyzePDFErrors(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewAutoSource(0))))
	defer ts.Close()

	t.Run("missing file", func(t *testing.T) {
		body, contentType := multipartBody(t, "", nil, map[string]string{"pointers": "[]"})
		resp := postAnalyze(t, ts, "", body, contentType)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not multipart", func(t *testing.T) {
		resp := postAnalyze(t, ts, "", strings.NewReader(`{"file": "x"}`), "application/json")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsupported document", func(t *testing.T) {
		body, contentType := multipartBody(t, "scan.png", []byte(testutils.PNGHeader), nil)
		resp := postAnalyze(t, ts, "", body, contentType)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var errResp models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Contains(t, errResp.Message, textsource.ErrUnsupportedDocument.Error())
	})

	t.Run("text document", func(t *testing.T) {
		body, contentType := multipartBody(t, "notes.txt", []byte("Total: $12.50"), map[string]string{
			"pointers": `["total?"]`,
		})
		resp := postAnalyze(t, ts, "", body, contentType)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		response := decodeAnalyzeResponse(t, resp)
		require.Len(t, response.Results, 1)
		assert.Equal(t, []string{"$12.50"}, response.Results[0].Snippets)
	})
}

func TestAnalyzePDFTooLarge(t *testing.T) {
	appState := newAppState(textsource.NewStubSource())
	appState.Config.Server.MaxRequestSize = 1024
	router := setupRouter(appState)

	body, contentType := multipartBody(t, "big.pdf", bytes.Repeat([]byte("a"), 4096), nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze-pdf", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestAnalyzePDFTooManyPointers(t *testing.T) {
	appState := newAppState(textsource.NewStubSource())
	appState.Config.Analyzer.MaxPointers = 1
	ts := httptest.NewServer(setupRouter(appState))
	defer ts.Close()

	body, contentType := multipartBody(t, "contract.pdf", []byte("%PDF-1.4"), nil)
	resp := postAnalyze(t, ts, "", body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewStubSource())))
	defer ts.Close()

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodConnect,
		http.MethodOptions,
		http.MethodTrace,
	}
	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodOptions, ts.URL+"/analyze-pdf", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", "https://example.org")
			req.Header.Set("Access-Control-Request-Method", method)
			req.Header.Set("Access-Control-Request-Headers", "content-type")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "https://example.org", resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
			if method != http.MethodOptions {
				assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), method)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	ts := httptest.NewServer(setupRouter(newAppState(textsource.NewStubSource())))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-123")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))
}

func TestSendVersion(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := SendVersion(nextHandler)

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get(versionHeader) != config.VersionString {
		t.Errorf("handler returned wrong version header: got %v want %v",
			rr.Header().Get(versionHeader), config.VersionString)
	}
}

func TestCreate(t *testing.T) {
	appState := newAppState(textsource.NewStubSource())
	appState.Config.Server.Host = "127.0.0.1"
	appState.Config.Server.Port = 9000

	srv := Create(appState)
	assert.Equal(t, "127.0.0.1:9000", srv.Addr)
	assert.Equal(t, ReadHeaderTimeout, srv.ReadHeaderTimeout)
}
