package testutils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/pkg/models"
)

// PNGHeader is the start of a PNG file, enough for content sniffing.
const PNGHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

// NewTestConfig returns the default config with the stub text source selected.
func NewTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Extraction.Source = config.SourceStub
	return cfg
}

// NewDocument wraps data as an uploaded document.
func NewDocument(filename string, data []byte) models.Document {
	return models.Document{
		Filename: filename,
		Size:     int64(len(data)),
		Reader:   bytes.NewReader(data),
	}
}

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		// If we've reached the top-level directory, the project root is not found.
		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}
