package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/pkg/analyzer"
	"github.com/getzep/pdffacts/pkg/models"
)

// analyzeFile runs the analysis pipeline over a local file and writes the response as
// indented JSON to out.
func analyzeFile(ctx context.Context, out io.Writer, path string, pointers []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("error configuring pdffacts: %w", err)
	}
	config.SetLogLevel(cfg)

	appState, err := NewAppState(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if len(pointers) == 0 {
		pointers = analyzer.ParsePointers("")
	}

	response, err := analyzer.New(appState).AnalyzeDocument(ctx, models.Document{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Reader:   f,
	}, pointers)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(response)
}
