// Package analyzer answers a list of pointers against the pages of a document.
package analyzer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/internal"
	"github.com/getzep/pdffacts/pkg/extractors"
	"github.com/getzep/pdffacts/pkg/models"
)

var log = internal.GetLogger()

var tracer = otel.Tracer("github.com/getzep/pdffacts/pkg/analyzer")

var validate = validator.New()

type Analyzer struct {
	source      models.TextSource
	router      *extractors.Router
	concurrency int
	maxPointers int
}

// New creates an Analyzer from the application's text source and analyzer config.
func New(appState *models.AppState) *Analyzer {
	return NewAnalyzer(appState.TextSource, appState.Config.Analyzer)
}

func NewAnalyzer(source models.TextSource, cfg config.AnalyzerConfig) *Analyzer {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Analyzer{
		source:      source,
		router:      extractors.NewRouter(),
		concurrency: concurrency,
		maxPointers: cfg.MaxPointers,
	}
}

// AnalyzeDocument extracts the document's pages and answers every pointer against them.
// A document that cannot be parsed fails the whole request.
func (a *Analyzer) AnalyzeDocument(
	ctx context.Context,
	doc models.Document,
	pointers []string,
) (models.AnalyzeResponse, error) {
	ctx, span := tracer.Start(ctx, "AnalyzeDocument", trace.WithAttributes(
		attribute.String("document.filename", doc.Filename),
		attribute.Int64("document.size", doc.Size),
	))
	defer span.End()

	if err := a.checkPointerCount(pointers); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.AnalyzeResponse{}, err
	}

	pages, err := a.source.Extract(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "text extraction failed")
		return models.AnalyzeResponse{}, err
	}

	results, err := a.Analyze(ctx, pages, pointers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		return models.AnalyzeResponse{}, err
	}

	log.WithFields(logrus.Fields{
		"filename": doc.Filename,
		"pages":    len(pages),
		"pointers": len(pointers),
	}).Info("analyzed document")

	return models.AnalyzeResponse{
		Filename: doc.Filename,
		Results:  results,
	}, nil
}

// Analyze routes each pointer to its extractor. Pointers are processed concurrently, up to
// the configured limit, and the results keep the order of the pointers.
func (a *Analyzer) Analyze(
	ctx context.Context,
	pages []models.PageBlock,
	pointers []string,
) ([]models.ExtractionResult, error) {
	ctx, span := tracer.Start(ctx, "Analyze", trace.WithAttributes(
		attribute.Int("pages", len(pages)),
		attribute.Int("pointers", len(pointers)),
	))
	defer span.End()

	results := make([]models.ExtractionResult, len(pointers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, pointer := range pointers {
		i, pointer := i, pointer
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.router.Process(pointer, pages)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	return results, nil
}

func (a *Analyzer) checkPointerCount(pointers []string) error {
	if a.maxPointers <= 0 {
		return nil
	}
	if err := validate.Var(pointers, "max="+strconv.Itoa(a.maxPointers)); err != nil {
		return models.NewBadRequestError(
			fmt.Sprintf("too many pointers: got %d, limit is %d", len(pointers), a.maxPointers),
		)
	}
	return nil
}
