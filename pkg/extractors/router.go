package extractors

import (
	"strings"

	"github.com/getzep/pdffacts/pkg/models"
)

// Category is the kind of fact a pointer asks for.
type Category string

const (
	CategoryDate    Category = "date"
	CategorySigner  Category = "signer"
	CategoryAmount  Category = "amount"
	CategoryGeneric Category = "generic"
)

const (
	RationaleDate    = "Found dates in the document"
	RationaleSigner  = "Looked for signature information"
	RationaleAmount  = "Searched for currency amounts"
	rationaleGeneric = "Searched for: "
)

type route struct {
	category  Category
	keywords  []string
	extractor models.Extractor
	rationale string
}

// matches reports whether the lowercased pointer contains any of the route's keywords.
func (r route) matches(pointer string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(pointer, kw) {
			return true
		}
	}
	return false
}

// Router classifies pointers by keyword containment. Routes are checked in order and the
// first hit wins, so a pointer mentioning both "date" and "sign" goes to the date extractor.
// A pointer no route claims falls back to a substring search.
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{
		routes: []route{
			{
				category:  CategoryDate,
				keywords:  []string{"date", "time"},
				extractor: NewDateExtractor(),
				rationale: RationaleDate,
			},
			{
				category:  CategorySigner,
				keywords:  []string{"sign", "who", "signed"},
				extractor: NewSignerExtractor(),
				rationale: RationaleSigner,
			},
			{
				category:  CategoryAmount,
				keywords:  []string{"amount", "price", "cost", "value", "total"},
				extractor: NewCurrencyExtractor(),
				rationale: RationaleAmount,
			},
		},
	}
}

// Categories lists the keyword categories in priority order, followed by the fallback.
func (r *Router) Categories() []Category {
	categories := make([]Category, 0, len(r.routes)+1)
	for _, rt := range r.routes {
		categories = append(categories, rt.category)
	}
	return append(categories, CategoryGeneric)
}

// Classify returns the category a pointer is routed to.
func (r *Router) Classify(pointer string) Category {
	if rt, ok := r.lookup(pointer); ok {
		return rt.category
	}
	return CategoryGeneric
}

func (r *Router) lookup(pointer string) (route, bool) {
	lowered := strings.ToLower(pointer)
	for _, rt := range r.routes {
		if rt.matches(lowered) {
			return rt, true
		}
	}
	return route{}, false
}

// Process answers a single pointer against the document pages. It never fails; a pointer
// without matches yields empty sequences and the rationale of its category.
func (r *Router) Process(pointer string, pages []models.PageBlock) models.ExtractionResult {
	rt, ok := r.lookup(pointer)
	if !ok {
		term := SearchTerm(pointer)
		rt = route{
			category:  CategoryGeneric,
			extractor: NewSubstringExtractor(term),
			rationale: rationaleGeneric + term,
		}
	}

	matches := rt.extractor.Extract(pages)
	log.Debugf("pointer %q routed to %s extractor: %d matches", pointer, rt.category, len(matches))

	return models.NewExtractionResult(pointer, matches, rt.rationale)
}
