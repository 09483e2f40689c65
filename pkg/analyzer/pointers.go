package analyzer

import (
	"encoding/json"
	"strings"
)

// DefaultPointers are answered when a request carries no usable pointer list.
var DefaultPointers = []string{
	"List all dates",
	"Who signed?",
	"Total contract value?",
}

// ParsePointers decodes a JSON array of strings. An empty value or anything that is not
// a JSON array of strings yields a copy of DefaultPointers. An explicit [] is honoured.
func ParsePointers(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultPointers()
	}

	// decode loosely so that [null] and [1] are rejected rather than zero-valued
	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		log.Debugf("ignoring malformed pointers %q", raw)
		return defaultPointers()
	}

	pointers := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			log.Debugf("ignoring pointers %q: %v is not a string", raw, v)
			return defaultPointers()
		}
		pointers = append(pointers, s)
	}

	return pointers
}

func defaultPointers() []string {
	pointers := make([]string, len(DefaultPointers))
	copy(pointers, DefaultPointers)
	return pointers
}
