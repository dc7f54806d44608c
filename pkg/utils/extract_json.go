package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Completion models are asked for bare JSON but still wrap it in markdown
// fences or surrounding prose often enough that every generator shares one
// extraction policy: direct parse, then fence-stripped, then the first
// bracketed span found in the text.

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")
	arraySpanRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectSpanRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON recovers a JSON value from raw completion text into out.
// out decides the accepted shape: decoding an object into a slice target
// fails, so callers expecting an array get the array-or-error contract.
func ExtractJSON(raw string, out any) error {
	trimmed := strings.TrimSpace(raw)

	candidates := []string{trimmed}
	if stripped := strings.TrimSpace(fenceCloseRe.ReplaceAllString(fenceOpenRe.ReplaceAllString(trimmed, ""), "")); stripped != trimmed {
		candidates = append(candidates, stripped)
	}
	if span := arraySpanRe.FindString(trimmed); span != "" {
		candidates = append(candidates, span)
	}
	if span := objectSpanRe.FindString(trimmed); span != "" {
		candidates = append(candidates, span)
	}

	var lastErr error
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("empty completion text")
	}
	return fmt.Errorf("no JSON value found in completion: %w", lastErr)
}

// CoerceString normalizes a loosely-typed model field to a string.
func CoerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// CoerceFloat normalizes a loosely-typed model field to a number,
// defaulting to 0 when the value is missing or non-numeric.
func CoerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// CoerceStrings normalizes a loosely-typed model field to a string list,
// returning an empty list when the value is not an array.
func CoerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, CoerceString(item))
	}
	return out
}
