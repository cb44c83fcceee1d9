package services

import (
	"encoding/json"
	"io"
	"strings"
)

// ExtractObject parses the text between the first '{' and the last '}' as a JSON
// object. Models like to wrap JSON in prose or code fences, so everything outside
// that span is ignored. Several separate objects in one response end up merged into
// an invalid span and report not found.
func ExtractObject(text string) (map[string]any, bool) {
	span, ok := bracketSpan(text, '{', '}')
	if !ok {
		return nil, false
	}
	var obj map[string]any
	if err := decodeJSON(span, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// ExtractArray is ExtractObject for '[' and ']'.
func ExtractArray(text string) ([]any, bool) {
	span, ok := bracketSpan(text, '[', ']')
	if !ok {
		return nil, false
	}
	var arr []any
	if err := decodeJSON(span, &arr); err != nil || arr == nil {
		return nil, false
	}
	return arr, true
}

func bracketSpan(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// numbers stay json.Number so score coercion sees the literal the model wrote
func decodeJSON(span string, out any) error {
	decoder := json.NewDecoder(strings.NewReader(span))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	// the span must hold exactly one value
	if _, err := decoder.Token(); err != io.EOF {
		return errTrailingJSON
	}
	return nil
}
