// Package normalizer membersihkan output teks LLM dan mengekstrak JSON
// di dalamnya. Model sering membungkus jawaban dengan code fence atau
// teks tambahan walaupun prompt sudah minta JSON murni.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Shape menentukan struktur JSON yang dicari di dalam response.
type Shape int

const (
	ShapeArray Shape = iota
	ShapeObject
)

var (
	ErrNoStructure   = errors.New("no JSON structure found in response")
	ErrMalformedJSON = errors.New("malformed JSON in response")
)

// Penghapusan substring di sini sengaja kasar (literal, case-sensitive):
// konten sah yang mengandung "json" atau backtick ikut terpotong. Trade-off
// yang diterima untuk toleransi terhadap output LLM yang tidak deterministik.
var fenceReplacer = strings.NewReplacer("```", "", "`", "", "json", "")

var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Normalize memotong noise formatting dari raw lalu mengembalikan substring
// JSON pertama yang cocok dengan shape, tervalidasi oleh encoding/json.
func Normalize(raw string, shape Shape) (json.RawMessage, error) {
	clean := fenceReplacer.Replace(strings.TrimSpace(raw))

	var candidate string
	switch shape {
	case ShapeArray:
		candidate = arrayPattern.FindString(clean)
		if candidate == "" {
			return nil, fmt.Errorf("%w: no JSON array", ErrNoStructure)
		}
	case ShapeObject:
		first := strings.Index(clean, "{")
		last := strings.LastIndex(clean, "}")
		if first == -1 || last == -1 || last < first {
			return nil, fmt.Errorf("%w: no JSON object", ErrNoStructure)
		}
		candidate = clean[first : last+1]
	default:
		return nil, fmt.Errorf("unknown shape %d", shape)
	}

	var probe any
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}
	return json.RawMessage(candidate), nil
}

// Array mengekstrak array JSON dari raw dan decode ke []T.
func Array[T any](raw string) ([]T, error) {
	data, err := Normalize(raw, ShapeArray)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}
	return out, nil
}

// Object mengekstrak objek JSON dari raw dan decode ke T.
func Object[T any](raw string) (T, error) {
	var out T
	data, err := Normalize(raw, ShapeObject)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}
	return out, nil
}
