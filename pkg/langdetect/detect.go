// Package langdetect infers fence language tags for code blocks that carry
// no info string. It combines a small signature table for the languages that
// commonly appear untagged in Markdown with go-enry's classifier as a
// fallback.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// FallbackLang is returned when no detection strategy is confident.
const FallbackLang = "text"

// signature ties a fence tag to a predicate over the snippet.
type signature struct {
	lang  string
	match func(trimmed []byte) bool
}

// signatures are checked in order; the first match wins. Predicates look for
// markers that are near-unambiguous in snippet-sized input.
//
//nolint:gochecknoglobals // Read-only lookup table.
var signatures = []signature{
	{"go", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("package ")) || bytes.Contains(b, []byte("func main()"))
	}},
	{"python", func(b []byte) bool {
		return bytes.Contains(b, []byte("def ")) && bytes.Contains(b, []byte("):")) ||
			bytes.Contains(b, []byte("__main__"))
	}},
	{"rust", func(b []byte) bool {
		return bytes.Contains(b, []byte("fn main()")) || bytes.Contains(b, []byte("println!")) ||
			bytes.Contains(b, []byte("let mut "))
	}},
	{"html", func(b []byte) bool {
		lower := bytes.ToLower(b)
		return bytes.Contains(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
	}},
	{"json", func(b []byte) bool {
		return (bytes.HasPrefix(b, []byte("{")) || bytes.HasPrefix(b, []byte("["))) &&
			bytes.Contains(b, []byte(`"`))
	}},
	{"dockerfile", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("FROM ")) &&
			(bytes.Contains(b, []byte("\nRUN ")) || bytes.Contains(b, []byte("\nCOPY ")))
	}},
	{"sql", func(b []byte) bool {
		upper := bytes.ToUpper(b)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "CREATE TABLE"} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
}

// classifierCandidates bound the fallback classifier to languages that make
// sense as fence tags.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS",
}

// Detect returns the fence language tag for code content, or FallbackLang
// when nothing is confident enough.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return FallbackLang
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, sig := range signatures {
		if sig.match(trimmed) {
			return sig.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return FallbackLang
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
