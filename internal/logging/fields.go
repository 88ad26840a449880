// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Mode switch fields.
	FieldMode     = "mode"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldCursor   = "cursor"
	FieldScroll   = "scroll"
	FieldDuration = "duration"

	// Mapping fields.
	FieldOffset      = "offset"
	FieldRawLen      = "raw_len"
	FieldRenderedLen = "rendered_len"
	FieldLine        = "line"
	FieldColumn      = "column"

	// Output fields.
	FieldFormat = "format"
	FieldLang   = "lang"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
