// Package report implements the compiler's error taxonomy: a
// Report carries a primary message with source location plus zero or more
// notes, is accumulated (never thrown) by a ReportManager, and latches a
// validity flag that gates SSA generation.
//
// Report, ReportError, AsReport, and WrapReport form a small Go-error
// bridge so Report values can flow through normal error-returning code
// while still carrying structured diagnostic fields (redefinition,
// symbol_not_found, module_not_found, type_mismatch, cant_coerce_*_literal,
// def_cycle, ...).
package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/banjo-lang/banjoc/internal/ast"
)

// Type is the severity of a Report.
type Type int

const (
	Error Type = iota
	Warning
)

func (t Type) String() string {
	if t == Warning {
		return "warning"
	}
	return "error"
}

// Note is a secondary annotation attached to a Report, with its own source
// location (e.g. "previous definition here" on a redefinition report).
type Note struct {
	Message string    `json:"message"`
	Span    *ast.Span `json:"span,omitempty"`
}

// Report is the canonical structured diagnostic type.
type Report struct {
	Schema  string         `json:"schema"`
	Type    Type           `json:"-"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Notes   []Note         `json:"notes,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

const schemaV1 = "banjoc.report/v1"

// ReportError wraps a Report as an error so it survives errors.As unwrapping.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", e.Rep.Code, e.Rep.Message)
}

// AsReport extracts a *Report from an error chain, if any.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps r as an error.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report deterministically (stdlib encoding/json already
// emits struct fields in declaration order, which is sufficient determinism
// for this single-struct shape; no third-party JSON library in the corpus
// does anything beyond what encoding/json already provides here).
func (r *Report) ToJSON(indent bool) (string, error) {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Builder forces a caller to set a message before producing a Report: a
// diagnostic with no text is always a bug in the caller, never a condition
// worth reporting to a user.
type Builder struct {
	typ     Type
	code    string
	phase   string
	message string
	hasMsg  bool
	span    *ast.Span
	notes   []Note
	data    map[string]any
}

// New starts a Builder for the given phase and error code.
func New(typ Type, phase, code string) *Builder {
	return &Builder{typ: typ, phase: phase, code: code}
}

func (b *Builder) Message(format string, args ...any) *Builder {
	b.message = fmt.Sprintf(format, args...)
	b.hasMsg = true
	return b
}

func (b *Builder) At(span ast.Span) *Builder {
	s := span
	b.span = &s
	return b
}

func (b *Builder) Note(message string, span *ast.Span) *Builder {
	b.notes = append(b.notes, Note{Message: message, Span: span})
	return b
}

func (b *Builder) WithData(key string, value any) *Builder {
	if b.data == nil {
		b.data = map[string]any{}
	}
	b.data[key] = value
	return b
}

// Build panics if Message was never called: a Report with no message is a
// programming error in the analyzer, not a user-facing condition.
func (b *Builder) Build() *Report {
	if !b.hasMsg {
		panic("report: Build called without a Message")
	}
	return &Report{
		Schema:  schemaV1,
		Type:    b.typ,
		Code:    b.code,
		Phase:   b.phase,
		Message: b.message,
		Span:    b.span,
		Notes:   b.notes,
		Data:    b.data,
	}
}
