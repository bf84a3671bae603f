package main

import "github.com/banjo-lang/banjoc/internal/ast"

// stubParse stands in for the lexer/parser this repository does not
// implement (out of scope): it hands back an empty file rather than
// failing outright, so the rest of the pipeline (module loading, semantic
// analysis, diagnostics) can still be exercised end-to-end against real
// files on disk.
func stubParse(path string, content []byte) (*ast.File, error) {
	return &ast.File{Path: path}, nil
}
