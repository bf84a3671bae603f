package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/workspace"
)

// completionRequest is the demo's reduced textDocument/completion params: a
// file path and a byte offset standing in for an LSP Position, since
// converting line/column to a byte offset (and the surrounding JSON-RPC
// framing) is out of scope here.
type completionRequest struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
}

type completionResponse struct {
	Items []workspace.CompletionItem `json:"items"`
	Error string                     `json:"error,omitempty"`
}

// runLSP decodes one completionRequest from stdin, loads the named file
// into a fresh Workspace, and writes the resulting CompletionItem list to
// stdout as JSON. It demonstrates the textDocument/completion boundary
// without implementing the wire-level JSON-RPC transport loop (Non-goal):
// a real server would keep one long-lived Workspace across many requests
// and route didChange notifications to Workspace.Update.
func runLSP(configPath string) int {
	enc := json.NewEncoder(os.Stdout)

	var req completionRequest
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		enc.Encode(completionResponse{Error: fmt.Sprintf("decoding request: %v", err)})
		return 1
	}
	if req.Path == "" {
		enc.Encode(completionResponse{Error: "request is missing \"path\""})
		return 1
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		enc.Encode(completionResponse{Error: err.Error()})
		return 1
	}

	abs, err := filepath.Abs(req.Path)
	if err != nil {
		enc.Encode(completionResponse{Error: err.Error()})
		return 1
	}
	dir := filepath.Dir(abs)
	cfg.SearchPaths = append(cfg.SearchPaths, dir)
	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))

	ws := workspace.New(cfg, stubParse)
	defer ws.Close()
	if err := ws.Initialize([]sir.ModulePath{sir.NewModulePath(name)}); err != nil {
		enc.Encode(completionResponse{Error: err.Error()})
		return 1
	}

	items, err := ws.Complete(abs, req.Offset)
	if err != nil {
		enc.Encode(completionResponse{Error: err.Error()})
		return 1
	}

	if err := enc.Encode(completionResponse{Items: items}); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}
	return 0
}
