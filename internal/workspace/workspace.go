// Package workspace is the editor-facing layer: it keeps a live sir.Unit in
// sync with on-disk edits, maintains a definition/reference Index rebuilt
// from INDEXING-mode analysis, and answers completion requests by running a
// throwaway COMPLETION-mode analysis and feeding the result to Engine.
package workspace

import (
	"fmt"
	"runtime"

	"github.com/banjo-lang/banjoc/internal/config"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sema"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/support/parallel"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

// File pairs a workspace-tracked module path with the absolute filesystem
// path it was loaded from, so a completion request addressed by fs path
// can find its module and vice versa.
type File struct {
	Path       string // absolute filesystem path, the LSP-addressable key
	ModulePath sir.ModulePath
}

// Workspace is one editor session's worth of compiler state: a module
// manager, the modules it has loaded, and the Index built from the most
// recent INDEXING pass.
type Workspace struct {
	Cfg *config.Config
	Mgr *symtab.ModuleManager

	files  map[string]*File // keyed by absolute fs path
	byPath map[string]*File // keyed by sir.ModulePath.Key()
	index  *Index
	pool   *parallel.Pool
}

// New creates an empty Workspace backed by parse for turning source text
// into an ast.File (the lexer/parser is out of this repository's scope;
// see symtab.ParseFunc). The per-module NAME-stage pool is sized from
// cfg.WorkerCount, falling back to runtime.NumCPU() when unset.
func New(cfg *config.Config, parse symtab.ParseFunc) *Workspace {
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Workspace{
		Cfg:    cfg,
		Mgr:    symtab.New(parse, cfg.StdlibPath, cfg.SearchPaths),
		files:  make(map[string]*File),
		byPath: make(map[string]*File),
		index:  newIndex(),
		pool:   parallel.New(workers),
	}
}

// Close shuts down the Workspace's worker pool. The Workspace must not be
// used afterward.
func (w *Workspace) Close() {
	w.pool.Close()
}

// Initialize loads entryPoints and everything they transitively use, runs
// one INDEXING-mode analysis pass over the whole resulting Unit, and
// builds the initial Index. Mirrors Workspace::initialize.
func (w *Workspace) Initialize(entryPoints []sir.ModulePath) error {
	for _, path := range entryPoints {
		if _, err := w.Mgr.Load(path); err != nil {
			return fmt.Errorf("workspace: loading %s: %w", path, err)
		}
	}
	return w.reanalyzeAll()
}

// reanalyzeAllJob pairs a loaded module with the record (parsed AST, SIR
// module) reanalyzeAll's NAME and USE/INTERFACE/BODY/RESOURCES stages run
// over.
type reanalyzeAllJob struct {
	mod *sir.Module
	rec *symtab.Record
}

// reanalyzeAll runs INDEXING mode across every loaded module and rebuilds
// both the fs-path<->module-path File links and the Index from scratch.
// The NAME stage (declaration-skeleton collection) is independent per
// module, so it runs across w.pool's workers once for every module;
// everything after that stage barrier — use resolution, interface, body,
// resources — needs the whole cross-module symbol graph and a single
// shared Analyzer, so it runs sequentially once every module's NAME stage
// has completed.
func (w *Workspace) reanalyzeAll() error {
	w.Mgr.Reports.Reset()
	symtab.InjectPreamble(w.Mgr)

	var jobs []reanalyzeAllJob
	for _, mod := range w.Mgr.Unit.Modules() {
		if rec, ok := w.Mgr.Get(mod.Path); ok {
			jobs = append(jobs, reanalyzeAllJob{mod: mod, rec: rec})
		}
	}

	collected := make([]*sema.CollectResult, len(jobs))
	tasks := make([]parallel.Task, len(jobs))
	for i, j := range jobs {
		tasks[i] = func() {
			collected[i] = sema.CollectModule(w.Mgr.Unit, w.Mgr, sema.INDEXING, j.mod, j.rec.File)
		}
	}
	w.pool.RunBlocking(tasks)

	analyzer := sema.New(w.Mgr.Unit, w.Mgr, w.Mgr.Reports, sema.INDEXING)
	for i, j := range jobs {
		analyzer.MergeCollected(j.mod, collected[i])
	}
	for _, j := range jobs {
		analyzer.AnalyzeCollected(j.mod, j.rec.File)
	}

	for _, j := range jobs {
		f := &File{Path: j.rec.Module.FilePath, ModulePath: j.mod.Path}
		w.files[f.Path] = f
		w.byPath[j.mod.Path.Key()] = f
	}

	w.index = buildIndex(w.Mgr.Unit.Modules(), analyzer.Extra, w.Mgr.Reports.Reports())
	return nil
}

// Update re-reads the file at fsPath from disk (the editor must already
// have written the new content there) and reanalyzes: only the edited
// module's AST and SIR are
// regenerated, then every loaded module is re-run through INDEXING so
// cross-module symbol uses stay consistent, matching
// Workspace::update's documented contract.
func (w *Workspace) Update(fsPath string) error {
	f, ok := w.files[fsPath]
	if !ok {
		return fmt.Errorf("workspace: %s is not a tracked file", fsPath)
	}
	if _, err := w.Mgr.Reload(f.ModulePath); err != nil {
		return fmt.Errorf("workspace: reloading %s: %w", fsPath, err)
	}
	return w.reanalyzeAll()
}

// FindFile resolves fsPath to its tracked File, if loaded.
func (w *Workspace) FindFile(fsPath string) (*File, bool) {
	f, ok := w.files[fsPath]
	return f, ok
}

// FindByModulePath resolves a module path to its tracked File, the other
// lookup direction workspace.cpp's find_file supports (an LSP request
// normally arrives addressed by fs path, but definition/reference results
// naming a module need the reverse lookup to report a file back).
func (w *Workspace) FindByModulePath(path sir.ModulePath) (*File, bool) {
	f, ok := w.byPath[path.Key()]
	return f, ok
}

// FindOrLoadFile resolves fsPath to a tracked File, loading it under
// modulePath first if it isn't tracked yet.
func (w *Workspace) FindOrLoadFile(fsPath string, modulePath sir.ModulePath) (*File, error) {
	if f, ok := w.files[fsPath]; ok {
		return f, nil
	}
	if _, err := w.Mgr.Load(modulePath); err != nil {
		return nil, err
	}
	if err := w.reanalyzeAll(); err != nil {
		return nil, err
	}
	f, ok := w.files[fsPath]
	if !ok {
		return nil, fmt.Errorf("workspace: %s did not resolve to module %s after load", fsPath, modulePath)
	}
	return f, nil
}

// Index returns the most recently built definition/reference index.
func (w *Workspace) Index() *Index { return w.index }

// Complete runs a completion request at (fsPath, cursorOffset): it loads a
// throwaway copy of the file with a completion sentinel spliced in at the
// cursor (LoadForCompletion leaves the module manager's records and the
// live Unit untouched), analyzes it in COMPLETION mode (which stops as soon as
// the sentinel's CompletionContext is known), and feeds that context to an
// Engine built over the live Unit so cross-module candidates still see
// every already-loaded module. Mirrors Workspace::run_completion.
func (w *Workspace) Complete(fsPath string, cursorOffset int) ([]CompletionItem, error) {
	f, ok := w.files[fsPath]
	if !ok {
		return nil, fmt.Errorf("workspace: %s is not a tracked file", fsPath)
	}

	rec, err := w.Mgr.LoadForCompletion(f.ModulePath, fsPath, cursorOffset)
	if err != nil {
		return nil, fmt.Errorf("workspace: completion load: %w", err)
	}

	reports := report.NewManager()
	analyzer := sema.New(w.Mgr.Unit, w.Mgr, reports, sema.COMPLETION)
	analyzer.AnalyzeModule(rec.Module, rec.File)

	if analyzer.Completion == nil {
		return nil, nil
	}

	engine := NewEngine(w.Mgr.Unit, w.Mgr)
	items := engine.Complete(analyzer.Completion, rec.Module)
	return SerializeItems(items), nil
}
